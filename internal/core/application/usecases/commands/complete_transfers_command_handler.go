package commands

import (
	"context"
	"fmt"

	"farmlink/internal/core/ports"
)

// CompleteTransfersCommandHandler completes due payout legs in bulk.
//
// Each order commits independently and the operation is idempotent, so a
// sweep that dies halfway simply finishes the remainder on its next run.
type CompleteTransfersCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSink
}

// NewCompleteTransfersCommandHandler creates a handler for the payout sweep.
func NewCompleteTransfersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSink,
) CompleteTransfersCommandHandler {
	return CompleteTransfersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the sweep command. It returns the number of orders whose
// transfers were completed.
func (h *CompleteTransfersCommandHandler) Handle(ctx context.Context, cmd CompleteTransfersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	due, err := orderRepo.GetAllSettledBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, aggregate := range due {
		if err = aggregate.CompleteTransfers(); err != nil {
			return completed, err
		}
		if err = orderRepo.Update(ctx, aggregate, aggregate.Status()); err != nil {
			return completed, err
		}
		completed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, aggregate := range due {
		h.notifier.Notify(ctx, aggregate.FarmerID(), "payment.transfer_completed",
			fmt.Sprintf("payout for order %s was completed", aggregate.ID()))
		if tid := aggregate.TransporterID(); tid != nil {
			h.notifier.Notify(ctx, *tid, "payment.transfer_completed",
				fmt.Sprintf("payout for order %s was completed", aggregate.ID()))
		}
	}
	return completed, nil
}
