package commands

import (
	"context"
	"fmt"
	"time"

	"farmlink/internal/core/domain/model/order"
	"farmlink/internal/core/ports"
)

// VerifyQualityCommandHandler attaches the transporter's quality check to an
// order in picked_up status. The farmer is notified of low scores so disputes
// surface before the produce reaches the restaurant.
type VerifyQualityCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSink
}

// NewVerifyQualityCommandHandler creates a handler for quality verification.
func NewVerifyQualityCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSink,
) VerifyQualityCommandHandler {
	return VerifyQualityCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the verification command.
func (h *VerifyQualityCommandHandler) Handle(ctx context.Context, cmd VerifyQualityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.VerifyQuality(cmd.CallerID(), cmd.Score(), cmd.Notes(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, order.StatusPickedUp); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.Score() <= 2 {
		h.notifier.Notify(ctx, aggregate.FarmerID(), "order.quality_flagged",
			fmt.Sprintf("order %s was graded %d/5 at pickup", cmd.OrderID(), cmd.Score()))
	}
	return nil
}
