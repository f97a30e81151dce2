package commands

import (
	"context"
	"fmt"

	"farmlink/internal/core/ports"
)

// AcceptOrderCommandHandler assigns an order to the first transporter who
// claims it.
//
// The repository's Assign writes the transporter only while the order row is
// still confirmed and unassigned, so when several transporters accept the
// same order concurrently exactly one of them wins and the rest get a
// conflict.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSink
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSink,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the acceptance command.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	if err = aggregate.Accept(cmd.TransporterID()); err != nil {
		return err
	}

	if err = orderRepo.Assign(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.FarmerID(), "order.accepted",
		fmt.Sprintf("a transporter accepted order %s", cmd.OrderID()))
	return nil
}
