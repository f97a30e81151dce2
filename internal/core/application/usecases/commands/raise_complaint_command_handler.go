package commands

import (
	"context"
	"fmt"
	"time"

	"farmlink/internal/core/ports"
)

// RaiseComplaintCommandHandler appends a complaint to an order's log and
// notifies the counterparty.
type RaiseComplaintCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSink
}

// NewRaiseComplaintCommandHandler creates a handler for raising complaints.
func NewRaiseComplaintCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSink,
) RaiseComplaintCommandHandler {
	return RaiseComplaintCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the complaint command.
func (h *RaiseComplaintCommandHandler) Handle(ctx context.Context, cmd RaiseComplaintCommand) error {
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

	if _, err = aggregate.RaiseComplaint(cmd.CallerID(), cmd.Description(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, aggregate.Status()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	counterparty := aggregate.FarmerID()
	if cmd.CallerID().IsEqual(aggregate.FarmerID()) {
		counterparty = aggregate.RestaurantID()
	}
	h.notifier.Notify(ctx, counterparty, "order.complaint",
		fmt.Sprintf("a complaint was raised on order %s", cmd.OrderID()))
	return nil
}
