package commands

import (
	"context"
	"fmt"

	"farmlink/internal/core/domain/model/order"
	"farmlink/internal/core/ports"
)

// MarkPickedUpCommandHandler moves a confirmed order to picked_up.
type MarkPickedUpCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSink
}

// NewMarkPickedUpCommandHandler creates a handler for the pickup transition.
func NewMarkPickedUpCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSink,
) MarkPickedUpCommandHandler {
	return MarkPickedUpCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the pickup command.
func (h *MarkPickedUpCommandHandler) Handle(ctx context.Context, cmd MarkPickedUpCommand) error {
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

	if err = aggregate.MarkPickedUp(cmd.CallerID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, order.StatusConfirmed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.RestaurantID(), "order.picked_up",
		fmt.Sprintf("order %s was picked up at the farm", cmd.OrderID()))
	return nil
}
