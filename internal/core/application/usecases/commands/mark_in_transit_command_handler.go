package commands

import (
	"context"
	"fmt"

	"farmlink/internal/core/domain/model/order"
	"farmlink/internal/core/ports"
)

// MarkInTransitCommandHandler moves a picked up order to in_transit.
type MarkInTransitCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSink
}

// NewMarkInTransitCommandHandler creates a handler for the transit transition.
func NewMarkInTransitCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSink,
) MarkInTransitCommandHandler {
	return MarkInTransitCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the transit command.
func (h *MarkInTransitCommandHandler) Handle(ctx context.Context, cmd MarkInTransitCommand) error {
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

	if err = aggregate.MarkInTransit(cmd.CallerID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, order.StatusPickedUp); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.RestaurantID(), "order.in_transit",
		fmt.Sprintf("order %s is on its way", cmd.OrderID()))
	return nil
}
