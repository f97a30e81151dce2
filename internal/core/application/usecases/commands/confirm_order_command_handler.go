package commands

import (
	"context"
	"fmt"

	"farmlink/internal/core/domain/model/order"
	"farmlink/internal/core/ports"
)

// ConfirmOrderCommandHandler moves a pending order to confirmed on behalf of
// the order's farmer and notifies the restaurant.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSink
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSink,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the confirmation command. The update is conditional on
// the order still being pending in storage.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	if err = aggregate.Confirm(cmd.CallerID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, order.StatusPending); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.RestaurantID(), "order.confirmed",
		fmt.Sprintf("order %s was confirmed by the farmer", cmd.OrderID()))
	return nil
}
