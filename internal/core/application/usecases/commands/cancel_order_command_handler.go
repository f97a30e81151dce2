package commands

import (
	"context"
	"fmt"

	"farmlink/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order and returns its reserved crop
// quantities to inventory in the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory MarketUoWFactory
	notifier   ports.NotificationSink
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory MarketUoWFactory,
	notifier ports.NotificationSink,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command. The status update is conditional
// on the order still holding its loaded status, so a cancellation racing a
// pickup loses cleanly.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	fromStatus := aggregate.Status()
	if err = aggregate.Cancel(cmd.CallerID(), cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, fromStatus); err != nil {
		return err
	}

	cropRepo := uow.CropRepository()
	for _, li := range aggregate.LineItems() {
		if err = cropRepo.Release(ctx, li.CropID(), li.Quantity()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	counterparty := aggregate.FarmerID()
	if cmd.CallerID().IsEqual(aggregate.FarmerID()) {
		counterparty = aggregate.RestaurantID()
	}
	h.notifier.Notify(ctx, counterparty, "order.cancelled",
		fmt.Sprintf("order %s was cancelled", cmd.OrderID()))
	return nil
}
