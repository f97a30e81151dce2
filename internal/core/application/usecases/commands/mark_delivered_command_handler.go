package commands

import (
	"context"
	"fmt"
	"time"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/ports"
)

// MarkDeliveredCommandHandler completes a delivery and records the actual
// delivery time. Delivery is accepted from picked_up or in_transit. Completed
// deliveries bump the totalOrders counter of all three parties, so cancelled
// orders never count.
type MarkDeliveredCommandHandler struct {
	uowFactory MarketUoWFactory
	notifier   ports.NotificationSink
}

// NewMarkDeliveredCommandHandler creates a handler for the delivery transition.
func NewMarkDeliveredCommandHandler(
	uowFactory MarketUoWFactory,
	notifier ports.NotificationSink,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery command.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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
	if err = aggregate.MarkDelivered(cmd.CallerID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, fromStatus); err != nil {
		return err
	}

	partyRepo := uow.PartyRepository()
	for _, partyID := range []kernel.UUID{
		aggregate.FarmerID(), aggregate.RestaurantID(), cmd.CallerID(),
	} {
		if err = partyRepo.IncrementTotalOrders(ctx, partyID); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.RestaurantID(), "order.delivered",
		fmt.Sprintf("order %s was delivered", cmd.OrderID()))
	h.notifier.Notify(ctx, aggregate.FarmerID(), "order.delivered",
		fmt.Sprintf("order %s was delivered", cmd.OrderID()))
	return nil
}
