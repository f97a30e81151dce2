package commands

import (
	"context"
	"fmt"
	"time"

	"farmlink/internal/core/ports"
	"farmlink/internal/pkg/errs"
)

// RefundPaymentCommandHandler issues a refund through the payment gateway
// and records it on the order.
//
// The gateway refund runs before the database write: if the provider call
// fails, the order stays paid and the refund can be retried.
type RefundPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	notifier   ports.NotificationSink
}

// NewRefundPaymentCommandHandler creates a handler for payment refunds.
func NewRefundPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
	notifier ports.NotificationSink,
) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		notifier:   notifier,
	}
}

// Handle processes the refund command.
func (h *RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.gateway.IsAvailable() {
		return errs.NewDependencyUnavailableError("payment gateway")
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
	if err = aggregate.Refund(cmd.Amount(), cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	details := aggregate.PaymentDetails()
	if details == nil {
		return errs.NewObjectNotFoundError("payment details", cmd.OrderID().String())
	}
	refund := aggregate.RefundDetails()
	if err = h.gateway.Refund(ctx, details.PaymentRef(), refund.Amount()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, fromStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.RestaurantID(), "payment.refunded",
		fmt.Sprintf("order %s was refunded: %s", cmd.OrderID(), cmd.Reason()))
	return nil
}
