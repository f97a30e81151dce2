package commands

import (
	"context"
	"fmt"
	"time"

	"farmlink/internal/core/ports"
	"farmlink/internal/pkg/errs"
)

// SettlePaymentCommandHandler verifies the payment provider's callback and
// settles an order. Settlement opens the farmer payout leg in processing
// status, and the transporter leg when a transporter is assigned; the
// transfer completion sweep finishes them after the hold window.
//
// Settling an already paid order is rejected as a conflict, so a retried
// provider callback can never double-settle.
type SettlePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	notifier   ports.NotificationSink
}

// NewSettlePaymentCommandHandler creates a handler for payment settlement.
func NewSettlePaymentCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
	notifier ports.NotificationSink,
) SettlePaymentCommandHandler {
	return SettlePaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		notifier:   notifier,
	}
}

// Handle processes the settlement command.
func (h *SettlePaymentCommandHandler) Handle(ctx context.Context, cmd SettlePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.gateway.IsAvailable() {
		return errs.NewDependencyUnavailableError("payment gateway")
	}
	if err := h.gateway.VerifySignature(cmd.GatewayOrderRef(), cmd.PaymentRef(), cmd.Signature()); err != nil {
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
	if err = aggregate.Settle(cmd.CallerID(), cmd.PaymentRef(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, fromStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.FarmerID(), "payment.settled",
		fmt.Sprintf("payment for order %s was received", cmd.OrderID()))
	return nil
}
