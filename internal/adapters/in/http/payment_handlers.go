package http

import (
	"net/http"
	"time"

	"farmlink/internal/core/application/usecases/commands"
	"farmlink/internal/core/application/usecases/queries"
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/order"
	"farmlink/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type settlePaymentRequest struct {
	CallerID        string `json:"caller_id"`
	GatewayOrderRef string `json:"gateway_order_ref"`
	PaymentRef      string `json:"payment_ref"`
	Signature       string `json:"signature"`
}

type refundPaymentRequest struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

type initiatePaymentRequest struct {
	CallerID string `json:"caller_id"`
}

type paymentStatusResponse struct {
	OrderID                   string     `json:"order_id"`
	PaymentStatus             string     `json:"payment_status"`
	AmountDue                 float64    `json:"amount_due"`
	PaymentRef                string     `json:"payment_ref,omitempty"`
	FarmerTransferStatus      string     `json:"farmer_transfer_status,omitempty"`
	TransporterTransferStatus string     `json:"transporter_transfer_status,omitempty"`
	SettledAt                 *time.Time `json:"settled_at,omitempty"`
}

type initiatePaymentResponse struct {
	GatewayOrderRef string  `json:"gateway_order_ref"`
	Amount          float64 `json:"amount"`
}

// GetPaymentStatus handles GET /api/v1/orders/:id/payment. The caller_id
// query parameter identifies the requesting party; only the order's farmer,
// restaurant or assigned transporter may read the settlement state.
func (s *Server) GetPaymentStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	callerID, err := kernel.UUIDFromString(ctx.QueryParam("caller_id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPaymentStatusQuery(orderID, callerID)
	if err != nil {
		return respondError(ctx, err)
	}

	status, err := s.handlers.PaymentStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentStatusResponse{
		OrderID:                   status.OrderID.String(),
		PaymentStatus:             status.PaymentStatus,
		AmountDue:                 status.AmountDue,
		PaymentRef:                status.PaymentRef,
		FarmerTransferStatus:      status.FarmerTransferStatus,
		TransporterTransferStatus: status.TransporterTransferStatus,
		SettledAt:                 status.SettledAt,
	})
}

// InitiatePayment handles POST /api/v1/orders/:id/payment/initiate. It opens
// a gateway payment order for the amount the restaurant owes; the gateway
// reference comes back to the client, which completes checkout and then calls
// the settle endpoint with the signed callback.
func (s *Server) InitiatePayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req initiatePaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	callerID, err := kernel.UUIDFromString(req.CallerID)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPaymentStatusQuery(orderID, callerID)
	if err != nil {
		return respondError(ctx, err)
	}

	status, err := s.handlers.PaymentStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	if status.PaymentStatus != order.PaymentPending.String() {
		return respondError(ctx, errs.NewConflictError("payment", orderID.String()))
	}

	gatewayOrderRef, err := s.gateway.CreatePaymentOrder(
		ctx.Request().Context(), status.AmountDue, orderID.String())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, initiatePaymentResponse{
		GatewayOrderRef: gatewayOrderRef,
		Amount:          status.AmountDue,
	})
}

// SettlePayment handles POST /api/v1/orders/:id/payment/settle.
func (s *Server) SettlePayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req settlePaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	callerID, err := kernel.UUIDFromString(req.CallerID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSettlePaymentCommand(
		orderID, callerID, req.GatewayOrderRef, req.PaymentRef, req.Signature)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.SettlePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RefundPayment handles POST /api/v1/orders/:id/payment/refund.
func (s *Server) RefundPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req refundPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRefundPaymentCommand(orderID, req.Amount, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RefundPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
