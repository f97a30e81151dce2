// Package http exposes the marketplace over a REST API built on echo. Every
// handler parses the request, builds a command or query, and delegates to the
// application layer; domain errors map onto HTTP statuses in one place.
package http

import (
	"farmlink/internal/core/application/usecases/commands"
	"farmlink/internal/core/application/usecases/queries"
	"farmlink/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	RegisterParty    commands.RegisterPartyCommandHandler
	CreateCrop       commands.CreateCropCommandHandler
	PlaceOrder       commands.PlaceOrderCommandHandler
	ConfirmOrder     commands.ConfirmOrderCommandHandler
	CancelOrder      commands.CancelOrderCommandHandler
	AcceptOrder      commands.AcceptOrderCommandHandler
	MarkPickedUp     commands.MarkPickedUpCommandHandler
	MarkInTransit    commands.MarkInTransitCommandHandler
	MarkDelivered    commands.MarkDeliveredCommandHandler
	VerifyQuality    commands.VerifyQualityCommandHandler
	RaiseComplaint   commands.RaiseComplaintCommandHandler
	ResolveComplaint commands.ResolveComplaintCommandHandler
	SettlePayment    commands.SettlePaymentCommandHandler
	RefundPayment    commands.RefundPaymentCommandHandler

	PartyOrders         queries.GetPartyOrdersQueryHandler
	UnassignedOrders    queries.GetUnassignedOrdersQueryHandler
	PaymentStatus       queries.GetPaymentStatusQueryHandler
	TransporterEarnings queries.GetTransporterEarningsQueryHandler
	AvailableCrops      queries.GetAvailableCropsQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers Handlers
	gateway  ports.PaymentGateway
}

// NewServer creates an HTTP server over the given handlers. The payment
// gateway backs the payment initiation endpoint.
func NewServer(handlers Handlers, gateway ports.PaymentGateway) *Server {
	return &Server{
		handlers: handlers,
		gateway:  gateway,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/parties", s.RegisterParty)
	api.GET("/parties/:id/orders", s.GetPartyOrders)
	api.GET("/parties/:id/earnings", s.GetTransporterEarnings)

	api.POST("/crops", s.CreateCrop)
	api.GET("/crops", s.GetAvailableCrops)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/unassigned", s.GetUnassignedOrders)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/pickup", s.MarkPickedUp)
	api.POST("/orders/:id/transit", s.MarkInTransit)
	api.POST("/orders/:id/delivered", s.MarkDelivered)
	api.POST("/orders/:id/quality", s.VerifyQuality)
	api.POST("/orders/:id/complaints", s.RaiseComplaint)
	api.POST("/orders/:id/complaints/:complaintID/resolve", s.ResolveComplaint)

	api.GET("/orders/:id/payment", s.GetPaymentStatus)
	api.POST("/orders/:id/payment/initiate", s.InitiatePayment)
	api.POST("/orders/:id/payment/settle", s.SettlePayment)
	api.POST("/orders/:id/payment/refund", s.RefundPayment)
}
