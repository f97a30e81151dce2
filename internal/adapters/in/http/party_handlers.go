package http

import (
	"net/http"
	"time"

	"farmlink/internal/core/application/usecases/commands"
	"farmlink/internal/core/application/usecases/queries"
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/party"

	"github.com/labstack/echo/v4"
)

type registerPartyRequest struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Role  string  `json:"role"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type partyOrderResponse struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TotalAmount   float64   `json:"total_amount"`
	DeliveryFee   int       `json:"delivery_fee"`
	CreatedAt     time.Time `json:"created_at"`
}

type transporterEarningsResponse struct {
	TransporterID string `json:"transporter_id"`
	DeliveredRuns int    `json:"delivered_runs"`
	TotalEarnings int    `json:"total_earnings"`
	SettledRuns   int    `json:"settled_runs"`
}

// RegisterParty handles POST /api/v1/parties.
func (s *Server) RegisterParty(ctx echo.Context) error {
	var req registerPartyRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	partyID, err := kernel.UUIDFromString(req.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	location, err := kernel.NewGeoPoint(req.Lat, req.Lon)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterPartyCommand(
		partyID, req.Name, req.Phone, party.Role(req.Role), location)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RegisterParty.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetPartyOrders handles GET /api/v1/parties/:id/orders.
func (s *Server) GetPartyOrders(ctx echo.Context) error {
	partyID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPartyOrdersQuery(partyID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.PartyOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]partyOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = partyOrderResponse{
			ID:            o.ID.String(),
			Status:        o.Status,
			PaymentStatus: o.PaymentStatus,
			TotalAmount:   o.TotalAmount,
			DeliveryFee:   o.DeliveryFee,
			CreatedAt:     o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTransporterEarnings handles GET /api/v1/parties/:id/earnings.
func (s *Server) GetTransporterEarnings(ctx echo.Context) error {
	transporterID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetTransporterEarningsQuery(transporterID)
	if err != nil {
		return respondError(ctx, err)
	}

	earnings, err := s.handlers.TransporterEarnings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, transporterEarningsResponse{
		TransporterID: earnings.TransporterID.String(),
		DeliveredRuns: earnings.DeliveredRuns,
		TotalEarnings: earnings.TotalEarnings,
		SettledRuns:   earnings.SettledRuns,
	})
}
