package http

import (
	"net/http"

	"farmlink/internal/core/application/usecases/commands"
	"farmlink/internal/core/application/usecases/queries"
	"farmlink/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type placeOrderRequest struct {
	ID           string           `json:"id"`
	RestaurantID string           `json:"restaurant_id"`
	FarmerID     string           `json:"farmer_id"`
	Items        []placeOrderItem `json:"items"`
	Notes        string           `json:"notes"`
}

type placeOrderItem struct {
	CropID   string  `json:"crop_id"`
	Quantity float64 `json:"quantity"`
}

type callerRequest struct {
	CallerID string `json:"caller_id"`
}

type cancelOrderRequest struct {
	CallerID string `json:"caller_id"`
	Reason   string `json:"reason"`
}

type acceptOrderRequest struct {
	TransporterID string `json:"transporter_id"`
}

type verifyQualityRequest struct {
	CallerID string `json:"caller_id"`
	Score    int    `json:"score"`
	Notes    string `json:"notes"`
}

type raiseComplaintRequest struct {
	CallerID    string `json:"caller_id"`
	Description string `json:"description"`
}

type resolveComplaintRequest struct {
	Resolution string `json:"resolution"`
}

type unassignedOrderResponse struct {
	ID          string  `json:"id"`
	PickupLat   float64 `json:"pickup_lat"`
	PickupLon   float64 `json:"pickup_lon"`
	DeliveryLat float64 `json:"delivery_lat"`
	DeliveryLon float64 `json:"delivery_lon"`
	DistanceKm  float64 `json:"distance_km"`
	TotalWeight float64 `json:"total_weight"`
	DeliveryFee int     `json:"delivery_fee"`
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.ID)
	if err != nil {
		return respondError(ctx, err)
	}
	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return respondError(ctx, err)
	}
	farmerID, err := kernel.UUIDFromString(req.FarmerID)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.PlaceOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		cropID, itemErr := kernel.UUIDFromString(item.CropID)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		items = append(items, commands.PlaceOrderItem{CropID: cropID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewPlaceOrderCommand(orderID, restaurantID, farmerID, items, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned, the transporter
// job board.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	query := queries.NewGetUnassignedOrdersQuery()

	orders, err := s.handlers.UnassignedOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]unassignedOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = unassignedOrderResponse{
			ID:          o.ID.String(),
			PickupLat:   o.Pickup.Latitude(),
			PickupLon:   o.Pickup.Longitude(),
			DeliveryLat: o.Delivery.Latitude(),
			DeliveryLon: o.Delivery.Longitude(),
			DistanceKm:  o.DistanceKm,
			TotalWeight: o.TotalWeight,
			DeliveryFee: o.DeliveryFee,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, callerID, err := s.orderAndCaller(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, callerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req cancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	callerID, err := kernel.UUIDFromString(req.CallerID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, callerID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req acceptOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	transporterID, err := kernel.UUIDFromString(req.TransporterID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, transporterID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkPickedUp handles POST /api/v1/orders/:id/pickup.
func (s *Server) MarkPickedUp(ctx echo.Context) error {
	orderID, callerID, err := s.orderAndCaller(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkPickedUpCommand(orderID, callerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.MarkPickedUp.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkInTransit handles POST /api/v1/orders/:id/transit.
func (s *Server) MarkInTransit(ctx echo.Context) error {
	orderID, callerID, err := s.orderAndCaller(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkInTransitCommand(orderID, callerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.MarkInTransit.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkDelivered handles POST /api/v1/orders/:id/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	orderID, callerID, err := s.orderAndCaller(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, callerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.MarkDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// VerifyQuality handles POST /api/v1/orders/:id/quality.
func (s *Server) VerifyQuality(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req verifyQualityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	callerID, err := kernel.UUIDFromString(req.CallerID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewVerifyQualityCommand(orderID, callerID, req.Score, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.VerifyQuality.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RaiseComplaint handles POST /api/v1/orders/:id/complaints.
func (s *Server) RaiseComplaint(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req raiseComplaintRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	callerID, err := kernel.UUIDFromString(req.CallerID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRaiseComplaintCommand(orderID, callerID, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RaiseComplaint.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ResolveComplaint handles POST /api/v1/orders/:id/complaints/:complaintID/resolve.
func (s *Server) ResolveComplaint(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	complaintID, err := kernel.UUIDFromString(ctx.Param("complaintID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req resolveComplaintRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewResolveComplaintCommand(orderID, complaintID, req.Resolution)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ResolveComplaint.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// orderAndCaller parses the order id path parameter and the caller id body
// shared by the simple transition endpoints.
func (s *Server) orderAndCaller(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	var req callerRequest
	if err = ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	callerID, err := kernel.UUIDFromString(req.CallerID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return orderID, callerID, nil
}
