package queries

import (
	"context"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnassignedOrdersQueryHandler reads the pickup board from the database.
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for pickup board queries.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle executes the query. Oldest confirmed orders come first so they do
// not starve behind fresher, better-paying runs.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]GetUnassignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnassignedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			pickup_lat,
			pickup_lon,
			delivery_lat,
			delivery_lon,
			distance_km,
			total_weight,
			delivery_fee
		FROM orders
		WHERE status = ? AND transporter_id IS NULL
		ORDER BY created_at
	`, order.StatusConfirmed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnassignedOrdersQueryResponse
		var id uuid.UUID
		var pickupLat, pickupLon, deliveryLat, deliveryLon float64

		if err = rows.Scan(
			&id,
			&pickupLat,
			&pickupLon,
			&deliveryLat,
			&deliveryLon,
			&resp.DistanceKm,
			&resp.TotalWeight,
			&resp.DeliveryFee,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if resp.Pickup, err = kernel.NewGeoPoint(pickupLat, pickupLon); err != nil {
			return nil, err
		}
		if resp.Delivery, err = kernel.NewGeoPoint(deliveryLat, deliveryLon); err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
