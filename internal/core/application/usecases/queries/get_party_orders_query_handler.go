package queries

import (
	"context"

	"farmlink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPartyOrdersQueryHandler reads a party's order history from the database.
type GetPartyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartyOrdersQueryHandler creates a handler for party order queries.
func NewGetPartyOrdersQueryHandler(db *gorm.DB) GetPartyOrdersQueryHandler {
	return GetPartyOrdersQueryHandler{db: db}
}

// Handle executes the query. The party may appear on an order as the farmer,
// the restaurant, or the transporter; newest orders come first.
func (h GetPartyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPartyOrdersQuery,
) ([]GetPartyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partyID := query.PartyID().Bytes()
	orders := make([]GetPartyOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			payment_status,
			total_amount,
			delivery_fee,
			created_at
		FROM orders
		WHERE farmer_id = ? OR restaurant_id = ? OR transporter_id = ?
		ORDER BY created_at DESC
	`, partyID, partyID, partyID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPartyOrdersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.Status,
			&resp.PaymentStatus,
			&resp.TotalAmount,
			&resp.DeliveryFee,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
