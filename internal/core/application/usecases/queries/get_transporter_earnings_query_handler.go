package queries

import (
	"context"

	"farmlink/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetTransporterEarningsQueryHandler aggregates a transporter's delivery
// fees from the database.
type GetTransporterEarningsQueryHandler struct {
	db *gorm.DB
}

// NewGetTransporterEarningsQueryHandler creates a handler for earnings queries.
func NewGetTransporterEarningsQueryHandler(db *gorm.DB) GetTransporterEarningsQueryHandler {
	return GetTransporterEarningsQueryHandler{db: db}
}

// Handle executes the query over the transporter's delivered orders.
func (h GetTransporterEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetTransporterEarningsQuery,
) (GetTransporterEarningsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTransporterEarningsQueryResponse{}, err
	}

	resp := GetTransporterEarningsQueryResponse{TransporterID: query.TransporterID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(delivery_fee), 0),
			COUNT(*) FILTER (WHERE transporter_transfer_status = ?)
		FROM orders
		WHERE transporter_id = ? AND status = ?
	`, order.TransferCompleted, query.TransporterID().Bytes(), order.StatusDelivered).Row()

	if err := row.Scan(&resp.DeliveredRuns, &resp.TotalEarnings, &resp.SettledRuns); err != nil {
		return GetTransporterEarningsQueryResponse{}, err
	}
	return resp, nil
}
