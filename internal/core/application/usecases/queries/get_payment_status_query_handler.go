package queries

import (
	"context"
	"database/sql"
	"errors"

	"farmlink/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentStatusQueryHandler reads one order's settlement state.
type GetPaymentStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentStatusQueryHandler creates a handler for payment status queries.
func NewGetPaymentStatusQueryHandler(db *gorm.DB) GetPaymentStatusQueryHandler {
	return GetPaymentStatusQueryHandler{db: db}
}

// Handle executes the query.
func (h GetPaymentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentStatusQuery,
) (GetPaymentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentStatusQueryResponse{}, err
	}

	var paymentRef, farmerTransfer, transporterTransfer sql.NullString
	var settledAt sql.NullTime
	var farmerID, restaurantID uuid.UUID
	var transporterID uuid.NullUUID
	resp := GetPaymentStatusQueryResponse{OrderID: query.OrderID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			farmer_id,
			restaurant_id,
			transporter_id,
			payment_status,
			total_amount + restaurant_delivery_share AS amount_due,
			payment_ref,
			farmer_transfer_status,
			transporter_transfer_status,
			settled_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&farmerID, &restaurantID, &transporterID,
		&resp.PaymentStatus, &resp.AmountDue, &paymentRef, &farmerTransfer, &transporterTransfer, &settledAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPaymentStatusQueryResponse{},
			errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetPaymentStatusQueryResponse{}, err
	}

	caller := query.CallerID().Bytes()
	if caller != farmerID && caller != restaurantID &&
		!(transporterID.Valid && caller == transporterID.UUID) {
		return GetPaymentStatusQueryResponse{}, errs.NewUnauthorizedError("view payment status")
	}

	resp.PaymentRef = paymentRef.String
	resp.FarmerTransferStatus = farmerTransfer.String
	resp.TransporterTransferStatus = transporterTransfer.String
	if settledAt.Valid {
		resp.SettledAt = &settledAt.Time
	}
	return resp, nil
}
