// Package orderrepo persists order aggregates with GORM. The order row
// carries the flattened payment, refund, and quality verification state;
// line items and complaints live in child tables keyed by order id.
package orderrepo

import (
	"time"

	"farmlink/internal/core/domain/model/crop"
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FarmerID      uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID  uuid.UUID  `gorm:"type:uuid;index"`
	TransporterID *uuid.UUID `gorm:"type:uuid;index"`

	LineItems  []LineItemDTO  `gorm:"foreignKey:OrderID;references:ID"`
	Complaints []ComplaintDTO `gorm:"foreignKey:OrderID;references:ID"`

	TotalAmount float64
	TotalWeight float64

	DistanceKm              float64
	DeliveryFee             int
	FarmerDeliveryShare     float64
	RestaurantDeliveryShare float64

	PickupLat   float64
	PickupLon   float64
	DeliveryLat float64
	DeliveryLon float64

	Status                string `gorm:"index"`
	Notes                 string
	CreatedAt             time.Time
	EstimatedDeliveryTime time.Time
	ActualDeliveryTime    *time.Time

	QualityScore      *int
	QualityNotes      string
	QualityVerifiedBy *uuid.UUID `gorm:"type:uuid"`
	QualityVerifiedAt *time.Time

	PaymentStatus             string `gorm:"index"`
	PaymentRef                *string
	FarmerTransferStatus      *string
	TransporterTransferStatus *string
	SettledAt                 *time.Time

	RefundAmount *float64
	RefundReason string
	RefundedAt   *time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one crop position of a persisted order.
type LineItemDTO struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	CropID        uuid.UUID `gorm:"type:uuid"`
	CropName      string
	Quantity      float64
	UnitPrice     float64
	Unit          string
	WeightPerUnit float64
}

// TableName overrides GORM's default naming to use "order_line_items".
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// ComplaintDTO is one entry of a persisted order's complaint log.
type ComplaintDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	RaisedBy    uuid.UUID `gorm:"type:uuid"`
	Description string
	RaisedAt    time.Time
	Resolved    bool
	Resolution  string
	ResolvedAt  *time.Time
}

// TableName overrides GORM's default naming to use "order_complaints".
func (ComplaintDTO) TableName() string {
	return "order_complaints"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                      aggregate.ID().Bytes(),
		FarmerID:                aggregate.FarmerID().Bytes(),
		RestaurantID:            aggregate.RestaurantID().Bytes(),
		TotalAmount:             aggregate.TotalAmount(),
		TotalWeight:             aggregate.TotalWeight(),
		DistanceKm:              aggregate.DistanceKm(),
		DeliveryFee:             aggregate.DeliveryFee(),
		FarmerDeliveryShare:     aggregate.FarmerDeliveryShare(),
		RestaurantDeliveryShare: aggregate.RestaurantDeliveryShare(),
		PickupLat:               aggregate.PickupLocation().Latitude(),
		PickupLon:               aggregate.PickupLocation().Longitude(),
		DeliveryLat:             aggregate.DeliveryLocation().Latitude(),
		DeliveryLon:             aggregate.DeliveryLocation().Longitude(),
		Status:                  aggregate.Status().String(),
		Notes:                   aggregate.Notes(),
		CreatedAt:               aggregate.CreatedAt(),
		EstimatedDeliveryTime:   aggregate.EstimatedDeliveryTime(),
		ActualDeliveryTime:      aggregate.ActualDeliveryTime(),
		PaymentStatus:           aggregate.PaymentStatus().String(),
	}

	if id := aggregate.TransporterID(); id != nil {
		raw := id.Bytes()
		dto.TransporterID = &raw
	}

	for _, li := range aggregate.LineItems() {
		dto.LineItems = append(dto.LineItems, LineItemDTO{
			OrderID:       dto.ID,
			CropID:        li.CropID().Bytes(),
			CropName:      li.CropName(),
			Quantity:      li.Quantity(),
			UnitPrice:     li.UnitPrice(),
			Unit:          li.Unit().String(),
			WeightPerUnit: li.WeightPerUnit(),
		})
	}

	for _, c := range aggregate.Complaints() {
		dto.Complaints = append(dto.Complaints, ComplaintDTO{
			ID:          c.ID().Bytes(),
			OrderID:     dto.ID,
			RaisedBy:    c.RaisedBy().Bytes(),
			Description: c.Description(),
			RaisedAt:    c.RaisedAt(),
			Resolved:    c.Resolved(),
			Resolution:  c.Resolution(),
			ResolvedAt:  c.ResolvedAt(),
		})
	}

	if qv := aggregate.QualityVerification(); qv != nil {
		score := qv.Score()
		verifiedBy := qv.VerifiedBy().Bytes()
		verifiedAt := qv.VerifiedAt()
		dto.QualityScore = &score
		dto.QualityNotes = qv.Notes()
		dto.QualityVerifiedBy = &verifiedBy
		dto.QualityVerifiedAt = &verifiedAt
	}

	if pd := aggregate.PaymentDetails(); pd != nil {
		ref := pd.PaymentRef()
		farmerTransfer := pd.FarmerTransferStatus().String()
		transporterTransfer := pd.TransporterTransferStatus().String()
		settledAt := pd.SettledAt()
		dto.PaymentRef = &ref
		dto.FarmerTransferStatus = &farmerTransfer
		dto.TransporterTransferStatus = &transporterTransfer
		dto.SettledAt = &settledAt
	}

	if rd := aggregate.RefundDetails(); rd != nil {
		amount := rd.Amount()
		refundedAt := rd.RefundedAt()
		dto.RefundAmount = &amount
		dto.RefundReason = rd.Reason()
		dto.RefundedAt = &refundedAt
	}

	return dto
}

// toDomain converts a database DTO back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var transporterID *kernel.UUID
	if dto.TransporterID != nil {
		tID, tErr := kernel.UUIDFromBytes((*dto.TransporterID)[:])
		if tErr != nil {
			return nil, tErr
		}
		transporterID = &tID
	}

	pickup, err := kernel.NewGeoPoint(dto.PickupLat, dto.PickupLon)
	if err != nil {
		return nil, err
	}
	delivery, err := kernel.NewGeoPoint(dto.DeliveryLat, dto.DeliveryLon)
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		cropID, liErr := kernel.UUIDFromBytes(li.CropID[:])
		if liErr != nil {
			return nil, liErr
		}
		item, liErr := order.NewLineItem(
			cropID, li.CropName, li.Quantity, li.UnitPrice,
			crop.Unit(li.Unit), li.WeightPerUnit,
		)
		if liErr != nil {
			return nil, liErr
		}
		lineItems = append(lineItems, item)
	}

	complaints := make([]order.Complaint, 0, len(dto.Complaints))
	for _, c := range dto.Complaints {
		complaintID, cErr := kernel.UUIDFromBytes(c.ID[:])
		if cErr != nil {
			return nil, cErr
		}
		raisedBy, cErr := kernel.UUIDFromBytes(c.RaisedBy[:])
		if cErr != nil {
			return nil, cErr
		}
		complaints = append(complaints, order.RestoreComplaint(
			complaintID, raisedBy, c.Description, c.RaisedAt,
			c.Resolved, c.Resolution, c.ResolvedAt,
		))
	}

	var verification *order.QualityVerification
	if dto.QualityScore != nil && dto.QualityVerifiedBy != nil && dto.QualityVerifiedAt != nil {
		verifiedBy, qErr := kernel.UUIDFromBytes((*dto.QualityVerifiedBy)[:])
		if qErr != nil {
			return nil, qErr
		}
		qv := order.RestoreQualityVerification(
			verifiedBy, *dto.QualityScore, dto.QualityNotes, *dto.QualityVerifiedAt)
		verification = &qv
	}

	var paymentDetails *order.PaymentDetails
	if dto.PaymentRef != nil && dto.FarmerTransferStatus != nil &&
		dto.TransporterTransferStatus != nil && dto.SettledAt != nil {
		pd := order.RestorePaymentDetails(
			*dto.PaymentRef,
			order.TransferStatus(*dto.FarmerTransferStatus),
			order.TransferStatus(*dto.TransporterTransferStatus),
			*dto.SettledAt,
		)
		paymentDetails = &pd
	}

	var refundDetails *order.RefundDetails
	if dto.RefundAmount != nil && dto.RefundedAt != nil {
		rd := order.RestoreRefundDetails(*dto.RefundAmount, dto.RefundReason, *dto.RefundedAt)
		refundDetails = &rd
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                      id,
		FarmerID:                farmerID,
		RestaurantID:            restaurantID,
		TransporterID:           transporterID,
		LineItems:               lineItems,
		TotalAmount:             dto.TotalAmount,
		TotalWeight:             dto.TotalWeight,
		DistanceKm:              dto.DistanceKm,
		DeliveryFee:             dto.DeliveryFee,
		FarmerDeliveryShare:     dto.FarmerDeliveryShare,
		RestaurantDeliveryShare: dto.RestaurantDeliveryShare,
		PickupLocation:          pickup,
		DeliveryLocation:        delivery,
		Status:                  order.Status(dto.Status),
		Notes:                   dto.Notes,
		CreatedAt:               dto.CreatedAt,
		EstimatedDeliveryTime:   dto.EstimatedDeliveryTime,
		ActualDeliveryTime:      dto.ActualDeliveryTime,
		QualityVerification:     verification,
		Complaints:              complaints,
		PaymentStatus:           order.PaymentStatus(dto.PaymentStatus),
		PaymentDetails:          paymentDetails,
		RefundDetails:           refundDetails,
	})
}
