package orderrepo

import (
	"context"
	"errors"
	"time"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/order"
	"farmlink/internal/core/ports"
	"farmlink/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.OrderRepository = &GormOrderRepository{}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormOrderRepository persists order aggregates in PostgreSQL.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormOrderRepository creates a repository bound to a database handle.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order together with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the aggregate's current state conditional on the row still
// holding fromStatus. A concurrent transition loses the race and gets a
// conflict error instead of silently clobbering the winner's write.
func (r *GormOrderRepository) Update(
	ctx context.Context,
	aggregate *order.Order,
	fromStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := fromStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, fromStatus.String()).
		Updates(map[string]any{
			"transporter_id":              dto.TransporterID,
			"status":                      dto.Status,
			"notes":                       dto.Notes,
			"actual_delivery_time":        dto.ActualDeliveryTime,
			"quality_score":               dto.QualityScore,
			"quality_notes":               dto.QualityNotes,
			"quality_verified_by":         dto.QualityVerifiedBy,
			"quality_verified_at":         dto.QualityVerifiedAt,
			"payment_status":              dto.PaymentStatus,
			"payment_ref":                 dto.PaymentRef,
			"farmer_transfer_status":      dto.FarmerTransferStatus,
			"transporter_transfer_status": dto.TransporterTransferStatus,
			"settled_at":                  dto.SettledAt,
			"refund_amount":               dto.RefundAmount,
			"refund_reason":               dto.RefundReason,
			"refunded_at":                 dto.RefundedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", aggregate.ID().String())
	}

	if err := r.saveComplaints(ctx, dto.Complaints); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Assign records the transporter on a confirmed order that nobody claimed
// yet. Exactly one of several concurrent claimants wins; the rest get a
// conflict error, as does any claim on an order outside confirmed status.
func (r *GormOrderRepository) Assign(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.TransporterID() == nil {
		return errs.NewValueIsRequiredError("transporterID")
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND transporter_id IS NULL AND status = ?",
			dto.ID, order.StatusConfirmed.String()).
		Update("transporter_id", dto.TransporterID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads an order aggregate with its line items and complaints.
func (r *GormOrderRepository) Get(ctx context.Context, ID kernel.UUID) (*order.Order, error) {
	dto := OrderDTO{}

	result := r.db.WithContext(ctx).
		Preload("LineItems").
		Preload("Complaints").
		First(&dto, "id = ?", ID.Bytes())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", ID.String())
		}
		return nil, result.Error
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// GetAllUnassigned returns confirmed orders without a transporter, oldest
// first so long-waiting orders surface on top of the job board.
func (r *GormOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO

	result := r.db.WithContext(ctx).
		Preload("LineItems").
		Preload("Complaints").
		Where("status = ? AND transporter_id IS NULL", order.StatusConfirmed.String()).
		Order("created_at").
		Find(&dtos)
	if result.Error != nil {
		return nil, result.Error
	}

	return r.toAggregates(dtos)
}

// GetAllSettledBefore returns paid orders whose transfer legs are still
// processing and whose settlement happened at or before the cutoff.
func (r *GormOrderRepository) GetAllSettledBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO

	result := r.db.WithContext(ctx).
		Preload("LineItems").
		Preload("Complaints").
		Where(
			"payment_status = ? AND farmer_transfer_status = ? AND settled_at <= ?",
			order.PaymentPaid.String(),
			order.TransferProcessing.String(),
			cutoff,
		).
		Order("settled_at").
		Find(&dtos)
	if result.Error != nil {
		return nil, result.Error
	}

	return r.toAggregates(dtos)
}

func (r *GormOrderRepository) toAggregates(dtos []OrderDTO) ([]*order.Order, error) {
	aggregates := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}

		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}

// saveComplaints upserts the complaint log. Complaints are append-only in the
// domain, so an upsert by primary key covers both new entries and resolutions.
func (r *GormOrderRepository) saveComplaints(ctx context.Context, complaints []ComplaintDTO) error {
	if len(complaints) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&complaints).Error
}
