package croprepo

import (
	"context"
	"errors"

	"farmlink/internal/core/domain/model/crop"
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/ports"
	"farmlink/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.CropRepository = &GormCropRepository{}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCropRepository persists crop listings in PostgreSQL.
type GormCropRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCropRepository creates a repository bound to a database handle.
func NewGormCropRepository(db *gorm.DB, tracker aggregateTracker) *GormCropRepository {
	return &GormCropRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new crop listing.
func (r *GormCropRepository) Add(ctx context.Context, aggregate *crop.Crop) error {
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

// Get loads a crop listing by id.
func (r *GormCropRepository) Get(ctx context.Context, id kernel.UUID) (*crop.Crop, error) {
	dto := CropDTO{}

	result := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("crop", id.String())
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

// Reserve decrements available_quantity in a single conditional UPDATE so two
// concurrent orders cannot both take the last units. The listing flips to
// out_of_stock when the reservation empties it.
func (r *GormCropRepository) Reserve(ctx context.Context, id kernel.UUID, qty float64) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if qty <= 0 {
		return errs.NewValueIsRequiredError("qty")
	}

	result := r.db.WithContext(ctx).
		Model(&CropDTO{}).
		Where(
			"id = ? AND status = ? AND available_quantity >= ?",
			id.Bytes(), crop.StatusAvailable.String(), qty,
		).
		Updates(map[string]any{
			"available_quantity": gorm.Expr("available_quantity - ?", qty),
			"status": gorm.Expr(
				"CASE WHEN available_quantity - ? <= 0 THEN ? ELSE status END",
				qty, crop.StatusOutOfStock.String(),
			),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("crop", id.String())
	}

	return nil
}

// Release returns qty units to available_quantity and re-opens the listing.
func (r *GormCropRepository) Release(ctx context.Context, id kernel.UUID, qty float64) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if qty <= 0 {
		return errs.NewValueIsRequiredError("qty")
	}

	result := r.db.WithContext(ctx).
		Model(&CropDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"available_quantity": gorm.Expr("available_quantity + ?", qty),
			"status":             crop.StatusAvailable.String(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("crop", id.String())
	}

	return nil
}
