package partyrepo

import (
	"context"
	"errors"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/party"
	"farmlink/internal/core/ports"
	"farmlink/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.PartyRepository = &GormPartyRepository{}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormPartyRepository persists marketplace parties in PostgreSQL.
type GormPartyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormPartyRepository creates a repository bound to a database handle.
func NewGormPartyRepository(db *gorm.DB, tracker aggregateTracker) *GormPartyRepository {
	return &GormPartyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new party.
func (r *GormPartyRepository) Add(ctx context.Context, aggregate *party.Party) error {
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

// Get loads a party by id.
func (r *GormPartyRepository) Get(ctx context.Context, id kernel.UUID) (*party.Party, error) {
	dto := PartyDTO{}

	result := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("party", id.String())
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

// IncrementTotalOrders bumps the order counter in the database so concurrent
// placements do not lose updates.
func (r *GormPartyRepository) IncrementTotalOrders(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&PartyDTO{}).
		Where("id = ?", id.Bytes()).
		Update("total_orders", gorm.Expr("total_orders + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("party", id.String())
	}

	return nil
}
