// Package croprepo persists crop listings with GORM. Inventory mutations run
// as conditional in-database decrements so concurrent orders cannot oversell
// a listing.
package croprepo

import (
	"time"

	"farmlink/internal/core/domain/model/crop"
	"farmlink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CropDTO represents the database structure for persisting crop listings.
type CropDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmerID          uuid.UUID `gorm:"type:uuid;index"`
	Name              string
	Description       string
	Category          string `gorm:"index"`
	Price             float64
	Unit              string
	Quantity          float64
	AvailableQuantity float64
	WeightPerUnit     float64
	HarvestDate       time.Time
	Lat               float64
	Lon               float64
	Organic           bool
	Quality           string
	Status            string `gorm:"index"`
}

// TableName overrides GORM's default naming to use "crops".
func (CropDTO) TableName() string {
	return "crops"
}

// fromDomain converts a crop aggregate to its database representation.
func fromDomain(aggregate *crop.Crop) CropDTO {
	return CropDTO{
		ID:                aggregate.ID().Bytes(),
		FarmerID:          aggregate.FarmerID().Bytes(),
		Name:              aggregate.Name(),
		Description:       aggregate.Description(),
		Category:          string(aggregate.Category()),
		Price:             aggregate.Price(),
		Unit:              aggregate.Unit().String(),
		Quantity:          aggregate.Quantity(),
		AvailableQuantity: aggregate.AvailableQuantity(),
		WeightPerUnit:     aggregate.WeightPerUnit(),
		HarvestDate:       aggregate.HarvestDate(),
		Lat:               aggregate.Location().Latitude(),
		Lon:               aggregate.Location().Longitude(),
		Organic:           aggregate.Organic(),
		Quality:           string(aggregate.Quality()),
		Status:            aggregate.Status().String(),
	}
}

// toDomain converts a database DTO back to a crop aggregate.
func toDomain(dto CropDTO) (*crop.Crop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return nil, err
	}

	return crop.RestoreCrop(
		id,
		farmerID,
		dto.Name,
		dto.Description,
		crop.Category(dto.Category),
		dto.Price,
		crop.Unit(dto.Unit),
		dto.Quantity,
		dto.AvailableQuantity,
		dto.WeightPerUnit,
		dto.HarvestDate,
		location,
		dto.Organic,
		crop.Quality(dto.Quality),
		crop.Status(dto.Status),
	)
}
