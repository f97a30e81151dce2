// Package partyrepo persists marketplace parties with GORM.
package partyrepo

import (
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/party"

	"github.com/google/uuid"
)

// PartyDTO represents the database structure for persisting parties.
type PartyDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Phone       string
	Role        string `gorm:"index"`
	Lat         float64
	Lon         float64
	TotalOrders int
}

// TableName overrides GORM's default naming to use "parties".
func (PartyDTO) TableName() string {
	return "parties"
}

// fromDomain converts a party aggregate to its database representation.
func fromDomain(aggregate *party.Party) PartyDTO {
	return PartyDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Phone:       aggregate.Phone(),
		Role:        aggregate.Role().String(),
		Lat:         aggregate.Location().Latitude(),
		Lon:         aggregate.Location().Longitude(),
		TotalOrders: aggregate.TotalOrders(),
	}
}

// toDomain converts a database DTO back to a party aggregate.
func toDomain(dto PartyDTO) (*party.Party, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return nil, err
	}

	return party.RestoreParty(
		id,
		dto.Name,
		dto.Phone,
		party.Role(dto.Role),
		location,
		dto.TotalOrders,
	)
}
