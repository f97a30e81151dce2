package commands

import (
	"errors"
	"time"

	"farmlink/internal/core/domain/model/crop"
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/guard"
)

var ErrCreateCropCommandIsNotConstructed = errors.New(
	"CreateCropCommand must be created via NewCreateCropCommand constructor",
)

// CreateCropCommand lists a new crop for a farmer. Voice marks listings that
// came in through the voice pipeline; they fall back to a different default
// weight table when no explicit weight per unit is given.
type CreateCropCommand struct { //nolint:recvcheck //using for validation
	cropID        kernel.UUID
	farmerID      kernel.UUID
	name          string
	description   string
	category      crop.Category
	price         float64
	unit          crop.Unit
	quantity      float64
	weightPerUnit float64
	harvestDate   time.Time
	location      kernel.GeoPoint
	organic       bool
	quality       crop.Quality
	voice         bool

	guard guard.ConstructorGuard
}

// CreateCropParams carries the listing details for NewCreateCropCommand.
type CreateCropParams struct {
	CropID        kernel.UUID
	FarmerID      kernel.UUID
	Name          string
	Description   string
	Category      crop.Category
	Price         float64
	Unit          crop.Unit
	Quantity      float64
	WeightPerUnit float64
	HarvestDate   time.Time
	Location      kernel.GeoPoint
	Organic       bool
	Quality       crop.Quality
	Voice         bool
}

// NewCreateCropCommand creates a command to list a crop. Field validation is
// left to the Crop constructor; only the identifiers are checked here.
func NewCreateCropCommand(params CreateCropParams) (CreateCropCommand, error) {
	if err := errors.Join(
		params.CropID.Validate(),
		params.FarmerID.Validate(),
	); err != nil {
		return CreateCropCommand{}, err
	}

	return CreateCropCommand{
		cropID:        params.CropID,
		farmerID:      params.FarmerID,
		name:          params.Name,
		description:   params.Description,
		category:      params.Category,
		price:         params.Price,
		unit:          params.Unit,
		quantity:      params.Quantity,
		weightPerUnit: params.WeightPerUnit,
		harvestDate:   params.HarvestDate,
		location:      params.Location,
		organic:       params.Organic,
		quality:       params.Quality,
		voice:         params.Voice,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCropCommand) Validate() error {
	return c.guard.Validate(ErrCreateCropCommandIsNotConstructed)
}

func (c CreateCropCommand) CropID() kernel.UUID      { return c.cropID }
func (c CreateCropCommand) FarmerID() kernel.UUID    { return c.farmerID }
func (c CreateCropCommand) Name() string             { return c.name }
func (c CreateCropCommand) Description() string      { return c.description }
func (c CreateCropCommand) Category() crop.Category  { return c.category }
func (c CreateCropCommand) Price() float64           { return c.price }
func (c CreateCropCommand) Unit() crop.Unit          { return c.unit }
func (c CreateCropCommand) Quantity() float64        { return c.quantity }
func (c CreateCropCommand) WeightPerUnit() float64   { return c.weightPerUnit }
func (c CreateCropCommand) HarvestDate() time.Time   { return c.harvestDate }
func (c CreateCropCommand) Location() kernel.GeoPoint { return c.location }
func (c CreateCropCommand) Organic() bool            { return c.organic }
func (c CreateCropCommand) Quality() crop.Quality    { return c.quality }
func (c CreateCropCommand) Voice() bool              { return c.voice }
