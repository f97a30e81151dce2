package crop

import (
	"errors"
	"fmt"
	"time"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/errs"
)

// ErrCropIsNotConstructed is returned when a Crop was not created through
// NewCrop, NewVoiceCrop, or RestoreCrop.
var ErrCropIsNotConstructed = errors.New("Crop must be created via NewCrop, NewVoiceCrop, or RestoreCrop")

// Category groups crops for browsing filters.
type Category string

const (
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryGrains     Category = "grains"
	CategorySpices     Category = "spices"
	CategoryHerbs      Category = "herbs"
	CategoryFlowers    Category = "flowers"
	CategoryOther      Category = "other"
)

// Validate checks the category against the known set.
func (c Category) Validate() error {
	switch c {
	case CategoryVegetables, CategoryFruits, CategoryGrains, CategorySpices,
		CategoryHerbs, CategoryFlowers, CategoryOther:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%q is not a valid category", string(c)))
	}
}

// Quality is the farmer-declared grade of a listing.
type Quality string

const (
	QualityPremium Quality = "premium"
	QualityGood    Quality = "good"
	QualityAverage Quality = "average"
)

// Validate checks the quality grade against the known set.
func (q Quality) Validate() error {
	switch q {
	case QualityPremium, QualityGood, QualityAverage:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("quality",
			fmt.Errorf("%q is not a valid quality grade", string(q)))
	}
}

// Crop is the aggregate for a farmer's produce listing. It carries the live
// inventory counter (availableQuantity) that order placement reserves and
// order cancellation releases.
//
// Invariants:
//   - price ≥ 0, quantity > 0, weightPerUnit ≥ 0
//   - availableQuantity never drops below zero through Reserve
//   - status is out_of_stock exactly while availableQuantity is exhausted
type Crop struct {
	id                kernel.UUID
	farmerID          kernel.UUID
	name              string
	description       string
	category          Category
	price             float64
	unit              Unit
	quantity          float64
	availableQuantity float64
	weightPerUnit     float64
	harvestDate       time.Time
	location          kernel.GeoPoint
	organic           bool
	quality           Quality
	status            Status

	isConstructed bool
}

// NewCrop creates a manually listed crop. When weightPerUnit is zero the
// manual default table supplies the per-unit weight for the chosen unit.
func NewCrop(
	id kernel.UUID,
	farmerID kernel.UUID,
	name string,
	description string,
	category Category,
	price float64,
	unit Unit,
	quantity float64,
	weightPerUnit float64,
	harvestDate time.Time,
	location kernel.GeoPoint,
	organic bool,
	quality Quality,
) (*Crop, error) {
	if weightPerUnit == 0 {
		weightPerUnit = DefaultWeightPerUnit(unit)
	}
	return newCrop(id, farmerID, name, description, category, price, unit,
		quantity, weightPerUnit, harvestDate, location, organic, quality)
}

// NewVoiceCrop creates a crop listed through the voice pipeline. When
// weightPerUnit is zero the voice default table supplies the per-unit weight;
// the voice table intentionally differs from the manual one (see
// VoiceDefaultWeightPerUnit).
func NewVoiceCrop(
	id kernel.UUID,
	farmerID kernel.UUID,
	name string,
	description string,
	category Category,
	price float64,
	unit Unit,
	quantity float64,
	weightPerUnit float64,
	harvestDate time.Time,
	location kernel.GeoPoint,
	organic bool,
	quality Quality,
) (*Crop, error) {
	if weightPerUnit == 0 {
		weightPerUnit = VoiceDefaultWeightPerUnit(unit)
	}
	return newCrop(id, farmerID, name, description, category, price, unit,
		quantity, weightPerUnit, harvestDate, location, organic, quality)
}

func newCrop(
	id kernel.UUID,
	farmerID kernel.UUID,
	name string,
	description string,
	category Category,
	price float64,
	unit Unit,
	quantity float64,
	weightPerUnit float64,
	harvestDate time.Time,
	location kernel.GeoPoint,
	organic bool,
	quality Quality,
) (*Crop, error) {
	c := &Crop{
		status:        StatusAvailable,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setFarmerID(farmerID),
		c.setName(name),
		c.setCategory(category),
		c.setPrice(price),
		c.setUnit(unit),
		c.setQuantity(quantity),
		c.setWeightPerUnit(weightPerUnit),
		c.setLocation(location),
		c.setQuality(quality),
	); err != nil {
		return nil, err
	}

	c.description = description
	c.availableQuantity = quantity
	c.harvestDate = harvestDate
	c.organic = organic
	return c, nil
}

// RestoreCrop rebuilds a crop aggregate from persistence. All invariants are
// assumed to have been enforced when the row was written; only structural
// validity is re-checked.
func RestoreCrop(
	id kernel.UUID,
	farmerID kernel.UUID,
	name string,
	description string,
	category Category,
	price float64,
	unit Unit,
	quantity float64,
	availableQuantity float64,
	weightPerUnit float64,
	harvestDate time.Time,
	location kernel.GeoPoint,
	organic bool,
	quality Quality,
	status Status,
) (*Crop, error) {
	if err := errors.Join(
		id.Validate(),
		farmerID.Validate(),
		unit.Validate(),
		status.Validate(),
		location.Validate(),
	); err != nil {
		return nil, err
	}

	return &Crop{
		id:                id,
		farmerID:          farmerID,
		name:              name,
		description:       description,
		category:          category,
		price:             price,
		unit:              unit,
		quantity:          quantity,
		availableQuantity: availableQuantity,
		weightPerUnit:     weightPerUnit,
		harvestDate:       harvestDate,
		location:          location,
		organic:           organic,
		quality:           quality,
		status:            status,
		isConstructed:     true,
	}, nil
}

// Validate ensures the crop was built through a constructor.
func (c *Crop) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCropIsNotConstructed
	}
	return nil
}

func (c *Crop) ID() kernel.UUID            { return c.id }
func (c *Crop) FarmerID() kernel.UUID      { return c.farmerID }
func (c *Crop) Name() string               { return c.name }
func (c *Crop) Description() string        { return c.description }
func (c *Crop) Category() Category         { return c.category }
func (c *Crop) Price() float64             { return c.price }
func (c *Crop) Unit() Unit                 { return c.unit }
func (c *Crop) Quantity() float64          { return c.quantity }
func (c *Crop) AvailableQuantity() float64 { return c.availableQuantity }
func (c *Crop) WeightPerUnit() float64     { return c.weightPerUnit }
func (c *Crop) HarvestDate() time.Time     { return c.harvestDate }
func (c *Crop) Location() kernel.GeoPoint  { return c.location }
func (c *Crop) Organic() bool              { return c.organic }
func (c *Crop) Quality() Quality           { return c.quality }
func (c *Crop) Status() Status             { return c.status }

// IsEqual compares two crops by identifier.
func (c *Crop) IsEqual(other *Crop) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// Reserve takes qty units out of the available quantity for a new order.
// The crop must be available and hold at least qty units; when the
// reservation empties the listing, status flips to out_of_stock.
//
// The persistence layer re-applies this as a conditional decrement so that
// concurrent orders against the same crop cannot both consume the last units.
func (c *Crop) Reserve(qty float64) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than 0", qty))
	}
	if c.status != StatusAvailable {
		return errs.NewObjectNotFoundError("crop", c.id.String())
	}
	if c.availableQuantity < qty {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("insufficient quantity for %s, available: %v", c.name, c.availableQuantity))
	}

	c.availableQuantity -= qty
	if c.availableQuantity <= 0 {
		c.status = StatusOutOfStock
	}
	return nil
}

// Release returns qty units to the available quantity after an order
// cancellation and re-opens the listing.
func (c *Crop) Release(qty float64) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than 0", qty))
	}

	c.availableQuantity += qty
	c.status = StatusAvailable
	return nil
}

func (c *Crop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Crop) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}
	c.farmerID = farmerID
	return nil
}

func (c *Crop) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Crop) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

func (c *Crop) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}
	c.price = price
	return nil
}

func (c *Crop) setUnit(unit Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	c.unit = unit
	return nil
}

func (c *Crop) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}

func (c *Crop) setWeightPerUnit(weightPerUnit float64) error {
	if weightPerUnit < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightPerUnit",
			fmt.Errorf("%v is negative", weightPerUnit))
	}
	c.weightPerUnit = weightPerUnit
	return nil
}

func (c *Crop) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *Crop) setQuality(quality Quality) error {
	if err := quality.Validate(); err != nil {
		return err
	}
	c.quality = quality
	return nil
}
