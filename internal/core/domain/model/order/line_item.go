package order

import (
	"fmt"

	"farmlink/internal/core/domain/model/crop"
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/errs"
)

// LineItem is one crop position on an order. It snapshots the unit price and
// per-unit weight at placement time so later edits to the crop listing do not
// change an already placed order.
type LineItem struct {
	cropID        kernel.UUID
	cropName      string
	quantity      float64
	unitPrice     float64
	unit          crop.Unit
	weightPerUnit float64
}

// NewLineItem creates a validated line item.
func NewLineItem(
	cropID kernel.UUID,
	cropName string,
	quantity float64,
	unitPrice float64,
	unit crop.Unit,
	weightPerUnit float64,
) (LineItem, error) {
	if err := cropID.Validate(); err != nil {
		return LineItem{}, err
	}
	if cropName == "" {
		return LineItem{}, errs.NewValueIsRequiredError("cropName")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%v is negative", unitPrice))
	}
	if err := unit.Validate(); err != nil {
		return LineItem{}, err
	}
	if weightPerUnit < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("weightPerUnit",
			fmt.Errorf("%v is negative", weightPerUnit))
	}

	return LineItem{
		cropID:        cropID,
		cropName:      cropName,
		quantity:      quantity,
		unitPrice:     unitPrice,
		unit:          unit,
		weightPerUnit: weightPerUnit,
	}, nil
}

func (li LineItem) CropID() kernel.UUID    { return li.cropID }
func (li LineItem) CropName() string       { return li.cropName }
func (li LineItem) Quantity() float64      { return li.quantity }
func (li LineItem) UnitPrice() float64     { return li.unitPrice }
func (li LineItem) Unit() crop.Unit        { return li.unit }
func (li LineItem) WeightPerUnit() float64 { return li.weightPerUnit }

// Subtotal is the goods price of this position.
func (li LineItem) Subtotal() float64 {
	return li.quantity * li.unitPrice
}

// Weight is the shipped weight of this position in kilograms.
func (li LineItem) Weight() float64 {
	return li.quantity * li.weightPerUnit
}
