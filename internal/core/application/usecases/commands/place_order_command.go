package commands

import (
	"errors"
	"fmt"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
)

// PlaceOrderItem is one requested crop position in a new order.
type PlaceOrderItem struct {
	CropID   kernel.UUID
	Quantity float64
}

// PlaceOrderCommand represents a restaurant's request to order crops from a
// single farmer.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), restaurantID, farmerID,
//	    []PlaceOrderItem{{CropID: cropID, Quantity: 10}}, "leave at the back gate")
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	farmerID     kernel.UUID
	items        []PlaceOrderItem
	notes        string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates all identifiers and requires at least one item with a positive
// quantity.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	farmerID kernel.UUID,
	items []PlaceOrderItem,
	notes string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRestaurantID(restaurantID),
		cmd.setFarmerID(farmerID),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID      { return c.orderID }
func (c PlaceOrderCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c PlaceOrderCommand) FarmerID() kernel.UUID     { return c.farmerID }
func (c PlaceOrderCommand) Items() []PlaceOrderItem   { return c.items }
func (c PlaceOrderCommand) Notes() string             { return c.notes }

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}
	c.farmerID = farmerID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []PlaceOrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if err := item.CropID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("quantity for crop %s must be greater than 0", item.CropID)
		}
	}
	c.items = items
	return nil
}
