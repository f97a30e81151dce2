package commands

import (
	"context"
	"fmt"
	"time"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/order"
	"farmlink/internal/core/domain/model/party"
	"farmlink/internal/core/domain/services"
	"farmlink/internal/core/ports"
	"farmlink/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
//
// Placement reserves crop inventory, prices the delivery from the distance
// between the farmer and the restaurant, and creates the order in pending
// status, all inside one transaction. The farmer is notified after commit.
type PlaceOrderCommandHandler struct {
	uowFactory MarketUoWFactory
	pricer     services.DeliveryPricer
	notifier   ports.NotificationSink
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory MarketUoWFactory,
	pricer services.DeliveryPricer,
	notifier ports.NotificationSink,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
		notifier:   notifier,
	}
}

// Handle processes the order placement command.
//
// Crop reservations are conditional decrements, so two restaurants racing
// for the last units cannot both succeed; the loser's transaction rolls
// back with an insufficient quantity error.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partyRepo := uow.PartyRepository()
	farmer, err := h.getPartyInRole(ctx, partyRepo, cmd.FarmerID(), party.RoleFarmer)
	if err != nil {
		return err
	}
	restaurant, err := h.getPartyInRole(ctx, partyRepo, cmd.RestaurantID(), party.RoleRestaurant)
	if err != nil {
		return err
	}

	cropRepo := uow.CropRepository()
	lineItems := make([]order.LineItem, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		aggregate, err := cropRepo.Get(ctx, item.CropID)
		if err != nil {
			return err
		}
		if !aggregate.FarmerID().IsEqual(cmd.FarmerID()) {
			return errs.NewObjectNotFoundError("crop", item.CropID.String())
		}
		if err = cropRepo.Reserve(ctx, item.CropID, item.Quantity); err != nil {
			return err
		}

		lineItem, err := order.NewLineItem(
			aggregate.ID(), aggregate.Name(), item.Quantity,
			aggregate.Price(), aggregate.Unit(), aggregate.WeightPerUnit(),
		)
		if err != nil {
			return err
		}
		lineItems = append(lineItems, lineItem)
	}

	totalWeight := 0.0
	for _, li := range lineItems {
		totalWeight += li.Weight()
	}

	distanceKm, err := farmer.Location().DistanceKm(restaurant.Location())
	if err != nil {
		return err
	}
	fee := h.pricer.Fee(distanceKm, totalWeight)
	farmerShare, restaurantShare := h.pricer.Split(fee)

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.FarmerID(), cmd.RestaurantID(),
		lineItems, distanceKm, fee, farmerShare, restaurantShare,
		farmer.Location(), restaurant.Location(),
		cmd.Notes(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, cmd.FarmerID(), "order.placed",
		fmt.Sprintf("new order %s from %s", cmd.OrderID(), restaurant.Name()))
	return nil
}

func (h *PlaceOrderCommandHandler) getPartyInRole(
	ctx context.Context,
	repo ports.PartyRepository,
	id kernel.UUID,
	role party.Role,
) (*party.Party, error) {
	p, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Role() != role {
		return nil, errs.NewObjectNotFoundError(role.String(), id.String())
	}
	return p, nil
}
