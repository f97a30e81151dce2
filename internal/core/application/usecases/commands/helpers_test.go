package commands_test

import (
	"testing"
	"time"

	"farmlink/internal/core/domain/model/crop"
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/order"
	"farmlink/internal/core/domain/model/party"

	"github.com/stretchr/testify/require"
)

func geoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func testParty(t *testing.T, id kernel.UUID, role party.Role, lat, lon float64) *party.Party {
	t.Helper()
	p, err := party.NewParty(id, "test "+role.String(), "+919800000000", role, geoPoint(t, lat, lon))
	require.NoError(t, err)
	return p
}

func testCrop(t *testing.T, id, farmerID kernel.UUID, quantity float64) *crop.Crop {
	t.Helper()
	c, err := crop.NewCrop(
		id, farmerID, "Tomato", "field fresh", crop.CategoryVegetables,
		25, crop.UnitKg, quantity, 0, time.Now(), geoPoint(t, 17.4, 78.5),
		false, crop.QualityGood,
	)
	require.NoError(t, err)
	return c
}

type orderParties struct {
	farmerID      kernel.UUID
	restaurantID  kernel.UUID
	transporterID kernel.UUID
}

func testOrder(t *testing.T, id kernel.UUID, p orderParties, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(kernel.NewUUID(), "Tomato", 10, 25, crop.UnitKg, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		id, p.farmerID, p.restaurantID,
		[]order.LineItem{item}, 12, 130, 65, 65,
		geoPoint(t, 17.4, 78.5), geoPoint(t, 17.5, 78.6),
		"", time.Now().UTC(),
	)
	require.NoError(t, err)

	if status == order.StatusPending {
		return o
	}
	if status == order.StatusCancelled {
		require.NoError(t, o.Cancel(p.farmerID, "test"))
		return o
	}

	require.NoError(t, o.Confirm(p.farmerID))
	if status == order.StatusConfirmed {
		return o
	}

	require.NoError(t, o.Accept(p.transporterID))
	require.NoError(t, o.MarkPickedUp(p.transporterID))
	if status == order.StatusPickedUp {
		return o
	}

	require.NoError(t, o.MarkInTransit(p.transporterID))
	if status == order.StatusInTransit {
		return o
	}

	require.NoError(t, o.MarkDelivered(p.transporterID, time.Now().UTC()))
	require.Equal(t, status, o.Status())
	return o
}
