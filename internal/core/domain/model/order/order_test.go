package order_test

import (
	"testing"
	"time"

	"farmlink/internal/core/domain/model/crop"
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/order"
	"farmlink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	order         *order.Order
	farmerID      kernel.UUID
	restaurantID  kernel.UUID
	transporterID kernel.UUID
	now           time.Time
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	farmerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	pickup, err := kernel.NewGeoPoint(17.4, 78.5)
	require.NoError(t, err)
	delivery, err := kernel.NewGeoPoint(17.5, 78.6)
	require.NoError(t, err)

	item, err := order.NewLineItem(kernel.NewUUID(), "Tomato", 10, 25, crop.UnitKg, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), farmerID, restaurantID,
		[]order.LineItem{item},
		12, 109, 54.5, 54.5,
		pickup, delivery, "", now,
	)
	require.NoError(t, err)

	return &orderFixture{
		order:         o,
		farmerID:      farmerID,
		restaurantID:  restaurantID,
		transporterID: kernel.NewUUID(),
		now:           now,
	}
}

// advance walks the fixture order to the requested status.
func (f *orderFixture) advance(t *testing.T, to order.Status) {
	t.Helper()

	steps := []struct {
		status order.Status
		apply  func() error
	}{
		{order.StatusConfirmed, func() error { return f.order.Confirm(f.farmerID) }},
		{order.StatusPickedUp, func() error {
			if err := f.order.Accept(f.transporterID); err != nil {
				return err
			}
			return f.order.MarkPickedUp(f.transporterID)
		}},
		{order.StatusInTransit, func() error { return f.order.MarkInTransit(f.transporterID) }},
		{order.StatusDelivered, func() error { return f.order.MarkDelivered(f.transporterID, f.now) }},
	}

	for _, step := range steps {
		if f.order.Status() == to {
			return
		}
		require.NoError(t, step.apply())
	}
	require.Equal(t, to, f.order.Status())
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with computed totals", func(t *testing.T) {
		f := newOrderFixture(t)

		require.NoError(t, f.order.Validate())
		assert.Equal(t, order.StatusPending, f.order.Status())
		assert.Equal(t, order.PaymentPending, f.order.PaymentStatus())
		assert.Nil(t, f.order.TransporterID())
		assert.InDelta(t, 250, f.order.TotalAmount(), 1e-9)  // 10 * 25
		assert.InDelta(t, 10, f.order.TotalWeight(), 1e-9)   // 10 * 1 kg
		assert.Equal(t, f.now.Add(24*time.Hour), f.order.EstimatedDeliveryTime())
		assert.Nil(t, f.order.ActualDeliveryTime())
	})

	t.Run("should fail without line items", func(t *testing.T) {
		pickup, _ := kernel.NewGeoPoint(17.4, 78.5)
		delivery, _ := kernel.NewGeoPoint(17.5, 78.6)

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, 12, 109, 54.5, 54.5, pickup, delivery, "", time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("farmer confirms a pending order", func(t *testing.T) {
		f := newOrderFixture(t)

		require.NoError(t, f.order.Confirm(f.farmerID))

		assert.Equal(t, order.StatusConfirmed, f.order.Status())
	})

	t.Run("only the order's farmer may confirm", func(t *testing.T) {
		f := newOrderFixture(t)

		err := f.order.Confirm(f.restaurantID)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, order.StatusPending, f.order.Status())
	})

	t.Run("confirming twice fails", func(t *testing.T) {
		f := newOrderFixture(t)
		require.NoError(t, f.order.Confirm(f.farmerID))

		assert.Error(t, f.order.Confirm(f.farmerID))
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("farmer cancels with a reason recorded in notes", func(t *testing.T) {
		f := newOrderFixture(t)

		require.NoError(t, f.order.Cancel(f.farmerID, "crop damaged"))

		assert.Equal(t, order.StatusCancelled, f.order.Status())
		assert.Contains(t, f.order.Notes(), "cancelled: crop damaged")
	})

	t.Run("farmer cancels a confirmed order", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusConfirmed)

		require.NoError(t, f.order.Cancel(f.farmerID, "crop damaged"))

		assert.Equal(t, order.StatusCancelled, f.order.Status())
	})

	t.Run("restaurant cannot cancel", func(t *testing.T) {
		f := newOrderFixture(t)

		err := f.order.Cancel(f.restaurantID, "menu changed")

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, order.StatusPending, f.order.Status())
	})

	t.Run("a stranger cannot cancel", func(t *testing.T) {
		f := newOrderFixture(t)

		err := f.order.Cancel(kernel.NewUUID(), "nope")

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("picked up orders cannot be cancelled", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusPickedUp)

		assert.Error(t, f.order.Cancel(f.farmerID, "too late"))
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("transporter accepts a confirmed order", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusConfirmed)

		require.NoError(t, f.order.Accept(f.transporterID))

		require.NotNil(t, f.order.TransporterID())
		assert.True(t, f.order.TransporterID().IsEqual(f.transporterID))
	})

	t.Run("assignment is set-once", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusConfirmed)
		require.NoError(t, f.order.Accept(f.transporterID))

		err := f.order.Accept(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.True(t, f.order.TransporterID().IsEqual(f.transporterID))
	})

	t.Run("pending orders cannot be accepted", func(t *testing.T) {
		f := newOrderFixture(t)

		err := f.order.Accept(f.transporterID)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Nil(t, f.order.TransporterID())
	})

	t.Run("cancelled orders cannot be accepted", func(t *testing.T) {
		f := newOrderFixture(t)
		require.NoError(t, f.order.Cancel(f.farmerID, ""))

		require.ErrorIs(t, f.order.Accept(f.transporterID), errs.ErrObjectNotFound)
	})
}

func TestOrder_DeliveryFlow(t *testing.T) {
	t.Run("only the assigned transporter moves the order", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusConfirmed)
		require.NoError(t, f.order.Accept(f.transporterID))

		require.ErrorIs(t, f.order.MarkPickedUp(kernel.NewUUID()), errs.ErrUnauthorized)
		require.NoError(t, f.order.MarkPickedUp(f.transporterID))
		require.ErrorIs(t, f.order.MarkInTransit(kernel.NewUUID()), errs.ErrUnauthorized)
	})

	t.Run("unassigned order cannot be picked up", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusConfirmed)

		require.ErrorIs(t, f.order.MarkPickedUp(f.transporterID), errs.ErrUnauthorized)
	})

	t.Run("delivery records the actual delivery time", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusInTransit)
		deliveredAt := f.now.Add(3 * time.Hour)

		require.NoError(t, f.order.MarkDelivered(f.transporterID, deliveredAt))

		assert.Equal(t, order.StatusDelivered, f.order.Status())
		require.NotNil(t, f.order.ActualDeliveryTime())
		assert.Equal(t, deliveredAt, *f.order.ActualDeliveryTime())
	})

	t.Run("delivery straight from picked_up is allowed", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusPickedUp)

		require.NoError(t, f.order.MarkDelivered(f.transporterID, f.now))
	})
}

func TestOrder_VerifyQuality(t *testing.T) {
	t.Run("transporter verifies quality during picked_up", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusPickedUp)

		require.NoError(t, f.order.VerifyQuality(f.transporterID, 4, "fresh, minor bruising", f.now))

		qv := f.order.QualityVerification()
		require.NotNil(t, qv)
		assert.Equal(t, 4, qv.Score())
		assert.True(t, qv.VerifiedBy().IsEqual(f.transporterID))
	})

	t.Run("verification is rejected before pickup", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusConfirmed)
		require.NoError(t, f.order.Accept(f.transporterID))

		assert.Error(t, f.order.VerifyQuality(f.transporterID, 4, "", f.now))
	})

	t.Run("verification is rejected in transit", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusInTransit)

		assert.Error(t, f.order.VerifyQuality(f.transporterID, 4, "", f.now))
	})

	t.Run("verification happens at most once", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusPickedUp)
		require.NoError(t, f.order.VerifyQuality(f.transporterID, 4, "", f.now))

		err := f.order.VerifyQuality(f.transporterID, 2, "second look", f.now)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 4, f.order.QualityVerification().Score())
	})

	t.Run("score outside 1..5 is rejected", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusPickedUp)

		require.ErrorIs(t, f.order.VerifyQuality(f.transporterID, 0, "", f.now), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, f.order.VerifyQuality(f.transporterID, 6, "", f.now), errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_Complaints(t *testing.T) {
	t.Run("restaurant and transporter raise, the log stays append-only", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusDelivered)

		first, err := f.order.RaiseComplaint(f.restaurantID, "two crates were crushed", f.now)
		require.NoError(t, err)
		_, err = f.order.RaiseComplaint(f.transporterID, "restaurant refused two crates", f.now)
		require.NoError(t, err)

		require.Len(t, f.order.Complaints(), 2)
		assert.True(t, f.order.Complaints()[0].ID().IsEqual(first.ID()))
	})

	t.Run("the farmer cannot complain", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusDelivered)

		_, err := f.order.RaiseComplaint(f.farmerID, "payment is late", f.now)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Empty(t, f.order.Complaints())
	})

	t.Run("an unassigned transporter cannot complain", func(t *testing.T) {
		f := newOrderFixture(t)

		_, err := f.order.RaiseComplaint(f.transporterID, "not my order", f.now)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("a stranger cannot complain", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusDelivered)

		_, err := f.order.RaiseComplaint(kernel.NewUUID(), "not my order", f.now)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("resolving keeps the complaint in the log", func(t *testing.T) {
		f := newOrderFixture(t)
		c, err := f.order.RaiseComplaint(f.restaurantID, "two crates were crushed", f.now)
		require.NoError(t, err)

		require.NoError(t, f.order.ResolveComplaint(c.ID(), "replacement sent", f.now))

		require.Len(t, f.order.Complaints(), 1)
		resolved := f.order.Complaints()[0]
		assert.True(t, resolved.Resolved())
		assert.Equal(t, "replacement sent", resolved.Resolution())
		require.NotNil(t, resolved.ResolvedAt())
	})

	t.Run("resolving twice fails", func(t *testing.T) {
		f := newOrderFixture(t)
		c, err := f.order.RaiseComplaint(f.restaurantID, "two crates were crushed", f.now)
		require.NoError(t, err)
		require.NoError(t, f.order.ResolveComplaint(c.ID(), "replacement sent", f.now))

		require.ErrorIs(t, f.order.ResolveComplaint(c.ID(), "again", f.now), errs.ErrConflict)
	})

	t.Run("resolving an unknown complaint fails", func(t *testing.T) {
		f := newOrderFixture(t)

		require.ErrorIs(t,
			f.order.ResolveComplaint(kernel.NewUUID(), "nothing here", f.now),
			errs.ErrObjectNotFound)
	})
}

func TestOrder_Settle(t *testing.T) {
	t.Run("restaurant settles a delivered order", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusDelivered)

		require.NoError(t, f.order.Settle(f.restaurantID, "pay_N8x2jD", f.now))

		assert.Equal(t, order.PaymentPaid, f.order.PaymentStatus())
		pd := f.order.PaymentDetails()
		require.NotNil(t, pd)
		assert.Equal(t, "pay_N8x2jD", pd.PaymentRef())
		assert.Equal(t, order.TransferProcessing, pd.FarmerTransferStatus())
		assert.Equal(t, order.TransferProcessing, pd.TransporterTransferStatus())
	})

	t.Run("settling twice conflicts and keeps the first settlement", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusDelivered)
		require.NoError(t, f.order.Settle(f.restaurantID, "pay_N8x2jD", f.now))

		err := f.order.Settle(f.restaurantID, "pay_OTHER", f.now.Add(time.Minute))

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, "pay_N8x2jD", f.order.PaymentDetails().PaymentRef())
		assert.Equal(t, f.now, f.order.PaymentDetails().SettledAt())
	})

	t.Run("only the restaurant may settle", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusDelivered)

		require.ErrorIs(t, f.order.Settle(f.farmerID, "pay_N8x2jD", f.now), errs.ErrUnauthorized)
		require.ErrorIs(t, f.order.Settle(f.transporterID, "pay_N8x2jD", f.now), errs.ErrUnauthorized)
	})

	t.Run("settlement does not wait for delivery", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusInTransit)

		require.NoError(t, f.order.Settle(f.restaurantID, "pay_N8x2jD", f.now))

		assert.Equal(t, order.PaymentPaid, f.order.PaymentStatus())
		assert.Equal(t, order.TransferProcessing, f.order.PaymentDetails().TransporterTransferStatus())
	})

	t.Run("without a transporter the transporter leg is already completed", func(t *testing.T) {
		f := newOrderFixture(t)

		require.NoError(t, f.order.Settle(f.restaurantID, "pay_N8x2jD", f.now))

		pd := f.order.PaymentDetails()
		require.NotNil(t, pd)
		assert.Equal(t, order.TransferProcessing, pd.FarmerTransferStatus())
		assert.Equal(t, order.TransferCompleted, pd.TransporterTransferStatus())
	})
}

func TestOrder_CompleteTransfers(t *testing.T) {
	t.Run("completes both payout legs", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusDelivered)
		require.NoError(t, f.order.Settle(f.restaurantID, "pay_N8x2jD", f.now))

		require.NoError(t, f.order.CompleteTransfers())

		assert.Equal(t, order.TransferCompleted, f.order.PaymentDetails().FarmerTransferStatus())
		assert.Equal(t, order.TransferCompleted, f.order.PaymentDetails().TransporterTransferStatus())
	})

	t.Run("fails before settlement", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusDelivered)

		assert.Error(t, f.order.CompleteTransfers())
	})
}

func TestOrder_Refund(t *testing.T) {
	t.Run("refund with explicit amount", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusDelivered)
		require.NoError(t, f.order.Settle(f.restaurantID, "pay_N8x2jD", f.now))

		require.NoError(t, f.order.Refund(120, "partial spoilage", f.now))

		assert.Equal(t, order.PaymentRefunded, f.order.PaymentStatus())
		rd := f.order.RefundDetails()
		require.NotNil(t, rd)
		assert.InDelta(t, 120, rd.Amount(), 1e-9)
		assert.Equal(t, "partial spoilage", rd.Reason())
	})

	t.Run("zero amount defaults to goods total plus restaurant delivery share", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusDelivered)
		require.NoError(t, f.order.Settle(f.restaurantID, "pay_N8x2jD", f.now))

		require.NoError(t, f.order.Refund(0, "order rejected", f.now))

		assert.InDelta(t, 250+54.5, f.order.RefundDetails().Amount(), 1e-9)
	})

	t.Run("unpaid orders cannot be refunded", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusDelivered)

		assert.Error(t, f.order.Refund(100, "never paid", f.now))
	})

	t.Run("refunding twice fails", func(t *testing.T) {
		f := newOrderFixture(t)
		f.advance(t, order.StatusDelivered)
		require.NoError(t, f.order.Settle(f.restaurantID, "pay_N8x2jD", f.now))
		require.NoError(t, f.order.Refund(100, "spoilage", f.now))

		assert.Error(t, f.order.Refund(100, "again", f.now))
	})
}
