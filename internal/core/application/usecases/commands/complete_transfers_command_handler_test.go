package commands_test

import (
	"testing"
	"time"

	"farmlink/internal/core/application/usecases/commands"
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func settledOrder(t *testing.T, settledAt time.Time) *order.Order {
	t.Helper()
	parties := orderParties{
		farmerID:      kernel.NewUUID(),
		restaurantID:  kernel.NewUUID(),
		transporterID: kernel.NewUUID(),
	}
	o := testOrder(t, kernel.NewUUID(), parties, order.StatusDelivered)
	require.NoError(t, o.Settle(parties.restaurantID, "pay_"+o.ID().String()[:8], settledAt))
	return o
}

func TestCompleteTransfersCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	first := settledOrder(t, cutoff.Add(-2*time.Hour))
	second := settledOrder(t, cutoff.Add(-time.Minute))

	cmd, err := commands.NewCompleteTransfersCommand(cutoff)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllSettledBefore", mock.Anything, cutoff).
			Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first, order.StatusDelivered).Return(nil).Once(),
		repo.On("Update", mock.Anything, second, order.StatusDelivered).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := &RecordingSink{}
	h := commands.NewCompleteTransfersCommandHandler(factory, sink)

	completed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 2, completed)
	for _, o := range []*order.Order{first, second} {
		assert.Equal(t, order.TransferCompleted, o.PaymentDetails().FarmerTransferStatus())
		assert.Equal(t, order.TransferCompleted, o.PaymentDetails().TransporterTransferStatus())
	}
	// one event for the farmer and one for the transporter, per order
	assert.Len(t, sink.events, 4)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteTransfersCommandHandler_Handle_NothingDue(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCompleteTransfersCommand(cutoff)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllSettledBefore", mock.Anything, cutoff).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteTransfersCommandHandler(factory, &RecordingSink{})

	completed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, completed)
}
