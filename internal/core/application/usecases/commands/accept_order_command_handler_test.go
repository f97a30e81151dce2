package commands_test

import (
	"testing"

	"farmlink/internal/core/application/usecases/commands"
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/order"
	"farmlink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	transporterID := kernel.NewUUID()
	parties := orderParties{
		farmerID:      kernel.NewUUID(),
		restaurantID:  kernel.NewUUID(),
		transporterID: transporterID,
	}
	confirmed := testOrder(t, orderID, parties, order.StatusConfirmed)

	cmd, err := commands.NewAcceptOrderCommand(orderID, transporterID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(confirmed, nil).Once(),
		orderRepo.On("Assign", mock.Anything, confirmed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := &RecordingSink{}
	h := commands.NewAcceptOrderCommandHandler(factory, sink)

	require.NoError(t, h.Handle(ctx, cmd))
	require.NotNil(t, confirmed.TransporterID())
	assert.True(t, confirmed.TransporterID().IsEqual(transporterID))
	assert.Equal(t, []string{"order.accepted"}, sink.events)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_PendingOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	parties := orderParties{
		farmerID:      kernel.NewUUID(),
		restaurantID:  kernel.NewUUID(),
		transporterID: kernel.NewUUID(),
	}
	pending := testOrder(t, orderID, parties, order.StatusPending)

	cmd, err := commands.NewAcceptOrderCommand(orderID, parties.transporterID)
	require.NoError(t, err)

	// The farmer has not confirmed yet, so the order is not on the job board
	// and the claim reads as not found. Assign is never reached.
	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := &RecordingSink{}
	h := commands.NewAcceptOrderCommandHandler(factory, sink)

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, pending.TransporterID())
	assert.Empty(t, sink.events)
	orderRepo.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	parties := orderParties{
		farmerID:      kernel.NewUUID(),
		restaurantID:  kernel.NewUUID(),
		transporterID: kernel.NewUUID(),
	}
	confirmed := testOrder(t, orderID, parties, order.StatusConfirmed)
	require.NoError(t, confirmed.Accept(parties.transporterID))

	cmd, err := commands.NewAcceptOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(confirmed, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := &RecordingSink{}
	h := commands.NewAcceptOrderCommandHandler(factory, sink)

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.True(t, confirmed.TransporterID().IsEqual(parties.transporterID))
	assert.Empty(t, sink.events)
}

func TestAcceptOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	transporterID := kernel.NewUUID()
	parties := orderParties{
		farmerID:      kernel.NewUUID(),
		restaurantID:  kernel.NewUUID(),
		transporterID: transporterID,
	}
	confirmed := testOrder(t, orderID, parties, order.StatusConfirmed)

	cmd, err := commands.NewAcceptOrderCommand(orderID, transporterID)
	require.NoError(t, err)

	// Another transporter won between Get and Assign; the conditional write
	// reports the conflict.
	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(confirmed, nil).Once(),
		orderRepo.On("Assign", mock.Anything, confirmed).
			Return(errs.NewConflictError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, &RecordingSink{})

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrConflict)
}
