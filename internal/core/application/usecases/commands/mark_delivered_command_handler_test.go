package commands_test

import (
	"testing"

	"farmlink/internal/core/application/usecases/commands"
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkDeliveredCommandHandler_Handle_BumpsAllThreeCounters(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	parties := orderParties{
		farmerID:      kernel.NewUUID(),
		restaurantID:  kernel.NewUUID(),
		transporterID: kernel.NewUUID(),
	}
	inTransit := testOrder(t, orderID, parties, order.StatusInTransit)

	cmd, err := commands.NewMarkDeliveredCommand(orderID, parties.transporterID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partyRepo := new(MockPartyRepository)
	uow := new(MockMarketUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(inTransit, nil).Once(),
		orderRepo.On("Update", mock.Anything, inTransit, order.StatusInTransit).Return(nil).Once(),
		uow.On("PartyRepository").Return(partyRepo).Once(),
		partyRepo.On("IncrementTotalOrders", mock.Anything, parties.farmerID).Return(nil).Once(),
		partyRepo.On("IncrementTotalOrders", mock.Anything, parties.restaurantID).Return(nil).Once(),
		partyRepo.On("IncrementTotalOrders", mock.Anything, parties.transporterID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := &RecordingSink{}
	h := commands.NewMarkDeliveredCommandHandler(factory, sink)

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.StatusDelivered, inTransit.Status())
	assert.Equal(t, []string{"order.delivered", "order.delivered"}, sink.events)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	partyRepo.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_FailedTransitionSkipsCounters(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	parties := orderParties{
		farmerID:      kernel.NewUUID(),
		restaurantID:  kernel.NewUUID(),
		transporterID: kernel.NewUUID(),
	}
	cancelled := testOrder(t, orderID, parties, order.StatusCancelled)

	cmd, err := commands.NewMarkDeliveredCommand(orderID, parties.transporterID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockMarketUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(cancelled, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := &RecordingSink{}
	h := commands.NewMarkDeliveredCommandHandler(factory, sink)

	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Empty(t, sink.events)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}
