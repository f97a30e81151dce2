package commands_test

import (
	"context"
	"time"

	"farmlink/internal/core/application/usecases/commands"
	"farmlink/internal/core/domain/model/crop"
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/order"
	"farmlink/internal/core/domain/model/party"
	"farmlink/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, from order.Status) error {
	args := m.Called(ctx, o, from)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Assign(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllSettledBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCropRepository struct{ mock.Mock }

func (m *MockCropRepository) Add(ctx context.Context, c *crop.Crop) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCropRepository) Get(ctx context.Context, id kernel.UUID) (*crop.Crop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crop.Crop), args.Error(1)
}

func (m *MockCropRepository) Reserve(ctx context.Context, id kernel.UUID, qty float64) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

func (m *MockCropRepository) Release(ctx context.Context, id kernel.UUID, qty float64) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

type MockPartyRepository struct{ mock.Mock }

func (m *MockPartyRepository) Add(ctx context.Context, p *party.Party) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartyRepository) Get(ctx context.Context, id kernel.UUID) (*party.Party, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Party), args.Error(1)
}

func (m *MockPartyRepository) IncrementTotalOrders(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMarketUoW struct{ mock.Mock }

func (m *MockMarketUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMarketUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMarketUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMarketUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockMarketUoW) CropRepository() ports.CropRepository {
	args := m.Called()
	return args.Get(0).(ports.CropRepository)
}

func (m *MockMarketUoW) PartyRepository() ports.PartyRepository {
	args := m.Called()
	return args.Get(0).(ports.PartyRepository)
}

type MockMarketUoWFactory struct{ mock.Mock }

func (m *MockMarketUoWFactory) Create() commands.MarketUoW {
	args := m.Called()
	return args.Get(0).(commands.MarketUoW)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) IsAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockPaymentGateway) CreatePaymentOrder(ctx context.Context, amount float64, receipt string) (string, error) {
	args := m.Called(ctx, amount, receipt)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) VerifySignature(gatewayOrderRef, paymentRef, signature string) error {
	args := m.Called(gatewayOrderRef, paymentRef, signature)
	return args.Error(0)
}

func (m *MockPaymentGateway) Refund(ctx context.Context, paymentRef string, amount float64) error {
	args := m.Called(ctx, paymentRef, amount)
	return args.Error(0)
}

// RecordingSink captures notifications without any delivery machinery.
type RecordingSink struct {
	events []string
}

func (s *RecordingSink) Notify(_ context.Context, _ kernel.UUID, event string, _ string) {
	s.events = append(s.events, event)
}
