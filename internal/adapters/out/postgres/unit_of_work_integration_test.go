package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "farmlink/internal/adapters/out/postgres"
	"farmlink/internal/adapters/out/postgres/croprepo"
	"farmlink/internal/adapters/out/postgres/orderrepo"
	"farmlink/internal/adapters/out/postgres/partyrepo"
	"farmlink/internal/core/domain/model/crop"
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/order"
	"farmlink/internal/core/domain/model/party"
	"farmlink/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the GORM unit of work commits
// and rolls back changes across the order, crop, and party repositories
// atomically.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.ComplaintDTO{},
		&croprepo.CropDTO{},
		&partyrepo.PartyDTO{},
	))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_line_items, order_complaints, crops, parties").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreate_ReturnsIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotNil(uow1)
	suite.NotNil(uow2)
	suite.NotSame(uow1, uow2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	farmer := suite.createTestParty(party.RoleFarmer)
	testCrop := suite.createTestCrop(farmer.ID())
	testOrder := suite.createTestOrder(farmer.ID())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PartyRepository().Add(ctx, farmer))
	suite.Require().NoError(uow.CropRepository().Add(ctx, testCrop))
	suite.Require().NoError(uow.CropRepository().Reserve(ctx, testCrop.ID(), 10))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.PartyRepository().IncrementTotalOrders(ctx, farmer.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()

	persistedCrop, err := check.CropRepository().Get(ctx, testCrop.ID())
	suite.Require().NoError(err)
	suite.Equal(90.0, persistedCrop.AvailableQuantity())

	persistedOrder, err := check.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPending, persistedOrder.Status())

	persistedFarmer, err := check.PartyRepository().Get(ctx, farmer.ID())
	suite.Require().NoError(err)
	suite.Equal(1, persistedFarmer.TotalOrders())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	farmer := suite.createTestParty(party.RoleFarmer)
	testCrop := suite.createTestCrop(farmer.ID())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PartyRepository().Add(ctx, farmer))
	suite.Require().NoError(uow.CropRepository().Add(ctx, testCrop))
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()

	_, err := check.CropRepository().Get(ctx, testCrop.ID())
	suite.Require().Error(err)

	_, err = check.PartyRepository().Get(ctx, farmer.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WithoutTransaction_WriteDirectly() {
	ctx := context.Background()
	uow := suite.factory.Create()

	farmer := suite.createTestParty(party.RoleFarmer)
	suite.Require().NoError(uow.PartyRepository().Add(ctx, farmer))

	check := suite.factory.Create()
	persisted, err := check.PartyRepository().Get(ctx, farmer.ID())
	suite.Require().NoError(err)
	suite.Equal(farmer.Name(), persisted.Name())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestParty(role party.Role) *party.Party {
	location, err := kernel.NewGeoPoint(12.97, 77.59)
	suite.Require().NoError(err)

	p, err := party.NewParty(kernel.NewUUID(), "Green Valley Farm", "+919800000001", role, location)
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCrop(farmerID kernel.UUID) *crop.Crop {
	location, err := kernel.NewGeoPoint(12.97, 77.59)
	suite.Require().NoError(err)

	c, err := crop.NewCrop(
		kernel.NewUUID(), farmerID,
		"Tomatoes", "",
		crop.CategoryVegetables,
		25, crop.UnitKg, 100, 1,
		time.Now().UTC().Truncate(time.Second),
		location, false, crop.QualityGood,
	)
	suite.Require().NoError(err)
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(farmerID kernel.UUID) *order.Order {
	pickup, err := kernel.NewGeoPoint(12.97, 77.59)
	suite.Require().NoError(err)
	delivery, err := kernel.NewGeoPoint(13.01, 77.65)
	suite.Require().NoError(err)

	item, err := order.NewLineItem(kernel.NewUUID(), "Tomatoes", 10, 25, crop.UnitKg, 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), farmerID, kernel.NewUUID(),
		[]order.LineItem{item},
		10, 120, 60, 60,
		pickup, delivery,
		"",
		time.Now().UTC().Truncate(time.Second),
	)
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
