package cmd

import (
	"log/slog"

	httpin "farmlink/internal/adapters/in/http"
	"farmlink/internal/adapters/out/notify"
	"farmlink/internal/adapters/out/postgres"
	"farmlink/internal/adapters/out/razorpay"
	"farmlink/internal/core/application/usecases/commands"
	"farmlink/internal/core/application/usecases/queries"
	"farmlink/internal/core/domain/services"
	"farmlink/internal/core/ports"
	"farmlink/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into application handlers. All dependency
// construction lives here; the rest of the program receives ready handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.PaymentGateway
	notifier   ports.NotificationSink
	pricer     services.DeliveryPricer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    razorpay.NewGateway(config.RazorpayKeyID, config.RazorpayKeySecret),
		notifier:   notify.NewSlogSink(logger),
		pricer:     services.NewDeliveryPricer(),
		logger:     logger,
	}
}

// PaymentGateway exposes the configured gateway for the HTTP server.
func (c *CompositionRoot) PaymentGateway() ports.PaymentGateway {
	return c.gateway
}

// CreateHTTPHandlers builds the full handler set the HTTP server dispatches to.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		RegisterParty:    commands.NewRegisterPartyCommandHandler(c.marketUoWFactory()),
		CreateCrop:       commands.NewCreateCropCommandHandler(c.marketUoWFactory()),
		PlaceOrder:       commands.NewPlaceOrderCommandHandler(c.marketUoWFactory(), c.pricer, c.notifier),
		ConfirmOrder:     commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.notifier),
		CancelOrder:      commands.NewCancelOrderCommandHandler(c.marketUoWFactory(), c.notifier),
		AcceptOrder:      commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.notifier),
		MarkPickedUp:     commands.NewMarkPickedUpCommandHandler(c.orderUoWFactory(), c.notifier),
		MarkInTransit:    commands.NewMarkInTransitCommandHandler(c.orderUoWFactory(), c.notifier),
		MarkDelivered:    commands.NewMarkDeliveredCommandHandler(c.marketUoWFactory(), c.notifier),
		VerifyQuality:    commands.NewVerifyQualityCommandHandler(c.orderUoWFactory(), c.notifier),
		RaiseComplaint:   commands.NewRaiseComplaintCommandHandler(c.orderUoWFactory(), c.notifier),
		ResolveComplaint: commands.NewResolveComplaintCommandHandler(c.orderUoWFactory()),
		SettlePayment:    commands.NewSettlePaymentCommandHandler(c.orderUoWFactory(), c.gateway, c.notifier),
		RefundPayment:    commands.NewRefundPaymentCommandHandler(c.orderUoWFactory(), c.gateway, c.notifier),

		PartyOrders:         queries.NewGetPartyOrdersQueryHandler(c.gormDB),
		UnassignedOrders:    queries.NewGetUnassignedOrdersQueryHandler(c.gormDB),
		PaymentStatus:       queries.NewGetPaymentStatusQueryHandler(c.gormDB),
		TransporterEarnings: queries.NewGetTransporterEarningsQueryHandler(c.gormDB),
		AvailableCrops:      queries.NewGetAvailableCropsQueryHandler(c.gormDB),
	}
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(config Config) *jobs.JobManager {
	handler := commands.NewCompleteTransfersCommandHandler(c.orderUoWFactory(), c.notifier)
	return jobs.NewJobManager(handler, config.SettlementDelay, config.SettlementSweepSpec, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) marketUoWFactory() commands.MarketUoWFactory {
	return FuncMarketUoWFactory(func() commands.MarketUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMarketUoWFactory func() commands.MarketUoW

func (f FuncMarketUoWFactory) Create() commands.MarketUoW {
	return f()
}
