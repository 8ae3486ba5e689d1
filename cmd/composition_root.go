package cmd

import (
	"context"
	"errors"
	"fmt"

	"restaurant/api"
	apihttp "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/in/seed"
	"restaurant/internal/adapters/out/events"
	"restaurant/internal/adapters/out/memory"
	"restaurant/internal/adapters/out/metrics"
	"restaurant/internal/adapters/out/mongofeed"
	"restaurant/internal/adapters/out/pdf"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot owns the process-wide dependencies and builds every
// handler from them.
type CompositionRoot struct {
	configs Config
	logger  *zap.Logger

	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	hub        *events.Hub
	registry   *prometheus.Registry
	syncState  *commands.SyncState
	timers     *services.KitchenTimers
	feed       ports.DigitalMenuFeed

	closers []func(ctx context.Context) error
}

// NewCompositionRoot opens storage, the event sinks and the digital-menu feed.
// An unreachable digital menu is logged and leaves the sync disabled.
func NewCompositionRoot(ctx context.Context, configs Config, logger *zap.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &CompositionRoot{
		configs:   configs,
		logger:    logger,
		registry:  prometheus.NewRegistry(),
		syncState: commands.NewSyncState(),
		timers:    services.NewKitchenTimers(nil),
	}
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if err := c.openStorage(ctx); err != nil {
		return nil, errors.Join(err, c.Close(ctx))
	}
	if err := c.openEvents(); err != nil {
		return nil, errors.Join(err, c.Close(ctx))
	}
	if err := c.openDigitalMenuFeed(ctx); err != nil {
		c.logger.Error("Digital menu feed unavailable, sync disabled", zap.Error(err))
	}
	return c, nil
}

func (c *CompositionRoot) openStorage(ctx context.Context) error {
	switch c.configs.StorageBackend {
	case StorageBackendMemory:
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
		c.logger.Info("Using in-memory storage")
		return nil
	case StorageBackendPostgres:
		gormDB, err := gorm.Open(gormpostgres.Open(c.configs.PostgresDSN()), &gorm.Config{TranslateError: true})
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		c.closers = append(c.closers, func(context.Context) error { return sqlDB.Close() })

		if err = postgres.Migrate(ctx, gormDB); err != nil {
			return err
		}
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		c.logger.Info("Using postgres storage",
			zap.String("host", c.configs.DBHost),
			zap.String("database", c.configs.DBName),
		)
		return nil
	default:
		return errs.NewValueIsInvalidError("storage backend")
	}
}

func (c *CompositionRoot) openEvents() error {
	c.hub = events.NewHub(c.logger)
	c.closers = append(c.closers, func(context.Context) error {
		c.hub.Close()
		return nil
	})

	sinks := events.Multi{c.hub}
	if c.configs.RabbitMQURL != "" {
		rabbit, err := events.NewRabbitPublisher(c.configs.RabbitMQURL, c.configs.EventsExchange, c.logger)
		if err != nil {
			return err
		}
		c.closers = append(c.closers, func(context.Context) error { return rabbit.Close() })
		sinks = append(sinks, rabbit)
	}
	c.publisher = sinks
	return nil
}

// openDigitalMenuFeed connects to the digital menu's MongoDB. The stored
// setting wins over the environment.
func (c *CompositionRoot) openDigitalMenuFeed(ctx context.Context) error {
	uri := c.configs.DigitalMenuMongoURI
	query, err := queries.NewGetSettingQuery(ports.SettingDigitalMenuURI)
	if err != nil {
		return err
	}
	setting, err := queries.NewGetSettingQueryHandler(c.uowFactory).Handle(ctx, query)
	switch {
	case err == nil && setting.Value != "":
		uri = setting.Value
	case err != nil && !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}
	if uri == "" {
		c.logger.Info("No digital menu configured, sync disabled")
		return nil
	}

	database := c.configs.DigitalMenuDatabase
	if database == "" {
		if database, err = mongofeed.DatabaseName(uri); err != nil {
			return err
		}
	}

	client, err := mongofeed.Connect(ctx, uri)
	if err != nil {
		return err
	}
	c.closers = append(c.closers, client.Disconnect)

	collection := client.Database(database).Collection(c.configs.DigitalMenuCollection)
	c.feed = mongofeed.NewDigitalMenuFeed(collection, c.logger)
	c.logger.Info("Connected to digital menu",
		zap.String("database", database),
		zap.String("collection", c.configs.DigitalMenuCollection),
	)
	return nil
}

// Seed loads SEED_FILE when one is configured.
func (c *CompositionRoot) Seed(ctx context.Context) error {
	if c.configs.SeedFile == "" {
		return nil
	}
	_, err := seed.NewLoader(c.uowFactory, c.logger).LoadFile(ctx, c.configs.SeedFile)
	return err
}

func (c *CompositionRoot) CreateCommandHandlers() apihttp.CommandHandlers {
	return apihttp.CommandHandlers{
		CreateFloor:            commands.NewCreateFloorCommandHandler(c.uowFactory, c.publisher, nil),
		DeleteFloor:            commands.NewDeleteFloorCommandHandler(c.uowFactory, c.publisher, nil),
		CreateTable:            commands.NewCreateTableCommandHandler(c.uowFactory, c.publisher, nil),
		SeatOrder:              commands.NewSeatOrderCommandHandler(c.uowFactory, c.publisher, nil),
		UpdateTableStatus:      commands.NewUpdateTableStatusCommandHandler(c.uowFactory, c.publisher, nil),
		DeleteTable:            commands.NewDeleteTableCommandHandler(c.uowFactory, c.publisher, nil),
		CreateOrder:            commands.NewCreateOrderCommandHandler(c.uowFactory, c.publisher, nil),
		AddOrderItem:           commands.NewAddOrderItemCommandHandler(c.uowFactory, c.publisher, nil),
		RemoveOrderItem:        commands.NewRemoveOrderItemCommandHandler(c.uowFactory, c.publisher, nil),
		SaveOrder:              commands.NewSaveOrderCommandHandler(c.uowFactory, c.publisher, nil),
		SendOrderToKitchen:     commands.NewSendOrderToKitchenCommandHandler(c.uowFactory, c.publisher, nil),
		BillOrder:              commands.NewBillOrderCommandHandler(c.uowFactory, c.publisher, nil),
		CheckoutOrder:          commands.NewCheckoutOrderCommandHandler(c.uowFactory, c.publisher, nil).WithKitchenTimers(c.timers),
		CompleteOrder:          commands.NewCompleteOrderCommandHandler(c.uowFactory, c.publisher, nil).WithKitchenTimers(c.timers),
		UpdateOrderItemStatus:  commands.NewUpdateOrderItemStatusCommandHandler(c.uowFactory, c.publisher, nil),
		UpdateOrderItemsStatus: commands.NewUpdateOrderItemsStatusCommandHandler(c.uowFactory, c.publisher, nil),
		RegenerateInvoice:      commands.NewRegenerateInvoiceCommandHandler(c.uowFactory, c.publisher, nil),
		CreateReservation:      commands.NewCreateReservationCommandHandler(c.uowFactory, c.publisher, nil),
		UpdateReservation:      commands.NewUpdateReservationCommandHandler(c.uowFactory, c.publisher, nil),
		DeleteReservation:      commands.NewDeleteReservationCommandHandler(c.uowFactory, c.publisher, nil),
		SetSetting:             commands.NewSetSettingCommandHandler(c.uowFactory),
	}
}

func (c *CompositionRoot) CreateQueryHandlers() (apihttp.QueryHandlers, error) {
	syncStatus, err := queries.NewGetSyncStatusQueryHandler(c.syncState)
	if err != nil {
		return apihttp.QueryHandlers{}, err
	}
	handlers := apihttp.QueryHandlers{
		FloorPlan:    queries.NewGetFloorPlanQueryHandler(c.uowFactory),
		Orders:       queries.NewGetOrdersQueryHandler(c.uowFactory),
		Order:        queries.NewGetOrderQueryHandler(c.uowFactory),
		KitchenBoard: queries.NewGetKitchenBoardQueryHandler(c.uowFactory, c.timers),
		Invoices:     queries.NewGetInvoicesQueryHandler(c.uowFactory),
		Invoice:      queries.NewGetInvoiceQueryHandler(c.uowFactory),
		Reservations: queries.NewGetReservationsQueryHandler(c.uowFactory),
		MenuItems:    queries.NewGetMenuItemsQueryHandler(c.uowFactory),
		Setting:      queries.NewGetSettingQueryHandler(c.uowFactory),
		SyncStatus:   syncStatus,
	}
	if c.feed != nil {
		digitalMenuOrders, err := queries.NewGetDigitalMenuOrdersQueryHandler(c.feed)
		if err != nil {
			return apihttp.QueryHandlers{}, err
		}
		handlers.DigitalMenuOrders = &digitalMenuOrders
	}
	return handlers, nil
}

// CreateRouter builds the echo instance serving the REST API, docs,
// metrics and the realtime websocket.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	queryHandlers, err := c.CreateQueryHandlers()
	if err != nil {
		return nil, err
	}
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}
	server := apihttp.NewServer(c.CreateCommandHandlers(), queryHandlers, pdf.NewInvoiceRenderer(""), c.logger)
	return apihttp.NewRouter(server, apihttp.RouterOptions{
		Doc:      doc,
		Gatherer: c.registry,
		Realtime: c.hub,
		Logger:   c.logger,
	})
}

// CreateDigitalMenuSyncJob returns nil when no digital menu is configured.
func (c *CompositionRoot) CreateDigitalMenuSyncJob() (*jobs.DigitalMenuSyncJob, error) {
	if c.feed == nil {
		return nil, nil
	}
	syncMetrics, err := metrics.NewSync(c.registry)
	if err != nil {
		return nil, err
	}
	syncHandler, err := commands.NewSyncDigitalMenuOrdersCommandHandler(
		c.uowFactory, c.feed, c.syncState, c.publisher, syncMetrics, c.logger, nil,
	)
	if err != nil {
		return nil, err
	}
	restoreHandler, err := commands.NewRestoreDigitalMenuSyncStateCommandHandler(c.feed, c.syncState)
	if err != nil {
		return nil, err
	}
	return jobs.NewDigitalMenuSyncJob(
		syncHandler, restoreHandler, c.syncState, c.configs.DigitalMenuSyncInterval, c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	syncJob, err := c.CreateDigitalMenuSyncJob()
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(syncJob), nil
}

// Close releases connections in reverse order of opening.
func (c *CompositionRoot) Close(ctx context.Context) error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i](ctx))
	}
	c.closers = nil
	return err
}
