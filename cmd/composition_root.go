package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/kafka"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type eventPublisher interface {
	ports.OrderEventPublisher
	io.Closer
}

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	publisher  eventPublisher
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     order.TransitionPolicy
	registry   *prometheus.Registry
	logger     *slog.Logger
	now        func() time.Time
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	policy, err := order.ParseTransitionPolicy(cfg.OrderStatusPolicy)
	if err != nil {
		return nil, err
	}

	var publisher eventPublisher = kafka.NoopOrderEventPublisher{}
	if brokers := kafka.ParseBrokers(cfg.KafkaHost); len(brokers) > 0 {
		publisher = kafka.NewOrderEventPublisher(brokers, cfg.KafkaOrderChangedTopic, logger)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		publisher:  publisher,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		policy:     policy,
		registry:   registry,
		logger:     logger,
		now:        time.Now,
	}, nil
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() *commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewRegisterCustomerCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() *commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewPlaceOrderCommandHandler(f, c.now)
	return &h
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() *commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewAdvanceOrderStatusCommandHandler(f, c.policy, c.now)
	return &h
}

func (c *CompositionRoot) CreateAuthenticateCustomerQueryHandler() queries.AuthenticateCustomerQueryHandler {
	return queries.NewAuthenticateCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every handler into the echo instance.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := httpadapter.NewServer(
		c.CreateRegisterCustomerCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateAdvanceOrderStatusCommandHandler(),
		c.CreateAuthenticateCustomerQueryHandler(),
		c.CreateGetCustomerQueryHandler(),
		c.CreateListCustomerOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
	)

	return httpadapter.NewRouter(server, httpadapter.RouterConfig{
		StaticDir: c.cfg.StaticDir,
		Logger:    c.logger,
		Registry:  c.registry,
	})
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		c.CreateCountOrdersByStatusQueryHandler(),
		c.cfg.BacklogSchedule,
		c.registry,
		c.logger,
	)
}

// Close releases the publisher and the database pool.
func (c *CompositionRoot) Close(_ context.Context) error {
	return errors.Join(c.publisher.Close(), postgres.Close(c.gormDB))
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
