package cmd

import (
	"fmt"

	httpadapter "grabgo/internal/adapters/in/http"
	"grabgo/internal/adapters/out/kv/filekv"
	"grabgo/internal/adapters/out/kv/memkv"
	"grabgo/internal/adapters/out/kv/sqlkv"
	"grabgo/internal/adapters/out/orderstore"
	"grabgo/internal/core/application/usecases/commands"
	"grabgo/internal/core/application/usecases/queries"
	"grabgo/internal/core/domain/services"
	"grabgo/internal/core/ports"
	"grabgo/internal/jobs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config    Config
	logger    *zap.Logger
	gormDB    *gorm.DB
	store     *orderstore.Store
	lifecycle services.OrderLifecycle
}

// NewCompositionRoot opens the configured slot backend and builds the order
// store on top of it. The store is not loaded yet.
func NewCompositionRoot(config Config, logger *zap.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:    config,
		logger:    logger,
		lifecycle: services.NewOrderLifecycle(),
	}

	kv, err := c.openKeyValueStore()
	if err != nil {
		return nil, err
	}
	c.store = orderstore.New(kv, logger, orderstore.WithKey(config.StoreKey))

	return c, nil
}

func (c *CompositionRoot) openKeyValueStore() (ports.KeyValueStore, error) {
	switch c.config.StoreBackend {
	case StoreBackendMemory:
		return memkv.New(), nil
	case StoreBackendFile:
		return filekv.NewOS(c.config.StoreDir), nil
	case StoreBackendSQLite:
		db, err := sqlkv.Open(c.config.StoreSQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		c.gormDB = db
		return sqlkv.NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", c.config.StoreBackend)
	}
}

func (c *CompositionRoot) OrderStore() *orderstore.Store {
	return c.store
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.store, c.lifecycle, c.logger)
}

func (c *CompositionRoot) CreateToggleOrderPaymentCommandHandler() commands.ToggleOrderPaymentCommandHandler {
	return commands.NewToggleOrderPaymentCommandHandler(c.store, c.lifecycle)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.store)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.store, c.config.FlushRetrySchedule, c.logger)
}

// CreateRouter wires every handler into the HTTP server.
func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateToggleOrderPaymentCommandHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateSearchOrdersQueryHandler(),
		c.CreateGetOrderStatsQueryHandler(),
		httpadapter.Options{
			AdminEmail: c.config.AdminEmail,
			PayeeVPA:   c.config.UPIPayeeVPA,
			PayeeName:  c.config.UPIPayeeName,
		},
		c.logger,
	)
	return httpadapter.NewRouter(server, c.logger)
}

// Close releases the SQLite connection when that backend is in use.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
