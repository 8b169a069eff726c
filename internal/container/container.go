package container

import (
	"context"
	"log/slog"

	"github.com/FACorreiaa/karnataka-trip-planner/config"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/catalog"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/flows"
	generativeAI "github.com/FACorreiaa/karnataka-trip-planner/internal/api/generative_ai"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/weather"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/router"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	WeatherService weather.Service
	FlowsService   *flows.ServiceImpl
	CatalogService catalog.Service

	WeatherHandler *weather.HandlerImpl
	FlowsHandler   *flows.HandlerImpl
	CatalogHandler *catalog.HandlerImpl
}

// NewContainer builds the object graph from cfg and the external model it selects.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	model, err := generativeAI.NewModel(ctx, cfg.AI, logger)
	if err != nil {
		logger.Error("Failed to initialize model client", slog.String("provider", cfg.AI.Provider), slog.Any("error", err))
		return nil, err
	}
	return NewContainerWithModel(cfg, model, logger)
}

// NewContainerWithModel is NewContainer with the model supplied by the caller.
func NewContainerWithModel(cfg *config.Config, model generativeAI.Model, logger *slog.Logger) (*Container, error) {
	weatherService := weather.NewWeatherService(logger)
	flowsService := flows.NewFlowsService(model, weatherService, cfg.AI.ModelTimeout, logger)

	catalogRepo, err := catalog.NewRepositoryImpl(logger)
	if err != nil {
		logger.Error("Failed to load catalog", slog.Any("error", err))
		return nil, err
	}
	catalogService := catalog.NewCatalogService(catalogRepo, cfg.Catalog, logger)

	return &Container{
		Config:         cfg,
		Logger:         logger,
		WeatherService: weatherService,
		FlowsService:   flowsService,
		CatalogService: catalogService,
		WeatherHandler: weather.NewWeatherHandler(weatherService, logger),
		FlowsHandler:   flows.NewFlowsHandler(flowsService, logger),
		CatalogHandler: catalog.NewCatalogHandler(catalogService, logger),
	}, nil
}

// RouterConfig wires the handlers into the HTTP router configuration.
func (c *Container) RouterConfig() *router.Config {
	return &router.Config{
		FlowsHandler:   c.FlowsHandler,
		WeatherHandler: c.WeatherHandler,
		CatalogHandler: c.CatalogHandler,
		AllowedOrigins: c.Config.CORS.AllowedOrigins,
		RequestTimeout: c.Config.Server.Timeout,
		Logger:         c.Logger,
	}
}
