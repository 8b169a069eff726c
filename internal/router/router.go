package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/FACorreiaa/karnataka-trip-planner/docs"

	appLogger "github.com/FACorreiaa/karnataka-trip-planner/app/logger"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/catalog"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/flows"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/weather"
)

// Config contains dependencies needed for the router setup
type Config struct {
	FlowsHandler   *flows.HandlerImpl
	WeatherHandler *weather.HandlerImpl
	CatalogHandler *catalog.HandlerImpl
	AllowedOrigins []string
	// RequestTimeout bounds every request; flows need room for several model rounds.
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

// SetupRouter initializes and configures the main application router.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/flows", func(r chi.Router) {
			r.Get("/", cfg.FlowsHandler.ListFlows)
			r.Get("/{name}", cfg.FlowsHandler.GetFlowSchema)
			r.Post("/recommendations", cfg.FlowsHandler.GetPersonalizedRecommendations)
			r.Post("/itinerary", cfg.FlowsHandler.GenerateItinerary)
			r.Post("/travel-recommendation", cfg.FlowsHandler.GetTravelRecommendation)
		})

		r.Post("/tools/weather", cfg.WeatherHandler.GetWeather)

		r.Get("/destinations", cfg.CatalogHandler.ListDestinations)
		r.Get("/destinations/{id}", cfg.CatalogHandler.GetDestination)
		r.Get("/booking-links", cfg.CatalogHandler.ListBookingLinks)
		r.Get("/itineraries", cfg.CatalogHandler.ListItineraries)
	})

	return r
}

// NewHandler wraps the application routes with the server-wide middleware stack.
func NewHandler(cfg *Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}

	mux := chi.NewMux()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(appLogger.StructuredLogger(logger))
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(middleware.Timeout(timeout))
	mux.Use(middleware.Compress(5, "application/json"))
	mux.Mount("/", SetupRouter(cfg))
	return mux
}
