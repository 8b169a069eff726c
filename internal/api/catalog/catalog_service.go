package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/karnataka-trip-planner/config"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	ListDestinations(ctx context.Context, filter types.DestinationFilter) ([]types.Destination, error)
	GetDestination(ctx context.Context, id string) (*types.Destination, error)
	ListBookingLinks(ctx context.Context, bookingType types.BookingType) ([]types.BookingLink, error)
	ListItineraries(ctx context.Context, interest string) ([]types.SampleItinerary, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
	cache  *cache.Cache
}

func NewCatalogService(repo Repository, cfg config.CatalogConfig, logger *slog.Logger) *ServiceImpl {
	ttl, cleanup := cfg.CacheTTL, cfg.CleanupInterval
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if cleanup <= 0 {
		cleanup = 15 * time.Minute
	}
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		cache:  cache.New(ttl, cleanup),
	}
}

// matches compares case-insensitively; an empty want matches everything.
func matches(want string, values ...string) bool {
	if want == "" {
		return true
	}
	return slices.ContainsFunc(values, func(v string) bool {
		return strings.EqualFold(strings.TrimSpace(v), want)
	})
}

func (s *ServiceImpl) ListDestinations(ctx context.Context, filter types.DestinationFilter) ([]types.Destination, error) {
	ctx, span := otel.Tracer("CatalogService").Start(ctx, "ListDestinations")
	defer span.End()

	category := strings.TrimSpace(filter.Category)
	region := strings.TrimSpace(filter.Region)
	cacheKey := fmt.Sprintf("destinations:%s:%s", strings.ToLower(category), strings.ToLower(region))
	span.SetAttributes(attribute.String("cache.key", cacheKey))

	if cached, found := s.cache.Get(cacheKey); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return types.CloneAll(cached.([]types.Destination)), nil
	}

	all, err := s.repo.Destinations(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load destinations")
		return nil, fmt.Errorf("failed to load destinations: %w", err)
	}

	out := make([]types.Destination, 0, len(all))
	for _, d := range all {
		if matches(category, d.Category...) && matches(region, d.Region) {
			out = append(out, d)
		}
	}

	s.cache.Set(cacheKey, out, cache.DefaultExpiration)
	s.logger.DebugContext(ctx, "Destinations listed", slog.String("cache_key", cacheKey), slog.Int("count", len(out)))
	return types.CloneAll(out), nil
}

func (s *ServiceImpl) GetDestination(ctx context.Context, id string) (*types.Destination, error) {
	ctx, span := otel.Tracer("CatalogService").Start(ctx, "GetDestination")
	defer span.End()
	span.SetAttributes(attribute.String("destination.id", id))

	all, err := s.repo.Destinations(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load destinations")
		return nil, fmt.Errorf("failed to load destinations: %w", err)
	}

	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	span.SetStatus(codes.Error, "Destination not found")
	return nil, fmt.Errorf("%w: destination %q", types.ErrNotFound, id)
}

func (s *ServiceImpl) ListBookingLinks(ctx context.Context, bookingType types.BookingType) ([]types.BookingLink, error) {
	ctx, span := otel.Tracer("CatalogService").Start(ctx, "ListBookingLinks")
	defer span.End()

	switch bookingType {
	case "", types.BookingAccommodation, types.BookingTransport:
	default:
		err := types.NewFieldError(types.ErrSchemaViolation, "type", "must be one of [accommodation, transport]")
		span.SetStatus(codes.Error, "Invalid booking type")
		return nil, err
	}

	cacheKey := "booking-links:" + string(bookingType)
	if cached, found := s.cache.Get(cacheKey); found {
		return slices.Clone(cached.([]types.BookingLink)), nil
	}

	all, err := s.repo.BookingLinks(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load booking links")
		return nil, fmt.Errorf("failed to load booking links: %w", err)
	}

	out := make([]types.BookingLink, 0, len(all))
	for _, link := range all {
		if bookingType == "" || link.Type == bookingType {
			out = append(out, link)
		}
	}
	s.cache.Set(cacheKey, out, cache.DefaultExpiration)
	return slices.Clone(out), nil
}

func (s *ServiceImpl) ListItineraries(ctx context.Context, interest string) ([]types.SampleItinerary, error) {
	ctx, span := otel.Tracer("CatalogService").Start(ctx, "ListItineraries")
	defer span.End()

	interest = strings.TrimSpace(interest)
	cacheKey := "itineraries:" + strings.ToLower(interest)
	if cached, found := s.cache.Get(cacheKey); found {
		return types.CloneAll(cached.([]types.SampleItinerary)), nil
	}

	all, err := s.repo.Itineraries(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load itineraries")
		return nil, fmt.Errorf("failed to load itineraries: %w", err)
	}

	out := make([]types.SampleItinerary, 0, len(all))
	for _, it := range all {
		if matches(interest, it.Interests...) {
			out = append(out, it)
		}
	}
	s.cache.Set(cacheKey, out, cache.DefaultExpiration)
	return types.CloneAll(out), nil
}
