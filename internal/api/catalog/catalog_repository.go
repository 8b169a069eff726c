package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v3"

	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

//go:embed catalog.yml
var embeddedCatalog []byte

var _ Repository = (*RepositoryImpl)(nil)

type Repository interface {
	Destinations(ctx context.Context) ([]types.Destination, error)
	BookingLinks(ctx context.Context) ([]types.BookingLink, error)
	Itineraries(ctx context.Context) ([]types.SampleItinerary, error)
}

type document struct {
	Destinations []types.Destination     `yaml:"destinations"`
	BookingLinks []types.BookingLink     `yaml:"bookingLinks"`
	Itineraries  []types.SampleItinerary `yaml:"itineraries"`
}

// RepositoryImpl serves the read-only catalog decoded once at construction.
type RepositoryImpl struct {
	logger *slog.Logger
	doc    document
}

// NewRepositoryImpl loads the catalog shipped with the binary.
func NewRepositoryImpl(logger *slog.Logger) (*RepositoryImpl, error) {
	return NewRepositoryFromYAML(embeddedCatalog, logger)
}

// NewRepositoryFromYAML decodes a catalog document. Every entry needs an id
// and ids must be unique within their section.
func NewRepositoryFromYAML(data []byte, logger *slog.Logger) (*RepositoryImpl, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if err := checkIDs("destination", len(doc.Destinations), func(i int) string { return doc.Destinations[i].ID }); err != nil {
		return nil, err
	}
	if err := checkIDs("booking link", len(doc.BookingLinks), func(i int) string { return doc.BookingLinks[i].ID }); err != nil {
		return nil, err
	}
	if err := checkIDs("itinerary", len(doc.Itineraries), func(i int) string { return doc.Itineraries[i].ID }); err != nil {
		return nil, err
	}
	for _, link := range doc.BookingLinks {
		if link.Type != types.BookingAccommodation && link.Type != types.BookingTransport {
			return nil, fmt.Errorf("booking link %q has unknown type %q", link.ID, link.Type)
		}
	}

	logger.Debug("Catalog loaded",
		slog.Int("destinations", len(doc.Destinations)),
		slog.Int("booking_links", len(doc.BookingLinks)),
		slog.Int("itineraries", len(doc.Itineraries)))

	return &RepositoryImpl{logger: logger, doc: doc}, nil
}

func checkIDs(kind string, n int, id func(int) string) error {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if v == "" {
			return fmt.Errorf("%s at index %d has no id", kind, i)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("duplicate %s id %q", kind, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

func (r *RepositoryImpl) Destinations(ctx context.Context) ([]types.Destination, error) {
	_, span := otel.Tracer("CatalogRepository").Start(ctx, "Destinations", trace.WithAttributes(
		attribute.Int("catalog.size", len(r.doc.Destinations)),
	))
	defer span.End()

	return types.CloneAll(r.doc.Destinations), nil
}

func (r *RepositoryImpl) BookingLinks(ctx context.Context) ([]types.BookingLink, error) {
	_, span := otel.Tracer("CatalogRepository").Start(ctx, "BookingLinks", trace.WithAttributes(
		attribute.Int("catalog.size", len(r.doc.BookingLinks)),
	))
	defer span.End()

	return slices.Clone(r.doc.BookingLinks), nil
}

func (r *RepositoryImpl) Itineraries(ctx context.Context) ([]types.SampleItinerary, error) {
	_, span := otel.Tracer("CatalogRepository").Start(ctx, "Itineraries", trace.WithAttributes(
		attribute.Int("catalog.size", len(r.doc.Itineraries)),
	))
	defer span.End()

	return types.CloneAll(r.doc.Itineraries), nil
}
