package catalog

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/karnataka-trip-planner/internal/api"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

type HandlerImpl struct {
	logger  *slog.Logger
	service Service
}

func NewCatalogHandler(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		logger:  logger,
		service: service,
	}
}

// ListDestinations godoc
// @Summary      List destinations
// @Description  Curated Karnataka destinations, optionally filtered by category and region.
// @Tags         catalog
// @Produce      json
// @Param        category query string false "Category, e.g. historical"
// @Param        region   query string false "Region, e.g. Coastal Karnataka"
// @Success      200 {array} types.Destination
// @Router       /destinations [get]
func (h *HandlerImpl) ListDestinations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), "ListDestinations")
	defer span.End()

	filter := types.DestinationFilter{
		Category: r.URL.Query().Get("category"),
		Region:   r.URL.Query().Get("region"),
	}
	destinations, err := h.service.ListDestinations(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list destinations", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.FlowErrorResponse(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, destinations)
}

// GetDestination godoc
// @Summary      Get destination
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Destination id"
// @Success      200 {object} types.Destination
// @Failure      404 {object} types.FlowErrorResponse
// @Router       /destinations/{id} [get]
func (h *HandlerImpl) GetDestination(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), "GetDestination")
	defer span.End()

	destination, err := h.service.GetDestination(ctx, chi.URLParam(r, "id"))
	if err != nil {
		span.SetStatus(codes.Error, "Destination lookup failed")
		api.FlowErrorResponse(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, destination)
}

// ListBookingLinks godoc
// @Summary      List booking links
// @Tags         catalog
// @Produce      json
// @Param        type query string false "accommodation or transport"
// @Success      200 {array} types.BookingLink
// @Failure      400 {object} types.FlowErrorResponse
// @Router       /booking-links [get]
func (h *HandlerImpl) ListBookingLinks(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), "ListBookingLinks")
	defer span.End()

	links, err := h.service.ListBookingLinks(ctx, types.BookingType(r.URL.Query().Get("type")))
	if err != nil {
		span.SetStatus(codes.Error, "Listing booking links failed")
		api.FlowErrorResponse(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, links)
}

// ListItineraries godoc
// @Summary      List sample itineraries
// @Tags         catalog
// @Produce      json
// @Param        interest query string false "Interest, e.g. nature"
// @Success      200 {array} types.SampleItinerary
// @Router       /itineraries [get]
func (h *HandlerImpl) ListItineraries(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), "ListItineraries")
	defer span.End()

	itineraries, err := h.service.ListItineraries(ctx, r.URL.Query().Get("interest"))
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list itineraries", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.FlowErrorResponse(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, itineraries)
}
