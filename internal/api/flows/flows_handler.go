package flows

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/jsonschema-go/jsonschema"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/karnataka-trip-planner/internal/api"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

// SchemaResponse describes a flow with its input and output JSON Schemas.
type SchemaResponse struct {
	types.FlowSummary
	Input  *jsonschema.Schema `json:"input" swaggertype:"object"`
	Output *jsonschema.Schema `json:"output" swaggertype:"object"`
}

type HandlerImpl struct {
	logger  *slog.Logger
	service Service
}

func NewFlowsHandler(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		logger:  logger,
		service: service,
	}
}

func (h *HandlerImpl) runFlow(w http.ResponseWriter, r *http.Request, name string) {
	ctx, span := otel.Tracer("FlowsHandler").Start(r.Context(), "RunFlow", trace.WithAttributes(
		attribute.String("flow.name", name),
	))
	defer span.End()

	l := h.logger.With(slog.String("HandlerImpl", "RunFlow"), slog.String("flow", name))

	runner, err := h.service.Registry().Lookup(name)
	if err != nil {
		span.SetStatus(codes.Error, "Flow not found")
		api.FlowErrorResponse(w, r, err)
		return
	}

	raw, err := api.ReadJSONBody(w, r)
	if err != nil {
		l.WarnContext(ctx, "Failed to read request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	out, err := runner.InvokeJSON(ctx, raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Flow failed")
		api.FlowErrorResponse(w, r, err)
		return
	}

	span.SetStatus(codes.Ok, "Flow completed")
	api.WriteJSONResponse(w, r, http.StatusOK, out)
}

// GetPersonalizedRecommendations godoc
// @Summary      Personalized travel recommendations
// @Description  Recommends Karnataka destinations, activities and brief itineraries. Destinations carry map links and weather.
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        request body types.TravelPreferencesInput true "Traveler preferences"
// @Success      200 {object} types.TravelRecommendationsOutput
// @Failure      400 {object} types.FlowErrorResponse
// @Failure      502 {object} types.FlowErrorResponse
// @Failure      504 {object} types.FlowErrorResponse
// @Router       /flows/recommendations [post]
func (h *HandlerImpl) GetPersonalizedRecommendations(w http.ResponseWriter, r *http.Request) {
	h.runFlow(w, r, RecommendationsFlowName)
}

// GenerateItinerary godoc
// @Summary      Generate an itinerary
// @Description  Builds a day-by-day itinerary for the given destinations.
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        request body types.GenerateItineraryInput true "Destinations, duration and interests"
// @Success      200 {object} types.GenerateItineraryOutput
// @Failure      400 {object} types.FlowErrorResponse
// @Failure      502 {object} types.FlowErrorResponse
// @Failure      504 {object} types.FlowErrorResponse
// @Router       /flows/itinerary [post]
func (h *HandlerImpl) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	h.runFlow(w, r, ItineraryFlowName)
}

// GetTravelRecommendation godoc
// @Summary      Simple travel recommendation
// @Description  Free-text recommendations without weather or map links.
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        request body types.TravelPreferencesInput true "Traveler preferences"
// @Success      200 {object} types.LegacyTravelRecommendationsOutput
// @Failure      400 {object} types.FlowErrorResponse
// @Failure      502 {object} types.FlowErrorResponse
// @Router       /flows/travel-recommendation [post]
func (h *HandlerImpl) GetTravelRecommendation(w http.ResponseWriter, r *http.Request) {
	h.runFlow(w, r, TravelRecommendationFlowName)
}

// ListFlows godoc
// @Summary      List flows
// @Tags         flows
// @Produce      json
// @Success      200 {array} types.FlowSummary
// @Router       /flows [get]
func (h *HandlerImpl) ListFlows(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, h.service.Registry().List())
}

// GetFlowSchema godoc
// @Summary      Flow schemas
// @Description  Returns the input and output JSON Schema of a flow.
// @Tags         flows
// @Produce      json
// @Param        name path string true "Flow name"
// @Success      200 {object} SchemaResponse
// @Failure      404 {object} types.FlowErrorResponse
// @Router       /flows/{name} [get]
func (h *HandlerImpl) GetFlowSchema(w http.ResponseWriter, r *http.Request) {
	runner, err := h.service.Registry().Lookup(chi.URLParam(r, "name"))
	if err != nil {
		api.FlowErrorResponse(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, DescribeRunner(runner))
}

// DescribeRunner renders a runner's summary and schemas.
func DescribeRunner(runner Runner) SchemaResponse {
	return SchemaResponse{
		FlowSummary: types.FlowSummary{
			Name:        runner.Name(),
			Description: runner.Description(),
			Tools:       runner.ToolNames(),
		},
		Input:  runner.InputSchema().ToJSONSchema(),
		Output: runner.OutputSchema().ToJSONSchema(),
	}
}
