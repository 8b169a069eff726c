package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	generativeAI "github.com/FACorreiaa/karnataka-trip-planner/internal/api/generative_ai"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/schema"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/weather"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

const (
	RecommendationsFlowName      = "personalizedTravelRecommendations"
	ItineraryFlowName            = "generateItinerary"
	TravelRecommendationFlowName = "travelRecommendation"

	weatherToolName = weather.ToolName
)

// Runner is the type-erased view of a Flow used by the HTTP, CLI and MCP surfaces.
type Runner interface {
	Name() string
	Description() string
	InputSchema() *schema.Schema
	OutputSchema() *schema.Schema
	ToolNames() []string
	InvokeJSON(ctx context.Context, raw []byte) (json.RawMessage, error)
}

// Registry holds flows by name. It is read-only after construction.
type Registry struct {
	runners map[string]Runner
	order   []string
}

func NewRegistry(runners ...Runner) *Registry {
	r := &Registry{runners: make(map[string]Runner, len(runners))}
	for _, run := range runners {
		if _, dup := r.runners[run.Name()]; dup {
			panic(fmt.Sprintf("flows: duplicate flow name %q", run.Name()))
		}
		r.runners[run.Name()] = run
		r.order = append(r.order, run.Name())
	}
	return r
}

func (r *Registry) Lookup(name string) (Runner, error) {
	run, ok := r.runners[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrFlowNotFound, name)
	}
	return run, nil
}

// List returns flow summaries in registration order.
func (r *Registry) List() []types.FlowSummary {
	out := make([]types.FlowSummary, 0, len(r.order))
	for _, name := range r.order {
		run := r.runners[name]
		out = append(out, types.FlowSummary{
			Name:        run.Name(),
			Description: run.Description(),
			Tools:       run.ToolNames(),
		})
	}
	return out
}

type Service interface {
	GetPersonalizedTravelRecommendations(ctx context.Context, in types.TravelPreferencesInput) (*types.TravelRecommendationsOutput, error)
	GenerateItinerary(ctx context.Context, in types.GenerateItineraryInput) (*types.GenerateItineraryOutput, error)
	GetTravelRecommendation(ctx context.Context, in types.TravelPreferencesInput) (*types.LegacyTravelRecommendationsOutput, error)
	Registry() *Registry
}

type ServiceImpl struct {
	logger          *slog.Logger
	recommendations *Flow[types.TravelPreferencesInput, types.TravelRecommendationsOutput]
	itinerary       *Flow[types.GenerateItineraryInput, types.GenerateItineraryOutput]
	legacy          *Flow[types.TravelPreferencesInput, types.LegacyTravelRecommendationsOutput]
	registry        *Registry
}

var _ Service = (*ServiceImpl)(nil)

// NewFlowsService wires the three flows to one model and the weather tool.
// modelTimeout bounds each model exchange; zero disables the bound.
func NewFlowsService(model generativeAI.Model, weatherService weather.Service, modelTimeout time.Duration, logger *slog.Logger) *ServiceImpl {
	weatherTool := weather.Tool(weatherService)

	recommendations := NewFlow(Definition[types.TravelPreferencesInput, types.TravelRecommendationsOutput]{
		Name:        RecommendationsFlowName,
		Description: "Personalized Karnataka destinations, activities and brief itineraries with weather and map links.",
		Input:       TravelPreferencesInputSchema,
		Output:      TravelRecommendationsOutputSchema,
		Prompt:      getPersonalizedRecommendationsPrompt,
		Tools:       []generativeAI.Tool{weatherTool},
	}, model, modelTimeout, logger)

	itinerary := NewFlow(Definition[types.GenerateItineraryInput, types.GenerateItineraryOutput]{
		Name:        ItineraryFlowName,
		Description: "Day-by-day itinerary for the given destinations with weather, map links and transport notes.",
		Input:       GenerateItineraryInputSchema,
		Output:      GenerateItineraryOutputSchema,
		Prompt:      getItineraryPrompt,
		Tools:       []generativeAI.Tool{weatherTool},
		Check:       checkDaySequence,
	}, model, modelTimeout, logger)

	legacy := NewFlow(Definition[types.TravelPreferencesInput, types.LegacyTravelRecommendationsOutput]{
		Name:        TravelRecommendationFlowName,
		Description: "Free-text travel recommendations without tools.",
		Input:       TravelPreferencesInputSchema,
		Output:      LegacyTravelRecommendationsOutputSchema,
		Prompt:      getTravelRecommendationPrompt,
	}, model, modelTimeout, logger)

	return &ServiceImpl{
		logger:          logger,
		recommendations: recommendations,
		itinerary:       itinerary,
		legacy:          legacy,
		registry:        NewRegistry(recommendations, itinerary, legacy),
	}
}

func (s *ServiceImpl) GetPersonalizedTravelRecommendations(ctx context.Context, in types.TravelPreferencesInput) (*types.TravelRecommendationsOutput, error) {
	return s.recommendations.Invoke(ctx, in)
}

func (s *ServiceImpl) GenerateItinerary(ctx context.Context, in types.GenerateItineraryInput) (*types.GenerateItineraryOutput, error) {
	return s.itinerary.Invoke(ctx, in)
}

func (s *ServiceImpl) GetTravelRecommendation(ctx context.Context, in types.TravelPreferencesInput) (*types.LegacyTravelRecommendationsOutput, error) {
	return s.legacy.Invoke(ctx, in)
}

func (s *ServiceImpl) Registry() *Registry {
	return s.registry
}
