package container

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/karnataka-trip-planner/config"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/flows"
	generativeAI "github.com/FACorreiaa/karnataka-trip-planner/internal/api/generative_ai"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

type staticModel struct{ raw string }

func (m staticModel) Generate(context.Context, generativeAI.Request) (*generativeAI.Response, error) {
	return &generativeAI.Response{Raw: json.RawMessage(m.raw), Rounds: 1}, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AI.ModelTimeout = time.Second
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	return cfg
}

func TestNewContainerWithModel(t *testing.T) {
	c, err := NewContainerWithModel(testConfig(), staticModel{raw: `{"destinations":"Mysore","activities":"Palace","itineraries":"Day 1: Mysore"}`}, slog.Default())
	require.NoError(t, err)

	names := make([]string, 0, 3)
	for _, f := range c.FlowsService.Registry().List() {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{
		flows.RecommendationsFlowName,
		flows.ItineraryFlowName,
		flows.TravelRecommendationFlowName,
	}, names)

	out, err := c.FlowsService.GetTravelRecommendation(context.Background(), types.TravelPreferencesInput{
		Interests: "palaces",
		Budget:    types.BudgetLow,
		Duration:  "1 day",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mysore", out.Destinations)

	rc := c.RouterConfig()
	assert.Same(t, c.FlowsHandler, rc.FlowsHandler)
	assert.Equal(t, []string{"http://localhost:3000"}, rc.AllowedOrigins)
}

func TestNewContainer_MissingAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.AI.Provider = "gemini"
	cfg.AI.APIKeyEnv = "TRIP_PLANNER_TEST_MISSING_KEY"
	t.Setenv("TRIP_PLANNER_TEST_MISSING_KEY", "")

	_, err := NewContainer(context.Background(), cfg, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRIP_PLANNER_TEST_MISSING_KEY")
}
