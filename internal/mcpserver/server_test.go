package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/flows"
	generativeAI "github.com/FACorreiaa/karnataka-trip-planner/internal/api/generative_ai"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/weather"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

type fixedModel struct {
	raw string
	err error
}

func (m fixedModel) Generate(context.Context, generativeAI.Request) (*generativeAI.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &generativeAI.Response{Raw: json.RawMessage(m.raw), Rounds: 1}, nil
}

func connect(t *testing.T, model generativeAI.Model) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	logger := slog.Default()

	weatherService := weather.NewWeatherService(logger)
	flowsService := flows.NewFlowsService(model, weatherService, time.Second, logger)
	server := NewServer(weatherService, flowsService.Registry(), logger)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func text(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return tc.Text
}

func TestListTools(t *testing.T) {
	session := connect(t, fixedModel{})

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		weather.ToolName,
		flows.RecommendationsFlowName,
		flows.ItineraryFlowName,
		flows.TravelRecommendationFlowName,
	}, names)
}

func TestCallWeather(t *testing.T) {
	session := connect(t, fixedModel{})

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      weather.ToolName,
		Arguments: map[string]any{"location": "Madikeri, Coorg"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var reading types.WeatherReading
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &reading))
	assert.Equal(t, weather.ProfileFor("coorg").Condition, reading.Condition)
	assert.NotEmpty(t, reading.Temperature)
}

func TestCallWeather_MissingLocation(t *testing.T) {
	session := connect(t, fixedModel{})

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      weather.ToolName,
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "location")
}

func TestCallFlow(t *testing.T) {
	session := connect(t, fixedModel{raw: `{"destinations":"Hampi","activities":"Bouldering","itineraries":"Day 1: Hampi Bazaar"}`})

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: flows.TravelRecommendationFlowName,
		Arguments: map[string]any{
			"interests": "history",
			"budget":    "low",
			"duration":  "2 days",
		},
	})
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))

	var out types.LegacyTravelRecommendationsOutput
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &out))
	assert.Equal(t, "Hampi", out.Destinations)
}

func TestCallFlow_Errors(t *testing.T) {
	t.Run("invalid budget", func(t *testing.T) {
		session := connect(t, fixedModel{})
		res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
			Name:      flows.TravelRecommendationFlowName,
			Arguments: map[string]any{"interests": "history", "budget": "cheap", "duration": "2 days"},
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, text(t, res), "budget")
	})

	t.Run("model failure is generic", func(t *testing.T) {
		session := connect(t, fixedModel{err: errors.New("api key revoked")})
		res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
			Name:      flows.ItineraryFlowName,
			Arguments: map[string]any{"destinations": "Hampi", "duration": "1 day", "interests": "ruins"},
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Equal(t, "travel assistant is unavailable, please try again", text(t, res))
	})
}
