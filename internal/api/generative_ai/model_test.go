package generativeAI

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/schema"
)

func echoTool(handler ToolHandler) Tool {
	return Tool{
		Name:        "getWeather",
		Description: "weather",
		Input:       schema.Object("args", schema.Required("location", schema.String("Location"))),
		Output: schema.Object("reading",
			schema.Required("temperature", schema.String("t")),
			schema.Required("condition", schema.String("c")),
		),
		Handler: handler,
	}
}

func TestRunTool(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("Success", func(t *testing.T) {
		tool := echoTool(func(ctx context.Context, args json.RawMessage) (any, error) {
			return map[string]string{"temperature": "22°C", "condition": "Misty and Pleasant"}, nil
		})
		call := runTool(ctx, logger, []Tool{tool}, "getWeather", json.RawMessage(`{"location":"Coorg"}`))
		assert.Empty(t, call.Err)
		assert.JSONEq(t, `{"temperature":"22°C","condition":"Misty and Pleasant"}`, string(call.Result))
		assert.Equal(t, "Misty and Pleasant", call.Payload()["condition"])
	})

	t.Run("Unknown tool", func(t *testing.T) {
		call := runTool(ctx, logger, nil, "getTraffic", nil)
		assert.Contains(t, call.Err, "unknown tool")
		assert.JSONEq(t, `{}`, string(call.Args))
		assert.Contains(t, call.Payload()["error"], "getTraffic")
	})

	t.Run("Invalid arguments never reach the handler", func(t *testing.T) {
		called := false
		tool := echoTool(func(ctx context.Context, args json.RawMessage) (any, error) {
			called = true
			return nil, nil
		})
		call := runTool(ctx, logger, []Tool{tool}, "getWeather", json.RawMessage(`{"city":"Coorg"}`))
		assert.False(t, called)
		assert.Contains(t, call.Err, "location")
	})

	t.Run("Handler error is reported not raised", func(t *testing.T) {
		tool := echoTool(func(ctx context.Context, args json.RawMessage) (any, error) {
			return nil, errors.New("upstream weather service down")
		})
		call := runTool(ctx, logger, []Tool{tool}, "getWeather", json.RawMessage(`{"location":"Hampi"}`))
		assert.Equal(t, "upstream weather service down", call.Err)
		assert.Nil(t, call.Result)
		assert.Equal(t, map[string]any{"error": "upstream weather service down"}, call.Payload())
	})

	t.Run("Result must match output schema", func(t *testing.T) {
		tool := echoTool(func(ctx context.Context, args json.RawMessage) (any, error) {
			return map[string]string{"temperature": "22°C"}, nil
		})
		call := runTool(ctx, logger, []Tool{tool}, "getWeather", json.RawMessage(`{"location":"Coorg"}`))
		assert.Contains(t, call.Err, "condition")
	})
}

func TestToolCallPayloadNonObject(t *testing.T) {
	call := ToolCall{Name: "count", Result: json.RawMessage(`3`)}
	assert.Equal(t, map[string]any{"output": float64(3)}, call.Payload())
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", "Here is your plan:\n{\"a\":{\"b\":2}}\nEnjoy!", `{"a":{"b":2}}`},
		{"no object", "sorry", "sorry"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONResponse(tt.in))
		})
	}
}

func TestNewModelRequiresKey(t *testing.T) {
	t.Setenv("TRIP_TEST_MISSING_KEY", "")
	_, err := NewModel(context.Background(), configFor("openai", "TRIP_TEST_MISSING_KEY", ""), slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRIP_TEST_MISSING_KEY")
}

func TestNewModelProviders(t *testing.T) {
	t.Setenv("TRIP_TEST_KEY", "test-key")

	m, err := NewModel(context.Background(), configFor("openai", "TRIP_TEST_KEY", "http://localhost:1/v1"), slog.Default())
	require.NoError(t, err)
	assert.IsType(t, &OpenAIModel{}, m)

	_, err = NewModel(context.Background(), configFor("bedrock", "TRIP_TEST_KEY", ""), slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ai provider")
}
