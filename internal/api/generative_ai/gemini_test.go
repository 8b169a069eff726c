package generativeAI

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/schema"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

const geminiFunctionCallReply = `{
  "candidates": [{
    "content": {
      "role": "model",
      "parts": [{"functionCall": {"name": "getWeather", "args": {"location": "Hampi"}}}]
    },
    "finishReason": "STOP"
  }]
}`

const geminiFinalReply = `{
  "candidates": [{
    "content": {
      "role": "model",
      "parts": [{"text": "` + "```json\\n" + `{\"overallTitle\":\"Ruins of Hampi\"}` + "\\n```" + `"}]
    },
    "finishReason": "STOP"
  }]
}`

func newTestGeminiModel(t *testing.T, baseURL string) *GeminiModel {
	t.Helper()
	m, err := NewGeminiModel(context.Background(), "test-key", configFor("gemini", "", baseURL), slog.Default())
	require.NoError(t, err)
	return m
}

func TestGeminiModel_ContentConfig(t *testing.T) {
	m := &GeminiModel{temperature: 0.4, maxRounds: 2, logger: slog.Default()}
	out := schema.Object("out", schema.Required("overallTitle", schema.String("title")))

	t.Run("Structured decoding without tools", func(t *testing.T) {
		cfg := m.contentConfig(Request{OutputSchema: out})
		assert.Equal(t, "application/json", cfg.ResponseMIMEType)
		require.NotNil(t, cfg.ResponseSchema)
		assert.Equal(t, []string{"overallTitle"}, cfg.ResponseSchema.Required)
		assert.Empty(t, cfg.Tools)
		assert.InDelta(t, 0.4, *cfg.Temperature, 0.0001)
	})

	t.Run("Function declarations with tools", func(t *testing.T) {
		temp := float32(0.9)
		tool := echoTool(nil)
		cfg := m.contentConfig(Request{OutputSchema: out, Tools: []Tool{tool}, Temperature: &temp})
		assert.Empty(t, cfg.ResponseMIMEType)
		assert.Nil(t, cfg.ResponseSchema)
		require.Len(t, cfg.Tools, 1)
		require.Len(t, cfg.Tools[0].FunctionDeclarations, 1)
		decl := cfg.Tools[0].FunctionDeclarations[0]
		assert.Equal(t, "getWeather", decl.Name)
		assert.Equal(t, []string{"location"}, decl.Parameters.Required)
		assert.InDelta(t, 0.9, *cfg.Temperature, 0.0001)
	})
}

func TestGeminiModel_ToolLoop(t *testing.T) {
	srv := newScriptedServer(t, geminiFunctionCallReply, geminiFinalReply)
	m := newTestGeminiModel(t, srv.URL)

	var locations []string
	tool := echoTool(func(ctx context.Context, args json.RawMessage) (any, error) {
		var in struct {
			Location string `json:"location"`
		}
		require.NoError(t, json.Unmarshal(args, &in))
		locations = append(locations, in.Location)
		return map[string]string{"temperature": "31°C", "condition": "Clear and Sunny"}, nil
	})

	resp, err := m.Generate(context.Background(), Request{
		Name:         "test",
		Prompt:       "Plan Hampi",
		OutputSchema: schema.Object("out", schema.Required("overallTitle", schema.String("title"))),
		Tools:        []Tool{tool},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"overallTitle":"Ruins of Hampi"}`, string(resp.Raw))
	assert.Equal(t, 2, resp.Rounds)
	assert.Equal(t, []string{"Hampi"}, locations)

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	contents := reqs[1]["contents"].([]any)
	require.Len(t, contents, 3)
	last := contents[2].(map[string]any)
	parts := last["parts"].([]any)
	fr := parts[0].(map[string]any)["functionResponse"].(map[string]any)
	assert.Equal(t, "getWeather", fr["name"])
	assert.Equal(t, "Clear and Sunny", fr["response"].(map[string]any)["condition"])
}

func TestGeminiModel_TransportError(t *testing.T) {
	srv := newScriptedServer(t)
	m := newTestGeminiModel(t, srv.URL)

	_, err := m.Generate(context.Background(), Request{Prompt: "hello"})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrModelInvocation)
}
