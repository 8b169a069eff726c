package generativeAI

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/FACorreiaa/karnataka-trip-planner/config"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/schema"
)

// Model is the opaque external generative runtime. A single Generate call is
// one request/response exchange from the caller's view, even when the model
// issues tool sub-requests before producing its answer.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

type Request struct {
	// Name labels the exchange in traces and logs, usually the flow name.
	Name         string
	Prompt       string
	OutputSchema *schema.Schema
	Tools        []Tool
	Temperature  *float32
}

// Response carries the model's final answer as raw JSON. Validation is the
// caller's job.
type Response struct {
	Raw       json.RawMessage
	Rounds    int
	ToolCalls []ToolCall
}

// ToolHandler is the host callback the model runtime invokes for a tool.
type ToolHandler func(ctx context.Context, args json.RawMessage) (any, error)

// Tool is a capability declared to the model by name and schema.
type Tool struct {
	Name        string
	Description string
	Input       *schema.Schema
	Output      *schema.Schema
	Handler     ToolHandler
}

// ToolCall records one tool sub-request. Err is set instead of Result when the
// call failed; the model still receives an answer in that case.
type ToolCall struct {
	Name   string          `json:"name"`
	Args   json.RawMessage `json:"args"`
	Result json.RawMessage `json:"result,omitempty"`
	Err    string          `json:"error,omitempty"`
}

// Payload is what gets sent back to the model for this call.
func (c ToolCall) Payload() map[string]any {
	if c.Err != "" {
		return map[string]any{"error": c.Err}
	}
	var obj map[string]any
	if err := json.Unmarshal(c.Result, &obj); err == nil && obj != nil {
		return obj
	}
	var v any
	_ = json.Unmarshal(c.Result, &v)
	return map[string]any{"output": v}
}

func findTool(tools []Tool, name string) (Tool, bool) {
	for _, t := range tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// runTool validates the arguments, calls the host handler and validates what
// it returns. Failures are captured on the ToolCall rather than aborting the
// exchange, so the model can carry on without the data.
func runTool(ctx context.Context, logger *slog.Logger, tools []Tool, name string, args json.RawMessage) ToolCall {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	call := ToolCall{Name: name, Args: args}

	tool, ok := findTool(tools, name)
	if !ok {
		call.Err = fmt.Sprintf("unknown tool %q", name)
		logger.WarnContext(ctx, "Model requested an undeclared tool", slog.String("tool", name))
		return call
	}
	if tool.Input != nil {
		if vio := tool.Input.ValidateJSON(args); vio != nil {
			call.Err = "invalid arguments: " + vio.Error()
			logger.WarnContext(ctx, "Tool arguments rejected", slog.String("tool", name), slog.String("reason", vio.Error()))
			return call
		}
	}

	out, err := tool.Handler(ctx, args)
	if err != nil {
		call.Err = err.Error()
		logger.WarnContext(ctx, "Tool handler failed", slog.String("tool", name), slog.Any("error", err))
		return call
	}
	raw, err := json.Marshal(out)
	if err != nil {
		call.Err = "tool result is not JSON encodable"
		return call
	}
	if tool.Output != nil {
		if vio := tool.Output.ValidateJSON(raw); vio != nil {
			call.Err = "invalid result: " + vio.Error()
			logger.WarnContext(ctx, "Tool result rejected", slog.String("tool", name), slog.String("reason", vio.Error()))
			return call
		}
	}
	call.Result = raw
	return call
}

// NewModel builds the configured provider. The API key is read from the
// environment variable named by cfg.APIKeyEnv.
func NewModel(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (Model, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable is not set", cfg.APIKeyEnv)
	}

	switch cfg.Provider {
	case "", "gemini":
		return NewGeminiModel(ctx, apiKey, cfg, logger)
	case "openai":
		return NewOpenAIModel(apiKey, cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
}
