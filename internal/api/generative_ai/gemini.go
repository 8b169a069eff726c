package generativeAI

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/karnataka-trip-planner/app/observability/metrics"
	"github.com/FACorreiaa/karnataka-trip-planner/config"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

const jsonOnlyInstruction = "\n\nRespond with a single JSON object only, matching the output format described above. Do not wrap it in markdown."

// GeminiModel talks to the Gemini API and runs the function-calling loop.
type GeminiModel struct {
	client      *genai.Client
	model       string
	temperature float32
	maxRounds   int
	logger      *slog.Logger
}

var _ Model = (*GeminiModel)(nil)

func NewGeminiModel(ctx context.Context, apiKey string, cfg config.AIConfig, logger *slog.Logger) (*GeminiModel, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewGeminiModel")
	defer span.End()

	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	maxRounds := cfg.MaxToolRounds
	if maxRounds <= 0 {
		maxRounds = 6
	}

	span.SetStatus(codes.Ok, "Gemini client created")
	return &GeminiModel{
		client:      client,
		model:       model,
		temperature: cfg.Temperature,
		maxRounds:   maxRounds,
		logger:      logger,
	}, nil
}

func (m *GeminiModel) contentConfig(req Request) *genai.GenerateContentConfig {
	temperature := m.temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	cfg := &genai.GenerateContentConfig{Temperature: genai.Ptr(temperature)}

	// Function calling and JSON response mode cannot be combined, so with tools
	// declared the output shape is requested in the prompt instead.
	if len(req.Tools) == 0 {
		if req.OutputSchema != nil {
			cfg.ResponseMIMEType = "application/json"
			cfg.ResponseSchema = req.OutputSchema.ToGenAI()
		}
		return cfg
	}

	decls := make([]*genai.FunctionDeclaration, 0, len(req.Tools))
	for _, t := range req.Tools {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Input.ToGenAI(),
		})
	}
	cfg.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	return cfg
}

func (m *GeminiModel) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GeminiModel.Generate", trace.WithAttributes(
		attribute.String("model", m.model),
		attribute.String("request.name", req.Name),
		attribute.Int("prompt.length", len(req.Prompt)),
		attribute.Int("tools.count", len(req.Tools)),
	))
	defer span.End()

	cfg := m.contentConfig(req)
	prompt := req.Prompt
	if len(req.Tools) > 0 && req.OutputSchema != nil {
		prompt += jsonOnlyInstruction
	}
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	resp := &Response{}

	for round := 1; round <= m.maxRounds; round++ {
		resp.Rounds = round
		metrics.Get().ModelRoundsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", "gemini")))

		result, err := m.client.Models.GenerateContent(ctx, m.model, contents, cfg)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Failed to generate content")
			return nil, fmt.Errorf("%w: %w", types.ErrModelInvocation, err)
		}

		calls := result.FunctionCalls()
		if len(calls) == 0 {
			text := cleanJSONResponse(result.Text())
			if text == "" {
				err := errors.New("model returned an empty response")
				span.RecordError(err)
				span.SetStatus(codes.Error, "Empty response")
				return nil, fmt.Errorf("%w: %w", types.ErrModelInvocation, err)
			}
			resp.Raw = json.RawMessage(text)
			span.SetAttributes(attribute.Int("rounds", round), attribute.Int("response.length", len(text)))
			span.SetStatus(codes.Ok, "Content generated")
			return resp, nil
		}

		if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
			err := errors.New("function call response carried no candidate content")
			span.RecordError(err)
			span.SetStatus(codes.Error, "Malformed response")
			return nil, fmt.Errorf("%w: %w", types.ErrModelInvocation, err)
		}
		contents = append(contents, result.Candidates[0].Content)

		parts := make([]*genai.Part, 0, len(calls))
		for _, fc := range calls {
			args, err := json.Marshal(fc.Args)
			if err != nil {
				args = json.RawMessage("{}")
			}
			call := runTool(ctx, m.logger, req.Tools, fc.Name, args)
			resp.ToolCalls = append(resp.ToolCalls, call)

			parts = append(parts, genai.NewPartFromFunctionResponse(fc.Name, call.Payload()))
		}
		contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))

		m.logger.DebugContext(ctx, "Answered model tool calls",
			slog.String("request", req.Name),
			slog.Int("round", round),
			slog.String("tools", toolNames(calls)))
	}

	err := fmt.Errorf("%w: exceeded %d tool rounds", types.ErrModelInvocation, m.maxRounds)
	span.RecordError(err)
	span.SetStatus(codes.Error, "Tool round limit reached")
	return nil, err
}

func toolNames(calls []*genai.FunctionCall) string {
	names := make([]string, 0, len(calls))
	for _, c := range calls {
		names = append(names, c.Name)
	}
	return strings.Join(names, ",")
}
