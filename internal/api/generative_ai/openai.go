package generativeAI

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/karnataka-trip-planner/app/observability/metrics"
	"github.com/FACorreiaa/karnataka-trip-planner/config"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

// OpenAIModel targets any OpenAI-compatible chat completions endpoint.
type OpenAIModel struct {
	client      *openai.Client
	model       string
	temperature float32
	maxRounds   int
	logger      *slog.Logger
}

var _ Model = (*OpenAIModel)(nil)

func NewOpenAIModel(apiKey string, cfg config.AIConfig, logger *slog.Logger) *OpenAIModel {
	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	maxRounds := cfg.MaxToolRounds
	if maxRounds <= 0 {
		maxRounds = 6
	}
	return &OpenAIModel{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		temperature: cfg.Temperature,
		maxRounds:   maxRounds,
		logger:      logger,
	}
}

func (m *OpenAIModel) chatRequest(req Request, messages []openai.ChatCompletionMessage) openai.ChatCompletionRequest {
	temperature := m.temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	// go-openai drops a zero temperature from the request body.
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}
	cr := openai.ChatCompletionRequest{
		Model:       m.model,
		Messages:    messages,
		Temperature: temperature,
	}
	if req.OutputSchema != nil {
		cr.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	}
	for _, t := range req.Tools {
		cr.Tools = append(cr.Tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Input.ToJSONSchema(),
			},
		})
	}
	return cr
}

func (m *OpenAIModel) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "OpenAIModel.Generate", trace.WithAttributes(
		attribute.String("model", m.model),
		attribute.String("request.name", req.Name),
		attribute.Int("prompt.length", len(req.Prompt)),
		attribute.Int("tools.count", len(req.Tools)),
	))
	defer span.End()

	prompt := req.Prompt
	if req.OutputSchema != nil {
		// json_object mode requires the word JSON in the conversation.
		prompt += jsonOnlyInstruction
	}
	messages := []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}}
	resp := &Response{}

	for round := 1; round <= m.maxRounds; round++ {
		resp.Rounds = round
		metrics.Get().ModelRoundsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", "openai")))

		result, err := m.client.CreateChatCompletion(ctx, m.chatRequest(req, messages))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Chat completion failed")
			return nil, fmt.Errorf("%w: %w", types.ErrModelInvocation, err)
		}
		if len(result.Choices) == 0 {
			err := errors.New("chat completion returned no choices")
			span.RecordError(err)
			span.SetStatus(codes.Error, "Empty response")
			return nil, fmt.Errorf("%w: %w", types.ErrModelInvocation, err)
		}

		msg := result.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			text := cleanJSONResponse(msg.Content)
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

		messages = append(messages, msg)
		for _, tc := range msg.ToolCalls {
			call := runTool(ctx, m.logger, req.Tools, tc.Function.Name, json.RawMessage(tc.Function.Arguments))
			resp.ToolCalls = append(resp.ToolCalls, call)

			payload, err := json.Marshal(call.Payload())
			if err != nil {
				payload = []byte(`{"error":"unencodable tool result"}`)
			}
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    string(payload),
				Name:       tc.Function.Name,
				ToolCallID: tc.ID,
			})
		}
		m.logger.DebugContext(ctx, "Answered model tool calls",
			slog.String("request", req.Name),
			slog.Int("round", round),
			slog.Int("calls", len(msg.ToolCalls)))
	}

	err := fmt.Errorf("%w: exceeded %d tool rounds", types.ErrModelInvocation, m.maxRounds)
	span.RecordError(err)
	span.SetStatus(codes.Error, "Tool round limit reached")
	return nil, err
}
