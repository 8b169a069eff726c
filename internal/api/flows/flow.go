package flows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/karnataka-trip-planner/app/observability/metrics"
	generativeAI "github.com/FACorreiaa/karnataka-trip-planner/internal/api/generative_ai"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/schema"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

// State is a step of a single flow invocation.
type State string

const (
	StateValidatingInput  State = "VALIDATING_INPUT"
	StateAwaitingModel    State = "AWAITING_MODEL"
	StateValidatingOutput State = "VALIDATING_OUTPUT"
	StateSuccess          State = "SUCCESS"
	StateFailed           State = "FAILED"
)

// Definition binds the schemas, prompt and tools of one use case.
type Definition[In, Out any] struct {
	Name        string
	Description string
	Input       *schema.Schema
	Output      *schema.Schema
	Prompt      func(In) string
	Tools       []generativeAI.Tool
	// Check runs after structural validation for rules a schema cannot express.
	Check func(Out) *schema.Violation
}

// Flow validates input, calls the model once and validates what comes back.
// A Flow holds no per-invocation state and is safe for concurrent use.
type Flow[In, Out any] struct {
	def     Definition[In, Out]
	model   generativeAI.Model
	timeout time.Duration
	logger  *slog.Logger
}

func NewFlow[In, Out any](def Definition[In, Out], model generativeAI.Model, timeout time.Duration, logger *slog.Logger) *Flow[In, Out] {
	return &Flow[In, Out]{
		def:     def,
		model:   model,
		timeout: timeout,
		logger:  logger.With(slog.String("flow", def.Name)),
	}
}

func (f *Flow[In, Out]) Name() string                 { return f.def.Name }
func (f *Flow[In, Out]) Description() string          { return f.def.Description }
func (f *Flow[In, Out]) InputSchema() *schema.Schema  { return f.def.Input }
func (f *Flow[In, Out]) OutputSchema() *schema.Schema { return f.def.Output }

func (f *Flow[In, Out]) ToolNames() []string {
	names := make([]string, 0, len(f.def.Tools))
	for _, t := range f.def.Tools {
		names = append(names, t.Name)
	}
	return names
}

// Invoke runs the flow for a typed input. Errors wrap one of
// types.ErrSchemaViolation, types.ErrModelTimeout, types.ErrModelInvocation or
// types.ErrOutputSchemaViolation.
func (f *Flow[In, Out]) Invoke(ctx context.Context, in In) (*Out, error) {
	invocationID := uuid.New()
	ctx, span := otel.Tracer("Flows").Start(ctx, f.def.Name, trace.WithAttributes(
		attribute.String("flow.name", f.def.Name),
		attribute.String("flow.invocation_id", invocationID.String()),
	))
	defer span.End()

	l := f.logger.With(slog.String("invocation_id", invocationID.String()))
	start := time.Now()

	out, state, err := f.run(ctx, span, l, in)

	m := metrics.Get()
	flowAttr := attribute.String("flow", f.def.Name)
	m.FlowDurationSeconds.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(flowAttr))
	m.FlowInvocationsTotal.Add(ctx, 1, metric.WithAttributes(flowAttr, attribute.String("outcome", outcome(err))))

	if err != nil {
		span.AddEvent(string(StateFailed), trace.WithAttributes(attribute.String("flow.failed_in", string(state))))
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome(err))
		l.ErrorContext(ctx, "Flow failed",
			slog.String("state", string(state)),
			slog.String("outcome", outcome(err)),
			slog.Any("error", err))
		return nil, err
	}

	span.AddEvent(string(StateSuccess))
	span.SetStatus(codes.Ok, "Flow completed")
	l.InfoContext(ctx, "Flow completed", slog.Duration("latency", time.Since(start)))
	return out, nil
}

func (f *Flow[In, Out]) run(ctx context.Context, span trace.Span, l *slog.Logger, in In) (*Out, State, error) {
	span.AddEvent(string(StateValidatingInput))
	l.DebugContext(ctx, "Validating flow input")
	if vio := f.def.Input.ValidateValue(in); vio != nil {
		return nil, StateValidatingInput, types.NewFieldError(types.ErrSchemaViolation, vio.Field, vio.Constraint)
	}

	span.AddEvent(string(StateAwaitingModel))
	resp, err := f.callModel(ctx, in)
	if err != nil {
		return nil, StateAwaitingModel, err
	}
	span.SetAttributes(attribute.Int("flow.model_rounds", resp.Rounds), attribute.Int("flow.tool_calls", len(resp.ToolCalls)))
	l.DebugContext(ctx, "Model answered", slog.Int("rounds", resp.Rounds), slog.Int("tool_calls", len(resp.ToolCalls)))

	span.AddEvent(string(StateValidatingOutput))
	out, err := f.decodeOutput(resp.Raw)
	if err != nil {
		return nil, StateValidatingOutput, err
	}
	return out, StateSuccess, nil
}

func (f *Flow[In, Out]) callModel(ctx context.Context, in In) (*generativeAI.Response, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	resp, err := f.model.Generate(ctx, generativeAI.Request{
		Name:         f.def.Name,
		Prompt:       f.def.Prompt(in),
		OutputSchema: f.def.Output,
		Tools:        f.def.Tools,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s: %w", types.ErrModelTimeout, f.timeout, err)
		}
		if errors.Is(err, types.ErrModelInvocation) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", types.ErrModelInvocation, err)
	}
	if resp == nil || len(resp.Raw) == 0 {
		return nil, fmt.Errorf("%w: empty model response", types.ErrModelInvocation)
	}
	return resp, nil
}

// decodeOutput never repairs model output: any mismatch fails the invocation.
func (f *Flow[In, Out]) decodeOutput(raw json.RawMessage) (*Out, error) {
	if vio := f.def.Output.ValidateJSON(raw); vio != nil {
		return nil, types.NewFieldError(types.ErrOutputSchemaViolation, vio.Field, vio.Constraint)
	}

	var out Out
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, types.NewFieldError(types.ErrOutputSchemaViolation, "", "could not be decoded: "+err.Error())
	}
	if f.def.Check != nil {
		if vio := f.def.Check(out); vio != nil {
			return nil, types.NewFieldError(types.ErrOutputSchemaViolation, vio.Field, vio.Constraint)
		}
	}
	// Whatever is returned must pass its own schema again.
	if vio := f.def.Output.ValidateValue(out); vio != nil {
		return nil, types.NewFieldError(types.ErrOutputSchemaViolation, vio.Field, vio.Constraint)
	}
	return &out, nil
}

// InvokeJSON validates a raw input document before decoding it, runs the flow
// and returns the output as JSON.
func (f *Flow[In, Out]) InvokeJSON(ctx context.Context, raw []byte) (json.RawMessage, error) {
	if vio := f.def.Input.ValidateJSON(raw); vio != nil {
		return nil, types.NewFieldError(types.ErrSchemaViolation, vio.Field, vio.Constraint)
	}
	var in In
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, types.NewFieldError(types.ErrSchemaViolation, "", "could not be decoded: "+err.Error())
	}
	out, err := f.Invoke(ctx, in)
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, types.ErrSchemaViolation):
		return "schema_violation"
	case errors.Is(err, types.ErrOutputSchemaViolation):
		return "output_schema_violation"
	case errors.Is(err, types.ErrModelTimeout):
		return "timeout"
	default:
		return "model_error"
	}
}
