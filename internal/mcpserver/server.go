// Package mcpserver exposes the weather tool and the travel flows as MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/flows"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/weather"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

const (
	ServerName    = "karnataka-trip-planner"
	ServerVersion = "v1.0.0"
)

// NewServer registers the weather tool and one tool per registered flow.
func NewServer(weatherService weather.Service, registry *flows.Registry, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: ServerVersion}, nil)

	server.AddTool(&mcp.Tool{
		Name:        weather.ToolName,
		Description: weather.ToolDescription,
		InputSchema: weather.InputSchema.ToJSONSchema(),
	}, weatherHandler(weatherService, logger))

	for _, summary := range registry.List() {
		runner, err := registry.Lookup(summary.Name)
		if err != nil {
			continue
		}
		server.AddTool(&mcp.Tool{
			Name:        runner.Name(),
			Description: runner.Description(),
			InputSchema: runner.InputSchema().ToJSONSchema(),
		}, flowHandler(runner, logger))
	}
	return server
}

// Serve runs the server over stdin/stdout until ctx is done or the client disconnects.
func Serve(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func weatherHandler(svc weather.Service, logger *slog.Logger) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, span := otel.Tracer("MCPServer").Start(ctx, "CallTool", trace.WithAttributes(
			attribute.String("tool.name", weather.ToolName),
		))
		defer span.End()

		args := arguments(req)
		if vio := weather.InputSchema.ValidateJSON(args); vio != nil {
			err := types.NewFieldError(types.ErrSchemaViolation, vio.Field, vio.Constraint)
			span.SetStatus(codes.Error, "Schema violation")
			return errorResult(err), nil
		}

		var in weather.Input
		if err := json.Unmarshal(args, &in); err != nil {
			return errorResult(err), nil
		}
		reading := svc.GetWeather(ctx, in.Location)
		logger.DebugContext(ctx, "MCP weather call served", slog.String("location", in.Location))
		return jsonResult(reading)
	}
}

func flowHandler(runner flows.Runner, logger *slog.Logger) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, span := otel.Tracer("MCPServer").Start(ctx, "CallTool", trace.WithAttributes(
			attribute.String("tool.name", runner.Name()),
		))
		defer span.End()

		out, err := runner.InvokeJSON(ctx, arguments(req))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Flow failed")
			logger.WarnContext(ctx, "MCP flow call failed", slog.String("flow", runner.Name()), slog.Any("error", err))
			return errorResult(err), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(out)}},
		}, nil
	}
}

func arguments(req *mcp.CallToolRequest) json.RawMessage {
	if req == nil || req.Params == nil || len(req.Params.Arguments) == 0 {
		return json.RawMessage(`{}`)
	}
	return req.Params.Arguments
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}, nil
}

// errorResult reports a failed call to the client. Input problems keep their
// field path; upstream model failures are reduced to a generic message.
func errorResult(err error) *mcp.CallToolResult {
	message := "internal error"
	var fe *types.FieldError
	switch {
	case errors.As(err, &fe) && errors.Is(err, types.ErrSchemaViolation):
		message = fe.Error()
	case errors.Is(err, types.ErrModelTimeout):
		message = "the travel assistant took too long to answer, please try again"
	case errors.Is(err, types.ErrOutputSchemaViolation):
		message = "the model could not produce a valid response"
	case errors.Is(err, types.ErrModelInvocation), errors.Is(err, types.ErrToolInvocation):
		message = "travel assistant is unavailable, please try again"
	case errors.Is(err, types.ErrSchemaViolation):
		message = err.Error()
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
	}
}
