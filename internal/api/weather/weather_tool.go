package weather

import (
	"context"
	"encoding/json"
	"fmt"

	generativeAI "github.com/FACorreiaa/karnataka-trip-planner/internal/api/generative_ai"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/schema"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

const (
	ToolName        = "getWeather"
	ToolDescription = "Provides the current weather forecast for a specified location in Karnataka. Use this for primary destinations in an itinerary."
)

// Input is the tool's argument object.
type Input struct {
	Location string `json:"location" example:"Coorg"`
}

var InputSchema = schema.Object("Arguments for the weather lookup",
	schema.Required("location", schema.String("The city or specific location in Karnataka, e.g., Coorg, Mysore, Hampi.")),
)

// ReadingSchema describes a WeatherReading. Flows embed it in their outputs.
var ReadingSchema = schema.Object("Current weather at the location",
	schema.Required("temperature", schema.String("Current temperature with unit, e.g., 25°C.")),
	schema.Required("condition", schema.String("Short description of the weather, e.g., Sunny, Cloudy.")),
	schema.Optional("humidity", schema.String("Humidity percentage, e.g., 60%.")),
	schema.Optional("wind", schema.String("Wind speed and direction, e.g., 10 km/h NW.")),
)

// Tool declares the weather lookup to a model runtime.
func Tool(svc Service) generativeAI.Tool {
	return generativeAI.Tool{
		Name:        ToolName,
		Description: ToolDescription,
		Input:       InputSchema,
		Output:      ReadingSchema,
		Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
			var in Input
			if err := json.Unmarshal(args, &in); err != nil {
				return nil, fmt.Errorf("%w: %w", types.ErrToolInvocation, err)
			}
			return svc.GetWeather(ctx, in.Location), nil
		},
	}
}
