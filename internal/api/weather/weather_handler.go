package weather

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/karnataka-trip-planner/internal/api"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

type HandlerImpl struct {
	logger  *slog.Logger
	service Service
}

func NewWeatherHandler(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		logger:  logger,
		service: service,
	}
}

// GetWeather godoc
// @Summary      Run the weather tool
// @Description  Returns the mock weather reading the model would receive for a location.
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        request body Input true "Location to look up"
// @Success      200 {object} types.WeatherReading
// @Failure      400 {object} types.FlowErrorResponse
// @Router       /tools/weather [post]
func (h *HandlerImpl) GetWeather(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("WeatherHandler").Start(r.Context(), "GetWeather")
	defer span.End()

	l := h.logger.With(slog.String("HandlerImpl", "GetWeather"))

	raw, err := api.ReadJSONBody(w, r)
	if err != nil {
		l.WarnContext(ctx, "Failed to read request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if vio := InputSchema.ValidateJSON(raw); vio != nil {
		err := types.NewFieldError(types.ErrSchemaViolation, vio.Field, vio.Constraint)
		l.WarnContext(ctx, "Weather request rejected", slog.Any("error", err))
		span.SetStatus(codes.Error, "Schema violation")
		api.FlowErrorResponse(w, r, err)
		return
	}

	var in Input
	if err := json.Unmarshal(raw, &in); err != nil {
		span.SetStatus(codes.Error, "Decode failed")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	reading := h.service.GetWeather(ctx, in.Location)
	span.SetStatus(codes.Ok, "Weather returned")
	api.WriteJSONResponse(w, r, http.StatusOK, reading)
}
