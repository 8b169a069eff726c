package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

const maxBodyBytes = 1_048_576

// ErrorResponse writes a standard JSON error response including request ID.
func ErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	WriteJSONResponse(w, r, status, types.FlowErrorResponse{
		Success:   false,
		Error:     message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// FlowErrorResponse maps a domain error onto its HTTP status. Schema
// violations keep their field path so callers can fix the offending input.
func FlowErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status, message := StatusFor(err)
	resp := types.FlowErrorResponse{
		Success:   false,
		Error:     message,
		RequestID: middleware.GetReqID(r.Context()),
	}

	var fe *types.FieldError
	if errors.As(err, &fe) && errors.Is(err, types.ErrSchemaViolation) {
		resp.Field = fe.Field
		resp.Constraint = fe.Constraint
	}
	WriteJSONResponse(w, r, status, resp)
}

// StatusFor returns the HTTP status and client-facing message for err.
// Model and tool internals are never echoed back.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, types.ErrSchemaViolation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, types.ErrFlowNotFound), errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, types.ErrModelTimeout):
		return http.StatusGatewayTimeout, "the travel assistant took too long to answer, please try again"
	case errors.Is(err, types.ErrOutputSchemaViolation):
		return http.StatusBadGateway, "the model could not produce a valid response"
	case errors.Is(err, types.ErrModelInvocation), errors.Is(err, types.ErrToolInvocation):
		return http.StatusBadGateway, "travel assistant is unavailable, please try again"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// WriteJSONResponse encodes the data to JSON and writes the response header and body.
func WriteJSONResponse(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	js, err := json.Marshal(data)
	if err != nil {
		reqID := middleware.GetReqID(r.Context())
		slog.ErrorContext(r.Context(), "Failed to marshal JSON response",
			slog.Any("error", err),
			slog.String("request_id", reqID),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(js); err != nil {
		reqID := middleware.GetReqID(r.Context())
		slog.ErrorContext(r.Context(), "Failed to write response body",
			slog.Any("error", err),
			slog.String("request_id", reqID),
		)
	}
}

// ReadJSONBody returns the raw request body so it can be validated against a
// schema before it is decoded into a typed value.
func ReadJSONBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			return nil, fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		}
		return nil, fmt.Errorf("error reading body: %w", err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, errors.New("body must not be empty")
	}
	return raw, nil
}
