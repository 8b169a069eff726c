package flows

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

func newTestRouter(svc Service) http.Handler {
	h := NewFlowsHandler(svc, slog.Default())
	r := chi.NewRouter()
	r.Get("/flows", h.ListFlows)
	r.Get("/flows/{name}", h.GetFlowSchema)
	r.Post("/flows/recommendations", h.GetPersonalizedRecommendations)
	r.Post("/flows/itinerary", h.GenerateItinerary)
	r.Post("/flows/travel-recommendation", h.GetTravelRecommendation)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestHandler_GenerateItinerary(t *testing.T) {
	model := new(MockModel)
	model.On("Generate", mock.Anything, mock.Anything).Return(rawResponse(t, sampleItinerary(1, 2)), nil).Once()
	router := newTestRouter(newService(model, time.Second))

	rec, body := do(t, router, http.MethodPost, "/flows/itinerary", `{"destinations":"Mysore,Coorg","duration":"2 days","interests":"history"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Palaces and Coffee Hills", body["overallTitle"])
	assert.Len(t, body["dailyPlans"], 2)
}

func TestHandler_SchemaViolation(t *testing.T) {
	model := new(MockModel)
	router := newTestRouter(newService(model, time.Second))

	rec, body := do(t, router, http.MethodPost, "/flows/recommendations", `{"interests":"nature","budget":"luxury","duration":"3 days"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "budget", body["field"])
	assert.Contains(t, body["constraint"], "one of")
	model.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestHandler_EmptyBody(t *testing.T) {
	router := newTestRouter(newService(new(MockModel), time.Second))

	rec, body := do(t, router, http.MethodPost, "/flows/recommendations", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "body must not be empty", body["error"])
}

func TestHandler_OutputSchemaViolation(t *testing.T) {
	model := new(MockModel)
	raw := sampleItinerary(1)
	delete(raw, "overallTitle")
	model.On("Generate", mock.Anything, mock.Anything).Return(rawResponse(t, raw), nil).Once()
	router := newTestRouter(newService(model, time.Second))

	rec, body := do(t, router, http.MethodPost, "/flows/itinerary", `{"destinations":"Hampi","duration":"1 day","interests":"ruins"}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "the model could not produce a valid response", body["error"])
	assert.Nil(t, body["field"])
}

func TestHandler_ModelFailure(t *testing.T) {
	model := new(MockModel)
	model.On("Generate", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
	router := newTestRouter(newService(model, time.Second))

	rec, body := do(t, router, http.MethodPost, "/flows/travel-recommendation", `{"interests":"food","budget":"low","duration":"2 days"}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "travel assistant is unavailable, please try again", body["error"])
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestHandler_Timeout(t *testing.T) {
	model := new(MockModel)
	model.On("Generate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { <-args.Get(0).(context.Context).Done() }).
		Return(nil, context.DeadlineExceeded).Once()
	router := newTestRouter(newService(model, 10*time.Millisecond))

	rec, _ := do(t, router, http.MethodPost, "/flows/itinerary", `{"destinations":"Hampi","duration":"1 day","interests":"ruins"}`)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestHandler_ListAndSchema(t *testing.T) {
	router := newTestRouter(newService(new(MockModel), time.Second))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/flows", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var list []types.FlowSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 3)

	rec, body := do(t, router, http.MethodGet, "/flows/"+ItineraryFlowName, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ItineraryFlowName, body["name"])
	input := body["input"].(map[string]any)
	assert.Equal(t, "object", input["type"])
	assert.ElementsMatch(t, []any{"destinations", "duration", "interests"}, input["required"])
	output := body["output"].(map[string]any)
	assert.Contains(t, output["properties"], "dailyPlans")

	rec, _ = do(t, router, http.MethodGet, "/flows/bookFlight", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
