package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/FACorreiaa/karnataka-trip-planner/config"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/flows"
	generativeAI "github.com/FACorreiaa/karnataka-trip-planner/internal/api/generative_ai"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/container"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/router"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

type cannedModel struct {
	raw json.RawMessage
}

func (m cannedModel) Generate(context.Context, generativeAI.Request) (*generativeAI.Response, error) {
	return &generativeAI.Response{Raw: m.raw, Rounds: 1}, nil
}

// BenchmarkSuite holds the assembled router for benchmarks
type BenchmarkSuite struct {
	router http.Handler
}

func setupBenchmarkSuite(b *testing.B) *BenchmarkSuite {
	b.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	raw, err := json.Marshal(benchmarkItinerary(5))
	if err != nil {
		b.Fatal(err)
	}

	cfg := &config.Config{}
	cfg.AI.ModelTimeout = 5 * time.Second
	c, err := container.NewContainerWithModel(cfg, cannedModel{raw: raw}, logger)
	if err != nil {
		b.Fatal(err)
	}
	return &BenchmarkSuite{router: router.NewHandler(c.RouterConfig())}
}

func benchmarkItinerary(days int) types.GenerateItineraryOutput {
	out := types.GenerateItineraryOutput{OverallTitle: "Karnataka Circuit"}
	for d := 1; d <= days; d++ {
		out.DailyPlans = append(out.DailyPlans, types.DailyPlan{
			Day:   d,
			Title: "Sightseeing",
			Activities: []types.Activity{
				{Name: "Mysore Palace", GoogleMapsURL: types.GoogleMapsSearchURL("Mysore Palace", "Mysore")},
				{Name: "Brindavan Gardens", Description: "Evening fountain show."},
			},
		})
	}
	return out
}

func (s *BenchmarkSuite) request(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func BenchmarkWeatherTool(b *testing.B) {
	suite := setupBenchmarkSuite(b)
	body := []byte(`{"location":"Madikeri, Coorg"}`)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		suite.request(http.MethodPost, "/api/v1/tools/weather", body)
	}
}

func BenchmarkGenerateItinerary(b *testing.B) {
	suite := setupBenchmarkSuite(b)
	body := []byte(`{"destinations":"Mysore,Coorg","duration":"5 days","interests":"history,nature"}`)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if w := suite.request(http.MethodPost, "/api/v1/flows/itinerary", body); w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
		}
	}
}

func BenchmarkRejectedFlowInput(b *testing.B) {
	suite := setupBenchmarkSuite(b)
	body := []byte(`{"interests":"beaches","budget":"luxury","duration":"2 days"}`)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		suite.request(http.MethodPost, "/api/v1/flows/recommendations", body)
	}
}

func BenchmarkCatalogCached(b *testing.B) {
	suite := setupBenchmarkSuite(b)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		suite.request(http.MethodGet, "/api/v1/destinations?category=nature", nil)
	}
}

func BenchmarkConcurrentRequests(b *testing.B) {
	suite := setupBenchmarkSuite(b)
	body := []byte(`{"location":"Hampi"}`)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			suite.request(http.MethodPost, "/api/v1/tools/weather", body)
		}
	})
}

func BenchmarkOutputValidation(b *testing.B) {
	raw, err := json.Marshal(benchmarkItinerary(14))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if vio := flows.GenerateItineraryOutputSchema.ValidateJSON(raw); vio != nil {
			b.Fatal(vio)
		}
	}
}
