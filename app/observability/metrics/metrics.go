package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	FlowInvocationsTotal metric.Int64Counter
	FlowDurationSeconds  metric.Float64Histogram
	ModelRoundsTotal     metric.Int64Counter
	WeatherToolCalls     metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments once, using the
// globally configured MeterProvider. Call it after the provider is installed.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("KarnatakaTripPlanner")
		var err error
		m := &AppMetrics{}

		m.FlowInvocationsTotal, err = meter.Int64Counter(
			"flow_invocations_total",
			metric.WithDescription("Total number of flow invocations by outcome"),
			metric.WithUnit("{invocation}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create flow_invocations_total: %v", err)
		}

		m.FlowDurationSeconds, err = meter.Float64Histogram(
			"flow_duration_seconds",
			metric.WithDescription("Duration of flow invocations in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create flow_duration_seconds: %v", err)
		}

		m.ModelRoundsTotal, err = meter.Int64Counter(
			"model_rounds_total",
			metric.WithDescription("Total number of model round trips, tool rounds included"),
			metric.WithUnit("{round}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create model_rounds_total: %v", err)
		}

		m.WeatherToolCalls, err = meter.Int64Counter(
			"weather_tool_calls_total",
			metric.WithDescription("Total number of weather tool calls by matched profile"),
			metric.WithUnit("{call}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create weather_tool_calls_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the global AppMetrics. Instruments are created against whatever
// provider is installed at first use, the no-op provider in tests.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
