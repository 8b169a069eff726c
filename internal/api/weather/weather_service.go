package weather

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/FACorreiaa/karnataka-trip-planner/app/observability/metrics"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

// Profile is the base reading for a known place. Readings are jittered
// around BaseTemperature and BaseHumidity on every call.
type Profile struct {
	Name            string
	Match           []string
	BaseTemperature int
	Condition       string
	BaseHumidity    int
	Wind            string
}

// Profiles are checked in order against the lower-cased location.
var Profiles = []Profile{
	{Name: "coorg", Match: []string{"coorg"}, BaseTemperature: 22, Condition: "Misty and Pleasant", BaseHumidity: 80, Wind: "5 km/h SW"},
	{Name: "mysore", Match: []string{"mysore"}, BaseTemperature: 28, Condition: "Sunny with scattered clouds", BaseHumidity: 65, Wind: "8 km/h W"},
	{Name: "hampi", Match: []string{"hampi"}, BaseTemperature: 32, Condition: "Clear and Sunny", BaseHumidity: 40, Wind: "12 km/h NW"},
	{Name: "bangalore", Match: []string{"bangalore", "bengaluru"}, BaseTemperature: 26, Condition: "Pleasant with passing clouds", BaseHumidity: 60, Wind: "10 km/h E"},
	{Name: "mangalore", Match: []string{"mangalore", "mangaluru"}, BaseTemperature: 30, Condition: "Humid with coastal breeze", BaseHumidity: 78, Wind: "14 km/h W"},
}

// DefaultProfile applies when no known place matches, the empty string included.
var DefaultProfile = Profile{Name: "default", BaseTemperature: 27, Condition: "Partly Cloudy", BaseHumidity: 70, Wind: "7 km/h N"}

// ProfileFor returns the first profile whose match term is a substring of location.
func ProfileFor(location string) Profile {
	loc := strings.ToLower(location)
	for _, p := range Profiles {
		for _, m := range p.Match {
			if strings.Contains(loc, m) {
				return p
			}
		}
	}
	return DefaultProfile
}

type Service interface {
	GetWeather(ctx context.Context, location string) types.WeatherReading
}

type ServiceImpl struct {
	logger *slog.Logger
	intn   func(n int) int
}

var _ Service = (*ServiceImpl)(nil)

func NewWeatherService(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger, intn: rand.IntN}
}

// GetWeather is total over all strings and never caches: two calls for the
// same location may return different temperatures and humidity.
func (s *ServiceImpl) GetWeather(ctx context.Context, location string) types.WeatherReading {
	ctx, span := otel.Tracer("WeatherService").Start(ctx, "GetWeather")
	defer span.End()

	s.logger.InfoContext(ctx, "Weather tool called", slog.String("location", location))

	p := ProfileFor(location)
	span.SetAttributes(
		attribute.String("weather.location", location),
		attribute.String("weather.profile", p.Name),
	)
	metrics.Get().WeatherToolCalls.Add(ctx, 1, metric.WithAttributes(attribute.String("profile", p.Name)))

	temperature := p.BaseTemperature - 2 + s.intn(5)
	humidity := p.BaseHumidity - 5 + s.intn(11)

	return types.WeatherReading{
		Temperature: fmt.Sprintf("%d°C", temperature),
		Condition:   p.Condition,
		Humidity:    fmt.Sprintf("%d%%", humidity),
		Wind:        p.Wind,
	}
}
