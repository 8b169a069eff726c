package flows

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

func TestPersonalizedRecommendationsPrompt(t *testing.T) {
	in := types.TravelPreferencesInput{Interests: "nature,trekking", Budget: types.BudgetMedium, Duration: "3 days"}
	p := getPersonalizedRecommendationsPrompt(in)

	assert.Contains(t, p, "Interests: nature,trekking\n")
	assert.Contains(t, p, "Budget: medium\n")
	assert.Contains(t, p, "Duration: 3 days\n")
	// Absent optionals keep their line with an empty value.
	assert.Contains(t, p, "Travel Style: \n")
	assert.Contains(t, p, "Location Preferences: \n")
	assert.Contains(t, p, types.GoogleMapsSearchBaseURL)
	assert.Contains(t, p, "query=Coorg%2C+Karnataka")
	assert.Contains(t, p, "getWeather")
	assert.Contains(t, p, "primary recommended destination")

	assert.Equal(t, p, getPersonalizedRecommendationsPrompt(in))

	full := getPersonalizedRecommendationsPrompt(types.TravelPreferencesInput{
		Interests: "food", Budget: types.BudgetHigh, Duration: "1 week",
		TravelStyle: "luxury", LocationPreferences: "Mangalore",
	})
	assert.Contains(t, full, "Travel Style: luxury\n")
	assert.Contains(t, full, "Location Preferences: Mangalore\n")
	assert.Equal(t, strings.Count(p, "\n"), strings.Count(full, "\n"))
}

func TestItineraryPrompt(t *testing.T) {
	p := getItineraryPrompt(types.GenerateItineraryInput{Destinations: "Mysore,Coorg", Duration: "5 days", Interests: "history"})

	assert.Contains(t, p, "Destinations: Mysore,Coorg\n")
	assert.Contains(t, p, "Duration: 5 days\n")
	assert.Contains(t, p, "Interests: history\n")
	assert.Contains(t, p, "query=Mysore+Palace%2C+Karnataka")
	assert.Contains(t, p, "The first day is 1")
	assert.Contains(t, p, "Only call getWeather for distinct, major locations")
	assert.Contains(t, p, `"transportationNotes"`)
}

func TestTravelRecommendationPrompt(t *testing.T) {
	p := getTravelRecommendationPrompt(types.TravelPreferencesInput{Interests: "temples", Budget: types.BudgetLow, Duration: "2 days"})

	assert.Contains(t, p, "Interests: temples\n")
	assert.Contains(t, p, "Travel Style: \n")
	assert.NotContains(t, p, "getWeather")
	assert.NotContains(t, p, "googleMapsUrl")
}
