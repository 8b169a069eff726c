package types

import "net/url"

// Budget is the closed set of budget levels a traveler can pick.
type Budget string

const (
	BudgetLow    Budget = "low"
	BudgetMedium Budget = "medium"
	BudgetHigh   Budget = "high"
)

// GoogleMapsSearchBaseURL is the prefix every generated map link must use.
const GoogleMapsSearchBaseURL = "https://www.google.com/maps/search/?api=1&query="

// TravelPreferencesInput is what the recommendation forms collect.
type TravelPreferencesInput struct {
	Interests           string `json:"interests" example:"nature,trekking"`
	Budget              Budget `json:"budget" example:"medium"`
	Duration            string `json:"duration" example:"3 days"`
	TravelStyle         string `json:"travelStyle,omitempty" example:"backpacking"`
	LocationPreferences string `json:"locationPreferences,omitempty" example:"Coorg, Mysore"`
}

// GenerateItineraryInput drives the day-by-day itinerary generator.
type GenerateItineraryInput struct {
	Destinations string `json:"destinations" example:"Mysore,Coorg"`
	Duration     string `json:"duration" example:"5 days"`
	Interests    string `json:"interests" example:"history"`
}

// WeatherReading is produced only by the weather tool.
type WeatherReading struct {
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    string `json:"humidity,omitempty"`
	Wind        string `json:"wind,omitempty"`
}

type RecommendedDestination struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	GoogleMapsURL string          `json:"googleMapsUrl,omitempty"`
	Weather       *WeatherReading `json:"weather,omitempty"`
}

type SuggestedActivity struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	RelatedDestination string `json:"relatedDestination,omitempty"`
	GoogleMapsURL      string `json:"googleMapsUrl,omitempty"`
}

type ItineraryDay struct {
	Day         int    `json:"day"`
	Description string `json:"description"`
}

// BriefItinerary is an outline suggested alongside recommendations.
type BriefItinerary struct {
	Title   string         `json:"title"`
	Summary string         `json:"summary"`
	Days    []ItineraryDay `json:"days,omitempty"`
}

type TravelRecommendationsOutput struct {
	RecommendedDestinations []RecommendedDestination `json:"recommendedDestinations"`
	SuggestedActivities     []SuggestedActivity      `json:"suggestedActivities"`
	SuggestedItineraries    []BriefItinerary         `json:"suggestedItineraries"`
	EstimatedCost           string                   `json:"estimatedCost,omitempty"`
	AdditionalNotes         string                   `json:"additionalNotes,omitempty"`
}

// Activity is a single stop inside a DailyPlan. Weather is absent when not fetched.
type Activity struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	GoogleMapsURL string          `json:"googleMapsUrl,omitempty"`
	Weather       *WeatherReading `json:"weather,omitempty"`
}

type DailyPlan struct {
	Day                 int        `json:"day"`
	Title               string     `json:"title"`
	Summary             string     `json:"summary,omitempty"`
	Activities          []Activity `json:"activities"`
	TransportationNotes string     `json:"transportationNotes,omitempty"`
}

type GenerateItineraryOutput struct {
	OverallTitle string      `json:"overallTitle"`
	DailyPlans   []DailyPlan `json:"dailyPlans"`
}

// LegacyTravelRecommendationsOutput is the flat free-text answer of the simple
// recommendation flow.
type LegacyTravelRecommendationsOutput struct {
	Destinations    string `json:"destinations"`
	Activities      string `json:"activities"`
	Itineraries     string `json:"itineraries"`
	EstimatedCost   string `json:"estimatedCost,omitempty"`
	AdditionalNotes string `json:"additionalNotes,omitempty"`
}

// GoogleMapsSearchURL builds a map search link for a place, qualified by region
// when one is given ("Coorg", "Karnataka" -> ...query=Coorg%2C+Karnataka).
func GoogleMapsSearchURL(place, region string) string {
	query := place
	if region != "" {
		query = place + ", " + region
	}
	return GoogleMapsSearchBaseURL + url.QueryEscape(query)
}
