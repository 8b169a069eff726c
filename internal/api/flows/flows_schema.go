package flows

import (
	"fmt"

	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/schema"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/weather"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

func mapsURL(description string) *schema.Schema {
	return schema.String(description).URL().WithPrefix(types.GoogleMapsSearchBaseURL)
}

var TravelPreferencesInputSchema = schema.Object("Traveler preferences for a Karnataka trip",
	schema.Required("interests", schema.String("Interests of the traveler, e.g., historical sites, nature, adventure.").NotBlank()),
	schema.Required("budget", schema.String("Budget of the traveler: low, medium or high.").
		OneOf(string(types.BudgetLow), string(types.BudgetMedium), string(types.BudgetHigh))),
	schema.Required("duration", schema.String("Duration of the trip in days, e.g., 3 days, 1 week.").NotBlank()),
	schema.Optional("travelStyle", schema.String("Preferred travel style, e.g., backpacking, luxury, family.").OrNull()),
	schema.Optional("locationPreferences", schema.String("Preferred locations or regions within Karnataka, e.g., Coorg, Mysore.").OrNull()),
)

var GenerateItineraryInputSchema = schema.Object("Destinations and interests for an itinerary",
	schema.Required("destinations", schema.String("A comma separated list of destinations in Karnataka.").NotBlank()),
	schema.Required("duration", schema.String("The duration of the trip in days.").NotBlank()),
	schema.Required("interests", schema.String("A comma separated list of interests, e.g. historical, cultural, nature.").NotBlank()),
)

var recommendedDestinationSchema = schema.Object("A recommended destination",
	schema.Required("name", schema.String("Name of the recommended destination.")),
	schema.Required("description", schema.String("Brief description of why this destination is recommended.")),
	schema.Optional("googleMapsUrl", mapsURL(`A Google Maps search URL for this destination (e.g., "https://www.google.com/maps/search/?api=1&query=Coorg%2C+Karnataka"). Ensure the query is URL encoded.`)),
	schema.Optional("weather", weather.ReadingSchema.Describe("Current weather for this destination. Use the getWeather tool.")),
)

var suggestedActivitySchema = schema.Object("A suggested activity",
	schema.Required("name", schema.String("Name of the suggested activity.")),
	schema.Required("description", schema.String("Details about the activity and where it can be done.")),
	schema.Optional("relatedDestination", schema.String("If specific to a destination, mention its name.")),
	schema.Optional("googleMapsUrl", mapsURL("A Google Maps search URL for the activity location, if applicable. Construct as https://www.google.com/maps/search/?api=1&query=URL_ENCODED_LOCATION_NAME.")),
)

var briefItinerarySchema = schema.Object("A brief itinerary outline",
	schema.Required("title", schema.String("Title for the brief itinerary (e.g., 'Weekend in Coorg', 'Historical Hampi Tour').")),
	schema.Required("summary", schema.String("A short summary of what this itinerary covers.")),
	schema.Optional("days", schema.Array("Optional day-by-day breakdown if simple enough.", schema.Object("A day",
		schema.Required("day", schema.Integer("Day number").AtLeast(1)),
		schema.Required("description", schema.String("Brief plan for the day.")),
	))),
)

var TravelRecommendationsOutputSchema = schema.Object("Personalized Karnataka travel recommendations",
	schema.Required("recommendedDestinations", schema.Array(
		"A list of recommended destinations in Karnataka based on user preferences. For each, provide a Google Maps link and use the getWeather tool for weather.",
		recommendedDestinationSchema)),
	schema.Required("suggestedActivities", schema.Array(
		"A list of activities suiting the user preferences, potentially linked to the destinations.",
		suggestedActivitySchema)),
	schema.Required("suggestedItineraries", schema.Array(
		"One or two potential brief itinerary outlines based on the preferences and recommended destinations.",
		briefItinerarySchema)),
	schema.Optional("estimatedCost", schema.String("Estimated cost of the trip based on the budget and duration.")),
	schema.Optional("additionalNotes", schema.String("Any additional notes or recommendations for the trip.")),
)

// Model output may carry an explicit null weather; the decoded value drops it.
var activitySchema = schema.Object("An activity or place to visit",
	schema.Required("name", schema.String("Name of the activity or place to visit.")),
	schema.Optional("description", schema.String("A brief description of the activity or place.")),
	schema.Optional("googleMapsUrl", mapsURL("A Google Maps search URL for this specific activity or location. Construct this as https://www.google.com/maps/search/?api=1&query=URL_ENCODED_LOCATION_NAME.")),
	schema.Optional("weather", weather.ReadingSchema.
		Describe("Weather forecast for this location, if applicable. Use the getWeather tool for primary locations.").
		OrNull()),
)

var dailyPlanSchema = schema.Object("One day of the itinerary",
	schema.Required("day", schema.Integer("The day number of the itinerary (e.g., 1, 2).").AtLeast(1)),
	schema.Required("title", schema.String(`A concise title for the day's plan (e.g., "Arrival in Mysore & Palace Visit").`)),
	schema.Optional("summary", schema.String("A brief summary of the day's activities.")),
	schema.Required("activities", schema.Array("A list of activities and places to visit for the day.", activitySchema)),
	schema.Optional("transportationNotes", schema.String("Notes on transportation for this day's plan, e.g., 'Hire a taxi for local sightseeing', 'Take an overnight bus to Hampi'.")),
)

var GenerateItineraryOutputSchema = schema.Object("A day-by-day Karnataka itinerary",
	schema.Required("overallTitle", schema.String("An overall title for the generated trip itinerary.")),
	schema.Required("dailyPlans", schema.Array("A list of daily plans making up the itinerary.", dailyPlanSchema)),
)

var LegacyTravelRecommendationsOutputSchema = schema.Object("Free-text Karnataka travel recommendations",
	schema.Required("destinations", schema.String("Recommended destinations in Karnataka based on the user preferences.")),
	schema.Required("activities", schema.String("Recommended activities at the destinations based on the user preferences.")),
	schema.Required("itineraries", schema.String("Potential itineraries including destinations and activities, tailored to the trip duration.")),
	schema.Optional("estimatedCost", schema.String("Estimated cost of the trip based on the budget and duration.")),
	schema.Optional("additionalNotes", schema.String("Any additional notes or recommendations for the trip.")),
)

// checkDaySequence requires at least one day, numbered from 1 and increasing by one.
func checkDaySequence(out types.GenerateItineraryOutput) *schema.Violation {
	if len(out.DailyPlans) == 0 {
		return &schema.Violation{Field: "dailyPlans", Constraint: "must contain at least one day"}
	}
	for i, plan := range out.DailyPlans {
		if plan.Day != i+1 {
			return &schema.Violation{
				Field:      fmt.Sprintf("dailyPlans[%d].day", i),
				Constraint: fmt.Sprintf("must equal %d (days start at 1 and increase by one)", i+1),
			}
		}
	}
	return nil
}
