package flows

import (
	"fmt"

	"github.com/FACorreiaa/karnataka-trip-planner/internal/types"
)

// Absent optional fields render as an empty string so the template keeps
// the same lines for every input.

func getPersonalizedRecommendationsPrompt(in types.TravelPreferencesInput) string {
	return fmt.Sprintf(`You are an expert travel guide for Karnataka, India. A user is planning a trip and has provided their preferences.
Provide personalized travel recommendations as a single JSON object in exactly the shape described below.

User Preferences:
Interests: %s
Budget: %s
Duration: %s
Travel Style: %s
Location Preferences: %s

Your response must be a JSON object with the following fields:
- "recommendedDestinations": An array of destination objects. For each destination:
  - "name": The name of the place.
  - "description": Why it's recommended.
  - "googleMapsUrl": A Google Maps search URL built as "%s" followed by the URL encoded place name and region (e.g., "%s").
  - "weather": Use the '%s' tool to provide current weather for this destination.
- "suggestedActivities": An array of activity objects. For each activity:
  - "name": Name of the activity.
  - "description": Details and where it can be done.
  - "relatedDestination": (Optional) Mention if tied to a specific recommended destination.
  - "googleMapsUrl": (Optional) A Google Maps search URL if the activity has a specific location, built the same way.
- "suggestedItineraries": An array of brief itinerary objects. For each itinerary:
    - "title": Catchy title.
    - "summary": Short summary.
    - "days": (Optional) A very brief day-by-day plan if it fits, as objects with "day" (a number starting at 1) and "description".
- "estimatedCost": (Optional) An estimated cost.
- "additionalNotes": (Optional) Any other useful tips.

Focus on providing valuable, actionable information. Ensure all Google Maps URLs are correctly formatted and query parameters are URL encoded.
Call the %s tool once for each primary recommended destination only, never for individual activities.
`,
		in.Interests, in.Budget, in.Duration, in.TravelStyle, in.LocationPreferences,
		types.GoogleMapsSearchBaseURL, types.GoogleMapsSearchURL("Coorg", "Karnataka"),
		weatherToolName, weatherToolName)
}

func getItineraryPrompt(in types.GenerateItineraryInput) string {
	return fmt.Sprintf(`You are an expert travel agent specializing in Karnataka tourism. You will generate a detailed, structured travel itinerary based on the destinations, duration, and interests provided.

Destinations: %s
Duration: %s
Interests: %s

Follow this structure precisely for your output. The output must be a single JSON object:
- "overallTitle": A catchy title for the entire trip.
- "dailyPlans": An array of objects, where each object represents a day, in order.
  - "day": The day number. The first day is 1 and each following day adds one, with no gaps or repeats.
  - "title": A short title for the day's plan.
  - "summary": A brief overview of what the day entails.
  - "activities": An array of activity objects for that day, in chronological order.
    - "name": Name of the specific activity or place.
    - "description": A short description of the activity/place.
    - "googleMapsUrl": A Google Maps search URL for this specific activity or location, built as "%s" followed by the URL encoded place name and region (e.g., "%s").
    - "weather": For the primary location of each day or a significant outdoor activity, use the '%s' tool to fetch and include the current weather. If weather is not applicable or not fetched, omit this field. Only call %s for distinct, major locations to avoid redundancy.
  - "transportationNotes": Suggestions on how to travel to the day's main location or between major activities for the day. For example: 'Recommend hiring a local auto-rickshaw for sightseeing within Hampi and a KSRTC bus for travel between Hampi and Bangalore.'

Consider travel times between locations, opening hours, and logical sequencing of activities. Provide practical and engaging suggestions.
For example, if a day is focused on Mysore, use %s for Mysore. If an activity is a specific trek, get weather for the trek's starting point if it's distinct.
Make the itinerary detailed and user-friendly.
`,
		in.Destinations, in.Duration, in.Interests,
		types.GoogleMapsSearchBaseURL, types.GoogleMapsSearchURL("Mysore Palace", "Karnataka"),
		weatherToolName, weatherToolName, weatherToolName)
}

func getTravelRecommendationPrompt(in types.TravelPreferencesInput) string {
	return fmt.Sprintf(`You are an expert travel guide for Karnataka, India. A user is planning a trip to Karnataka and has provided their preferences. Based on these preferences, provide personalized travel recommendations, including destinations, activities, and potential itineraries.

Interests: %s
Budget: %s
Duration: %s
Travel Style: %s
Location Preferences: %s

Provide destinations, activities and itineraries tailored to these preferences. Also, provide an estimated cost if possible, and any additional notes that might be helpful.
Answer with a JSON object with the string fields "destinations", "activities", "itineraries" and, optionally, "estimatedCost" and "additionalNotes".
`,
		in.Interests, in.Budget, in.Duration, in.TravelStyle, in.LocationPreferences)
}
