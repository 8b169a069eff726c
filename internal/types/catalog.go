package types

import "slices"

// BookingType separates accommodation links from transport links.
type BookingType string

const (
	BookingAccommodation BookingType = "accommodation"
	BookingTransport     BookingType = "transport"
)

type HowToReach struct {
	Air  string `json:"air,omitempty" yaml:"air"`
	Rail string `json:"rail,omitempty" yaml:"rail"`
	Road string `json:"road,omitempty" yaml:"road"`
}

// Destination is a curated place in the static catalog.
type Destination struct {
	ID               string     `json:"id" yaml:"id"`
	Name             string     `json:"name" yaml:"name"`
	ShortDescription string     `json:"shortDescription" yaml:"shortDescription"`
	LongDescription  string     `json:"longDescription" yaml:"longDescription"`
	ImageURL         string     `json:"imageUrl" yaml:"imageUrl"`
	Category         []string   `json:"category" yaml:"category"`
	Region           string     `json:"region" yaml:"region"`
	BestTimeToVisit  string     `json:"bestTimeToVisit" yaml:"bestTimeToVisit"`
	HowToReach       HowToReach `json:"howToReach" yaml:"howToReach"`
	Attractions      []string   `json:"attractions" yaml:"attractions"`
	Tips             []string   `json:"tips" yaml:"tips"`
	PopularFoods     []string   `json:"popularFoods,omitempty" yaml:"popularFoods"`
	MapEmbedURL      string     `json:"mapEmbedUrl,omitempty" yaml:"mapEmbedUrl"`
	EntryFee         string     `json:"entryFee,omitempty" yaml:"entryFee"`
	Timings          string     `json:"timings,omitempty" yaml:"timings"`
}

type BookingLink struct {
	ID          string      `json:"id" yaml:"id"`
	Type        BookingType `json:"type" yaml:"type"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description,omitempty" yaml:"description"`
	URL         string      `json:"url" yaml:"url"`
	ImageURL    string      `json:"imageUrl,omitempty" yaml:"imageUrl"`
	Provider    string      `json:"provider,omitempty" yaml:"provider"`
}

type CatalogDailyPlan struct {
	Day        int      `json:"day" yaml:"day"`
	Title      string   `json:"title" yaml:"title"`
	Activities []string `json:"activities" yaml:"activities"`
}

// SampleItinerary is a hand-written itinerary shipped with the catalog.
type SampleItinerary struct {
	ID          string             `json:"id" yaml:"id"`
	Title       string             `json:"title" yaml:"title"`
	Duration    string             `json:"duration" yaml:"duration"`
	Interests   []string           `json:"interests" yaml:"interests"`
	Description string             `json:"description" yaml:"description"`
	DailyPlan   []CatalogDailyPlan `json:"dailyPlan" yaml:"dailyPlan"`
	ImageURL    string             `json:"imageUrl,omitempty" yaml:"imageUrl"`
}

// DestinationFilter narrows ListDestinations; empty fields match everything.
type DestinationFilter struct {
	Category string `json:"category,omitempty"`
	Region   string `json:"region,omitempty"`
}

// Clone returns a copy that shares no slices with d.
func (d Destination) Clone() Destination {
	d.Category = slices.Clone(d.Category)
	d.Attractions = slices.Clone(d.Attractions)
	d.Tips = slices.Clone(d.Tips)
	d.PopularFoods = slices.Clone(d.PopularFoods)
	return d
}

func (p CatalogDailyPlan) Clone() CatalogDailyPlan {
	p.Activities = slices.Clone(p.Activities)
	return p
}

// Clone returns a copy that shares no slices with it.
func (it SampleItinerary) Clone() SampleItinerary {
	it.Interests = slices.Clone(it.Interests)
	if it.DailyPlan != nil {
		plans := make([]CatalogDailyPlan, len(it.DailyPlan))
		for i, p := range it.DailyPlan {
			plans[i] = p.Clone()
		}
		it.DailyPlan = plans
	}
	return it
}

// CloneAll deep-copies a slice of catalog entries.
func CloneAll[T interface{ Clone() T }](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = v.Clone()
	}
	return out
}
