package domain

import (
	"context"
	"time"
)

// Location is one entry from the provider's location lookup.
type Location struct {
	Code string
	Name string
}

// FlightQuery is the raw query sent to the provider's search endpoint.
type FlightQuery struct {
	FlyFrom      string
	FlyTo        string
	DateFrom     time.Time
	DateTo       time.Time
	NightsFrom   int
	NightsTo     int
	FlightType   string
	Currency     string
	MaxStopovers int
}

// RouteLeg is one leg of a provider itinerary's route.
type RouteLeg struct {
	CityTo         string
	LocalDeparture string
}

// FlightOption is one provider search result before normalization. The
// provider returns options cheapest-first; LocalDeparture values are local
// timestamps whose leading ten characters are the calendar day.
type FlightOption struct {
	Price          float64
	CityFrom       string
	FlyFrom        string
	CityTo         string
	FlyTo          string
	LocalDeparture string
	Route          []RouteLeg
}

// FlightProvider fetches raw data from the flight search API (or a test
// double). Normalization into Itinerary records happens in the search service.
type FlightProvider interface {
	QueryLocations(ctx context.Context, term string) ([]Location, error)
	QueryFlights(ctx context.Context, q FlightQuery) ([]FlightOption, error)
}
