package domain

import "context"

// SearchRequest describes one cheapest-itinerary search. The date window
// starts tomorrow and spans DayRange days; MaxStopovers is clamped to 0 or 1.
type SearchRequest struct {
	FlyFrom      string
	FlyTo        string
	DayRange     int
	MinNights    int
	MaxNights    int
	TripType     string // "round" or "oneway"
	Currency     string
	MaxStopovers int
}

// FlightSearcher finds the cheapest itinerary matching a request.
// Returns ErrNotFound when the provider has no matching flights; this is an
// expected outcome, not a failure.
type FlightSearcher interface {
	Search(ctx context.Context, req SearchRequest) (*Itinerary, error)
}

// LocationResolver resolves a free-text city name to an airport code.
// Returns ErrNotFound when the lookup has no match.
type LocationResolver interface {
	ResolveLocation(ctx context.Context, city string) (string, error)
}
