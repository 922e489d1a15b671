package domain

import (
	"context"
	"strings"
)

// Destination represents a watched city with a price threshold for deal
// alerts. RowID is the positional identity of the row in the backing sheet.
type Destination struct {
	RowID       int    `json:"id"`
	City        string `json:"city"`
	AirportCode string `json:"iataCode"`
	Threshold   int    `json:"lowestPrice"`
}

// NewDestination returns a validated Destination. RowID is assigned by the
// catalog accessor on add, matching the sheet's append-only row numbering.
func NewDestination(city string, threshold int, airportCode string) (*Destination, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, &ValidationError{Field: "city", Reason: "must not be empty"}
	}
	if threshold <= 0 {
		return nil, &ValidationError{Field: "threshold", Reason: "must be positive"}
	}
	return &Destination{
		City:        city,
		AirportCode: strings.ToUpper(strings.TrimSpace(airportCode)),
		Threshold:   threshold,
	}, nil
}

// CatalogStore defines the remote spreadsheet operations for destinations.
type CatalogStore interface {
	ListDestinations(ctx context.Context) ([]Destination, error)
	AppendDestination(ctx context.Context, d Destination) error
	UpdateDestination(ctx context.Context, d Destination) error
}

// CatalogAccessor owns the in-memory destination list for the duration of a
// run. Mutations update the local copy first and then push to the remote
// store; a failed push leaves the accessor dirty.
type CatalogAccessor interface {
	List() []Destination
	Add(ctx context.Context, city string, threshold int, airportCode string) (*Destination, error)
	SetAirportCode(ctx context.Context, city, code string) error
	SetThreshold(ctx context.Context, city string, price int) error
	// Dirty reports whether a local mutation could not be confirmed remotely.
	Dirty() bool
}
