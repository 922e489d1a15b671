package services

import (
	"context"
	"testing"
	"time"

	"flightdealclub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider implements domain.FlightProvider for tests.
type fakeProvider struct {
	locations     []domain.Location
	locationsErr  error
	options       []domain.FlightOption
	flightsErr    error
	lastQuery     domain.FlightQuery
	locationCalls int
	flightCalls   int
}

func (f *fakeProvider) QueryLocations(ctx context.Context, term string) ([]domain.Location, error) {
	f.locationCalls++
	if f.locationsErr != nil {
		return nil, f.locationsErr
	}
	return f.locations, nil
}

func (f *fakeProvider) QueryFlights(ctx context.Context, q domain.FlightQuery) ([]domain.FlightOption, error) {
	f.flightCalls++
	f.lastQuery = q
	if f.flightsErr != nil {
		return nil, f.flightsErr
	}
	return f.options, nil
}

func directOption() domain.FlightOption {
	return domain.FlightOption{
		Price:          350,
		CityFrom:       "Detroit",
		FlyFrom:        "DTW",
		CityTo:         "Paris",
		FlyTo:          "CDG",
		LocalDeparture: "2026-09-10T08:15:00.000Z",
		Route: []domain.RouteLeg{
			{CityTo: "Paris", LocalDeparture: "2026-09-10T08:15:00.000Z"},
			{CityTo: "Detroit", LocalDeparture: "2026-09-20T17:40:00.000Z"},
		},
	}
}

func TestResolveLocationFirstMatch(t *testing.T) {
	provider := &fakeProvider{locations: []domain.Location{
		{Code: "CDG", Name: "Paris Charles de Gaulle"},
		{Code: "ORY", Name: "Paris Orly"},
	}}
	service := NewFlightSearchService(provider)

	code, err := service.ResolveLocation(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, "CDG", code)
}

func TestResolveLocationNoMatch(t *testing.T) {
	provider := &fakeProvider{}
	service := NewFlightSearchService(provider)

	_, err := service.ResolveLocation(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearchDirectItinerary(t *testing.T) {
	provider := &fakeProvider{options: []domain.FlightOption{directOption()}}
	service := NewFlightSearchService(provider)

	itinerary, err := service.Search(context.Background(), domain.SearchRequest{
		FlyFrom: "DTW", FlyTo: "CDG", DayRange: 180, MinNights: 7, MaxNights: 28,
		TripType: "round", Currency: "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(350), itinerary.Price)
	assert.Equal(t, "DTW", itinerary.DepartureCode)
	assert.Equal(t, "CDG", itinerary.ArrivalCode)
	// Exactly two legs: direct, no via city.
	assert.Equal(t, 0, itinerary.StopOvers)
	assert.Empty(t, itinerary.ViaCity)
	// Dates are truncated to calendar days.
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), itinerary.OutboundDate)
	assert.Equal(t, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), itinerary.InboundDate)
}

func TestSearchOneStopItinerary(t *testing.T) {
	option := directOption()
	option.Route = []domain.RouteLeg{
		{CityTo: "Amsterdam", LocalDeparture: "2026-09-10T08:15:00.000Z"},
		{CityTo: "Paris", LocalDeparture: "2026-09-10T14:05:00.000Z"},
		{CityTo: "Detroit", LocalDeparture: "2026-09-20T17:40:00.000Z"},
	}
	provider := &fakeProvider{options: []domain.FlightOption{option}}
	service := NewFlightSearchService(provider)

	itinerary, err := service.Search(context.Background(), domain.SearchRequest{FlyFrom: "DTW", FlyTo: "CDG", DayRange: 90})
	require.NoError(t, err)
	// Three legs: one stop-over, via the first leg's arrival city.
	assert.Equal(t, 1, itinerary.StopOvers)
	assert.Equal(t, "Amsterdam", itinerary.ViaCity)
}

func TestSearchNoResults(t *testing.T) {
	provider := &fakeProvider{}
	service := NewFlightSearchService(provider)

	_, err := service.Search(context.Background(), domain.SearchRequest{FlyFrom: "DTW", FlyTo: "CDG", DayRange: 90})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearchWindowStartsTomorrow(t *testing.T) {
	provider := &fakeProvider{options: []domain.FlightOption{directOption()}}
	service := NewFlightSearchService(provider)
	service.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }

	_, err := service.Search(context.Background(), domain.SearchRequest{FlyFrom: "DTW", FlyTo: "CDG", DayRange: 30})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), provider.lastQuery.DateFrom)
	assert.Equal(t, time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC), provider.lastQuery.DateTo)
}

func TestSearchClampsStopovers(t *testing.T) {
	provider := &fakeProvider{options: []domain.FlightOption{directOption()}}
	service := NewFlightSearchService(provider)

	_, err := service.Search(context.Background(), domain.SearchRequest{FlyFrom: "DTW", FlyTo: "CDG", DayRange: 30, MaxStopovers: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, provider.lastQuery.MaxStopovers)

	_, err = service.Search(context.Background(), domain.SearchRequest{FlyFrom: "DTW", FlyTo: "CDG", DayRange: 30, MaxStopovers: -1})
	require.NoError(t, err)
	assert.Equal(t, 0, provider.lastQuery.MaxStopovers)
}
