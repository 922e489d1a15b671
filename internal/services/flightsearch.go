package services

import (
	"context"
	"fmt"
	"time"

	"flightdealclub/internal/domain"
)

// A route with more than two legs carries a stop-over; anything with two or
// fewer is direct. Itineraries with more than one stop-over are out of model,
// so requested max stopovers is clamped to [0,1].
const maxSupportedStopovers = 1

type FlightSearchService struct {
	provider domain.FlightProvider
	now      func() time.Time
}

// NewFlightSearchService returns a service implementing both FlightSearcher
// and LocationResolver over the given provider.
func NewFlightSearchService(provider domain.FlightProvider) *FlightSearchService {
	return &FlightSearchService{provider: provider, now: time.Now}
}

var (
	_ domain.FlightSearcher   = (*FlightSearchService)(nil)
	_ domain.LocationResolver = (*FlightSearchService)(nil)
)

// ResolveLocation resolves a free-text city name to an airport code by taking
// the first match from the provider's location lookup. Returns ErrNotFound
// when the lookup has no matches.
func (s *FlightSearchService) ResolveLocation(ctx context.Context, city string) (string, error) {
	locations, err := s.provider.QueryLocations(ctx, city)
	if err != nil {
		return "", fmt.Errorf("resolve location %q: %w", city, err)
	}
	if len(locations) == 0 {
		return "", fmt.Errorf("location %q: %w", city, domain.ErrNotFound)
	}
	return locations[0].Code, nil
}

// Search finds the cheapest itinerary matching the request. The date window
// starts tomorrow and spans req.DayRange days. The provider returns options
// cheapest-first, so only the first result is consumed; an empty result set
// maps to ErrNotFound.
func (s *FlightSearchService) Search(ctx context.Context, req domain.SearchRequest) (*domain.Itinerary, error) {
	stopovers := req.MaxStopovers
	if stopovers < 0 {
		stopovers = 0
	}
	if stopovers > maxSupportedStopovers {
		stopovers = maxSupportedStopovers
	}

	tomorrow := s.now().AddDate(0, 0, 1)
	query := domain.FlightQuery{
		FlyFrom:      req.FlyFrom,
		FlyTo:        req.FlyTo,
		DateFrom:     tomorrow,
		DateTo:       tomorrow.AddDate(0, 0, req.DayRange),
		NightsFrom:   req.MinNights,
		NightsTo:     req.MaxNights,
		FlightType:   req.TripType,
		Currency:     req.Currency,
		MaxStopovers: stopovers,
	}
	options, err := s.provider.QueryFlights(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %s to %s: %w", req.FlyFrom, req.FlyTo, err)
	}
	if len(options) == 0 {
		return nil, domain.ErrNotFound
	}
	return normalize(options[0])
}

// normalize converts a raw provider option into an Itinerary. More than two
// route legs means one stop-over with the via city taken from the first leg's
// arrival; dates are truncated to calendar days.
func normalize(option domain.FlightOption) (*domain.Itinerary, error) {
	outbound, err := parseDay(option.LocalDeparture)
	if err != nil {
		return nil, fmt.Errorf("parse outbound date: %w", err)
	}
	if len(option.Route) < 2 {
		return nil, fmt.Errorf("itinerary route has %d legs, want at least 2", len(option.Route))
	}
	inbound, err := parseDay(option.Route[len(option.Route)-1].LocalDeparture)
	if err != nil {
		return nil, fmt.Errorf("parse inbound date: %w", err)
	}

	itinerary := &domain.Itinerary{
		Price:         option.Price,
		DepartureCity: option.CityFrom,
		DepartureCode: option.FlyFrom,
		ArrivalCity:   option.CityTo,
		ArrivalCode:   option.FlyTo,
		OutboundDate:  outbound,
		InboundDate:   inbound,
	}
	if len(option.Route) > 2 {
		itinerary.StopOvers = 1
		itinerary.ViaCity = option.Route[0].CityTo
	}
	return itinerary, nil
}

// parseDay truncates a provider timestamp to calendar-day precision. The
// provider sends local timestamps whose leading ten characters are the date.
func parseDay(s string) (time.Time, error) {
	if len(s) < 10 {
		return time.Time{}, fmt.Errorf("timestamp %q too short", s)
	}
	return time.Parse("2006-01-02", s[:10])
}
