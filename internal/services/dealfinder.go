package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"flightdealclub/internal/domain"
)

const dayFormat = "2006-01-02"

// SearchOptions carries the run-wide search parameters shared by every
// (user, destination) query.
type SearchOptions struct {
	DayRange     int
	TripType     string
	Currency     string
	MaxStopovers int
}

// RunReport summarizes one deal-finding pass. Failures are isolated per
// destination or per user; the pass itself only aborts on a fatal error.
type RunReport struct {
	DealsFound        int
	NotificationsSent int
	SearchFailures    []SearchFailure
	DeliveryFailures  []DeliveryFailure
}

// SearchFailure records a (user, destination) search that failed for a reason
// other than an empty result.
type SearchFailure struct {
	UserEmail string
	City      string
	Err       error
}

// DeliveryFailure records a notification send that failed for one user.
type DeliveryFailure struct {
	UserEmail string
	Err       error
}

// Failed reports whether any isolated failure occurred during the pass.
func (r RunReport) Failed() bool {
	return len(r.SearchFailures) > 0 || len(r.DeliveryFailures) > 0
}

// DealFinder iterates every user over every catalog destination, matches
// itinerary prices against destination thresholds, and sends one aggregated
// message per user with at least one deal.
type DealFinder struct {
	catalog  domain.CatalogAccessor
	registry domain.UserRegistry
	searcher domain.FlightSearcher
	notifier domain.Notifier
	options  SearchOptions
	logger   *slog.Logger
}

// NewDealFinder creates a DealFinder over the loaded accessors.
func NewDealFinder(catalog domain.CatalogAccessor, registry domain.UserRegistry, searcher domain.FlightSearcher, notifier domain.Notifier, options SearchOptions, logger *slog.Logger) *DealFinder {
	return &DealFinder{
		catalog:  catalog,
		registry: registry,
		searcher: searcher,
		notifier: notifier,
		options:  options,
		logger:   logger,
	}
}

// Run executes the full matching pass, one user at a time, one destination at
// a time, entirely sequentially. An empty search result skips the destination;
// other search errors and delivery errors are recorded in the report and do
// not abort the batch.
func (f *DealFinder) Run(ctx context.Context) (RunReport, error) {
	var report RunReport
	f.logger.Info("searching for flights")
	for _, user := range f.registry.List() {
		deals := f.matchDestinations(ctx, user, &report)
		if len(deals) == 0 {
			continue
		}
		report.DealsFound += len(deals)
		body := formatMessage(deals)
		if err := f.notify(ctx, user, body, len(deals)); err != nil {
			f.logger.Error("notification failed", "user", user.Email, "error", err)
			report.DeliveryFailures = append(report.DeliveryFailures, DeliveryFailure{UserEmail: user.Email, Err: err})
			continue
		}
		report.NotificationsSent++
	}
	return report, nil
}

func (f *DealFinder) matchDestinations(ctx context.Context, user domain.User, report *RunReport) []domain.Deal {
	var deals []domain.Deal
	for _, dest := range f.catalog.List() {
		if dest.AirportCode == "" {
			// Still unresolved after backfill; already reported there.
			continue
		}
		itinerary, err := f.searcher.Search(ctx, domain.SearchRequest{
			FlyFrom:      user.HomeAirport,
			FlyTo:        dest.AirportCode,
			DayRange:     f.options.DayRange,
			MinNights:    user.MinNights,
			MaxNights:    user.MaxNights,
			TripType:     f.options.TripType,
			Currency:     f.options.Currency,
			MaxStopovers: f.options.MaxStopovers,
		})
		if errors.Is(err, domain.ErrNotFound) {
			f.logger.Info("no flights found", "city", dest.City, "user", user.Email)
			continue
		}
		if err != nil {
			f.logger.Error("search failed", "city", dest.City, "user", user.Email, "error", err)
			report.SearchFailures = append(report.SearchFailures, SearchFailure{UserEmail: user.Email, City: dest.City, Err: err})
			continue
		}
		f.logger.Info("cheapest flight", "city", dest.City, "price", itinerary.Price, "currency", f.options.Currency)
		if itinerary.Price <= float64(dest.Threshold) {
			f.logger.Info("deal found", "city", dest.City, "price", itinerary.Price, "threshold", dest.Threshold)
			deals = append(deals, domain.Deal{Destination: dest, Itinerary: *itinerary})
		}
	}
	return deals
}

func (f *DealFinder) notify(ctx context.Context, user domain.User, body string, dealCount int) error {
	if err := f.notifier.SendText(ctx, body); err != nil {
		return err
	}
	return f.notifier.SendEmail(ctx, body, dealCount, []string{user.Email})
}

// formatMessage renders the aggregated per-user message: one line per deal,
// plus a stop-over line when the itinerary is not direct.
func formatMessage(deals []domain.Deal) string {
	var b strings.Builder
	for _, deal := range deals {
		it := deal.Itinerary
		fmt.Fprintf(&b, "Low price alert! Only $%s to fly from %s-%s to %s-%s, from %s to %s\n",
			formatPrice(it.Price),
			it.DepartureCity, it.DepartureCode,
			it.ArrivalCity, it.ArrivalCode,
			it.OutboundDate.Format(dayFormat), it.InboundDate.Format(dayFormat))
		if it.StopOvers != 0 {
			fmt.Fprintf(&b, "Flight has %d stop over, via %s\n", it.StopOvers, it.ViaCity)
		}
	}
	return b.String()
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
