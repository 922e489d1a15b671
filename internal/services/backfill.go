package services

import (
	"context"
	"fmt"
	"log/slog"

	"flightdealclub/internal/domain"
)

// BackfillFailure records one city whose airport code could not be resolved.
type BackfillFailure struct {
	City string
	Err  error
}

// BackfillResult summarizes a backfill pass over the catalog.
type BackfillResult struct {
	Resolved int
	Failures []BackfillFailure
}

// BackfillService fills in missing airport codes for catalog destinations.
type BackfillService struct {
	catalog  domain.CatalogAccessor
	resolver domain.LocationResolver
	logger   *slog.Logger
}

// NewBackfillService creates a BackfillService over the given catalog and
// resolver.
func NewBackfillService(catalog domain.CatalogAccessor, resolver domain.LocationResolver, logger *slog.Logger) *BackfillService {
	return &BackfillService{catalog: catalog, resolver: resolver, logger: logger}
}

// Run resolves and persists an airport code for every destination whose code
// is empty. Cities are attempted independently: a failed resolution is
// recorded and the pass continues. A failed persist to the remote store is
// fatal. Running against a fully coded catalog performs no lookups and no
// mutations.
func (s *BackfillService) Run(ctx context.Context) (BackfillResult, error) {
	var result BackfillResult
	for _, dest := range s.catalog.List() {
		if dest.AirportCode != "" {
			continue
		}
		code, err := s.resolver.ResolveLocation(ctx, dest.City)
		if err != nil {
			s.logger.Warn("airport code resolution failed", "city", dest.City, "error", err)
			result.Failures = append(result.Failures, BackfillFailure{City: dest.City, Err: err})
			continue
		}
		if err := s.catalog.SetAirportCode(ctx, dest.City, code); err != nil {
			return result, fmt.Errorf("persist airport code for %q: %w", dest.City, err)
		}
		s.logger.Info("airport code backfilled", "city", dest.City, "code", code)
		result.Resolved++
	}
	return result, nil
}
