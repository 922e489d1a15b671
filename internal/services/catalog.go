package services

import (
	"context"
	"fmt"

	"flightdealclub/internal/domain"
)

// The sheet has a header row and rows are 1-indexed, so the first data row
// carries id 2 and an appended row gets len+2.
const firstRowID = 2

type catalogAccessor struct {
	store        domain.CatalogStore
	destinations []domain.Destination
	dirty        bool
}

// NewCatalogAccessor loads the destination catalog from the remote store and
// returns an accessor that exclusively owns the in-memory copy for the run.
func NewCatalogAccessor(ctx context.Context, store domain.CatalogStore) (domain.CatalogAccessor, error) {
	destinations, err := store.ListDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load destination catalog: %w", err)
	}
	return &catalogAccessor{store: store, destinations: destinations}, nil
}

func (a *catalogAccessor) List() []domain.Destination {
	out := make([]domain.Destination, len(a.destinations))
	copy(out, a.destinations)
	return out
}

func (a *catalogAccessor) Add(ctx context.Context, city string, threshold int, airportCode string) (*domain.Destination, error) {
	dest, err := domain.NewDestination(city, threshold, airportCode)
	if err != nil {
		return nil, err
	}
	dest.RowID = len(a.destinations) + firstRowID
	a.destinations = append(a.destinations, *dest)
	if err := a.store.AppendDestination(ctx, *dest); err != nil {
		a.dirty = true
		return nil, fmt.Errorf("append destination %q: %w", dest.City, err)
	}
	return dest, nil
}

func (a *catalogAccessor) SetAirportCode(ctx context.Context, city, code string) error {
	return a.update(ctx, city, func(d *domain.Destination) { d.AirportCode = code })
}

func (a *catalogAccessor) SetThreshold(ctx context.Context, city string, price int) error {
	if price <= 0 {
		return &domain.ValidationError{Field: "threshold", Reason: "must be positive"}
	}
	return a.update(ctx, city, func(d *domain.Destination) { d.Threshold = price })
}

func (a *catalogAccessor) Dirty() bool {
	return a.dirty
}

// update mutates the local row first, then pushes it to the remote store.
// A failed push leaves the cache ahead of the sheet; the accessor stays
// dirty and the error is fatal for the operation.
func (a *catalogAccessor) update(ctx context.Context, city string, mutate func(*domain.Destination)) error {
	for i := range a.destinations {
		if a.destinations[i].City != city {
			continue
		}
		mutate(&a.destinations[i])
		if err := a.store.UpdateDestination(ctx, a.destinations[i]); err != nil {
			a.dirty = true
			return fmt.Errorf("update destination %q: %w", city, err)
		}
		return nil
	}
	return fmt.Errorf("destination %q: %w", city, domain.ErrNotFound)
}
