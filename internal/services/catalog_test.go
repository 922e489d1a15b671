package services

import (
	"context"
	"testing"

	"flightdealclub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalogStore implements domain.CatalogStore for tests.
type fakeCatalogStore struct {
	destinations []domain.Destination
	appends      []domain.Destination
	updates      []domain.Destination
	listErr      error
	appendErr    error
	updateErr    error
}

func (f *fakeCatalogStore) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.destinations, nil
}

func (f *fakeCatalogStore) AppendDestination(ctx context.Context, d domain.Destination) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appends = append(f.appends, d)
	return nil
}

func (f *fakeCatalogStore) UpdateDestination(ctx context.Context, d domain.Destination) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, d)
	return nil
}

func TestNewCatalogAccessorLoadFailure(t *testing.T) {
	store := &fakeCatalogStore{listErr: &domain.RemoteStoreError{Op: "list", Resource: "prices", Status: 503}}
	_, err := NewCatalogAccessor(context.Background(), store)
	require.Error(t, err)
	var storeErr *domain.RemoteStoreError
	assert.ErrorAs(t, err, &storeErr)
}

func TestCatalogAddAssignsRowID(t *testing.T) {
	store := &fakeCatalogStore{destinations: []domain.Destination{
		{RowID: 2, City: "Paris", AirportCode: "CDG", Threshold: 400},
	}}
	catalog, err := NewCatalogAccessor(context.Background(), store)
	require.NoError(t, err)

	dest, err := catalog.Add(context.Background(), "Tokyo", 800, "")
	require.NoError(t, err)
	// Header row plus 1-indexing: second data row lands on sheet row 3.
	assert.Equal(t, 3, dest.RowID)
	require.Len(t, store.appends, 1)
	assert.Equal(t, "Tokyo", store.appends[0].City)
	assert.Len(t, catalog.List(), 2)
	assert.False(t, catalog.Dirty())
}

func TestCatalogAddRejectsBadInput(t *testing.T) {
	store := &fakeCatalogStore{}
	catalog, err := NewCatalogAccessor(context.Background(), store)
	require.NoError(t, err)

	_, err = catalog.Add(context.Background(), "", 400, "")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = catalog.Add(context.Background(), "Paris", 0, "")
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, store.appends, "no network call for invalid input")
}

func TestCatalogSetAirportCode(t *testing.T) {
	store := &fakeCatalogStore{destinations: []domain.Destination{
		{RowID: 2, City: "Paris", AirportCode: "", Threshold: 400},
	}}
	catalog, err := NewCatalogAccessor(context.Background(), store)
	require.NoError(t, err)

	require.NoError(t, catalog.SetAirportCode(context.Background(), "Paris", "CDG"))
	require.Len(t, store.updates, 1)
	assert.Equal(t, "CDG", store.updates[0].AirportCode)
	assert.Equal(t, 2, store.updates[0].RowID)
	assert.Equal(t, "CDG", catalog.List()[0].AirportCode)
}

func TestCatalogSetAirportCodeUnknownCity(t *testing.T) {
	store := &fakeCatalogStore{}
	catalog, err := NewCatalogAccessor(context.Background(), store)
	require.NoError(t, err)

	err = catalog.SetAirportCode(context.Background(), "Atlantis", "ATL")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.updates)
}

func TestCatalogPushFailureMarksDirty(t *testing.T) {
	store := &fakeCatalogStore{
		destinations: []domain.Destination{{RowID: 2, City: "Paris", Threshold: 400}},
		updateErr:    &domain.RemoteStoreError{Op: "update", Resource: "prices", Status: 500},
	}
	catalog, err := NewCatalogAccessor(context.Background(), store)
	require.NoError(t, err)

	err = catalog.SetThreshold(context.Background(), "Paris", 350)
	require.Error(t, err)
	var storeErr *domain.RemoteStoreError
	assert.ErrorAs(t, err, &storeErr)
	assert.True(t, catalog.Dirty())
	// The local cache kept the mutation; the caller must not rely on it.
	assert.Equal(t, 350, catalog.List()[0].Threshold)
}

func TestCatalogSetThresholdRejectsNonPositive(t *testing.T) {
	store := &fakeCatalogStore{destinations: []domain.Destination{{RowID: 2, City: "Paris", Threshold: 400}}}
	catalog, err := NewCatalogAccessor(context.Background(), store)
	require.NoError(t, err)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, catalog.SetThreshold(context.Background(), "Paris", 0), &vErr)
	assert.Empty(t, store.updates)
}
