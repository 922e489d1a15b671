package services

import (
	"context"
	"testing"

	"flightdealclub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserStore implements domain.UserStore for tests.
type fakeUserStore struct {
	users     []domain.User
	appends   []domain.User
	listErr   error
	appendErr error
}

func (f *fakeUserStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.users, nil
}

func (f *fakeUserStore) AppendUser(ctx context.Context, u domain.User) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appends = append(f.appends, u)
	return nil
}

func TestRegistryAdd(t *testing.T) {
	store := &fakeUserStore{users: []domain.User{
		{RowID: 2, FirstName: "Julia", Email: "julia@example.com", HomeAirport: "DTW", MinNights: 7, MaxNights: 28},
	}}
	registry, err := NewUserRegistry(context.Background(), store)
	require.NoError(t, err)

	user, err := registry.Add(context.Background(), "Sam", "Lee", "Sam.Lee@Example.com", "ord", 7, 14)
	require.NoError(t, err)
	assert.Equal(t, 3, user.RowID)
	assert.Equal(t, "sam.lee@example.com", user.Email)
	assert.Equal(t, "ORD", user.HomeAirport)
	require.Len(t, store.appends, 1)
	assert.Len(t, registry.List(), 2)
}

func TestRegistryAddValidatesBeforeNetwork(t *testing.T) {
	store := &fakeUserStore{}
	registry, err := NewUserRegistry(context.Background(), store)
	require.NoError(t, err)

	var vErr *domain.ValidationError

	// Minimum nights above maximum is rejected with no store call.
	_, err = registry.Add(context.Background(), "Sam", "Lee", "sam@example.com", "ORD", 14, 7)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "tripLength", vErr.Field)

	_, err = registry.Add(context.Background(), "Sam", "Lee", "not-an-email", "ORD", 7, 14)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)

	_, err = registry.Add(context.Background(), "Sam", "Lee", "sam@example.com", "ORD", -1, 14)
	require.ErrorAs(t, err, &vErr)

	assert.Empty(t, store.appends)
}

func TestRegistryAddStoreFailure(t *testing.T) {
	store := &fakeUserStore{appendErr: &domain.RemoteStoreError{Op: "append", Resource: "users", Status: 500}}
	registry, err := NewUserRegistry(context.Background(), store)
	require.NoError(t, err)

	_, err = registry.Add(context.Background(), "Sam", "Lee", "sam@example.com", "ORD", 7, 14)
	var storeErr *domain.RemoteStoreError
	assert.ErrorAs(t, err, &storeErr)
}
