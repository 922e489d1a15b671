package services

import (
	"context"
	"fmt"

	"flightdealclub/internal/domain"
)

type userRegistry struct {
	store domain.UserStore
	users []domain.User
}

// NewUserRegistry loads the subscribed users from the remote store and
// returns a registry that exclusively owns the in-memory copy for the run.
func NewUserRegistry(ctx context.Context, store domain.UserStore) (domain.UserRegistry, error) {
	users, err := store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load user registry: %w", err)
	}
	return &userRegistry{store: store, users: users}, nil
}

func (r *userRegistry) List() []domain.User {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out
}

// Add validates the profile before any network call, then appends the row to
// the remote store.
func (r *userRegistry) Add(ctx context.Context, first, last, email, homeAirport string, minNights, maxNights int) (*domain.User, error) {
	user, err := domain.NewUser(first, last, email, homeAirport, minNights, maxNights)
	if err != nil {
		return nil, err
	}
	user.RowID = len(r.users) + firstRowID
	r.users = append(r.users, *user)
	if err := r.store.AppendUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("append user %q: %w", user.Email, err)
	}
	return user, nil
}
