package domain

import (
	"context"
	"regexp"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// User represents a subscribed club member. Identity is the email address.
type User struct {
	RowID       int    `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	HomeAirport string `json:"homeAirport"`
	MinNights   int    `json:"minLength"`
	MaxNights   int    `json:"maxLength"`
}

// NewUser returns a validated User. Trip lengths are in nights; a minimum
// greater than the maximum is rejected before any network call is made.
func NewUser(first, last, email, homeAirport string, minNights, maxNights int) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, &ValidationError{Field: "email", Reason: "malformed address"}
	}
	homeAirport = strings.ToUpper(strings.TrimSpace(homeAirport))
	if homeAirport == "" {
		return nil, &ValidationError{Field: "homeAirport", Reason: "must not be empty"}
	}
	if minNights < 0 || maxNights < 0 {
		return nil, &ValidationError{Field: "tripLength", Reason: "nights must be non-negative"}
	}
	if minNights > maxNights {
		return nil, &ValidationError{Field: "tripLength", Reason: "minimum nights exceeds maximum"}
	}
	return &User{
		FirstName:   strings.TrimSpace(first),
		LastName:    strings.TrimSpace(last),
		Email:       email,
		HomeAirport: homeAirport,
		MinNights:   minNights,
		MaxNights:   maxNights,
	}, nil
}

// UserStore defines the remote spreadsheet operations for users.
type UserStore interface {
	ListUsers(ctx context.Context) ([]User, error)
	AppendUser(ctx context.Context, u User) error
}

// UserRegistry owns the in-memory user list for the duration of a run.
type UserRegistry interface {
	List() []User
	Add(ctx context.Context, first, last, email, homeAirport string, minNights, maxNights int) (*User, error)
}
