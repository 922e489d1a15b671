package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound signals an expected empty result: a search with no matching
// itineraries, a location lookup with no match, or an unknown city in the
// catalog. It is non-fatal and callers are expected to skip and continue.
var ErrNotFound = errors.New("not found")

// RemoteStoreError reports a failed round-trip to the spreadsheet store.
// Accessor state may be dirty after one of these; see CatalogAccessor.Dirty.
type RemoteStoreError struct {
	Op       string // "list", "append", "update"
	Resource string // "prices", "users"
	Status   int    // HTTP status, 0 when the request never completed
	Err      error
}

func (e *RemoteStoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote store: %s %s: %v", e.Op, e.Resource, e.Err)
	}
	return fmt.Sprintf("remote store: %s %s: status %d", e.Op, e.Resource, e.Status)
}

func (e *RemoteStoreError) Unwrap() error { return e.Err }

// ValidationError reports malformed input rejected before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DeliveryError reports a failed notification send. It is isolated to one
// recipient; the batch continues with the remaining users.
type DeliveryError struct {
	Channel   string // "email", "sms"
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery via %s to %s failed: %v", e.Channel, e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
