// Package storage defines the key-value port the memobook core persists
// through, plus its SQLite and in-memory implementations. The port is
// injected everywhere a view layer would have reached for process-global
// preferences, so tests run against the in-memory fake.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound reports a key with no stored value. Callers match it with
// errors.Is; absence of data is usually not an error at higher layers.
var ErrNotFound = errors.New("not found")

// Store is a byte-valued key-value store.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the given keys atomically where the backend allows it.
	// Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
