// Package kv defines the key-value store the wellness data layer sits on:
// persistent, string-keyed, string-valued, no transactions. Serialization of
// read-modify-write flows is the caller's responsibility.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("kv: key not found")

// Store is the persistence contract for the data layer.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the given keys. Missing keys are not an error.
	Remove(ctx context.Context, keys ...string) error

	// Keys lists every key currently present, in no particular order.
	Keys(ctx context.Context) ([]string, error)
}
