// Package store provides the durable key/value persistence that the entry
// store snapshots its state into.
package store

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned by Read when no value is stored under a key.
var ErrNotFound = errors.New("store: key not found")

// Persistence is a durable key/value provider.
type Persistence interface {
	// Read returns the value stored under key or ErrNotFound.
	Read(key string) ([]byte, error)
	// Write replaces the value stored under key.
	Write(key string, val []byte) error
	// Erase removes key. Erasing a missing key is not an error.
	Erase(key string) error
	// Keys lists stored keys in sorted order.
	Keys(ctx context.Context) ([]string, error)
	// Describe names the backend for diagnostics.
	Describe() string
	Close() error
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("store: key required")
	}
	return nil
}
