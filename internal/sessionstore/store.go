// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

// Package sessionstore provides key/value storage with per-key expiry for
// web sessions and password reset tokens.
package sessionstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when a key is missing or has expired.
var ErrNotFound = errors.New("key not found")

// Store is key/value storage where every entry carries a time-to-live.
// Expiry is passive: entries disappear once their TTL elapses.
type Store interface {
	// Set stores value under key. A non-positive ttl stores without expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Get returns ErrNotFound if key is missing or expired.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
