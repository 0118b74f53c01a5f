// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package auth

import (
	"context"
	"time"
)

// Session is the per-request session state. The transport layer owns it:
// it mints the session id, persists changes and writes the cookie.
type Session interface {
	// UserID returns the authenticated user bound to the session.
	UserID() (int64, bool)

	// SetUserID binds a user to the session.
	SetUserID(id int64)

	// ClearCookie instructs the client to drop the session cookie.
	ClearCookie()

	// Destroy removes the server-side session record.
	Destroy(ctx context.Context) error
}

// TokenStore is key/value storage with per-key expiry.
type TokenStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Get returns sessionstore.ErrNotFound when the key is missing or expired.
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Mailer delivers an HTML message.
type Mailer interface {
	Send(ctx context.Context, to, htmlBody string) error
}

// RequireUser returns the session's user id or ErrUnauthenticated.
func RequireUser(sess Session) (int64, error) {
	if sess == nil {
		return 0, ErrUnauthenticated
	}
	id, ok := sess.UserID()
	if !ok {
		return 0, ErrUnauthenticated
	}
	return id, nil
}
