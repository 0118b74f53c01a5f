// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package websession

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/contentone/contentone/internal/auth"
)

const userIDKey = "userId"

// RequestSession is the session of one HTTP request. It implements
// auth.Session; changes reach the store and the client on Commit.
type RequestSession struct {
	store     *Store
	w         http.ResponseWriter
	r         *http.Request
	session   *sessions.Session
	dirty     bool
	destroyed bool
}

var _ auth.Session = (*RequestSession)(nil)

// Bind loads the session named name for r.
func Bind(w http.ResponseWriter, r *http.Request, store *Store, name string) (*RequestSession, error) {
	session, err := store.Get(r, name)
	if err != nil {
		return nil, err
	}
	return &RequestSession{store: store, w: w, r: r, session: session}, nil
}

// UserID returns the authenticated user, if any.
func (s *RequestSession) UserID() (int64, bool) {
	if s.destroyed {
		return 0, false
	}
	id, ok := s.session.Values[userIDKey].(int64)
	return id, ok
}

// SetUserID records id on the session.
func (s *RequestSession) SetUserID(id int64) {
	s.session.Values[userIDKey] = id
	s.dirty = true
}

// ClearCookie instructs the client to drop the session cookie.
func (s *RequestSession) ClearCookie() {
	http.SetCookie(s.w, s.store.expiredCookie(s.session.Name()))
}

// Destroy deletes the server-side record.
func (s *RequestSession) Destroy(ctx context.Context) error {
	if !s.session.IsNew && s.session.ID != "" {
		if err := s.store.Delete(ctx, s.session.ID); err != nil {
			return err
		}
	}
	s.destroyed = true
	clear(s.session.Values)
	return nil
}

// Commit saves the session if it changed. It must run before the response
// body is written so the cookie header is sent.
func (s *RequestSession) Commit() error {
	if !s.dirty || s.destroyed {
		return nil
	}
	if err := s.store.Save(s.r, s.w, s.session); err != nil {
		return err
	}
	s.dirty = false
	return nil
}
