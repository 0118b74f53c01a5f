// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

// Package websession binds HTTP requests to server-side sessions. The
// cookie carries only a signed session id; values live in a
// sessionstore.Store under "sess:<id>".
package websession

import (
	"bytes"
	"context"
	"encoding/base32"
	"encoding/gob"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/samber/oops"

	"github.com/contentone/contentone/internal/sessionstore"
)

// KeyPrefix namespaces session records in the KV store.
const KeyPrefix = "sess:"

// DefaultMaxAge is the cookie and record lifetime when none is configured.
const DefaultMaxAge = 10 * 365 * 24 * time.Hour

// CookieOptions configures the session cookie.
type CookieOptions struct {
	Domain   string
	MaxAge   time.Duration
	Secure   bool
	SameSite http.SameSite
}

// Store implements sessions.Store over a sessionstore.Store.
type Store struct {
	kv      sessionstore.Store
	codecs  []securecookie.Codec
	options sessions.Options
	logger  *slog.Logger
}

var _ sessions.Store = (*Store)(nil)

// NewStore creates a Store. keyPairs are securecookie hash/block key pairs;
// the first pair signs new cookies and later pairs still verify, so keys
// can be rotated.
func NewStore(kv sessionstore.Store, opts CookieOptions, logger *slog.Logger, keyPairs ...[]byte) (*Store, error) {
	if kv == nil {
		return nil, oops.Errorf("session store is required")
	}
	if len(keyPairs) == 0 || len(keyPairs[0]) == 0 {
		return nil, oops.Code("SESSION_KEY_MISSING").Errorf("at least one session hash key is required")
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultMaxAge
	}
	if opts.SameSite == 0 {
		opts.SameSite = http.SameSiteLaxMode
	}
	if logger == nil {
		logger = slog.Default()
	}

	maxAge := int(opts.MaxAge / time.Second)
	codecs := securecookie.CodecsFromPairs(keyPairs...)
	for _, c := range codecs {
		if sc, ok := c.(*securecookie.SecureCookie); ok {
			sc.MaxAge(maxAge)
		}
	}

	return &Store{
		kv:     kv,
		codecs: codecs,
		options: sessions.Options{
			Path:     "/",
			Domain:   opts.Domain,
			MaxAge:   maxAge,
			Secure:   opts.Secure,
			HttpOnly: true,
			SameSite: opts.SameSite,
		},
		logger: logger,
	}, nil
}

// Get returns the session cached for this request, loading it on first use.
func (s *Store) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New loads the session named by the request cookie. A missing, tampered
// or expired cookie yields a fresh session without error; only store
// failures are reported.
func (s *Store) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := s.options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}

	var id string
	if err := securecookie.DecodeMulti(name, c.Value, &id, s.codecs...); err != nil {
		s.logger.DebugContext(r.Context(), "ignoring invalid session cookie", "error", err)
		return session, nil
	}

	found, err := s.load(r.Context(), id, session)
	if err != nil {
		return session, err
	}
	if found {
		session.ID = id
		session.IsNew = false
	}
	return session, nil
}

// Save persists the session and writes its cookie. A negative MaxAge
// deletes the record and expires the cookie.
func (s *Store) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			if err := s.Delete(r.Context(), session.ID); err != nil {
				return err
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = newSessionID()
	}
	if err := s.save(r.Context(), session); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return oops.Code("SESSION_COOKIE_ENCODE_FAILED").Wrap(err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

// Delete removes a session record. Missing records are not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.kv.Delete(ctx, KeyPrefix+id); err != nil {
		return oops.Code("SESSION_DELETE_FAILED").Wrap(err)
	}
	return nil
}

// expiredCookie returns a cookie that makes the browser drop name.
func (s *Store) expiredCookie(name string) *http.Cookie {
	opts := s.options
	opts.MaxAge = -1
	return sessions.NewCookie(name, "", &opts)
}

func (s *Store) load(ctx context.Context, id string, session *sessions.Session) (bool, error) {
	raw, err := s.kv.Get(ctx, KeyPrefix+id)
	if errors.Is(err, sessionstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, oops.Code("SESSION_LOAD_FAILED").Wrap(err)
	}

	if err := gob.NewDecoder(strings.NewReader(raw)).Decode(&session.Values); err != nil {
		// Unreadable records are treated as absent.
		s.logger.WarnContext(ctx, "discarding undecodable session", "error", err)
		return false, nil
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, session *sessions.Session) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(session.Values); err != nil {
		return oops.Code("SESSION_ENCODE_FAILED").Wrap(err)
	}
	ttl := time.Duration(session.Options.MaxAge) * time.Second
	if err := s.kv.Set(ctx, KeyPrefix+session.ID, buf.String(), ttl); err != nil {
		return oops.Code("SESSION_SAVE_FAILED").Wrap(err)
	}
	return nil
}

func newSessionID() string {
	return strings.TrimRight(
		base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
}

// ParseSameSite maps lax, strict and none to their http.SameSite values.
func ParseSameSite(v string) (http.SameSite, error) {
	switch strings.ToLower(v) {
	case "", "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	}
	return 0, oops.Code("INVALID_SAME_SITE").Errorf("unknown SameSite mode %q", v)
}
