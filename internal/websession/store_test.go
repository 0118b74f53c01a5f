// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package websession_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentone/contentone/internal/sessionstore"
	"github.com/contentone/contentone/internal/websession"
	"github.com/contentone/contentone/pkg/errutil"
)

const cookieName = "qid"

var testKey = []byte("0123456789abcdef0123456789abcdef")

func newStore(t *testing.T, kv sessionstore.Store) *websession.Store {
	t.Helper()
	store, err := websession.NewStore(kv, websession.CookieOptions{Domain: "example.com"}, nil, testKey)
	require.NoError(t, err)
	return store
}

// login binds a fresh request, sets the user and returns the issued cookie.
func login(t *testing.T, store *websession.Store, userID int64) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/graphql", nil)

	sess, err := websession.Bind(w, r, store, cookieName)
	require.NoError(t, err)
	sess.SetUserID(userID)
	require.NoError(t, sess.Commit())

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func bindWith(t *testing.T, store *websession.Store, c *http.Cookie) (*websession.RequestSession, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	if c != nil {
		r.AddCookie(c)
	}
	sess, err := websession.Bind(w, r, store, cookieName)
	require.NoError(t, err)
	return sess, w
}

func TestNewStore(t *testing.T) {
	_, err := websession.NewStore(nil, websession.CookieOptions{}, nil, testKey)
	assert.Error(t, err)

	_, err = websession.NewStore(sessionstore.NewMemory(), websession.CookieOptions{}, nil)
	errutil.AssertErrorCode(t, err, "SESSION_KEY_MISSING")
}

func TestCookieAttributes(t *testing.T) {
	kv := sessionstore.NewMemory()
	c := login(t, newStore(t, kv), 7)

	assert.Equal(t, "qid", c.Name)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, int(websession.DefaultMaxAge/time.Second), c.MaxAge)

	keys := kv.Keys(websession.KeyPrefix)
	require.Len(t, keys, 1)
	assert.NotContains(t, c.Value, strings.TrimPrefix(keys[0], websession.KeyPrefix),
		"cookie carries a signed value, not the raw id")

	ttl, ok := kv.TTL(keys[0])
	require.True(t, ok)
	assert.InDelta(t, websession.DefaultMaxAge.Seconds(), ttl.Seconds(), 5)
}

func TestSessionRoundTrip(t *testing.T) {
	store := newStore(t, sessionstore.NewMemory())
	c := login(t, store, 42)

	sess, _ := bindWith(t, store, c)
	id, ok := sess.UserID()
	require.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestUnmodifiedSessionIsNotSaved(t *testing.T) {
	kv := sessionstore.NewMemory()
	store := newStore(t, kv)

	sess, w := bindWith(t, store, nil)
	_, ok := sess.UserID()
	assert.False(t, ok)
	require.NoError(t, sess.Commit())

	assert.Empty(t, w.Result().Cookies())
	assert.Empty(t, kv.Keys(websession.KeyPrefix))
}

func TestInvalidCookieYieldsFreshSession(t *testing.T) {
	store := newStore(t, sessionstore.NewMemory())

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"garbage", &http.Cookie{Name: cookieName, Value: "not-a-signed-value"}},
		{"signed by another key", func() *http.Cookie {
			other, err := websession.NewStore(sessionstore.NewMemory(), websession.CookieOptions{}, nil,
				[]byte("fedcba9876543210fedcba9876543210"))
			require.NoError(t, err)
			return login(t, other, 1)
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, _ := bindWith(t, store, tt.cookie)
			_, ok := sess.UserID()
			assert.False(t, ok)
		})
	}
}

func TestExpiredRecordYieldsFreshSession(t *testing.T) {
	now := time.Now()
	kv := sessionstore.NewMemoryWithClock(func() time.Time { return now })
	store, err := websession.NewStore(kv, websession.CookieOptions{MaxAge: time.Hour}, nil, testKey)
	require.NoError(t, err)

	c := login(t, store, 5)
	now = now.Add(2 * time.Hour)

	sess, _ := bindWith(t, store, c)
	_, ok := sess.UserID()
	assert.False(t, ok)
}

func TestDestroyAndClearCookie(t *testing.T) {
	kv := sessionstore.NewMemory()
	store := newStore(t, kv)
	c := login(t, store, 9)

	sess, w := bindWith(t, store, c)
	sess.ClearCookie()
	require.NoError(t, sess.Destroy(context.Background()))
	require.NoError(t, sess.Commit())

	_, ok := sess.UserID()
	assert.False(t, ok)
	assert.Empty(t, kv.Keys(websession.KeyPrefix))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)

	again, _ := bindWith(t, store, c)
	_, ok = again.UserID()
	assert.False(t, ok, "old cookie no longer authenticates")
}

type failingKV struct {
	sessionstore.Store
	err error
}

func (f failingKV) Get(context.Context, string) (string, error) { return "", f.err }
func (f failingKV) Delete(context.Context, string) error        { return f.err }

func TestStoreFailures(t *testing.T) {
	good := newStore(t, sessionstore.NewMemory())
	c := login(t, good, 3)

	kv := failingKV{Store: sessionstore.NewMemory(), err: errors.New("redis down")}
	store := newStore(t, kv)

	t.Run("load", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/graphql", nil)
		r.AddCookie(c)
		_, err := websession.Bind(httptest.NewRecorder(), r, store, cookieName)
		errutil.AssertErrorCode(t, err, "SESSION_LOAD_FAILED")
	})

	t.Run("delete", func(t *testing.T) {
		err := store.Delete(context.Background(), "abc")
		errutil.AssertErrorCode(t, err, "SESSION_DELETE_FAILED")
	})
}

func TestParseSameSite(t *testing.T) {
	tests := []struct {
		in      string
		want    http.SameSite
		wantErr bool
	}{
		{"", http.SameSiteLaxMode, false},
		{"Lax", http.SameSiteLaxMode, false},
		{"strict", http.SameSiteStrictMode, false},
		{"none", http.SameSiteNoneMode, false},
		{"sometimes", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := websession.ParseSameSite(tt.in)
			if tt.wantErr {
				errutil.AssertErrorCode(t, err, "INVALID_SAME_SITE")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
