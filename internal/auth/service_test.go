// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/contentone/contentone/internal/auth"
	"github.com/contentone/contentone/internal/auth/mocks"
	"github.com/contentone/contentone/pkg/errutil"
)

type serviceMocks struct {
	users  *mocks.MockUserRepository
	tokens *mocks.MockTokenStore
	hasher *mocks.MockPasswordHasher
	mailer *mocks.MockMailer
}

func newMockedService(t *testing.T, opts ...auth.ServiceOption) (*auth.Service, serviceMocks) {
	t.Helper()
	m := serviceMocks{
		users:  mocks.NewMockUserRepository(t),
		tokens: mocks.NewMockTokenStore(t),
		hasher: mocks.NewMockPasswordHasher(t),
		mailer: mocks.NewMockMailer(t),
	}
	svc, err := auth.NewService(m.users, m.tokens, m.hasher, m.mailer, opts...)
	require.NoError(t, err)
	return svc, m
}

func requireFieldError(t *testing.T, res *auth.UserResult, field, message string) {
	t.Helper()
	require.NotNil(t, res)
	assert.Nil(t, res.User)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, auth.FieldError{Field: field, Message: message}, res.Errors[0])
}

func TestNewService_NilDependencies(t *testing.T) {
	tests := []struct {
		name        string
		users       auth.UserRepository
		tokens      auth.TokenStore
		hasher      auth.PasswordHasher
		mailer      auth.Mailer
		expectError string
	}{
		{
			name:        "nil users repository",
			tokens:      mocks.NewMockTokenStore(t),
			hasher:      mocks.NewMockPasswordHasher(t),
			mailer:      mocks.NewMockMailer(t),
			expectError: "users repository is required",
		},
		{
			name:        "nil token store",
			users:       mocks.NewMockUserRepository(t),
			hasher:      mocks.NewMockPasswordHasher(t),
			mailer:      mocks.NewMockMailer(t),
			expectError: "token store is required",
		},
		{
			name:        "nil password hasher",
			users:       mocks.NewMockUserRepository(t),
			tokens:      mocks.NewMockTokenStore(t),
			mailer:      mocks.NewMockMailer(t),
			expectError: "password hasher is required",
		},
		{
			name:        "nil mailer",
			users:       mocks.NewMockUserRepository(t),
			tokens:      mocks.NewMockTokenStore(t),
			hasher:      mocks.NewMockPasswordHasher(t),
			expectError: "mailer is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := auth.NewService(tt.users, tt.tokens, tt.hasher, tt.mailer)
			require.Error(t, err)
			assert.Nil(t, svc)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	input := auth.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret"}

	t.Run("existing email is rejected before validation", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(&auth.User{ID: 1}, nil)

		res, err := svc.Register(ctx, auth.RegisterInput{Email: "ada@example.com", Password: "x"})
		require.NoError(t, err)
		requireFieldError(t, res, "email", "user already registered")
		m.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("short email", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.users.EXPECT().GetByEmail(ctx, "a@b.co").Return(nil, auth.ErrNotFound)

		res, err := svc.Register(ctx, auth.RegisterInput{Email: "a@b.co", Password: "secret"})
		require.NoError(t, err)
		requireFieldError(t, res, "email", "email is invalid")
	})

	t.Run("short email wins over short password", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.users.EXPECT().GetByEmail(ctx, "a@b.co").Return(nil, auth.ErrNotFound)

		res, err := svc.Register(ctx, auth.RegisterInput{Email: "a@b.co", Password: "x"})
		require.NoError(t, err)
		requireFieldError(t, res, "email", "email is invalid")
	})

	t.Run("short password", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(nil, auth.ErrNotFound)

		res, err := svc.Register(ctx, auth.RegisterInput{Email: "ada@example.com", Password: "abc"})
		require.NoError(t, err)
		requireFieldError(t, res, "password", "length must be greater than 3")
		m.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})

	t.Run("success hashes and stores", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(nil, auth.ErrNotFound)
		m.hasher.EXPECT().Hash("secret").Return("hashed", nil)
		m.users.EXPECT().Create(ctx, mock.MatchedBy(func(u *auth.User) bool {
			return u.Email == "ada@example.com" && u.Name == "Ada" && u.PasswordHash == "hashed"
		})).Run(func(_ context.Context, u *auth.User) { u.ID = 7 }).Return(nil)

		res, err := svc.Register(ctx, input)
		require.NoError(t, err)
		require.True(t, res.OK())
		assert.Equal(t, int64(7), res.User.ID)
		assert.Empty(t, res.Errors)
	})

	t.Run("unique violation on insert maps to duplicate", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(nil, auth.ErrNotFound)
		m.hasher.EXPECT().Hash("secret").Return("hashed", nil)
		m.users.EXPECT().Create(ctx, mock.Anything).Return(auth.ErrEmailTaken)

		res, err := svc.Register(ctx, input)
		require.NoError(t, err)
		requireFieldError(t, res, "email", "user already registered")
	})

	t.Run("lookup failure", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(nil, errors.New("db down"))

		res, err := svc.Register(ctx, input)
		require.Error(t, err)
		assert.Nil(t, res)
		errutil.AssertErrorCode(t, err, "REGISTER_FAILED")
	})

	t.Run("insert failure", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(nil, auth.ErrNotFound)
		m.hasher.EXPECT().Hash("secret").Return("hashed", nil)
		m.users.EXPECT().Create(ctx, mock.Anything).Return(errors.New("db down"))

		_, err := svc.Register(ctx, input)
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "REGISTER_FAILED")
		errutil.AssertErrorContext(t, err, "operation", "create user")
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	user := &auth.User{ID: 3, Email: "ada@example.com", PasswordHash: "stored"}

	t.Run("unknown email still verifies against dummy hash", func(t *testing.T) {
		svc, m := newMockedService(t)
		sess := mocks.NewMockSession(t)
		m.users.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, auth.ErrNotFound)
		m.hasher.EXPECT().Verify("secret", auth.DummyPasswordHash).Return(false, nil)

		res, err := svc.Login(ctx, sess, "nobody@example.com", "secret")
		require.NoError(t, err)
		requireFieldError(t, res, "email", "email does not exist")
		sess.AssertNotCalled(t, "SetUserID", mock.Anything)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newMockedService(t)
		sess := mocks.NewMockSession(t)
		m.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(user, nil)
		m.hasher.EXPECT().Verify("wrong", "stored").Return(false, nil)

		res, err := svc.Login(ctx, sess, "ada@example.com", "wrong")
		require.NoError(t, err)
		requireFieldError(t, res, "password", "password is incorrect")
		sess.AssertNotCalled(t, "SetUserID", mock.Anything)
	})

	t.Run("success binds session", func(t *testing.T) {
		svc, m := newMockedService(t)
		sess := mocks.NewMockSession(t)
		m.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(user, nil)
		m.hasher.EXPECT().Verify("secret", "stored").Return(true, nil)
		m.hasher.EXPECT().NeedsUpgrade("stored").Return(false)
		sess.EXPECT().SetUserID(int64(3)).Return()

		res, err := svc.Login(ctx, sess, "ada@example.com", "secret")
		require.NoError(t, err)
		require.True(t, res.OK())
		assert.Equal(t, "ada@example.com", res.User.Email)
	})

	t.Run("outdated hash is upgraded", func(t *testing.T) {
		svc, m := newMockedService(t)
		sess := mocks.NewMockSession(t)
		old := &auth.User{ID: 3, Email: "ada@example.com", PasswordHash: "old"}
		m.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(old, nil)
		m.hasher.EXPECT().Verify("secret", "old").Return(true, nil)
		m.hasher.EXPECT().NeedsUpgrade("old").Return(true)
		m.hasher.EXPECT().Hash("secret").Return("new", nil)
		m.users.EXPECT().UpdatePassword(ctx, int64(3), "new").Return(nil)
		sess.EXPECT().SetUserID(int64(3)).Return()

		res, err := svc.Login(ctx, sess, "ada@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "new", res.User.PasswordHash)
	})

	t.Run("failed upgrade does not fail login", func(t *testing.T) {
		svc, m := newMockedService(t)
		sess := mocks.NewMockSession(t)
		old := &auth.User{ID: 3, Email: "ada@example.com", PasswordHash: "old"}
		m.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(old, nil)
		m.hasher.EXPECT().Verify("secret", "old").Return(true, nil)
		m.hasher.EXPECT().NeedsUpgrade("old").Return(true)
		m.hasher.EXPECT().Hash("secret").Return("new", nil)
		m.users.EXPECT().UpdatePassword(ctx, int64(3), "new").Return(errors.New("db down"))
		sess.EXPECT().SetUserID(int64(3)).Return()

		res, err := svc.Login(ctx, sess, "ada@example.com", "secret")
		require.NoError(t, err)
		assert.True(t, res.OK())
		assert.Equal(t, "old", res.User.PasswordHash)
	})

	t.Run("lookup failure", func(t *testing.T) {
		svc, m := newMockedService(t)
		sess := mocks.NewMockSession(t)
		m.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(nil, errors.New("db down"))

		_, err := svc.Login(ctx, sess, "ada@example.com", "secret")
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "LOGIN_FAILED")
	})

	t.Run("corrupt stored hash", func(t *testing.T) {
		svc, m := newMockedService(t)
		sess := mocks.NewMockSession(t)
		m.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(user, nil)
		m.hasher.EXPECT().Verify("secret", "stored").Return(false, errors.New("invalid hash format"))

		_, err := svc.Login(ctx, sess, "ada@example.com", "secret")
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "LOGIN_FAILED")
		errutil.AssertErrorContext(t, err, "user_id", int64(3))
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("no session", func(t *testing.T) {
		svc, _ := newMockedService(t)
		sess := mocks.NewMockSession(t)
		sess.EXPECT().UserID().Return(0, false)

		assert.False(t, svc.Logout(ctx, sess))
		sess.AssertNotCalled(t, "ClearCookie")
		sess.AssertNotCalled(t, "Destroy", mock.Anything)
	})

	t.Run("nil session", func(t *testing.T) {
		svc, _ := newMockedService(t)
		assert.False(t, svc.Logout(ctx, nil))
	})

	t.Run("clears cookie and destroys", func(t *testing.T) {
		svc, _ := newMockedService(t)
		sess := mocks.NewMockSession(t)
		sess.EXPECT().UserID().Return(3, true)
		sess.EXPECT().ClearCookie().Return()
		sess.EXPECT().Destroy(ctx).Return(nil)

		assert.True(t, svc.Logout(ctx, sess))
	})

	t.Run("destroy failure reports false after clearing cookie", func(t *testing.T) {
		svc, _ := newMockedService(t)
		sess := mocks.NewMockSession(t)
		sess.EXPECT().UserID().Return(3, true)
		sess.EXPECT().ClearCookie().Return()
		sess.EXPECT().Destroy(ctx).Return(errors.New("redis down"))

		assert.False(t, svc.Logout(ctx, sess))
	})
}

func TestService_Me(t *testing.T) {
	ctx := context.Background()

	t.Run("no session", func(t *testing.T) {
		svc, m := newMockedService(t)
		sess := mocks.NewMockSession(t)
		sess.EXPECT().UserID().Return(0, false)

		user, err := svc.Me(ctx, sess)
		require.NoError(t, err)
		assert.Nil(t, user)
		m.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("stale session", func(t *testing.T) {
		svc, m := newMockedService(t)
		sess := mocks.NewMockSession(t)
		sess.EXPECT().UserID().Return(9, true)
		m.users.EXPECT().GetByID(ctx, int64(9)).Return(nil, auth.ErrNotFound)

		user, err := svc.Me(ctx, sess)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("bound user", func(t *testing.T) {
		svc, m := newMockedService(t)
		sess := mocks.NewMockSession(t)
		sess.EXPECT().UserID().Return(3, true)
		m.users.EXPECT().GetByID(ctx, int64(3)).Return(&auth.User{ID: 3, Email: "ada@example.com"}, nil)

		user, err := svc.Me(ctx, sess)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(3), user.ID)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, m := newMockedService(t)
		sess := mocks.NewMockSession(t)
		sess.EXPECT().UserID().Return(3, true)
		m.users.EXPECT().GetByID(ctx, int64(3)).Return(nil, errors.New("db down"))

		_, err := svc.Me(ctx, sess)
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "ME_FAILED")
	})
}

func TestRequireUser(t *testing.T) {
	t.Run("nil session", func(t *testing.T) {
		_, err := auth.RequireUser(nil)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("anonymous session", func(t *testing.T) {
		sess := mocks.NewMockSession(t)
		sess.EXPECT().UserID().Return(0, false)
		_, err := auth.RequireUser(sess)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("authenticated session", func(t *testing.T) {
		sess := mocks.NewMockSession(t)
		sess.EXPECT().UserID().Return(5, true)
		id, err := auth.RequireUser(sess)
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})
}

func TestValidateLengths(t *testing.T) {
	assert.NotNil(t, auth.ValidateEmailLength("a@b.cd"))
	assert.Nil(t, auth.ValidateEmailLength("a@b.cde"))
	assert.NotNil(t, auth.ValidatePasswordLength("abc"))
	assert.Nil(t, auth.ValidatePasswordLength("abcd"))

	// Multi-byte input is measured in characters.
	assert.NotNil(t, auth.ValidateEmailLength("éé@éé"))
	assert.NotNil(t, auth.ValidateEmailLength("é@é.éé"))
	assert.Nil(t, auth.ValidateEmailLength("éé@é.éé"))
	assert.NotNil(t, auth.ValidatePasswordLength("éé"))
	assert.NotNil(t, auth.ValidatePasswordLength("ßßß"))
	assert.Nil(t, auth.ValidatePasswordLength("ßßßß"))
}
