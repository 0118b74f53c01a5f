// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/samber/oops"

	"github.com/contentone/contentone/pkg/errutil"
)

// Defaults for the password reset flow.
const (
	DefaultResetTokenTTL = 72 * time.Hour
	DefaultResetLinkBase = "http://localhost:3000/auth/update-password/"
)

// dummyPasswordHash is verified against when the email is unknown so that
// login takes the same time whether or not the account exists.
// It never matches any password.
//
//nolint:gosec // G101: intentionally fake hash for timing symmetry, not a credential.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// Service provides account and session operations.
type Service struct {
	users     UserRepository
	tokens    TokenStore
	hasher    PasswordHasher
	mailer    Mailer
	logger    *slog.Logger
	linkBase  string
	resetTTL  time.Duration
	newToken  func() (string, error)
	dummyHash string
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithResetLinkBase sets the URL prefix the reset token is appended to.
func WithResetLinkBase(base string) ServiceOption {
	return func(s *Service) {
		if base != "" {
			s.linkBase = base
		}
	}
}

// WithResetTokenTTL sets how long a reset token stays valid.
func WithResetTokenTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl > 0 {
			s.resetTTL = ttl
		}
	}
}

// WithDummyHash sets the hash verified against for unknown emails. It should
// use the same cost parameters as the configured hasher.
func WithDummyHash(hash string) ServiceOption {
	return func(s *Service) {
		if hash != "" {
			s.dummyHash = hash
		}
	}
}

// withTokenGenerator replaces the reset token source. Used by tests.
func withTokenGenerator(gen func() (string, error)) ServiceOption {
	return func(s *Service) {
		s.newToken = gen
	}
}

// NewService creates a Service. All dependencies are required.
func NewService(users UserRepository, tokens TokenStore, hasher PasswordHasher, mailer Mailer, opts ...ServiceOption) (*Service, error) {
	if users == nil {
		return nil, oops.Errorf("users repository is required")
	}
	if tokens == nil {
		return nil, oops.Errorf("token store is required")
	}
	if hasher == nil {
		return nil, oops.Errorf("password hasher is required")
	}
	if mailer == nil {
		return nil, oops.Errorf("mailer is required")
	}

	s := &Service{
		users:     users,
		tokens:    tokens,
		hasher:    hasher,
		mailer:    mailer,
		logger:    slog.Default(),
		linkBase:  DefaultResetLinkBase,
		resetTTL:  DefaultResetTokenTTL,
		newToken:  GenerateResetToken,
		dummyHash: dummyPasswordHash,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// RegisterInput holds the fields accepted by Register.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates an account.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*UserResult, error) {
	_, err := s.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return fieldFailure("email", MsgUserAlreadyRegistered), nil
	case !errors.Is(err, ErrNotFound):
		return nil, oops.Code("REGISTER_FAILED").With("operation", "get user by email").Wrap(err)
	}

	if fe := ValidateEmailLength(in.Email); fe != nil {
		return &UserResult{Errors: []FieldError{*fe}}, nil
	}
	if fe := ValidatePasswordLength(in.Password); fe != nil {
		return &UserResult{Errors: []FieldError{*fe}}, nil
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, oops.Code("REGISTER_FAILED").With("operation", "hash password").Wrap(err)
	}

	user := &User{Name: in.Name, Email: in.Email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		// Lost the race against a concurrent registration.
		if errors.Is(err, ErrEmailTaken) {
			return fieldFailure("email", MsgUserAlreadyRegistered), nil
		}
		return nil, oops.Code("REGISTER_FAILED").With("operation", "create user").Wrap(err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	return userOK(user), nil
}

// Login verifies credentials and binds the user to sess.
func (s *Service) Login(ctx context.Context, sess Session, email, password string) (*UserResult, error) {
	user, lookupErr := s.users.GetByEmail(ctx, email)
	if lookupErr != nil && !errors.Is(lookupErr, ErrNotFound) {
		return nil, oops.Code("LOGIN_FAILED").With("operation", "get user by email").Wrap(lookupErr)
	}
	exists := lookupErr == nil

	target := s.dummyHash
	if exists {
		target = user.PasswordHash
	}

	// Always verify so that unknown emails cost the same as known ones.
	valid, verifyErr := s.hasher.Verify(password, target)
	if !exists {
		return fieldFailure("email", MsgEmailDoesNotExist), nil
	}
	if verifyErr != nil {
		return nil, oops.Code("LOGIN_FAILED").
			With("operation", "verify password").
			With("user_id", user.ID).
			Wrap(verifyErr)
	}
	if !valid {
		return fieldFailure("password", MsgPasswordIncorrect), nil
	}

	if s.hasher.NeedsUpgrade(user.PasswordHash) {
		s.upgradeHash(ctx, user, password)
	}

	sess.SetUserID(user.ID)
	return userOK(user), nil
}

// upgradeHash rehashes with current parameters. Failure does not fail login.
func (s *Service) upgradeHash(ctx context.Context, user *User, password string) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		errutil.LogError(s.logger, "password rehash failed", err)
		return
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		errutil.LogError(s.logger, "password rehash failed", err)
		return
	}
	user.PasswordHash = hash
}

// Logout clears the session cookie and destroys the server-side session.
// Returns false if there was no session or the session could not be destroyed.
func (s *Service) Logout(ctx context.Context, sess Session) bool {
	if _, err := RequireUser(sess); err != nil {
		return false
	}

	sess.ClearCookie()
	if err := sess.Destroy(ctx); err != nil {
		errutil.LogError(s.logger, "session destroy failed", oops.Code("LOGOUT_FAILED").Wrap(err))
		return false
	}
	return true
}

// Me returns the user bound to sess, or nil if there is none or the user
// no longer exists.
func (s *Service) Me(ctx context.Context, sess Session) (*User, error) {
	id, err := RequireUser(sess)
	if err != nil {
		return nil, nil //nolint:nilnil // no session is not an error
	}

	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil //nolint:nilnil // stale session
	}
	if err != nil {
		return nil, oops.Code("ME_FAILED").With("user_id", id).Wrap(err)
	}
	return user, nil
}
