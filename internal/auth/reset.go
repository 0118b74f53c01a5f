// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"html"
	"strconv"

	"github.com/google/uuid"
	"github.com/samber/oops"

	"github.com/contentone/contentone/internal/sessionstore"
	"github.com/contentone/contentone/pkg/errutil"
)

// ResetTokenPrefix namespaces reset tokens in the token store.
const ResetTokenPrefix = "forget-password:"

// GenerateResetToken returns a random (version 4) UUID. uuid.NewRandom
// reads from crypto/rand.
func GenerateResetToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", oops.Code("RESET_TOKEN_GENERATE_FAILED").Wrap(err)
	}
	return id.String(), nil
}

// ResetTokenKey returns the store key for token. Only the token's SHA-256
// digest is stored, so a store dump does not leak usable tokens.
func ResetTokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return ResetTokenPrefix + hex.EncodeToString(sum[:])
}

// ResetLink returns the URL the user follows to choose a new password.
func (s *Service) ResetLink(token string) string {
	return s.linkBase + token
}

func resetEmailBody(link string) string {
	escaped := html.EscapeString(link)
	return fmt.Sprintf(`<a href="%s">reset password</a>`, escaped)
}

// ForgotPassword emails a reset link if an account with email exists.
// Returns false, and sends nothing, for unknown emails.
func (s *Service) ForgotPassword(ctx context.Context, email string) (bool, error) {
	user, lookupErr := s.users.GetByEmail(ctx, email)
	if lookupErr != nil && !errors.Is(lookupErr, ErrNotFound) {
		return false, oops.Code("RESET_REQUEST_FAILED").With("operation", "get user by email").Wrap(lookupErr)
	}

	// Generated in both branches so unknown emails do comparable work.
	token, err := s.newToken()
	if err != nil {
		return false, oops.Code("RESET_REQUEST_FAILED").With("operation", "generate token").Wrap(err)
	}
	if lookupErr != nil {
		return false, nil
	}

	if err := s.tokens.Set(ctx, ResetTokenKey(token), strconv.FormatInt(user.ID, 10), s.resetTTL); err != nil {
		return false, oops.Code("RESET_REQUEST_FAILED").With("operation", "store token").Wrap(err)
	}

	if err := s.mailer.Send(ctx, user.Email, resetEmailBody(s.ResetLink(token))); err != nil {
		return false, oops.Code("RESET_REQUEST_FAILED").
			With("operation", "send reset email").
			With("user_id", user.ID).
			Wrap(err)
	}

	s.logger.InfoContext(ctx, "password reset requested", "user_id", user.ID)
	return true, nil
}

// UpdatePassword sets a new password using a reset token. The token is
// consumed on success.
func (s *Service) UpdatePassword(ctx context.Context, token, password string) (*UserResult, error) {
	if fe := ValidatePasswordLength(password); fe != nil {
		return &UserResult{Errors: []FieldError{*fe}}, nil
	}

	key := ResetTokenKey(token)
	raw, err := s.tokens.Get(ctx, key)
	if errors.Is(err, sessionstore.ErrNotFound) {
		return fieldFailure("token", MsgTokenInvalid), nil
	}
	if err != nil {
		return nil, oops.Code("PASSWORD_UPDATE_FAILED").With("operation", "get token").Wrap(err)
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// A malformed entry is treated like an unknown token.
		s.logger.WarnContext(ctx, "malformed reset token entry", "error", err)
		return fieldFailure("token", MsgTokenInvalid), nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return fieldFailure("token", MsgUserNoLongerExists), nil
	}
	if err != nil {
		return nil, oops.Code("PASSWORD_UPDATE_FAILED").With("operation", "get user").With("user_id", userID).Wrap(err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, oops.Code("PASSWORD_UPDATE_FAILED").With("operation", "hash password").Wrap(err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fieldFailure("token", MsgUserNoLongerExists), nil
		}
		return nil, oops.Code("PASSWORD_UPDATE_FAILED").With("operation", "update password").With("user_id", user.ID).Wrap(err)
	}
	user.PasswordHash = hash

	// The password is already changed; a failed delete only leaves the token
	// to expire on its own.
	if err := s.tokens.Delete(ctx, key); err != nil {
		errutil.LogError(s.logger, "reset token delete failed", err)
	}

	s.logger.InfoContext(ctx, "password updated", "user_id", user.ID)
	return userOK(user), nil
}
