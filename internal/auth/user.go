// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package auth

import (
	"context"
	"time"
	"unicode/utf8"
)

// Credential constraints, counted in characters. These are length
// thresholds, not format checks.
const (
	MinEmailLength    = 7
	MinPasswordLength = 4
)

// Field error messages returned to API clients.
const (
	MsgUserAlreadyRegistered = "user already registered"
	MsgEmailInvalid          = "email is invalid"
	MsgPasswordTooShort      = "length must be greater than 3"
	MsgEmailDoesNotExist     = "email does not exist"
	MsgPasswordIncorrect     = "password is incorrect"
	MsgTokenInvalid          = "your token is invalid"
	MsgUserNoLongerExists    = "user no longer exists"
)

// User is a registered account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FieldError identifies which input failed and why.
type FieldError struct {
	Field   string
	Message string
}

// UserResult is the outcome of an operation that yields a user.
// Exactly one of User or Errors is set.
type UserResult struct {
	User   *User
	Errors []FieldError
}

// OK reports whether the result carries a user.
func (r *UserResult) OK() bool {
	return r != nil && r.User != nil && len(r.Errors) == 0
}

func userOK(u *User) *UserResult {
	return &UserResult{User: u}
}

func fieldFailure(field, message string) *UserResult {
	return &UserResult{Errors: []FieldError{{Field: field, Message: message}}}
}

// ValidateEmailLength returns a FieldError when email is too short to be
// accepted at registration.
func ValidateEmailLength(email string) *FieldError {
	if utf8.RuneCountInString(email) < MinEmailLength {
		return &FieldError{Field: "email", Message: MsgEmailInvalid}
	}
	return nil
}

// ValidatePasswordLength returns a FieldError when password is too short.
func ValidatePasswordLength(password string) *FieldError {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return &FieldError{Field: "password", Message: MsgPasswordTooShort}
	}
	return nil
}

// UserRepository manages user persistence.
type UserRepository interface {
	// Create inserts u and fills in ID, CreatedAt and UpdatedAt.
	// Returns ErrEmailTaken if the email is already registered.
	Create(ctx context.Context, u *User) error

	// GetByID returns ErrNotFound if no user has the id.
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail returns ErrNotFound if no user has the email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// UpdatePassword replaces the stored hash. Returns ErrNotFound if the
	// user is gone.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// Delete removes the user. Returns ErrNotFound if the user is gone.
	Delete(ctx context.Context, id int64) error
}
