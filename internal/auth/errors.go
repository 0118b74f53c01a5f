// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package auth

import "errors"

var (
	// ErrNotFound is returned when a requested user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned by UserRepository.Create when the email is
	// already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUnauthenticated is returned by RequireUser when the session carries
	// no user.
	ErrUnauthenticated = errors.New("user is not authenticated")
)
