// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

// Package auth provides account registration, login sessions and the
// password reset flow for ContentOne.
//
// # Results
//
// Expected failures (duplicate email, bad credentials, invalid reset token,
// short password) are returned as FieldError values inside a UserResult.
// The error return is reserved for infrastructure failures and carries an
// oops code.
//
// # Collaborators
//
// The Service depends only on interfaces:
//   - UserRepository - the credential store
//   - TokenStore - key/value storage with expiry for reset tokens
//   - Mailer - delivers the reset link
//   - Session - the per-request session owned by the transport layer
//
// Services are created with NewService, which validates its dependencies.
package auth
