// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

// Package memory provides an in-process auth.UserRepository for development
// and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/samber/oops"

	"github.com/contentone/contentone/internal/auth"
)

// UserRepository stores users in a map. Emails are unique.
type UserRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]auth.User
	byEmail map[string]int64
	now     func() time.Time
}

var _ auth.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates an empty repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[int64]auth.User),
		byEmail: make(map[string]int64),
		now:     time.Now,
	}
}

// Create stores u and assigns its ID.
func (r *UserRepository) Create(_ context.Context, u *auth.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.Email]; ok {
		return oops.Code("USER_EMAIL_TAKEN").With("email", u.Email).Wrap(auth.ErrEmailTaken)
	}

	r.nextID++
	now := r.now()
	u.ID = r.nextID
	u.CreatedAt = now
	u.UpdatedAt = now

	r.byID[u.ID] = *u
	r.byEmail[u.Email] = u.ID
	return nil
}

// GetByID returns a copy of the user.
func (r *UserRepository) GetByID(_ context.Context, id int64) (*auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, oops.Code("USER_NOT_FOUND").With("id", id).Wrap(auth.ErrNotFound)
	}
	return &u, nil
}

// GetByEmail returns a copy of the user.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	r.mu.RLock()
	id, ok := r.byEmail[email]
	r.mu.RUnlock()

	if !ok {
		return nil, oops.Code("USER_NOT_FOUND").With("email", email).Wrap(auth.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

// UpdatePassword replaces the stored hash.
func (r *UserRepository) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return oops.Code("USER_NOT_FOUND").With("id", id).Wrap(auth.ErrNotFound)
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = r.now()
	r.byID[id] = u
	return nil
}

// Delete removes the user.
func (r *UserRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return oops.Code("USER_NOT_FOUND").With("id", id).Wrap(auth.ErrNotFound)
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return nil
}
