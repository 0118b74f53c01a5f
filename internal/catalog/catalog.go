// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

// Package catalog manages users' categories and the feeds filed under them.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/contentone/contentone/internal/auth"
)

// ErrNotFound is returned by repositories when a row does not exist.
var ErrNotFound = errors.New("not found")

// Category groups feeds and belongs to one user.
type Category struct {
	ID          int64
	UserID      int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Feed is a subscription URL filed under a category.
type Feed struct {
	ID         int64
	CategoryID int64
	Name       string
	FeedURL    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Notice is an informational message that is not a failure.
type Notice struct {
	Message string
}

// CategoryResult carries a category or the field errors that prevented it.
type CategoryResult struct {
	Category *Category
	Errors   []auth.FieldError
}

// FeedResult carries a feed or the field errors that prevented it.
type FeedResult struct {
	Feed   *Feed
	Errors []auth.FieldError
}

// FeedsResult is the answer to a feed listing.
type FeedsResult struct {
	Category *Category
	Feeds    []*Feed
	Errors   []auth.FieldError
	Notices  []Notice
}

// DeleteResult reports the outcome of a category delete.
type DeleteResult struct {
	Result  bool
	Message string
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	// Get returns ErrNotFound if no category has the id.
	Get(ctx context.Context, id int64) (*Category, error)
	// Find looks up a user's category by exact name and description.
	// Returns ErrNotFound if there is none.
	Find(ctx context.Context, userID int64, name, description string) (*Category, error)
	ListByUser(ctx context.Context, userID int64) ([]*Category, error)
	// Update writes name and description and refreshes UpdatedAt.
	Update(ctx context.Context, c *Category) error
	// Delete removes the category and, with it, its feeds.
	Delete(ctx context.Context, id int64) error
}

// FeedRepository persists feeds.
type FeedRepository interface {
	Create(ctx context.Context, f *Feed) error
	// Get returns ErrNotFound if no feed has the id.
	Get(ctx context.Context, id int64) (*Feed, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*Feed, error)
	Update(ctx context.Context, f *Feed) error
	Delete(ctx context.Context, id int64) error
}
