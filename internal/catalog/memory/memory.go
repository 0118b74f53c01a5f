// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

// Package memory provides in-process catalog repositories for development
// and tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/samber/oops"

	"github.com/contentone/contentone/internal/catalog"
)

// DB holds categories and feeds behind one lock so category deletes can
// cascade to feeds.
type DB struct {
	mu         sync.RWMutex
	nextCat    int64
	nextFeed   int64
	categories map[int64]catalog.Category
	feeds      map[int64]catalog.Feed
	now        func() time.Time
}

// New creates an empty DB.
func New() *DB {
	return &DB{
		categories: make(map[int64]catalog.Category),
		feeds:      make(map[int64]catalog.Feed),
		now:        time.Now,
	}
}

// Categories returns a CategoryRepository view of db.
func (db *DB) Categories() *CategoryRepository { return &CategoryRepository{db: db} }

// Feeds returns a FeedRepository view of db.
func (db *DB) Feeds() *FeedRepository { return &FeedRepository{db: db} }

// CategoryRepository implements catalog.CategoryRepository.
type CategoryRepository struct {
	db *DB
}

var _ catalog.CategoryRepository = (*CategoryRepository)(nil)

func categoryNotFound(id int64) error {
	return oops.Code("CATEGORY_NOT_FOUND").With("category_id", id).Wrap(catalog.ErrNotFound)
}

// Create stores c and assigns its ID.
func (r *CategoryRepository) Create(_ context.Context, c *catalog.Category) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.nextCat++
	now := r.db.now()
	c.ID = r.db.nextCat
	c.CreatedAt, c.UpdatedAt = now, now
	r.db.categories[c.ID] = *c
	return nil
}

// Get returns a copy of the category.
func (r *CategoryRepository) Get(_ context.Context, id int64) (*catalog.Category, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	c, ok := r.db.categories[id]
	if !ok {
		return nil, categoryNotFound(id)
	}
	return &c, nil
}

// Find returns the user's category with the exact name and description.
func (r *CategoryRepository) Find(_ context.Context, userID int64, name, description string) (*catalog.Category, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, c := range r.db.categories {
		if c.UserID == userID && c.Name == name && c.Description == description {
			return &c, nil
		}
	}
	return nil, oops.Code("CATEGORY_NOT_FOUND").With("name", name).Wrap(catalog.ErrNotFound)
}

// ListByUser returns the user's categories ordered by id.
func (r *CategoryRepository) ListByUser(_ context.Context, userID int64) ([]*catalog.Category, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []*catalog.Category
	for _, c := range r.db.categories {
		if c.UserID == userID {
			out = append(out, &c)
		}
	}
	slices.SortFunc(out, func(a, b *catalog.Category) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// Update writes name and description.
func (r *CategoryRepository) Update(_ context.Context, c *catalog.Category) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.categories[c.ID]
	if !ok {
		return categoryNotFound(c.ID)
	}
	stored.Name = c.Name
	stored.Description = c.Description
	stored.UpdatedAt = r.db.now()
	r.db.categories[c.ID] = stored
	*c = stored
	return nil
}

// Delete removes the category and its feeds.
func (r *CategoryRepository) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.categories[id]; !ok {
		return categoryNotFound(id)
	}
	delete(r.db.categories, id)
	for fid, f := range r.db.feeds {
		if f.CategoryID == id {
			delete(r.db.feeds, fid)
		}
	}
	return nil
}

// FeedRepository implements catalog.FeedRepository.
type FeedRepository struct {
	db *DB
}

var _ catalog.FeedRepository = (*FeedRepository)(nil)

func feedNotFound(id int64) error {
	return oops.Code("FEED_NOT_FOUND").With("feed_id", id).Wrap(catalog.ErrNotFound)
}

// Create stores f and assigns its ID. The category must exist.
func (r *FeedRepository) Create(_ context.Context, f *catalog.Feed) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.categories[f.CategoryID]; !ok {
		return categoryNotFound(f.CategoryID)
	}
	r.db.nextFeed++
	now := r.db.now()
	f.ID = r.db.nextFeed
	f.CreatedAt, f.UpdatedAt = now, now
	r.db.feeds[f.ID] = *f
	return nil
}

// Get returns a copy of the feed.
func (r *FeedRepository) Get(_ context.Context, id int64) (*catalog.Feed, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	f, ok := r.db.feeds[id]
	if !ok {
		return nil, feedNotFound(id)
	}
	return &f, nil
}

// ListByCategory returns the category's feeds ordered by id.
func (r *FeedRepository) ListByCategory(_ context.Context, categoryID int64) ([]*catalog.Feed, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []*catalog.Feed
	for _, f := range r.db.feeds {
		if f.CategoryID == categoryID {
			out = append(out, &f)
		}
	}
	slices.SortFunc(out, func(a, b *catalog.Feed) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// Update writes name and URL.
func (r *FeedRepository) Update(_ context.Context, f *catalog.Feed) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.feeds[f.ID]
	if !ok {
		return feedNotFound(f.ID)
	}
	stored.Name = f.Name
	stored.FeedURL = f.FeedURL
	stored.UpdatedAt = r.db.now()
	r.db.feeds[f.ID] = stored
	*f = stored
	return nil
}

// Delete removes the feed.
func (r *FeedRepository) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.feeds[id]; !ok {
		return feedNotFound(id)
	}
	delete(r.db.feeds, id)
	return nil
}
