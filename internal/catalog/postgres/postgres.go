// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

// Package postgres implements the catalog repositories on PostgreSQL.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/contentone/contentone/internal/catalog"
	"github.com/contentone/contentone/internal/store"
)

const (
	categoryColumns = `id, user_id, name, description, created_at, updated_at`
	feedColumns     = `id, category_id, name, feed_url, created_at, updated_at`
)

// CategoryRepository implements catalog.CategoryRepository using PostgreSQL.
type CategoryRepository struct {
	pool store.Pool
}

var _ catalog.CategoryRepository = (*CategoryRepository)(nil)

// NewCategoryRepository creates a CategoryRepository.
func NewCategoryRepository(pool store.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// Create inserts c and fills in its generated fields.
func (r *CategoryRepository) Create(ctx context.Context, c *catalog.Category) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO categories (user_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.UserID, c.Name, c.Description).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return oops.Code("CATEGORY_CREATE_FAILED").With("user_id", c.UserID).Wrap(err)
	}
	return nil
}

// Get retrieves a category by id.
func (r *CategoryRepository) Get(ctx context.Context, id int64) (*catalog.Category, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("CATEGORY_NOT_FOUND").With("category_id", id).Wrap(catalog.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("CATEGORY_GET_FAILED").With("category_id", id).Wrap(err)
	}
	return c, nil
}

// Find retrieves a user's category by exact name and description.
func (r *CategoryRepository) Find(ctx context.Context, userID int64, name, description string) (*catalog.Category, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE user_id = $1 AND name = $2 AND description = $3
		LIMIT 1
	`, userID, name, description)
	c, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("CATEGORY_NOT_FOUND").With("name", name).Wrap(catalog.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("CATEGORY_GET_FAILED").With("user_id", userID).Wrap(err)
	}
	return c, nil
}

// ListByUser returns the user's categories ordered by id.
func (r *CategoryRepository) ListByUser(ctx context.Context, userID int64) ([]*catalog.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, oops.Code("CATEGORY_LIST_FAILED").With("user_id", userID).Wrap(err)
	}
	defer rows.Close()

	var out []*catalog.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, oops.Code("CATEGORY_LIST_FAILED").With("operation", "scan").Wrap(err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("CATEGORY_LIST_FAILED").With("operation", "iterate").Wrap(err)
	}
	return out, nil
}

// Update writes name and description and reloads the row.
func (r *CategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE categories SET name = $2, description = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+categoryColumns,
		c.ID, c.Name, c.Description).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return oops.Code("CATEGORY_NOT_FOUND").With("category_id", c.ID).Wrap(catalog.ErrNotFound)
	}
	if err != nil {
		return oops.Code("CATEGORY_UPDATE_FAILED").With("category_id", c.ID).Wrap(err)
	}
	return nil
}

// Delete removes the category. Feeds cascade in the schema.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return oops.Code("CATEGORY_DELETE_FAILED").With("category_id", id).Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return oops.Code("CATEGORY_NOT_FOUND").With("category_id", id).Wrap(catalog.ErrNotFound)
	}
	return nil
}

func scanCategory(row pgx.Row) (*catalog.Category, error) {
	var c catalog.Category
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// FeedRepository implements catalog.FeedRepository using PostgreSQL.
type FeedRepository struct {
	pool store.Pool
}

var _ catalog.FeedRepository = (*FeedRepository)(nil)

// NewFeedRepository creates a FeedRepository.
func NewFeedRepository(pool store.Pool) *FeedRepository {
	return &FeedRepository{pool: pool}
}

// Create inserts f. A missing category surfaces as catalog.ErrNotFound.
func (r *FeedRepository) Create(ctx context.Context, f *catalog.Feed) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO feeds (category_id, name, feed_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, f.CategoryID, f.Name, f.FeedURL).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if isForeignKeyViolation(err) {
		return oops.Code("CATEGORY_NOT_FOUND").With("category_id", f.CategoryID).Wrap(catalog.ErrNotFound)
	}
	if err != nil {
		return oops.Code("FEED_CREATE_FAILED").With("category_id", f.CategoryID).Wrap(err)
	}
	return nil
}

// Get retrieves a feed by id.
func (r *FeedRepository) Get(ctx context.Context, id int64) (*catalog.Feed, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+feedColumns+` FROM feeds WHERE id = $1`, id)
	f, err := scanFeed(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("FEED_NOT_FOUND").With("feed_id", id).Wrap(catalog.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("FEED_GET_FAILED").With("feed_id", id).Wrap(err)
	}
	return f, nil
}

// ListByCategory returns the category's feeds ordered by id.
func (r *FeedRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*catalog.Feed, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+feedColumns+` FROM feeds WHERE category_id = $1 ORDER BY id`, categoryID)
	if err != nil {
		return nil, oops.Code("FEED_LIST_FAILED").With("category_id", categoryID).Wrap(err)
	}
	defer rows.Close()

	var out []*catalog.Feed
	for rows.Next() {
		f, err := scanFeed(rows)
		if err != nil {
			return nil, oops.Code("FEED_LIST_FAILED").With("operation", "scan").Wrap(err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("FEED_LIST_FAILED").With("operation", "iterate").Wrap(err)
	}
	return out, nil
}

// Update writes name and URL and reloads the row.
func (r *FeedRepository) Update(ctx context.Context, f *catalog.Feed) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE feeds SET name = $2, feed_url = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+feedColumns,
		f.ID, f.Name, f.FeedURL).
		Scan(&f.ID, &f.CategoryID, &f.Name, &f.FeedURL, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return oops.Code("FEED_NOT_FOUND").With("feed_id", f.ID).Wrap(catalog.ErrNotFound)
	}
	if err != nil {
		return oops.Code("FEED_UPDATE_FAILED").With("feed_id", f.ID).Wrap(err)
	}
	return nil
}

// Delete removes the feed.
func (r *FeedRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM feeds WHERE id = $1`, id)
	if err != nil {
		return oops.Code("FEED_DELETE_FAILED").With("feed_id", id).Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return oops.Code("FEED_NOT_FOUND").With("feed_id", id).Wrap(catalog.ErrNotFound)
	}
	return nil
}

func scanFeed(row pgx.Row) (*catalog.Feed, error) {
	var f catalog.Feed
	if err := row.Scan(&f.ID, &f.CategoryID, &f.Name, &f.FeedURL, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
