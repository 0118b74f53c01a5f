// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"

	"github.com/contentone/contentone/internal/auth"
)

// Service implements category and feed operations. Callers resolve the
// acting user with auth.RequireUser before calling guarded methods.
type Service struct {
	categories CategoryRepository
	feeds      FeedRepository
	validate   *validator.Validate
	logger     *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

// NewService creates a catalog service.
func NewService(categories CategoryRepository, feeds FeedRepository, opts ...ServiceOption) (*Service, error) {
	if categories == nil {
		return nil, oops.Errorf("category repository is required")
	}
	if feeds == nil {
		return nil, oops.Errorf("feed repository is required")
	}
	s := &Service{
		categories: categories,
		feeds:      feeds,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func categoryFailure(field, msg string) *CategoryResult {
	return &CategoryResult{Errors: []auth.FieldError{{Field: field, Message: msg}}}
}

func feedFailure(field, msg string) *FeedResult {
	return &FeedResult{Errors: []auth.FieldError{{Field: field, Message: msg}}}
}

// ownedCategory returns the category if userID owns it, nil if it is
// missing or someone else's.
func (s *Service) ownedCategory(ctx context.Context, userID, id int64) (*Category, error) {
	c, err := s.categories.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, nil
	}
	return c, nil
}

// ReadCategory returns the category with id, or nil. No session is required.
func (s *Service) ReadCategory(ctx context.Context, id int64) (*Category, error) {
	c, err := s.categories.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, oops.Code("CATEGORY_READ_FAILED").With("category_id", id).Wrap(err)
	}
	return c, nil
}

// ReadCategories lists userID's categories ordered by id.
func (s *Service) ReadCategories(ctx context.Context, userID int64) ([]*Category, error) {
	list, err := s.categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, oops.Code("CATEGORY_LIST_FAILED").With("user_id", userID).Wrap(err)
	}
	return list, nil
}

// CreateCategory files a new category for userID. A category with the same
// name and description is rejected.
func (s *Service) CreateCategory(ctx context.Context, userID int64, name, description string) (*CategoryResult, error) {
	_, err := s.categories.Find(ctx, userID, name, description)
	if err == nil {
		return categoryFailure("name", MsgCategoryExists), nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, oops.Code("CATEGORY_CREATE_FAILED").With("operation", "find duplicate").With("user_id", userID).Wrap(err)
	}

	c := &Category{UserID: userID, Name: name, Description: description}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, oops.Code("CATEGORY_CREATE_FAILED").With("operation", "insert").With("user_id", userID).Wrap(err)
	}
	s.logger.InfoContext(ctx, "category created", "user_id", userID, "category_id", c.ID)
	return &CategoryResult{Category: c}, nil
}

// UpdateCategory renames one of userID's categories.
func (s *Service) UpdateCategory(ctx context.Context, userID, id int64, name, description string) (*CategoryResult, error) {
	c, err := s.ownedCategory(ctx, userID, id)
	if err != nil {
		return nil, oops.Code("CATEGORY_UPDATE_FAILED").With("category_id", id).Wrap(err)
	}
	if c == nil {
		return categoryFailure("id", MsgCategoryNotFound), nil
	}

	c.Name = name
	c.Description = description
	if err := s.categories.Update(ctx, c); err != nil {
		if errors.Is(err, ErrNotFound) {
			return categoryFailure("id", MsgCategoryNotFound), nil
		}
		return nil, oops.Code("CATEGORY_UPDATE_FAILED").With("category_id", id).Wrap(err)
	}
	return &CategoryResult{Category: c}, nil
}

// DeleteCategory removes one of userID's categories and its feeds.
func (s *Service) DeleteCategory(ctx context.Context, userID, id int64) (*DeleteResult, error) {
	c, err := s.categories.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return &DeleteResult{Message: MsgCategoryGone}, nil
	}
	if err != nil {
		return nil, oops.Code("CATEGORY_DELETE_FAILED").With("category_id", id).Wrap(err)
	}
	if c.UserID != userID {
		return &DeleteResult{Message: MsgUnauthorized}, nil
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return &DeleteResult{Message: MsgCategoryGone}, nil
		}
		return nil, oops.Code("CATEGORY_DELETE_FAILED").With("category_id", id).Wrap(err)
	}
	s.logger.InfoContext(ctx, "category deleted", "user_id", userID, "category_id", id)
	return &DeleteResult{Result: true, Message: MsgCategoryDeleted}, nil
}

// ReadFeed returns the feed with id, or nil. No session is required.
func (s *Service) ReadFeed(ctx context.Context, id int64) (*Feed, error) {
	f, err := s.feeds.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, oops.Code("FEED_READ_FAILED").With("feed_id", id).Wrap(err)
	}
	return f, nil
}

// ReadFeeds lists the feeds of one of userID's categories.
func (s *Service) ReadFeeds(ctx context.Context, userID, categoryID int64) (*FeedsResult, error) {
	c, err := s.ownedCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, oops.Code("FEED_LIST_FAILED").With("category_id", categoryID).Wrap(err)
	}
	if c == nil {
		return &FeedsResult{Errors: []auth.FieldError{{Field: "categoryId", Message: MsgCategoryNotFoundFeed}}}, nil
	}

	feeds, err := s.feeds.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, oops.Code("FEED_LIST_FAILED").With("category_id", categoryID).Wrap(err)
	}
	res := &FeedsResult{Category: c, Feeds: feeds}
	if len(feeds) == 0 {
		res.Notices = []Notice{{Message: MsgNoData}}
	}
	return res, nil
}

// CreateFeed files a feed under one of userID's categories.
func (s *Service) CreateFeed(ctx context.Context, userID int64, name, feedURL string, categoryID int64) (*FeedResult, error) {
	c, err := s.ownedCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, oops.Code("FEED_CREATE_FAILED").With("category_id", categoryID).Wrap(err)
	}
	if c == nil {
		return feedFailure("categoryId", MsgCategoryNotFound), nil
	}
	if !s.validURL(feedURL) {
		return feedFailure("feedUrl", MsgFeedURLInvalid), nil
	}

	f := &Feed{CategoryID: categoryID, Name: name, FeedURL: feedURL}
	if err := s.feeds.Create(ctx, f); err != nil {
		return nil, oops.Code("FEED_CREATE_FAILED").With("category_id", categoryID).Wrap(err)
	}
	s.logger.InfoContext(ctx, "feed created", "user_id", userID, "feed_id", f.ID)
	return &FeedResult{Feed: f}, nil
}

// UpdateFeed changes the non-nil fields of one of userID's feeds.
func (s *Service) UpdateFeed(ctx context.Context, userID, id int64, name, feedURL *string) (*FeedResult, error) {
	f, err := s.ownedFeed(ctx, userID, id)
	if err != nil {
		return nil, oops.Code("FEED_UPDATE_FAILED").With("feed_id", id).Wrap(err)
	}
	if f == nil {
		return feedFailure("name", MsgFeedNotFound), nil
	}

	if name != nil {
		f.Name = *name
	}
	if feedURL != nil {
		if !s.validURL(*feedURL) {
			return feedFailure("feedUrl", MsgFeedURLInvalid), nil
		}
		f.FeedURL = *feedURL
	}
	if err := s.feeds.Update(ctx, f); err != nil {
		if errors.Is(err, ErrNotFound) {
			return feedFailure("name", MsgFeedNotFound), nil
		}
		return nil, oops.Code("FEED_UPDATE_FAILED").With("feed_id", id).Wrap(err)
	}
	return &FeedResult{Feed: f}, nil
}

// DeleteFeed removes one of userID's feeds. It reports false when the feed
// is missing or belongs to someone else.
func (s *Service) DeleteFeed(ctx context.Context, userID, id int64) (bool, error) {
	f, err := s.ownedFeed(ctx, userID, id)
	if err != nil {
		return false, oops.Code("FEED_DELETE_FAILED").With("feed_id", id).Wrap(err)
	}
	if f == nil {
		return false, nil
	}
	if err := s.feeds.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, oops.Code("FEED_DELETE_FAILED").With("feed_id", id).Wrap(err)
	}
	return true, nil
}

func (s *Service) ownedFeed(ctx context.Context, userID, id int64) (*Feed, error) {
	f, err := s.feeds.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c, err := s.ownedCategory(ctx, userID, f.CategoryID)
	if err != nil || c == nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) validURL(raw string) bool {
	return s.validate.Var(raw, "required,http_url") == nil
}
