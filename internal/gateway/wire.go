// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package gateway

import (
	"strconv"

	"github.com/contentone/contentone/internal/auth"
	"github.com/contentone/contentone/internal/catalog"
)

// The functions below turn domain values into the maps the default
// graphql-go resolver reads. A nil input maps to a nil interface so the
// field resolves to null rather than an empty object.

func userToWire(u *auth.User) any {
	if u == nil {
		return nil
	}
	return map[string]any{
		"id":        u.ID,
		"firstName": u.Name,
		"email":     u.Email,
	}
}

func fieldErrorsToWire(errs []auth.FieldError) any {
	if len(errs) == 0 {
		return nil
	}
	out := make([]any, 0, len(errs))
	for _, e := range errs {
		out = append(out, map[string]any{"field": e.Field, "message": e.Message})
	}
	return out
}

func userResultToWire(r *auth.UserResult) any {
	if r == nil {
		return nil
	}
	return map[string]any{
		"user":   userToWire(r.User),
		"errors": fieldErrorsToWire(r.Errors),
	}
}

func categoryToWire(c *catalog.Category) any {
	if c == nil {
		return nil
	}
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"description": c.Description,
		"userId":      c.UserID,
	}
}

func categoriesToWire(cs []*catalog.Category) any {
	out := make([]any, 0, len(cs))
	for _, c := range cs {
		out = append(out, categoryToWire(c))
	}
	return map[string]any{"categories": out}
}

func categoryResultToWire(r *catalog.CategoryResult) any {
	if r == nil {
		return nil
	}
	return map[string]any{
		"category": categoryToWire(r.Category),
		"errors":   fieldErrorsToWire(r.Errors),
	}
}

func deleteResultToWire(r *catalog.DeleteResult) any {
	if r == nil {
		return nil
	}
	return map[string]any{"result": r.Result, "message": r.Message}
}

// Feed ids use the ID scalar on the wire.
func feedToWire(f *catalog.Feed) any {
	if f == nil {
		return nil
	}
	return map[string]any{
		"id":         strconv.FormatInt(f.ID, 10),
		"name":       f.Name,
		"feedUrl":    f.FeedURL,
		"categoryId": f.CategoryID,
	}
}

func feedResultToWire(r *catalog.FeedResult) any {
	if r == nil {
		return nil
	}
	return map[string]any{
		"feed":   feedToWire(r.Feed),
		"errors": fieldErrorsToWire(r.Errors),
	}
}

func feedsResultToWire(r *catalog.FeedsResult) any {
	if r == nil {
		return nil
	}
	var feeds any
	if r.Feeds != nil {
		list := make([]any, 0, len(r.Feeds))
		for _, f := range r.Feeds {
			list = append(list, feedToWire(f))
		}
		feeds = list
	}
	var notices any
	if len(r.Notices) > 0 {
		list := make([]any, 0, len(r.Notices))
		for _, n := range r.Notices {
			list = append(list, map[string]any{"message": n.Message})
		}
		notices = list
	}
	return map[string]any{
		"category": categoryToWire(r.Category),
		"feeds":    feeds,
		"errors":   fieldErrorsToWire(r.Errors),
		"error":    notices,
	}
}
