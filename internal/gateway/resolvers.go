// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package gateway

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/graphql-go/graphql"

	"github.com/contentone/contentone/internal/auth"
	"github.com/contentone/contentone/internal/catalog"
	"github.com/contentone/contentone/internal/observability"
	"github.com/contentone/contentone/pkg/errutil"
)

// Messages surfaced as GraphQL errors.
var (
	ErrNotAuthenticated = errors.New("User is not authenticated")
	ErrInternal         = errors.New("internal server error")
)

// Auth event results.
const (
	resultOK       = "ok"
	resultRejected = "rejected"
	resultError    = "error"
)

// requestState is shared by the resolvers of one request.
type requestState struct {
	session     auth.Session
	fieldErrors atomic.Bool
}

type stateKey struct{}

func withState(ctx context.Context, st *requestState) context.Context {
	return context.WithValue(ctx, stateKey{}, st)
}

func stateFrom(ctx context.Context) *requestState {
	st, _ := ctx.Value(stateKey{}).(*requestState)
	return st
}

type resolvers struct {
	auth    *auth.Service
	catalog *catalog.Service
	metrics *observability.Metrics
	logger  *slog.Logger
}

// session returns the request's session. Every request through the
// handler carries one; the error covers direct schema execution.
func (r *resolvers) session(ctx context.Context) (auth.Session, error) {
	st := stateFrom(ctx)
	if st == nil || st.session == nil {
		return nil, ErrNotAuthenticated
	}
	return st.session, nil
}

// userID runs the session guard.
func (r *resolvers) userID(ctx context.Context) (int64, error) {
	sess, err := r.session(ctx)
	if err != nil {
		return 0, err
	}
	id, err := auth.RequireUser(sess)
	if err != nil {
		return 0, ErrNotAuthenticated
	}
	return id, nil
}

// fail converts err into the error shown to clients. Anything other than a
// failed guard is logged and hidden.
func (r *resolvers) fail(ctx context.Context, field string, err error) error {
	if errors.Is(err, ErrNotAuthenticated) || errors.Is(err, auth.ErrUnauthenticated) {
		return ErrNotAuthenticated
	}
	errutil.LogErrorContext(ctx, r.logger, "graphql resolver failed", err, "field", field)
	return ErrInternal
}

func markFieldErrors(ctx context.Context, n int) {
	if n == 0 {
		return
	}
	if st := stateFrom(ctx); st != nil {
		st.fieldErrors.Store(true)
	}
}

func (r *resolvers) authEvent(event string, res *auth.UserResult, err error) {
	switch {
	case err != nil:
		r.metrics.AuthEvent(event, resultError)
	case res.OK():
		r.metrics.AuthEvent(event, resultOK)
	default:
		r.metrics.AuthEvent(event, resultRejected)
	}
}

func argInt(p graphql.ResolveParams, name string) int64 {
	v, _ := p.Args[name].(int)
	return int64(v)
}

func argString(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

// argOptionalString distinguishes an omitted argument from an empty one.
func argOptionalString(p graphql.ResolveParams, name string) *string {
	v, ok := p.Args[name].(string)
	if !ok {
		return nil
	}
	return &v
}

func userInput(p graphql.ResolveParams) auth.RegisterInput {
	opts, _ := p.Args["options"].(map[string]any)
	in := auth.RegisterInput{}
	in.Name, _ = opts["firstName"].(string)
	in.Email, _ = opts["email"].(string)
	in.Password, _ = opts["password"].(string)
	return in
}

func (r *resolvers) me(p graphql.ResolveParams) (any, error) {
	sess, err := r.session(p.Context)
	if err != nil {
		return nil, nil //nolint:nilnil // no session resolves to null
	}
	user, err := r.auth.Me(p.Context, sess)
	if err != nil {
		return nil, r.fail(p.Context, "me", err)
	}
	return userToWire(user), nil
}

func (r *resolvers) register(p graphql.ResolveParams) (any, error) {
	res, err := r.auth.Register(p.Context, userInput(p))
	r.authEvent("register", res, err)
	if err != nil {
		return nil, r.fail(p.Context, "register", err)
	}
	markFieldErrors(p.Context, len(res.Errors))
	return userResultToWire(res), nil
}

func (r *resolvers) login(p graphql.ResolveParams) (any, error) {
	sess, err := r.session(p.Context)
	if err != nil {
		return nil, r.fail(p.Context, "login", err)
	}
	in := userInput(p)
	res, err := r.auth.Login(p.Context, sess, in.Email, in.Password)
	r.authEvent("login", res, err)
	if err != nil {
		return nil, r.fail(p.Context, "login", err)
	}
	markFieldErrors(p.Context, len(res.Errors))
	return userResultToWire(res), nil
}

func (r *resolvers) logout(p graphql.ResolveParams) (any, error) {
	sess, err := r.session(p.Context)
	if err != nil {
		return false, nil
	}
	ok := r.auth.Logout(p.Context, sess)
	if ok {
		r.metrics.AuthEvent("logout", resultOK)
	} else {
		r.metrics.AuthEvent("logout", resultRejected)
	}
	return ok, nil
}

func (r *resolvers) forgotPassword(p graphql.ResolveParams) (any, error) {
	sent, err := r.auth.ForgotPassword(p.Context, argString(p, "email"))
	if err != nil {
		r.metrics.AuthEvent("forgot_password", resultError)
		return nil, r.fail(p.Context, "forgotPassword", err)
	}
	if sent {
		r.metrics.AuthEvent("forgot_password", resultOK)
	} else {
		r.metrics.AuthEvent("forgot_password", resultRejected)
	}
	return sent, nil
}

func (r *resolvers) updatePassword(p graphql.ResolveParams) (any, error) {
	res, err := r.auth.UpdatePassword(p.Context, argString(p, "token"), argString(p, "password"))
	r.authEvent("update_password", res, err)
	if err != nil {
		return nil, r.fail(p.Context, "updatePassword", err)
	}
	markFieldErrors(p.Context, len(res.Errors))
	return userResultToWire(res), nil
}

func (r *resolvers) readCategory(p graphql.ResolveParams) (any, error) {
	c, err := r.catalog.ReadCategory(p.Context, argInt(p, "id"))
	if err != nil {
		return nil, r.fail(p.Context, "readCategory", err)
	}
	return categoryToWire(c), nil
}

func (r *resolvers) readCategories(p graphql.ResolveParams) (any, error) {
	uid, err := r.userID(p.Context)
	if err != nil {
		return nil, err
	}
	cs, err := r.catalog.ReadCategories(p.Context, uid)
	if err != nil {
		return nil, r.fail(p.Context, "readCategories", err)
	}
	return categoriesToWire(cs), nil
}

func (r *resolvers) createCategory(p graphql.ResolveParams) (any, error) {
	uid, err := r.userID(p.Context)
	if err != nil {
		return nil, err
	}
	res, err := r.catalog.CreateCategory(p.Context, uid, argString(p, "name"), argString(p, "description"))
	if err != nil {
		return nil, r.fail(p.Context, "createCategory", err)
	}
	markFieldErrors(p.Context, len(res.Errors))
	return categoryResultToWire(res), nil
}

func (r *resolvers) updateCategory(p graphql.ResolveParams) (any, error) {
	uid, err := r.userID(p.Context)
	if err != nil {
		return nil, err
	}
	res, err := r.catalog.UpdateCategory(p.Context, uid, argInt(p, "id"), argString(p, "name"), argString(p, "description"))
	if err != nil {
		return nil, r.fail(p.Context, "updateCategory", err)
	}
	markFieldErrors(p.Context, len(res.Errors))
	return categoryResultToWire(res), nil
}

func (r *resolvers) deleteCategory(p graphql.ResolveParams) (any, error) {
	uid, err := r.userID(p.Context)
	if err != nil {
		return nil, err
	}
	res, err := r.catalog.DeleteCategory(p.Context, uid, argInt(p, "id"))
	if err != nil {
		return nil, r.fail(p.Context, "deleteCategory", err)
	}
	return deleteResultToWire(res), nil
}

func (r *resolvers) readFeed(p graphql.ResolveParams) (any, error) {
	f, err := r.catalog.ReadFeed(p.Context, argInt(p, "id"))
	if err != nil {
		return nil, r.fail(p.Context, "readFeed", err)
	}
	return feedToWire(f), nil
}

func (r *resolvers) readFeeds(p graphql.ResolveParams) (any, error) {
	uid, err := r.userID(p.Context)
	if err != nil {
		return nil, err
	}
	res, err := r.catalog.ReadFeeds(p.Context, uid, argInt(p, "categoryId"))
	if err != nil {
		return nil, r.fail(p.Context, "readFeeds", err)
	}
	markFieldErrors(p.Context, len(res.Errors))
	return feedsResultToWire(res), nil
}

func (r *resolvers) createFeed(p graphql.ResolveParams) (any, error) {
	uid, err := r.userID(p.Context)
	if err != nil {
		return nil, err
	}
	res, err := r.catalog.CreateFeed(p.Context, uid, argString(p, "name"), argString(p, "feedUrl"), argInt(p, "categoryId"))
	if err != nil {
		return nil, r.fail(p.Context, "createFeed", err)
	}
	markFieldErrors(p.Context, len(res.Errors))
	return feedResultToWire(res), nil
}

func (r *resolvers) updateFeed(p graphql.ResolveParams) (any, error) {
	uid, err := r.userID(p.Context)
	if err != nil {
		return nil, err
	}
	res, err := r.catalog.UpdateFeed(p.Context, uid, argInt(p, "id"), argOptionalString(p, "name"), argOptionalString(p, "feedUrl"))
	if err != nil {
		return nil, r.fail(p.Context, "updateFeed", err)
	}
	markFieldErrors(p.Context, len(res.Errors))
	return feedResultToWire(res), nil
}

func (r *resolvers) deleteFeed(p graphql.ResolveParams) (any, error) {
	uid, err := r.userID(p.Context)
	if err != nil {
		return nil, err
	}
	ok, err := r.catalog.DeleteFeed(p.Context, uid, argInt(p, "id"))
	if err != nil {
		return nil, r.fail(p.Context, "deleteFeed", err)
	}
	return ok, nil
}
