// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package gateway

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/samber/oops"

	"github.com/contentone/contentone/internal/auth"
	"github.com/contentone/contentone/internal/catalog"
	"github.com/contentone/contentone/internal/observability"
	"github.com/contentone/contentone/internal/websession"
)

// Path is where the API is mounted.
const Path = "/graphql"

// Options configures the HTTP surface.
type Options struct {
	CookieName  string
	CORSOrigins []string
	// TrustProxy takes the client address from X-Forwarded-For and
	// X-Real-IP. Enable only behind a proxy that sets them.
	TrustProxy bool
}

// Deps are the services the API is built on. Metrics and Logger may be nil.
type Deps struct {
	Auth     *auth.Service
	Catalog  *catalog.Service
	Sessions *websession.Store
	Metrics  *observability.Metrics
	Logger   *slog.Logger
}

// NewHandler builds the GraphQL handler without any middleware.
func NewHandler(opts Options, deps Deps) (*Handler, error) {
	if deps.Auth == nil || deps.Catalog == nil || deps.Sessions == nil {
		return nil, oops.Code("GATEWAY_CONFIG_INVALID").Errorf("auth, catalog and session store are required")
	}
	if opts.CookieName == "" {
		return nil, oops.Code("GATEWAY_CONFIG_INVALID").Errorf("cookie name is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	schema, err := newSchema(&resolvers{
		auth:    deps.Auth,
		catalog: deps.Catalog,
		metrics: deps.Metrics,
		logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	return &Handler{
		schema:     schema,
		sessions:   deps.Sessions,
		cookieName: opts.CookieName,
		metrics:    deps.Metrics,
		logger:     logger,
		tracer:     newTracer(),
	}, nil
}

// NewRouter mounts the GraphQL handler behind the request middleware.
func NewRouter(opts Options, deps Deps) (http.Handler, error) {
	h, err := NewHandler(opts, deps)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(requestID)
	if opts.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(logRequests(h.logger))
	r.Use(countResponses(deps.Metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Method(http.MethodGet, Path, h)
	r.With(chimiddleware.AllowContentType("application/json")).Method(http.MethodPost, Path, h)
	return r, nil
}
