// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/contentone/contentone/internal/auth"
	authmemory "github.com/contentone/contentone/internal/auth/memory"
	authpostgres "github.com/contentone/contentone/internal/auth/postgres"
	"github.com/contentone/contentone/internal/catalog"
	catalogmemory "github.com/contentone/contentone/internal/catalog/memory"
	catalogpostgres "github.com/contentone/contentone/internal/catalog/postgres"
	"github.com/contentone/contentone/internal/config"
	"github.com/contentone/contentone/internal/gateway"
	"github.com/contentone/contentone/internal/logging"
	"github.com/contentone/contentone/internal/notify"
	"github.com/contentone/contentone/internal/observability"
	"github.com/contentone/contentone/internal/sessionstore"
	"github.com/contentone/contentone/internal/websession"
)

// shutdownTimeout bounds graceful shutdown of both servers.
const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the GraphQL API server",
		Long: `Start the GraphQL API server and, when metrics.addr is set, the
metrics and health server. Settings come from the config file, CONTENTONE_*
environment variables and the flags below, later sources winning.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServeWithDeps(cmd.Context(), cmd, nil)
		},
	}

	defaults := config.Defaults()
	flags := cmd.Flags()
	flags.String("addr", defaults["http.addr"].(string), "API listen address")
	flags.String("metrics-addr", defaults["metrics.addr"].(string), "metrics/health HTTP address (empty = disabled)")
	flags.String("database-url", "", "PostgreSQL connection URL")
	flags.String("redis-url", "", "Redis connection URL")
	flags.String("storage", defaults["storage.driver"].(string), "repository driver (postgres or memory)")
	flags.String("session-store", defaults["session.store"].(string), "session store (redis or memory)")
	flags.String("log-format", defaults["log.format"].(string), "log format (json or text)")
	flags.String("log-level", defaults["log.level"].(string), "log level (debug, info, warn, error)")

	return cmd
}

// loadConfig reads configuration for cmd, honouring --config and any
// flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(config.LoadOptions{File: configFile, Flags: cmd.Flags()})
}

// runServeWithDeps starts the servers and blocks until a signal, a server
// failure or ctx cancellation. If deps is nil, defaults are used.
func runServeWithDeps(ctx context.Context, cmd *cobra.Command, deps *ServeDeps) error {
	if ctx == nil {
		ctx = context.Background()
	}
	deps = deps.withDefaults()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := logging.SetDefault(serviceName, version, logging.Options{
		Format: cfg.Log.Format,
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})
	logger.Info("starting api server",
		"env", cfg.Env,
		"addr", cfg.HTTP.Addr,
		"storage", cfg.Storage.Driver,
		"session_store", cfg.Session.Store,
		"mail", cfg.Mail.Driver,
	)

	a, err := buildApp(ctx, cfg, deps, logger)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.obs != nil {
		obsErrCh, err := a.obs.Start()
		if err != nil {
			return oops.With("operation", "start observability server").Wrap(err)
		}
		go monitorServerErrors(ctx, cancel, obsErrCh, "observability", logger)
	}

	apiErrCh, err := a.api.Start()
	if err != nil {
		a.stop(logger)
		return oops.With("operation", "start api server").Wrap(err)
	}
	go monitorServerErrors(ctx, cancel, apiErrCh, "api", logger)

	if deps.Ready != nil {
		deps.Ready(a.api.Addr())
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	cmd.Println("API server started on " + a.api.Addr())

	select {
	case sig := <-sigChan:
		logger.Info("received shutdown signal", "signal", sig)
	case <-ctx.Done():
		logger.Info("context cancelled, shutting down")
	}

	a.stop(logger)
	logger.Info("shutdown complete")
	return nil
}

// app is the assembled process.
type app struct {
	api     *gateway.Server
	obs     *observability.Server
	closers []func()
}

func (a *app) stop(logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.api.Stop(ctx); err != nil {
		logger.Warn("error stopping api server", "error", err)
	}
	if a.obs != nil {
		if err := a.obs.Stop(ctx); err != nil {
			logger.Warn("error stopping observability server", "error", err)
		}
	}
}

// close releases connections in reverse order of creation.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func buildApp(ctx context.Context, cfg *config.Config, deps *ServeDeps, logger *slog.Logger) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	var checks []observability.ReadinessChecker

	var (
		users      auth.UserRepository
		categories catalog.CategoryRepository
		feeds      catalog.FeedRepository
	)
	switch cfg.Storage.Driver {
	case "memory":
		logger.Warn("using in-memory repositories; data is lost on exit")
		db := catalogmemory.New()
		users, categories, feeds = authmemory.NewUserRepository(), db.Categories(), db.Feeds()
	default:
		pool, err := deps.DatabaseOpener(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		checks = append(checks, pool.Ping)
		users = authpostgres.NewUserRepository(pool)
		categories = catalogpostgres.NewCategoryRepository(pool)
		feeds = catalogpostgres.NewFeedRepository(pool)
	}

	var kv sessionstore.Store
	switch cfg.Session.Store {
	case "memory":
		logger.Warn("using in-memory session store; sessions are lost on exit")
		kv = sessionstore.NewMemory()
	default:
		rs, err := deps.RedisOpener(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() {
			if err := rs.Close(); err != nil {
				logger.Warn("error closing redis", "error", err)
			}
		})
		checks = append(checks, rs.Ping)
		kv = rs
	}

	var mailer notify.Sender
	switch cfg.Mail.Driver {
	case "smtp":
		if mailer, err = deps.MailerFactory(cfg.Mail, logger); err != nil {
			return nil, err
		}
	default:
		mailer = notify.NewLogSender(logger)
	}

	authSvc, err := auth.NewService(users, kv, auth.NewArgon2idHasher(), mailer,
		auth.WithLogger(logger),
		auth.WithResetLinkBase(cfg.Reset.LinkBase),
		auth.WithResetTokenTTL(cfg.Reset.TokenTTL),
	)
	if err != nil {
		return nil, err
	}
	catalogSvc, err := catalog.NewService(categories, feeds, catalog.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	sameSite, err := websession.ParseSameSite(cfg.Session.SameSite)
	if err != nil {
		return nil, err
	}
	sessions, err := websession.NewStore(kv, websession.CookieOptions{
		Domain:   cfg.Session.CookieDomain,
		MaxAge:   cfg.Session.MaxAge,
		Secure:   cfg.Session.Secure || cfg.IsProduction(),
		SameSite: sameSite,
	}, logger, []byte(cfg.Session.Secret))
	if err != nil {
		return nil, err
	}

	var metrics *observability.Metrics
	if cfg.Metrics.Addr != "" {
		a.obs = observability.NewServer(cfg.Metrics.Addr, readiness(checks), logger)
		metrics = a.obs.Metrics()
	}

	router, err := gateway.NewRouter(
		gateway.Options{
			CookieName:  cfg.Session.CookieName,
			CORSOrigins: cfg.HTTP.CORSOrigins,
			TrustProxy:  cfg.HTTP.TrustProxy,
		},
		gateway.Deps{
			Auth:     authSvc,
			Catalog:  catalogSvc,
			Sessions: sessions,
			Metrics:  metrics,
			Logger:   logger,
		},
	)
	if err != nil {
		return nil, err
	}
	a.api = gateway.NewServer(cfg.HTTP.Addr, router, logger)
	return a, nil
}

// readiness combines dependency pings; all must succeed.
func readiness(checks []observability.ReadinessChecker) observability.ReadinessChecker {
	return func(ctx context.Context) error {
		var errs []error
		for _, check := range checks {
			if err := check(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

// monitorServerErrors cancels ctx when a server reports a failure. It exits
// when the channel closes or ctx ends.
func monitorServerErrors(ctx context.Context, cancel context.CancelFunc, errCh <-chan error, serverName string, logger *slog.Logger) {
	select {
	case err, ok := <-errCh:
		if !ok {
			return
		}
		if err != nil {
			logger.Error("server error, triggering shutdown",
				"server", serverName,
				"error", err,
			)
			cancel()
		}
	case <-ctx.Done():
	}
}
