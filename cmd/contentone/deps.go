// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package main

import (
	"context"
	"log/slog"

	"github.com/contentone/contentone/internal/config"
	"github.com/contentone/contentone/internal/notify"
	"github.com/contentone/contentone/internal/sessionstore"
	"github.com/contentone/contentone/internal/store"
)

// ServeDeps contains injectable dependencies for the serve command.
// All fields with nil values will use their default implementations.
type ServeDeps struct {
	// DatabaseOpener connects to PostgreSQL.
	// Default: store.Open with store.DefaultConnectOptions
	DatabaseOpener func(ctx context.Context, url string) (Database, error)

	// RedisOpener connects the session store to Redis.
	// Default: sessionstore.NewRedis
	RedisOpener func(ctx context.Context, url string) (RedisStore, error)

	// MailerFactory builds the reset-link sender for the smtp driver.
	// Default: notify.NewSMTPSender
	MailerFactory func(cfg config.MailConfig, logger *slog.Logger) (notify.Sender, error)

	// Ready, when set, receives the bound API address once serving.
	Ready func(apiAddr string)
}

// MigrateDeps contains injectable dependencies for the migrate command.
type MigrateDeps struct {
	// MigratorFactory opens a migrator for a database URL.
	// Default: store.NewMigrator
	MigratorFactory func(url string) (Migrator, error)
}

// Database wraps the methods used from *pgxpool.Pool.
type Database interface {
	store.Pool
	Ping(ctx context.Context) error
	Close()
}

// RedisStore wraps the methods used from *sessionstore.Redis.
type RedisStore interface {
	sessionstore.Store
	Ping(ctx context.Context) error
	Close() error
}

// Migrator wraps the methods used from *store.Migrator.
type Migrator interface {
	Up() error
	Down() error
	Steps(n int) error
	Force(version int) error
	Status() (*store.Status, error)
	Close() error
}

func (d *ServeDeps) withDefaults() *ServeDeps {
	out := ServeDeps{}
	if d != nil {
		out = *d
	}
	if out.DatabaseOpener == nil {
		out.DatabaseOpener = func(ctx context.Context, url string) (Database, error) {
			return store.Open(ctx, url, store.DefaultConnectOptions)
		}
	}
	if out.RedisOpener == nil {
		out.RedisOpener = func(ctx context.Context, url string) (RedisStore, error) {
			return sessionstore.NewRedis(ctx, url)
		}
	}
	if out.MailerFactory == nil {
		out.MailerFactory = func(cfg config.MailConfig, logger *slog.Logger) (notify.Sender, error) {
			return notify.NewSMTPSender(notify.SMTPConfig{
				Host:     cfg.Host,
				Port:     cfg.Port,
				Username: cfg.Username,
				Password: cfg.Password,
				From:     cfg.From,
				TLS:      cfg.TLS,
			}, logger)
		}
	}
	return &out
}

func (d *MigrateDeps) withDefaults() *MigrateDeps {
	out := MigrateDeps{}
	if d != nil {
		out = *d
	}
	if out.MigratorFactory == nil {
		out.MigratorFactory = func(url string) (Migrator, error) {
			return store.NewMigrator(url)
		}
	}
	return &out
}
