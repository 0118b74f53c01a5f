// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentone/contentone/pkg/errutil"
)

// isolate points XDG at an empty directory so a developer's own config
// file cannot leak into tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, ":4000", cfg.HTTP.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "qid", cfg.Session.CookieName)
	assert.Equal(t, 87600*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, 72*time.Hour, cfg.Reset.TokenTTL)
	assert.Equal(t, "http://localhost:3000/auth/update-password/", cfg.Reset.LinkBase)
	assert.Equal(t, "log", cfg.Mail.Driver)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)
	path := writeFile(t, `
http:
  addr: ":5000"
  cors_origins:
    - https://app.example.com
metrics:
  addr: ":9200"
reset:
  token_ttl: 1h
log:
  format: text
`)
	t.Setenv("CONTENTONE_METRICS__ADDR", ":9300")
	t.Setenv("CONTENTONE_SESSION__COOKIE_NAME", "sid")
	t.Setenv("CONTENTONE_HTTP__TRUST_PROXY", "true")

	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.String("addr", ":4000", "")
	fs.String("log-format", "json", "")
	fs.String("unrelated", "", "")
	require.NoError(t, fs.Parse([]string{"--addr", ":6000"}))

	cfg, err := Load(LoadOptions{File: path, Flags: fs})
	require.NoError(t, err)

	assert.Equal(t, ":6000", cfg.HTTP.Addr, "changed flag beats file")
	assert.Equal(t, "text", cfg.Log.Format, "unchanged flag default does not beat file")
	assert.Equal(t, ":9300", cfg.Metrics.Addr, "env beats file")
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.True(t, cfg.HTTP.TrustProxy)
	assert.Equal(t, time.Hour, cfg.Reset.TokenTTL)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.HTTP.CORSOrigins)
}

func TestLoad_XDGDefaultFile(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	dir := filepath.Join(base, "contentone")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("http:\n  addr: \":7000\"\n"), 0o600))

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.HTTP.Addr)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		isolate(t)
		_, err := Load(LoadOptions{File: filepath.Join(t.TempDir(), "nope.yaml")})
		errutil.AssertErrorCode(t, err, "CONFIG_LOAD_FAILED")
		errutil.AssertErrorContext(t, err, "source", "file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		isolate(t)
		_, err := Load(LoadOptions{File: writeFile(t, "http: [\n")})
		errutil.AssertErrorCode(t, err, "CONFIG_LOAD_FAILED")
	})

	t.Run("invalid value from env", func(t *testing.T) {
		isolate(t)
		t.Setenv("CONTENTONE_LOG__FORMAT", "xml")
		_, err := Load(LoadOptions{})
		errutil.AssertErrorCode(t, err, "CONFIG_INVALID")
	})
}

func validConfig(t *testing.T) *Config {
	t.Helper()
	isolate(t)
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"unknown env", func(c *Config) { c.Env = "staging" }, ""},
		{"short secret", func(c *Config) { c.Session.Secret = "short" }, ""},
		{"bad same site", func(c *Config) { c.Session.SameSite = "sometimes" }, ""},
		{"zero ttl", func(c *Config) { c.Reset.TokenTTL = 0 }, ""},
		{"bad link base", func(c *Config) { c.Reset.LinkBase = "not a url" }, ""},
		{"postgres without url", func(c *Config) { c.Database.URL = "" }, "database.url"},
		{"redis without url", func(c *Config) { c.Redis.URL = "" }, "redis.url"},
		{"smtp without host", func(c *Config) { c.Mail.Driver = "smtp" }, "mail.host"},
		{"same site none needs secure", func(c *Config) { c.Session.SameSite = "none" }, "session.secure"},
		{"production with dev secret", func(c *Config) {
			c.Env = EnvProduction
			c.Mail = MailConfig{Driver: "smtp", Host: "smtp.example.com", From: "a@example.com", TLS: "mandatory"}
		}, "session.secret"},
		{"production with memory storage", func(c *Config) {
			c.Env = EnvProduction
			c.Session.Secret = "a-real-production-secret-of-sufficient-length"
			c.Storage.Driver = "memory"
		}, "memory storage"},
		{"production with log mailer", func(c *Config) {
			c.Env = EnvProduction
			c.Session.Secret = "a-real-production-secret-of-sufficient-length"
		}, "mail.driver"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			errutil.AssertErrorCode(t, err, "CONFIG_INVALID")
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}

	t.Run("production ready", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Env = EnvProduction
		cfg.Session.Secret = "a-real-production-secret-of-sufficient-length"
		cfg.Session.Secure = true
		cfg.Mail = MailConfig{Driver: "smtp", Host: "smtp.example.com", Port: 587, From: "noreply@example.com", TLS: "mandatory"}
		require.NoError(t, cfg.Validate())
		assert.True(t, cfg.IsProduction())
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "session.cookie_name", envKey("CONTENTONE_SESSION__COOKIE_NAME"))
	assert.Equal(t, "env", envKey("CONTENTONE_ENV"))
}
