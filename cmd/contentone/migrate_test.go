// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentone/contentone/internal/store"
	"github.com/contentone/contentone/pkg/errutil"
)

type fakeMigrator struct {
	calls  []string
	steps  int
	forced int
	status *store.Status
	err    error
	closed bool
}

func (f *fakeMigrator) Up() error   { f.calls = append(f.calls, "up"); return f.err }
func (f *fakeMigrator) Down() error { f.calls = append(f.calls, "down"); return f.err }

func (f *fakeMigrator) Steps(n int) error {
	f.calls = append(f.calls, "steps")
	f.steps = n
	return f.err
}

func (f *fakeMigrator) Force(v int) error {
	f.calls = append(f.calls, "force")
	f.forced = v
	return f.err
}

func (f *fakeMigrator) Status() (*store.Status, error) {
	f.calls = append(f.calls, "status")
	return f.status, f.err
}

func (f *fakeMigrator) Close() error {
	f.closed = true
	return nil
}

func runMigrate(t *testing.T, m *fakeMigrator, args ...string) (string, error) {
	t.Helper()
	isolateConfig(t)

	var gotURL string
	cmd := newMigrateCmdWithDeps(&MigrateDeps{
		MigratorFactory: func(url string) (Migrator, error) {
			gotURL = url
			return m, nil
		},
	})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--database-url", "postgres://u:p@db:5432/app"))

	err := cmd.Execute()
	if len(m.calls) > 0 {
		assert.Equal(t, "postgres://u:p@db:5432/app", gotURL)
		assert.True(t, m.closed, "migrator is closed")
	}
	return buf.String(), err
}

func TestMigrate_Up(t *testing.T) {
	m := &fakeMigrator{}
	out, err := runMigrate(t, m, "up")
	require.NoError(t, err)
	assert.Equal(t, []string{"up"}, m.calls)
	assert.Contains(t, out, "Migrations applied")
}

func TestMigrate_Down(t *testing.T) {
	t.Run("one step by default", func(t *testing.T) {
		m := &fakeMigrator{}
		_, err := runMigrate(t, m, "down")
		require.NoError(t, err)
		assert.Equal(t, -1, m.steps)
	})

	t.Run("explicit steps", func(t *testing.T) {
		m := &fakeMigrator{}
		_, err := runMigrate(t, m, "down", "--steps", "2")
		require.NoError(t, err)
		assert.Equal(t, -2, m.steps)
	})

	t.Run("all", func(t *testing.T) {
		m := &fakeMigrator{}
		_, err := runMigrate(t, m, "down", "--all")
		require.NoError(t, err)
		assert.Equal(t, []string{"down"}, m.calls)
	})

	t.Run("zero steps is rejected", func(t *testing.T) {
		m := &fakeMigrator{}
		_, err := runMigrate(t, m, "down", "--steps", "0")
		errutil.AssertErrorCode(t, err, "INVALID_STEPS")
		assert.Empty(t, m.calls)
	})
}

func TestMigrate_Status(t *testing.T) {
	m := &fakeMigrator{status: &store.Status{
		Version: 1,
		Applied: []store.Migration{{Version: 1, Name: "000001_create_users"}},
		Pending: []store.Migration{{Version: 2, Name: "000002_create_catalog"}},
	}}
	out, err := runMigrate(t, m, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Version: 1")
	assert.Contains(t, out, "[applied] 000001 create_users")
	assert.Contains(t, out, "[pending] 000002 create_catalog")
}

func TestMigrate_Force(t *testing.T) {
	m := &fakeMigrator{}
	out, err := runMigrate(t, m, "force", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, m.forced)
	assert.Contains(t, out, "Forced version 3")

	_, err = runMigrate(t, &fakeMigrator{}, "force", "three")
	errutil.AssertErrorCode(t, err, "INVALID_VERSION")
}

func TestMigrate_ErrorsPropagate(t *testing.T) {
	boom := errors.New("locked")
	m := &fakeMigrator{err: boom}
	_, err := runMigrate(t, m, "up")
	assert.ErrorIs(t, err, boom)
	assert.True(t, m.closed)
}
