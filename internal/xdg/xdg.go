// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

// Package xdg resolves ContentOne's XDG Base Directory paths.
package xdg

import (
	"os"
	"path/filepath"
)

const appName = "contentone"

// ConfigFileName is the name of the optional config file in ConfigDir.
const ConfigFileName = "config.yaml"

// ConfigDir returns $XDG_CONFIG_HOME/contentone, or ~/.config/contentone.
func ConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, appName)
}

// DefaultConfigFile returns the config file path if the file exists, or ""
// when there is none.
func DefaultConfigFile() string {
	path := filepath.Join(ConfigDir(), ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
