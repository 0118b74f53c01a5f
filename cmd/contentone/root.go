// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package main

import (
	"github.com/spf13/cobra"
)

// serviceName tags every log line.
const serviceName = "contentone"

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the ContentOne CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contentone",
		Short: "ContentOne - GraphQL API for users, categories and feeds",
		Long: `ContentOne serves a GraphQL API with cookie sessions, password
reset by email, and per-user categories of feed subscriptions.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (default: XDG_CONFIG_HOME/contentone/config.yaml)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
