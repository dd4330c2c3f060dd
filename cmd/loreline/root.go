// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the Loreline CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loreline",
		Short: "Loreline - a text-driven adventure engine",
		Long: `Loreline is a text-driven adventure engine with multi-word command
resolution, fuzzy "did you mean" suggestions, context-sensitive
autocomplete, and in-session history recall.`,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(newPlayCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newHashPasswordCmd())

	return cmd
}
