package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mentorcast",
	Short: "Session change reconciliation for mentoring cohorts",
	Long: `Applies reschedules, mentor reassignments, swaps and detail edits to cohort
schedule tables, keeps their online meetings in step and notifies everyone involved.

Commands: serve (HTTP API and announcer), announce (one announcement pass).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(announceCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
