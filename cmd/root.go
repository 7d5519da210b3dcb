package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var version string

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "opsdesk",
	Short: "Back-office console for offline recharge reconciliation",
	Long: `opsdesk - A back-office CLI for the payments admin API.

Operators reconcile offline recharge records (lock, update, refund),
pull dated refund and utility reports, and manage vendor funding
without leaving the terminal.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "records", Title: "Record Commands:"},
		&cobra.Group{ID: "reports", Title: "Report Commands:"},
		&cobra.Group{ID: "vendors", Title: "Vendor Commands:"},
		&cobra.Group{ID: "session", Title: "Session Commands:"},
	)

	rootCmd.SetHelpCommandGroupID("session")
	rootCmd.SetCompletionCommandGroupID("session")
}
