package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arjun/opsdesk/internal/audit"
	"github.com/arjun/opsdesk/internal/output"
	"github.com/arjun/opsdesk/internal/session"
)

var auditCmd = &cobra.Command{
	Use:     "audit",
	Short:   "Show recent actions taken from this machine",
	GroupID: "session",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := session.ConfigDir()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		log, err := audit.Open(dir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer log.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := log.Recent(limit)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return output.JSON(entries)
		}

		if len(entries) == 0 {
			output.Info("No actions recorded yet.")
			return nil
		}
		for _, e := range entries {
			output.Info("%-10s  %-8s  %-18s  %s  %s",
				output.FormatTimeAgo(e.At), e.Action, e.Target,
				output.FormatOutcome(e.Outcome), e.Message)
		}
		return nil
	},
}

func init() {
	auditCmd.Flags().Int("limit", 50, "maximum entries to show")
	auditCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(auditCmd)
}
