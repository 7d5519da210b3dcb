package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arjun/opsdesk/internal/output"
)

var recoverCmd = &cobra.Command{
	Use:     "recover <ledger-id>",
	Short:   "Re-initiate a stuck transaction by ledger id",
	GroupID: "vendors",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		ledgerID := args[0]
		if err := client.RecoverTransaction(ledgerID); err != nil {
			output.Error("%v", err)
			return err
		}

		log := openAuditLog()
		if log != nil {
			log.RecordAction("recover", "ledger/"+ledgerID, "success", "")
			log.Close()
		}

		output.Success("Transaction %s re-initiated", ledgerID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recoverCmd)
}
