package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/arjun/opsdesk/internal/output"
)

var refundCmd = &cobra.Command{
	Use:     "refund <record-id>",
	Short:   "Refund a pending record's ledger entry",
	GroupID: "records",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recordID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			output.Error("invalid record id %q", args[0])
			return err
		}

		client, ctx, err := newClient()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		recs, err := client.ListOfflineRecords(ctx.OwnerID)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		for i := range recs {
			if recs[i].RecordID != recordID {
				continue
			}

			skipConfirm, _ := cmd.Flags().GetBool("yes")
			if !skipConfirm {
				confirmed := false
				prompt := huh.NewConfirm().
					Title(fmt.Sprintf("Refund record %d (%s, %s)?", recs[i].RecordID, recs[i].Number, recs[i].OperatorName)).
					Affirmative("Refund").
					Negative("Cancel").
					Value(&confirmed)
				if err := prompt.Run(); err != nil {
					return err
				}
				if !confirmed {
					output.Info("Aborted.")
					return nil
				}
			}

			log := openAuditLog()
			if log != nil {
				defer log.Close()
			}
			exec := newExecutor(client, ctx, log)

			outcome := exec.SubmitRefund(recs[i])
			if !outcome.OK {
				output.Error("%s", outcome.Message)
				return fmt.Errorf("%s", outcome.Message)
			}
			output.Success("%s", outcome.Message)
			return nil
		}

		output.Error("record %d not found in the pending list", recordID)
		return fmt.Errorf("record %d not found", recordID)
	},
}

func init() {
	refundCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(refundCmd)
}
