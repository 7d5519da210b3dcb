package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/arjun/opsdesk/internal/output"
)

var vendorsCmd = &cobra.Command{
	Use:     "vendors",
	Short:   "Vendor identities and ledgers",
	GroupID: "vendors",
}

var vendorsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered vendors",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		vendors, err := client.VendorList()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return output.JSON(vendors)
		}

		if len(vendors) == 0 {
			output.Info("No vendors registered.")
			return nil
		}
		fmt.Print(output.SectionHeader("Vendors"))
		for _, v := range vendors {
			output.Info("%d  %s", v.OwnerID, v.VendorName)
		}
		return nil
	},
}

var vendorsLedgerCmd = &cobra.Command{
	Use:   "ledger <vendor-id>",
	Short: "Show a vendor's monthly ledger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vendorID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			output.Error("invalid vendor id %q", args[0])
			return err
		}

		client, _, err := newClient()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		month, _ := cmd.Flags().GetInt("month")
		year, _ := cmd.Flags().GetInt("year")

		entries, err := client.VendorLedger(vendorID, month, year)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return output.JSON(entries)
		}

		if len(entries) == 0 {
			output.Info("No ledger entries for %04d-%02d.", year, month)
			return nil
		}
		for _, e := range entries {
			output.Info("%s  %-6s  %10s  bal %10s  %s",
				e.LedgerID, e.TxnType, e.Amount, e.Balance, e.Description)
		}
		return nil
	},
}

func init() {
	vendorsListCmd.Flags().Bool("json", false, "output as JSON")

	now := time.Now()
	vendorsLedgerCmd.Flags().Int("month", int(now.Month()), "month (1-12)")
	vendorsLedgerCmd.Flags().Int("year", now.Year(), "four-digit year")
	vendorsLedgerCmd.Flags().Bool("json", false, "output as JSON")

	vendorsCmd.AddCommand(vendorsListCmd)
	vendorsCmd.AddCommand(vendorsLedgerCmd)
	rootCmd.AddCommand(vendorsCmd)
}
