package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arjun/opsdesk/internal/dateparse"
	"github.com/arjun/opsdesk/internal/output"
)

// addDateFlags registers the shared date flags used by the dated
// reports. --date accepts "today", "yesterday", "-7d", a day name, or
// an exact date, and overrides the numeric triple.
func addDateFlags(fs *pflag.FlagSet) {
	now := time.Now()
	fs.String("date", "", `report date ("today", "yesterday", "-7d", "monday", "2026-08-15")`)
	fs.Int("day", now.Day(), "day of month")
	fs.Int("month", int(now.Month()), "month (1-12)")
	fs.Int("year", now.Year(), "four-digit year")
}

func dateFromFlags(fs *pflag.FlagSet) (day, month, year int, err error) {
	if date, _ := fs.GetString("date"); date != "" {
		return dateparse.ParseDay(date)
	}
	day, _ = fs.GetInt("day")
	month, _ = fs.GetInt("month")
	year, _ = fs.GetInt("year")
	return day, month, year, nil
}

var reportsCmd = &cobra.Command{
	Use:     "reports",
	Short:   "Dated transaction reports",
	GroupID: "reports",
}

var reportsRefundsCmd = &cobra.Command{
	Use:   "refunds",
	Short: "Refund report for a given day",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		day, month, year, err := dateFromFlags(cmd.Flags())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		details, err := client.RefundDetails(day, month, year)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return output.JSON(details)
		}

		if len(details) == 0 {
			output.Info("No refunds on %04d-%02d-%02d.", year, month, day)
			return nil
		}
		for _, d := range details {
			output.Info("%s  %s  refund %s  payout %s  %s",
				d.LedgerID, d.OwnerID, d.RefundAmount, d.Payout, d.InsertedOn)
		}
		return nil
	},
}

var reportsUtilityCmd = &cobra.Command{
	Use:   "utility",
	Short: "Utility transaction report for a given day",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		day, month, year, err := dateFromFlags(cmd.Flags())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		details, err := client.UtilityDetails(day, month, year)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return output.JSON(details)
		}

		if len(details) == 0 {
			output.Info("No utility transactions on %04d-%02d-%02d.", year, month, day)
			return nil
		}
		for _, d := range details {
			output.Info("%s  %s  %s  %s  %s",
				d.LedgerID, d.ProviderName, d.Number, d.Amount, d.Status)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{reportsRefundsCmd, reportsUtilityCmd} {
		addDateFlags(c.Flags())
		c.Flags().Bool("json", false, "output as JSON")
		reportsCmd.AddCommand(c)
	}
	rootCmd.AddCommand(reportsCmd)
}
