package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arjun/opsdesk/internal/output"
	"github.com/arjun/opsdesk/internal/records"
)

var recordsCmd = &cobra.Command{
	Use:     "records",
	Short:   "Inspect pending offline records",
	GroupID: "records",
}

var recordsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List pending offline records",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		search, _ := cmd.Flags().GetString("search")
		sortBy, _ := cmd.Flags().GetString("sort")
		desc, _ := cmd.Flags().GetBool("reverse")
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		view := records.NewViewState(pageSize)
		view.SetSearch(search)
		if sortBy != "" {
			view.SortKey = records.SortKey(sortBy)
		}
		view.SortDesc = desc
		view.Page = page

		jsonOutput, _ := cmd.Flags().GetBool("json")
		visible := records.Project(recs, view)
		if jsonOutput {
			return output.JSON(visible)
		}

		if len(visible) == 0 {
			output.Info("No records on this page.")
			return nil
		}
		for i := range visible {
			output.Info("%s", output.FormatRecordShort(&visible[i]))
		}
		total := records.TotalPages(records.FilteredCount(recs, view), view.PageSize)
		output.Info("\npage %d/%d · %d matching", view.Page, total, records.FilteredCount(recs, view))
		return nil
	},
}

var recordsShowCmd = &cobra.Command{
	Use:   "show <record-id>",
	Short: "Show one record in detail",
	Args:  cobra.ExactArgs(1),
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
			if recs[i].RecordID == recordID {
				rendered, err := output.RenderMarkdown(output.RecordMarkdown(&recs[i]))
				if err != nil {
					return err
				}
				fmt.Println(rendered)
				return nil
			}
		}

		output.Error("record %d not found in the pending list", recordID)
		return fmt.Errorf("record %d not found", recordID)
	},
}

var recordsUpdateCmd = &cobra.Command{
	Use:   "update <record-id>",
	Short: "Lock a record and submit its reconciliation result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recordID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			output.Error("invalid record id %q", args[0])
			return err
		}

		confNumber, _ := cmd.Flags().GetString("conf-number")
		opRefID, _ := cmd.Flags().GetString("op-ref")
		if confNumber == "" {
			output.Error("--conf-number is required")
			return fmt.Errorf("--conf-number is required")
		}

		client, ctx, err := newClient()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		// The server lock must be held before an update is accepted
		if err := client.LockRecord(recordID, ctx.OwnerID); err != nil {
			output.Error("%v", err)
			return err
		}

		log := openAuditLog()
		if log != nil {
			defer log.Close()
		}
		exec := newExecutor(client, ctx, log)

		recs, err := client.ListOfflineRecords(ctx.OwnerID)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		for i := range recs {
			if recs[i].RecordID == recordID {
				outcome := exec.SubmitUpdate(recs[i], confNumber, opRefID)
				if !outcome.OK {
					output.Error("%s", outcome.Message)
					return fmt.Errorf("%s", outcome.Message)
				}
				output.Success("%s", outcome.Message)
				return nil
			}
		}

		output.Error("record %d not found in the pending list", recordID)
		return fmt.Errorf("record %d not found", recordID)
	},
}

func init() {
	recordsListCmd.Flags().String("search", "", "case-insensitive substring filter")
	recordsListCmd.Flags().String("sort", "", "sort column (RecordID, Number, OperatorName, Circle, Amount, RechargeUserId)")
	recordsListCmd.Flags().Bool("reverse", false, "sort descending")
	recordsListCmd.Flags().Int("page", 1, "page number")
	recordsListCmd.Flags().Int("page-size", 10, "rows per page")
	recordsListCmd.Flags().Bool("json", false, "output as JSON")

	recordsUpdateCmd.Flags().String("conf-number", "", "operator confirmation number")
	recordsUpdateCmd.Flags().String("op-ref", "", "operator reference id")

	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsShowCmd)
	recordsCmd.AddCommand(recordsUpdateCmd)
	rootCmd.AddCommand(recordsCmd)
}
