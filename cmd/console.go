package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arjun/opsdesk/internal/config"
	"github.com/arjun/opsdesk/internal/output"
	"github.com/arjun/opsdesk/internal/records"
	"github.com/arjun/opsdesk/pkg/console"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Live reconciliation console for offline records",
	Long: `Launch the live reconciliation console. The record list refreshes
continuously; search, sort, and pagination are applied locally.

Key bindings:
  j/k, ↑/↓   Select row
  h/l, ←/→   Previous / next page
  1-6        Sort by column (press again to flip direction)
  /          Search (esc to leave)
  e, Enter   Lock and reconcile the selected record
  r          Refund the selected record
  d          Dismiss the notification banner
  R          Refresh now
  q          Quit`,
	GroupID: "records",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, ctx, err := newClient()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		log := openAuditLog()
		if log != nil {
			defer log.Close()
		}
		exec := newExecutor(client, ctx, log)

		// Restore the previous session's search and sort
		view := records.NewViewState(config.GetPageSize())
		if saved, err := config.GetViewState(); err == nil {
			if saved.SearchTerm != "" {
				view.SetSearch(saved.SearchTerm)
			}
			if saved.SortKey != "" {
				view.SortKey = records.SortKey(saved.SortKey)
				view.SortDesc = saved.SortDesc
			}
		}

		model := console.NewModel(client, exec, ctx.OwnerID, config.GetPollInterval(), view)
		model.PersistView = func(v records.ViewState) {
			_ = config.SetViewState(config.ViewState{
				SearchTerm: v.SearchTerm,
				SortKey:    string(v.SortKey),
				SortDesc:   v.SortDesc,
			})
		}

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running console: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
