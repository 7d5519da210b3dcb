package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arjun/opsdesk/internal/records"
)

var (
	// Base colors
	primaryColor = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("241")
	successColor = lipgloss.Color("42")
	warningColor = lipgloss.Color("214")
	errorColor   = lipgloss.Color("196")

	titleStyle     = lipgloss.NewStyle().Bold(true)
	subtleStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle      = lipgloss.NewStyle().Foreground(mutedColor)
	timestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	headerRowStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255"))

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("237")).
				Foreground(lipgloss.Color("255"))

	sortedColStyle = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)

	successBanner = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(successColor).
			Padding(0, 1)

	failureBanner = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(errorColor).
			Padding(0, 1)

	staleStyle = lipgloss.NewStyle().Foreground(warningColor)

	// Lock state markers per row
	lockMarkers = map[records.LockState]string{
		records.Unlocked: " ",
		records.Locking:  "…",
		records.Editing:  "✎",
	}

	lockMarkerStyles = map[records.LockState]lipgloss.Style{
		records.Locking: lipgloss.NewStyle().Foreground(warningColor),
		records.Editing: lipgloss.NewStyle().Foreground(primaryColor),
	}
)

// formatLockMarker renders the one-cell lock indicator for a row
func formatLockMarker(s records.LockState) string {
	marker, ok := lockMarkers[s]
	if !ok {
		marker = "?"
	}
	style, ok := lockMarkerStyles[s]
	if !ok {
		return marker
	}
	return style.Render(marker)
}
