// Package output provides styled terminal output helpers (success, error,
// warning, record formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/arjun/opsdesk/internal/adminapi"
)

var (
	// Styles
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	amountStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// JSON outputs data as JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// FormatAmount formats a rupee amount with two decimal places.
func FormatAmount(amount float64) string {
	return amountStyle.Render("₹" + strconv.FormatFloat(amount, 'f', 2, 64))
}

// FormatAmountPlain formats an amount without styling (for table cells
// and JSON-adjacent contexts).
func FormatAmountPlain(amount float64) string {
	return "₹" + strconv.FormatFloat(amount, 'f', 2, 64)
}

// FormatOutcome renders an audit outcome with color.
func FormatOutcome(outcome string) string {
	switch outcome {
	case "success":
		return successStyle.Render(outcome)
	case "failure":
		return errorStyle.Render(outcome)
	default:
		return outcome
	}
}

// FormatRecordShort formats an offline record on one line.
func FormatRecordShort(rec *adminapi.OfflineRecord) string {
	parts := []string{
		titleStyle.Render(strconv.FormatInt(rec.RecordID, 10)),
		rec.Number,
		rec.OperatorName,
		rec.Circle,
		FormatAmount(rec.Amount),
		subtleStyle.Render(fmt.Sprintf("svc:%d user:%d", rec.ServiceNumber, rec.RechargeUserID)),
	}
	return strings.Join(parts, "  ")
}

// RecordMarkdown builds a markdown detail view of a record, rendered
// through glamour by the caller.
func RecordMarkdown(rec *adminapi.OfflineRecord) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Record %d\n\n", rec.RecordID))
	sb.WriteString("| Field | Value |\n|---|---|\n")
	sb.WriteString(fmt.Sprintf("| Number | %s |\n", rec.Number))
	sb.WriteString(fmt.Sprintf("| Operator | %s |\n", rec.OperatorName))
	sb.WriteString(fmt.Sprintf("| Circle | %s |\n", rec.Circle))
	sb.WriteString(fmt.Sprintf("| Amount | %s |\n", FormatAmountPlain(rec.Amount)))
	sb.WriteString(fmt.Sprintf("| Service number | %d |\n", rec.ServiceNumber))
	sb.WriteString(fmt.Sprintf("| Recharge user | %d |\n", rec.RechargeUserID))

	return sb.String()
}

// FormatTimeAgo formats a time as a human-readable "ago" string
func FormatTimeAgo(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1h ago"
		}
		return fmt.Sprintf("%dh ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1d ago"
		}
		return fmt.Sprintf("%dd ago", days)
	default:
		return t.Format("2006-01-02")
	}
}

// SectionHeader returns a formatted section header for CLI output
// e.g., "\nVENDORS:\n"
func SectionHeader(title string) string {
	return fmt.Sprintf("\n%s:\n", strings.ToUpper(title))
}
