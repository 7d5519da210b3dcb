package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/arjun/opsdesk/internal/adminapi"
	"github.com/arjun/opsdesk/internal/records"
)

// Column layout for the record table
var tableColumns = []struct {
	Key   records.SortKey
	Title string
	Width int
}{
	{records.SortByRecordID, "ID", 8},
	{records.SortByNumber, "NUMBER", 14},
	{records.SortByOperator, "OPERATOR", 16},
	{records.SortByCircle, "CIRCLE", 12},
	{records.SortByAmount, "AMOUNT", 10},
	{records.SortByUserID, "USER", 8},
}

// View implements tea.Model
func (m Model) View() string {
	if m.Width > 0 && (m.Width < MinWidth || m.Height < MinHeight) {
		return subtleStyle.Render(fmt.Sprintf("Terminal too small (min %dx%d)", MinWidth, MinHeight))
	}

	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.renderSearchBar())
	sb.WriteString("\n")

	if m.FormOpen && m.FormState != nil {
		sb.WriteString(m.FormState.Form.View())
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render("enter submit · esc cancel"))
		sb.WriteString("\n")
		sb.WriteString(m.renderBanner())
		return sb.String()
	}

	if m.ConfirmOpen {
		sb.WriteString(m.renderRefundConfirm())
		sb.WriteString("\n")
		sb.WriteString(m.renderBanner())
		return sb.String()
	}

	sb.WriteString(m.renderTable())
	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())
	sb.WriteString("\n")
	sb.WriteString(m.renderBanner())

	return sb.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("opsdesk · offline reconciliation")

	status := ""
	if err := m.Store.Err(); err != nil {
		status = staleStyle.Render("poll failed, showing last data")
	} else if !m.Store.LastRefresh().IsZero() {
		status = timestampStyle.Render("refreshed " + m.Store.LastRefresh().Format("15:04:05"))
	}

	if status == "" {
		return title
	}
	return title + "  " + status
}

func (m Model) renderSearchBar() string {
	prompt := subtleStyle.Render("search:")
	if m.SearchMode {
		prompt = titleStyle.Render("search:")
	}
	return prompt + " " + m.SearchInput.View()
}

func (m Model) renderTable() string {
	var sb strings.Builder

	// Header row with sort indicator on the active column
	cells := make([]string, 0, len(tableColumns)+1)
	cells = append(cells, " ")
	for _, col := range tableColumns {
		label := col.Title
		if col.Key == m.ViewState.SortKey {
			if m.ViewState.SortDesc {
				label += " ▼"
			} else {
				label += " ▲"
			}
			cells = append(cells, sortedColStyle.Render(padCell(label, col.Width)))
			continue
		}
		cells = append(cells, padCell(label, col.Width))
	}
	sb.WriteString(headerRowStyle.Render(strings.Join(cells, " ")))
	sb.WriteString("\n")

	page := m.pageRecords()
	if len(page) == 0 {
		if m.ViewState.SearchTerm != "" {
			sb.WriteString(subtleStyle.Render("  no records match the search"))
		} else {
			sb.WriteString(subtleStyle.Render("  no pending records"))
		}
		sb.WriteString("\n")
		return sb.String()
	}

	for i, rec := range page {
		line := m.renderRow(rec)
		if i == m.Cursor {
			line = selectedRowStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m Model) renderRow(rec adminapi.OfflineRecord) string {
	values := []string{
		strconv.FormatInt(rec.RecordID, 10),
		rec.Number,
		rec.OperatorName,
		rec.Circle,
		strconv.FormatFloat(rec.Amount, 'f', 2, 64),
		strconv.FormatInt(rec.RechargeUserID, 10),
	}

	cells := make([]string, 0, len(values)+1)
	cells = append(cells, formatLockMarker(m.Locks.State(rec.RecordID)))
	for i, v := range values {
		cells = append(cells, padCell(v, tableColumns[i].Width))
	}
	return strings.Join(cells, " ")
}

func (m Model) renderRefundConfirm() string {
	rec := m.ConfirmRecord
	body := fmt.Sprintf(
		"Refund record %d (%s, %s)?\n\n%s",
		rec.RecordID, rec.Number, rec.OperatorName,
		helpStyle.Render("y confirm · n cancel"),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(warningColor).
		Padding(0, 2).
		Render(body)
}

func (m Model) renderFooter() string {
	total := records.TotalPages(m.filteredCount(), m.ViewState.PageSize)
	page := fmt.Sprintf("page %d/%d · %d records", m.ViewState.Page, total, m.filteredCount())

	help := "j/k move · h/l page · 1-6 sort · / search · e edit · r refund · q quit"
	return subtleStyle.Render(page) + "\n" + helpStyle.Render(help)
}

func (m Model) renderBanner() string {
	notice := m.Notify.Current()
	switch notice.Kind {
	case records.NoticeSuccess:
		return successBanner.Render(notice.Message)
	case records.NoticeFailure:
		return failureBanner.Render(notice.Message + "  (d to dismiss)")
	default:
		return ""
	}
}

// padCell pads or truncates a value to the column width, ANSI-aware
func padCell(s string, width int) string {
	truncated := ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(truncated); pad > 0 {
		return truncated + strings.Repeat(" ", pad)
	}
	return truncated
}
