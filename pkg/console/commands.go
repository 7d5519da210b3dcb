package console

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arjun/opsdesk/internal/adminapi"
	"github.com/arjun/opsdesk/internal/records"
)

// scheduleTick returns a command that sends a TickMsg after the poll interval
func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.PollInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fetchData returns a command that polls the record list. The generation
// is allocated synchronously so a response landing late is recognizable.
func (m Model) fetchData() tea.Cmd {
	gen := m.Store.BeginRefresh()
	svc := m.Service
	ownerID := m.OwnerID
	return func() tea.Msg {
		recs, err := svc.ListOfflineRecords(ownerID)
		return RefreshDataMsg{Gen: gen, Records: recs, Err: err, Timestamp: time.Now()}
	}
}

// lockRecord returns a command that requests the server-side lock
func (m Model) lockRecord(rec adminapi.OfflineRecord) tea.Cmd {
	svc := m.Service
	ownerID := m.OwnerID
	return func() tea.Msg {
		err := svc.LockRecord(rec.RecordID, ownerID)
		return LockResultMsg{Record: rec, Err: err}
	}
}

// submitUpdate returns a command that commits the edit session's values
func (m Model) submitUpdate(session *records.EditSession) tea.Cmd {
	exec := m.Executor
	rec := session.Record
	confNumber := session.ConfNumber
	opRefID := session.OpRefID
	return func() tea.Msg {
		outcome := exec.SubmitUpdate(rec, confNumber, opRefID)
		return CommitResultMsg{RecordID: rec.RecordID, Outcome: outcome}
	}
}

// submitRefund returns a command that refunds the record's ledger entry
func (m Model) submitRefund(rec adminapi.OfflineRecord) tea.Cmd {
	exec := m.Executor
	return func() tea.Msg {
		outcome := exec.SubmitRefund(rec)
		return RefundResultMsg{RecordID: rec.RecordID, Outcome: outcome}
	}
}

// scheduleBannerExpiry returns a command that expires the success banner
// identified by seq after its display window
func scheduleBannerExpiry(seq uint64) tea.Cmd {
	return tea.Tick(records.SuccessTTL, func(time.Time) tea.Msg {
		return BannerExpireMsg{Seq: seq}
	})
}
