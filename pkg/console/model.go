package console

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/arjun/opsdesk/internal/adminapi"
	"github.com/arjun/opsdesk/internal/records"
)

// Model is the main Bubble Tea model for the reconciliation console
type Model struct {
	// Backend and session
	Service  records.RecordService
	Executor *records.Executor
	OwnerID  string

	// Core state, shared across Model value copies
	Store  *records.Store
	Locks  *records.Coordinator
	Notify *records.Notifier
	ViewState records.ViewState

	// Window dimensions
	Width  int
	Height int

	// Cursor is the selected row index within the current page
	Cursor int

	// Search state
	SearchMode  bool
	SearchInput textinput.Model

	// Reconciliation form state
	FormOpen  bool
	FormState *FormState

	// Refund confirmation state
	ConfirmOpen   bool
	ConfirmRecord adminapi.OfflineRecord

	// Configuration
	PollInterval time.Duration

	// PersistView receives the final view state on quit (nil to skip)
	PersistView func(records.ViewState)
}

// NewModel creates a console model for one operator session
func NewModel(svc records.RecordService, exec *records.Executor, ownerID string, interval time.Duration, view records.ViewState) Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "search"
	searchInput.Prompt = ""
	searchInput.Width = 40
	searchInput.CharLimit = 200
	searchInput.SetValue(view.SearchTerm)

	return Model{
		Service:      svc,
		Executor:     exec,
		OwnerID:      ownerID,
		Store:        records.NewStore(),
		Locks:        records.NewCoordinator(),
		Notify:       records.NewNotifier(),
		ViewState:    view,
		SearchInput:  searchInput,
		PollInterval: interval,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchData(),
		m.scheduleTick(),
		textinput.Blink,
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle TickMsg before any UI-mode interception so the poll chain
	// stays alive while the form or a confirmation is open.
	if _, ok := msg.(TickMsg); ok {
		return m, tea.Batch(m.fetchData(), m.scheduleTick())
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		if msg.Err != nil {
			m.Store.ApplyError(msg.Gen, msg.Err)
		} else {
			m.Store.ApplyRefresh(msg.Gen, msg.Records, msg.Timestamp)
		}
		m.clampView()
		return m, nil

	case LockResultMsg:
		if msg.Err != nil {
			m.Locks.LockFailed(msg.Record.RecordID)
			m.Notify.Failure(msg.Err.Error())
			return m, nil
		}
		if session := m.Locks.LockGranted(msg.Record); session != nil {
			m.FormState = NewFormState(session)
			m.FormOpen = true
			return m, m.FormState.Form.Init()
		}
		return m, nil

	case CommitResultMsg:
		if msg.Outcome.OK {
			m.Locks.CommitSucceeded()
			m.FormOpen = false
			m.FormState = nil
			seq := m.Notify.Success(msg.Outcome.Message)
			return m, tea.Batch(scheduleBannerExpiry(seq), m.fetchData())
		}
		m.Locks.CommitFailed()
		m.Notify.Failure(msg.Outcome.Message)
		return m, nil

	case RefundResultMsg:
		if msg.Outcome.OK {
			seq := m.Notify.Success(msg.Outcome.Message)
			return m, tea.Batch(scheduleBannerExpiry(seq), m.fetchData())
		}
		m.Notify.Failure(msg.Outcome.Message)
		return m, nil

	case BannerExpireMsg:
		m.Notify.Expire(msg.Seq)
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	}

	// Form mode: forward everything else to the huh form
	if m.FormOpen && m.FormState != nil {
		return m.handleFormUpdate(msg)
	}

	// Refund confirmation mode
	if m.ConfirmOpen {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.handleConfirmKey(keyMsg)
		}
		return m, nil
	}

	// Search mode: forward non-key messages to textinput (cursor blink)
	if m.SearchMode {
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			var inputCmd tea.Cmd
			m.SearchInput, inputCmd = m.SearchInput.Update(msg)
			return m, inputCmd
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}

	return m, nil
}

// handleFormUpdate handles all messages while the reconciliation form is open
func (m Model) handleFormUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		// Cancel is refused while a commit is in flight
		if m.Locks.Cancel() {
			m.FormOpen = false
			m.FormState = nil
		}
		return m, nil
	}

	form, cmd := m.FormState.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.FormState.Form = f
	}

	if m.FormState.Form.State == huh.StateCompleted {
		if m.Locks.BeginCommit() {
			return m, tea.Batch(cmd, m.submitUpdate(m.FormState.Session))
		}
	}

	return m, cmd
}

// handleConfirmKey handles keys while the refund confirmation is open
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.ConfirmOpen = false
		return m, m.submitRefund(m.ConfirmRecord)
	case "n", "esc":
		m.ConfirmOpen = false
		return m, nil
	}
	return m, nil
}

// handleKey processes key input in the main table view
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search mode: most keys go to the textinput
	if m.SearchMode {
		switch msg.String() {
		case "esc", "enter":
			m.SearchMode = false
			m.SearchInput.Blur()
			return m, nil
		case "ctrl+u":
			m.SearchInput.SetValue("")
		default:
			var inputCmd tea.Cmd
			m.SearchInput, inputCmd = m.SearchInput.Update(msg)
			if term := m.SearchInput.Value(); term != m.ViewState.SearchTerm {
				m.ViewState.SetSearch(term)
				m.Cursor = 0
			}
			return m, inputCmd
		}
		if m.SearchInput.Value() != m.ViewState.SearchTerm {
			m.ViewState.SetSearch(m.SearchInput.Value())
			m.Cursor = 0
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		if m.PersistView != nil {
			m.PersistView(m.ViewState)
		}
		return m, tea.Quit

	case "/":
		m.SearchMode = true
		m.SearchInput.Focus()
		return m, textinput.Blink

	case "j", "down":
		m.moveCursor(1)
		return m, nil

	case "k", "up":
		m.moveCursor(-1)
		return m, nil

	case "g":
		m.Cursor = 0
		return m, nil

	case "G":
		if n := len(m.pageRecords()); n > 0 {
			m.Cursor = n - 1
		}
		return m, nil

	case "h", "left":
		m.ViewState.PrevPage()
		m.Cursor = 0
		return m, nil

	case "l", "right":
		m.ViewState.NextPage(m.filteredCount())
		m.Cursor = 0
		return m, nil

	case "1", "2", "3", "4", "5", "6":
		idx := int(msg.String()[0] - '1')
		if idx < len(records.SortKeys) {
			m.ViewState.ToggleSort(records.SortKeys[idx])
			m.Cursor = 0
		}
		return m, nil

	case "e", "enter":
		return m.beginEdit()

	case "r":
		if rec, ok := m.selectedRecord(); ok {
			m.ConfirmOpen = true
			m.ConfirmRecord = rec
		}
		return m, nil

	case "d":
		m.Notify.Dismiss()
		return m, nil

	case "R":
		return m, m.fetchData()
	}

	return m, nil
}

// beginEdit starts the lock handshake for the selected record
func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	rec, ok := m.selectedRecord()
	if !ok {
		return m, nil
	}
	if !m.Locks.Begin(rec.RecordID) {
		if m.Locks.Edit() != nil {
			m.Notify.Failure("Finish the current edit first.")
		}
		return m, nil
	}
	return m, m.lockRecord(rec)
}

// pageRecords returns the records visible on the current page
func (m Model) pageRecords() []adminapi.OfflineRecord {
	return records.Project(m.Store.Records(), m.ViewState)
}

// filteredCount returns the number of records matching the search term
func (m Model) filteredCount() int {
	return records.FilteredCount(m.Store.Records(), m.ViewState)
}

// selectedRecord returns the record under the cursor
func (m Model) selectedRecord() (adminapi.OfflineRecord, bool) {
	page := m.pageRecords()
	if m.Cursor < 0 || m.Cursor >= len(page) {
		return adminapi.OfflineRecord{}, false
	}
	return page[m.Cursor], true
}

// moveCursor moves the selection within the current page
func (m *Model) moveCursor(delta int) {
	n := len(m.pageRecords())
	if n == 0 {
		m.Cursor = 0
		return
	}
	m.Cursor += delta
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
}

// clampView pulls the page and cursor back into range after a refresh
// shrinks the filtered set
func (m *Model) clampView() {
	total := records.TotalPages(m.filteredCount(), m.ViewState.PageSize)
	if m.ViewState.Page > total {
		m.ViewState.Page = total
	}
	if n := len(m.pageRecords()); m.Cursor >= n {
		if n == 0 {
			m.Cursor = 0
		} else {
			m.Cursor = n - 1
		}
	}
}
