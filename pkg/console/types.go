package console

import (
	"time"

	"github.com/arjun/opsdesk/internal/adminapi"
	"github.com/arjun/opsdesk/internal/records"
)

// TickMsg triggers a data refresh
type TickMsg time.Time

// RefreshDataMsg carries one poll's result. Gen identifies the poll so
// responses that arrive after a newer one has landed are discarded.
type RefreshDataMsg struct {
	Gen       uint64
	Records   []adminapi.OfflineRecord
	Err       error
	Timestamp time.Time
}

// LockResultMsg carries the outcome of a lock attempt
type LockResultMsg struct {
	Record adminapi.OfflineRecord
	Err    error
}

// CommitResultMsg carries the outcome of an update commit
type CommitResultMsg struct {
	RecordID int64
	Outcome  records.Outcome
}

// RefundResultMsg carries the outcome of a refund
type RefundResultMsg struct {
	RecordID int64
	Outcome  records.Outcome
}

// BannerExpireMsg clears the success banner identified by Seq
type BannerExpireMsg struct {
	Seq uint64
}

// Minimum dimensions for the console
const (
	MinWidth  = 60
	MinHeight = 12
)
