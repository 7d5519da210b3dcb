package records

import "github.com/arjun/opsdesk/internal/adminapi"

// LockState is the client-side view of one record's lock.
//
// The server is the lock authority; these states only mirror what this
// client believes. A record this client thinks is Unlocked may still be
// held by another operator, which surfaces as a lock-call failure.
type LockState int

const (
	Unlocked LockState = iota
	Locking            // lock call in flight, edit control disabled
	Editing            // lock granted, edit session open
)

// EditSession is the transient state of the one record currently open
// for modification.
type EditSession struct {
	Record     adminapi.OfflineRecord
	ConfNumber string
	OpRefID    string
	Pending    bool // commit call in flight; closing is deferred until it resolves
}

// Coordinator sequences the lock → edit → commit/cancel protocol and
// owns the LockSet. At most one edit session is open at a time, but
// lock entries are tracked per record.
type Coordinator struct {
	locks map[int64]LockState
	edit  *EditSession
}

// NewCoordinator returns a coordinator with no locks held.
func NewCoordinator() *Coordinator {
	return &Coordinator{locks: make(map[int64]LockState)}
}

// State returns the client-side lock state for a record.
func (c *Coordinator) State(recordID int64) LockState {
	return c.locks[recordID]
}

// Held reports whether this client has an in-flight or granted lock on
// the record, i.e. whether its edit control should be disabled.
func (c *Coordinator) Held(recordID int64) bool {
	return c.locks[recordID] != Unlocked
}

// HeldIDs returns the record ids currently in the LockSet.
func (c *Coordinator) HeldIDs() []int64 {
	ids := make([]int64, 0, len(c.locks))
	for id := range c.locks {
		ids = append(ids, id)
	}
	return ids
}

// Begin starts a lock attempt for a record. It returns false, and the
// caller must not issue a lock call, when the record is already in the
// LockSet or another edit session is open.
func (c *Coordinator) Begin(recordID int64) bool {
	if c.edit != nil || c.locks[recordID] != Unlocked {
		return false
	}
	c.locks[recordID] = Locking
	return true
}

// LockGranted moves a Locking record to Editing and opens its edit
// session, populated from the record snapshot taken at trigger time.
// A grant for a record that is no longer Locking is ignored.
func (c *Coordinator) LockGranted(rec adminapi.OfflineRecord) *EditSession {
	if c.locks[rec.RecordID] != Locking {
		return nil
	}
	if c.edit != nil {
		delete(c.locks, rec.RecordID)
		return nil
	}
	c.locks[rec.RecordID] = Editing
	c.edit = &EditSession{Record: rec}
	return c.edit
}

// LockFailed removes the record from the LockSet after a failed lock
// call, making it eligible for a future attempt.
func (c *Coordinator) LockFailed(recordID int64) {
	delete(c.locks, recordID)
}

// Edit returns the open edit session, or nil.
func (c *Coordinator) Edit() *EditSession {
	return c.edit
}

// BeginCommit marks the open edit session as having a commit call in
// flight. Returns false when there is no session or one is already
// pending.
func (c *Coordinator) BeginCommit() bool {
	if c.edit == nil || c.edit.Pending {
		return false
	}
	c.edit.Pending = true
	return true
}

// CommitSucceeded closes the edit session and releases the client-side
// lock entry. The record list is left alone; the next poll reflects the
// server-side change.
func (c *Coordinator) CommitSucceeded() {
	if c.edit == nil {
		return
	}
	delete(c.locks, c.edit.Record.RecordID)
	c.edit = nil
}

// CommitFailed keeps the session and the lock: the server lock is
// assumed still held, so the operator may retry or cancel.
func (c *Coordinator) CommitFailed() {
	if c.edit == nil {
		return
	}
	c.edit.Pending = false
}

// Cancel closes the edit session without saving and releases the
// client-side entry. There is no release endpoint; the server expires
// its lock on its own. A cancel while a commit is in flight is refused.
func (c *Coordinator) Cancel() bool {
	if c.edit == nil {
		return true
	}
	if c.edit.Pending {
		return false
	}
	delete(c.locks, c.edit.Record.RecordID)
	c.edit = nil
	return true
}
