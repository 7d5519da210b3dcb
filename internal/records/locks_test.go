package records

import "testing"

func TestBeginIsExclusivePerRecord(t *testing.T) {
	c := NewCoordinator()
	r := rec(42, "n", "op", "c", 100, 1)

	if !c.Begin(r.RecordID) {
		t.Fatal("first Begin refused")
	}
	if c.State(r.RecordID) != Locking {
		t.Fatalf("state = %v, want Locking", c.State(r.RecordID))
	}
	// A second edit trigger on the same record is a no-op.
	if c.Begin(r.RecordID) {
		t.Error("second Begin on locking record allowed")
	}

	c.LockGranted(r)
	if c.Begin(r.RecordID) {
		t.Error("Begin allowed while editing")
	}
}

func TestLockFailureReleasesEntry(t *testing.T) {
	c := NewCoordinator()
	r := rec(42, "n", "op", "c", 100, 1)

	c.Begin(r.RecordID)
	c.LockFailed(r.RecordID)

	if c.Held(r.RecordID) {
		t.Error("record still in LockSet after failed lock")
	}
	if c.Edit() != nil {
		t.Error("edit session created despite lock failure")
	}
	// The record is eligible for a fresh attempt.
	if !c.Begin(r.RecordID) {
		t.Error("retry after failed lock refused")
	}
}

func TestLockGrantedOpensSession(t *testing.T) {
	c := NewCoordinator()
	r := rec(7, "9876", "Airtel", "Delhi", 199, 11)

	c.Begin(r.RecordID)
	sess := c.LockGranted(r)
	if sess == nil {
		t.Fatal("no session on grant")
	}
	if sess.Record.RecordID != 7 {
		t.Errorf("session record = %d", sess.Record.RecordID)
	}
	if c.State(r.RecordID) != Editing {
		t.Errorf("state = %v, want Editing", c.State(r.RecordID))
	}
}

func TestLockGrantedWithoutBeginIgnored(t *testing.T) {
	c := NewCoordinator()
	r := rec(7, "n", "op", "c", 100, 1)

	if sess := c.LockGranted(r); sess != nil {
		t.Error("grant without Begin opened a session")
	}
	if c.Held(r.RecordID) {
		t.Error("grant without Begin left a lock entry")
	}
}

func TestCommitLifecycle(t *testing.T) {
	c := NewCoordinator()
	r := rec(7, "n", "op", "c", 100, 1)
	c.Begin(r.RecordID)
	c.LockGranted(r)

	if !c.BeginCommit() {
		t.Fatal("BeginCommit refused")
	}
	if c.BeginCommit() {
		t.Error("double BeginCommit allowed")
	}

	// A failed commit keeps the lock and the session.
	c.CommitFailed()
	if c.Edit() == nil {
		t.Fatal("session destroyed on failed commit")
	}
	if c.Edit().Pending {
		t.Error("pending flag not cleared after failed commit")
	}
	if c.State(r.RecordID) != Editing {
		t.Error("lock released on failed commit")
	}

	// Retry succeeds.
	c.BeginCommit()
	c.CommitSucceeded()
	if c.Edit() != nil {
		t.Error("session open after successful commit")
	}
	if c.Held(r.RecordID) {
		t.Error("lock entry left after successful commit")
	}
}

func TestCancelReleasesEntry(t *testing.T) {
	c := NewCoordinator()
	r := rec(7, "n", "op", "c", 100, 1)
	c.Begin(r.RecordID)
	c.LockGranted(r)

	if !c.Cancel() {
		t.Fatal("Cancel refused")
	}
	if c.Edit() != nil || c.Held(r.RecordID) {
		t.Error("cancel did not clear session and lock entry")
	}
}

func TestCancelDeferredWhileCommitInFlight(t *testing.T) {
	c := NewCoordinator()
	r := rec(7, "n", "op", "c", 100, 1)
	c.Begin(r.RecordID)
	c.LockGranted(r)
	c.BeginCommit()

	if c.Cancel() {
		t.Error("Cancel allowed while commit in flight")
	}
	if c.Edit() == nil {
		t.Error("session destroyed while commit in flight")
	}
}

func TestIndependentRecordsLockIndependently(t *testing.T) {
	// LockSet entries are per record: a failed lock on one record does
	// not disturb another's in-flight attempt.
	c := NewCoordinator()
	c.Begin(1)
	c.Begin(2)

	c.LockFailed(1)
	if c.Held(1) {
		t.Error("record 1 still held")
	}
	if c.State(2) != Locking {
		t.Error("record 2 lost its lock attempt")
	}
}
