package audit

import (
	"testing"
	"time"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	log, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

func TestAppendAndRecent(t *testing.T) {
	log := openTestLog(t)

	if err := log.Append("update", "record:41", "success", "Record updated successfully!"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := log.Append("refund", "record:42", "failure", "Refund window has closed"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	entries, err := log.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// Newest first
	if entries[0].Action != "refund" || entries[1].Action != "update" {
		t.Errorf("order = %s, %s", entries[0].Action, entries[1].Action)
	}
	if entries[0].Target != "record:42" || entries[0].Outcome != "failure" {
		t.Errorf("entry = %+v", entries[0])
	}
	if entries[0].At.IsZero() || time.Since(entries[0].At) > time.Minute {
		t.Errorf("timestamp not recent: %v", entries[0].At)
	}
}

func TestRecentLimit(t *testing.T) {
	log := openTestLog(t)

	for i := 0; i < 5; i++ {
		if err := log.Append("update", "record:1", "success", ""); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	entries, err := log.Recent(3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}
}

func TestRecentEmpty(t *testing.T) {
	log := openTestLog(t)

	entries, err := log.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestRecordActionOnNilLog(t *testing.T) {
	// Commands run without an audit log when the config dir is
	// unavailable; actions must still go through.
	var log *Log
	log.RecordAction("update", "record:1", "success", "")
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := first.Append("update", "record:1", "success", ""); err != nil {
		t.Fatalf("Append: %v", err)
	}
	first.Close()

	second, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	entries, err := second.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d entries after reopen, want 1", len(entries))
	}
}
