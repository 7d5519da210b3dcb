package records

import (
	"errors"
	"testing"

	"github.com/arjun/opsdesk/internal/adminapi"
)

// fakeService records calls and returns scripted results.
type fakeService struct {
	listResult []adminapi.OfflineRecord
	listErr    error
	lockErr    error
	updateErr  error
	refundErr  error

	lockCalls   int
	updateCalls int
	refundCalls int

	lastUpdateConf string
	lastRefundSvc  int64
}

func (f *fakeService) ListOfflineRecords(ownerID string) ([]adminapi.OfflineRecord, error) {
	return f.listResult, f.listErr
}

func (f *fakeService) LockRecord(recordID int64, ownerID string) error {
	f.lockCalls++
	return f.lockErr
}

func (f *fakeService) UpdateRecord(recordID int64, ownerID, confNumber, opRefID string) error {
	f.updateCalls++
	f.lastUpdateConf = confNumber
	return f.updateErr
}

func (f *fakeService) Refund(serviceNumber int64, ownerID string) error {
	f.refundCalls++
	f.lastRefundSvc = serviceNumber
	return f.refundErr
}

type auditEntry struct {
	action, target, outcome, message string
}

type fakeAudit struct {
	entries []auditEntry
}

func (f *fakeAudit) RecordAction(action, target, outcome, message string) {
	f.entries = append(f.entries, auditEntry{action, target, outcome, message})
}

func TestSubmitUpdate(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantOK  bool
		wantMsg string
	}{
		{
			name:    "success",
			wantOK:  true,
			wantMsg: MsgUpdated,
		},
		{
			name:    "server decline surfaces its message",
			err:     &adminapi.APIError{Message: "Record already processed"},
			wantMsg: "Record already processed",
		},
		{
			name:    "transport error surfaces",
			err:     errors.New("http request: connection refused"),
			wantMsg: "http request: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{updateErr: tt.err}
			e := NewExecutor(svc, "4821", nil)

			out := e.SubmitUpdate(rec(7, "n", "op", "c", 100, 1), "ABC123", "OP-9")
			if out.OK != tt.wantOK {
				t.Errorf("OK = %v, want %v", out.OK, tt.wantOK)
			}
			if out.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", out.Message, tt.wantMsg)
			}
			if svc.lastUpdateConf != "ABC123" {
				t.Errorf("confirmation number = %q", svc.lastUpdateConf)
			}
		})
	}
}

func TestSubmitRefundValidatesLocally(t *testing.T) {
	// A record without a service number never reaches the network.
	svc := &fakeService{}
	e := NewExecutor(svc, "4821", nil)

	r := rec(7, "n", "op", "c", 100, 1)
	r.ServiceNumber = 0

	out := e.SubmitRefund(r)
	if out.OK {
		t.Error("refund without service number succeeded")
	}
	if out.Message != MsgRefundMissingIDs {
		t.Errorf("message = %q", out.Message)
	}
	if svc.refundCalls != 0 {
		t.Errorf("network call made: %d", svc.refundCalls)
	}

	// Missing owner id is the same local failure.
	e2 := NewExecutor(svc, "", nil)
	if out := e2.SubmitRefund(rec(7, "n", "op", "c", 100, 1)); out.OK || svc.refundCalls != 0 {
		t.Error("refund without owner id reached the network")
	}
}

func TestSubmitRefund(t *testing.T) {
	svc := &fakeService{}
	e := NewExecutor(svc, "4821", nil)

	r := rec(7, "n", "op", "c", 100, 1) // service number 507
	out := e.SubmitRefund(r)
	if !out.OK || out.Message != MsgRefunded {
		t.Errorf("outcome = %+v", out)
	}
	if svc.lastRefundSvc != 507 {
		t.Errorf("service number sent = %d, want 507", svc.lastRefundSvc)
	}
}

func TestExecutorNeverTouchesStore(t *testing.T) {
	// A successful commit leaves the store alone; only the next poll
	// may change displayed data.
	s := NewStore()
	gen := s.BeginRefresh()
	s.ApplyRefresh(gen, sampleRecords(), s.LastRefresh())
	before := s.Records()

	e := NewExecutor(&fakeService{}, "4821", nil)
	e.SubmitUpdate(before[0], "ABC", "OP")
	e.SubmitRefund(before[1])

	after := s.Records()
	if len(after) != len(before) {
		t.Fatalf("store length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("record %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestExecutorAuditsOutcomes(t *testing.T) {
	audit := &fakeAudit{}
	svc := &fakeService{refundErr: &adminapi.APIError{Message: "Insufficient balance"}}
	e := NewExecutor(svc, "4821", audit)

	e.SubmitUpdate(rec(7, "n", "op", "c", 100, 1), "ABC", "OP")
	e.SubmitRefund(rec(9, "n", "op", "c", 100, 1))

	if len(audit.entries) != 2 {
		t.Fatalf("got %d audit entries, want 2", len(audit.entries))
	}
	if audit.entries[0].action != "update" || audit.entries[0].outcome != "success" {
		t.Errorf("first entry = %+v", audit.entries[0])
	}
	if audit.entries[1].action != "refund" || audit.entries[1].outcome != "failure" {
		t.Errorf("second entry = %+v", audit.entries[1])
	}
	if audit.entries[1].message != "Insufficient balance" {
		t.Errorf("failure message = %q", audit.entries[1].message)
	}
}
