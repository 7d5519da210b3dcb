package records

import (
	"strconv"

	"github.com/arjun/opsdesk/internal/adminapi"
)

// RecordService is the slice of the admin API the reconciliation core
// needs. *adminapi.Client satisfies it.
type RecordService interface {
	ListOfflineRecords(ownerID string) ([]adminapi.OfflineRecord, error)
	LockRecord(recordID int64, ownerID string) error
	UpdateRecord(recordID int64, ownerID, confNumber, opRefID string) error
	Refund(serviceNumber int64, ownerID string) error
}

// AuditTrail receives the outcome of every operator action. Implemented
// by the audit package; NoopAudit discards everything.
type AuditTrail interface {
	RecordAction(action, target, outcome, message string)
}

// NoopAudit is an AuditTrail that records nothing.
type NoopAudit struct{}

// RecordAction implements AuditTrail.
func (NoopAudit) RecordAction(action, target, outcome, message string) {}

// Outcome is the normalized result of a terminal mutating call.
type Outcome struct {
	OK      bool
	Message string
}

// Success messages shown after a committed action.
const (
	MsgUpdated  = "Record updated successfully!"
	MsgRefunded = "Refund processed successfully!"
)

// MsgRefundMissingIDs is the local validation failure raised before a
// refund call with incomplete identifiers.
const MsgRefundMissingIDs = "Cannot process refund: missing service number or owner id."

// Executor performs the update and refund calls for the owner's
// session and normalizes their results. It never touches the Store:
// after a successful commit the next poll is the sole source of truth.
type Executor struct {
	Service RecordService
	OwnerID string
	Audit   AuditTrail
}

// NewExecutor builds an executor for one session.
func NewExecutor(svc RecordService, ownerID string, audit AuditTrail) *Executor {
	if audit == nil {
		audit = NoopAudit{}
	}
	return &Executor{Service: svc, OwnerID: ownerID, Audit: audit}
}

// SubmitUpdate sends the reconciliation result for a locked record.
func (e *Executor) SubmitUpdate(rec adminapi.OfflineRecord, confNumber, opRefID string) Outcome {
	err := e.Service.UpdateRecord(rec.RecordID, e.OwnerID, confNumber, opRefID)
	if err != nil {
		e.Audit.RecordAction("update", recordTarget(rec.RecordID), "failure", err.Error())
		return Outcome{Message: err.Error()}
	}
	e.Audit.RecordAction("update", recordTarget(rec.RecordID), "success", confNumber)
	return Outcome{OK: true, Message: MsgUpdated}
}

// SubmitRefund refunds a record's service ledger entry. Identifiers are
// validated locally first; a missing service number or owner id never
// reaches the network.
func (e *Executor) SubmitRefund(rec adminapi.OfflineRecord) Outcome {
	if rec.ServiceNumber == 0 || e.OwnerID == "" {
		return Outcome{Message: MsgRefundMissingIDs}
	}
	err := e.Service.Refund(rec.ServiceNumber, e.OwnerID)
	if err != nil {
		e.Audit.RecordAction("refund", recordTarget(rec.RecordID), "failure", err.Error())
		return Outcome{Message: err.Error()}
	}
	e.Audit.RecordAction("refund", recordTarget(rec.RecordID), "success", "")
	return Outcome{OK: true, Message: MsgRefunded}
}

func recordTarget(recordID int64) string {
	return "record/" + strconv.FormatInt(recordID, 10)
}
