package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/arjun/opsdesk/internal/records"
)

var errConfNumberRequired = errors.New("confirmation number is required")

// FormState holds the reconciliation form shown while a record is held.
// The inputs are bound straight into the edit session, so the drafted
// values survive a failed commit.
type FormState struct {
	Session *records.EditSession
	Form    *huh.Form
}

// NewFormState builds the form for an open edit session.
func NewFormState(session *records.EditSession) *FormState {
	fs := &FormState{Session: session}

	fs.Form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Confirmation number").
				Value(&session.ConfNumber).
				Placeholder("operator confirmation...").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errConfNumberRequired
					}
					return nil
				}),
			huh.NewInput().
				Title("Operator reference id").
				Value(&session.OpRefID).
				Placeholder("optional reference..."),
		).Title(fmt.Sprintf("Reconcile record %d", session.Record.RecordID)),
	).WithShowHelp(false)

	return fs
}
