package cmd

import (
	"github.com/arjun/opsdesk/internal/adminapi"
	"github.com/arjun/opsdesk/internal/audit"
	"github.com/arjun/opsdesk/internal/config"
	"github.com/arjun/opsdesk/internal/records"
	"github.com/arjun/opsdesk/internal/session"
)

// newClient builds an API client for the current session.
func newClient() (*adminapi.Client, session.Context, error) {
	ctx, err := session.Load()
	if err != nil {
		return nil, session.Context{}, err
	}
	return adminapi.New(config.GetAPIURL(), ctx.Token), ctx, nil
}

// openAuditLog opens the local action log. A nil log is returned when
// the config dir is unavailable; actions proceed without auditing.
func openAuditLog() *audit.Log {
	dir, err := session.ConfigDir()
	if err != nil {
		return nil
	}
	log, err := audit.Open(dir)
	if err != nil {
		return nil
	}
	return log
}

// newExecutor wires an action executor with auditing for the session.
func newExecutor(client *adminapi.Client, ctx session.Context, log *audit.Log) *records.Executor {
	var trail records.AuditTrail
	if log != nil {
		trail = log
	}
	return records.NewExecutor(client, ctx.OwnerID, trail)
}
