// Package session holds the operator's identity for the admin API. The
// owner identifier and token are issued out of band (by the platform's
// login service), stored locally, and loaded once at startup into a
// Context value that is passed explicitly to every component that talks
// to the API. Nothing here reads ambient global state after startup.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoSession is returned when no owner identifier is available from
// either the environment or the stored credentials.
var ErrNoSession = errors.New("no session: run 'opsdesk login' first")

// Context is the operator's session identity. It is constructed once at
// startup and passed by value into the console, the CLI commands, and
// the audit trail.
type Context struct {
	OwnerID  string
	Token    string
	Operator string // display label, optional
}

// Credentials is the on-disk shape at ~/.config/opsdesk/auth.json.
type Credentials struct {
	OwnerID  string `json:"owner_id"`
	Token    string `json:"token"`
	Operator string `json:"operator,omitempty"`
}

// ConfigDir returns ~/.config/opsdesk, creating it if necessary.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	dir := filepath.Join(home, ".config", "opsdesk")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return dir, nil
}

func authPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "auth.json"), nil
}

// LoadCredentials reads stored credentials. A missing file is not an
// error; it returns (nil, nil).
func LoadCredentials() (*Credentials, error) {
	path, err := authPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parse auth.json: %w", err)
	}
	return &creds, nil
}

// SaveCredentials writes credentials to auth.json (0600 perms).
func SaveCredentials(creds *Credentials) error {
	path, err := authPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// ClearCredentials removes auth.json.
func ClearCredentials() error {
	path, err := authPath()
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Load builds the session context.
// Priority: OPSDESK_OWNER_ID / OPSDESK_TOKEN env > auth.json.
// Fails closed with ErrNoSession when no owner identifier is available;
// callers must not issue API calls without a context.
func Load() (Context, error) {
	ctx := Context{
		OwnerID: os.Getenv("OPSDESK_OWNER_ID"),
		Token:   os.Getenv("OPSDESK_TOKEN"),
	}
	if ctx.OwnerID != "" {
		return ctx, nil
	}

	creds, err := LoadCredentials()
	if err != nil {
		return Context{}, err
	}
	if creds == nil || creds.OwnerID == "" {
		return Context{}, ErrNoSession
	}

	ctx.OwnerID = creds.OwnerID
	ctx.Operator = creds.Operator
	if ctx.Token == "" {
		ctx.Token = creds.Token
	}
	return ctx, nil
}
