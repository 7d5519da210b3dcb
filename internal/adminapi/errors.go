package adminapi

import "errors"

// Sentinel errors for common HTTP error classes.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// Fallback messages used when the server declines an operation without
// supplying a reason of its own.
const (
	fallbackList    = "Failed to fetch offline data."
	fallbackLock    = "Failed to lock the record."
	fallbackUpdate  = "Failed to update record."
	fallbackRefund  = "Failed to process refund."
	fallbackReport  = "Failed to fetch report data."
	fallbackVendors = "Failed to fetch vendor list."
	fallbackLedger  = "Failed to fetch vendor ledger."
	fallbackFund    = "Failed to initiate fund transfer."
	fallbackRecover = "Failed to re-initiate transaction."
)

// APIError is a business failure reported by the admin API: the call
// reached the server but IsSuccess came back false.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsBusinessFailure reports whether err is a server-declined operation
// rather than a transport problem.
func IsBusinessFailure(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
