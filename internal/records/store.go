// Package records implements the reconciliation core: the polled record
// store, the pure view projection (search, sort, pagination), the
// per-record lock coordination, the update/refund executor, and the
// notification state. Everything here is owned by a single event loop;
// none of it is safe for concurrent use from multiple goroutines.
package records

import (
	"time"

	"github.com/arjun/opsdesk/internal/adminapi"
)

// Store caches the most recently fetched record list. Each poll
// replaces the collection wholesale; there are no partial merges.
// Fetches may overlap, so every refresh carries a generation number and
// a response from an older fetch than the one already applied is
// discarded rather than clobbering fresher data.
type Store struct {
	records []adminapi.OfflineRecord

	issued  uint64 // last generation handed out to a fetch
	applied uint64 // generation of the data currently held

	err         error // last refresh failure, nil after a good refresh
	lastRefresh time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{records: []adminapi.OfflineRecord{}}
}

// BeginRefresh allocates a generation for a fetch that is about to be
// issued.
func (s *Store) BeginRefresh() uint64 {
	s.issued++
	return s.issued
}

// ApplyRefresh installs a fetched record list. Returns false when the
// response is stale: an equal-or-older generation than what is already
// applied.
func (s *Store) ApplyRefresh(gen uint64, records []adminapi.OfflineRecord, at time.Time) bool {
	if gen <= s.applied {
		return false
	}
	if records == nil {
		records = []adminapi.OfflineRecord{}
	}
	s.applied = gen
	s.records = records
	s.err = nil
	s.lastRefresh = at
	return true
}

// ApplyError records a failed refresh. The previous record list is left
// untouched; stale errors are discarded like stale data.
func (s *Store) ApplyError(gen uint64, err error) bool {
	if gen <= s.applied {
		return false
	}
	s.applied = gen
	s.err = err
	return true
}

// Records returns the current list. Callers treat it as immutable; it
// is replaced, never mutated, on refresh.
func (s *Store) Records() []adminapi.OfflineRecord {
	return s.records
}

// Err returns the last refresh error, or nil when the latest refresh
// succeeded.
func (s *Store) Err() error {
	return s.err
}

// LastRefresh returns when data was last successfully applied.
func (s *Store) LastRefresh() time.Time {
	return s.lastRefresh
}
