package records

import (
	"sort"
	"strconv"
	"strings"

	"github.com/arjun/opsdesk/internal/adminapi"
)

// SortKey identifies a sortable column of the reconciliation table.
type SortKey string

const (
	SortByRecordID SortKey = "RecordID"
	SortByNumber   SortKey = "Number"
	SortByOperator SortKey = "OperatorName"
	SortByCircle   SortKey = "Circle"
	SortByAmount   SortKey = "Amount"
	SortByUserID   SortKey = "RechargeUserId"
)

// SortKeys lists the sortable columns in display order.
var SortKeys = []SortKey{
	SortByRecordID,
	SortByNumber,
	SortByOperator,
	SortByCircle,
	SortByAmount,
	SortByUserID,
}

// ViewState is what the user sees of the record list: search, sort, and
// page. It survives poll refreshes untouched; only explicit user input
// mutates it.
type ViewState struct {
	SearchTerm string
	SortKey    SortKey
	SortDesc   bool
	Page       int // 1-based
	PageSize   int
}

// NewViewState returns the default view: no search, RecordID ascending,
// page 1.
func NewViewState(pageSize int) ViewState {
	if pageSize <= 0 {
		pageSize = 10
	}
	return ViewState{SortKey: SortByRecordID, Page: 1, PageSize: pageSize}
}

// SetSearch replaces the search term and resets to page 1.
func (v *ViewState) SetSearch(term string) {
	v.SearchTerm = term
	v.Page = 1
}

// ToggleSort sorts by key. Clicking the current key flips the
// direction; a new key starts ascending. Either way the view returns to
// page 1.
func (v *ViewState) ToggleSort(key SortKey) {
	if v.SortKey == key {
		v.SortDesc = !v.SortDesc
	} else {
		v.SortKey = key
		v.SortDesc = false
	}
	v.Page = 1
}

// NextPage advances one page, clamped to the last page of a list with
// the given filtered count.
func (v *ViewState) NextPage(filteredCount int) {
	if v.Page < TotalPages(filteredCount, v.PageSize) {
		v.Page++
	}
}

// PrevPage goes back one page, clamped to page 1.
func (v *ViewState) PrevPage() {
	if v.Page > 1 {
		v.Page--
	}
}

// TotalPages returns the page count for a filtered list; an empty list
// still has one (empty) page.
func TotalPages(filteredCount, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (filteredCount + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// searchFields returns every displayed field of a record as a string,
// for substring matching.
func searchFields(r adminapi.OfflineRecord) []string {
	return []string{
		strconv.FormatInt(r.RecordID, 10),
		r.Number,
		r.OperatorName,
		r.Circle,
		strconv.FormatFloat(r.Amount, 'f', -1, 64),
		strconv.FormatInt(r.RechargeUserID, 10),
	}
}

// Filter keeps records where any displayed field contains term,
// case-insensitively. An empty term keeps everything in order.
func Filter(records []adminapi.OfflineRecord, term string) []adminapi.OfflineRecord {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)

	var out []adminapi.OfflineRecord
	for _, r := range records {
		for _, f := range searchFields(r) {
			if strings.Contains(strings.ToLower(f), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Sort orders records by key, stable so equal keys keep input order.
// Numeric columns compare numerically, the rest lexically.
func Sort(records []adminapi.OfflineRecord, key SortKey, desc bool) []adminapi.OfflineRecord {
	out := make([]adminapi.OfflineRecord, len(records))
	copy(out, records)

	less := func(a, b adminapi.OfflineRecord) bool {
		switch key {
		case SortByRecordID:
			return a.RecordID < b.RecordID
		case SortByAmount:
			return a.Amount < b.Amount
		case SortByUserID:
			return a.RechargeUserID < b.RechargeUserID
		case SortByNumber:
			return a.Number < b.Number
		case SortByOperator:
			return a.OperatorName < b.OperatorName
		case SortByCircle:
			return a.Circle < b.Circle
		default:
			return a.RecordID < b.RecordID
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Paginate returns the 1-based page of a list. Out-of-range pages,
// including p < 1, yield an empty slice.
func Paginate(records []adminapi.OfflineRecord, page, pageSize int) []adminapi.OfflineRecord {
	if page < 1 || pageSize <= 0 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return nil
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// Project derives the visible slice from the full record list: filter,
// then stable sort, then paginate.
func Project(records []adminapi.OfflineRecord, v ViewState) []adminapi.OfflineRecord {
	filtered := Filter(records, v.SearchTerm)
	sorted := Sort(filtered, v.SortKey, v.SortDesc)
	return Paginate(sorted, v.Page, v.PageSize)
}

// FilteredCount returns how many records match the current search.
func FilteredCount(records []adminapi.OfflineRecord, v ViewState) int {
	return len(Filter(records, v.SearchTerm))
}
