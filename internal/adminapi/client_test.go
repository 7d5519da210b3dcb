package adminapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListOfflineRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.URL.Query().Get("fibepeId"); got != "4821" {
			t.Errorf("fibepeId = %q, want %q", got, "4821")
		}
		fmt.Fprint(w, `{"IsSuccess":true,"payLoad":{"OfflineData":[
			{"RecordID":7,"Number":"9876543210","OperatorName":"Airtel","Circle":"Delhi","Amount":199,"ServiceNumber":555,"RechargeUserId":4821},
			{"RecordID":9,"Number":"9123456780","OperatorName":"Jio","Circle":"Mumbai","Amount":299,"ServiceNumber":556,"RechargeUserId":4821}
		]}}`)
	}))
	defer srv.Close()

	client := New(srv.URL, "")
	records, err := client.ListOfflineRecords("4821")
	if err != nil {
		t.Fatalf("ListOfflineRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].RecordID != 7 || records[0].OperatorName != "Airtel" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Amount != 299 {
		t.Errorf("second record amount = %v, want 299", records[1].Amount)
	}
}

func TestListOfflineRecordsAbsentPayload(t *testing.T) {
	// A success flag with no record array means an empty list, not an error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"IsSuccess":true}`)
	}))
	defer srv.Close()

	records, err := New(srv.URL, "").ListOfflineRecords("4821")
	if err != nil {
		t.Fatalf("ListOfflineRecords: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestLockRecordFailure(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "server message preferred",
			body:    `{"IsSuccess":false,"Message":"Already locked by another operator"}`,
			wantMsg: "Already locked by another operator",
		},
		{
			name:    "fallback when message absent",
			body:    `{"IsSuccess":false}`,
			wantMsg: "Failed to lock the record.",
		},
		{
			name:    "missing success flag is a failure",
			body:    `{"Message":""}`,
			wantMsg: "Failed to lock the record.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			err := New(srv.URL, "").LockRecord(42, "4821")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !IsBusinessFailure(err) {
				t.Errorf("expected business failure, got %T", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestUpdateRecordParams(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		fmt.Fprint(w, `{"IsSuccess":true}`)
	}))
	defer srv.Close()

	if err := New(srv.URL, "").UpdateRecord(7, "4821", "ABC123", "OP-99"); err != nil {
		t.Fatalf("UpdateRecord: %v", err)
	}

	want := map[string]string{
		"recordId":   "7",
		"fibepeId":   "4821",
		"confNumber": "ABC123",
		"opRefId":    "OP-99",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}
}

func TestRefundUsesLedgerIDParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ledgerId"); got != "555" {
			t.Errorf("ledgerId = %q, want %q", got, "555")
		}
		fmt.Fprint(w, `{"IsSuccess":true}`)
	}))
	defer srv.Close()

	if err := New(srv.URL, "").Refund(555, "4821"); err != nil {
		t.Fatalf("Refund: %v", err)
	}
}

func TestHTTPErrorClasses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := New(srv.URL, "token").LockRecord(1, "4821")
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMalformedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>gateway timeout</html>`)
	}))
	defer srv.Close()

	if _, err := New(srv.URL, "").ListOfflineRecords("4821"); err == nil {
		t.Fatal("expected decode error for non-JSON body")
	}
}

func TestAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer tok-1")
		}
		fmt.Fprint(w, `{"IsSuccess":true,"payLoad":{"VendorGSTListResponse":[{"VendorName":"Acme","FibePeID":12}]}}`)
	}))
	defer srv.Close()

	vendors, err := New(srv.URL, "tok-1").VendorList()
	if err != nil {
		t.Fatalf("VendorList: %v", err)
	}
	if len(vendors) != 1 || vendors[0].VendorName != "Acme" {
		t.Errorf("unexpected vendors: %+v", vendors)
	}
}
