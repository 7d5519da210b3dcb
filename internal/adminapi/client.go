// Package adminapi is a typed HTTP client for the vendor administration
// API. The wire protocol is simple: every operation is an HTTP POST with
// query-string parameters, and every response is a JSON envelope with an
// IsSuccess flag, an optional Message, and an operation-specific payLoad.
// All failure modes (transport, non-2xx, missing success flag) are
// normalized to errors here so downstream code never inspects raw JSON.
package adminapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is an HTTP client for the admin API.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// New creates a new admin API client.
func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// envelope is the common response wrapper. A body that does not decode
// to this shape, or decodes with IsSuccess absent, is treated as a
// failure.
type envelope struct {
	IsSuccess bool            `json:"IsSuccess"`
	Message   string          `json:"Message"`
	PayLoad   json.RawMessage `json:"payLoad"`
}

// ListOfflineRecords fetches the offline reconciliation records for the
// given owner. A success response with no records decodes to an empty
// slice, never nil-with-error.
func (c *Client) ListOfflineRecords(ownerID string) ([]OfflineRecord, error) {
	params := url.Values{}
	params.Set("fibepeId", ownerID)

	env, err := c.post("/api/User/Admin/GetOfflineData", params, fallbackList)
	if err != nil {
		return nil, err
	}

	var payload offlineDataPayload
	if len(env.PayLoad) > 0 {
		if err := json.Unmarshal(env.PayLoad, &payload); err != nil {
			return nil, fmt.Errorf("decode offline data: %w", err)
		}
	}
	if payload.OfflineData == nil {
		return []OfflineRecord{}, nil
	}
	return payload.OfflineData, nil
}

// LockRecord asks the server for an exclusive claim on a record. The
// server is the lock authority; a false success flag means another
// operator holds it.
func (c *Client) LockRecord(recordID int64, ownerID string) error {
	params := url.Values{}
	params.Set("recordId", strconv.FormatInt(recordID, 10))
	params.Set("fibepeId", ownerID)

	_, err := c.post("/api/User/Admin/LockOfflineRecord", params, fallbackLock)
	return err
}

// UpdateRecord submits the reconciliation result for a locked record.
func (c *Client) UpdateRecord(recordID int64, ownerID, confNumber, opRefID string) error {
	params := url.Values{}
	params.Set("recordId", strconv.FormatInt(recordID, 10))
	params.Set("fibepeId", ownerID)
	params.Set("confNumber", confNumber)
	params.Set("opRefId", opRefID)

	_, err := c.post("/api/User/Admin/UpdateOfflineRecord", params, fallbackUpdate)
	return err
}

// Refund triggers a refund against a record's service ledger entry.
func (c *Client) Refund(serviceNumber int64, ownerID string) error {
	params := url.Values{}
	params.Set("ledgerId", strconv.FormatInt(serviceNumber, 10))
	params.Set("fibepeId", ownerID)

	_, err := c.post("/api/User/Admin/Refund", params, fallbackRefund)
	return err
}

// RefundDetails fetches the refund report for a calendar day.
func (c *Client) RefundDetails(day, month, year int) ([]RefundDetail, error) {
	env, err := c.post("/api/User/Vendor/GetRefundDetail", dateParams(day, month, year), fallbackReport)
	if err != nil {
		return nil, err
	}

	var payload refundDetailPayload
	if len(env.PayLoad) > 0 {
		if err := json.Unmarshal(env.PayLoad, &payload); err != nil {
			return nil, fmt.Errorf("decode refund details: %w", err)
		}
	}
	return payload.RefundDetailResponse, nil
}

// UtilityDetails fetches the utility transaction report for a calendar day.
func (c *Client) UtilityDetails(day, month, year int) ([]UtilityDetail, error) {
	env, err := c.post("/api/User/Vendor/GetUtilityDetail", dateParams(day, month, year), fallbackReport)
	if err != nil {
		return nil, err
	}

	var payload utilityPayload
	if len(env.PayLoad) > 0 {
		if err := json.Unmarshal(env.PayLoad, &payload); err != nil {
			return nil, fmt.Errorf("decode utility details: %w", err)
		}
	}
	return payload.UtilityDetailResponse, nil
}

// VendorList fetches all vendors known to the platform.
func (c *Client) VendorList() ([]Vendor, error) {
	env, err := c.post("/api/User/Vendor/GetVendorGSTList", url.Values{}, fallbackVendors)
	if err != nil {
		return nil, err
	}

	var payload vendorListPayload
	if len(env.PayLoad) > 0 {
		if err := json.Unmarshal(env.PayLoad, &payload); err != nil {
			return nil, fmt.Errorf("decode vendor list: %w", err)
		}
	}
	return payload.VendorGSTListResponse, nil
}

// VendorLedger fetches a vendor's ledger for a month.
func (c *Client) VendorLedger(vendorID int64, month, year int) ([]LedgerEntry, error) {
	params := url.Values{}
	params.Set("fibepeId", strconv.FormatInt(vendorID, 10))
	params.Set("month", fmt.Sprintf("%02d", month))
	params.Set("year", strconv.Itoa(year))

	env, err := c.post("/api/User/Vendor/GetVendorLedger", params, fallbackLedger)
	if err != nil {
		return nil, err
	}

	var payload ledgerPayload
	if len(env.PayLoad) > 0 {
		if err := json.Unmarshal(env.PayLoad, &payload); err != nil {
			return nil, fmt.Errorf("decode vendor ledger: %w", err)
		}
	}
	return payload.LedgerResponse, nil
}

// InitiateFund records a fund transfer to a vendor.
func (c *Client) InitiateFund(f FundInitiation) error {
	params := url.Values{}
	params.Set("fibepeId", strconv.FormatInt(f.VendorID, 10))
	params.Set("bank", f.Bank)
	params.Set("amount", f.Amount)
	params.Set("date", f.Date)
	params.Set("refNumber", f.RefNumber)

	_, err := c.post("/api/User/Vendor/FundInitiate", params, fallbackFund)
	return err
}

// RecoverTransaction re-initiates a stuck transaction by ledger id.
func (c *Client) RecoverTransaction(ledgerID string) error {
	params := url.Values{}
	params.Set("ledgerID", ledgerID)

	_, err := c.post("/api/User/Vendor/ReInitiateByLedger", params, fallbackRecover)
	return err
}

func dateParams(day, month, year int) url.Values {
	params := url.Values{}
	params.Set("date", fmt.Sprintf("%02d", day))
	params.Set("month", fmt.Sprintf("%02d", month))
	params.Set("year", strconv.Itoa(year))
	return params
}

// post executes one admin API operation. Query parameters carry the
// request; the body is empty. A decoded envelope with IsSuccess true is
// the only success path, everything else becomes an error with either
// the server's message or the given fallback.
func (c *Client) post(path string, params url.Values, fallback string) (*envelope, error) {
	endpoint := c.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "*/*")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusForbidden:
		return nil, ErrForbidden
	case http.StatusNotFound:
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if !env.IsSuccess {
		msg := env.Message
		if msg == "" {
			msg = fallback
		}
		return nil, &APIError{Message: msg}
	}

	return &env, nil
}
