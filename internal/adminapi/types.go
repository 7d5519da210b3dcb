package adminapi

// OfflineRecord is a single offline recharge record as returned by the
// admin list endpoint. Records are immutable snapshots; the server is
// the only writer.
type OfflineRecord struct {
	RecordID       int64   `json:"RecordID"`
	Number         string  `json:"Number"`
	OperatorName   string  `json:"OperatorName"`
	Circle         string  `json:"Circle"`
	Amount         float64 `json:"Amount"`
	ServiceNumber  int64   `json:"ServiceNumber"`
	RechargeUserID int64   `json:"RechargeUserId"`
}

// offlineDataPayload is the payLoad shape of the list response.
type offlineDataPayload struct {
	OfflineData []OfflineRecord `json:"OfflineData"`
}

// RefundDetail is one row of the dated refund report.
type RefundDetail struct {
	LedgerID     string `json:"Ledger_Id"`
	ProductID    string `json:"Product_Id"`
	TraceID      string `json:"Trace_Id"`
	OwnerID      string `json:"FibePe_Id"`
	PaymentID    string `json:"Payment_Id"`
	Payout       string `json:"Payout"`
	Discount     string `json:"Discount"`
	Surcharge    string `json:"Surcharge"`
	RefundAmount string `json:"RefundAmount"`
	InsertedOn   string `json:"InsertOn"`
}

type refundDetailPayload struct {
	RefundDetailResponse []RefundDetail `json:"RefundDetailResponse"`
}

// Vendor is a vendor identity from the vendor list endpoint.
type Vendor struct {
	VendorName string `json:"VendorName"`
	OwnerID    int64  `json:"FibePeID"`
}

type vendorListPayload struct {
	VendorGSTListResponse []Vendor `json:"VendorGSTListResponse"`
}

// LedgerEntry is one row of a vendor's monthly ledger.
type LedgerEntry struct {
	LedgerID    string `json:"Ledger_Id"`
	TxnType     string `json:"TxnType"`
	Amount      string `json:"Amount"`
	Balance     string `json:"Balance"`
	Description string `json:"Description"`
	InsertedOn  string `json:"InsertOn"`
}

type ledgerPayload struct {
	LedgerResponse []LedgerEntry `json:"LedgerResponse"`
}

// UtilityDetail is one row of the dated utility transaction report.
type UtilityDetail struct {
	LedgerID     string `json:"Ledger_Id"`
	ProviderName string `json:"ProviderName"`
	Number       string `json:"Number"`
	Amount       string `json:"Amount"`
	Status       string `json:"Status"`
	InsertedOn   string `json:"InsertOn"`
}

type utilityPayload struct {
	UtilityDetailResponse []UtilityDetail `json:"UtilityDetailResponse"`
}

// FundInitiation is the input for a fund-initiation request.
type FundInitiation struct {
	VendorID  int64
	Bank      string
	Amount    string
	Date      string
	RefNumber string
}
