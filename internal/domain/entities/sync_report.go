package entities

import "encoding/json"

// SubmissionResult is the per-payment outcome of one submission attempt.
//
// It is a tagged success/failure, not a Go error: a rejected or unreachable
// submission is an expected outcome that the reconciler collects per item.
// The originating payment id is always carried so outcomes can be attributed.
type SubmissionResult struct {
	PaymentID     string          `json:"pagoId"`
	Success       bool            `json:"success"`
	ServerPayload json.RawMessage `json:"data,omitempty"`
	ErrorMessage  string          `json:"error,omitempty"`
}

// SyncReportItem is one attempted payment inside a SyncReport.
type SyncReportItem struct {
	PaymentID     string          `json:"pagoId"`
	CreditID      string          `json:"credito"`
	Amount        float64         `json:"monto"`
	ServerPayload json.RawMessage `json:"data,omitempty"`
	ErrorMessage  string          `json:"error,omitempty"`
}

// SyncReport is the outcome of one batch reconciliation.
//
// Invariant: len(Successes)+len(Failures) == Total, and every submitted
// payment id appears in exactly one of the two lists.
type SyncReport struct {
	BatchID   string           `json:"batchId"`
	Total     int              `json:"total"`
	Successes []SyncReportItem `json:"exitosos"`
	Failures  []SyncReportItem `json:"fallidos"`
}

// Success reports whether every payment in the batch was acknowledged.
func (r SyncReport) Success() bool {
	return len(r.Failures) == 0
}

// SelectionBucket aggregates one side of a sync selection.
type SelectionBucket struct {
	Count  int     `json:"cantidad"`
	Amount float64 `json:"monto"`
}

// SelectionSummary is the selected/unselected breakdown shown before a sync.
type SelectionSummary struct {
	Selected   SelectionBucket `json:"seleccionados"`
	Unselected SelectionBucket `json:"noSeleccionados"`
}
