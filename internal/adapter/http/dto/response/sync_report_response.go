package response

import (
	"encoding/json"

	"cobranza_campo/internal/domain/entities"
)

type SyncReportItemResponse struct {
	PagoID  string          `json:"pagoId"`
	Credito string          `json:"credito"`
	Monto   float64         `json:"monto"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// SyncReportResponse renders one batch reconciliation. Success is true only
// when every attempted payment was acknowledged; a mix of exitosos and
// fallidos is the partial-delivery case the sync screen messages separately.
type SyncReportResponse struct {
	BatchID  string                   `json:"batchId"`
	Success  bool                     `json:"success"`
	Total    int                      `json:"total"`
	Exitosos []SyncReportItemResponse `json:"exitosos"`
	Fallidos []SyncReportItemResponse `json:"fallidos"`
}

type SelectionBucketResponse struct {
	Cantidad int     `json:"cantidad"`
	Monto    float64 `json:"monto"`
}

type SelectionSummaryResponse struct {
	Seleccionados   SelectionBucketResponse `json:"seleccionados"`
	NoSeleccionados SelectionBucketResponse `json:"noSeleccionados"`
}

func FromSyncReport(r entities.SyncReport) SyncReportResponse {
	out := SyncReportResponse{
		BatchID:  r.BatchID,
		Success:  r.Success(),
		Total:    r.Total,
		Exitosos: make([]SyncReportItemResponse, 0, len(r.Successes)),
		Fallidos: make([]SyncReportItemResponse, 0, len(r.Failures)),
	}
	for _, item := range r.Successes {
		out.Exitosos = append(out.Exitosos, fromSyncReportItem(item))
	}
	for _, item := range r.Failures {
		out.Fallidos = append(out.Fallidos, fromSyncReportItem(item))
	}
	return out
}

func fromSyncReportItem(item entities.SyncReportItem) SyncReportItemResponse {
	return SyncReportItemResponse{
		PagoID:  item.PaymentID,
		Credito: item.CreditID,
		Monto:   item.Amount,
		Data:    item.ServerPayload,
		Error:   item.ErrorMessage,
	}
}

func FromSelectionSummary(s entities.SelectionSummary) SelectionSummaryResponse {
	return SelectionSummaryResponse{
		Seleccionados: SelectionBucketResponse{
			Cantidad: s.Selected.Count,
			Monto:    s.Selected.Amount,
		},
		NoSeleccionados: SelectionBucketResponse{
			Cantidad: s.Unselected.Count,
			Monto:    s.Unselected.Amount,
		},
	}
}
