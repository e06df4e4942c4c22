package response

import (
	"cobranza_campo/internal/domain/entities"
)

// PendingPaymentResponse mirrors the persisted queue record shape.
type PendingPaymentResponse struct {
	ID              string   `json:"id"`
	Credito         string   `json:"credito"`
	Ciclo           string   `json:"ciclo"`
	Monto           float64  `json:"monto"`
	Comentarios     string   `json:"comentarios"`
	TipoPago        string   `json:"tipoPago"`
	TipoEtiqueta    string   `json:"tipoEtiqueta"`
	FechaCaptura    string   `json:"fechaCaptura"`
	NombreCliente   string   `json:"nombreCliente"`
	Estado          string   `json:"estado"`
	FotoComprobante string   `json:"fotoComprobante,omitempty"`
	Latitud         *float64 `json:"latitud"`
	Longitud        *float64 `json:"longitud"`
	UsuarioID       string   `json:"usuarioId,omitempty"`
}

// CapturePaymentResponse wraps a capture outcome; Duplicado reports that an
// identical capture was already queued and the stored record was returned.
type CapturePaymentResponse struct {
	Pago      PendingPaymentResponse `json:"pago"`
	Duplicado bool                   `json:"duplicado"`
}

type PendingPaymentListResponse struct {
	Pagos []PendingPaymentResponse `json:"pagos"`
	Total int                      `json:"total"`
}

type PendingTotalResponse struct {
	Credito string  `json:"credito"`
	Total   float64 `json:"total"`
}

func FromPendingPayment(p entities.PendingPayment) PendingPaymentResponse {
	return PendingPaymentResponse{
		ID:              p.ID,
		Credito:         p.CreditID,
		Ciclo:           p.CycleID,
		Monto:           p.Amount,
		Comentarios:     p.Comments,
		TipoPago:        p.PaymentTypeCode,
		TipoEtiqueta:    p.PaymentTypeLabel,
		FechaCaptura:    p.CapturedAt,
		NombreCliente:   p.ClientName,
		Estado:          string(p.Status),
		FotoComprobante: p.ReceiptImageRef,
		Latitud:         p.Latitude,
		Longitud:        p.Longitude,
		UsuarioID:       p.UserID,
	}
}

func FromPendingPayments(payments []entities.PendingPayment) PendingPaymentListResponse {
	out := PendingPaymentListResponse{
		Pagos: make([]PendingPaymentResponse, 0, len(payments)),
		Total: len(payments),
	}
	for _, p := range payments {
		out.Pagos = append(out.Pagos, FromPendingPayment(p))
	}
	return out
}
