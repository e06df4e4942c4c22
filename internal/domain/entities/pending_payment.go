package entities

// PaymentStatus represents the lifecycle of a queued payment.
//
// The queue knows a single status: a payment is "pendiente" from capture until
// the server acknowledges it. Removal from the queue is the only terminal
// transition, so no other values exist.

type PaymentStatus string

const PaymentStatusPendiente PaymentStatus = "pendiente"

// DefaultPaymentTypeLabel is applied when the capture flow did not resolve a
// human-readable label for the payment type code.
const DefaultPaymentTypeLabel = "Desconocido"

// PendingPayment is a captured payment awaiting submission to the collections
// backend.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (credito-index): credito
//
// The JSON field names match the shape the legacy device app persisted under
// the "pagos_pendientes" storage key, so a queue exported from a device can be
// loaded by the file-backed repository as-is.
//
// Identity:
//   - ID is derived from (credito, fechaCaptura, usuarioId, monto); two
//     captures with identical attributes collapse to the same ID and the
//     store keeps only the first.
//
// Records are never mutated after capture, only inserted and deleted.

type PendingPayment struct {
	ID               string        `json:"id"`
	CreditID         string        `json:"credito"`
	CycleID          string        `json:"ciclo"`
	Amount           float64       `json:"monto"`
	Comments         string        `json:"comentarios"`
	PaymentTypeCode  string        `json:"tipoPago"`
	PaymentTypeLabel string        `json:"tipoEtiqueta"`
	CapturedAt       string        `json:"fechaCaptura"`
	ClientName       string        `json:"nombreCliente"`
	Status           PaymentStatus `json:"estado"`

	ReceiptImageRef string   `json:"fotoComprobante,omitempty"`
	Latitude        *float64 `json:"latitud"`
	Longitude       *float64 `json:"longitud"`
	UserID          string   `json:"usuarioId,omitempty"`
}
