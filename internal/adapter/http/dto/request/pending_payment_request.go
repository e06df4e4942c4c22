package request

// CapturePaymentRequest is the payload the capture collaborator sends when a
// field officer registers a payment. Field names match the device app's
// capture shape; the id and pending status are assigned server-side.
type CapturePaymentRequest struct {
	Credito         string   `json:"credito" binding:"required"`
	Ciclo           string   `json:"ciclo" binding:"required"`
	Monto           float64  `json:"monto" binding:"required"`
	TipoPago        string   `json:"tipoPago" binding:"required"`
	TipoEtiqueta    string   `json:"tipoEtiqueta"`
	Comentarios     string   `json:"comentarios"`
	FechaCaptura    string   `json:"fechaCaptura"`
	NombreCliente   string   `json:"nombreCliente"`
	FotoComprobante string   `json:"fotoComprobante"`
	Latitud         *float64 `json:"latitud"`
	Longitud        *float64 `json:"longitud"`
	UsuarioID       string   `json:"usuarioId"`
}
