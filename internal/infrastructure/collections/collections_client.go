package collections

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"cobranza_campo/internal/domain/entities"
	"cobranza_campo/internal/usecase/interfaces"
)

const (
	registerPaymentPath   = "/AgregarPagoCliente"
	defaultTimeoutSeconds = 10

	msgServerError  = "Error del servidor al registrar el pago"
	msgConnectivity = "Error de conexión"
)

var ErrMissingCollectionsAPIURL = errors.New("missing COLLECTIONS_API_URL")

// registerPaymentRequest is the wire payload the collections backend expects,
// one JSON object per payment.
type registerPaymentRequest struct {
	IDLocal              string   `json:"id_local"`
	CDGNS                string   `json:"cdgns"`
	Ciclo                string   `json:"ciclo"`
	Monto                float64  `json:"monto"`
	ComentariosEjecutivo string   `json:"comentarios_ejecutivo"`
	TipoMov              string   `json:"tipomov"`
	Foto                 *string  `json:"foto"`
	FechaValor           string   `json:"fecha_valor"`
	Latitud              *float64 `json:"latitud"`
	Longitud             *float64 `json:"longitud"`
}

// Client submits queued payments to the collections backend.
//
// Outcome classification: HTTP 200/201 is a success carrying the raw response
// body; anything else, including transport failures, is a failure carrying an
// extracted message. Retryable vs. permanent is not decided here; the caller
// keeps failed payments queued.

type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     interfaces.ITokenProvider
}

var _ interfaces.IPaymentSubmitter = (*Client)(nil)

// NewClient builds a submitter for the given base URL. The request timeout
// comes from COLLECTIONS_TIMEOUT_SECONDS (default 10); a timed-out request is
// a per-item failure, never an automatic retry.
func NewClient(baseURL string, tokens interfaces.ITokenProvider) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingCollectionsAPIURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout()},
		baseURL:    baseURL,
		tokens:     tokens,
	}, nil
}

func (c *Client) Submit(ctx context.Context, p entities.PendingPayment) entities.SubmissionResult {
	payload := registerPaymentRequest{
		IDLocal:              p.ID,
		CDGNS:                p.CreditID,
		Ciclo:                p.CycleID,
		Monto:                p.Amount,
		ComentariosEjecutivo: p.Comments,
		TipoMov:              p.PaymentTypeCode,
		Foto:                 c.encodeReceipt(p),
		FechaValor:           wireDate(p.CapturedAt),
		Latitud:              p.Latitude,
		Longitud:             p.Longitude,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[sync][client] encoding request failed pago_id=%s err=%v", p.ID, err)
		return failure(p.ID, msgServerError)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+registerPaymentPath, bytes.NewReader(body))
	if err != nil {
		log.Printf("[sync][client] building request failed pago_id=%s err=%v", p.ID, err)
		return failure(p.ID, msgServerError)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	token, err := c.tokens.Token(ctx)
	if err != nil {
		log.Printf("[sync][client] resolving token failed pago_id=%s err=%v", p.ID, err)
		return failure(p.ID, msgConnectivity)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[sync][client] request failed pago_id=%s err=%v", p.ID, err)
		return failure(p.ID, msgConnectivity)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[sync][client] reading response failed pago_id=%s err=%v", p.ID, err)
		return failure(p.ID, msgConnectivity)
	}

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		log.Printf("[sync][client] payment registered pago_id=%s status=%d", p.ID, resp.StatusCode)
		return entities.SubmissionResult{
			PaymentID:     p.ID,
			Success:       true,
			ServerPayload: respBody,
		}
	}

	log.Printf("[sync][client] server rejected payment pago_id=%s status=%d", p.ID, resp.StatusCode)
	return failure(p.ID, serverMessage(respBody))
}

// encodeReceipt resolves the local receipt photo to base64. A photo that
// cannot be read is dropped from the submission rather than failing it.
func (c *Client) encodeReceipt(p entities.PendingPayment) *string {
	if p.ReceiptImageRef == "" {
		return nil
	}

	raw, err := os.ReadFile(p.ReceiptImageRef)
	if err != nil {
		log.Printf("[sync][client] reading receipt failed, submitting without photo pago_id=%s ref=%s err=%v", p.ID, p.ReceiptImageRef, err)
		return nil
	}

	encoded := base64.StdEncoding.EncodeToString(raw)
	return &encoded
}

// wireDate reduces a capture timestamp to the "YYYY-MM-DD" value date. Legacy
// captures may carry "DD/MM/YYYY" in the date part; those are reversed into
// wire order.
func wireDate(capturedAt string) string {
	datePart := strings.SplitN(capturedAt, "T", 2)[0]
	if !strings.Contains(datePart, "/") {
		return datePart
	}

	parts := strings.Split(datePart, "/")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "-")
}

// serverMessage prefers the backend's own message when the error body carries
// one.
func serverMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && strings.TrimSpace(parsed.Message) != "" {
		return parsed.Message
	}
	return msgServerError
}

func failure(paymentID, message string) entities.SubmissionResult {
	return entities.SubmissionResult{PaymentID: paymentID, ErrorMessage: message}
}

func requestTimeout() time.Duration {
	raw := strings.TrimSpace(os.Getenv("COLLECTIONS_TIMEOUT_SECONDS"))
	if raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultTimeoutSeconds * time.Second
}
