package handlers

import (
	"errors"
	"log"
	"net/http"

	request "cobranza_campo/internal/adapter/http/dto/request"
	response "cobranza_campo/internal/adapter/http/dto/response"
	"cobranza_campo/internal/usecase"
	"cobranza_campo/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCapturePayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PendingPaymentHandler handles HTTP requests for the local payment queue.

type PendingPaymentHandler struct {
	usecase usecase.IPendingPaymentUseCase
}

func NewPendingPaymentHandler(uc usecase.IPendingPaymentUseCase) *PendingPaymentHandler {
	return &PendingPaymentHandler{usecase: uc}
}

// CapturePayment queues a captured payment. A capture identical to one
// already queued answers 200 with duplicado=true and the stored record; a
// fresh capture answers 201.
func (h *PendingPaymentHandler) CapturePayment(c *gin.Context) {
	var payload request.CapturePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCapturePayload.HTTPStatus, errInvalidCapturePayload.ToHTTPError())
		return
	}

	cmd := usecase.CaptureCommand{
		CreditID:         payload.Credito,
		CycleID:          payload.Ciclo,
		Amount:           payload.Monto,
		PaymentTypeCode:  payload.TipoPago,
		PaymentTypeLabel: payload.TipoEtiqueta,
		Comments:         payload.Comentarios,
		CapturedAt:       payload.FechaCaptura,
		ClientName:       payload.NombreCliente,
		ReceiptImageRef:  payload.FotoComprobante,
		Latitude:         payload.Latitud,
		Longitude:        payload.Longitud,
		UserID:           payload.UsuarioID,
	}

	stored, duplicate, err := h.usecase.Capture(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[pagos][handler] capture failed credito=%s err=%v", payload.Credito, err)
		appErr := mapPendingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if duplicate {
		status = http.StatusOK
	}
	c.JSON(status, response.CapturePaymentResponse{
		Pago:      response.FromPendingPayment(stored),
		Duplicado: duplicate,
	})
}

// ListPending returns the queue; the optional "buscar" query narrows it by
// client name or credit id once the term reaches three characters.
func (h *PendingPaymentHandler) ListPending(c *gin.Context) {
	payments, err := h.usecase.ListPending(c.Request.Context(), c.Query("buscar"))
	if err != nil {
		appErr := mapPendingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPendingPayments(payments))
}

func (h *PendingPaymentHandler) ListByCredit(c *gin.Context) {
	payments, err := h.usecase.ListByCredit(c.Request.Context(), c.Param("credito"))
	if err != nil {
		appErr := mapPendingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPendingPayments(payments))
}

func (h *PendingPaymentHandler) TotalByCredit(c *gin.Context) {
	credito := c.Param("credito")
	total, err := h.usecase.TotalByCredit(c.Request.Context(), credito)
	if err != nil {
		appErr := mapPendingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.PendingTotalResponse{Credito: credito, Total: total})
}

// DeletePayment removes one queued payment. The delete is idempotent, so an
// id that is no longer queued still answers 204.
func (h *PendingPaymentHandler) DeletePayment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPendingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PendingPaymentHandler) DeleteAll(c *gin.Context) {
	if err := h.usecase.DeleteAll(c.Request.Context()); err != nil {
		appErr := mapPendingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapPendingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCreditID),
		errors.Is(err, usecase.ErrInvalidCycleID),
		errors.Is(err, usecase.ErrInvalidPaymentType),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
