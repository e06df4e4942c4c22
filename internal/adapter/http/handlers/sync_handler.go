package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "cobranza_campo/internal/adapter/http/dto/request"
	response "cobranza_campo/internal/adapter/http/dto/response"
	"cobranza_campo/internal/usecase"
	"cobranza_campo/pkg"

	"github.com/gin-gonic/gin"
)

// SyncHandler drives batch delivery of queued payments to the collections
// backend.

type SyncHandler struct {
	usecase usecase.ISyncUseCase
}

func NewSyncHandler(uc usecase.ISyncUseCase) *SyncHandler {
	return &SyncHandler{usecase: uc}
}

// SyncPayments submits the selected queued payments and answers with the
// reconciliation report. A report with both exitosos and fallidos is still a
// 200; the caller distinguishes full, partial and failed deliveries from the
// report itself.
func (h *SyncHandler) SyncPayments(c *gin.Context) {
	payload, err := readSyncRequest(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	report, err := h.usecase.SyncByIDs(c.Request.Context(), payload.NormalizedIDs())
	if err != nil {
		log.Printf("[sync][handler] sync failed err=%v", err)
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sync][handler] sync done batch_id=%s total=%d fallidos=%d", report.BatchID, report.Total, len(report.Failures))

	c.JSON(http.StatusOK, response.FromSyncReport(report))
}

// SyncSummary answers the selected/unselected breakdown shown before
// confirming a delivery.
func (h *SyncHandler) SyncSummary(c *gin.Context) {
	payload, err := readSyncRequest(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	summary, err := h.usecase.Summarize(c.Request.Context(), payload.NormalizedIDs(), payload.Buscar)
	if err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSelectionSummary(summary))
}

// readSyncRequest tolerates an absent body: an empty request means "sync
// everything queued".
func readSyncRequest(c *gin.Context) (request.SyncRequest, error) {
	var payload request.SyncRequest

	raw, err := c.GetRawData()
	if err != nil {
		return payload, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}

func mapSyncError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptySelection):
		return pkg.NewDomainErrorSimple("SIN_SELECCION", "No queued payments match the selection", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmitterNotConfigured):
		return pkg.NewDomainErrorSimple("SYNC_NOT_CONFIGURED", "Collections backend not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
