package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	response "cobranza_campo/internal/adapter/http/dto/response"
	"cobranza_campo/internal/adapter/http/handlers/mocks"
	"cobranza_campo/internal/domain/entities"
	"cobranza_campo/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSyncRouter(uc usecase.ISyncUseCase) *gin.Engine {
	h := NewSyncHandler(uc)
	r := gin.New()
	r.POST("/v1/sincronizar", h.SyncPayments)
	r.POST("/v1/sincronizar/resumen", h.SyncSummary)
	return r
}

func partialReport() entities.SyncReport {
	return entities.SyncReport{
		BatchID: "batch-1",
		Total:   2,
		Successes: []entities.SyncReportItem{
			{PaymentID: "p1", CreditID: "123456", Amount: 500, ServerPayload: json.RawMessage(`{"folio":"F-001"}`)},
		},
		Failures: []entities.SyncReportItem{
			{PaymentID: "p2", CreditID: "654321", Amount: 250.5, ErrorMessage: "Error de conexión"},
		},
	}
}

func TestSyncHandler_SyncPayments(t *testing.T) {
	t.Run("explicit selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		router := newSyncRouter(uc)

		uc.EXPECT().SyncByIDs(gomock.Any(), []string{"p1", "p2"}).Return(partialReport(), nil)

		body := `{"ids":["p1"," p2 ","p1"]}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/sincronizar", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}

		var resp response.SyncReportResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.Success {
			t.Fatalf("partial delivery must not report success")
		}
		if resp.Total != 2 || len(resp.Exitosos) != 1 || len(resp.Fallidos) != 1 {
			t.Fatalf("unexpected report: %+v", resp)
		}
		if resp.Fallidos[0].Error != "Error de conexión" {
			t.Fatalf("unexpected failure message: %q", resp.Fallidos[0].Error)
		}
		if string(resp.Exitosos[0].Data) != `{"folio":"F-001"}` {
			t.Fatalf("unexpected server data: %s", resp.Exitosos[0].Data)
		}
	})

	t.Run("empty body syncs everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		router := newSyncRouter(uc)

		uc.EXPECT().SyncByIDs(gomock.Any(), gomock.Nil()).Return(entities.SyncReport{BatchID: "batch-2", Total: 1, Successes: []entities.SyncReportItem{{PaymentID: "p1"}}}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/sincronizar", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("malformed body answers 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		router := newSyncRouter(uc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/sincronizar", bytes.NewBufferString(`{"ids":`))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty selection answers 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		router := newSyncRouter(uc)

		uc.EXPECT().SyncByIDs(gomock.Any(), gomock.Any()).Return(entities.SyncReport{}, usecase.ErrEmptySelection)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/sincronizar", bytes.NewBufferString(`{"ids":["unknown"]}`))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("submitter not configured answers 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		router := newSyncRouter(uc)

		uc.EXPECT().SyncByIDs(gomock.Any(), gomock.Any()).Return(entities.SyncReport{}, usecase.ErrSubmitterNotConfigured)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/sincronizar", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("queue load failure answers 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		router := newSyncRouter(uc)

		uc.EXPECT().SyncByIDs(gomock.Any(), gomock.Any()).Return(entities.SyncReport{}, errors.New("storage unreadable"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/sincronizar", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestSyncHandler_SyncSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISyncUseCase(ctrl)
	router := newSyncRouter(uc)

	summary := entities.SelectionSummary{
		Selected:   entities.SelectionBucket{Count: 2, Amount: 600},
		Unselected: entities.SelectionBucket{Count: 1, Amount: 250.5},
	}
	uc.EXPECT().Summarize(gomock.Any(), []string{"p1", "p3"}, "maria").Return(summary, nil)

	body := `{"ids":["p1","p3"],"buscar":"maria"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/v1/sincronizar/resumen", bytes.NewBufferString(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var resp response.SelectionSummaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Seleccionados.Cantidad != 2 || resp.Seleccionados.Monto != 600 {
		t.Fatalf("unexpected seleccionados: %+v", resp.Seleccionados)
	}
	if resp.NoSeleccionados.Cantidad != 1 || resp.NoSeleccionados.Monto != 250.5 {
		t.Fatalf("unexpected noSeleccionados: %+v", resp.NoSeleccionados)
	}
}
