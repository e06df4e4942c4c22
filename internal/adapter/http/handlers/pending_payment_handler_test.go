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

func init() {
	gin.SetMode(gin.TestMode)
}

func newPendingPaymentRouter(uc usecase.IPendingPaymentUseCase) *gin.Engine {
	h := NewPendingPaymentHandler(uc)
	r := gin.New()
	r.POST("/v1/pagos", h.CapturePayment)
	r.GET("/v1/pagos", h.ListPending)
	r.GET("/v1/pagos/credito/:credito", h.ListByCredit)
	r.GET("/v1/pagos/credito/:credito/total", h.TotalByCredit)
	r.DELETE("/v1/pagos/:id", h.DeletePayment)
	r.DELETE("/v1/pagos", h.DeleteAll)
	return r
}

func storedPayment() entities.PendingPayment {
	return entities.PendingPayment{
		ID:               "abc123",
		CreditID:         "123456",
		CycleID:          "3",
		Amount:           500,
		PaymentTypeCode:  "PG",
		PaymentTypeLabel: "Pago",
		CapturedAt:       "2024-01-15T10:30:00.000Z",
		ClientName:       "Maria Lopez",
		Status:           entities.PaymentStatusPendiente,
	}
}

func TestPendingPaymentHandler_CapturePayment(t *testing.T) {
	t.Run("fresh capture answers 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPendingPaymentUseCase(ctrl)
		router := newPendingPaymentRouter(uc)

		uc.EXPECT().Capture(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.CaptureCommand) (entities.PendingPayment, bool, error) {
				if cmd.CreditID != "123456" || cmd.Amount != 500 || cmd.PaymentTypeCode != "PG" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return storedPayment(), false, nil
			})

		body := `{"credito":"123456","ciclo":"3","monto":500,"tipoPago":"PG"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/pagos", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}

		var resp response.CapturePaymentResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.Duplicado {
			t.Fatalf("expected duplicado=false")
		}
		if resp.Pago.ID != "abc123" || resp.Pago.Estado != "pendiente" {
			t.Fatalf("unexpected pago: %+v", resp.Pago)
		}
	})

	t.Run("duplicate capture answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPendingPaymentUseCase(ctrl)
		router := newPendingPaymentRouter(uc)

		uc.EXPECT().Capture(gomock.Any(), gomock.Any()).Return(storedPayment(), true, nil)

		body := `{"credito":"123456","ciclo":"3","monto":500,"tipoPago":"PG"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/pagos", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp response.CapturePaymentResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		if !resp.Duplicado {
			t.Fatalf("expected duplicado=true")
		}
	})

	t.Run("malformed body answers 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPendingPaymentUseCase(ctrl)
		router := newPendingPaymentRouter(uc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/pagos", bytes.NewBufferString(`{"credito":`))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation errors answer 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPendingPaymentUseCase(ctrl)
		router := newPendingPaymentRouter(uc)

		uc.EXPECT().Capture(gomock.Any(), gomock.Any()).Return(entities.PendingPayment{}, false, usecase.ErrInvalidAmount)

		body := `{"credito":"123456","ciclo":"3","monto":0.5,"tipoPago":"PG"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/pagos", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("storage errors answer 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPendingPaymentUseCase(ctrl)
		router := newPendingPaymentRouter(uc)

		uc.EXPECT().Capture(gomock.Any(), gomock.Any()).Return(entities.PendingPayment{}, false, errors.New("write failed"))

		body := `{"credito":"123456","ciclo":"3","monto":500,"tipoPago":"PG"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/pagos", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestPendingPaymentHandler_ListPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPendingPaymentUseCase(ctrl)
	router := newPendingPaymentRouter(uc)

	uc.EXPECT().ListPending(gomock.Any(), "maria").Return([]entities.PendingPayment{storedPayment()}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/v1/pagos?buscar=maria", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp response.PendingPaymentListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 1 || len(resp.Pagos) != 1 || resp.Pagos[0].Credito != "123456" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPendingPaymentHandler_ListByCredit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPendingPaymentUseCase(ctrl)
	router := newPendingPaymentRouter(uc)

	uc.EXPECT().ListByCredit(gomock.Any(), "123456").Return([]entities.PendingPayment{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/v1/pagos/credito/123456", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp response.PendingPaymentListResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Total != 0 || resp.Pagos == nil {
		t.Fatalf("expected an empty list, got %s", w.Body.String())
	}
}

func TestPendingPaymentHandler_TotalByCredit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPendingPaymentUseCase(ctrl)
	router := newPendingPaymentRouter(uc)

	uc.EXPECT().TotalByCredit(gomock.Any(), "123456").Return(600.25, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/v1/pagos/credito/123456/total", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp response.PendingTotalResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Credito != "123456" || resp.Total != 600.25 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPendingPaymentHandler_Delete(t *testing.T) {
	t.Run("single delete answers 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPendingPaymentUseCase(ctrl)
		router := newPendingPaymentRouter(uc)

		uc.EXPECT().Delete(gomock.Any(), "abc123").Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/v1/pagos/abc123", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("delete all answers 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPendingPaymentUseCase(ctrl)
		router := newPendingPaymentRouter(uc)

		uc.EXPECT().DeleteAll(gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/v1/pagos", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("delete failure answers 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPendingPaymentUseCase(ctrl)
		router := newPendingPaymentRouter(uc)

		uc.EXPECT().Delete(gomock.Any(), "abc123").Return(errors.New("write failed"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/v1/pagos/abc123", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
