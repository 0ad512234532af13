package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devfolio/internal/adapter/http/handlers/mocks"
	"devfolio/internal/domain/entities"
	"devfolio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_CreateInvoiceFromQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("quote not accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/invoice", h.CreateInvoiceFromQuote)

		uc.EXPECT().CreateFromQuote(gomock.Any(), "q-1").Return(entities.Invoice{}, usecase.ErrQuoteNotAccepted)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/invoice", h.CreateInvoiceFromQuote)

		now := time.Now().UTC()
		uc.EXPECT().CreateFromQuote(gomock.Any(), "q-1").Return(entities.Invoice{
			ID:            "i-1",
			QuoteID:       "q-1",
			InvoiceNumber: "INV-20260830-ABCDEF",
			AmountCents:   360000,
			Status:        entities.InvoiceStatusPending,
			IssuedAt:      now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "i-1" || body["amount_cents"] != 360000.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_PayInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payments", h.PayInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/i-1/payments", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload falls back in mock mode", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payments", h.PayInvoice)

		uc.EXPECT().Pay(gomock.Any(), "i-1", json.RawMessage("{}")).Return(entities.Invoice{ID: "i-1", Status: entities.InvoiceStatusPaid}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/i-1/payments", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("wrapped provider payload is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payments", h.PayInvoice)

		uc.EXPECT().Pay(gomock.Any(), "i-1", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, payload json.RawMessage) (entities.Invoice, error) {
				var inner map[string]any
				if err := json.Unmarshal(payload, &inner); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if inner["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped provider payload, got %s", string(payload))
				}
				return entities.Invoice{ID: "i-1", Status: entities.InvoiceStatusPaid}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/i-1/payments", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invoice not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payments", h.PayInvoice)

		uc.EXPECT().Pay(gomock.Any(), "i-1", gomock.Any()).Return(entities.Invoice{}, usecase.ErrInvoiceNotPending)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/i-1/payments", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	r := gin.New()
	r.GET("/v1/invoices/:invoice_id", h.GetInvoice)

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/invoices/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestInvoiceHandler_ListInvoicesByQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	r := gin.New()
	r.GET("/v1/quotes/:quote_id/invoices", h.ListInvoicesByQuote)

	uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.Invoice{
		{ID: "i-1", QuoteID: "q-1", Status: entities.InvoiceStatusPending},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/invoices", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 {
		t.Fatalf("expected 1 invoice, got %s", w.Body.String())
	}
}

func TestReadProviderPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(body string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		return c
	}

	t.Run("empty body becomes empty object", func(t *testing.T) {
		payload, err := readProviderPayload(build(""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(payload) != "{}" {
			t.Fatalf("expected {}, got %s", string(payload))
		}
	})

	t.Run("invalid json rejected", func(t *testing.T) {
		if _, err := readProviderPayload(build("not json")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("null wrapped payload rejected", func(t *testing.T) {
		if _, err := readProviderPayload(build(`{"provider_payload":null}`)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bare payload passes through", func(t *testing.T) {
		payload, err := readProviderPayload(build(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(payload) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected payload: %s", string(payload))
		}
	})
}

func TestMapInvoiceError(t *testing.T) {
	if got := mapInvoiceError(usecase.ErrInvalidInvoiceID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInvoiceError(usecase.ErrInvalidPaymentInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInvoiceError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapInvoiceError(usecase.ErrQuoteNotAccepted); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapInvoiceError(usecase.ErrInvoiceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapInvoiceError(usecase.ErrInvoiceNotPending); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapInvoiceError(usecase.ErrGatewayNotConfigured); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapInvoiceError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
