package handlers

import (
	"encoding/json"
	"errors"
	response "devfolio/internal/adapter/http/dto/response"
	"devfolio/internal/usecase"
	"devfolio/pkg"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for invoices and their payments.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// CreateInvoiceFromQuote converts an accepted quote into a pending invoice.
func (h *InvoiceHandler) CreateInvoiceFromQuote(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log.Printf("[invoice][handler] create start quote_id=%s", quoteID)

	invoice, err := h.usecase.CreateFromQuote(c.Request.Context(), quoteID)
	if err != nil {
		log.Printf("[invoice][handler] create failed quote_id=%s err=%v", quoteID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] create success quote_id=%s invoice_id=%s amount_cents=%d", quoteID, invoice.ID, invoice.AmountCents)

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

// PayInvoice collects payment for a pending invoice through the provider.
func (h *InvoiceHandler) PayInvoice(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[invoice][handler] pay start invoice_id=%s", invoiceID)
	mockMode := isPaymentGatewayMockEnabled()
	providerPayload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[invoice][handler] payload invalid in mock mode; fallback to empty payload invoice_id=%s err=%v", invoiceID, err)
			providerPayload = json.RawMessage("{}")
		} else {
			log.Printf("[invoice][handler] invalid payload invoice_id=%s err=%v", invoiceID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	paid, err := h.usecase.Pay(c.Request.Context(), invoiceID, providerPayload)
	if err != nil {
		log.Printf("[invoice][handler] pay failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] pay success invoice_id=%s status=%s provider_payment_id=%s", paid.ID, paid.Status, paid.ProviderPaymentID)

	c.JSON(http.StatusOK, response.FromInvoice(paid))
}

// GetInvoice returns a single invoice by id.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id := c.Param("invoice_id")

	invoice, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// ListInvoicesByQuote returns every invoice issued for a quote.
func (h *InvoiceHandler) ListInvoicesByQuote(c *gin.Context) {
	quoteID := c.Param("quote_id")

	invoices, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidPaymentInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "Quote not accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotPending):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PENDING", "Invoice is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
