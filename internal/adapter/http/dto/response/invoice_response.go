package response

import (
	"time"

	"devfolio/internal/domain/entities"
)

type InvoiceResponse struct {
	ID            string     `json:"id"`
	QuoteID       string     `json:"quote_id"`
	InvoiceNumber string     `json:"invoice_number"`
	AmountCents   int64      `json:"amount_cents"`
	Status        string     `json:"status"`
	IssuedAt      time.Time  `json:"issued_at"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`

	ProviderPaymentID  string                 `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                 inv.ID,
		QuoteID:            inv.QuoteID,
		InvoiceNumber:      inv.InvoiceNumber,
		AmountCents:        inv.AmountCents,
		Status:             string(inv.Status),
		IssuedAt:           inv.IssuedAt,
		PaidAt:             inv.PaidAt,
		ProviderPaymentID:  inv.ProviderPaymentID,
		ProviderPayloadRaw: string(inv.ProviderPayloadRaw),
		ProviderPayload:    inv.ProviderPayload,
	}
}

func FromInvoices(list []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, FromInvoice(inv))
	}
	return out
}
