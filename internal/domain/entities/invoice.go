package entities

import (
	"encoding/json"
	"time"
)

// InvoiceStatus represents the payment outcome for an invoice.

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Invoice is the administratively-created billing record for an accepted quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// Monetary representation:
//   - AmountCents is cents-denominated for payment-provider compatibility,
//     unlike the quote/proposal pipeline which uses whole currency units.
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original gateway response (JSON) for
//     traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.
type Invoice struct {
	ID            string        `json:"id"`
	QuoteID       string        `json:"quote_id"`
	InvoiceNumber string        `json:"invoice_number"`
	AmountCents   int64         `json:"amount_cents"`
	Status        InvoiceStatus `json:"status"`
	IssuedAt      time.Time     `json:"issued_at"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`

	ProviderPaymentID  string                 `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
