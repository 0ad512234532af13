package response

import (
	"testing"
	"time"

	"devfolio/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:           "q-1",
		QuoteNumber:  "Q-20260830-ABCDEF",
		AssessmentID: "a-1",
		Title:        "Website Proposal for Ana",
		TotalAmount:  3600,
		Status:       entities.QuoteStatusPending,
		ValidUntil:   now.AddDate(0, 0, 30),
		CreatedAt:    now,
		UpdatedAt:    now,
		Proposal: entities.ProposalDocument{
			Title: "Website Proposal for Ana",
			Pricing: entities.ProposalPricing{
				FinalTotal: 3600,
			},
		},
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.QuoteNumber != "Q-20260830-ABCDEF" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.TotalAmount != 3600 || res.Status != "pending" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Proposal.Pricing.FinalTotal != 3600 {
		t.Fatalf("expected embedded proposal, got %+v", res.Proposal)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromInvoice(t *testing.T) {
	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:                 "i-1",
		QuoteID:            "q-1",
		InvoiceNumber:      "INV-20260830-ABCDEF",
		AmountCents:        360000,
		Status:             entities.InvoiceStatusPaid,
		IssuedAt:           now,
		PaidAt:             &now,
		ProviderPaymentID:  "prov-9",
		ProviderPayloadRaw: []byte(`{"status":"approved"}`),
	}

	res := FromInvoice(inv)
	if res.AmountCents != 360000 || res.Status != "paid" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.ProviderPayloadRaw != `{"status":"approved"}` {
		t.Fatalf("unexpected raw payload: %q", res.ProviderPayloadRaw)
	}
	if res.PaidAt == nil || !res.PaidAt.Equal(now) {
		t.Fatalf("unexpected paid_at: %+v", res.PaidAt)
	}
}
