package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"devfolio/internal/domain/entities"
	"devfolio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrQuoteNotAccepted     = errors.New("quote not accepted")
	ErrInvoiceNotPending    = errors.New("invoice is not pending")
	ErrInvalidPaymentInput  = errors.New("invalid payment payload")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// IInvoiceUseCase covers the administrative quote-to-invoice conversion and
// the gateway payment flow.
//
// Invoices are cents-denominated; conversion from the quote's whole-currency
// total happens exactly once, here.

type IInvoiceUseCase interface {
	CreateFromQuote(ctx context.Context, quoteID string) (entities.Invoice, error)
	Pay(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo      interfaces.IInvoiceRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, quoteRepo: quoteRepo, gateway: gateway}
}

func (u *InvoiceUseCase) CreateFromQuote(ctx context.Context, quoteID string) (entities.Invoice, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Invoice{}, ErrInvalidQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if q.ID == "" {
		return entities.Invoice{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAccepted {
		return entities.Invoice{}, ErrQuoteNotAccepted
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:            uuid.NewString(),
		QuoteID:       q.ID,
		InvoiceNumber: newInvoiceNumber(now),
		AmountCents:   int64(q.TotalAmount) * 100,
		Status:        entities.InvoiceStatusPending,
		IssuedAt:      now,
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}

	if _, err := u.quoteRepo.UpdateStatusByID(ctx, q.ID, entities.QuoteStatusConverted); err != nil {
		log.Printf("[invoice][usecase] failed marking quote converted quote_id=%s err=%v", q.ID, err)
	}

	log.Printf("[invoice][usecase] created invoice_number=%s quote_id=%s amount_cents=%d", created.InvoiceNumber, q.ID, created.AmountCents)
	return created, nil
}

// Pay charges the invoice through the configured gateway and records the
// provider response. The invoice amount in the database is the source of
// truth; any transaction_amount in the caller's payload is overwritten.
func (u *InvoiceUseCase) Pay(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if u.gateway == nil {
		return entities.Invoice{}, ErrGatewayNotConfigured
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.Invoice{}, ErrInvalidPaymentInput
	}

	inv, err := u.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status != entities.InvoiceStatusPending {
		return entities.Invoice{}, ErrInvoiceNotPending
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = inv.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Invoice %s", inv.InvoiceNumber)
		}
		reqMap["transaction_amount"] = float64(inv.AmountCents) / 100
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	log.Printf("[invoice][usecase] calling payment gateway invoice_id=%s", inv.ID)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[invoice][usecase] payment gateway failed invoice_id=%s err=%v", inv.ID, err)
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] payment gateway success invoice_id=%s provider_payment_id=%s provider_status=%s", inv.ID, providerPaymentID, providerStatus)

	paid, err := u.repo.MarkPaid(ctx, inv.ID, providerPaymentID, providerResp)
	if err != nil {
		return entities.Invoice{}, err
	}
	if paid.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return paid, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Invoice, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func newInvoiceNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), suffix)
}
