package interfaces

import (
	"context"
	"devfolio/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Invoice, error)
	MarkPaid(ctx context.Context, id string, providerPaymentID string, raw []byte) (entities.Invoice, error)
}
