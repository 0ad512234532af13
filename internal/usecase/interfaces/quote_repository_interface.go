package interfaces

import (
	"context"
	"devfolio/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByAssessmentID(ctx context.Context, assessmentID string) (entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}
