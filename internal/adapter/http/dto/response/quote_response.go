package response

import (
	"time"

	"devfolio/internal/domain/entities"
)

type QuoteResponse struct {
	ID           string                    `json:"id"`
	QuoteNumber  string                    `json:"quote_number"`
	AssessmentID string                    `json:"assessment_id"`
	Title        string                    `json:"title"`
	TotalAmount  int                       `json:"total_amount"`
	Status       string                    `json:"status"`
	ValidUntil   time.Time                 `json:"valid_until"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
	Proposal     entities.ProposalDocument `json:"proposal"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:           q.ID,
		QuoteNumber:  q.QuoteNumber,
		AssessmentID: q.AssessmentID,
		Title:        q.Title,
		TotalAmount:  q.TotalAmount,
		Status:       string(q.Status),
		ValidUntil:   q.ValidUntil,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
		Proposal:     q.Proposal,
	}
}
