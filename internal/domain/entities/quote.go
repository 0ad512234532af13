package entities

import "time"

// QuoteStatus represents the lifecycle of a persisted quote.
//
// Domain notes:
//   - A quote is written once per proposal generation and is the funnel's
//     source of truth for what was offered to the client.
//   - Converted marks that an invoice was created from this quote.

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusConverted QuoteStatus = "converted"
)

// Quote is the persisted record wrapping a generated proposal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (assessment_id-index): assessment_id
//
// QuoteNumber is human-facing and unique; TotalAmount mirrors the proposal's
// FinalTotal in whole currency units.
type Quote struct {
	ID           string           `json:"id"`
	QuoteNumber  string           `json:"quote_number"`
	AssessmentID string           `json:"assessment_id"`
	Title        string           `json:"title"`
	Proposal     ProposalDocument `json:"proposal"`
	TotalAmount  int              `json:"total_amount"`
	Status       QuoteStatus      `json:"status"`
	ValidUntil   time.Time        `json:"valid_until"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
