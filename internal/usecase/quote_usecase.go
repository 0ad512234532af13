package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"devfolio/internal/domain/entities"
	"devfolio/internal/domain/pricing"
	"devfolio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrQuoteAlreadyExists = errors.New("quote already exists for this assessment")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrQuoteNotPending    = errors.New("quote is not pending")
)

const quoteValidityDays = 30

// IQuoteUseCase exposes quote generation and the wizard's live pricing preview.
//
// PreviewPricing and CompareBudget operate on the in-memory assessment the
// wizard is still filling out; GenerateForAssessment re-hydrates a persisted
// assessment and writes the resulting quote.

type IQuoteUseCase interface {
	PreviewPricing(a entities.ProjectAssessment) entities.PricingBreakdown
	CompareBudget(a entities.ProjectAssessment) entities.BudgetComparison
	GenerateForAssessment(ctx context.Context, assessmentID string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByAssessmentID(ctx context.Context, assessmentID string) (entities.Quote, error)
	Accept(ctx context.Context, id string) (entities.Quote, error)
	Reject(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo           interfaces.IQuoteRepository
	assessmentRepo interfaces.IAssessmentRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, assessmentRepo interfaces.IAssessmentRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, assessmentRepo: assessmentRepo}
}

// PreviewPricing prices an unsaved assessment for the wizard's live preview.
// Pure passthrough over the pricing core; no persistence is touched.
func (u *QuoteUseCase) PreviewPricing(a entities.ProjectAssessment) entities.PricingBreakdown {
	return pricing.Calculate(a)
}

// CompareBudget runs the budget comparison for an unsaved assessment.
func (u *QuoteUseCase) CompareBudget(a entities.ProjectAssessment) entities.BudgetComparison {
	return pricing.Compare(a)
}

func (u *QuoteUseCase) GenerateForAssessment(ctx context.Context, assessmentID string) (entities.Quote, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.Quote{}, ErrInvalidAssessmentID
	}

	assessment, err := u.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return entities.Quote{}, err
	}
	if assessment.ID == "" {
		return entities.Quote{}, ErrAssessmentNotFound
	}
	if assessment.Status == entities.AssessmentStatusArchived {
		return entities.Quote{}, ErrAssessmentArchived
	}

	// Enforce: 1 quote per assessment. Regeneration means a new assessment.
	if existing, err := u.repo.GetByAssessmentID(ctx, assessmentID); err != nil {
		return entities.Quote{}, err
	} else if existing.ID != "" {
		return entities.Quote{}, ErrQuoteAlreadyExists
	}

	proposal := pricing.Compose(assessment, assessmentID)

	now := time.Now().UTC()
	q := entities.Quote{
		ID:           uuid.NewString(),
		QuoteNumber:  newQuoteNumber(now),
		AssessmentID: assessmentID,
		Title:        proposal.Title,
		Proposal:     proposal,
		TotalAmount:  proposal.Pricing.FinalTotal,
		Status:       entities.QuoteStatusPending,
		ValidUntil:   now.AddDate(0, 0, quoteValidityDays),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] generated quote_number=%s assessment_id=%s total=%d", created.QuoteNumber, assessmentID, created.TotalAmount)
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) GetByAssessmentID(ctx context.Context, assessmentID string) (entities.Quote, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.Quote{}, ErrInvalidAssessmentID
	}

	q, err := u.repo.GetByAssessmentID(ctx, assessmentID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Accept(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatus(ctx, id, entities.QuoteStatusAccepted)
}

func (u *QuoteUseCase) Reject(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatus(ctx, id, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) updateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusPending {
		return entities.Quote{}, ErrQuoteNotPending
	}

	updated, err := u.repo.UpdateStatusByID(ctx, q.ID, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// newQuoteNumber builds the human-facing unique quote identifier,
// e.g. Q-20260830-7F3A2C.
func newQuoteNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("Q-%s-%s", now.Format("20060102"), suffix)
}
