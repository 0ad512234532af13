package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"devfolio/internal/domain/entities"
	mock_interfaces "devfolio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_GenerateForAssessment(t *testing.T) {
	t.Run("invalid assessment id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.GenerateForAssessment(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidAssessmentID) {
			t.Fatalf("expected ErrInvalidAssessmentID, got %v", err)
		}
	})

	t.Run("assessment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessments := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewQuoteUseCase(nil, assessments)

		assessments.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.ProjectAssessment{}, nil)

		_, err := uc.GenerateForAssessment(context.Background(), "a-1")
		if !errors.Is(err, ErrAssessmentNotFound) {
			t.Fatalf("expected ErrAssessmentNotFound, got %v", err)
		}
	})

	t.Run("archived assessment refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessments := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewQuoteUseCase(nil, assessments)

		assessments.EXPECT().GetByID(gomock.Any(), "a-1").
			Return(entities.ProjectAssessment{ID: "a-1", Status: entities.AssessmentStatusArchived}, nil)

		_, err := uc.GenerateForAssessment(context.Background(), "a-1")
		if !errors.Is(err, ErrAssessmentArchived) {
			t.Fatalf("expected ErrAssessmentArchived, got %v", err)
		}
	})

	t.Run("already quoted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		assessments := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewQuoteUseCase(quotes, assessments)

		assessments.EXPECT().GetByID(gomock.Any(), "a-1").
			Return(entities.ProjectAssessment{ID: "a-1", Name: "Ana", Email: "a@b.c", ProjectType: "website"}, nil)
		quotes.EXPECT().GetByAssessmentID(gomock.Any(), "a-1").Return(entities.Quote{ID: "existing"}, nil)

		_, err := uc.GenerateForAssessment(context.Background(), "a-1")
		if !errors.Is(err, ErrQuoteAlreadyExists) {
			t.Fatalf("expected ErrQuoteAlreadyExists, got %v", err)
		}
	})

	t.Run("generate success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		assessments := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewQuoteUseCase(quotes, assessments)

		assessments.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.ProjectAssessment{
			ID:          "a-1",
			Name:        "Ana",
			Email:       "a@b.c",
			ProjectType: "website",
		}, nil)
		quotes.EXPECT().GetByAssessmentID(gomock.Any(), "a-1").Return(entities.Quote{}, nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.AssessmentID != "a-1" || q.Status != entities.QuoteStatusPending {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if !strings.HasPrefix(q.QuoteNumber, "Q-") {
					t.Fatalf("unexpected quote number: %s", q.QuoteNumber)
				}
				if q.TotalAmount != q.Proposal.Pricing.FinalTotal {
					t.Fatalf("total %d does not mirror proposal total %d", q.TotalAmount, q.Proposal.Pricing.FinalTotal)
				}
				if q.ValidUntil.Before(q.CreatedAt) {
					t.Fatalf("expected validity window")
				}
				return q, nil
			},
		)

		res, err := uc.GenerateForAssessment(context.Background(), "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalAmount != 3600 {
			t.Fatalf("expected bare website total 3600, got %d", res.TotalAmount)
		}
	})
}

func TestQuoteUseCase_Preview(t *testing.T) {
	uc := NewQuoteUseCase(nil, nil)

	b := uc.PreviewPricing(entities.ProjectAssessment{ProjectType: "website"})
	if b.BasePrice != 3600 {
		t.Fatalf("expected base 3600, got %d", b.BasePrice)
	}

	c := uc.CompareBudget(entities.ProjectAssessment{ProjectType: "website", BudgetRange: "under-5k"})
	if c.Alignment.Status != entities.AlignmentAligned {
		t.Fatalf("expected aligned, got %s", c.Alignment.Status)
	}
}

func TestQuoteUseCase_StatusFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *QuoteUseCase, ctx context.Context, id string) (entities.Quote, error)
		status entities.QuoteStatus
	}{
		{name: "accept", call: (*QuoteUseCase).Accept, status: entities.QuoteStatusAccepted},
		{name: "reject", call: (*QuoteUseCase).Reject, status: entities.QuoteStatusRejected},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc := NewQuoteUseCase(nil, nil)
			_, err := tc.call(uc, context.Background(), "")
			if !errors.Is(err, ErrInvalidQuoteID) {
				t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
			}
		})

		t.Run(tc.name+" not pending", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(quotes, nil)

			quotes.EXPECT().GetByID(gomock.Any(), "q-1").
				Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusConverted}, nil)

			_, err := tc.call(uc, context.Background(), "q-1")
			if !errors.Is(err, ErrQuoteNotPending) {
				t.Fatalf("expected ErrQuoteNotPending, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(quotes, nil)

			quotes.EXPECT().GetByID(gomock.Any(), "q-1").
				Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending}, nil)
			quotes.EXPECT().UpdateStatusByID(gomock.Any(), "q-1", tc.status).
				Return(entities.Quote{ID: "q-1", Status: tc.status}, nil)

			res, err := tc.call(uc, context.Background(), "q-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected %s, got %s", tc.status, res.Status)
			}
		})
	}
}

func TestQuoteUseCase_GetByAssessmentID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(quotes, nil)

	quotes.EXPECT().GetByAssessmentID(gomock.Any(), "a-1").Return(entities.Quote{}, nil)

	_, err := uc.GetByAssessmentID(context.Background(), "a-1")
	if !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}
