package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"devfolio/internal/domain/entities"
	"devfolio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAssessmentNotFound      = errors.New("assessment not found")
	ErrInvalidAssessmentID     = errors.New("invalid assessment id")
	ErrInvalidAssessmentInput  = errors.New("invalid assessment input")
	ErrInvalidAssessmentStatus = errors.New("invalid assessment status")
	ErrAssessmentArchived      = errors.New("assessment is archived")
)

// IAssessmentUseCase exposes intake and back-office assessment operations.
//
// The intake wizard calls Submit once per questionnaire; everything after
// that is administrative (review flow, archiving).

type IAssessmentUseCase interface {
	Submit(ctx context.Context, a entities.ProjectAssessment) (entities.ProjectAssessment, error)
	GetByID(ctx context.Context, id string) (entities.ProjectAssessment, error)
	List(ctx context.Context) ([]entities.ProjectAssessment, error)
	UpdateStatus(ctx context.Context, id string, status entities.AssessmentStatus) (entities.ProjectAssessment, error)
}

type AssessmentUseCase struct {
	repo interfaces.IAssessmentRepository
}

var _ IAssessmentUseCase = (*AssessmentUseCase)(nil)

func NewAssessmentUseCase(repo interfaces.IAssessmentRepository) *AssessmentUseCase {
	return &AssessmentUseCase{repo: repo}
}

func (u *AssessmentUseCase) Submit(ctx context.Context, a entities.ProjectAssessment) (entities.ProjectAssessment, error) {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(a.Email)
	if a.Name == "" || a.Email == "" {
		return entities.ProjectAssessment{}, ErrInvalidAssessmentInput
	}

	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.Status = entities.AssessmentStatusPending
	a.CreatedAt = now
	a.UpdatedAt = now

	return u.repo.Create(ctx, a)
}

func (u *AssessmentUseCase) GetByID(ctx context.Context, id string) (entities.ProjectAssessment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProjectAssessment{}, ErrInvalidAssessmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProjectAssessment{}, err
	}
	if a.ID == "" {
		return entities.ProjectAssessment{}, ErrAssessmentNotFound
	}
	return a, nil
}

func (u *AssessmentUseCase) List(ctx context.Context) ([]entities.ProjectAssessment, error) {
	return u.repo.List(ctx)
}

var validAssessmentStatuses = map[entities.AssessmentStatus]struct{}{
	entities.AssessmentStatusPending:   {},
	entities.AssessmentStatusReviewed:  {},
	entities.AssessmentStatusContacted: {},
	entities.AssessmentStatusArchived:  {},
}

// UpdateStatus is the single mutation path on an assessment after creation.
func (u *AssessmentUseCase) UpdateStatus(ctx context.Context, id string, status entities.AssessmentStatus) (entities.ProjectAssessment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProjectAssessment{}, ErrInvalidAssessmentID
	}
	if _, ok := validAssessmentStatuses[status]; !ok {
		return entities.ProjectAssessment{}, ErrInvalidAssessmentStatus
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.ProjectAssessment{}, err
	}
	if updated.ID == "" {
		return entities.ProjectAssessment{}, ErrAssessmentNotFound
	}
	return updated, nil
}
