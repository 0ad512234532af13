package interfaces

import (
	"context"
	"devfolio/internal/domain/entities"
)

// IAssessmentRepository abstracts DynamoDB persistence for ProjectAssessment.
//
// The funnel must be able to:
//   - store a new intake submission
//   - re-hydrate an assessment by id for proposal (re)generation
//   - list submissions for the back office
//   - move an assessment through its administrative statuses

type IAssessmentRepository interface {
	Create(ctx context.Context, a entities.ProjectAssessment) (entities.ProjectAssessment, error)
	GetByID(ctx context.Context, id string) (entities.ProjectAssessment, error)
	List(ctx context.Context) ([]entities.ProjectAssessment, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.AssessmentStatus) (entities.ProjectAssessment, error)
}
