package response

import (
	"time"

	"devfolio/internal/domain/entities"
)

type AssessmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     string    `json:"company,omitempty"`
	ProjectType string    `json:"project_type"`
	BudgetRange string    `json:"budget_range,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Assessment entities.ProjectAssessment `json:"assessment"`
}

func FromAssessment(a entities.ProjectAssessment) AssessmentResponse {
	return AssessmentResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Company:     a.Company,
		ProjectType: a.ProjectType,
		BudgetRange: a.BudgetRange,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		Assessment:  a,
	}
}

func FromAssessments(list []entities.ProjectAssessment) []AssessmentResponse {
	out := make([]AssessmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAssessment(a))
	}
	return out
}
