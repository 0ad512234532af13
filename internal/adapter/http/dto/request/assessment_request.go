package request

import (
	"strings"

	"devfolio/internal/domain/entities"
)

// ProjectSpecRequest carries the wizard's project answers. It is accepted on
// its own by the live-preview endpoints, where no identity is required yet.
type ProjectSpecRequest struct {
	ProjectType    string   `json:"project_type"`
	Description    string   `json:"description"`
	TargetAudience string   `json:"target_audience"`
	Goals          []string `json:"goals"`

	Platforms      []string `json:"platforms"`
	DataStorage    string   `json:"data_storage"`
	Authentication string   `json:"authentication"`
	NeedsPayments  bool     `json:"needs_payments"`
	NeedsRealtime  bool     `json:"needs_realtime"`
	APIAccess      []string `json:"api_access"`
	CMS            string   `json:"cms"`
	Features       []string `json:"features"`
	Integrations   []string `json:"integrations"`

	DesignStyle        string `json:"design_style"`
	HasBrandGuidelines bool   `json:"has_brand_guidelines"`

	BusinessStage string `json:"business_stage"`
	PrimaryGoal   string `json:"primary_goal"`
	ExpectedUsers string `json:"expected_users"`
	RevenueModel  string `json:"revenue_model"`

	PreferredTimeline string `json:"preferred_timeline"`
	BudgetRange       string `json:"budget_range"`
	BudgetFlexibility string `json:"budget_flexibility"`
}

func (r ProjectSpecRequest) ToEntity() entities.ProjectAssessment {
	return entities.ProjectAssessment{
		ProjectType:        strings.TrimSpace(r.ProjectType),
		Description:        strings.TrimSpace(r.Description),
		TargetAudience:     strings.TrimSpace(r.TargetAudience),
		Goals:              r.Goals,
		Platforms:          r.Platforms,
		DataStorage:        strings.TrimSpace(r.DataStorage),
		Authentication:     strings.TrimSpace(r.Authentication),
		NeedsPayments:      r.NeedsPayments,
		NeedsRealtime:      r.NeedsRealtime,
		APIAccess:          r.APIAccess,
		CMS:                strings.TrimSpace(r.CMS),
		Features:           r.Features,
		Integrations:       r.Integrations,
		DesignStyle:        strings.TrimSpace(r.DesignStyle),
		HasBrandGuidelines: r.HasBrandGuidelines,
		BusinessStage:      strings.TrimSpace(r.BusinessStage),
		PrimaryGoal:        strings.TrimSpace(r.PrimaryGoal),
		ExpectedUsers:      strings.TrimSpace(r.ExpectedUsers),
		RevenueModel:       strings.TrimSpace(r.RevenueModel),
		PreferredTimeline:  strings.TrimSpace(r.PreferredTimeline),
		BudgetRange:        strings.TrimSpace(r.BudgetRange),
		BudgetFlexibility:  strings.TrimSpace(r.BudgetFlexibility),
	}
}

// AssessmentRequest is the full intake payload. Identity is required here;
// the rest of the questionnaire stays optional so partial wizards still save.
type AssessmentRequest struct {
	ProjectSpecRequest

	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

func (r AssessmentRequest) ToEntity() entities.ProjectAssessment {
	a := r.ProjectSpecRequest.ToEntity()
	a.Name = strings.TrimSpace(r.Name)
	a.Email = strings.TrimSpace(r.Email)
	a.Phone = strings.TrimSpace(r.Phone)
	a.Company = strings.TrimSpace(r.Company)
	return a
}

// StatusUpdateRequest is the back-office status transition payload.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusUpdateRequest) ResolveStatus() entities.AssessmentStatus {
	return entities.AssessmentStatus(strings.TrimSpace(strings.ToLower(r.Status)))
}
