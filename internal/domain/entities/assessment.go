package entities

import "time"

// AssessmentStatus represents the back-office lifecycle of a project assessment.
//
// Domain notes:
//   - The assessment record is created once by the intake wizard and is
//     immutable afterwards, except for this status field.
//   - Status transitions are administrative (CRM review flow), never
//     client-driven.

type AssessmentStatus string

const (
	AssessmentStatusPending   AssessmentStatus = "pending"
	AssessmentStatusReviewed  AssessmentStatus = "reviewed"
	AssessmentStatusContacted AssessmentStatus = "contacted"
	AssessmentStatusArchived  AssessmentStatus = "archived"
)

// ProjectAssessment is the client-submitted questionnaire persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Every tier-valued field holds one of a small fixed set of keys used to look
// up pricing tables. Unknown or empty values are tolerated everywhere and fall
// back to a default bucket, so a stored assessment can always be priced.
type ProjectAssessment struct {
	ID string `json:"id"`

	// Identity
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`

	// Project descriptors
	ProjectType    string   `json:"project_type"`
	Description    string   `json:"description,omitempty"`
	TargetAudience string   `json:"target_audience,omitempty"`
	Goals          []string `json:"goals,omitempty"`

	// Technical choices
	Platforms      []string `json:"platforms,omitempty"`
	DataStorage    string   `json:"data_storage,omitempty"`
	Authentication string   `json:"authentication,omitempty"`
	NeedsPayments  bool     `json:"needs_payments,omitempty"`
	NeedsRealtime  bool     `json:"needs_realtime,omitempty"`
	APIAccess      []string `json:"api_access,omitempty"`
	CMS            string   `json:"cms,omitempty"`
	Features       []string `json:"features,omitempty"`
	Integrations   []string `json:"integrations,omitempty"`

	// Design preferences
	DesignStyle        string `json:"design_style,omitempty"`
	HasBrandGuidelines bool   `json:"has_brand_guidelines,omitempty"`

	// Business context
	BusinessStage string `json:"business_stage,omitempty"`
	PrimaryGoal   string `json:"primary_goal,omitempty"`
	ExpectedUsers string `json:"expected_users,omitempty"`
	RevenueModel  string `json:"revenue_model,omitempty"`

	// Constraints
	PreferredTimeline string `json:"preferred_timeline,omitempty"`
	BudgetRange       string `json:"budget_range,omitempty"`
	BudgetFlexibility string `json:"budget_flexibility,omitempty"`

	Status    AssessmentStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
