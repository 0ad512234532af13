package entities

import "time"

// ProposalPhase is one timeline segment with its deliverables checklist.
type ProposalPhase struct {
	Name         string   `json:"name"`
	Weeks        int      `json:"weeks"`
	Deliverables []string `json:"deliverables"`
}

// ProposalTimeline is the phased delivery plan. Phase weeks are each rounded
// up, so their sum may slightly exceed TotalWeeks.
type ProposalTimeline struct {
	TotalWeeks int             `json:"total_weeks"`
	StartDate  time.Time       `json:"start_date"`
	Phases     []ProposalPhase `json:"phases"`
}

// PaymentMilestone is one entry of the four-milestone payment schedule.
type PaymentMilestone struct {
	Label      string `json:"label"`
	Percentage int    `json:"percentage"`
	Amount     int    `json:"amount"`
}

// ProposalPricing embeds the itemized breakdown plus the proposal's own total.
//
// FinalTotal is recomputed from the breakdown components and rounded to the
// nearest 100, a deliberately coarser rounding than the estimate range. The
// payment schedule always sums to FinalTotal exactly.
type ProposalPricing struct {
	Breakdown       PricingBreakdown   `json:"breakdown"`
	FinalTotal      int                `json:"final_total"`
	PaymentSchedule []PaymentMilestone `json:"payment_schedule"`
}

// AlternativeOption is one reduced-budget delivery strategy.
type AlternativeOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

// CarePlan is the optional post-launch upsell block.
type CarePlan struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	MonthlyPrice int    `json:"monthly_price"`
}

// ProposalDocument is the client-facing proposal embedded in a quote.
// AssessmentID links the document back to the intake submission it was
// generated from.
type ProposalDocument struct {
	AssessmentID    string   `json:"assessment_id"`
	Title           string   `json:"title"`
	ClientName      string   `json:"client_name"`
	ClientEmail     string   `json:"client_email"`
	ClientCompany   string   `json:"client_company,omitempty"`
	ProjectOverview string   `json:"project_overview"`
	ScopeOfWork     []string `json:"scope_of_work"`

	Timeline ProposalTimeline `json:"timeline"`
	Pricing  ProposalPricing  `json:"pricing"`

	Deliverables []string `json:"deliverables"`
	Expectations []string `json:"expectations"`
	NextSteps    []string `json:"next_steps"`

	CarePlan           *CarePlan           `json:"care_plan,omitempty"`
	AlternativeOptions []AlternativeOption `json:"alternative_options,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}
