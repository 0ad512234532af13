package pricing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"devfolio/internal/domain/entities"
)

// Phase ratios of the generated timeline. Each phase duration is rounded up
// individually, so phases can sum to slightly more than the total.
var proposalPhases = []struct {
	name         string
	ratio        float64
	deliverables []string
}{
	{
		name:  "Discovery & Planning",
		ratio: 0.15,
		deliverables: []string{
			"Kickoff workshop and requirements review",
			"Technical architecture outline",
			"Content and asset inventory",
		},
	},
	{
		name:  "Design & Development",
		ratio: 0.60,
		deliverables: []string{
			"Design concepts and approved direction",
			"Iterative development builds",
			"Weekly progress reviews",
		},
	},
	{
		name:  "Testing & Refinement",
		ratio: 0.15,
		deliverables: []string{
			"Cross-browser and device testing",
			"Performance and accessibility pass",
			"Client acceptance review",
		},
	},
	{
		name:  "Launch & Handover",
		ratio: 0.10,
		deliverables: []string{
			"Production deployment",
			"Documentation and walkthrough",
			"Post-launch support window",
		},
	},
}

var projectTypeLabels = map[string]string{
	"website":    "Website",
	"e-commerce": "E-commerce Store",
	"web-app":    "Web Application",
	"mobile-app": "Mobile App",
	"saas":       "SaaS Product",
	"automation": "Automation Project",
}

// Compose generates the client-facing proposal document for an assessment.
//
// Price figures are recomputed from the same tables as Calculate and are fully
// deterministic; only GeneratedAt and StartDate depend on the clock.
func Compose(a entities.ProjectAssessment, assessmentID string) entities.ProposalDocument {
	breakdown := Calculate(a)
	now := time.Now().UTC()

	finalTotal := proposalTotal(breakdown)
	br := budgetRange(a.BudgetRange)

	doc := entities.ProposalDocument{
		AssessmentID:    assessmentID,
		Title:           proposalTitle(a),
		ClientName:      a.Name,
		ClientEmail:     a.Email,
		ClientCompany:   a.Company,
		ProjectOverview: projectOverview(a),
		ScopeOfWork:     scopeOfWork(a, breakdown),
		Timeline:        buildTimeline(a, breakdown, now),
		Pricing: entities.ProposalPricing{
			Breakdown:       breakdown,
			FinalTotal:      finalTotal,
			PaymentSchedule: paymentSchedule(finalTotal),
		},
		Deliverables: deliverables(a),
		Expectations: []string{
			"One consolidated feedback round per phase keeps the timeline on track.",
			"Content and brand assets are provided before the design phase begins.",
			"The quoted price covers the scope listed above; new requests are quoted separately.",
		},
		NextSteps: []string{
			"Review this proposal and note any questions.",
			"Approve the scope or request adjustments.",
			"Sign off and pay the kickoff milestone to reserve the start date.",
		},
		GeneratedAt: now,
	}

	if a.ProjectType == "website" || a.ProjectType == "e-commerce" {
		doc.CarePlan = &entities.CarePlan{
			Name:         "Site care plan",
			Description:  "Hosting management, dependency updates, backups, and small content changes handled monthly.",
			MonthlyPrice: 150,
		}
	}

	if !br.Unbounded && br.Max <= lowBudgetCeiling {
		doc.AlternativeOptions = lowBudgetOptions(finalTotal, br.Max)
		doc.NextSteps = append([]string{
			"Pick the delivery strategy below that best fits how you want to invest.",
		}, doc.NextSteps...)
		doc.NextSteps = append(doc.NextSteps,
			"A short call can help decide which strategy gets you live fastest.")
	}

	return doc
}

// proposalTotal recomputes the total from the breakdown components and rounds
// to the nearest 100. This is deliberately coarser than the estimate range's
// nearest-1 rounding; both figures appear in client-facing output. The
// timeline multiplier only applies on rush schedules here.
func proposalTotal(breakdown entities.PricingBreakdown) int {
	featureSum := 0
	for _, f := range breakdown.Features {
		featureSum += f.Price
	}
	exact := float64(breakdown.BasePrice+breakdown.Platform.Price+featureSum) * breakdown.Complexity.Multiplier
	if breakdown.Timeline.Rush {
		exact *= breakdown.Timeline.Multiplier
	}
	return int(math.Round(exact/100)) * 100
}

// paymentSchedule splits the total into the standard four milestones. The
// final milestone absorbs rounding so the amounts always sum exactly.
func paymentSchedule(finalTotal int) []entities.PaymentMilestone {
	kickoff := int(math.Round(float64(finalTotal) * 0.30))
	design := int(math.Round(float64(finalTotal) * 0.30))
	development := int(math.Round(float64(finalTotal) * 0.30))
	final := finalTotal - kickoff - design - development

	return []entities.PaymentMilestone{
		{Label: "Project kickoff", Percentage: 30, Amount: kickoff},
		{Label: "Design approval", Percentage: 30, Amount: design},
		{Label: "Development milestone", Percentage: 30, Amount: development},
		{Label: "Final delivery", Percentage: 10, Amount: final},
	}
}

func buildTimeline(a entities.ProjectAssessment, breakdown entities.PricingBreakdown, now time.Time) entities.ProposalTimeline {
	weeks := projectBaseWeeks(a.ProjectType) * breakdown.Complexity.Multiplier
	if breakdown.Timeline.Rush {
		weeks *= 0.8
	}

	phases := make([]entities.ProposalPhase, 0, len(proposalPhases))
	for _, p := range proposalPhases {
		phases = append(phases, entities.ProposalPhase{
			Name:         p.name,
			Weeks:        int(math.Ceil(weeks * p.ratio)),
			Deliverables: p.deliverables,
		})
	}

	return entities.ProposalTimeline{
		TotalWeeks: int(math.Ceil(weeks)),
		StartDate:  now.AddDate(0, 0, 7),
		Phases:     phases,
	}
}

func proposalTitle(a entities.ProjectAssessment) string {
	label, ok := projectTypeLabels[a.ProjectType]
	if !ok {
		label = "Custom Project"
	}
	if a.Company != "" {
		return fmt.Sprintf("%s Proposal for %s", label, a.Company)
	}
	return fmt.Sprintf("%s Proposal for %s", label, a.Name)
}

func projectOverview(a entities.ProjectAssessment) string {
	var b strings.Builder
	label, ok := projectTypeLabels[a.ProjectType]
	if !ok {
		label = "custom project"
	}
	fmt.Fprintf(&b, "A %s built for your goals", strings.ToLower(label))
	if a.TargetAudience != "" {
		fmt.Fprintf(&b, ", designed around your %s audience", a.TargetAudience)
	}
	b.WriteString(".")
	if a.Description != "" {
		b.WriteString(" ")
		b.WriteString(a.Description)
	}
	return b.String()
}

func scopeOfWork(a entities.ProjectAssessment, breakdown entities.PricingBreakdown) []string {
	scope := []string{
		"Project setup, repository, and environments",
	}
	if len(breakdown.Platform.Platforms) > 0 {
		scope = append(scope, fmt.Sprintf("Delivery targets: %s", strings.Join(breakdown.Platform.Platforms, ", ")))
	}
	for _, f := range breakdown.Features {
		scope = append(scope, f.Name)
	}
	for _, f := range a.Features {
		scope = append(scope, f)
	}
	scope = append(scope, "Deployment, monitoring hooks, and handover documentation")
	return scope
}

func deliverables(a entities.ProjectAssessment) []string {
	out := []string{
		"Full source code in a private repository",
		"Production deployment on your infrastructure or ours",
		"Admin and editor documentation",
	}
	if a.HasBrandGuidelines {
		out = append(out, "Design system aligned with your existing brand guidelines")
	} else {
		out = append(out, "A lightweight brand kit (palette, type scale, components)")
	}
	return out
}

// lowBudgetCeiling is the budget-tier Max at or below which the proposal
// offers reduced-cost delivery strategies. The lowest intake tier tops out at
// exactly this value.
const lowBudgetCeiling = 5000

// lowBudgetOptions offers three reduced-cost delivery strategies for budgets
// capped at the low-budget ceiling.
func lowBudgetOptions(finalTotal, budgetMax int) []entities.AlternativeOption {
	phaseOne := int(math.Round(float64(finalTotal)*0.6/100)) * 100
	phaseTwo := finalTotal - phaseOne
	simplified := int(math.Round(float64(finalTotal)*0.5/100)) * 100

	return []entities.AlternativeOption{
		{
			Name:        "Phased MVP",
			Price:       phaseOne,
			Description: fmt.Sprintf("Launch the core experience now for $%d, then add enhancements as a $%d second phase when results justify it.", phaseOne, phaseTwo),
		},
		{
			Name:        "Simplified scope",
			Price:       simplified,
			Description: "Trim to the essential pages and features, keeping the same quality bar on a smaller surface.",
		},
		{
			Name:        "Template-based build",
			Price:       minInt(budgetMax, 2500),
			Description: "Start from a premium template customized to your brand; fastest path to live within budget.",
		},
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
