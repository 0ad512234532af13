package pricing

import (
	"testing"

	"devfolio/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_PaymentScheduleSumsToTotal(t *testing.T) {
	assessments := []entities.ProjectAssessment{
		{ProjectType: "website", Name: "Ana"},
		{ProjectType: "mobile-app", Platforms: []string{"ios", "android"}, DataStorage: "enterprise", Name: "Ben"},
		{ProjectType: "saas", DataStorage: "complex", PreferredTimeline: "asap", Name: "Caro"},
		{ProjectType: "automation", DataStorage: "simple", Authentication: "basic", Name: "Dee"},
	}

	for _, a := range assessments {
		doc := Compose(a, "assess-1")
		require.Len(t, doc.Pricing.PaymentSchedule, 4)

		sum := 0
		for _, m := range doc.Pricing.PaymentSchedule {
			sum += m.Amount
		}
		require.Equalf(t, doc.Pricing.FinalTotal, sum, "schedule must sum exactly for %s", a.ProjectType)
	}
}

func TestCompose_FinalTotalRoundsToHundred(t *testing.T) {
	doc := Compose(entities.ProjectAssessment{
		ProjectType: "mobile-app",
		Platforms:   []string{"ios", "android"},
		DataStorage: "enterprise",
	}, "assess-1")

	require.Equal(t, 115000, doc.Pricing.FinalTotal)
	require.Zero(t, doc.Pricing.FinalTotal%100)
}

func TestCompose_RushOnlyAppliesTimelineMultiplier(t *testing.T) {
	base := entities.ProjectAssessment{ProjectType: "website"}

	standard := Compose(base, "a")
	require.Equal(t, 3600, standard.Pricing.FinalTotal)

	// A 1-3 month schedule raises the estimate (x1.2) but is not rush, so the
	// proposal total stays at the unmultiplied figure.
	accelerated := base
	accelerated.PreferredTimeline = "1-3-months"
	acceleratedDoc := Compose(accelerated, "a")
	require.Equal(t, 4320, acceleratedDoc.Pricing.Breakdown.Subtotal)
	require.Equal(t, 3600, acceleratedDoc.Pricing.FinalTotal)

	rush := base
	rush.PreferredTimeline = "asap"
	rushDoc := Compose(rush, "a")
	require.Equal(t, 5400, rushDoc.Pricing.FinalTotal) // 3600 * 1.5
}

func TestCompose_TimelinePhases(t *testing.T) {
	doc := Compose(entities.ProjectAssessment{ProjectType: "saas", DataStorage: "moderate"}, "a")

	require.Len(t, doc.Timeline.Phases, 4)
	require.Equal(t, 20, doc.Timeline.TotalWeeks)

	// ceil(20 * {0.15, 0.60, 0.15, 0.10})
	wantWeeks := []int{3, 12, 3, 2}
	for i, p := range doc.Timeline.Phases {
		assert.Equal(t, wantWeeks[i], p.Weeks, p.Name)
		assert.NotEmpty(t, p.Deliverables)
	}
}

func TestCompose_RushCompressesTimeline(t *testing.T) {
	standard := Compose(entities.ProjectAssessment{ProjectType: "web-app"}, "a")
	rush := Compose(entities.ProjectAssessment{ProjectType: "web-app", PreferredTimeline: "asap"}, "a")

	require.Equal(t, 10, standard.Timeline.TotalWeeks)
	require.Equal(t, 8, rush.Timeline.TotalWeeks) // 10 * 0.8
}

func TestCompose_LowBudgetAlternatives(t *testing.T) {
	a := entities.ProjectAssessment{
		ProjectType: "website",
		BudgetRange: "under-5k",
		Name:        "Ana",
	}

	doc := Compose(a, "a")

	require.Len(t, doc.AlternativeOptions, 3)
	require.Equal(t, "Phased MVP", doc.AlternativeOptions[0].Name)

	// 60/40 split of the 3600 total, rounded to hundreds.
	assert.Equal(t, 2200, doc.AlternativeOptions[0].Price)
	assert.Contains(t, doc.AlternativeOptions[0].Description, "$1400")

	// Extra guidance wraps the standard next steps.
	require.Greater(t, len(doc.NextSteps), 3)
	assert.Contains(t, doc.NextSteps[0], "delivery strategy")
}

func TestCompose_NoAlternativesAboveThreshold(t *testing.T) {
	// 5k-10k is the first tier above the low-budget ceiling.
	boundary := Compose(entities.ProjectAssessment{ProjectType: "website", BudgetRange: "5k-10k"}, "a")
	assert.Empty(t, boundary.AlternativeOptions)

	doc := Compose(entities.ProjectAssessment{ProjectType: "website", BudgetRange: "10k-15k"}, "a")
	assert.Empty(t, doc.AlternativeOptions)

	unbounded := Compose(entities.ProjectAssessment{ProjectType: "website", BudgetRange: "discuss"}, "a")
	assert.Empty(t, unbounded.AlternativeOptions)
}

func TestCompose_CarePlanForSiteProjects(t *testing.T) {
	site := Compose(entities.ProjectAssessment{ProjectType: "website"}, "a")
	require.NotNil(t, site.CarePlan)

	app := Compose(entities.ProjectAssessment{ProjectType: "mobile-app"}, "a")
	require.Nil(t, app.CarePlan)
}

func TestCompose_ClientIdentityAndTitle(t *testing.T) {
	doc := Compose(entities.ProjectAssessment{
		ProjectType: "e-commerce",
		Name:        "Ana Silva",
		Email:       "ana@example.com",
		Company:     "Silva Goods",
	}, "a-42")

	assert.Equal(t, "a-42", doc.AssessmentID)
	assert.Equal(t, "E-commerce Store Proposal for Silva Goods", doc.Title)
	assert.Equal(t, "Ana Silva", doc.ClientName)
	assert.Equal(t, "ana@example.com", doc.ClientEmail)
	assert.NotEmpty(t, doc.ScopeOfWork)
	assert.NotEmpty(t, doc.Deliverables)
	assert.NotEmpty(t, doc.Expectations)
}

func TestCompose_PricingDeterministic(t *testing.T) {
	a := entities.ProjectAssessment{
		ProjectType:    "saas",
		DataStorage:    "complex",
		Authentication: "enterprise",
		Integrations:   []string{"x", "y"},
	}

	first := Compose(a, "a").Pricing
	second := Compose(a, "a").Pricing

	require.Equal(t, first.FinalTotal, second.FinalTotal)
	require.Equal(t, first.PaymentSchedule, second.PaymentSchedule)
	require.Equal(t, first.Breakdown, second.Breakdown)
}
