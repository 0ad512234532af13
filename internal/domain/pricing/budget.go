package pricing

import (
	"fmt"
	"math"

	"devfolio/internal/domain/entities"
)

// budgetAlternatives is the fixed table of cheaper substitutions for known
// expensive choices. An entry is only emitted when its applies predicate
// matches the assessment.
var budgetAlternatives = []struct {
	applies     func(a entities.ProjectAssessment) bool
	alternative entities.BudgetAlternative
}{
	{
		applies: func(a entities.ProjectAssessment) bool { return a.CMS == "custom" },
		alternative: entities.BudgetAlternative{
			Feature:     "Custom CMS",
			Alternative: "Headless CMS",
			Savings:     3000,
			Description: "An off-the-shelf headless CMS covers most editorial workflows without custom build cost.",
		},
	},
	{
		applies: func(a entities.ProjectAssessment) bool {
			return containsString(a.Platforms, "ios") && containsString(a.Platforms, "android")
		},
		alternative: entities.BudgetAlternative{
			Feature:     "Native iOS + Android apps",
			Alternative: "Progressive web app",
			Savings:     15000,
			Description: "A PWA ships to both stores' audiences from one codebase and can be upgraded to native later.",
		},
	},
	{
		applies: func(a entities.ProjectAssessment) bool { return a.Authentication == "custom" },
		alternative: entities.BudgetAlternative{
			Feature:     "Custom authentication",
			Alternative: "Social login",
			Savings:     5500,
			Description: "Social sign-in providers handle account security and recovery for a fraction of the cost.",
		},
	},
	{
		applies: func(a entities.ProjectAssessment) bool { return a.Authentication == "enterprise" },
		alternative: entities.BudgetAlternative{
			Feature:     "Enterprise SSO",
			Alternative: "Social login",
			Savings:     2500,
			Description: "Unless your buyers mandate SSO, social sign-in covers early-stage needs.",
		},
	},
}

var upsellSuggestions = []string{
	"Professional copywriting and content strategy",
	"SEO and analytics setup",
	"A headless CMS so your team can publish without a developer",
	"An extended design exploration with two additional concepts",
}

// Compare contrasts the client's stated budget tier against the computed
// pricing breakdown. Like Calculate it is pure; the comparison is derived on
// demand and never persisted.
func Compare(a entities.ProjectAssessment) entities.BudgetComparison {
	breakdown := Calculate(a)
	total := breakdown.EstimatedRange.Average
	br := budgetRange(a.BudgetRange)

	effectiveMax := br.Max
	if br.Unbounded {
		effectiveMax = total * 2
	}

	alignment := classifyAlignment(total, br, effectiveMax)
	alternatives := applicableAlternatives(a)

	return entities.BudgetComparison{
		BudgetRange: br,
		AssessmentNeeds: entities.AssessmentNeeds{
			Total:          total,
			FeatureCount:   len(breakdown.Features),
			EstimatedRange: breakdown.EstimatedRange,
		},
		Alignment:         alignment,
		FeatureComparison: compareFeatures(breakdown, br, alignment.Status, alternatives, total),
		CostBreakdown:     compareCostBuckets(breakdown, br, alignment.Status, total),
		ValueAnalysis:     analyzeValue(breakdown, br, effectiveMax, alignment.Status, total),
		ActionItems:       buildActionItems(alignment, alternatives),
	}
}

func classifyAlignment(total int, br entities.BudgetRange, effectiveMax int) entities.Alignment {
	// Budget midpoint for the percentage figure; guarded so a zero-band tier
	// (or a zero-cost assessment) cannot divide by zero.
	budgetAverage := (br.Min + effectiveMax) / 2
	pct := 0
	if budgetAverage > 0 {
		pct = int(math.Round(float64(total-budgetAverage) / float64(budgetAverage) * 100))
	}

	max := br.Max
	if br.Unbounded {
		max = effectiveMax
	}

	switch {
	case total >= br.Min && total <= max:
		return entities.Alignment{
			Status:               entities.AlignmentAligned,
			PercentageDifference: pct,
			Message:              fmt.Sprintf("Your project comes to $%d, which fits your $%d–$%d budget.", total, br.Min, max),
			Recommendation:       "Your budget and scope line up well. We can proceed with the full scope as assessed.",
		}
	case total < br.Min:
		return entities.Alignment{
			Status:               entities.AlignmentUnderBudget,
			PercentageDifference: pct,
			Message:              fmt.Sprintf("Your project comes to $%d, below the $%d floor of your budget range.", total, br.Min),
			Recommendation:       "There is headroom to add features or raise the polish level without leaving your budget.",
		}
	case total <= int(math.Round(float64(effectiveMax)*1.2)):
		return entities.Alignment{
			Status:               entities.AlignmentOverBudget,
			PercentageDifference: pct,
			Message:              fmt.Sprintf("Your project comes to $%d, above your $%d budget ceiling.", total, max),
			Recommendation:       "Phasing the project lets you launch the essentials now and fund the rest from results.",
		}
	default:
		return entities.Alignment{
			Status:               entities.AlignmentSignificantlyOver,
			PercentageDifference: pct,
			Message:              fmt.Sprintf("Your project comes to $%d, well above your $%d budget ceiling.", total, max),
			Recommendation:       "Consider increasing the budget or substantially reducing scope; the gap is too wide to bridge with trimming alone.",
		}
	}
}

func applicableAlternatives(a entities.ProjectAssessment) []entities.BudgetAlternative {
	var out []entities.BudgetAlternative
	for _, candidate := range budgetAlternatives {
		if candidate.applies(a) {
			out = append(out, candidate.alternative)
		}
	}
	return out
}

// compareFeatures proportionally truncates the feature list when over budget.
// Features are kept in input order; this mirrors the assessment wizard's
// ordering rather than any optimal selection.
func compareFeatures(breakdown entities.PricingBreakdown, br entities.BudgetRange, status entities.AlignmentStatus, alternatives []entities.BudgetAlternative, total int) entities.FeatureComparison {
	fc := entities.FeatureComparison{
		IncludedFeatures: breakdown.Features,
		Alternatives:     alternatives,
	}

	overBudget := status == entities.AlignmentOverBudget || status == entities.AlignmentSignificantlyOver
	if overBudget && total > 0 && len(breakdown.Features) > 0 {
		fraction := float64(br.Max) / float64(total)
		keep := int(float64(len(breakdown.Features)) * fraction)
		if keep < 1 {
			keep = 1
		}
		if keep > len(breakdown.Features) {
			keep = len(breakdown.Features)
		}
		fc.IncludedFeatures = breakdown.Features[:keep]
		fc.MissingFeatures = breakdown.Features[keep:]
	}

	if status == entities.AlignmentUnderBudget && br.Min-total >= 2000 {
		fc.Upsells = upsellSuggestions
	}

	return fc
}

func compareCostBuckets(breakdown entities.PricingBreakdown, br entities.BudgetRange, status entities.AlignmentStatus, total int) []entities.CostBucket {
	featureSum := 0
	for _, f := range breakdown.Features {
		featureSum += f.Price
	}
	functionalSum := featureSum - breakdown.Design.Price - breakdown.Integrations.Price

	preMultiplier := float64(breakdown.BasePrice + breakdown.Platform.Price + featureSum)
	complexityContribution := preMultiplier * (breakdown.Complexity.Multiplier - 1)
	timelineContribution := preMultiplier * breakdown.Complexity.Multiplier * (breakdown.Timeline.Multiplier - 1)

	scale := 1.0
	if (status == entities.AlignmentOverBudget || status == entities.AlignmentSignificantlyOver) && total > 0 {
		scale = float64(br.Max) / float64(total)
	}

	buckets := []struct {
		name   string
		amount float64
	}{
		{"base", float64(breakdown.BasePrice)},
		{"features", float64(functionalSum)},
		{"platform", float64(breakdown.Platform.Price)},
		{"design", float64(breakdown.Design.Price)},
		{"integrations", float64(breakdown.Integrations.Price)},
		{"complexity", complexityContribution},
		{"timeline", timelineContribution},
	}

	out := make([]entities.CostBucket, 0, len(buckets))
	for _, b := range buckets {
		assessment := int(math.Round(b.amount))
		budget := int(math.Round(b.amount * scale))
		out = append(out, entities.CostBucket{
			Name:             b.name,
			AssessmentAmount: assessment,
			BudgetAmount:     budget,
			Difference:       budget - assessment,
		})
	}
	return out
}

func analyzeValue(breakdown entities.PricingBreakdown, br entities.BudgetRange, effectiveMax int, status entities.AlignmentStatus, total int) entities.ValueAnalysis {
	budgetAverage := (br.Min + effectiveMax) / 2
	featureCount := len(breakdown.Features)

	return entities.ValueAnalysis{
		Budget:          valueTier(budgetAverage, featureCount),
		Assessment:      valueTier(total, featureCount),
		Recommendations: valueRecommendations(status),
	}
}

func valueTier(total, featureCount int) entities.ValueTier {
	costPerFeature := 0
	if featureCount > 0 {
		costPerFeature = total / featureCount
	}

	quality := "Premium"
	switch {
	case costPerFeature < 1000:
		quality = "Basic"
	case costPerFeature < 2500:
		quality = "Standard"
	case costPerFeature < 5000:
		quality = "High"
	}

	scope := "Enterprise"
	switch {
	case total < 10000:
		scope = "Small"
	case total < 30000:
		scope = "Medium"
	case total < 75000:
		scope = "Large"
	}

	return entities.ValueTier{
		Total:          total,
		CostPerFeature: costPerFeature,
		QualityTier:    quality,
		ScopeTier:      scope,
	}
}

func valueRecommendations(status entities.AlignmentStatus) []string {
	switch status {
	case entities.AlignmentAligned:
		return []string{
			"Your budget buys the full assessed scope at the quality level you selected.",
			"Lock the feature list early to keep the estimate stable through delivery.",
		}
	case entities.AlignmentUnderBudget:
		return []string{
			"Your budget exceeds the assessed cost; the surplus could fund content, SEO, or a higher design tier.",
			"Alternatively, keep the surplus as contingency for post-launch iteration.",
		}
	case entities.AlignmentOverBudget:
		return []string{
			"A phased delivery puts the highest-value features in phase one within your current budget.",
			"The substitutions listed above reclaim most of the gap without losing capability.",
		}
	default:
		return []string{
			"The assessed scope is a different project class than the budget allows; re-scope before committing.",
			"A minimal first release can validate the idea at a fraction of the assessed cost.",
		}
	}
}

func buildActionItems(alignment entities.Alignment, alternatives []entities.BudgetAlternative) []entities.ActionItem {
	var items []entities.ActionItem

	switch alignment.Status {
	case entities.AlignmentAligned:
		items = append(items, entities.ActionItem{
			Type:        "proceed",
			Priority:    "high",
			Title:       "Book a kickoff call",
			Description: "Scope and budget align; the next step is confirming the timeline and signing off the proposal.",
			Impact:      "Starts delivery without rework risk",
		})
	case entities.AlignmentUnderBudget:
		items = append(items,
			entities.ActionItem{
				Type:        "proceed",
				Priority:    "high",
				Title:       "Confirm the assessed scope",
				Description: "The project fits comfortably inside your budget as assessed.",
				Impact:      "No trade-offs required",
			},
			entities.ActionItem{
				Type:        "expand-scope",
				Priority:    "medium",
				Title:       "Consider high-value additions",
				Description: "Budget headroom could fund content, SEO, or design upgrades with lasting payoff.",
				Impact:      "Better launch outcome for the same budget band",
			},
		)
	case entities.AlignmentOverBudget:
		if len(alternatives) > 0 {
			items = append(items, entities.ActionItem{
				Type:        "optimize-features",
				Priority:    "high",
				Title:       "Apply budget-friendly substitutions",
				Description: "Swapping the flagged features for their alternatives closes most of the gap.",
				Impact:      "Significant savings with minor capability loss",
			})
		}
		items = append(items, entities.ActionItem{
			Type:        "phase-project",
			Priority:    "medium",
			Title:       "Split delivery into phases",
			Description: "Launch the essentials within budget and schedule the rest as a follow-up phase.",
			Impact:      "Keeps the full vision while fitting today's budget",
		})
	case entities.AlignmentSignificantlyOver:
		items = append(items, entities.ActionItem{
			Type:        "phase-project",
			Priority:    "high",
			Title:       "Re-plan as a phased delivery",
			Description: "The assessed scope is far beyond the budget; a staged roadmap is the realistic path.",
			Impact:      "Makes the project viable at current funding",
		})
		if len(alternatives) > 0 {
			items = append(items, entities.ActionItem{
				Type:        "optimize-features",
				Priority:    "high",
				Title:       "Apply budget-friendly substitutions",
				Description: "The flagged substitutions remove the most expensive line items first.",
				Impact:      "Largest single reduction available",
			})
		}
		items = append(items, entities.ActionItem{
			Type:        "reduce-scope",
			Priority:    "medium",
			Title:       "Cut to a minimum viable scope",
			Description: "Strip the feature list to what validates the core idea.",
			Impact:      "Brings the estimate into a realistic band",
		})
		if alignment.PercentageDifference > 50 {
			items = append(items, entities.ActionItem{
				Type:        "increase-budget",
				Priority:    "medium",
				Title:       "Revisit the budget range",
				Description: "The assessed cost is more than 50% above the budget midpoint; trimming alone will not close it.",
				Impact:      "Aligns expectations with the market cost of this scope",
			})
		}
	}

	return items
}

func containsString(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
