package entities

// AlignmentStatus classifies an assessment total against the client's budget tier.

type AlignmentStatus string

const (
	AlignmentAligned           AlignmentStatus = "aligned"
	AlignmentUnderBudget       AlignmentStatus = "under-budget"
	AlignmentOverBudget        AlignmentStatus = "over-budget"
	AlignmentSignificantlyOver AlignmentStatus = "significantly-over"
)

// BudgetRange is a budget tier resolved to a concrete money band.
// Unbounded is set for the "discuss" tier, where Max is advisory only.
type BudgetRange struct {
	Tier      string `json:"tier"`
	Min       int    `json:"min"`
	Max       int    `json:"max"`
	Unbounded bool   `json:"unbounded,omitempty"`
}

// AssessmentNeeds restates the pricing-breakdown totals the comparison ran against.
type AssessmentNeeds struct {
	Total          int        `json:"total"`
	FeatureCount   int        `json:"feature_count"`
	EstimatedRange PriceRange `json:"estimated_range"`
}

// Alignment is the verdict of the budget-vs-assessment comparison.
type Alignment struct {
	Status               AlignmentStatus `json:"status"`
	PercentageDifference int             `json:"percentage_difference"`
	Message              string          `json:"message"`
	Recommendation       string          `json:"recommendation"`
}

// BudgetAlternative is a known cheaper substitution for an expensive feature.
type BudgetAlternative struct {
	Feature     string `json:"feature"`
	Alternative string `json:"alternative"`
	Savings     int    `json:"savings"`
	Description string `json:"description"`
}

// FeatureComparison splits the itemized features into what fits the budget and
// what would have to be dropped, plus substitutions and upsell suggestions.
type FeatureComparison struct {
	IncludedFeatures []FeatureLine       `json:"included_features"`
	MissingFeatures  []FeatureLine       `json:"missing_features"`
	Alternatives     []BudgetAlternative `json:"alternatives,omitempty"`
	Upsells          []string            `json:"upsells,omitempty"`
}

// CostBucket is one named allocation in the cost-breakdown comparison.
type CostBucket struct {
	Name             string `json:"name"`
	AssessmentAmount int    `json:"assessment_amount"`
	BudgetAmount     int    `json:"budget_amount"`
	Difference       int    `json:"difference"`
}

// ValueTier is a qualitative read of what a given spend buys.
type ValueTier struct {
	Total          int    `json:"total"`
	CostPerFeature int    `json:"cost_per_feature"`
	QualityTier    string `json:"quality_tier"`
	ScopeTier      string `json:"scope_tier"`
}

// ValueAnalysis contrasts the budget spend against the assessed spend.
type ValueAnalysis struct {
	Budget          ValueTier `json:"budget"`
	Assessment      ValueTier `json:"assessment"`
	Recommendations []string  `json:"recommendations"`
}

// ActionItem is one prioritized follow-up generated from the alignment verdict.
type ActionItem struct {
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// BudgetComparison is the full transient analysis returned to the wizard.
// It is derived on demand and never persisted.
type BudgetComparison struct {
	BudgetRange       BudgetRange       `json:"budget_range"`
	AssessmentNeeds   AssessmentNeeds   `json:"assessment_needs"`
	Alignment         Alignment         `json:"alignment"`
	FeatureComparison FeatureComparison `json:"feature_comparison"`
	CostBreakdown     []CostBucket      `json:"cost_breakdown"`
	ValueAnalysis     ValueAnalysis     `json:"value_analysis"`
	ActionItems       []ActionItem      `json:"action_items"`
}
