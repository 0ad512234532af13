package pricing

import "devfolio/internal/domain/entities"

// Static pricing configuration. All amounts are whole currency units.
//
// These tables are business assumptions supplied by the product owner, not
// derived values. They are package-level constants loaded once and never
// mutated at runtime; every lookup has an explicit fallback bucket so an
// unknown tier can never fail a calculation.

const (
	projectTypeOther = "other"
	budgetTierDiscuss = "discuss"

	paymentProcessingPrice = 2500
	realtimePrice          = 3000
	integrationUnitPrice   = 1000
)

// marketAverages holds the per-project-type market average. The base price of
// a calculation is 60% of this figure.
var marketAverages = map[string]float64{
	"website":    6000,
	"e-commerce": 25000,
	"web-app":    30000,
	"mobile-app": 50000,
	"saas":       80000,
	"automation": 15000,
	projectTypeOther: 12000,
}

// marketComparisons carries display-only market bounds per project type.
var marketComparisons = map[string]entities.MarketComparison{
	"website":    {LowEnd: 3000, HighEnd: 15000, Average: 6000},
	"e-commerce": {LowEnd: 12000, HighEnd: 60000, Average: 25000},
	"web-app":    {LowEnd: 15000, HighEnd: 75000, Average: 30000},
	"mobile-app": {LowEnd: 25000, HighEnd: 120000, Average: 50000},
	"saas":       {LowEnd: 40000, HighEnd: 200000, Average: 80000},
	"automation": {LowEnd: 8000, HighEnd: 35000, Average: 15000},
	projectTypeOther: {LowEnd: 5000, HighEnd: 30000, Average: 12000},
}

// platformSurcharges: native targets cost extra, an API-only delivery trims a
// little off, plain web is the baseline.
var platformSurcharges = map[string]float64{
	"web":      0,
	"ios":      8000,
	"android":  8000,
	"desktop":  6000,
	"api-only": -1500,
}

var authenticationPrices = map[string]float64{
	"basic":      1200,
	"social":     2000,
	"enterprise": 4500,
	"custom":     7500,
}

var cmsPrices = map[string]float64{
	"basic":    1500,
	"headless": 3000,
	"custom":   6000,
}

var apiAccessPrices = map[string]float64{
	"internal": 2000,
	"public":   4000,
}

var designPrices = map[string]float64{
	"minimal":   800,
	"corporate": 1200,
	"modern":    1500,
	"playful":   1800,
	"bold":      2200,
	"luxury":    3500,
}

var complexityFactors = map[string]entities.ComplexityFactor{
	"simple":     {Level: "simple", Multiplier: 0.8, Description: "Static or single-table data, minimal backend"},
	"moderate":   {Level: "moderate", Multiplier: 1.0, Description: "Relational data with standard CRUD"},
	"complex":    {Level: "complex", Multiplier: 1.5, Description: "Multiple data sources, reporting, workflows"},
	"enterprise": {Level: "enterprise", Multiplier: 2.5, Description: "High-volume data, compliance, advanced infrastructure"},
}

const defaultComplexityLevel = "moderate"

var timelineFactors = map[string]entities.TimelineFactor{
	"asap":        {Rush: true, Multiplier: 1.5, Description: "Rush delivery, dedicated scheduling"},
	"1-3-months":  {Rush: false, Multiplier: 1.2, Description: "Accelerated delivery"},
	"3-6-months":  {Rush: false, Multiplier: 1.0, Description: "Standard delivery"},
	"6-12-months": {Rush: false, Multiplier: 0.9, Description: "Relaxed scheduling discount"},
	"flexible":    {Rush: false, Multiplier: 0.9, Description: "Flexible scheduling discount"},
}

var defaultTimelineFactor = entities.TimelineFactor{Rush: false, Multiplier: 1.0, Description: "Standard delivery"}

// budgetRanges maps the intake's budget tier to a concrete band. The discuss
// tier is unbounded; its Max is advisory and substituted at comparison time.
var budgetRanges = map[string]entities.BudgetRange{
	"under-5k":  {Tier: "under-5k", Min: 0, Max: 5000},
	"5k-10k":    {Tier: "5k-10k", Min: 5000, Max: 10000},
	"10k-15k":   {Tier: "10k-15k", Min: 10000, Max: 15000},
	"15k-25k":   {Tier: "15k-25k", Min: 15000, Max: 25000},
	"25k-50k":   {Tier: "25k-50k", Min: 25000, Max: 50000},
	"50k-75k":   {Tier: "50k-75k", Min: 50000, Max: 75000},
	"75k-100k":  {Tier: "75k-100k", Min: 75000, Max: 100000},
	"100k-plus": {Tier: "100k-plus", Min: 100000, Max: 500000},
	budgetTierDiscuss: {Tier: budgetTierDiscuss, Min: 0, Max: 0, Unbounded: true},
}

// baseWeeks is the unscaled project duration per project type.
var baseWeeks = map[string]float64{
	"website":    4,
	"e-commerce": 8,
	"web-app":    10,
	"mobile-app": 12,
	"saas":       20,
	"automation": 6,
	projectTypeOther: 6,
}

func marketAverage(projectType string) float64 {
	if v, ok := marketAverages[projectType]; ok {
		return v
	}
	return marketAverages[projectTypeOther]
}

func marketComparison(projectType string) entities.MarketComparison {
	if v, ok := marketComparisons[projectType]; ok {
		return v
	}
	return marketComparisons[projectTypeOther]
}

func complexityFactor(dataStorage string) entities.ComplexityFactor {
	if v, ok := complexityFactors[dataStorage]; ok {
		return v
	}
	return complexityFactors[defaultComplexityLevel]
}

func timelineFactor(preferredTimeline string) entities.TimelineFactor {
	if v, ok := timelineFactors[preferredTimeline]; ok {
		return v
	}
	return defaultTimelineFactor
}

func budgetRange(tier string) entities.BudgetRange {
	if v, ok := budgetRanges[tier]; ok {
		return v
	}
	return budgetRanges[budgetTierDiscuss]
}

func projectBaseWeeks(projectType string) float64 {
	if v, ok := baseWeeks[projectType]; ok {
		return v
	}
	return baseWeeks[projectTypeOther]
}
