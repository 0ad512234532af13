package entities

// Pricing output types.
//
// Monetary representation:
//   - All amounts are whole currency units (not cents). The invoice entity is
//     the only cents-denominated record, for payment-provider compatibility.
//   - Amounts are rounded once, when the breakdown is assembled; intermediate
//     math stays in float64 inside the pricing package.

// FeatureLine is one itemized cost entry in a pricing breakdown.
type FeatureLine struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
}

// ComplexityFactor describes the multiplier applied for the data-storage tier.
type ComplexityFactor struct {
	Level       string  `json:"level"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

// TimelineFactor describes the multiplier applied for the preferred timeline.
type TimelineFactor struct {
	Rush        bool    `json:"rush"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

// PlatformCost aggregates the per-platform surcharges.
type PlatformCost struct {
	Platforms []string `json:"platforms"`
	Price     int      `json:"price"`
}

// DesignCost restates the design-style feature line for display.
type DesignCost struct {
	Level string `json:"level"`
	Price int    `json:"price"`
}

// IntegrationsCost restates the third-party integrations line for display.
type IntegrationsCost struct {
	Count int `json:"count"`
	Price int `json:"price"`
}

// PriceRange is the client-facing estimate band around the computed total.
type PriceRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Average int `json:"average"`
}

// MarketComparison carries static display-only market bounds for the project type.
type MarketComparison struct {
	LowEnd  int `json:"low_end"`
	HighEnd int `json:"high_end"`
	Average int `json:"average"`
}

// PricingBreakdown is the itemized result of pricing an assessment.
//
// Subtotal is the post-multiplier total:
//
//	subtotal = (base + platform + sum(features)) * complexity * timeline
//
// The design and integrations components restate feature lines that are
// already counted in the feature sum; they are never added twice.
type PricingBreakdown struct {
	BasePrice        int              `json:"base_price"`
	Features         []FeatureLine    `json:"features"`
	Complexity       ComplexityFactor `json:"complexity"`
	Timeline         TimelineFactor   `json:"timeline"`
	Platform         PlatformCost     `json:"platform"`
	Design           DesignCost       `json:"design"`
	Integrations     IntegrationsCost `json:"integrations"`
	Subtotal         int              `json:"subtotal"`
	EstimatedRange   PriceRange       `json:"estimated_range"`
	MarketComparison MarketComparison `json:"market_comparison"`
}
