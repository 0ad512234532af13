package pricing

import (
	"fmt"
	"math"
	"strings"

	"devfolio/internal/domain/entities"
)

// Calculate prices a project assessment.
//
// It is pure and deterministic: no I/O, no clock, no randomness. Missing or
// unknown fields default to a zero-cost line or a fallback bucket, so it never
// fails for a well-typed input.
//
// Money stays in float64 until the breakdown is assembled; rounding happens
// once, at the output boundary.
func Calculate(a entities.ProjectAssessment) entities.PricingBreakdown {
	base := marketAverage(a.ProjectType) * 0.6

	platforms := make([]string, 0, len(a.Platforms))
	platformPrice := 0.0
	for _, p := range a.Platforms {
		surcharge, ok := platformSurcharges[p]
		if !ok {
			continue
		}
		platforms = append(platforms, p)
		platformPrice += surcharge
	}

	features := make([]entities.FeatureLine, 0, 8)
	featureSum := 0.0
	addFeature := func(name string, price float64, category string) {
		features = append(features, entities.FeatureLine{
			Name:     name,
			Price:    int(math.Round(price)),
			Category: category,
		})
		featureSum += price
	}

	if price, ok := authenticationPrices[a.Authentication]; ok {
		addFeature(fmt.Sprintf("User authentication (%s)", a.Authentication), price, "functionality")
	}
	if a.NeedsPayments {
		addFeature("Payment processing", paymentProcessingPrice, "functionality")
	}
	if a.NeedsRealtime {
		addFeature("Real-time features", realtimePrice, "functionality")
	}
	if price, ok := cmsPrices[a.CMS]; ok {
		addFeature(fmt.Sprintf("Content management (%s)", a.CMS), price, "content")
	}
	for _, access := range a.APIAccess {
		if price, ok := apiAccessPrices[access]; ok {
			addFeature(fmt.Sprintf("API access (%s)", access), price, "functionality")
		}
	}

	integrationCount := len(a.Integrations)
	integrationPrice := float64(integrationCount) * integrationUnitPrice
	if integrationCount > 0 {
		name := fmt.Sprintf("Third-party integrations (%s)", strings.Join(a.Integrations, ", "))
		addFeature(name, integrationPrice, "integration")
	}

	designPrice := 0.0
	if price, ok := designPrices[a.DesignStyle]; ok {
		designPrice = price
		addFeature(fmt.Sprintf("Design style (%s)", a.DesignStyle), price, "design")
	}

	complexity := complexityFactor(a.DataStorage)
	timeline := timelineFactor(a.PreferredTimeline)

	final := (base + platformPrice + featureSum) * complexity.Multiplier * timeline.Multiplier

	return entities.PricingBreakdown{
		BasePrice:  int(math.Round(base)),
		Features:   features,
		Complexity: complexity,
		Timeline:   timeline,
		Platform: entities.PlatformCost{
			Platforms: platforms,
			Price:     int(math.Round(platformPrice)),
		},
		Design: entities.DesignCost{
			Level: a.DesignStyle,
			Price: int(math.Round(designPrice)),
		},
		Integrations: entities.IntegrationsCost{
			Count: integrationCount,
			Price: int(math.Round(integrationPrice)),
		},
		Subtotal: int(math.Round(final)),
		EstimatedRange: entities.PriceRange{
			Min:     int(math.Round(final * 0.8)),
			Max:     int(math.Round(final * 1.2)),
			Average: int(math.Round(final)),
		},
		MarketComparison: marketComparison(a.ProjectType),
	}
}
