package response

import "devfolio/internal/domain/entities"

// The pricing payloads are already plain data shaped for the client, so the
// responses wrap them without remapping fields.

type PricingPreviewResponse struct {
	Breakdown entities.PricingBreakdown `json:"breakdown"`
}

func FromPricingBreakdown(b entities.PricingBreakdown) PricingPreviewResponse {
	return PricingPreviewResponse{Breakdown: b}
}

type BudgetComparisonResponse struct {
	Comparison entities.BudgetComparison `json:"comparison"`
}

func FromBudgetComparison(c entities.BudgetComparison) BudgetComparisonResponse {
	return BudgetComparisonResponse{Comparison: c}
}
