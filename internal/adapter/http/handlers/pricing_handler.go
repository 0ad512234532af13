package handlers

import (
	request "devfolio/internal/adapter/http/dto/request"
	response "devfolio/internal/adapter/http/dto/response"
	"devfolio/internal/usecase"
	"devfolio/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)
)

// PricingHandler exposes the calculator before any assessment is stored.
//
// Both endpoints are pure: the same payload always produces the same
// numbers, which lets the intake wizard refresh estimates on every step.

type PricingHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewPricingHandler(uc usecase.IQuoteUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// PreviewPricing returns the full price breakdown for a project spec.
func (h *PricingHandler) PreviewPricing(c *gin.Context) {
	var payload request.ProjectSpecRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	breakdown := h.usecase.PreviewPricing(payload.ToEntity())
	c.JSON(http.StatusOK, response.FromPricingBreakdown(breakdown))
}

// CompareBudget returns the budget alignment analysis for a project spec.
func (h *PricingHandler) CompareBudget(c *gin.Context) {
	var payload request.ProjectSpecRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	comparison := h.usecase.CompareBudget(payload.ToEntity())
	c.JSON(http.StatusOK, response.FromBudgetComparison(comparison))
}
