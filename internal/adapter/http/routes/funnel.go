package routes

import (
	"devfolio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAssessments = "/assessments"
	PathPricing     = "/pricing"
	PathQuotes      = "/quotes"
	PathInvoices    = "/invoices"
)

func addFunnelRoutes(
	rg *gin.RouterGroup,
	assessmentHandler *handlers.AssessmentHandler,
	pricingHandler *handlers.PricingHandler,
	quoteHandler *handlers.QuoteHandler,
	invoiceHandler *handlers.InvoiceHandler,
) {
	assessments := rg.Group(PathAssessments)
	{
		assessments.POST("", assessmentHandler.SubmitAssessment)
		assessments.GET("", assessmentHandler.ListAssessments)
		assessments.GET("/:assessment_id", assessmentHandler.GetAssessment)
		assessments.PATCH("/:assessment_id/status", assessmentHandler.UpdateAssessmentStatus)
		assessments.POST("/:assessment_id/quote", quoteHandler.GenerateQuote)
		assessments.GET("/:assessment_id/quote", quoteHandler.GetQuoteByAssessment)
	}

	pricing := rg.Group(PathPricing)
	{
		// Stateless calculator endpoints used by the intake wizard.
		pricing.POST("/preview", pricingHandler.PreviewPricing)
		pricing.POST("/comparison", pricingHandler.CompareBudget)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PATCH("/:quote_id/accept", quoteHandler.AcceptQuote)
		quotes.PATCH("/:quote_id/reject", quoteHandler.RejectQuote)
		quotes.POST("/:quote_id/invoice", invoiceHandler.CreateInvoiceFromQuote)
		quotes.GET("/:quote_id/invoices", invoiceHandler.ListInvoicesByQuote)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
		invoices.POST("/:invoice_id/payments", invoiceHandler.PayInvoice)
	}
}
