package handlers

import (
	"context"
	"errors"
	response "devfolio/internal/adapter/http/dto/response"
	"devfolio/internal/domain/entities"
	"devfolio/internal/usecase"
	"devfolio/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for proposal quotes.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GenerateQuote composes the proposal for an assessment and persists it.
func (h *QuoteHandler) GenerateQuote(c *gin.Context) {
	assessmentID := c.Param("assessment_id")
	log.Printf("[quote][handler] generate start assessment_id=%s", assessmentID)

	quote, err := h.usecase.GenerateForAssessment(c.Request.Context(), assessmentID)
	if err != nil {
		log.Printf("[quote][handler] generate failed assessment_id=%s err=%v", assessmentID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] generate success assessment_id=%s quote_id=%s total=%d", assessmentID, quote.ID, quote.TotalAmount)

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// GetQuote returns a single quote by id.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id := c.Param("quote_id")

	quote, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// GetQuoteByAssessment returns the quote generated for an assessment.
func (h *QuoteHandler) GetQuoteByAssessment(c *gin.Context) {
	assessmentID := c.Param("assessment_id")

	quote, err := h.usecase.GetByAssessmentID(c.Request.Context(), assessmentID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Accept)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Reject)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	id := c.Param("quote_id")

	quote, err := updater(c.Request.Context(), id)
	if err != nil {
		log.Printf("[quote][handler] status update failed quote_id=%s err=%v", id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] status update success quote_id=%s status=%s", quote.ID, quote.Status)

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidAssessmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_FOUND", "Assessment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteAlreadyExists):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_EXISTS", "Quote already exists for this assessment", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotPending):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PENDING", "Quote is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrAssessmentArchived):
		return pkg.NewDomainErrorSimple("ASSESSMENT_ARCHIVED", "Assessment is archived", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
