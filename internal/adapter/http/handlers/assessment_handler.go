package handlers

import (
	"errors"
	request "devfolio/internal/adapter/http/dto/request"
	response "devfolio/internal/adapter/http/dto/response"
	"devfolio/internal/usecase"
	"devfolio/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAssessmentPayload = pkg.NewDomainErrorSimple("INVALID_ASSESSMENT_INPUT", "Invalid assessment payload", http.StatusBadRequest)
)

// AssessmentHandler handles HTTP requests for project assessments.

type AssessmentHandler struct {
	usecase usecase.IAssessmentUseCase
}

func NewAssessmentHandler(uc usecase.IAssessmentUseCase) *AssessmentHandler {
	return &AssessmentHandler{usecase: uc}
}

// SubmitAssessment receives the intake wizard payload and persists a new
// assessment in pending status.
func (h *AssessmentHandler) SubmitAssessment(c *gin.Context) {
	var payload request.AssessmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssessmentPayload.HTTPStatus, errInvalidAssessmentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[assessment][handler] submit failed err=%v", err)
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[assessment][handler] submit success assessment_id=%s project_type=%s", created.ID, created.ProjectType)

	c.JSON(http.StatusCreated, response.FromAssessment(created))
}

// GetAssessment returns a single assessment by id.
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	id := c.Param("assessment_id")

	assessment, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssessment(assessment))
}

// ListAssessments returns every stored assessment for the back office.
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	assessments, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[assessment][handler] list failed err=%v", err)
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssessments(assessments))
}

// UpdateAssessmentStatus moves an assessment through the review pipeline.
func (h *AssessmentHandler) UpdateAssessmentStatus(c *gin.Context) {
	id := c.Param("assessment_id")

	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssessmentPayload.HTTPStatus, errInvalidAssessmentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.ResolveStatus())
	if err != nil {
		log.Printf("[assessment][handler] status update failed assessment_id=%s err=%v", id, err)
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[assessment][handler] status update success assessment_id=%s status=%s", updated.ID, updated.Status)

	c.JSON(http.StatusOK, response.FromAssessment(updated))
}

func mapAssessmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssessmentID), errors.Is(err, usecase.ErrInvalidAssessmentInput), errors.Is(err, usecase.ErrInvalidAssessmentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_FOUND", "Assessment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
