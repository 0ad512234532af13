package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devfolio/internal/adapter/http/handlers/mocks"
	"devfolio/internal/domain/entities"
	"devfolio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAssessmentHandler_SubmitAssessment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments", h.SubmitAssessment)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing email rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments", h.SubmitAssessment)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments", bytes.NewBufferString(`{"name":"Ana","project_type":"website"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments", h.SubmitAssessment)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.ProjectAssessment{}, usecase.ErrInvalidAssessmentInput)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments", bytes.NewBufferString(`{"name":"Ana","email":"ana@example.com","project_type":"website"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments", h.SubmitAssessment)

		now := time.Now().UTC()
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.ProjectAssessment{
			ID:          "a-1",
			Name:        "Ana",
			Email:       "ana@example.com",
			ProjectType: "website",
			Status:      entities.AssessmentStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments", bytes.NewBufferString(`{"name":"Ana","email":"ana@example.com","project_type":"website"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "a-1" || body["status"] != "pending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAssessmentHandler_GetAssessment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.GET("/v1/assessments/:assessment_id", h.GetAssessment)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ProjectAssessment{}, usecase.ErrAssessmentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/assessments/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.GET("/v1/assessments/:assessment_id", h.GetAssessment)

		uc.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.ProjectAssessment{ID: "a-1", Name: "Ana", Email: "ana@example.com", ProjectType: "website", Status: entities.AssessmentStatusPending}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/assessments/a-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAssessmentHandler_ListAssessments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAssessmentUseCase(ctrl)
	h := NewAssessmentHandler(uc)

	r := gin.New()
	r.GET("/v1/assessments", h.ListAssessments)

	uc.EXPECT().List(gomock.Any()).Return([]entities.ProjectAssessment{
		{ID: "a-1", Name: "Ana", Status: entities.AssessmentStatusPending},
		{ID: "a-2", Name: "Bruno", Status: entities.AssessmentStatusReviewed},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/assessments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 {
		t.Fatalf("expected 2 assessments, got %s", w.Body.String())
	}
}

func TestAssessmentHandler_UpdateAssessmentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.PATCH("/v1/assessments/:assessment_id/status", h.UpdateAssessmentStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "a-1", entities.AssessmentStatus("bogus")).Return(entities.ProjectAssessment{}, usecase.ErrInvalidAssessmentStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/assessments/a-1/status", bytes.NewBufferString(`{"status":"bogus"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.PATCH("/v1/assessments/:assessment_id/status", h.UpdateAssessmentStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "a-1", entities.AssessmentStatusContacted).Return(entities.ProjectAssessment{ID: "a-1", Status: entities.AssessmentStatusContacted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/assessments/a-1/status", bytes.NewBufferString(`{"status":"Contacted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapAssessmentError(t *testing.T) {
	if got := mapAssessmentError(usecase.ErrInvalidAssessmentID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAssessmentError(usecase.ErrInvalidAssessmentInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAssessmentError(usecase.ErrInvalidAssessmentStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAssessmentError(usecase.ErrAssessmentNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapAssessmentError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
