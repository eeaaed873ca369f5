package interviews

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careercoach-backend/internal/llm"
	"careercoach-backend/internal/shared/server/middleware"
	"careercoach-backend/internal/shared/server/respond"
	"careercoach-backend/internal/users"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, generate ...gin.HandlerFunc) {
	quiz := append(append([]gin.HandlerFunc{}, generate...), h.generateQuiz)
	rg.POST("/interviews/quiz", quiz...)
	rg.POST("/interviews/assessments", h.saveResult)
	rg.GET("/interviews/assessments", h.listAssessments)
}

func (h *Handler) generateQuiz(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	questions, err := h.Svc.GenerateQuiz(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"questions": questions})
}

type saveResultRequest struct {
	Questions []Question `json:"questions"`
	Answers   []string   `json:"answers"`
	Score     float64    `json:"score"`
}

func (h *Handler) saveResult(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req saveResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	assessment, err := h.Svc.SaveQuizResult(c.Request.Context(), userID, req.Questions, req.Answers, req.Score)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, assessment)
}

func (h *Handler) listAssessments(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	assessments, err := h.Svc.GetAssessments(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	if assessments == nil {
		assessments = []Assessment{}
	}
	respond.OK(c, assessments)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, users.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "user_not_found", "user not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "questions are required", nil)
	case errors.Is(err, ErrInvalidQuizFormat):
		respond.Error(c, http.StatusBadGateway, "invalid_quiz_format", "the model returned an unusable quiz", nil)
	case errors.Is(err, llm.ErrEmptyCompletion):
		respond.Error(c, http.StatusBadGateway, "empty_completion", "the model returned no content", nil)
	case errors.Is(err, ErrGenerationFailed):
		respond.Error(c, http.StatusBadGateway, "generation_failed", "failed to generate quiz questions", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "interview request failed", nil)
	}
}
