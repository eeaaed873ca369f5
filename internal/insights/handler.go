package insights

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

// RegisterRoutes attaches insight routes to the router group. The first call
// per user runs a generation, so the same limiter as the other generation
// routes applies.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, generate ...gin.HandlerFunc) {
	get := append(append([]gin.HandlerFunc{}, generate...), h.get)
	rg.GET("/insights", get...)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	insight, err := h.Svc.GetInsights(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, insight)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, users.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "user_not_found", "user not found", nil)
	case errors.Is(err, ErrNoIndustry):
		respond.Error(c, http.StatusBadRequest, "validation_error", "set your industry before requesting insights", nil)
	case errors.Is(err, ErrInvalidAIResponse):
		respond.Error(c, http.StatusBadGateway, "invalid_ai_response", "the model returned an unusable payload", nil)
	case errors.Is(err, llm.ErrEmptyCompletion):
		respond.Error(c, http.StatusBadGateway, "empty_completion", "the model returned no content", nil)
	case errors.Is(err, ErrGenerationFailed):
		respond.Error(c, http.StatusBadGateway, "generation_failed", "failed to generate industry insights", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch industry insights", nil)
	}
}
