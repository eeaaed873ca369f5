package coverletters

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

// RegisterRoutes attaches cover letter routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, generate ...gin.HandlerFunc) {
	post := append(append([]gin.HandlerFunc{}, generate...), h.generate)
	rg.POST("/cover-letters", post...)
	rg.GET("/cover-letters", h.list)
	rg.GET("/cover-letters/:id", h.get)
	rg.DELETE("/cover-letters/:id", h.delete)
}

type generateRequest struct {
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	letter, err := h.Svc.Generate(c.Request.Context(), userID, req.JobTitle, req.CompanyName, req.JobDescription)
	if err != nil {
		writeError(c, err, "failed to generate cover letter")
		return
	}

	respond.JSON(c, http.StatusCreated, letter)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	letters, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "failed to list cover letters")
		return
	}
	if letters == nil {
		letters = []CoverLetter{}
	}
	respond.OK(c, letters)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	letter, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to fetch cover letter")
		return
	}
	respond.OK(c, letter)
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, err, "failed to delete cover letter")
		return
	}
	c.Status(http.StatusNoContent)
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, users.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "user_not_found", "user not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "cover letter not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobTitle and companyName are required", nil)
	case errors.Is(err, llm.ErrEmptyCompletion):
		respond.Error(c, http.StatusBadGateway, "empty_completion", "the model returned no content", nil)
	case errors.Is(err, ErrGenerationFailed):
		respond.Error(c, http.StatusBadGateway, "generation_failed", fallback, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
