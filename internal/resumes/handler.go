package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careercoach-backend/internal/llm"
	"careercoach-backend/internal/shared/server/middleware"
	"careercoach-backend/internal/shared/server/respond"
	"careercoach-backend/internal/users"
)

// maxUploadBytes caps resume document uploads.
const maxUploadBytes = 10 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, generate ...gin.HandlerFunc) {
	improve := append(append([]gin.HandlerFunc{}, generate...), h.improve)
	rg.PUT("/resume", h.save)
	rg.GET("/resume", h.get)
	rg.POST("/resume/improve", improve...)
	rg.POST("/resume/upload", h.upload)
}

type saveRequest struct {
	Content string `json:"content"`
}

func (h *Handler) save(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Save(c.Request.Context(), userID, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, resume)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resume, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, resume)
}

type improveRequest struct {
	Current string `json:"current"`
	Type    string `json:"type"`
}

func (h *Handler) improve(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req improveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	improved, err := h.Svc.ImproveWithAI(c.Request.Context(), userID, req.Current, req.Type)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"content": improved})
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "a file field is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read uploaded file", nil)
		return
	}
	defer file.Close()

	resume, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, resume)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, users.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "user_not_found", "user not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "content is required", nil)
	case errors.Is(err, ErrExtractionFailed):
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", "could not extract text from the uploaded document", nil)
	case errors.Is(err, llm.ErrEmptyCompletion):
		respond.Error(c, http.StatusBadGateway, "empty_completion", "the model returned no content", nil)
	case errors.Is(err, ErrGenerationFailed):
		respond.Error(c, http.StatusBadGateway, "generation_failed", "failed to improve content", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "resume request failed", nil)
	}
}
