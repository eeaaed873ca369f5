package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careercoach-backend/internal/shared/server/middleware"
	"careercoach-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches user routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
	rg.PUT("/me/profile", h.updateProfile)
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	user, err := h.Svc.GetByID(c.Request.Context(), userID)
	if errors.Is(err, ErrNotFound) {
		// First login after OAuth: materialize the user row from token claims.
		email := middleware.UserEmailFromContext(c)
		if email == "" {
			respond.Error(c, http.StatusNotFound, "user_not_found", "user not found", nil)
			return
		}
		seed := User{
			ID:       userID,
			Email:    email,
			FullName: middleware.UserNameFromContext(c),
		}
		if err := h.Svc.UpsertFromAuth(c.Request.Context(), seed); err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create user", nil)
			return
		}
		user, err = h.Svc.GetByID(c.Request.Context(), userID)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch user", nil)
			return
		}
	} else if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch user", nil)
		return
	}

	respond.OK(c, user)
}

type updateProfileRequest struct {
	Industry   string   `json:"industry"`
	Experience int      `json:"experience"`
	Skills     []string `json:"skills"`
	Bio        string   `json:"bio"`
}

func (h *Handler) updateProfile(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	user, err := h.Svc.UpdateProfile(c.Request.Context(), userID, req.Industry, req.Experience, req.Skills, req.Bio)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "user_not_found", "user not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}

	respond.OK(c, user)
}
