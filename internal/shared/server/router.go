package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "careercoach-backend/internal/auth"
	"careercoach-backend/internal/config"
	"careercoach-backend/internal/coverletters"
	"careercoach-backend/internal/insights"
	"careercoach-backend/internal/interviews"
	"careercoach-backend/internal/resumes"
	"careercoach-backend/internal/services/health"
	"careercoach-backend/internal/shared/server/middleware"
	"careercoach-backend/internal/shared/server/respond"
	"careercoach-backend/internal/users"
)

// generationRule throttles the completion-backed routes per principal.
var generationRule = middleware.RateLimitRule{Rate: 0.5, Burst: 5}

// RouterDeps carries the constructed handlers into the router.
type RouterDeps struct {
	Config             config.Config
	Health             *health.Service
	GoogleAuth         *googleauth.GoogleService
	UsersHandler       *users.Handler
	CoverLetterHandler *coverletters.Handler
	InsightHandler     *insights.Handler
	InterviewHandler   *interviews.Handler
	ResumeHandler      *resumes.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
	)

	limiter := middleware.NewRateLimiter(nil)
	generate := middleware.RateLimit(generationRule, limiter)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	deps.GoogleAuth.RegisterRoutes(api)
	deps.UsersHandler.RegisterRoutes(api)
	deps.CoverLetterHandler.RegisterRoutes(api, generate)
	deps.InsightHandler.RegisterRoutes(api, generate)
	deps.InterviewHandler.RegisterRoutes(api, generate)
	deps.ResumeHandler.RegisterRoutes(api, generate)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
