package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "careercoach-backend/internal/auth"
	"careercoach-backend/internal/config"
	"careercoach-backend/internal/coverletters"
	"careercoach-backend/internal/insights"
	"careercoach-backend/internal/interviews"
	"careercoach-backend/internal/llm"
	"careercoach-backend/internal/llm/gemini"
	"careercoach-backend/internal/llm/groq"
	"careercoach-backend/internal/resumes"
	"careercoach-backend/internal/services/health"
	"careercoach-backend/internal/shared/cache"
	"careercoach-backend/internal/shared/server"
	"careercoach-backend/internal/shared/storage/db"
	"careercoach-backend/internal/shared/storage/object"
	localstore "careercoach-backend/internal/shared/storage/object/local"
	s3store "careercoach-backend/internal/shared/storage/object/s3"
	"careercoach-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	UsersRepo       users.Repo
	CoverLetterRepo coverletters.Repo
	InsightRepo     insights.Repo
	AssessmentRepo  interviews.Repo
	ResumeRepo      resumes.Repo

	UsersService       *users.Service
	CoverLetterService *coverletters.Service
	InsightService     *insights.Service
	InterviewService   *interviews.Service
	ResumeService      *resumes.Service
	GoogleAuth         *googleauth.GoogleService
}

// Option tweaks the app before handlers and routes are wired.
type Option func(*options)

type options struct {
	llmClient llm.Client
}

// WithLLMClient substitutes the completion client; tests use it to avoid
// real provider calls.
func WithLLMClient(client llm.Client) Option {
	return func(o *options) { o.llmClient = client }
}

// Build prepares all dependencies and the router.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient := o.llmClient
	if llmClient == nil {
		llmClient, err = buildLLM(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	var invalidator cache.Invalidator = cache.Noop{}
	if strings.TrimSpace(cfg.RedisAddr) != "" {
		invalidator = cache.NewRedisInvalidator(cfg.RedisAddr, cfg.RedisPassword)
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	buildServices(app, llmClient, invalidator)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             cfg,
		Health:             health.NewService(),
		GoogleAuth:         app.GoogleAuth,
		UsersHandler:       users.NewHandler(app.UsersService),
		CoverLetterHandler: coverletters.NewHandler(app.CoverLetterService),
		InsightHandler:     insights.NewHandler(app.InsightService),
		InterviewHandler:   interviews.NewHandler(app.InterviewService),
		ResumeHandler:      resumes.NewHandler(app.ResumeService),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "gemini":
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" && isDevLike(cfg.Env) {
			log.Printf("bootstrap: GEMINI_API_KEY empty; completions disabled")
			return llm.Unconfigured{}, nil
		}
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
	default:
		if strings.TrimSpace(cfg.GroqAPIKey) == "" && isDevLike(cfg.Env) {
			log.Printf("bootstrap: GROQ_API_KEY empty; completions disabled")
			return llm.Unconfigured{}, nil
		}
		return groq.NewClient(cfg.GroqAPIKey, cfg.LLMModel)
	}
}

func buildServices(app *App, llmClient llm.Client, invalidator cache.Invalidator) {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.CoverLetterRepo = &coverletters.PGRepo{DB: app.DB}
		app.InsightRepo = &insights.PGRepo{DB: app.DB}
		app.AssessmentRepo = &interviews.PGRepo{DB: app.DB}
		app.ResumeRepo = &resumes.PGRepo{DB: app.DB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.CoverLetterRepo = coverletters.NewMemoryRepo()
		app.InsightRepo = insights.NewMemoryRepo()
		app.AssessmentRepo = interviews.NewMemoryRepo()
		app.ResumeRepo = resumes.NewMemoryRepo()
	}

	app.UsersService = users.NewService(app.UsersRepo)
	app.CoverLetterService = &coverletters.Service{
		Repo:  app.CoverLetterRepo,
		Users: app.UsersRepo,
		LLM:   llmClient,
	}
	app.InsightService = &insights.Service{
		Repo:  app.InsightRepo,
		Users: app.UsersRepo,
		LLM:   llmClient,
	}
	app.InterviewService = &interviews.Service{
		Repo:  app.AssessmentRepo,
		Users: app.UsersRepo,
		LLM:   llmClient,
	}
	app.ResumeService = &resumes.Service{
		Repo:        app.ResumeRepo,
		Users:       app.UsersRepo,
		LLM:         llmClient,
		Store:       app.Store,
		Invalidator: invalidator,
	}
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
