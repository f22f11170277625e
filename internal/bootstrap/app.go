package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"vetpath-backend/internal/catalog"
	"vetpath-backend/internal/gaps"
	"vetpath-backend/internal/llm"
	openai "vetpath-backend/internal/llm/openai"
	"vetpath-backend/internal/matching"
	"vetpath-backend/internal/parser"
	"vetpath-backend/internal/resume"
	"vetpath-backend/internal/services/health"
	"vetpath-backend/internal/sessions"
	"vetpath-backend/internal/shared/config"
	"vetpath-backend/internal/shared/server"
	"vetpath-backend/internal/shared/storage/db"
	"vetpath-backend/internal/training"
)

// App holds shared dependencies for the API server.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	CatalogRepo  catalog.Repo
	TrainingRepo training.Repo
	LLM          llm.Client

	ParserService   *parser.Service
	MatchService    *matching.Service
	GapAnalyzer     *gaps.Analyzer
	ResumeService   *resume.Service
	SessionsRepo    *sessions.MemoryRepo
	HealthService   *health.Service
	CatalogHandler  *catalog.Handler
	ParserHandler   *parser.Handler
	MatchHandler    *matching.Handler
	GapsHandler     *gaps.Handler
	ResumeHandler   *resume.Handler
	SessionsHandler *sessions.Handler
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		LLM:    llmClient,
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		HealthService:   app.HealthService,
		CatalogHandler:  app.CatalogHandler,
		ParserHandler:   app.ParserHandler,
		MatchHandler:    app.MatchHandler,
		GapsHandler:     app.GapsHandler,
		ResumeHandler:   app.ResumeHandler,
		SessionsHandler: app.SessionsHandler,
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
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider != "openai" {
		return llm.PlaceholderClient{}, nil
	}
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		log.Printf("bootstrap: OPENAI_API_KEY empty; AI features run in fallback mode")
		return llm.PlaceholderClient{}, nil
	}
	return openai.NewClient(apiKey, cfg.LLMModel)
}

func buildServices(app *App) {
	switch {
	case app.DB != nil:
		app.CatalogRepo = &catalog.PGRepo{DB: app.DB}
		app.TrainingRepo = &training.PGRepo{DB: app.DB}
	case app.Config.SeedCatalog:
		app.CatalogRepo = catalog.NewSeededMemoryRepo()
		app.TrainingRepo = training.NewSeededMemoryRepo()
	default:
		app.CatalogRepo = catalog.NewMemoryRepo()
		app.TrainingRepo = training.NewMemoryRepo()
	}

	app.ParserService = parser.NewService(app.LLM)
	app.MatchService = matching.NewService(app.CatalogRepo, app.ParserService)
	app.GapAnalyzer = gaps.NewAnalyzer(training.NewRecommender(app.TrainingRepo), app.LLM)
	app.ResumeService = resume.NewService(app.LLM)
	app.SessionsRepo = sessions.NewMemoryRepo()

	aiEnabled := false
	if _, ok := app.LLM.(llm.PlaceholderClient); !ok {
		aiEnabled = app.LLM != nil
	}
	database := "memory"
	if app.DB != nil {
		database = "connected"
	}
	app.HealthService = health.NewService(aiEnabled, database)

	app.CatalogHandler = catalog.NewHandler(app.CatalogRepo)
	app.ParserHandler = parser.NewHandler(app.ParserService)
	app.MatchHandler = matching.NewHandler(app.MatchService)
	app.GapsHandler = gaps.NewHandler(app.GapAnalyzer, app.CatalogRepo)
	app.ResumeHandler = resume.NewHandler(app.ResumeService)
	app.SessionsHandler = sessions.NewHandler(app.SessionsRepo)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
