package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vetpath-backend/internal/catalog"
	"vetpath-backend/internal/gaps"
	"vetpath-backend/internal/matching"
	"vetpath-backend/internal/parser"
	"vetpath-backend/internal/resume"
	"vetpath-backend/internal/services/health"
	"vetpath-backend/internal/sessions"
	"vetpath-backend/internal/shared/config"
	"vetpath-backend/internal/shared/metrics"
	"vetpath-backend/internal/shared/server/middleware"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	HealthService   *health.Service
	CatalogHandler  *catalog.Handler
	ParserHandler   *parser.Handler
	MatchHandler    *matching.Handler
	GapsHandler     *gaps.Handler
	ResumeHandler   *resume.Handler
	SessionsHandler *sessions.Handler
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
		middleware.RateLimit(rateLimitConfig(deps.Config)),
	)

	r.GET("/metrics", metrics.Handler())

	// /api mirrors /api/v1 for clients built against the unversioned paths.
	registerAPI(r.Group("/api/v1"), deps)
	registerAPI(r.Group("/api"), deps)

	return r
}

func registerAPI(api *gin.RouterGroup, deps RouterDeps) {
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.HealthService.Status())
	})

	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}
	if deps.ParserHandler != nil {
		deps.ParserHandler.RegisterRoutes(api)
	}
	if deps.MatchHandler != nil {
		deps.MatchHandler.RegisterRoutes(api)
	}
	if deps.GapsHandler != nil {
		deps.GapsHandler.RegisterRoutes(api)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.SessionsHandler != nil {
		deps.SessionsHandler.RegisterRoutes(api)
	}
}

func rateLimitConfig(cfg config.Config) middleware.RateLimitConfig {
	rate := cfg.LLMRatePerSec
	if rate <= 0 {
		rate = 1
	}
	burst := cfg.LLMRateBurst
	if burst <= 0 {
		burst = 10
	}
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			middleware.GroupLLM: {Rate: rate, Burst: burst},
		},
		GroupFor: llmGroupFor,
	}
}

// llmGroupFor routes language-model backed endpoints into the stricter
// rate-limit bucket.
func llmGroupFor(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}
	switch {
	case strings.HasSuffix(path, "/parse"),
		strings.HasSuffix(path, "/parse/upload"),
		strings.HasSuffix(path, "/match/profile"),
		strings.HasSuffix(path, "/gaps"),
		strings.HasSuffix(path, "/resume"):
		return middleware.GroupLLM
	default:
		return ""
	}
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
