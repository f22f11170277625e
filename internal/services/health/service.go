package health

// Service reports process health and the state of optional dependencies.
type Service struct {
	aiEnabled bool
	database  string
}

// NewService constructs a health service. database is "connected" when a
// Postgres pool is live and "memory" when the in-memory repositories back
// the API.
func NewService(aiEnabled bool, database string) *Service {
	if database == "" {
		database = "memory"
	}
	return &Service{aiEnabled: aiEnabled, database: database}
}

// Status returns the health payload served at /api/v1/health.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"status":     "healthy",
		"ai_enabled": s.aiEnabled,
		"database":   s.database,
	}
}
