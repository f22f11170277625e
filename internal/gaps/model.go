package gaps

import "vetpath-backend/internal/training"

// GapReport is the structured gap analysis for one (skill set, occupation)
// pair. The narrative fields are best-effort LLM output and may be empty when
// no provider is available.
type GapReport struct {
	Gaps                 []string                  `json:"gaps"`
	Recommendations      []training.Recommendation `json:"recommendations"`
	EstimatedTimeToReady string                    `json:"estimatedTimeToReady"`
	MatchPercentage      float64                   `json:"matchPercentage"`
	DevelopmentSummary   string                    `json:"developmentSummary,omitempty"`
	DevelopmentSteps     []string                  `json:"developmentSteps,omitempty"`
	ResourceSuggestions  []string                  `json:"resourceSuggestions,omitempty"`
}

// Readiness is the presentation-layer readiness assessment for one
// occupation. The banding labels drive display only.
type Readiness struct {
	ReadinessScore  float64 `json:"readinessScore"`
	Level           string  `json:"level"`
	Message         string  `json:"message"`
	MatchPercentage float64 `json:"matchPercentage"`
	SkillsMatched   int     `json:"skillsMatched"`
	SkillsRequired  int     `json:"skillsRequired"`
	GapsCount       int     `json:"gapsCount"`
	EstimatedTime   string  `json:"estimatedTime"`
	OccupationTitle string  `json:"occupationTitle"`
}
