package parser

import (
	"context"
	"encoding/json"
	"regexp"

	"vetpath-backend/internal/llm"
	"vetpath-backend/internal/shared/metrics"
	"vetpath-backend/internal/shared/telemetry"
	"vetpath-backend/internal/skills"
)

// Service parses free-text military experience into a structured skill set.
// It tries the configured LLM first and falls back to keyword extraction, so
// parsing never fails outright.
type Service struct {
	LLM llm.Client
}

// NewService constructs a Service.
func NewService(client llm.Client) *Service {
	if client == nil {
		client = llm.PlaceholderClient{}
	}
	return &Service{LLM: client}
}

// Parse extracts a skill set from an experience description.
func (s *Service) Parse(ctx context.Context, description string) (skills.SkillSet, error) {
	raw, err := s.LLM.ParseExperience(ctx, description)
	if err != nil {
		if ctx.Err() != nil {
			return skills.SkillSet{}, ctx.Err()
		}
		telemetry.Warn("parse.llm_unavailable", map[string]any{"err": err.Error()})
		metrics.IncParseFallback()
		return FallbackParse(description), nil
	}

	set, ok := decodeSkillSet(raw)
	if !ok {
		telemetry.Warn("parse.llm_bad_output", nil)
		metrics.IncParseFallback()
		return FallbackParse(description), nil
	}
	return set, nil
}

var jsonObjectRe = regexp.MustCompile(`\{[\s\S]*\}`)

// ExtractJSONObject pulls the first JSON object out of text that may carry
// surrounding prose. Returns nil when no object is present.
func ExtractJSONObject(text string) json.RawMessage {
	match := jsonObjectRe.FindString(text)
	if match == "" {
		return nil
	}
	if !json.Valid([]byte(match)) {
		return nil
	}
	return json.RawMessage(match)
}

func decodeSkillSet(raw json.RawMessage) (skills.SkillSet, bool) {
	if obj := ExtractJSONObject(string(raw)); obj != nil {
		raw = obj
	}
	var set skills.SkillSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return skills.SkillSet{}, false
	}
	if set.TechnicalSkills == nil {
		set.TechnicalSkills = []string{}
	}
	if set.SoftSkills == nil {
		set.SoftSkills = []string{}
	}
	if set.TransferableSkills == nil {
		set.TransferableSkills = []string{}
	}
	return set, true
}
