package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts LLM providers for experience parsing, resume generation,
// and development-plan narratives.
type Client interface {
	ParseExperience(ctx context.Context, description string) (json.RawMessage, error)
	GenerateResume(ctx context.Context, input ResumeInput) (string, error)
	SummarizeDevelopmentPlan(ctx context.Context, input PlanInput) (json.RawMessage, error)
}

// ResumeInput captures the inputs needed for resume generation. The profile
// summary is pre-rendered by the caller so the provider adapter stays thin.
type ResumeInput struct {
	ProfileSummary string
	TargetJob      string
	TargetCompany  string
}

// PlanInput captures the inputs for a development-plan narrative.
type PlanInput struct {
	OccupationTitle string
	OccupationCode  string
	Gaps            []string
	MatchPercentage float64
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is the no-provider implementation. Callers treat its
// errors as "LLM unavailable" and fall back to keyword or template paths.
type PlaceholderClient struct{}

// ParseExperience returns ErrNotImplemented.
func (PlaceholderClient) ParseExperience(ctx context.Context, description string) (json.RawMessage, error) {
	_ = ctx
	_ = description
	return nil, ErrNotImplemented
}

// GenerateResume returns ErrNotImplemented.
func (PlaceholderClient) GenerateResume(ctx context.Context, input ResumeInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotImplemented
}

// SummarizeDevelopmentPlan returns ErrNotImplemented.
func (PlaceholderClient) SummarizeDevelopmentPlan(ctx context.Context, input PlanInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotImplemented
}
