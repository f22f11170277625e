package parser

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"vetpath-backend/internal/llm"
)

type stubLLM struct {
	llm.PlaceholderClient
	parseRaw json.RawMessage
	parseErr error
}

func (s stubLLM) ParseExperience(ctx context.Context, description string) (json.RawMessage, error) {
	return s.parseRaw, s.parseErr
}

func TestParseUsesLLMOutput(t *testing.T) {
	raw := json.RawMessage(`{
		"leadership": {"level": "supervisor", "scope": "12 direct reports", "context": "field operations"},
		"technicalSkills": ["logistics management"],
		"softSkills": ["communication"],
		"transferableSkills": ["supply chain and logistics management"],
		"yearsExperience": 6,
		"securityClearance": "Secret"
	}`)

	svc := NewService(stubLLM{parseRaw: raw})
	set, err := svc.Parse(context.Background(), "six years running battalion supply")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if set.Leadership == nil || set.Leadership.Level != "supervisor" {
		t.Fatalf("expected supervisor leadership, got %+v", set.Leadership)
	}
	if len(set.TechnicalSkills) != 1 || set.TechnicalSkills[0] != "logistics management" {
		t.Fatalf("unexpected technical skills %v", set.TechnicalSkills)
	}
	if set.YearsExperience == nil || *set.YearsExperience != 6 {
		t.Fatalf("expected 6 years, got %v", set.YearsExperience)
	}
}

func TestParseFallsBackWhenLLMFails(t *testing.T) {
	svc := NewService(stubLLM{parseErr: errors.New("provider down")})
	set, err := svc.Parse(context.Background(), "staff sergeant, 5 years in supply and logistics")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if set.IsEmpty() {
		t.Fatal("expected fallback parser output, got empty skill set")
	}
	if set.Leadership == nil || set.Leadership.Level != "supervisor" {
		t.Fatalf("expected fallback leadership detection, got %+v", set.Leadership)
	}
}

func TestParseFallsBackOnBadLLMJSON(t *testing.T) {
	svc := NewService(stubLLM{parseRaw: json.RawMessage("not json at all")})
	set, err := svc.Parse(context.Background(), "mechanic with 3 years of vehicle maintenance")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if set.IsEmpty() {
		t.Fatal("expected fallback parser output, got empty skill set")
	}
}

func TestExtractJSONObject(t *testing.T) {
	raw := ExtractJSONObject("Here is the result:\n{\"technicalSkills\": [\"radio repair\"]}\nDone.")
	if raw == nil {
		t.Fatal("expected embedded JSON object extracted")
	}
	var decoded struct {
		TechnicalSkills []string `json:"technicalSkills"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal extracted object: %v", err)
	}
	if len(decoded.TechnicalSkills) != 1 {
		t.Fatalf("unexpected decode result %+v", decoded)
	}

	if got := ExtractJSONObject("no object here"); got != nil {
		t.Fatalf("expected nil for text without JSON, got %s", got)
	}
}
