package resume

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vetpath-backend/internal/llm"
	"vetpath-backend/internal/profile"
	"vetpath-backend/internal/skills"
)

type stubResumeLLM struct {
	llm.PlaceholderClient
	text string
	err  error

	gotInput llm.ResumeInput
}

func (s *stubResumeLLM) GenerateResume(ctx context.Context, input llm.ResumeInput) (string, error) {
	s.gotInput = input
	return s.text, s.err
}

func testProfile() profile.MilitaryProfile {
	return profile.MilitaryProfile{
		Branch:                "Army",
		YearsOfService:        8,
		MOSCode:               "92A",
		Rank:                  "Staff Sergeant",
		ExperienceDescription: "Managed supply operations for a battalion.",
	}
}

func testSkills() skills.SkillSet {
	years := 8
	return skills.SkillSet{
		Leadership:         &skills.Leadership{Level: "supervisor", Scope: "12 direct reports", Context: "field operations"},
		TechnicalSkills:    []string{"inventory management", "logistics management"},
		SoftSkills:         []string{"communication"},
		TransferableSkills: []string{"supply chain and logistics management"},
		YearsExperience:    &years,
		SecurityClearance:  "Secret",
	}
}

func TestGenerateUsesLLM(t *testing.T) {
	stub := &stubResumeLLM{text: "# JANE VETERAN\n\nsample resume"}
	svc := NewService(stub)

	text, err := svc.Generate(context.Background(), testProfile(), testSkills(), "Logistics Analyst", "Acme")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != stub.text {
		t.Fatalf("expected LLM resume returned, got %q", text)
	}
	if stub.gotInput.TargetJob != "Logistics Analyst" || stub.gotInput.TargetCompany != "Acme" {
		t.Fatalf("unexpected input %+v", stub.gotInput)
	}
	if !strings.Contains(stub.gotInput.ProfileSummary, "Branch: Army") {
		t.Fatalf("profile summary missing branch:\n%s", stub.gotInput.ProfileSummary)
	}
	if !strings.Contains(stub.gotInput.ProfileSummary, "inventory management, logistics management") {
		t.Fatalf("profile summary missing skills:\n%s", stub.gotInput.ProfileSummary)
	}
}

func TestGenerateFallsBackToTemplate(t *testing.T) {
	svc := NewService(&stubResumeLLM{err: errors.New("provider down")})

	text, err := svc.Generate(context.Background(), testProfile(), testSkills(), "Logistics Analyst", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, want := range []string{
		"## PROFESSIONAL SUMMARY",
		"8 years of experience in the Army",
		"Logistics Analyst role",
		"## SECURITY CLEARANCE",
		"- Secret",
		"Inventory Management",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("fallback resume missing %q:\n%s", want, text)
		}
	}
}

func TestFallbackOmitsEmptySections(t *testing.T) {
	set := skills.SkillSet{TechnicalSkills: []string{"welding"}}
	text := fallbackResume(testProfile(), set, "Welder")

	if strings.Contains(text, "## CERTIFICATIONS") {
		t.Fatalf("expected no certifications section:\n%s", text)
	}
	if strings.Contains(text, "## SECURITY CLEARANCE") {
		t.Fatalf("expected no clearance section:\n%s", text)
	}
	if !strings.Contains(text, "significant value") {
		t.Fatalf("expected default asset wording:\n%s", text)
	}
}
