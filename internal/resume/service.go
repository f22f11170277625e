package resume

import (
	"context"
	"fmt"
	"strings"

	"vetpath-backend/internal/llm"
	"vetpath-backend/internal/profile"
	"vetpath-backend/internal/shared/metrics"
	"vetpath-backend/internal/shared/telemetry"
	"vetpath-backend/internal/skills"
)

// Service generates civilian-ready resumes from military profiles. The LLM
// path produces a tailored resume; a markdown template covers the no-provider
// case, so generation never fails outright.
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

// Generate produces a markdown resume targeting the given job.
func (s *Service) Generate(ctx context.Context, p profile.MilitaryProfile, set skills.SkillSet, targetJob, targetCompany string) (string, error) {
	input := llm.ResumeInput{
		ProfileSummary: profileSummary(p, set),
		TargetJob:      targetJob,
		TargetCompany:  targetCompany,
	}

	text, err := s.LLM.GenerateResume(ctx, input)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		telemetry.Warn("resume.llm_unavailable", map[string]any{"err": err.Error()})
		metrics.IncResumeFallback()
		return fallbackResume(p, set, targetJob), nil
	}
	return text, nil
}

func profileSummary(p profile.MilitaryProfile, set skills.SkillSet) string {
	var b strings.Builder
	b.WriteString("MILITARY PROFILE:\n")
	fmt.Fprintf(&b, "- Branch: %s\n", p.Branch)
	fmt.Fprintf(&b, "- Years of Service: %d\n", p.YearsOfService)
	fmt.Fprintf(&b, "- MOS/Rate: %s\n", orDefault(p.MOSCode, "Not specified"))
	fmt.Fprintf(&b, "- Rank: %s\n", orDefault(p.Rank, "Not specified"))
	b.WriteString("\nEXPERIENCE DESCRIPTION:\n")
	b.WriteString(p.ExperienceDescription)
	b.WriteString("\n\nEXTRACTED SKILLS:\n")
	if set.Leadership != nil {
		fmt.Fprintf(&b, "- Leadership: %s, %s, %s\n", set.Leadership.Level, set.Leadership.Scope, set.Leadership.Context)
	} else {
		b.WriteString("- Leadership: Not specified\n")
	}
	fmt.Fprintf(&b, "- Technical Skills: %s\n", orDefault(strings.Join(set.TechnicalSkills, ", "), "None listed"))
	fmt.Fprintf(&b, "- Soft Skills: %s\n", orDefault(strings.Join(set.SoftSkills, ", "), "None listed"))
	fmt.Fprintf(&b, "- Transferable Skills: %s\n", orDefault(strings.Join(set.TransferableSkills, ", "), "None listed"))
	fmt.Fprintf(&b, "- Years Experience: %d\n", yearsOrService(set, p))
	fmt.Fprintf(&b, "- Asset Responsibility: %s\n", orDefault(set.AssetResponsibility, "Not specified"))
	fmt.Fprintf(&b, "- Certifications: %s\n", orDefault(strings.Join(set.Certifications, ", "), "None listed"))
	fmt.Fprintf(&b, "- Security Clearance: %s\n", orDefault(set.SecurityClearance, "Not specified"))
	return b.String()
}

func yearsOrService(set skills.SkillSet, p profile.MilitaryProfile) int {
	if set.YearsExperience != nil {
		return *set.YearsExperience
	}
	return p.YearsOfService
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
