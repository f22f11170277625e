package llm

import (
	_ "embed"
	"fmt"
	"strings"
)

var (
	//go:embed prompts/parse_system.txt
	parseSystemPrompt string
	//go:embed prompts/resume_system.txt
	resumeSystemPrompt string
	//go:embed prompts/plan_system.txt
	planSystemPrompt string
)

// ParseSystemPrompt returns the system prompt for experience parsing.
func ParseSystemPrompt() string { return parseSystemPrompt }

// ResumeSystemPrompt returns the system prompt for resume generation.
func ResumeSystemPrompt() string { return resumeSystemPrompt }

// PlanSystemPrompt returns the system prompt for development-plan narratives.
func PlanSystemPrompt() string { return planSystemPrompt }

// ParseUserMessage renders the user message for experience parsing.
func ParseUserMessage(description string) string {
	return "Parse this military experience and extract skills:\n\n" + description
}

// ResumeUserMessage renders the user message for resume generation.
func ResumeUserMessage(input ResumeInput) string {
	var b strings.Builder
	b.WriteString("Create a professional resume for this veteran:\n\n")
	b.WriteString(input.ProfileSummary)
	b.WriteString("\n\nTARGET POSITION: ")
	b.WriteString(input.TargetJob)
	if input.TargetCompany != "" {
		b.WriteString("\nTARGET COMPANY: ")
		b.WriteString(input.TargetCompany)
	}
	return b.String()
}

// PlanUserMessage renders the user message for a development-plan narrative.
func PlanUserMessage(input PlanInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target occupation: %s (%s)\n", input.OccupationTitle, input.OccupationCode)
	fmt.Fprintf(&b, "Current skill match: %.1f%%\n", input.MatchPercentage)
	b.WriteString("Missing skills:\n")
	for _, gap := range input.Gaps {
		b.WriteString("- ")
		b.WriteString(gap)
		b.WriteString("\n")
	}
	b.WriteString("\nProduce the development plan JSON.")
	return b.String()
}
