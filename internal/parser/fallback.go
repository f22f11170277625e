package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"vetpath-backend/internal/skills"
)

// Keyword tables for the no-LLM parse path. Entries are ordered: the first
// leadership level whose keywords appear wins, and higher levels are listed
// first.
var leadershipKeywords = []struct {
	level    string
	keywords []string
}{
	{"senior manager", []string{"battalion", "commander", "command sergeant", "first sergeant"}},
	{"manager", []string{"company", "captain", "platoon leader", "section chief"}},
	{"supervisor", []string{"sergeant", "staff sergeant", "petty officer", "nco"}},
	{"team lead", []string{"squad leader", "team leader", "fire team", "crew chief"}},
}

var technicalKeywords = []struct {
	skill    string
	keywords []string
}{
	{"equipment maintenance", []string{"maintenance", "repair", "mechanic", "technician"}},
	{"inventory management", []string{"inventory", "supply", "logistics", "warehouse"}},
	{"communications systems", []string{"radio", "communications", "signal", "satellite"}},
	{"medical procedures", []string{"medic", "medical", "first aid", "corpsman"}},
	{"weapons systems", []string{"weapons", "armament", "gunnery", "ordnance"}},
	{"vehicle operations", []string{"driver", "vehicle", "convoy", "transport"}},
	{"network administration", []string{"network", "it", "systems", "cyber"}},
	{"security operations", []string{"security", "force protection", "guard"}},
	{"training and instruction", []string{"training", "instructor", "teach", "mentor"}},
	{"documentation", []string{"reports", "documentation", "records", "admin"}},
}

var softKeywords = []struct {
	skill    string
	keywords []string
}{
	{"leadership", []string{"led", "leader", "command", "supervised"}},
	{"teamwork", []string{"team", "unit", "crew", "squad"}},
	{"communication", []string{"briefed", "coordinated", "liaison"}},
	{"problem solving", []string{"troubleshoot", "resolved", "solved"}},
	{"adaptability", []string{"deployed", "various", "multiple", "diverse"}},
	{"stress management", []string{"combat", "high-pressure", "operational"}},
	{"attention to detail", []string{"inspection", "quality", "precision"}},
	{"time management", []string{"deadline", "schedule", "mission"}},
}

var clearanceKeywords = []struct {
	level    string
	keywords []string
}{
	{"Top Secret/SCI", []string{"ts/sci", "top secret/sci"}},
	{"Top Secret", []string{"top secret", "ts clearance"}},
	{"Secret", []string{"secret clearance", "secret security"}},
	{"Confidential", []string{"confidential clearance"}},
}

var (
	yearsRe = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)`)
	scopeRe = regexp.MustCompile(`(\d+)[\s-]*(?:person|soldier|marine|sailor|airman|personnel|people|member)`)
	assetRe = regexp.MustCompile(`\$(\d+(?:,\d{3})*(?:\.\d+)?)\s*(?:m(?:illion)?|k|worth|value|equipment)`)
)

// FallbackParse extracts a skill set from free text by keyword matching. It
// provides basic functionality when no LLM provider is configured.
func FallbackParse(description string) skills.SkillSet {
	lower := strings.ToLower(description)

	var out skills.SkillSet

	if m := yearsRe.FindStringSubmatch(lower); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			out.YearsExperience = &years
		}
	}

	for _, entry := range leadershipKeywords {
		if containsAny(lower, entry.keywords) {
			scope := "team members"
			if m := scopeRe.FindStringSubmatch(lower); m != nil {
				scope = m[1] + " direct reports"
			}
			out.Leadership = &skills.Leadership{
				Level:   entry.level,
				Scope:   scope,
				Context: "military operational environment",
			}
			break
		}
	}

	for _, entry := range technicalKeywords {
		if containsAny(lower, entry.keywords) {
			out.TechnicalSkills = append(out.TechnicalSkills, entry.skill)
		}
	}

	for _, entry := range softKeywords {
		if containsAny(lower, entry.keywords) {
			out.SoftSkills = append(out.SoftSkills, entry.skill)
		}
	}

	if out.Leadership != nil {
		out.TransferableSkills = append(out.TransferableSkills, "team leadership and personnel management")
	}
	if strings.Contains(lower, "training") || strings.Contains(lower, "instructor") {
		out.TransferableSkills = append(out.TransferableSkills, "training development and delivery")
	}
	if containsAny(lower, []string{"logistics", "supply", "inventory"}) {
		out.TransferableSkills = append(out.TransferableSkills, "supply chain and logistics management")
	}
	if containsAny(lower, []string{"maintenance", "repair", "mechanic"}) {
		out.TransferableSkills = append(out.TransferableSkills, "equipment maintenance and troubleshooting")
	}
	if containsAny(lower, []string{"network", "it", "cyber", "systems"}) {
		out.TransferableSkills = append(out.TransferableSkills, "information technology and systems administration")
	}
	if containsAny(lower, []string{"medic", "medical", "corpsman"}) {
		out.TransferableSkills = append(out.TransferableSkills, "emergency medical response and patient care")
	}
	if containsAny(lower, []string{"security", "force protection"}) {
		out.TransferableSkills = append(out.TransferableSkills, "security operations and risk management")
	}
	out.TransferableSkills = append(out.TransferableSkills,
		"high-stress decision making",
		"operational planning and execution",
		"cross-functional team collaboration",
	)

	if m := assetRe.FindStringSubmatch(lower); m != nil {
		out.AssetResponsibility = fmt.Sprintf("$%s in equipment/assets", m[1])
	}

	for _, entry := range clearanceKeywords {
		if containsAny(lower, entry.keywords) {
			out.SecurityClearance = entry.level
			break
		}
	}

	out.TechnicalSkills = capList(out.TechnicalSkills, 10)
	out.SoftSkills = capList(out.SoftSkills, 8)
	out.TransferableSkills = capList(out.TransferableSkills, 8)
	return out
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func capList(in []string, max int) []string {
	if len(in) > max {
		return in[:max]
	}
	return in
}
