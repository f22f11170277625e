package skills

import "strings"

// Leadership describes leadership experience extracted from a profile.
type Leadership struct {
	Level   string `json:"level"`
	Scope   string `json:"scope"`
	Context string `json:"context"`
}

// SkillSet is the structured skills record produced by the experience parser
// or edited by the user. It is treated as immutable once handed to the
// matcher for a given request.
type SkillSet struct {
	Leadership          *Leadership `json:"leadership,omitempty"`
	TechnicalSkills     []string    `json:"technicalSkills"`
	SoftSkills          []string    `json:"softSkills"`
	TransferableSkills  []string    `json:"transferableSkills"`
	YearsExperience     *int        `json:"yearsExperience,omitempty"`
	AssetResponsibility string      `json:"assetResponsibility,omitempty"`
	Certifications      []string    `json:"certifications,omitempty"`
	SecurityClearance   string      `json:"securityClearance,omitempty"`
}

// All returns the union of the three skill categories, deduplicated by
// canonical form with first-seen order preserved.
func (s SkillSet) All() []string {
	combined := make([]string, 0, len(s.TechnicalSkills)+len(s.SoftSkills)+len(s.TransferableSkills))
	combined = append(combined, s.TechnicalSkills...)
	combined = append(combined, s.SoftSkills...)
	combined = append(combined, s.TransferableSkills...)
	return Dedupe(combined)
}

// Expanded returns All plus skills implied by the rest of the profile:
// leadership experience and a security clearance each contribute matchable
// civilian skills.
func (s SkillSet) Expanded() []string {
	combined := s.All()

	if s.Leadership != nil {
		combined = append(combined, "team leadership")
		switch strings.ToLower(strings.TrimSpace(s.Leadership.Level)) {
		case "manager", "senior manager":
			combined = append(combined, "operations management", "strategic planning")
		}
	}

	if s.SecurityClearance != "" {
		combined = append(combined, "security clearance")
		if strings.Contains(strings.ToLower(s.SecurityClearance), "top secret") {
			combined = append(combined, "cybersecurity", "risk assessment")
		}
	}

	return Dedupe(combined)
}

// CanonicalSet returns the canonical-form membership set for the union of
// the three skill categories. This is the set both the matcher and the gap
// analyzer score against, so their results agree by construction. Profile
// flows that want the implied extras expand the set before matching.
func (s SkillSet) CanonicalSet() map[string]struct{} {
	return Set(s.All())
}

// IsEmpty reports whether all three skill categories are empty. An empty
// skill set is valid input; every occupation simply scores 0.
func (s SkillSet) IsEmpty() bool {
	return len(s.TechnicalSkills) == 0 && len(s.SoftSkills) == 0 && len(s.TransferableSkills) == 0
}
