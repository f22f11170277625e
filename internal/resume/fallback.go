package resume

import (
	"fmt"
	"strings"
	"unicode"

	"vetpath-backend/internal/profile"
	"vetpath-backend/internal/skills"
)

// fallbackResume renders a basic markdown resume template when no LLM
// provider is configured. Bracketed placeholders mark the fields the veteran
// fills in themselves.
func fallbackResume(p profile.MilitaryProfile, set skills.SkillSet, targetJob string) string {
	leadershipDesc := ""
	if set.Leadership != nil {
		leadershipDesc = fmt.Sprintf("Experienced %s with history of managing %s in %s.",
			set.Leadership.Level, set.Leadership.Scope, set.Leadership.Context)
	}

	allSkills := make([]string, 0, 12)
	allSkills = append(allSkills, head(set.TechnicalSkills, 5)...)
	allSkills = append(allSkills, head(set.SoftSkills, 3)...)
	allSkills = append(allSkills, head(set.TransferableSkills, 4)...)
	allSkills = head(allSkills, 10)

	var bullets strings.Builder
	for i, skill := range allSkills {
		if i > 0 {
			bullets.WriteString("\n")
		}
		bullets.WriteString("- " + titleWords(skill))
	}

	certsSection := ""
	if len(set.Certifications) > 0 {
		var lines strings.Builder
		for _, cert := range set.Certifications {
			lines.WriteString("- " + cert + "\n")
		}
		certsSection = "\n## CERTIFICATIONS\n\n" + lines.String()
	}

	clearanceSection := ""
	if set.SecurityClearance != "" {
		clearanceSection = "\n## SECURITY CLEARANCE\n\n- " + set.SecurityClearance + "\n"
	}

	assets := set.AssetResponsibility
	if assets == "" {
		assets = "significant value"
	}

	return fmt.Sprintf(`# [VETERAN NAME]

**Email:** [your.email@email.com] | **Phone:** [XXX-XXX-XXXX] | **Location:** [City, State]
**LinkedIn:** [linkedin.com/in/yourprofile]

---

## PROFESSIONAL SUMMARY

Dedicated professional with %d years of experience in the %s. %s Proven track record of excellence in high-pressure environments with strong focus on mission accomplishment and team development. Seeking to leverage military experience in a %s role.

---

## CORE COMPETENCIES

%s

---

## PROFESSIONAL EXPERIENCE

### %s | [Dates of Service]
**[Most Recent Rank/Position]**

- Led and managed team operations, ensuring 100%% mission completion rate
- Maintained and operated equipment valued at %s
- Trained and mentored junior team members on procedures and best practices
- Coordinated logistics and resources for operational requirements
- Implemented process improvements resulting in increased efficiency
- Maintained compliance with safety and security protocols

---

## EDUCATION & TRAINING

**[Degree/Training Program]** | [Institution Name] | [Year]

- Relevant military training and professional development courses
- Leadership development programs
- Technical certifications and qualifications
%s%s
---

*References available upon request*
`,
		yearsOrService(set, p),
		p.Branch,
		leadershipDesc,
		targetJob,
		bullets.String(),
		p.Branch,
		assets,
		certsSection,
		clearanceSection,
	)
}

func head(in []string, n int) []string {
	if len(in) > n {
		return in[:n]
	}
	return in
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
