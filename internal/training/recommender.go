package training

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"vetpath-backend/internal/skills"
)

// defaults covers common skill gaps that may be missing from the resource
// store. Keys are canonical skill names.
var defaults = map[string]Recommendation{
	"project management":        {Certification: "PMP or CAPM Certification", EstimatedTime: "3-6 months", Cost: "Often covered by VA benefits", Provider: "Project Management Institute", VAEligible: true},
	"data analysis":             {Certification: "Google Data Analytics Certificate", EstimatedTime: "6 months", Cost: "Free on Coursera", Provider: "Google/Coursera", VAEligible: true},
	"programming":               {Certification: "Google IT Automation with Python", EstimatedTime: "6 months", Cost: "Free on Coursera", Provider: "Google/Coursera", VAEligible: true},
	"software development":      {Certification: "AWS Certified Developer or freeCodeCamp", EstimatedTime: "6-12 months", Cost: "Free to $150", Provider: "AWS/freeCodeCamp", VAEligible: true},
	"cybersecurity":             {Certification: "CompTIA Security+", EstimatedTime: "3-4 months", Cost: "$392 exam fee, often VA covered", Provider: "CompTIA", VAEligible: true},
	"network administration":    {Certification: "CompTIA Network+", EstimatedTime: "2-3 months", Cost: "$358 exam fee, often VA covered", Provider: "CompTIA", VAEligible: true},
	"lean manufacturing":        {Certification: "Six Sigma Green Belt", EstimatedTime: "2-3 months", Cost: "$438 exam fee, often employer paid", Provider: "ASQ or IASSC", VAEligible: true},
	"quality control":           {Certification: "ASQ Certified Quality Inspector", EstimatedTime: "2-3 months", Cost: "$394 exam fee", Provider: "American Society for Quality", VAEligible: true},
	"cad software":              {Certification: "Autodesk Certified User", EstimatedTime: "2-3 months", Cost: "$125 exam fee", Provider: "Autodesk", VAEligible: true},
	"supply chain":              {Certification: "APICS CSCP", EstimatedTime: "6-9 months", Cost: "$595 exam fee, often employer paid", Provider: "ASCM", VAEligible: true},
	"healthcare administration": {Certification: "Certified Medical Manager", EstimatedTime: "6 months", Cost: "$325 exam fee", Provider: "PAHCOM", VAEligible: true},
	"electrical systems":        {Certification: "Journeyman Electrician License", EstimatedTime: "Apprenticeship program", Cost: "Paid apprenticeship", Provider: "State Licensing Board", VAEligible: true},
	"mechanical design":         {Certification: "SOLIDWORKS Certification", EstimatedTime: "3-6 months", Cost: "$99-199 exam fee", Provider: "Dassault Systemes", VAEligible: true},
	"budgeting":                 {Certification: "Financial Management Certificate", EstimatedTime: "3-4 months", Cost: "Varies by program", Provider: "Various universities", VAEligible: true},
	"process improvement":       {Certification: "Lean Six Sigma Yellow Belt", EstimatedTime: "1-2 months", Cost: "$100-300", Provider: "Multiple providers", VAEligible: true},
}

// Recommender resolves training recommendations for skill gaps. Resolution
// order: resource store, then built-in defaults, then a generic fallback, so
// every gap always gets a recommendation.
type Recommender struct {
	Repo Repo
}

// NewRecommender constructs a Recommender.
func NewRecommender(repo Repo) *Recommender {
	return &Recommender{Repo: repo}
}

// ForSkill returns the recommendation for a skill gap. The returned SkillGap
// echoes the caller's original wording. Store lookup errors other than a miss
// are returned; the defaults and generic fallback cannot fail.
func (r *Recommender) ForSkill(ctx context.Context, skill string) (Recommendation, error) {
	canonical := skills.Normalize(skill)

	if r.Repo != nil {
		res, err := r.Repo.FindForSkill(ctx, canonical)
		switch {
		case err == nil:
			return Recommendation{
				SkillGap:      skill,
				Certification: res.CertificationName,
				EstimatedTime: res.EstimatedTime,
				Cost:          res.Cost,
				Provider:      res.Provider,
				VAEligible:    res.VAEligible,
			}, nil
		case !errors.Is(err, ErrNoResource):
			return Recommendation{}, err
		}
	}

	if rec, ok := defaults[canonical]; ok {
		rec.SkillGap = skill
		return rec, nil
	}

	return Recommendation{
		SkillGap:      skill,
		Certification: titleCase(canonical) + " certification or training",
		EstimatedTime: "1-6 months",
		Cost:          "Varies - check VA benefits eligibility",
		Provider:      "Various training providers",
		VAEligible:    true,
	}, nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
