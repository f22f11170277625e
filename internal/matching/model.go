package matching

// MatchResult is one scored occupation in a ranked match list. Derived on
// demand, never persisted.
type MatchResult struct {
	OccupationCode    string   `json:"occupationCode"`
	OccupationTitle   string   `json:"occupationTitle"`
	Description       string   `json:"description"`
	Industry          string   `json:"industry"`
	MedianWage        *int     `json:"medianWage"`
	JobOutlook        string   `json:"jobOutlook"`
	GrowthRate        *float64 `json:"growthRate"`
	EducationRequired string   `json:"educationRequired"`
	RequiredSkills    []string `json:"requiredSkills"`
	SkillMatchScore   float64  `json:"skillMatchScore"`
}

// Preferences filter a ranked match list. Zero values mean no filtering.
type Preferences struct {
	MinSalary  int      `json:"minSalary,omitempty"`
	Industries []string `json:"industries,omitempty"`
}
