package catalog

// OccupationRecord is one civilian occupation from the O*NET-derived catalog.
// Records are loaded once at startup and never mutated by the matching engine.
type OccupationRecord struct {
	OccupationCode    string   `json:"occupationCode"`
	OccupationTitle   string   `json:"occupationTitle"`
	Description       string   `json:"description"`
	MedianWage        *int     `json:"medianWage"`
	JobOutlook        string   `json:"jobOutlook"`
	GrowthRate        *float64 `json:"growthRate"`
	Industry          string   `json:"industry"`
	EducationRequired string   `json:"educationRequired"`
	RequiredSkills    []string `json:"requiredSkills"`
}

// CrosswalkEntry maps a military occupation code to a civilian occupation.
type CrosswalkEntry struct {
	MOSCode                string `json:"mosCode"`
	Branch                 string `json:"branch"`
	MilitaryTitle          string `json:"militaryTitle"`
	CivilianOccupationCode string `json:"civilianOccupationCode"`
	MatchStrength          int    `json:"matchStrength"`
}
