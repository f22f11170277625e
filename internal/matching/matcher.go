package matching

import (
	"sort"

	"vetpath-backend/internal/catalog"
	"vetpath-backend/internal/skills"
)

// Match scores every occupation in the catalog against the veteran's
// canonical skill set and returns all of them ranked descending by score.
// The sort is stable, so equal scores keep catalog order and results are
// deterministic. Filtering and truncation belong to the caller.
func Match(have map[string]struct{}, occupations []catalog.OccupationRecord) []MatchResult {
	results := make([]MatchResult, 0, len(occupations))
	for _, occ := range occupations {
		results = append(results, MatchResult{
			OccupationCode:    occ.OccupationCode,
			OccupationTitle:   occ.OccupationTitle,
			Description:       occ.Description,
			Industry:          occ.Industry,
			MedianWage:        occ.MedianWage,
			JobOutlook:        occ.JobOutlook,
			GrowthRate:        occ.GrowthRate,
			EducationRequired: occ.EducationRequired,
			RequiredSkills:    occ.RequiredSkills,
			SkillMatchScore:   skills.CoverageScore(have, occ.RequiredSkills),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SkillMatchScore > results[j].SkillMatchScore
	})
	return results
}
