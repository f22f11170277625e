package matching

import (
	"testing"

	"vetpath-backend/internal/catalog"
	"vetpath-backend/internal/skills"
)

func occ(code string, required ...string) catalog.OccupationRecord {
	return catalog.OccupationRecord{
		OccupationCode:  code,
		OccupationTitle: code,
		RequiredSkills:  required,
	}
}

func TestMatchScoresCoverageRatio(t *testing.T) {
	set := skills.SkillSet{TechnicalSkills: []string{"Logistics", "Equipment Maintenance"}}
	occupations := []catalog.OccupationRecord{
		occ("O1", "Logistics", "Equipment Maintenance", "Supply Chain Management"),
	}

	results := Match(set.CanonicalSet(), occupations)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].SkillMatchScore != 66.7 {
		t.Fatalf("expected score 66.7, got %v", results[0].SkillMatchScore)
	}
}

func TestMatchEmptyRequiredSkillsScoresZero(t *testing.T) {
	set := skills.SkillSet{TechnicalSkills: []string{"everything", "under", "the", "sun"}}
	results := Match(set.CanonicalSet(), []catalog.OccupationRecord{occ("O2")})
	if results[0].SkillMatchScore != 0 {
		t.Fatalf("expected 0 for empty required skills, got %v", results[0].SkillMatchScore)
	}
}

func TestMatchScoresStayInBounds(t *testing.T) {
	sets := []skills.SkillSet{
		{},
		{TechnicalSkills: []string{"a"}},
		{TechnicalSkills: []string{"a", "b", "c"}, SoftSkills: []string{"d"}},
	}
	occupations := []catalog.OccupationRecord{
		occ("O1", "a"),
		occ("O2", "a", "b", "c", "d"),
		occ("O3"),
	}

	for _, set := range sets {
		for _, r := range Match(set.CanonicalSet(), occupations) {
			if r.SkillMatchScore < 0 || r.SkillMatchScore > 100 {
				t.Fatalf("score out of bounds: %v for %s", r.SkillMatchScore, r.OccupationCode)
			}
		}
	}
}

func TestMatchMonotonicity(t *testing.T) {
	occupations := []catalog.OccupationRecord{occ("O1", "logistics", "scheduling", "budgeting")}

	base := Match(skills.Set([]string{"logistics"}), occupations)[0].SkillMatchScore
	more := Match(skills.Set([]string{"logistics", "scheduling"}), occupations)[0].SkillMatchScore
	if more < base {
		t.Fatalf("adding a required skill decreased score: %v -> %v", base, more)
	}

	less := Match(skills.Set([]string{}), occupations)[0].SkillMatchScore
	if less > base {
		t.Fatalf("removing a required skill increased score: %v -> %v", base, less)
	}
}

func TestMatchStableTiesKeepCatalogOrder(t *testing.T) {
	// Both occupations score 50; their catalog order must survive the sort.
	occupations := []catalog.OccupationRecord{
		occ("first", "a", "x"),
		occ("second", "a", "y"),
	}

	results := Match(skills.Set([]string{"a"}), occupations)
	if results[0].OccupationCode != "first" || results[1].OccupationCode != "second" {
		t.Fatalf("tie order not stable: %s then %s", results[0].OccupationCode, results[1].OccupationCode)
	}

	// Swap the catalog order and the output order follows.
	swapped := Match(skills.Set([]string{"a"}), []catalog.OccupationRecord{occupations[1], occupations[0]})
	if swapped[0].OccupationCode != "second" {
		t.Fatalf("tie order should follow catalog order, got %s first", swapped[0].OccupationCode)
	}
}

func TestMatchRanksDescending(t *testing.T) {
	occupations := []catalog.OccupationRecord{
		occ("low", "a", "b", "c", "d"),
		occ("high", "a"),
		occ("mid", "a", "b"),
	}

	results := Match(skills.Set([]string{"a", "b"}), occupations)
	for i := 1; i < len(results); i++ {
		if results[i].SkillMatchScore > results[i-1].SkillMatchScore {
			t.Fatalf("results not sorted descending at %d: %v", i, results)
		}
	}
	if results[0].OccupationCode != "high" {
		t.Fatalf("expected full match ranked first, got %s", results[0].OccupationCode)
	}
}

func TestMatchNormalizationInsensitive(t *testing.T) {
	occupations := []catalog.OccupationRecord{occ("O1", "team leadership")}

	variants := []string{"Team Leadership", "  team   LEADERSHIP  ", "team leadership"}
	for _, v := range variants {
		score := Match(skills.Set([]string{v}), occupations)[0].SkillMatchScore
		if score != 100 {
			t.Fatalf("variant %q scored %v, want 100", v, score)
		}
	}
}
