package catalog

import (
	"context"
	"testing"
)

func TestSeedOccupationsComplete(t *testing.T) {
	occupations := SeedOccupations()
	if len(occupations) != 25 {
		t.Fatalf("expected 25 seed occupations, got %d", len(occupations))
	}

	seen := make(map[string]bool, len(occupations))
	for _, o := range occupations {
		if o.OccupationCode == "" || o.OccupationTitle == "" {
			t.Fatalf("incomplete record: %+v", o)
		}
		if seen[o.OccupationCode] {
			t.Fatalf("duplicate occupation code %s", o.OccupationCode)
		}
		seen[o.OccupationCode] = true
		if len(o.RequiredSkills) == 0 {
			t.Fatalf("occupation %s has no required skills", o.OccupationCode)
		}
	}
}

func TestSeedCrosswalkReferencesSeedOccupations(t *testing.T) {
	codes := make(map[string]bool)
	for _, o := range SeedOccupations() {
		codes[o.OccupationCode] = true
	}

	for _, entry := range SeedCrosswalk() {
		if !codes[entry.CivilianOccupationCode] {
			t.Fatalf("crosswalk %s/%s references unknown occupation %s",
				entry.Branch, entry.MOSCode, entry.CivilianOccupationCode)
		}
		if entry.MatchStrength < 1 || entry.MatchStrength > 5 {
			t.Fatalf("crosswalk %s/%s has match strength %d outside 1..5",
				entry.Branch, entry.MOSCode, entry.MatchStrength)
		}
	}
}

func TestNewSeededMemoryRepo(t *testing.T) {
	repo := NewSeededMemoryRepo()

	records, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(records) != 25 {
		t.Fatalf("expected 25 occupations, got %d", len(records))
	}

	entries, err := repo.CrosswalkForMOS(context.Background(), "25B", "Army")
	if err != nil {
		t.Fatalf("CrosswalkForMOS: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 crosswalk entries for 25B, got %d", len(entries))
	}
	if entries[0].CivilianOccupationCode != "15-1232.00" {
		t.Fatalf("expected strongest 25B match to be 15-1232.00, got %s", entries[0].CivilianOccupationCode)
	}
}
