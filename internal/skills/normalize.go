// Package skills defines the canonical skill form shared by career matching
// and gap analysis. Two skill strings name the same skill iff their canonical
// forms are equal.
package skills

import (
	"math"
	"strings"
)

// Normalize folds a skill string to its canonical comparison form: trimmed,
// lower-cased, with internal whitespace runs collapsed to a single space.
// It is pure and total; the empty string is a valid canonical form.
func Normalize(skill string) string {
	return strings.Join(strings.Fields(strings.ToLower(skill)), " ")
}

// Dedupe returns the input skills with case-insensitive duplicates dropped,
// preserving first-seen order and original spelling.
func Dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, skill := range in {
		key := Normalize(skill)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, skill)
	}
	return out
}

// Set builds the canonical-form membership set for the given skills.
func Set(in []string) map[string]struct{} {
	set := make(map[string]struct{}, len(in))
	for _, skill := range in {
		set[Normalize(skill)] = struct{}{}
	}
	return set
}

// CoverageScore computes the requirement-coverage score used by both the
// matcher and the gap analyzer: 100 * |have ∩ required| / |required|, with
// canonical-form intersection, rounded to one decimal. An occupation with no
// required skills scores 0 for any skill set.
func CoverageScore(have map[string]struct{}, required []string) float64 {
	requiredSet := Set(required)
	if len(requiredSet) == 0 {
		return 0
	}
	matched := 0
	for skill := range requiredSet {
		if _, ok := have[skill]; ok {
			matched++
		}
	}
	return round1(100 * float64(matched) / float64(len(requiredSet)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
