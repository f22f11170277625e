package gaps

import (
	"context"
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"vetpath-backend/internal/catalog"
	"vetpath-backend/internal/llm"
	"vetpath-backend/internal/shared/metrics"
	"vetpath-backend/internal/shared/telemetry"
	"vetpath-backend/internal/skills"
	"vetpath-backend/internal/training"
)

// Analyzer computes skill gap reports. The occupation record is supplied by
// the caller; looking it up (and 404-ing on a bad code) is the handler's job.
type Analyzer struct {
	Recommender *training.Recommender
	LLM         llm.Client
}

// NewAnalyzer constructs an Analyzer.
func NewAnalyzer(rec *training.Recommender, client llm.Client) *Analyzer {
	if client == nil {
		client = llm.PlaceholderClient{}
	}
	return &Analyzer{Recommender: rec, LLM: client}
}

// AnalyzeWithNarrative runs Analyze and then enriches the report with a
// best-effort LLM development plan. When the LLM is unavailable the numeric
// and structural parts still come back with empty narrative fields.
func (a *Analyzer) AnalyzeWithNarrative(ctx context.Context, have map[string]struct{}, occ catalog.OccupationRecord) (GapReport, error) {
	report, err := a.Analyze(ctx, have, occ)
	if err != nil {
		return GapReport{}, err
	}
	a.enrich(ctx, occ, &report)
	return report, nil
}

// Analyze computes the gap report for a canonical veteran skill set against
// one occupation. Gaps keep the catalog's required-skill order and casing.
func (a *Analyzer) Analyze(ctx context.Context, have map[string]struct{}, occ catalog.OccupationRecord) (GapReport, error) {
	report := GapReport{
		Gaps:            []string{},
		Recommendations: []training.Recommendation{},
		MatchPercentage: skills.CoverageScore(have, occ.RequiredSkills),
	}

	seen := make(map[string]struct{}, len(occ.RequiredSkills))
	for _, required := range occ.RequiredSkills {
		canonical := skills.Normalize(required)
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		if _, ok := have[canonical]; ok {
			continue
		}
		report.Gaps = append(report.Gaps, required)
	}

	for _, gap := range report.Gaps {
		rec, err := a.Recommender.ForSkill(ctx, gap)
		if err != nil {
			return GapReport{}, err
		}
		report.Recommendations = append(report.Recommendations, rec)
	}

	report.EstimatedTimeToReady = timeToReady(report.Recommendations, report.MatchPercentage)
	return report, nil
}

// ReadinessFor turns a gap report into the readiness assessment. The bonus
// rewards covering more than half of the required skills, capped at 10.
func ReadinessFor(report GapReport, occ catalog.OccupationRecord, have map[string]struct{}) Readiness {
	requiredSet := skills.Set(occ.RequiredSkills)
	matched := 0
	for s := range requiredSet {
		if _, ok := have[s]; ok {
			matched++
		}
	}

	bonus := 0.0
	if half := len(requiredSet) / 2; matched > half {
		bonus = float64((matched - half) * 2)
		if bonus > 10 {
			bonus = 10
		}
	}
	score := report.MatchPercentage + bonus
	if score > 100 {
		score = 100
	}

	level, message := readinessBand(score)
	return Readiness{
		ReadinessScore:  score,
		Level:           level,
		Message:         message,
		MatchPercentage: report.MatchPercentage,
		SkillsMatched:   matched,
		SkillsRequired:  len(requiredSet),
		GapsCount:       len(report.Gaps),
		EstimatedTime:   report.EstimatedTimeToReady,
		OccupationTitle: occ.OccupationTitle,
	}
}

// QuickWins returns the shortest-time recommendations from a report, at most
// max entries. The sort is stable, so equally quick items keep gap order.
func QuickWins(report GapReport, max int) []training.Recommendation {
	recs := make([]training.Recommendation, len(report.Recommendations))
	copy(recs, report.Recommendations)
	sort.SliceStable(recs, func(i, j int) bool {
		return timeSortKey(recs[i].EstimatedTime) < timeSortKey(recs[j].EstimatedTime)
	})
	if max > 0 && len(recs) > max {
		recs = recs[:max]
	}
	return recs
}

type planNarrative struct {
	Summary   string   `json:"summary"`
	Steps     []string `json:"steps"`
	Resources []string `json:"resources"`
}

func (a *Analyzer) enrich(ctx context.Context, occ catalog.OccupationRecord, report *GapReport) {
	if len(report.Gaps) == 0 {
		return
	}

	raw, err := a.LLM.SummarizeDevelopmentPlan(ctx, llm.PlanInput{
		OccupationTitle: occ.OccupationTitle,
		OccupationCode:  occ.OccupationCode,
		Gaps:            report.Gaps,
		MatchPercentage: report.MatchPercentage,
	})
	if err != nil {
		metrics.IncNarrativeFailed()
		telemetry.Warn("gaps.narrative_unavailable", map[string]any{
			"occupation_code": occ.OccupationCode,
			"err":             err.Error(),
		})
		return
	}

	var narrative planNarrative
	if err := json.Unmarshal(raw, &narrative); err != nil {
		metrics.IncNarrativeFailed()
		telemetry.Warn("gaps.narrative_bad_output", map[string]any{
			"occupation_code": occ.OccupationCode,
		})
		return
	}

	report.DevelopmentSummary = narrative.Summary
	report.DevelopmentSteps = narrative.Steps
	report.ResourceSuggestions = narrative.Resources
}

func readinessBand(score float64) (level, message string) {
	switch {
	case score >= 85:
		return "Highly Qualified", "You're well-prepared for this role. Consider applying now."
	case score >= 70:
		return "Qualified", "You meet most requirements. Minor upskilling would strengthen your application."
	case score >= 50:
		return "Partially Qualified", "You have a foundation to build on. Focus on key skill gaps."
	default:
		return "Development Needed", "This role requires significant skill development. Consider a stepping-stone position."
	}
}

var leadingNumberRe = regexp.MustCompile(`(\d+)`)

// timeToReady estimates the calendar time to close the top gaps. Multiple
// certifications can run in parallel, hence the 0.6 factor.
func timeToReady(recs []training.Recommendation, matchPct float64) string {
	if matchPct >= 90 {
		return "Job ready now"
	}
	if matchPct >= 75 {
		return "1-2 months with focused training"
	}
	if len(recs) == 0 {
		return "Unable to determine"
	}

	totalMonths := 0.0
	top := recs
	if len(top) > 3 {
		top = top[:3]
	}
	for _, rec := range top {
		timeStr := strings.ToLower(rec.EstimatedTime)
		num := 0
		if m := leadingNumberRe.FindString(timeStr); m != "" {
			num, _ = strconv.Atoi(m)
		}
		switch {
		case strings.Contains(timeStr, "week"):
			totalMonths += float64(num) / 4
		case strings.Contains(timeStr, "month"):
			totalMonths += float64(num)
		case strings.Contains(timeStr, "year"):
			totalMonths += float64(num) * 12
		default:
			totalMonths += 3
		}
	}

	adjusted := totalMonths * 0.6
	switch {
	case adjusted <= 2:
		return "1-2 months"
	case adjusted <= 4:
		return "2-4 months"
	case adjusted <= 6:
		return "4-6 months"
	case adjusted <= 12:
		return "6-12 months"
	default:
		return "12+ months"
	}
}

func timeSortKey(estimated string) int {
	timeStr := strings.ToLower(estimated)
	switch {
	case strings.Contains(timeStr, "week") || strings.Contains(timeStr, "day"):
		return 1
	case strings.Contains(timeStr, "1-2 month") || strings.Contains(timeStr, "1 month"):
		return 2
	case strings.Contains(timeStr, "2-3 month"):
		return 3
	case strings.Contains(timeStr, "3-4 month") || strings.Contains(timeStr, "3-6 month"):
		return 4
	case strings.Contains(timeStr, "6 month"):
		return 5
	default:
		return 10
	}
}
