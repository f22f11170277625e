package matching

import (
	"context"
	"errors"
	"strings"

	"vetpath-backend/internal/catalog"
	"vetpath-backend/internal/parser"
	"vetpath-backend/internal/profile"
	"vetpath-backend/internal/skills"
)

const defaultLimit = 10

// crosswalk match strengths run 1..5; scores scale into the 20..100 range.
const crosswalkScoreFactor = 20

// Service ranks careers for a veteran. The core scoring stays in Match;
// the service layers preference filtering, result limits, profile parsing,
// and crosswalk lookups on top of it.
type Service struct {
	Catalog catalog.Repo
	Parser  *parser.Service
}

// NewService constructs a Service.
func NewService(cat catalog.Repo, parserSvc *parser.Service) *Service {
	return &Service{Catalog: cat, Parser: parserSvc}
}

// Match ranks all catalog occupations against the given skill set, then
// applies preferences and the result limit.
func (s *Service) Match(ctx context.Context, set skills.SkillSet, prefs *Preferences, limit int) ([]MatchResult, error) {
	return s.matchCanonical(ctx, set.CanonicalSet(), prefs, limit)
}

// MatchFromProfile parses the profile's experience description and matches
// the resulting skill set, expanded with profile-implied skills (leadership,
// clearance). Returns the parsed skills alongside the matches.
func (s *Service) MatchFromProfile(ctx context.Context, p profile.MilitaryProfile, limit int) (skills.SkillSet, []MatchResult, error) {
	set, err := s.Parser.Parse(ctx, p.ExperienceDescription)
	if err != nil {
		return skills.SkillSet{}, nil, err
	}

	matches, err := s.matchCanonical(ctx, skills.Set(set.Expanded()), nil, limit)
	if err != nil {
		return skills.SkillSet{}, nil, err
	}
	return set, matches, nil
}

// MatchFromMOS ranks careers for a military occupation code using the
// crosswalk. Scores derive from crosswalk match strength rather than skill
// coverage. An empty result is not an error; the handler shapes the message.
func (s *Service) MatchFromMOS(ctx context.Context, mosCode, branch string, limit int) ([]MatchResult, error) {
	entries, err := s.Catalog.CrosswalkForMOS(ctx, mosCode, branch)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	seen := make(map[string]bool, len(entries))
	results := make([]MatchResult, 0, len(entries))
	for _, entry := range entries {
		if seen[entry.CivilianOccupationCode] {
			continue
		}
		seen[entry.CivilianOccupationCode] = true

		occ, err := s.Catalog.GetByCode(ctx, entry.CivilianOccupationCode)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				continue
			}
			return nil, err
		}

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
			SkillMatchScore:   float64(entry.MatchStrength * crosswalkScoreFactor),
		})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

func (s *Service) matchCanonical(ctx context.Context, have map[string]struct{}, prefs *Preferences, limit int) ([]MatchResult, error) {
	occupations, err := s.Catalog.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	results := Match(have, occupations)
	results = applyPreferences(results, prefs)

	if limit <= 0 {
		limit = defaultLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func applyPreferences(results []MatchResult, prefs *Preferences) []MatchResult {
	if prefs == nil {
		return results
	}

	filtered := results[:0:0]
	for _, r := range results {
		if prefs.MinSalary > 0 && (r.MedianWage == nil || *r.MedianWage < prefs.MinSalary) {
			continue
		}
		if len(prefs.Industries) > 0 && !industryAllowed(r.Industry, prefs.Industries) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func industryAllowed(industry string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(industry, a) {
			return true
		}
	}
	return false
}
