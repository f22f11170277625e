package sessions

import (
	"errors"
	"time"

	"vetpath-backend/internal/profile"
	"vetpath-backend/internal/skills"
)

// Stage is one step of the transition wizard.
type Stage string

// Wizard stages, in order.
const (
	StageProfile Stage = "profile"
	StageSkills  Stage = "skills"
	StageMatches Stage = "matches"
	StageGaps    Stage = "gaps"
	StageResume  Stage = "resume"
)

var stageOrder = []Stage{StageProfile, StageSkills, StageMatches, StageGaps, StageResume}

var (
	ErrNotFound     = errors.New("session not found")
	ErrAtFirstStage = errors.New("already at the first stage")
	ErrAtLastStage  = errors.New("already at the last stage")
	ErrSkillsFrozen = errors.New("skills are frozen once matching has started")
)

// Session tracks one veteran's progress through the wizard. The skill set is
// editable until the session advances past the skills stage; from then on it
// is frozen so match and gap results stay consistent within the session.
type Session struct {
	ID        string                  `json:"id"`
	Stage     Stage                   `json:"stage"`
	Profile   profile.MilitaryProfile `json:"profile"`
	Skills    skills.SkillSet         `json:"skills"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

// SkillsFrozen reports whether the skill set can no longer be edited.
func (s Session) SkillsFrozen() bool {
	return stageIndex(s.Stage) > stageIndex(StageSkills)
}

func stageIndex(stage Stage) int {
	for i, s := range stageOrder {
		if s == stage {
			return i
		}
	}
	return -1
}

// NextStage returns the stage after the given one.
func NextStage(stage Stage) (Stage, error) {
	idx := stageIndex(stage)
	if idx < 0 || idx == len(stageOrder)-1 {
		return stage, ErrAtLastStage
	}
	return stageOrder[idx+1], nil
}

// PrevStage returns the stage before the given one.
func PrevStage(stage Stage) (Stage, error) {
	idx := stageIndex(stage)
	if idx <= 0 {
		return stage, ErrAtFirstStage
	}
	return stageOrder[idx-1], nil
}
