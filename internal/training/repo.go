package training

import (
	"context"
	"errors"
)

// ErrNoResource is returned when no training resource covers a skill.
var ErrNoResource = errors.New("no training resource for skill")

// Repo looks up training resources by the skill they teach.
type Repo interface {
	FindForSkill(ctx context.Context, skill string) (Resource, error)
}
