package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"vetpath-backend/internal/profile"
	"vetpath-backend/internal/skills"
)

// MemoryRepo stores sessions in memory. Sessions are per-visit wizard state
// with no persistence requirement, so memory is the only implementation.
type MemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Create starts a new session at the profile stage.
func (r *MemoryRepo) Create(ctx context.Context, p profile.MilitaryProfile) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	now := r.now().UTC()
	session := Session{
		ID:        uuid.NewString(),
		Stage:     StageProfile,
		Profile:   p,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return session, nil
}

// Get returns the session with the given ID.
func (r *MemoryRepo) Get(ctx context.Context, id string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return session, nil
}

// UpdateSkills replaces the session's skill set. Fails once the session has
// advanced past the skills stage.
func (r *MemoryRepo) UpdateSkills(ctx context.Context, id string, set skills.SkillSet) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	if session.SkillsFrozen() {
		return Session{}, ErrSkillsFrozen
	}
	session.Skills = set
	session.UpdatedAt = r.now().UTC()
	r.sessions[id] = session
	return session, nil
}

// Advance moves the session forward one stage.
func (r *MemoryRepo) Advance(ctx context.Context, id string) (Session, error) {
	return r.transition(ctx, id, NextStage)
}

// Back moves the session backward one stage. Returning to the skills stage
// unfreezes the skill set for further edits.
func (r *MemoryRepo) Back(ctx context.Context, id string) (Session, error) {
	return r.transition(ctx, id, PrevStage)
}

func (r *MemoryRepo) transition(ctx context.Context, id string, step func(Stage) (Stage, error)) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	next, err := step(session.Stage)
	if err != nil {
		return Session{}, err
	}
	session.Stage = next
	session.UpdatedAt = r.now().UTC()
	r.sessions[id] = session
	return session, nil
}
