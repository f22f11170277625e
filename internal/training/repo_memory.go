package training

import (
	"context"
	"sync"

	"vetpath-backend/internal/skills"
)

// MemoryRepo is an in-memory implementation of Repo keyed by canonical skill.
type MemoryRepo struct {
	mu        sync.RWMutex
	resources map[string]Resource
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{resources: make(map[string]Resource)}
}

// NewSeededMemoryRepo builds a MemoryRepo pre-populated with the built-in
// training resource catalog.
func NewSeededMemoryRepo() *MemoryRepo {
	repo := NewMemoryRepo()
	for _, res := range SeedResources() {
		repo.Put(res)
	}
	return repo
}

// Put inserts or replaces a resource under its canonical skill name.
func (r *MemoryRepo) Put(res Resource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resources[skills.Normalize(res.SkillName)] = res
}

// FindForSkill returns the resource covering the given skill.
func (r *MemoryRepo) FindForSkill(ctx context.Context, skill string) (Resource, error) {
	if err := ctx.Err(); err != nil {
		return Resource{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.resources[skills.Normalize(skill)]
	if !ok {
		return Resource{}, ErrNoResource
	}
	return res, nil
}
