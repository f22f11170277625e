package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo. Records keep their
// insertion order, which defines the catalog order used for ranking ties.
type MemoryRepo struct {
	mu        sync.RWMutex
	records   []OccupationRecord
	byCode    map[string]int
	crosswalk []CrosswalkEntry
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byCode: make(map[string]int)}
}

// Put inserts or replaces an occupation record. The occupation code is the
// unique key; replacing keeps the original catalog position.
func (r *MemoryRepo) Put(record OccupationRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx, ok := r.byCode[record.OccupationCode]; ok {
		r.records[idx] = record
		return
	}
	r.byCode[record.OccupationCode] = len(r.records)
	r.records = append(r.records, record)
}

// PutCrosswalk appends a military crosswalk entry.
func (r *MemoryRepo) PutCrosswalk(entry CrosswalkEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.crosswalk = append(r.crosswalk, entry)
}

// GetAll returns every occupation record in catalog order.
func (r *MemoryRepo) GetAll(ctx context.Context) ([]OccupationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]OccupationRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

// GetByCode returns the occupation with the given code.
func (r *MemoryRepo) GetByCode(ctx context.Context, code string) (OccupationRecord, error) {
	if err := ctx.Err(); err != nil {
		return OccupationRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byCode[code]
	if !ok {
		return OccupationRecord{}, ErrNotFound
	}
	return r.records[idx], nil
}

// List returns occupations, optionally filtered by industry, up to limit.
func (r *MemoryRepo) List(ctx context.Context, industry string, limit int) ([]OccupationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]OccupationRecord, 0, len(r.records))
	for _, record := range r.records {
		if industry != "" && !strings.EqualFold(record.Industry, industry) {
			continue
		}
		out = append(out, record)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// ListIndustries returns the distinct industries in the catalog, sorted.
func (r *MemoryRepo) ListIndustries(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, record := range r.records {
		if record.Industry == "" {
			continue
		}
		if _, ok := seen[record.Industry]; ok {
			continue
		}
		seen[record.Industry] = struct{}{}
		out = append(out, record.Industry)
	}
	sort.Strings(out)
	return out, nil
}

// CrosswalkForMOS returns crosswalk entries for a military occupation code,
// strongest matches first.
func (r *MemoryRepo) CrosswalkForMOS(ctx context.Context, mosCode, branch string) ([]CrosswalkEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]CrosswalkEntry, 0)
	for _, entry := range r.crosswalk {
		if !strings.EqualFold(entry.MOSCode, mosCode) {
			continue
		}
		if branch != "" && !strings.EqualFold(entry.Branch, branch) {
			continue
		}
		out = append(out, entry)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchStrength > out[j].MatchStrength
	})
	return out, nil
}

// ListCrosswalk returns crosswalk entries, optionally filtered by branch,
// ordered by branch then MOS code.
func (r *MemoryRepo) ListCrosswalk(ctx context.Context, branch string) ([]CrosswalkEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]CrosswalkEntry, 0)
	for _, entry := range r.crosswalk {
		if branch != "" && !strings.EqualFold(entry.Branch, branch) {
			continue
		}
		out = append(out, entry)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Branch != out[j].Branch {
			return out[i].Branch < out[j].Branch
		}
		return out[i].MOSCode < out[j].MOSCode
	})
	return out, nil
}
