package catalog

import "context"

// Repo defines read access to the occupation catalog. The catalog is
// read-only after seeding, so implementations need no write coordination.
type Repo interface {
	GetAll(ctx context.Context) ([]OccupationRecord, error)
	GetByCode(ctx context.Context, code string) (OccupationRecord, error)
	List(ctx context.Context, industry string, limit int) ([]OccupationRecord, error)
	ListIndustries(ctx context.Context) ([]string, error)
	CrosswalkForMOS(ctx context.Context, mosCode, branch string) ([]CrosswalkEntry, error)
	ListCrosswalk(ctx context.Context, branch string) ([]CrosswalkEntry, error)
}
