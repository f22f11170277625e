package training

import (
	"context"
	"database/sql"
	"errors"

	"vetpath-backend/internal/skills"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// FindForSkill returns the training resource covering the given skill.
func (r *PGRepo) FindForSkill(ctx context.Context, skill string) (Resource, error) {
	row := r.DB.QueryRowContext(ctx, `
SELECT skill_name, certification_name, provider, estimated_time, cost, va_eligible
FROM training_resources
WHERE skill_name = $1
LIMIT 1`, skills.Normalize(skill))

	var res Resource
	if err := row.Scan(
		&res.SkillName,
		&res.CertificationName,
		&res.Provider,
		&res.EstimatedTime,
		&res.Cost,
		&res.VAEligible,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resource{}, ErrNoResource
		}
		return Resource{}, err
	}
	return res, nil
}

// Insert adds a training resource. Used by the seeding CLI.
func (r *PGRepo) Insert(ctx context.Context, res Resource) error {
	_, err := r.DB.ExecContext(ctx, `
INSERT INTO training_resources (skill_name, certification_name, provider, estimated_time, cost, va_eligible)
VALUES ($1, $2, $3, $4, $5, $6)`,
		skills.Normalize(res.SkillName),
		res.CertificationName,
		res.Provider,
		res.EstimatedTime,
		res.Cost,
		res.VAEligible,
	)
	return err
}
