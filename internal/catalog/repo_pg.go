package catalog

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const occupationColumns = `
SELECT occupation_code, occupation_title, description, median_wage, job_outlook, growth_rate, industry, education_required
FROM occupations`

// GetAll returns every occupation record in catalog order with its skills.
func (r *PGRepo) GetAll(ctx context.Context) ([]OccupationRecord, error) {
	rows, err := r.DB.QueryContext(ctx, occupationColumns+`
ORDER BY created_at, occupation_code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := scanOccupations(rows)
	if err != nil {
		return nil, err
	}
	for i := range records {
		skills, err := r.skillsForCode(ctx, records[i].OccupationCode)
		if err != nil {
			return nil, err
		}
		records[i].RequiredSkills = skills
	}
	return records, nil
}

// GetByCode returns the occupation with the given code.
func (r *PGRepo) GetByCode(ctx context.Context, code string) (OccupationRecord, error) {
	row := r.DB.QueryRowContext(ctx, occupationColumns+`
WHERE occupation_code = $1`, code)

	record, err := scanOccupation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OccupationRecord{}, ErrNotFound
		}
		return OccupationRecord{}, err
	}
	skills, err := r.skillsForCode(ctx, record.OccupationCode)
	if err != nil {
		return OccupationRecord{}, err
	}
	record.RequiredSkills = skills
	return record, nil
}

// List returns occupations, optionally filtered by industry, up to limit.
func (r *PGRepo) List(ctx context.Context, industry string, limit int) ([]OccupationRecord, error) {
	query := occupationColumns
	args := []any{}
	if industry != "" {
		query += `
WHERE LOWER(industry) = LOWER($1)`
		args = append(args, industry)
	}
	query += `
ORDER BY created_at, occupation_code`
	if limit > 0 {
		args = append(args, limit)
		if industry != "" {
			query += `
LIMIT $2`
		} else {
			query += `
LIMIT $1`
		}
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := scanOccupations(rows)
	if err != nil {
		return nil, err
	}
	for i := range records {
		skills, err := r.skillsForCode(ctx, records[i].OccupationCode)
		if err != nil {
			return nil, err
		}
		records[i].RequiredSkills = skills
	}
	return records, nil
}

// ListIndustries returns the distinct industries in the catalog, sorted.
func (r *PGRepo) ListIndustries(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT DISTINCT industry FROM occupations WHERE industry <> '' ORDER BY industry`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var industry string
		if err := rows.Scan(&industry); err != nil {
			return nil, err
		}
		out = append(out, industry)
	}
	return out, rows.Err()
}

// CrosswalkForMOS returns crosswalk entries for a military occupation code,
// strongest matches first.
func (r *PGRepo) CrosswalkForMOS(ctx context.Context, mosCode, branch string) ([]CrosswalkEntry, error) {
	query := `
SELECT mos_code, branch, military_title, civilian_occupation_code, match_strength
FROM military_crosswalk
WHERE LOWER(mos_code) = LOWER($1)`
	args := []any{mosCode}
	if branch != "" {
		query += ` AND LOWER(branch) = LOWER($2)`
		args = append(args, branch)
	}
	query += `
ORDER BY match_strength DESC, id`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCrosswalk(rows)
}

// ListCrosswalk returns crosswalk entries, optionally filtered by branch.
func (r *PGRepo) ListCrosswalk(ctx context.Context, branch string) ([]CrosswalkEntry, error) {
	query := `
SELECT mos_code, branch, military_title, civilian_occupation_code, match_strength
FROM military_crosswalk`
	args := []any{}
	if branch != "" {
		query += `
WHERE LOWER(branch) = LOWER($1)`
		args = append(args, branch)
	}
	query += `
ORDER BY branch, mos_code`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCrosswalk(rows)
}

// InsertOccupation inserts an occupation and its required skills. Used by the
// seeding CLI; the serving path never writes.
func (r *PGRepo) InsertOccupation(ctx context.Context, record OccupationRecord) error {
	const query = `
INSERT INTO occupations (occupation_code, occupation_title, description, median_wage, job_outlook, growth_rate, industry, education_required)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (occupation_code) DO NOTHING`

	var wage sql.NullInt64
	if record.MedianWage != nil {
		wage = sql.NullInt64{Int64: int64(*record.MedianWage), Valid: true}
	}
	var growth sql.NullFloat64
	if record.GrowthRate != nil {
		growth = sql.NullFloat64{Float64: *record.GrowthRate, Valid: true}
	}

	if _, err := r.DB.ExecContext(ctx, query,
		record.OccupationCode,
		record.OccupationTitle,
		record.Description,
		wage,
		record.JobOutlook,
		growth,
		record.Industry,
		record.EducationRequired,
	); err != nil {
		return err
	}

	for i, skill := range record.RequiredSkills {
		// Skills listed first carry higher importance.
		importance := 5 - i
		if importance < 1 {
			importance = 1
		}
		if _, err := r.DB.ExecContext(ctx, `
INSERT INTO occupation_skills (occupation_code, skill_name, importance_level)
VALUES ($1, $2, $3)`, record.OccupationCode, skill, importance); err != nil {
			return err
		}
	}
	return nil
}

// InsertCrosswalk inserts a military crosswalk entry.
func (r *PGRepo) InsertCrosswalk(ctx context.Context, entry CrosswalkEntry) error {
	_, err := r.DB.ExecContext(ctx, `
INSERT INTO military_crosswalk (mos_code, branch, military_title, civilian_occupation_code, match_strength)
VALUES ($1, $2, $3, $4, $5)`,
		entry.MOSCode,
		entry.Branch,
		entry.MilitaryTitle,
		entry.CivilianOccupationCode,
		entry.MatchStrength,
	)
	return err
}

func (r *PGRepo) skillsForCode(ctx context.Context, code string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT skill_name FROM occupation_skills
WHERE occupation_code = $1
ORDER BY importance_level DESC, id`, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var skill string
		if err := rows.Scan(&skill); err != nil {
			return nil, err
		}
		out = append(out, skill)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOccupation(row rowScanner) (OccupationRecord, error) {
	var record OccupationRecord
	var wage sql.NullInt64
	var growth sql.NullFloat64
	if err := row.Scan(
		&record.OccupationCode,
		&record.OccupationTitle,
		&record.Description,
		&wage,
		&record.JobOutlook,
		&growth,
		&record.Industry,
		&record.EducationRequired,
	); err != nil {
		return OccupationRecord{}, err
	}
	if wage.Valid {
		v := int(wage.Int64)
		record.MedianWage = &v
	}
	if growth.Valid {
		v := growth.Float64
		record.GrowthRate = &v
	}
	return record, nil
}

func scanOccupations(rows *sql.Rows) ([]OccupationRecord, error) {
	out := make([]OccupationRecord, 0)
	for rows.Next() {
		record, err := scanOccupation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func scanCrosswalk(rows *sql.Rows) ([]CrosswalkEntry, error) {
	out := make([]CrosswalkEntry, 0)
	for rows.Next() {
		var entry CrosswalkEntry
		if err := rows.Scan(
			&entry.MOSCode,
			&entry.Branch,
			&entry.MilitaryTitle,
			&entry.CivilianOccupationCode,
			&entry.MatchStrength,
		); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}
