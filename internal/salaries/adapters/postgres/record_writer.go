package postgres

import (
	"context"

	"salary-viz-service/internal/salaries/core/domain"
	"salary-viz-service/internal/salaries/core/ports"
)

type RecordWriter struct {
	db DB
}

func NewRecordWriter(db DB) *RecordWriter {
	return &RecordWriter{db: db}
}

var _ ports.RecordWriterPort = (*RecordWriter)(nil)

const createSalariesSQL = `
CREATE TABLE IF NOT EXISTS salaries (
    id               BIGSERIAL PRIMARY KEY,
    work_year        INTEGER,
    experience_level TEXT NOT NULL,
    employment_type  TEXT,
    job_title        TEXT,
    salary_in_usd    DOUBLE PRECISION NOT NULL,
    company_location TEXT NOT NULL,
    alpha3           TEXT,
    cost_of_living   DOUBLE PRECISION,
    company_size     TEXT,
    remote_ratio     DOUBLE PRECISION,
    dedupe_key       TEXT NOT NULL UNIQUE
);
`

const insertSalarySQL = `
INSERT INTO salaries (
    work_year,
    experience_level,
    employment_type,
    job_title,
    salary_in_usd,
    company_location,
    alpha3,
    cost_of_living,
    company_size,
    remote_ratio,
    dedupe_key
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7, $8, $9, $10, $11
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

// EnsureSchema creates the salaries table if it does not exist.
func (w *RecordWriter) EnsureSchema(ctx context.Context) error {
	_, err := w.db.ExecContext(ctx, createSalariesSQL)
	return err
}

func (w *RecordWriter) InsertRecord(ctx context.Context, r domain.Record, dedupeKey string) (bool, error) {
	res, err := w.db.ExecContext(ctx, insertSalarySQL,
		nullable(r.WorkYear),
		r.ExperienceLevel,
		nullString(r.EmploymentType),
		nullString(r.JobTitle),
		r.Salary,
		r.Country,
		nullString(r.CountryCode),
		nullable(r.CostOfLiving),
		nullString(r.CompanySize),
		nullable(r.RemoteRatio),
		dedupeKey,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 0 -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func nullable(o domain.Optional) any {
	if !o.Valid {
		return nil
	}
	return o.Value
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
