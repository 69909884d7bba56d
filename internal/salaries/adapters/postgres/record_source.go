package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"salary-viz-service/internal/salaries/core/ports"
)

// RecordSource reads the salaries table. Columns come back under the same header names the
// CSV export uses, so the loader's default column mapping applies unchanged.
type RecordSource struct {
	db        DB
	workYears []int64
}

var _ ports.RecordSourcePort = (*RecordSource)(nil)

// NewRecordSource restricts the rows to workYears when non-empty.
func NewRecordSource(db DB, workYears ...int64) *RecordSource {
	return &RecordSource{db: db, workYears: workYears}
}

func (s *RecordSource) Name() string {
	return "postgres:salaries"
}

// numeric columns are cast to text; coercion happens in the loader
const selectSalariesSQL = `
SELECT
    work_year::text        AS "work_year",
    experience_level       AS "experience_level",
    employment_type        AS "employment_type",
    job_title              AS "job_title",
    salary_in_usd::text    AS "salary_in_usd",
    company_location       AS "company_location",
    alpha3                 AS "alpha-3",
    cost_of_living::text   AS "NumbeoCoL2023",
    company_size           AS "company_size",
    remote_ratio::text     AS "remote_ratio"
FROM salaries`

var selectColumns = []string{
	"work_year",
	"experience_level",
	"employment_type",
	"job_title",
	"salary_in_usd",
	"company_location",
	"alpha-3",
	"NumbeoCoL2023",
	"company_size",
	"remote_ratio",
}

func (s *RecordSource) ReadRows(ctx context.Context) ([]ports.RawRow, error) {
	query := selectSalariesSQL
	var args []any
	if len(s.workYears) > 0 {
		query += "\nWHERE work_year = ANY($1)"
		args = append(args, pq.Array(s.workYears))
	}
	query += "\nORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query salaries")
	}
	defer rows.Close()

	var out []ports.RawRow
	for rows.Next() {
		vals := make([]sql.NullString, len(selectColumns))
		dest := make([]any, len(vals))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Wrap(err, "failed to scan salary row")
		}

		row := make(ports.RawRow, len(selectColumns))
		for i, col := range selectColumns {
			// NULL reads as absent, same as an empty CSV cell
			row[col] = vals[i].String
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
