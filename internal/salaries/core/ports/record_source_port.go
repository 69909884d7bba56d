package ports

import (
	"context"

	"salary-viz-service/internal/salaries/core/domain"
)

// RawRow is one untyped row keyed by column name.
type RawRow map[string]string

type RecordSourcePort interface {
	// Name identifies the source in logs and on the Dataset.
	Name() string
	ReadRows(ctx context.Context) ([]RawRow, error)
}

type BoundarySourcePort interface {
	LoadRegions(ctx context.Context) ([]domain.Region, error)
}

type RecordWriterPort interface {
	// InsertRecord:
	//   created = true,  err = nil  -> new row
	//   created = false, err = nil  -> duplicate dedupe key
	//   created = false, err != nil -> DB error
	InsertRecord(ctx context.Context, r domain.Record, dedupeKey string) (created bool, err error)
}
