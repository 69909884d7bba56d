package usecase

import (
	"context"
	"fmt"

	"salary-viz-service/internal/salaries/core/domain"
	"salary-viz-service/internal/salaries/core/ports"
)

type ImportInput struct {
	// Start, if set, is called once with the number of records about to be written.
	Start func(total int)
	// Progress, if set, is called once per record written.
	Progress func()
}

type ImportResult struct {
	Created    int
	Duplicates int
	Excluded   int
}

// ImportRecordsUseCase copies the valid records of a source into a RecordWriterPort.
// Re-running an import is idempotent: every record carries a dedupe key of source and position.
type ImportRecordsUseCase struct {
	loader DatasetLoader
	writer ports.RecordWriterPort
}

func NewImportRecordsUseCase(loader DatasetLoader, writer ports.RecordWriterPort) *ImportRecordsUseCase {
	return &ImportRecordsUseCase{loader: loader, writer: writer}
}

func (uc *ImportRecordsUseCase) Execute(ctx context.Context, in ImportInput) (ImportResult, error) {
	var res ImportResult

	ds, err := uc.loader.Execute(ctx)
	if err != nil {
		return res, err
	}
	res.Excluded = ds.Excluded
	if in.Start != nil {
		in.Start(ds.Len())
	}

	for i, r := range ds.Records() {
		created, err := uc.writer.InsertRecord(ctx, r, buildDedupeKey(ds.Source, i, r))
		if err != nil {
			return res, err
		}
		if created {
			res.Created++
		} else {
			res.Duplicates++
		}
		if in.Progress != nil {
			in.Progress()
		}
	}

	return res, nil
}

func buildDedupeKey(source string, i int, r domain.Record) string {
	// source + position + the fields that identify the row
	return fmt.Sprintf("%s|%d|%s|%s|%.2f",
		source,
		i,
		r.ExperienceLevel,
		r.Country,
		r.Salary,
	)
}
