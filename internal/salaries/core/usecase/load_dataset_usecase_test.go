package usecase_test

import (
	"context"
	"errors"
	"testing"

	"salary-viz-service/internal/salaries/core/domain"
	"salary-viz-service/internal/salaries/core/ports"
	"salary-viz-service/internal/salaries/core/usecase"
)

// fakeSource, RecordSourcePort'u test için fake'ler.
type fakeSource struct {
	ReadFn func(ctx context.Context) ([]ports.RawRow, error)
	called bool
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) ReadRows(ctx context.Context) ([]ports.RawRow, error) {
	f.called = true
	if f.ReadFn != nil {
		return f.ReadFn(ctx)
	}
	return nil, nil
}

func row(level, salary, country string, extra ...string) ports.RawRow {
	r := ports.RawRow{
		"experience_level": level,
		"salary_in_usd":    salary,
		"company_location": country,
	}
	for i := 0; i+1 < len(extra); i += 2 {
		r[extra[i]] = extra[i+1]
	}
	return r
}

func newLoader(t *testing.T, src ports.RecordSourcePort, opts usecase.LoaderOptions) *usecase.LoadDatasetUseCase {
	t.Helper()
	uc, err := usecase.NewLoadDatasetUseCase(src, opts, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return uc
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestLoadDataset_Success(t *testing.T) {
	src := &fakeSource{
		ReadFn: func(ctx context.Context) ([]ports.RawRow, error) {
			return []ports.RawRow{
				row("EN", "50000", "US", "NumbeoCoL2023", "70.5", "alpha-3", "USA", "work_year", "2023"),
				row(" en ", "70000", "de"),
				row("SE", "120000", "US", "remote_ratio", "100"),
			}, nil
		},
	}

	ds, err := newLoader(t, src, usecase.LoaderOptions{}).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !src.called {
		t.Fatalf("expected source to be read")
	}
	if ds.Len() != 3 || ds.Excluded != 0 {
		t.Fatalf("expected 3 records, 0 excluded, got %d/%d", ds.Len(), ds.Excluded)
	}

	recs := ds.Records()
	if r := recs[0]; r.CountryCode != "USA" || !r.CostOfLiving.Valid || r.CostOfLiving.Value != 70.5 || r.WorkYear.Value != 2023 {
		t.Fatalf("unexpected first record: %+v", r)
	}
	if r := recs[1]; r.ExperienceLevel != "EN" || r.Country != "DE" || r.CountryCode != "DE" {
		t.Fatalf("expected normalized categories and code fallback, got %+v", r)
	}
	if r := recs[1]; r.CostOfLiving.Valid || r.RemoteRatio.Valid {
		t.Fatalf("missing optional numerics must stay invalid, got %+v", r)
	}
	if r := recs[2]; !r.RemoteRatio.Valid || r.RemoteRatio.Value != 100 {
		t.Fatalf("unexpected remote ratio: %+v", r.RemoteRatio)
	}
}

// ------------------------------------------------------------
// ROW EXCLUSION
// ------------------------------------------------------------

func TestLoadDataset_ExcludesInvalidRows(t *testing.T) {
	src := &fakeSource{
		ReadFn: func(ctx context.Context) ([]ports.RawRow, error) {
			return []ports.RawRow{
				row("EN", "50000", "US"),
				row("EN", "", "US"),
				row("EN", "abc", "US"),
				row("EN", "NaN", "US"),
				row("EN", "Inf", "US"),
				row("", "1000", "US"),
				row("SE", "1000", ""),
				row("MI", "1000", "FR", "NumbeoCoL2023", "n/a"),
			}, nil
		},
	}

	ds, err := newLoader(t, src, usecase.LoaderOptions{}).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", ds.Len())
	}
	if ds.Excluded != 6 {
		t.Fatalf("expected 6 excluded, got %d", ds.Excluded)
	}
	if r := ds.Records()[1]; r.CostOfLiving.Valid {
		t.Fatalf("non-numeric optional must be absent, not zero: %+v", r.CostOfLiving)
	}
}

func TestLoadDataset_RequiredOptionalColumn(t *testing.T) {
	src := &fakeSource{
		ReadFn: func(ctx context.Context) ([]ports.RawRow, error) {
			return []ports.RawRow{
				row("EN", "1", "US", "NumbeoCoL2023", "60"),
				row("EN", "1", "US"),
			}, nil
		},
	}

	opts := usecase.LoaderOptions{
		Required: []usecase.Column{usecase.ColumnCostOfLiving},
	}
	ds, err := newLoader(t, src, opts).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 1 || ds.Excluded != 1 {
		t.Fatalf("expected 1 record 1 excluded, got %d/%d", ds.Len(), ds.Excluded)
	}
}

func TestLoadDataset_CustomColumns(t *testing.T) {
	src := &fakeSource{
		ReadFn: func(ctx context.Context) ([]ports.RawRow, error) {
			return []ports.RawRow{{"experience_level": "EN", "salary": "10", "company_location": "US"}}, nil
		},
	}

	opts := usecase.LoaderOptions{Columns: usecase.Columns{usecase.ColumnSalary: "salary"}}
	ds, err := newLoader(t, src, opts).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 1 || ds.Records()[0].Salary != 10 {
		t.Fatalf("expected salary read from custom column, got %+v", ds.Records())
	}
}

func TestNewLoadDataset_UnknownColumn(t *testing.T) {
	_, err := usecase.NewLoadDatasetUseCase(&fakeSource{}, usecase.LoaderOptions{
		Required: []usecase.Column{"bonus"},
	}, nil)
	if !errors.Is(err, usecase.ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
}

// ------------------------------------------------------------
// LOAD FAILURE
// ------------------------------------------------------------

func TestLoadDataset_SourceError(t *testing.T) {
	src := &fakeSource{
		ReadFn: func(ctx context.Context) ([]ports.RawRow, error) {
			return []ports.RawRow{row("EN", "1", "US")}, errors.New("disk on fire")
		},
	}

	ds, err := newLoader(t, src, usecase.LoaderOptions{}).Execute(context.Background())
	if !errors.Is(err, usecase.ErrLoadFailure) {
		t.Fatalf("expected ErrLoadFailure, got %v", err)
	}
	if ds != nil {
		t.Fatalf("expected no partial dataset, got %d records", ds.Len())
	}
}

func TestLoadDataset_EmptySource(t *testing.T) {
	ds, err := newLoader(t, &fakeSource{}, usecase.LoaderOptions{}).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 0 {
		t.Fatalf("expected empty dataset")
	}
	if cats := ds.Categories(domain.DimensionExperienceLevel); len(cats) != 0 {
		t.Fatalf("expected no categories, got %v", cats)
	}
}
