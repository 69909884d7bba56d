package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"salary-viz-service/internal/salaries/core/domain"
	"salary-viz-service/internal/salaries/core/ports"
)

var (
	ErrLoadFailure   = errors.New("dataset load failed")
	ErrUnknownColumn = errors.New("unknown required column")
)

// Column is a logical record column. Its source header name comes from Columns.
type Column string

const (
	ColumnExperienceLevel Column = "experience_level"
	ColumnEmploymentType  Column = "employment_type"
	ColumnJobTitle        Column = "job_title"
	ColumnSalary          Column = "salary"
	ColumnCostOfLiving    Column = "cost_of_living"
	ColumnCountry         Column = "country"
	ColumnCountryCode     Column = "country_code"
	ColumnCompanySize     Column = "company_size"
	ColumnRemoteRatio     Column = "remote_ratio"
	ColumnWorkYear        Column = "work_year"
)

// Columns maps logical columns to source header names.
type Columns map[Column]string

func DefaultColumns() Columns {
	return Columns{
		ColumnExperienceLevel: "experience_level",
		ColumnEmploymentType:  "employment_type",
		ColumnJobTitle:        "job_title",
		ColumnSalary:          "salary_in_usd",
		ColumnCostOfLiving:    "NumbeoCoL2023",
		ColumnCountry:         "company_location",
		ColumnCountryCode:     "alpha-3",
		ColumnCompanySize:     "company_size",
		ColumnRemoteRatio:     "remote_ratio",
		ColumnWorkYear:        "work_year",
	}
}

func DefaultRequired() []Column {
	return []Column{ColumnExperienceLevel, ColumnSalary, ColumnCountry}
}

type LoaderOptions struct {
	Columns  Columns  // merged over DefaultColumns
	Required []Column // defaults to DefaultRequired; salary is always required
}

type LoadDatasetUseCase struct {
	source   ports.RecordSourcePort
	columns  Columns
	required map[Column]bool
	logger   *pterm.Logger
}

func NewLoadDatasetUseCase(source ports.RecordSourcePort, opts LoaderOptions, logger *pterm.Logger) (*LoadDatasetUseCase, error) {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}

	cols := DefaultColumns()
	for k, v := range opts.Columns {
		if _, ok := cols[k]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, k)
		}
		if v != "" {
			cols[k] = v
		}
	}

	req := opts.Required
	if len(req) == 0 {
		req = DefaultRequired()
	}
	required := map[Column]bool{ColumnSalary: true}
	for _, c := range req {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, c)
		}
		required[c] = true
	}

	return &LoadDatasetUseCase{
		source:   source,
		columns:  cols,
		required: required,
		logger:   logger,
	}, nil
}

// Execute reads every row from the source and returns the Dataset of valid records.
// Invalid rows are excluded and counted; a source failure returns ErrLoadFailure and no Dataset.
func (uc *LoadDatasetUseCase) Execute(ctx context.Context) (*domain.Dataset, error) {
	rows, err := uc.source.ReadRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadFailure, uc.source.Name(), err)
	}

	records := make([]domain.Record, 0, len(rows))
	excluded := 0
	for _, row := range rows {
		r, ok := uc.Coerce(row)
		if !ok {
			excluded++
			continue
		}
		records = append(records, r)
	}

	ds := domain.NewDataset(uc.source.Name(), records, excluded)

	uc.logger.Info("dataset loaded", uc.logger.Args(
		"source", ds.Source,
		"rows", len(rows),
		"records", ds.Len(),
		"excluded", excluded,
	))

	return ds, nil
}

// Coerce turns a raw row into a Record. It reports false when a required column is
// missing or a required numeric column is not a finite number.
func (uc *LoadDatasetUseCase) Coerce(row ports.RawRow) (domain.Record, bool) {
	var r domain.Record

	cat := func(c Column) (string, bool) {
		v := domain.NormalizeCategory(row[uc.columns[c]])
		if v == "" && uc.required[c] {
			return "", false
		}
		return v, true
	}
	num := func(c Column) (domain.Optional, bool) {
		v, ok := parseNumber(row[uc.columns[c]])
		if !ok {
			return domain.Optional{}, !uc.required[c]
		}
		return domain.Some(v), true
	}

	var ok bool
	if r.ExperienceLevel, ok = cat(ColumnExperienceLevel); !ok {
		return r, false
	}
	if r.EmploymentType, ok = cat(ColumnEmploymentType); !ok {
		return r, false
	}
	if r.Country, ok = cat(ColumnCountry); !ok {
		return r, false
	}
	if r.CountryCode, ok = cat(ColumnCountryCode); !ok {
		return r, false
	}
	if r.CountryCode == "" {
		r.CountryCode = r.Country
	}
	if r.CompanySize, ok = cat(ColumnCompanySize); !ok {
		return r, false
	}

	r.JobTitle = strings.TrimSpace(row[uc.columns[ColumnJobTitle]])
	if r.JobTitle == "" && uc.required[ColumnJobTitle] {
		return r, false
	}

	salary, ok := num(ColumnSalary)
	if !ok || !salary.Valid {
		return r, false
	}
	r.Salary = salary.Value

	if r.CostOfLiving, ok = num(ColumnCostOfLiving); !ok {
		return r, false
	}
	if r.RemoteRatio, ok = num(ColumnRemoteRatio); !ok {
		return r, false
	}
	if r.WorkYear, ok = num(ColumnWorkYear); !ok {
		return r, false
	}

	return r, true
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
