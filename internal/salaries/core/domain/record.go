package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Optional is a numeric field that may be absent from a row.
type Optional struct {
	Value float64
	Valid bool
}

func Some(v float64) Optional {
	return Optional{Value: v, Valid: true}
}

type Record struct {
	ExperienceLevel string // EN, MI, SE, EX
	EmploymentType  string // FT, PT, CT, FL
	JobTitle        string
	Salary          float64 // USD
	CostOfLiving    Optional
	Country         string // company_location
	CountryCode     string // ISO alpha-3, falls back to Country
	CompanySize     string // S, M, L
	RemoteRatio     Optional
	WorkYear        Optional
}

// Field names a numeric column that can be reduced.
type Field string

const (
	FieldSalary       Field = "salary"
	FieldCostOfLiving Field = "cost_of_living"
	FieldRemoteRatio  Field = "remote_ratio"
	FieldWorkYear     Field = "work_year"
)

func (f Field) Valid() bool {
	switch f {
	case FieldSalary, FieldCostOfLiving, FieldRemoteRatio, FieldWorkYear:
		return true
	}
	return false
}

// Value returns the field's value and whether the record carries it.
func (r Record) Value(f Field) (float64, bool) {
	switch f {
	case FieldSalary:
		return r.Salary, true
	case FieldCostOfLiving:
		return r.CostOfLiving.Value, r.CostOfLiving.Valid
	case FieldRemoteRatio:
		return r.RemoteRatio.Value, r.RemoteRatio.Valid
	case FieldWorkYear:
		return r.WorkYear.Value, r.WorkYear.Valid
	}
	return 0, false
}

// Category returns the record's value for a categorical dimension.
func (r Record) Category(d Dimension) string {
	switch d {
	case DimensionExperienceLevel:
		return r.ExperienceLevel
	case DimensionEmploymentType:
		return r.EmploymentType
	case DimensionCompanySize:
		return r.CompanySize
	case DimensionCountry:
		return r.Country
	}
	return ""
}

// NormalizeCategory trims and upper-cases a categorical value so "en", " EN" and "En" compare equal.
func NormalizeCategory(v string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(v))
}

// Dataset is the loaded, read-only sequence of records for a session.
type Dataset struct {
	ID       uuid.UUID
	Source   string
	LoadedAt time.Time
	Excluded int

	records []Record
}

func NewDataset(source string, records []Record, excluded int) *Dataset {
	return &Dataset{
		ID:       uuid.New(),
		Source:   source,
		LoadedAt: time.Now().UTC(),
		Excluded: excluded,
		records:  slices.Clone(records),
	}
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Records returns a copy; callers cannot edit the loaded records in place.
func (d *Dataset) Records() []Record {
	if d == nil {
		return nil
	}
	return slices.Clone(d.records)
}

// Categories returns the distinct values of a dimension in first-seen order.
func (d *Dataset) Categories(dim Dimension) []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, r := range d.records {
		v := r.Category(dim)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
