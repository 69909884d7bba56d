package domain

import "slices"

// Dimension is a categorical column a selection can filter on.
type Dimension string

const (
	DimensionExperienceLevel Dimension = "experience_level"
	DimensionEmploymentType  Dimension = "employment_type"
	DimensionCompanySize     Dimension = "company_size"
	DimensionCountry         Dimension = "country"
)

func (d Dimension) Valid() bool {
	switch d {
	case DimensionExperienceLevel, DimensionEmploymentType, DimensionCompanySize, DimensionCountry:
		return true
	}
	return false
}

// FilterSelection is the set of category values to include. An empty set means no filter.
type FilterSelection struct {
	Dimension Dimension
	Values    []string
}

func (s FilterSelection) Empty() bool {
	return len(s.Values) == 0
}

func (s FilterSelection) Contains(v string) bool {
	return slices.Contains(s.Values, v)
}

// Matches reports whether r is visible under the selection.
func (s FilterSelection) Matches(r Record) bool {
	if s.Empty() {
		return true
	}
	return s.Contains(r.Category(s.Dimension))
}

// Normalize keeps only values present in vocabulary, de-duplicated, in request order.
func (s FilterSelection) Normalize(vocabulary []string) FilterSelection {
	dim := s.Dimension
	if dim == "" {
		dim = DimensionExperienceLevel
	}
	out := FilterSelection{Dimension: dim}
	for _, v := range s.Values {
		v = NormalizeCategory(v)
		if !slices.Contains(vocabulary, v) || slices.Contains(out.Values, v) {
			continue
		}
		out.Values = append(out.Values, v)
	}
	return out
}

func (s FilterSelection) Equal(o FilterSelection) bool {
	return s.Dimension == o.Dimension && slices.Equal(s.Values, o.Values)
}
