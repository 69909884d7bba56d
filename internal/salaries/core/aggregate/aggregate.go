// Package aggregate groups records and reduces each group to chart-ready values.
//
// Output order is first-seen key order for a given input order. Any other ordering is
// a chart policy and is applied by the caller (see SortByValue).
package aggregate

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"salary-viz-service/internal/salaries/core/domain"
)

// KeyFunc maps a record to its group key. An empty key drops the record from grouping.
type KeyFunc func(domain.Record) string

func ByExperienceLevel(r domain.Record) string { return r.ExperienceLevel }
func ByCountry(r domain.Record) string         { return r.Country }
func ByCountryCode(r domain.Record) string     { return r.CountryCode }

type group struct {
	key    string
	values []float64
}

// groupValues collects field values per key. Records missing the field are left out of
// their group's values; a group with no values is not emitted.
func groupValues(records []domain.Record, key KeyFunc, field domain.Field) []group {
	index := make(map[string]int)
	var groups []group
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		v, ok := r.Value(field)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{key: k})
		}
		groups[i].values = append(groups[i].values, v)
	}
	return groups
}

// Aggregate groups records by key and reduces field with reduction.
func Aggregate(records []domain.Record, key KeyFunc, field domain.Field, reduction domain.Reduction) []domain.AggregateBucket {
	groups := groupValues(records, key, field)
	buckets := make([]domain.AggregateBucket, 0, len(groups))
	for _, g := range groups {
		buckets = append(buckets, domain.AggregateBucket{
			Key:   g.key,
			Value: reduce(g.values, reduction),
			Count: len(g.values),
		})
	}
	return buckets
}

func reduce(values []float64, reduction domain.Reduction) float64 {
	switch reduction {
	case domain.ReductionMean:
		return stats.Mean(values)
	default:
		return stats.Sample{Xs: values}.Sum()
	}
}

// Total sums field over every record that carries it.
func Total(records []domain.Record, field domain.Field) float64 {
	var s float64
	for _, r := range records {
		if v, ok := r.Value(field); ok {
			s += v
		}
	}
	return s
}

// CountryAverages returns one entry per country, in first-seen order. Cost of living is
// averaged only over the records that have it; those without it still count towards salary.
func CountryAverages(records []domain.Record) []domain.CountryAverage {
	salaries := groupValues(records, ByCountry, domain.FieldSalary)
	col := groupValues(records, ByCountry, domain.FieldCostOfLiving)

	colByCountry := make(map[string][]float64, len(col))
	for _, g := range col {
		colByCountry[g.key] = g.values
	}

	out := make([]domain.CountryAverage, 0, len(salaries))
	for _, g := range salaries {
		ca := domain.CountryAverage{
			Country:       g.key,
			AverageSalary: stats.Mean(g.values),
			Count:         len(g.values),
		}
		if vs := colByCountry[g.key]; len(vs) > 0 {
			ca.AverageCostOfLiving = stats.Mean(vs)
			ca.HasCostOfLiving = true
		}
		out = append(out, ca)
	}
	return out
}

// SortByValue sorts buckets ascending by value, keeping input order for ties.
func SortByValue(buckets []domain.AggregateBucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Value < buckets[j].Value
	})
}

// MaxValue returns the largest bucket value, or 0 for no buckets.
func MaxValue(buckets []domain.AggregateBucket) float64 {
	if len(buckets) == 0 {
		return 0
	}
	m := buckets[0].Value
	for _, b := range buckets[1:] {
		m = math.Max(m, b.Value)
	}
	return m
}

// Extent returns min and max of values, or 0, 0 when there are none.
func Extent(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	return stats.Bounds(values)
}

// Filter returns the records visible under sel, in their original order.
func Filter(records []domain.Record, sel domain.FilterSelection) []domain.Record {
	if sel.Empty() {
		return records
	}
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if sel.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
