package aggregate_test

import (
	"math"
	"testing"

	"salary-viz-service/internal/salaries/core/aggregate"
	"salary-viz-service/internal/salaries/core/domain"
)

func sampleRecords() []domain.Record {
	return []domain.Record{
		{ExperienceLevel: "EN", Salary: 50000, Country: "US", CostOfLiving: domain.Some(70)},
		{ExperienceLevel: "EN", Salary: 70000, Country: "DE"},
		{ExperienceLevel: "SE", Salary: 120000, Country: "US", CostOfLiving: domain.Some(80)},
	}
}

// ------------------------------------------------------------
// Aggregate
// ------------------------------------------------------------

func TestAggregate_MeanByExperienceLevel(t *testing.T) {
	got := aggregate.Aggregate(sampleRecords(), aggregate.ByExperienceLevel, domain.FieldSalary, domain.ReductionMean)

	want := []domain.AggregateBucket{
		{Key: "EN", Value: 60000, Count: 2},
		{Key: "SE", Value: 120000, Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d buckets, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bucket %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestAggregate_SumConservesMass(t *testing.T) {
	records := append(sampleRecords(),
		domain.Record{ExperienceLevel: "MI", Salary: 85000.5},
		domain.Record{ExperienceLevel: "EX", Salary: 250000},
		domain.Record{ExperienceLevel: "MI", Salary: 91000.25},
	)

	keyFns := map[string]aggregate.KeyFunc{
		"experience": aggregate.ByExperienceLevel,
		"country":    aggregate.ByCountry,
		"constant":   func(domain.Record) string { return "all" },
	}

	for name, key := range keyFns {
		t.Run(name, func(t *testing.T) {
			buckets := aggregate.Aggregate(records, key, domain.FieldSalary, domain.ReductionSum)
			var got float64
			for _, b := range buckets {
				got += b.Value
			}

			// records without a group key are out of scope for this grouping
			var want float64
			for _, r := range records {
				if key(r) != "" {
					want += r.Salary
				}
			}
			if math.Abs(got-want) > 1e-6 {
				t.Fatalf("expected total %v, got %v", want, got)
			}
		})
	}
}

func TestAggregate_FirstSeenOrder(t *testing.T) {
	records := []domain.Record{
		{ExperienceLevel: "SE", Salary: 1},
		{ExperienceLevel: "EN", Salary: 1},
		{ExperienceLevel: "SE", Salary: 1},
		{ExperienceLevel: "MI", Salary: 1},
	}
	got := aggregate.Aggregate(records, aggregate.ByExperienceLevel, domain.FieldSalary, domain.ReductionSum)

	keys := []string{"SE", "EN", "MI"}
	for i, k := range keys {
		if got[i].Key != k {
			t.Fatalf("expected key %s at %d, got %s", k, i, got[i].Key)
		}
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	got := aggregate.Aggregate(nil, aggregate.ByExperienceLevel, domain.FieldSalary, domain.ReductionMean)
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no buckets, got %v", got)
	}
}

func TestAggregate_MissingFieldExcludedNotZero(t *testing.T) {
	records := []domain.Record{
		{ExperienceLevel: "EN", Salary: 1, CostOfLiving: domain.Some(60)},
		{ExperienceLevel: "EN", Salary: 1},
		{ExperienceLevel: "SE", Salary: 1},
	}

	got := aggregate.Aggregate(records, aggregate.ByExperienceLevel, domain.FieldCostOfLiving, domain.ReductionMean)

	if len(got) != 1 {
		t.Fatalf("expected only EN bucket, got %v", got)
	}
	if got[0].Value != 60 || got[0].Count != 1 {
		t.Fatalf("expected EN mean 60 over 1 record, got %+v", got[0])
	}
}

// ------------------------------------------------------------
// CountryAverages
// ------------------------------------------------------------

func TestCountryAverages(t *testing.T) {
	got := aggregate.CountryAverages(sampleRecords())

	if len(got) != 2 {
		t.Fatalf("expected 2 countries, got %d", len(got))
	}

	us := got[0]
	if us.Country != "US" || us.AverageSalary != 85000 || !us.HasCostOfLiving || us.AverageCostOfLiving != 75 {
		t.Fatalf("unexpected US average: %+v", us)
	}

	de := got[1]
	if de.Country != "DE" || de.AverageSalary != 70000 {
		t.Fatalf("unexpected DE average: %+v", de)
	}
	if de.HasCostOfLiving {
		t.Fatalf("expected DE to have no cost of living mean")
	}
}

func TestCountryAverages_PartialCostOfLiving(t *testing.T) {
	records := []domain.Record{
		{Country: "FR", Salary: 40000, CostOfLiving: domain.Some(50)},
		{Country: "FR", Salary: 60000},
	}
	got := aggregate.CountryAverages(records)

	if got[0].AverageSalary != 50000 {
		t.Fatalf("salary mean must include both records, got %v", got[0].AverageSalary)
	}
	if got[0].AverageCostOfLiving != 50 {
		t.Fatalf("cost of living mean must skip the absent record, got %v", got[0].AverageCostOfLiving)
	}
}

// ------------------------------------------------------------
// Helpers
// ------------------------------------------------------------

func TestSortByValue_Stable(t *testing.T) {
	b := []domain.AggregateBucket{
		{Key: "SE", Value: 3},
		{Key: "EN", Value: 1},
		{Key: "MI", Value: 3},
		{Key: "EX", Value: 2},
	}
	aggregate.SortByValue(b)

	want := []string{"EN", "EX", "SE", "MI"}
	for i, k := range want {
		if b[i].Key != k {
			t.Fatalf("expected %v, got %v", want, b)
		}
	}
}

func TestBounds_EmptySentinels(t *testing.T) {
	if got := aggregate.MaxValue(nil); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	lo, hi := aggregate.Extent(nil)
	if lo != 0 || hi != 0 {
		t.Fatalf("expected 0,0 got %v,%v", lo, hi)
	}
	lo, hi = aggregate.Extent([]float64{3, -1, 7})
	if lo != -1 || hi != 7 {
		t.Fatalf("expected -1,7 got %v,%v", lo, hi)
	}
}

func TestFilter_PureSubset(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name string
		sel  domain.FilterSelection
		want int
	}{
		{"empty", domain.FilterSelection{}, 3},
		{"en", domain.FilterSelection{Dimension: domain.DimensionExperienceLevel, Values: []string{"EN"}}, 2},
		{"en_se", domain.FilterSelection{Dimension: domain.DimensionExperienceLevel, Values: []string{"SE", "EN"}}, 3},
		{"country", domain.FilterSelection{Dimension: domain.DimensionCountry, Values: []string{"DE"}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aggregate.Filter(records, tt.sel)
			if len(got) != tt.want {
				t.Fatalf("expected %d records, got %d", tt.want, len(got))
			}
			// order preserved
			j := 0
			for _, r := range records {
				if j < len(got) && got[j] == r {
					j++
				}
			}
			if j != len(got) {
				t.Fatalf("filter reordered or duplicated records: %v", got)
			}
		})
	}
}

func TestFilter_ScenarioCountryMeans(t *testing.T) {
	sel := domain.FilterSelection{Dimension: domain.DimensionExperienceLevel, Values: []string{"EN"}}
	visible := aggregate.Filter(sampleRecords(), sel)

	got := aggregate.CountryAverages(visible)
	if len(got) != 2 {
		t.Fatalf("expected 2 countries, got %v", got)
	}
	if got[0].Country != "US" || got[0].AverageSalary != 50000 {
		t.Fatalf("expected US mean from EN record only, got %+v", got[0])
	}
}
