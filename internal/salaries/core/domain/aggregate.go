package domain

type AggregateBucket struct {
	Key   string
	Value float64
	Count int // records that contributed to Value
}

type Reduction string

const (
	ReductionSum  Reduction = "sum"
	ReductionMean Reduction = "mean"
)

func (r Reduction) Valid() bool {
	return r == ReductionSum || r == ReductionMean
}

// CountryAverage feeds the scatter plot. AverageCostOfLiving is only meaningful when
// HasCostOfLiving is set.
type CountryAverage struct {
	Country             string
	AverageSalary       float64
	AverageCostOfLiving float64
	HasCostOfLiving     bool
	Count               int
}

var experienceLabels = map[string]string{
	"EN": "Entry-Level",
	"MI": "Mid-Level",
	"SE": "Senior-Level",
	"EX": "Executive-Level",
}

// ExperienceLabel returns the display name for an experience level code.
func ExperienceLabel(code string) string {
	if l, ok := experienceLabels[code]; ok {
		return l
	}
	return code
}
