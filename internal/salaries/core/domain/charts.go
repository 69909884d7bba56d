package domain

// Dimensions is the pixel box a view renders into.
type Dimensions struct {
	Width  int
	Height int
	Margin Margin
}

type Margin struct {
	Top, Right, Bottom, Left int
}

// Inner returns the drawable width and height after margins, never negative.
func (d Dimensions) Inner() (int, int) {
	w := d.Width - d.Margin.Left - d.Margin.Right
	h := d.Height - d.Margin.Top - d.Margin.Bottom
	return max(w, 0), max(h, 0)
}

type BarChart struct {
	Title     string
	Reduction Reduction
	Buckets   []AggregateBucket
	YMax      float64
	Highlight string
}

// Region is one boundary feature of the geographic document.
type Region struct {
	ID       string
	Name     string
	Polygons [][][][2]float64 // polygons -> rings -> [lon, lat]
}

type RegionValue struct {
	ID    string
	Name  string
	Value float64
	Data  bool // false when no record matched the region
}

type ChoroplethMap struct {
	Title     string
	Regions   []RegionValue
	Shapes    []Region
	Unmatched []string // data keys with no boundary region
	MaxValue  float64
}

type ScatterPlot struct {
	Title  string
	Points []CountryAverage
	XMax   float64 // average salary
	YMax   float64 // average cost of living
}

type Axis struct {
	Field Field
	Min   float64
	Max   float64
}

type ParallelLine struct {
	Key    string
	Values []float64 // one per axis, in axis order
}

type ParallelPlot struct {
	Title     string
	Axes      []Axis
	Lines     []ParallelLine
	Highlight string
}
