package entity

// PayloadRange is a payload mass interval in kilograms.
type PayloadRange struct {
	Low  float64
	High float64
}

// Contains reports whether mass lies strictly inside the range.
func (r PayloadRange) Contains(mass float64) bool {
	return mass > r.Low && mass < r.High
}

// PieSlice is one labelled value of a pie chart.
type PieSlice struct {
	Label string
	Value int
}

// PieChart describes the success pie for a site selection.
type PieChart struct {
	Title  string
	Site   string
	Slices []PieSlice
	Total  int
}

// ScatterPoint is a single launch plotted as payload against outcome.
type ScatterPoint struct {
	X    float64
	Y    int
	Site string
}

// ScatterSeries groups the points of one booster version category.
type ScatterSeries struct {
	Category string
	Points   []ScatterPoint
}

// ScatterChart describes the payload/outcome correlation for a selection.
type ScatterChart struct {
	Title  string
	XLabel string
	YLabel string
	Site   string
	Range  PayloadRange
	Series []ScatterSeries
	Total  int
}
