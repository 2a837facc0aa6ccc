package entity

// Record is one launch attempt of the dataset.
type Record struct {
	FlightNumber    int
	Site            string
	PayloadMass     float64
	BoosterCategory string
	Outcome         Outcome
}

// LoadStats counts what happened to the rows of a dataset source.
type LoadStats struct {
	TotalLines int64
	ParsedOK   int64
	ParseErr   int64
}

// Dataset is the immutable table served for the whole process lifetime.
type Dataset struct {
	ID       int64
	Source   string
	Format   Format
	Records  []Record
	Stats    LoadStats
	LoadedAt int64
}
