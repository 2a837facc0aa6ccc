package entity

import "strconv"

// AllSites is the selector value meaning no site filter is applied.
const AllSites = "All"

// AllSitesLabel is how AllSites is presented in the site selector.
const AllSitesLabel = "All Sites"

// Outcome is the binary landing/launch result of a record.
type Outcome int

const (
	OutcomeFailure Outcome = 0
	OutcomeSuccess Outcome = 1
)

// Valid reports whether o is 0 or 1.
func (o Outcome) Valid() bool {
	return o == OutcomeFailure || o == OutcomeSuccess
}

// Label is the slice label used when outcomes are grouped ("0" or "1").
func (o Outcome) Label() string {
	return strconv.Itoa(int(o))
}

// Format names the encoding a dataset was loaded from.
type Format string

const (
	FormatAuto    Format = "auto"
	FormatCSV     Format = "csv"
	FormatSQLite  Format = "sqlite"
	FormatParquet Format = "parquet"
)
