package table

// ValueCount represents a value and its frequency
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// NumericSummary contains descriptive statistics for an integer or float
// column. StdDev and the quartiles are pointers so that "insufficient data"
// serializes as null rather than NaN or a misleading zero.
type NumericSummary struct {
	Count  int      `json:"count"`
	Mean   float64  `json:"mean"`
	StdDev *float64 `json:"std_dev"`
	Min    float64  `json:"min"`
	Max    float64  `json:"max"`

	// Quartiles and shape measures, computed only under advanced stats
	Q25        *float64 `json:"q25,omitempty"`
	Median     *float64 `json:"median,omitempty"`
	Q75        *float64 `json:"q75,omitempty"`
	Skewness   *float64 `json:"skewness,omitempty"`
	ExKurtosis *float64 `json:"ex_kurtosis,omitempty"`

	Note string `json:"note,omitempty"`
}

// ColumnProfile is the derived type + quality + statistics summary for one
// column. Exactly one of Numeric or Frequencies is populated depending on the
// inferred type; both are nil for empty columns.
type ColumnProfile struct {
	Name          string          `json:"name"`
	Type          TypeTag         `json:"type"`
	MissingCount  int             `json:"missing_count"`
	DistinctCount int             `json:"distinct_count"`
	Numeric       *NumericSummary `json:"numeric,omitempty"`
	Frequencies   []ValueCount    `json:"frequencies,omitempty"`
}
