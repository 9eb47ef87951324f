// Package stats computes per-column descriptive statistics: numeric summaries
// for integer/float columns and frequency tables for everything else. All
// computations are deterministic: values are visited in row order and
// frequency ties are broken by first appearance.
package stats

import (
	"math"
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"csvprof/domain/table"
)

const (
	// TopNAdvanced caps frequency tables under advanced stats; TopNBasic is
	// the reduced summary.
	TopNAdvanced = 10
	TopNBasic    = 3

	insufficientStdDev = "insufficient data for std_dev (count < 2)"
)

// Compute builds one ColumnProfile per column. When advanced is false the
// numeric summary carries only count/mean/min/max and frequency tables are cut
// to the top 3 - a cost trade-off, not a correctness one.
func Compute(t *table.ParsedTable, types map[string]table.TypeTag, findings table.QualityFindings, advanced bool) map[string]*table.ColumnProfile {
	profiles := make(map[string]*table.ColumnProfile, len(t.Columns))
	for i, name := range t.Columns {
		profile := &table.ColumnProfile{
			Name:         name,
			Type:         types[name],
			MissingCount: findings.MissingByColumn[name],
		}

		values := nonMissing(t, i)
		profile.DistinctCount = distinct(values)

		switch types[name] {
		case table.TypeInteger, table.TypeFloat:
			profile.Numeric = numericSummary(values, advanced)
		case table.TypeEmpty:
			// No values, nothing to summarize
		default:
			topN := TopNAdvanced
			if !advanced {
				topN = TopNBasic
			}
			profile.Frequencies = Frequencies(values, topN)
		}

		profiles[name] = profile
	}
	return profiles
}

// numericSummary computes count, mean, min and max; population standard
// deviation, quartiles and shape measures are added under advanced stats.
// Quantities that need more data than the column has are left nil rather than
// reported as NaN.
func numericSummary(values []string, advanced bool) *table.NumericSummary {
	data := make([]float64, 0, len(values))
	for _, v := range values {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			data = append(data, f)
		}
	}
	if len(data) == 0 {
		return nil
	}

	mean, _ := stats.Mean(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)

	summary := &table.NumericSummary{
		Count: len(data),
		Mean:  mean,
		Min:   min,
		Max:   max,
	}

	if !advanced {
		return summary
	}

	if len(data) >= 2 {
		sd, err := stats.StandardDeviationPopulation(data)
		if err == nil {
			summary.StdDev = &sd
		}
	} else {
		summary.Note = insufficientStdDev
	}

	// Quartiles use the median-of-halves method: Q2 averages the two central
	// order statistics for even n, Q1/Q3 are medians of the lower and upper
	// halves excluding the middle element for odd n.
	if len(data) >= 2 {
		if q, err := stats.Quartile(data); err == nil {
			summary.Q25 = ptr(q.Q1)
			summary.Median = ptr(q.Q2)
			summary.Q75 = ptr(q.Q3)
		}
	}
	if len(data) >= 3 {
		if skew := stat.Skew(data, nil); isFinite(skew) {
			summary.Skewness = ptr(skew)
		}
	}
	if len(data) >= 4 {
		if kurt := stat.ExKurtosis(data, nil); isFinite(kurt) {
			summary.ExKurtosis = ptr(kurt)
		}
	}

	return summary
}

// Frequencies returns the topN most frequent values, counts descending, ties
// broken by first-seen order.
func Frequencies(values []string, topN int) []table.ValueCount {
	counts := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	freqs := make([]table.ValueCount, 0, len(order))
	for _, v := range order {
		freqs = append(freqs, table.ValueCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Count > freqs[j].Count
	})

	if len(freqs) > topN {
		freqs = freqs[:topN]
	}
	return freqs
}

func nonMissing(t *table.ParsedTable, col int) []string {
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row[col].Missing {
			continue
		}
		values = append(values, row[col].Trimmed())
	}
	return values
}

func distinct(values []string) int {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		seen[v] = true
	}
	return len(seen)
}

func ptr(f float64) *float64 { return &f }

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
