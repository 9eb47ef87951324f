// Package assemble composes the pipeline outputs into the final report: a
// typed preview, fixed-rule recommendations, and the stable serialized shape.
// Fatal parse errors are assembled into a well-formed failure report so the
// caller always receives a report, never a raw error.
package assemble

import (
	"errors"
	"fmt"
	"strconv"

	"csvprof/domain/core"
	"csvprof/domain/report"
	"csvprof/domain/table"
	"csvprof/internal/infer"
)

// Report builds the processing report for a successfully parsed table.
func Report(t *table.ParsedTable, types map[string]table.TypeTag, findings table.QualityFindings, parseWarnings []string, previewRows int) *report.ProcessingReport {
	r := report.NewReport()
	r.Success = true
	r.DataInfo = report.DataInfo{
		RowCount:    t.RowCount(),
		ColumnCount: t.ColumnCount(),
		Columns:     append([]string{}, t.Columns...),
		DataTypes:   make(map[string]string, len(types)),
	}
	for name, tag := range types {
		r.DataInfo.DataTypes[name] = string(tag)
	}

	r.Preview = Preview(t, types, previewRows)

	r.Warnings = append(r.Warnings, parseWarnings...)
	for _, name := range t.Columns {
		if contains(findings.EmptyColumns, name) {
			r.Warnings = append(r.Warnings, fmt.Sprintf("column %q contains only missing values", name))
		}
	}

	r.Recommendations = Recommendations(t.Columns, findings)
	r.Message = fmt.Sprintf("Successfully processed CSV with %d rows and %d columns", t.RowCount(), t.ColumnCount())
	return r
}

// FailureReport wraps a fatal parse error into the same report shape with
// success=false and empty data sections.
func FailureReport(err error) *report.ProcessingReport {
	r := report.NewReport()

	var msg string
	switch {
	case errors.Is(err, core.ErrUnparsableStructure):
		msg = fmt.Sprintf("CSV parsing error: %v", err)
	default:
		msg = fmt.Sprintf("CSV validation failed: %v", err)
	}
	r.Errors = append(r.Errors, msg)
	r.Message = msg
	return r
}

// Preview returns the first previewRows rows with values coerced to the
// natural representation of their inferred type: numbers as numbers, booleans
// as booleans, everything else as trimmed text. Missing markers render as
// explicit nulls, never empty strings.
func Preview(t *table.ParsedTable, types map[string]table.TypeTag, previewRows int) []map[string]any {
	n := previewRows
	if n > t.RowCount() {
		n = t.RowCount()
	}
	preview := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		row := make(map[string]any, t.ColumnCount())
		for j, name := range t.Columns {
			row[name] = coerce(t.Rows[i][j], types[name])
		}
		preview = append(preview, row)
	}
	return preview
}

func coerce(v table.Value, tag table.TypeTag) any {
	if v.Missing {
		return nil
	}
	trimmed := v.Trimmed()
	switch tag {
	case table.TypeInteger:
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return n
		}
	case table.TypeFloat:
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return f
		}
	case table.TypeBoolean:
		if b, ok := infer.BooleanValue(trimmed); ok {
			return b
		}
	}
	return trimmed
}

// Recommendations applies the fixed rules over the quality findings. The rule
// order is stable: per-column missing values, duplicates, ragged rows, empty
// columns, then the all-clear message when nothing fired.
func Recommendations(columns []string, findings table.QualityFindings) []string {
	recs := []string{}
	for _, name := range columns {
		if n := findings.MissingByColumn[name]; n > 0 {
			recs = append(recs, fmt.Sprintf("Column '%s' has %d missing values. Consider imputation or removing incomplete rows.", name, n))
		}
	}
	if n := len(findings.DuplicateRows); n > 0 {
		recs = append(recs, fmt.Sprintf("Found %d duplicate rows. Consider deduplication.", n))
	}
	if n := len(findings.RaggedRows); n > 0 {
		recs = append(recs, fmt.Sprintf("%d rows had an inconsistent field count. Re-validate the source export.", n))
	}
	for _, name := range findings.EmptyColumns {
		recs = append(recs, fmt.Sprintf("Column '%s' contains no values. Consider dropping it.", name))
	}
	if len(recs) == 0 {
		recs = append(recs, "No major data quality issues detected.")
	}
	return recs
}

// Summary builds the statistics portion of a processed table for the summary
// entry point.
func Summary(t *table.ParsedTable, findings table.QualityFindings, profiles map[string]*table.ColumnProfile) *report.SummaryReport {
	s := &report.SummaryReport{
		Success:            true,
		NumericSummary:     map[string]*table.NumericSummary{},
		CategoricalSummary: map[string][]table.ValueCount{},
		DataQuality: report.DataQuality{
			MissingValues: findings.MissingByColumn,
			DuplicateRows: len(findings.DuplicateRows),
			RaggedRows:    len(findings.RaggedRows),
			EmptyColumns:  append([]string{}, findings.EmptyColumns...),
		},
		Recommendations: Recommendations(t.Columns, findings),
		Message:         fmt.Sprintf("Summary generated for %d rows and %d columns.", t.RowCount(), t.ColumnCount()),
	}
	for _, name := range t.Columns {
		profile, ok := profiles[name]
		if !ok {
			continue
		}
		if profile.Numeric != nil {
			s.NumericSummary[name] = profile.Numeric
		}
		if profile.Frequencies != nil {
			s.CategoricalSummary[name] = profile.Frequencies
		}
	}
	return s
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
