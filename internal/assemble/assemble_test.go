package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvprof/domain/core"
	"csvprof/domain/report"
	"csvprof/domain/table"
	"csvprof/internal/infer"
	"csvprof/internal/parser"
	"csvprof/internal/quality"
)

func buildReport(t *testing.T, text string, previewRows int) *report.ProcessingReport {
	t.Helper()
	tbl, warnings, err := parser.Parse(text, 1<<20)
	require.NoError(t, err)
	types := infer.Types(tbl)
	findings := quality.Analyze(tbl)
	return Report(tbl, types, findings, warnings, previewRows)
}

func TestReportWellFormed(t *testing.T) {
	r := buildReport(t, "name,age\nAlice,30\nBob,25", 5)

	assert.True(t, r.Success)
	assert.Equal(t, 2, r.DataInfo.RowCount)
	assert.Equal(t, 2, r.DataInfo.ColumnCount)
	assert.Equal(t, []string{"name", "age"}, r.DataInfo.Columns)
	assert.Equal(t, "categorical_text", r.DataInfo.DataTypes["name"])
	assert.Equal(t, "integer", r.DataInfo.DataTypes["age"])
	assert.Equal(t, "Successfully processed CSV with 2 rows and 2 columns", r.Message)
	assert.Empty(t, r.Errors)

	require.Len(t, r.Preview, 2)
	assert.Equal(t, "Alice", r.Preview[0]["name"])
	assert.Equal(t, int64(30), r.Preview[0]["age"])
	assert.Equal(t, int64(25), r.Preview[1]["age"])
}

func TestPreviewBounded(t *testing.T) {
	r := buildReport(t, "x\n1\n2\n3\n4\n5\n6\n7", 3)
	assert.Len(t, r.Preview, 3)

	r = buildReport(t, "x\n1", 5)
	assert.Len(t, r.Preview, 1)

	r = buildReport(t, "x\n1\n2", 0)
	assert.Empty(t, r.Preview)
}

func TestPreviewTypedValues(t *testing.T) {
	r := buildReport(t, "n,f,b,d,s\n1,2.5,true,2024-01-15,hello", 5)
	row := r.Preview[0]

	assert.Equal(t, int64(1), row["n"])
	assert.Equal(t, 2.5, row["f"])
	assert.Equal(t, true, row["b"])
	assert.Equal(t, "2024-01-15", row["d"])
	assert.Equal(t, "hello", row["s"])
}

func TestPreviewMissingIsNull(t *testing.T) {
	r := buildReport(t, "a,b\n1,\n2,3", 5)

	v, present := r.Preview[0]["b"]
	assert.True(t, present)
	assert.Nil(t, v)
	assert.Equal(t, int64(3), r.Preview[1]["b"])
}

func TestRecommendationsRules(t *testing.T) {
	findings := table.QualityFindings{
		MissingByColumn: map[string]int{"a": 0, "b": 2},
		DuplicateRows:   []int{3},
		RaggedRows:      []int{1},
		EmptyColumns:    []string{"b"},
	}
	recs := Recommendations([]string{"a", "b"}, findings)

	require.Len(t, recs, 4)
	assert.Equal(t, "Column 'b' has 2 missing values. Consider imputation or removing incomplete rows.", recs[0])
	assert.Equal(t, "Found 1 duplicate rows. Consider deduplication.", recs[1])
	assert.Equal(t, "1 rows had an inconsistent field count. Re-validate the source export.", recs[2])
	assert.Equal(t, "Column 'b' contains no values. Consider dropping it.", recs[3])
}

func TestRecommendationsAllClear(t *testing.T) {
	findings := table.QualityFindings{MissingByColumn: map[string]int{"a": 0}}
	recs := Recommendations([]string{"a"}, findings)
	assert.Equal(t, []string{"No major data quality issues detected."}, recs)
}

func TestFailureReportShapes(t *testing.T) {
	r := FailureReport(core.ErrEmptyInput)
	assert.False(t, r.Success)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0], "CSV validation failed")
	assert.Equal(t, r.Errors[0], r.Message)
	assert.Equal(t, 0, r.DataInfo.RowCount)
	assert.NotNil(t, r.Preview)
	assert.NotNil(t, r.Warnings)

	r = FailureReport(core.ErrUnparsableStructure)
	assert.Contains(t, r.Message, "CSV parsing error")
}

func TestEmptyColumnWarning(t *testing.T) {
	r := buildReport(t, "a,b\n1,\n2,", 5)

	found := false
	for _, w := range r.Warnings {
		if w == `column "b" contains only missing values` {
			found = true
		}
	}
	assert.True(t, found, "expected empty-column warning, got %v", r.Warnings)
}

func TestSummaryShapes(t *testing.T) {
	tbl, _, err := parser.Parse("name,age\nAlice,30\nBob,25", 1<<20)
	require.NoError(t, err)
	_ = infer.Types(tbl)
	findings := quality.Analyze(tbl)

	profiles := map[string]*table.ColumnProfile{
		"name": {Name: "name", Type: table.TypeCategorical, Frequencies: []table.ValueCount{{Value: "Alice", Count: 1}, {Value: "Bob", Count: 1}}},
		"age":  {Name: "age", Type: table.TypeInteger, Numeric: &table.NumericSummary{Count: 2, Mean: 27.5, Min: 25, Max: 30}},
	}

	s := Summary(tbl, findings, profiles)
	assert.True(t, s.Success)
	assert.Contains(t, s.NumericSummary, "age")
	assert.NotContains(t, s.NumericSummary, "name")
	assert.Contains(t, s.CategoricalSummary, "name")
	assert.Equal(t, "Summary generated for 2 rows and 2 columns.", s.Message)
	assert.Equal(t, 0, s.DataQuality.DuplicateRows)
}
