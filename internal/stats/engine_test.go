package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvprof/domain/table"
	"csvprof/internal/infer"
	"csvprof/internal/parser"
	"csvprof/internal/quality"
)

func profileCSV(t *testing.T, text string, advanced bool) map[string]*table.ColumnProfile {
	t.Helper()
	tbl, _, err := parser.Parse(text, 1<<20)
	require.NoError(t, err)
	types := infer.Types(tbl)
	findings := quality.Analyze(tbl)
	return Compute(tbl, types, findings, advanced)
}

func TestNumericSummary(t *testing.T) {
	profiles := profileCSV(t, "age\n30\n25", true)
	p := profiles["age"]
	require.NotNil(t, p)
	require.NotNil(t, p.Numeric)

	assert.Equal(t, table.TypeInteger, p.Type)
	assert.Equal(t, 2, p.Numeric.Count)
	assert.InDelta(t, 27.5, p.Numeric.Mean, 1e-9)
	assert.InDelta(t, 25, p.Numeric.Min, 1e-9)
	assert.InDelta(t, 30, p.Numeric.Max, 1e-9)

	// Population std dev of {25, 30}
	require.NotNil(t, p.Numeric.StdDev)
	assert.InDelta(t, 2.5, *p.Numeric.StdDev, 1e-9)

	// Median-of-halves quartiles for n=2
	require.NotNil(t, p.Numeric.Q25)
	require.NotNil(t, p.Numeric.Median)
	require.NotNil(t, p.Numeric.Q75)
	assert.InDelta(t, 25, *p.Numeric.Q25, 1e-9)
	assert.InDelta(t, 27.5, *p.Numeric.Median, 1e-9)
	assert.InDelta(t, 30, *p.Numeric.Q75, 1e-9)
}

func TestQuartilesFourValues(t *testing.T) {
	profiles := profileCSV(t, "x\n1\n2\n3\n4", true)
	n := profiles["x"].Numeric
	require.NotNil(t, n)

	assert.InDelta(t, 1.5, *n.Q25, 1e-9)
	assert.InDelta(t, 2.5, *n.Median, 1e-9)
	assert.InDelta(t, 3.5, *n.Q75, 1e-9)
}

func TestSingleValueInsufficientData(t *testing.T) {
	profiles := profileCSV(t, "x\n42", true)
	n := profiles["x"].Numeric
	require.NotNil(t, n)

	assert.Equal(t, 1, n.Count)
	assert.Nil(t, n.StdDev)
	assert.Nil(t, n.Q25)
	assert.NotEmpty(t, n.Note)
}

func TestBasicStatsCountMeanMinMaxOnly(t *testing.T) {
	profiles := profileCSV(t, "x\n1\n2\n3\n4", false)
	n := profiles["x"].Numeric
	require.NotNil(t, n)

	assert.Equal(t, 4, n.Count)
	assert.InDelta(t, 2.5, n.Mean, 1e-9)
	assert.InDelta(t, 1, n.Min, 1e-9)
	assert.InDelta(t, 4, n.Max, 1e-9)
	assert.Nil(t, n.StdDev)
	assert.Nil(t, n.Q25)
	assert.Nil(t, n.Median)
	assert.Nil(t, n.Q75)
	assert.Nil(t, n.Skewness)
	assert.Nil(t, n.ExKurtosis)
	assert.Empty(t, n.Note)
}

func TestShapeMeasuresUnderAdvanced(t *testing.T) {
	profiles := profileCSV(t, "x\n1\n2\n3\n4\n5", true)
	n := profiles["x"].Numeric
	require.NotNil(t, n)

	require.NotNil(t, n.Skewness)
	assert.InDelta(t, 0, *n.Skewness, 1e-9)
	assert.NotNil(t, n.ExKurtosis)
}

func TestMissingValuesExcludedFromStats(t *testing.T) {
	profiles := profileCSV(t, "x\n10\n\n20\n", true)
	n := profiles["x"].Numeric
	require.NotNil(t, n)
	assert.Equal(t, 2, n.Count)
	assert.InDelta(t, 15, n.Mean, 1e-9)
}

func TestCategoricalFrequencies(t *testing.T) {
	profiles := profileCSV(t, "dept\nEng\nSales\nEng\nMarketing\nEng\nSales", true)
	p := profiles["dept"]
	require.NotNil(t, p)
	assert.Nil(t, p.Numeric)

	require.Len(t, p.Frequencies, 3)
	assert.Equal(t, table.ValueCount{Value: "Eng", Count: 3}, p.Frequencies[0])
	assert.Equal(t, table.ValueCount{Value: "Sales", Count: 2}, p.Frequencies[1])
	assert.Equal(t, table.ValueCount{Value: "Marketing", Count: 1}, p.Frequencies[2])
	assert.Equal(t, 3, p.DistinctCount)
}

func TestFrequencyTiesFirstSeen(t *testing.T) {
	freqs := Frequencies([]string{"b", "a", "b", "a", "c"}, 10)
	require.Len(t, freqs, 3)

	// b and a tie at 2; b appeared first
	assert.Equal(t, "b", freqs[0].Value)
	assert.Equal(t, "a", freqs[1].Value)
	assert.Equal(t, "c", freqs[2].Value)
}

func TestFrequenciesTopNCut(t *testing.T) {
	values := []string{"a", "b", "c", "d", "e", "a"}
	assert.Len(t, Frequencies(values, 3), 3)
	assert.Len(t, Frequencies(values, 10), 5)
}

func TestBasicStatsTopThree(t *testing.T) {
	profiles := profileCSV(t, "c\nv1\nv2\nv3\nv4\nv5", false)
	assert.Len(t, profiles["c"].Frequencies, TopNBasic)
}

func TestEmptyColumnHasNoStats(t *testing.T) {
	profiles := profileCSV(t, "a,b\n1,\n2,", true)
	p := profiles["b"]
	require.NotNil(t, p)

	assert.Equal(t, table.TypeEmpty, p.Type)
	assert.Nil(t, p.Numeric)
	assert.Nil(t, p.Frequencies)
	assert.Equal(t, 2, p.MissingCount)
	assert.Equal(t, 0, p.DistinctCount)
}

func TestBooleanColumnGetsFrequencies(t *testing.T) {
	profiles := profileCSV(t, "flag\ntrue\nfalse\ntrue", true)
	p := profiles["flag"]
	require.NotNil(t, p)

	assert.Equal(t, table.TypeBoolean, p.Type)
	assert.Nil(t, p.Numeric)
	require.Len(t, p.Frequencies, 2)
	assert.Equal(t, "true", p.Frequencies[0].Value)
}
