package infer

import (
	"testing"

	"csvprof/domain/table"
	"csvprof/internal/parser"
)

func mustParse(t *testing.T, text string) *table.ParsedTable {
	t.Helper()
	tbl, _, err := parser.Parse(text, 1<<20)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return tbl
}

func TestTypePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		column   string
		expected table.TypeTag
	}{
		{
			name:     "integers",
			csv:      "x\n1\n-2\n+30",
			column:   "x",
			expected: table.TypeInteger,
		},
		{
			name:     "floats",
			csv:      "x\n1.5\n-2.25\n3e2",
			column:   "x",
			expected: table.TypeFloat,
		},
		{
			name:     "mixed integers and floats demote to float",
			csv:      "x\n1\n2.5",
			column:   "x",
			expected: table.TypeFloat,
		},
		{
			name:     "ones and zeros are integers, not booleans",
			csv:      "x\n1\n0\n1",
			column:   "x",
			expected: table.TypeInteger,
		},
		{
			name:     "boolean words",
			csv:      "x\ntrue\nFalse\nYES\nno",
			column:   "x",
			expected: table.TypeBoolean,
		},
		{
			name:     "iso dates",
			csv:      "x\n2024-01-15\n2023-12-31",
			column:   "x",
			expected: table.TypeDatetime,
		},
		{
			name:     "timestamps",
			csv:      "x\n2024-01-15 10:30:00\n2024-01-16 11:00:00",
			column:   "x",
			expected: table.TypeDatetime,
		},
		{
			name:     "slash dates",
			csv:      "x\n01/15/2024\n12/31/2023",
			column:   "x",
			expected: table.TypeDatetime,
		},
		{
			name:     "single non-integer demotes whole column",
			csv:      "x\n1\n2\nabc",
			column:   "x",
			expected: table.TypeCategorical,
		},
		{
			name:     "plain text",
			csv:      "x\nNorth\nSouth\nEast",
			column:   "x",
			expected: table.TypeCategorical,
		},
		{
			name:     "missing values are ignored for inference",
			csv:      "x\n1\n\n2",
			column:   "x",
			expected: table.TypeInteger,
		},
		{
			name:     "all missing is empty",
			csv:      "x,y\n,1\n,2",
			column:   "x",
			expected: table.TypeEmpty,
		},
		{
			name:     "inf and nan spellings are not floats",
			csv:      "x\n1.5\nInf\nNaN",
			column:   "x",
			expected: table.TypeCategorical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := mustParse(t, tt.csv)
			types := Types(tbl)
			if got := types[tt.column]; got != tt.expected {
				t.Errorf("expected %s, got %s for csv %q", tt.expected, got, tt.csv)
			}
		})
	}
}

func TestTypesCoversEveryColumn(t *testing.T) {
	tbl := mustParse(t, "a,b,c\n1,x,true")
	types := Types(tbl)
	if len(types) != 3 {
		t.Fatalf("expected 3 type tags, got %d", len(types))
	}
	for _, col := range tbl.Columns {
		if _, ok := types[col]; !ok {
			t.Errorf("no type inferred for column %q", col)
		}
	}
}

func TestBooleanValue(t *testing.T) {
	cases := map[string]bool{
		"true": true, "TRUE": true, "yes": true, "1": true,
		"false": false, "No": false, "0": false,
	}
	for literal, expected := range cases {
		got, ok := BooleanValue(literal)
		if !ok || got != expected {
			t.Errorf("BooleanValue(%q) = (%v, %v), want (%v, true)", literal, got, ok, expected)
		}
	}
	if _, ok := BooleanValue("maybe"); ok {
		t.Error("BooleanValue accepted a non-boolean literal")
	}
}
