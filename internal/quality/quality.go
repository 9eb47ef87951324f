// Package quality computes structural findings over a parsed table: missing
// counts, duplicate rows, empty columns, and the ragged-row indices carried
// over from parsing.
package quality

import (
	"csvprof/domain/core"
	"csvprof/domain/table"
)

// Analyze derives quality findings from a parsed table. Two rows are
// duplicates when all their trimmed values are equal, case-sensitively;
// the reported indices are the occurrences beyond the first of each group.
func Analyze(t *table.ParsedTable) table.QualityFindings {
	findings := table.QualityFindings{
		MissingByColumn: make(map[string]int, len(t.Columns)),
		DuplicateRows:   []int{},
		RaggedRows:      append([]int{}, t.RaggedRows...),
		EmptyColumns:    []string{},
	}

	for i, name := range t.Columns {
		missing := 0
		for _, row := range t.Rows {
			if row[i].Missing {
				missing++
			}
		}
		findings.MissingByColumn[name] = missing
		if t.RowCount() > 0 && missing == t.RowCount() {
			findings.EmptyColumns = append(findings.EmptyColumns, name)
		}
	}

	seen := make(map[core.Hash]bool, len(t.Rows))
	cells := make([]string, len(t.Columns))
	miss := make([]bool, len(t.Columns))
	for i, row := range t.Rows {
		for j, v := range row {
			cells[j] = v.Trimmed()
			miss[j] = v.Missing
		}
		fp := core.RowFingerprint(cells, miss)
		if seen[fp] {
			findings.DuplicateRows = append(findings.DuplicateRows, i)
		} else {
			seen[fp] = true
		}
	}

	return findings
}
