package report

import (
	"fmt"
	"sort"
	"strings"
)

// Markdown renders the report as a human-readable Markdown document. The HTTP
// surface converts it to HTML; the CLI prints it directly.
func (r *ProcessingReport) Markdown() string {
	var b strings.Builder

	b.WriteString("# CSV Processing Report\n\n")
	if r.Success {
		b.WriteString("**Status:** success\n\n")
	} else {
		b.WriteString("**Status:** failed\n\n")
	}
	b.WriteString(r.Message + "\n\n")

	if r.Success {
		b.WriteString("## Data\n\n")
		fmt.Fprintf(&b, "- Rows: %d\n", r.DataInfo.RowCount)
		fmt.Fprintf(&b, "- Columns: %d\n\n", r.DataInfo.ColumnCount)

		b.WriteString("| Column | Inferred Type |\n|---|---|\n")
		for _, col := range r.DataInfo.Columns {
			fmt.Fprintf(&b, "| %s | %s |\n", escapePipes(col), r.DataInfo.DataTypes[col])
		}
		b.WriteString("\n")

		if len(r.Preview) > 0 {
			b.WriteString("## Preview\n\n")
			writePreviewTable(&b, r.DataInfo.Columns, r.Preview)
		}
	}

	if len(r.Errors) > 0 {
		b.WriteString("## Errors\n\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "- %s\n", e)
		}
		b.WriteString("\n")
	}
	if len(r.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}
	if len(r.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writePreviewTable(b *strings.Builder, columns []string, preview []map[string]any) {
	cols := columns
	if len(cols) == 0 && len(preview) > 0 {
		// Failure-shaped preview rows carry their own keys
		for k := range preview[0] {
			cols = append(cols, k)
		}
		sort.Strings(cols)
	}

	b.WriteString("|")
	for _, c := range cols {
		fmt.Fprintf(b, " %s |", escapePipes(c))
	}
	b.WriteString("\n|")
	for range cols {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	for _, row := range preview {
		b.WriteString("|")
		for _, c := range cols {
			v, ok := row[c]
			if !ok || v == nil {
				b.WriteString(" |")
				continue
			}
			fmt.Fprintf(b, " %s |", escapePipes(fmt.Sprintf("%v", v)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
