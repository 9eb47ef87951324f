// Package parser turns raw CSV text into a rectangular ParsedTable. It is
// deliberately tolerant: ragged rows are padded or truncated with a recorded
// warning, duplicate headers are renamed, and only size violations, empty
// input, and an unrecoverable structure abort the parse.
package parser

import (
	"encoding/csv"
	"fmt"
	"strings"

	"csvprof/domain/core"
	"csvprof/domain/table"
)

// Parse splits CSV text into a table. The size check runs before any parsing
// work so memory use stays bounded by the caller-supplied limit.
func Parse(text string, maxSizeBytes int) (*table.ParsedTable, []string, error) {
	if len(text) > maxSizeBytes {
		return nil, nil, core.NewSizeLimitError(len(text), maxSizeBytes)
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil, fmt.Errorf("%w: CSV string cannot be empty", core.ErrEmptyInput)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1 // ragged rows are handled below, not rejected
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", core.ErrUnparsableStructure, err)
	}

	return FromRecords(records)
}

// FromRecords builds a table from pre-split records. The first record is the
// header; the rest are data rows. Shared by the CSV path and the spreadsheet
// reader.
func FromRecords(records [][]string) (*table.ParsedTable, []string, error) {
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: no header row recoverable", core.ErrUnparsableStructure)
	}

	warnings := []string{}
	columns, renames := normalizeHeader(records[0])
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("%w: header row has no fields", core.ErrUnparsableStructure)
	}
	for _, r := range renames {
		if r.Original == "" {
			warnings = append(warnings, fmt.Sprintf("blank header at position %d renamed to %q", r.Index+1, r.Renamed))
		} else {
			warnings = append(warnings, fmt.Sprintf("duplicate header %q renamed to %q", r.Original, r.Renamed))
		}
	}

	t := &table.ParsedTable{
		Columns:        columns,
		Rows:           make([]table.Row, 0, len(records)-1),
		RaggedRows:     []int{},
		RenamedHeaders: renames,
	}

	want := len(columns)
	for i, record := range records[1:] {
		row := make(table.Row, want)
		switch {
		case len(record) < want:
			for j := range record {
				row[j] = table.NewValue(record[j])
			}
			for j := len(record); j < want; j++ {
				row[j] = table.MissingValue()
			}
			t.RaggedRows = append(t.RaggedRows, i)
			warnings = append(warnings, fmt.Sprintf("row %d had %d fields, expected %d; padded with missing values", i, len(record), want))
		case len(record) > want:
			for j := 0; j < want; j++ {
				row[j] = table.NewValue(record[j])
			}
			t.RaggedRows = append(t.RaggedRows, i)
			warnings = append(warnings, fmt.Sprintf("row %d had %d fields, expected %d; extra fields truncated", i, len(record), want))
		default:
			for j := range record {
				row[j] = table.NewValue(record[j])
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t, warnings, nil
}

// normalizeHeader trims header names, fills blanks with positional names, and
// renames duplicates deterministically: the first occurrence keeps its name,
// the k-th further occurrence gets the suffix _k starting at 2.
func normalizeHeader(header []string) ([]string, []table.HeaderRename) {
	columns := make([]string, 0, len(header))
	renames := []table.HeaderRename{}
	used := make(map[string]bool, len(header))

	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if name == "" {
			renamed := fmt.Sprintf("column_%d", i+1)
			for used[renamed] {
				renamed += "_dup"
			}
			renames = append(renames, table.HeaderRename{Index: i, Original: "", Renamed: renamed})
			name = renamed
		} else if used[name] {
			k := 2
			renamed := fmt.Sprintf("%s_%d", name, k)
			for used[renamed] {
				k++
				renamed = fmt.Sprintf("%s_%d", name, k)
			}
			renames = append(renames, table.HeaderRename{Index: i, Original: name, Renamed: renamed})
			name = renamed
		}
		used[name] = true
		columns = append(columns, name)
	}

	return columns, renames
}
