package table

// TypeTag is the inferred semantic type of a column, computed once by the
// type inferencer and carried through the rest of the pipeline.
type TypeTag string

const (
	TypeInteger     TypeTag = "integer"
	TypeFloat       TypeTag = "float"
	TypeBoolean     TypeTag = "boolean"
	TypeDatetime    TypeTag = "datetime"
	TypeCategorical TypeTag = "categorical_text"
	// TypeEmpty marks a column with zero non-missing values, distinct from
	// categorical text.
	TypeEmpty TypeTag = "empty"
)

// Row is one data row, ordered like ParsedTable.Columns.
type Row []Value

// HeaderRename records a duplicate or blank header that was renamed during parsing
type HeaderRename struct {
	Index    int    `json:"index"`
	Original string `json:"original"`
	Renamed  string `json:"renamed"`
}

// ParsedTable is the structural parse result: unique ordered column names and
// rectangular rows. Rows that arrived ragged were padded or truncated to the
// header width, with their indices recorded. A table is owned by a single
// processing call and never shared across calls.
type ParsedTable struct {
	Columns        []string       `json:"columns"`
	Rows           []Row          `json:"rows"`
	RaggedRows     []int          `json:"ragged_rows"`
	RenamedHeaders []HeaderRename `json:"renamed_headers"`
}

// RowCount returns the number of data rows (header excluded)
func (t *ParsedTable) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of columns after duplicate renaming
func (t *ParsedTable) ColumnCount() int {
	return len(t.Columns)
}

// ColumnIndex returns the position of a column name, or -1 if absent
func (t *ParsedTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// ColumnValues returns all values of the named column in row order
func (t *ParsedTable) ColumnValues(name string) []Value {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values
}

// QualityFindings aggregates structural issues over a parsed table. Every row
// index refers to a data row of the table (0-based, header excluded) and every
// column name exists in the table.
type QualityFindings struct {
	MissingByColumn map[string]int `json:"missing_by_column"`
	DuplicateRows   []int          `json:"duplicate_rows"`
	RaggedRows      []int          `json:"ragged_rows"`
	EmptyColumns    []string       `json:"empty_columns"`
}

// HasIssues reports whether any quality or structural finding is present
func (f QualityFindings) HasIssues() bool {
	if len(f.DuplicateRows) > 0 || len(f.RaggedRows) > 0 || len(f.EmptyColumns) > 0 {
		return true
	}
	for _, n := range f.MissingByColumn {
		if n > 0 {
			return true
		}
	}
	return false
}
