package report

import (
	"csvprof/domain/table"
)

// DataInfo describes the validated table dimensions. The counts always equal
// the dimensions of the parsed table after validation trimming.
type DataInfo struct {
	RowCount    int               `json:"row_count"`
	ColumnCount int               `json:"column_count"`
	Columns     []string          `json:"columns"`
	DataTypes   map[string]string `json:"data_types"`
}

// ProcessingReport is the final artifact of a pipeline run. It is constructed
// once, immutable thereafter, and serializes with stable field names. Success
// is false only when a fatal parse error aborted the pipeline; every other
// issue surfaces in warnings and recommendations.
type ProcessingReport struct {
	Success         bool             `json:"success"`
	DataInfo        DataInfo         `json:"data_info"`
	Preview         []map[string]any `json:"preview"`
	Errors          []string         `json:"errors"`
	Warnings        []string         `json:"warnings"`
	Recommendations []string         `json:"recommendations"`
	Message         string           `json:"message"`
}

// NewReport returns an empty report with all collections initialized so they
// serialize as [] rather than null.
func NewReport() *ProcessingReport {
	return &ProcessingReport{
		DataInfo: DataInfo{
			Columns:   []string{},
			DataTypes: map[string]string{},
		},
		Preview:         []map[string]any{},
		Errors:          []string{},
		Warnings:        []string{},
		Recommendations: []string{},
	}
}

// DataQuality is the quality section of a summary report
type DataQuality struct {
	MissingValues map[string]int `json:"missing_values"`
	DuplicateRows int            `json:"duplicate_rows"`
	RaggedRows    int            `json:"ragged_rows"`
	EmptyColumns  []string       `json:"empty_columns"`
}

// SummaryReport is the statistics portion of a previously processed table,
// served from a stored processing context without re-parsing.
type SummaryReport struct {
	Success            bool                             `json:"success"`
	NumericSummary     map[string]*table.NumericSummary `json:"numeric_summary"`
	CategoricalSummary map[string][]table.ValueCount    `json:"categorical_summary"`
	DataQuality        DataQuality                      `json:"data_quality"`
	Recommendations    []string                         `json:"recommendations"`
	Message            string                           `json:"message"`
}
