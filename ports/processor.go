package ports

import (
	"csvprof/domain/core"
	"csvprof/domain/report"
	"csvprof/domain/table"
)

// ProcessorPort is the processing surface exposed to entry points (CLI, HTTP,
// agent wrappers). Fatal data problems come back inside the report; the error
// return is reserved for caller mistakes (bad options, unknown handle).
type ProcessorPort interface {
	// Process parses and profiles CSV text, stores the processing context, and
	// returns the report with the handle for later summary calls.
	Process(csvText string, opts table.ProcessOptions) (*report.ProcessingReport, core.TableHandle, error)

	// ProcessRecords runs the same pipeline over pre-split records, for
	// sources that are not CSV text (e.g. spreadsheets).
	ProcessRecords(records [][]string, opts table.ProcessOptions) (*report.ProcessingReport, core.TableHandle, error)

	// Summarize returns the statistics portion of a previously processed
	// table without re-parsing.
	Summarize(handle core.TableHandle) (*report.SummaryReport, error)

	// Report returns the stored processing report for a handle.
	Report(handle core.TableHandle) (*report.ProcessingReport, error)
}

// ProcessingContext is everything a processing call derived from one input.
// It is owned by a single call and stored as an opaque unit; nothing in it is
// shared or mutated across invocations.
type ProcessingContext struct {
	Table    *table.ParsedTable
	Types    map[string]table.TypeTag
	Findings table.QualityFindings
	Profiles map[string]*table.ColumnProfile
	Report   *report.ProcessingReport
}

// TableStore keeps processing contexts addressable by opaque handles for the
// summary entry point.
type TableStore interface {
	Put(pc *ProcessingContext) core.TableHandle
	Get(handle core.TableHandle) (*ProcessingContext, bool)
	Delete(handle core.TableHandle)
	Len() int
}
