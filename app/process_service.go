package app

import (
	"csvprof/domain/core"
	"csvprof/domain/report"
	"csvprof/domain/table"
	"csvprof/internal"
	"csvprof/internal/assemble"
	"csvprof/internal/infer"
	"csvprof/internal/parser"
	"csvprof/internal/quality"
	"csvprof/internal/stats"
	"csvprof/ports"
)

// ProcessService runs the full profiling pipeline: parse, infer types, analyze
// quality, compute statistics, assemble the report. Each invocation owns its
// data end to end; the service itself holds no per-call state, so concurrent
// calls are independent.
type ProcessService struct {
	store ports.TableStore
	log   *internal.Logger
}

// NewProcessService creates a processing service backed by the given store
func NewProcessService(store ports.TableStore, logger *internal.Logger) *ProcessService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ProcessService{store: store, log: logger}
}

// Process parses and profiles CSV text. Fatal parse errors become a failure
// report with success=false; the error return is reserved for malformed
// options.
func (s *ProcessService) Process(csvText string, opts table.ProcessOptions) (*report.ProcessingReport, core.TableHandle, error) {
	if err := opts.Validate(); err != nil {
		return nil, "", err
	}

	t, warnings, err := parser.Parse(csvText, opts.MaxSizeBytes)
	if err != nil {
		s.log.Warn("parse failed: %v", err)
		return assemble.FailureReport(err), "", nil
	}

	return s.profile(t, warnings, opts)
}

// ProcessRecords runs the pipeline over pre-split records, e.g. rows read
// from a spreadsheet. The structural rules (header handling, ragged rows) are
// identical to the CSV path.
func (s *ProcessService) ProcessRecords(records [][]string, opts table.ProcessOptions) (*report.ProcessingReport, core.TableHandle, error) {
	if err := opts.Validate(); err != nil {
		return nil, "", err
	}

	t, warnings, err := parser.FromRecords(records)
	if err != nil {
		s.log.Warn("parse failed: %v", err)
		return assemble.FailureReport(err), "", nil
	}

	return s.profile(t, warnings, opts)
}

func (s *ProcessService) profile(t *table.ParsedTable, parseWarnings []string, opts table.ProcessOptions) (*report.ProcessingReport, core.TableHandle, error) {
	types := infer.Types(t)
	findings := quality.Analyze(t)
	profiles := stats.Compute(t, types, findings, opts.AdvancedStats)
	rep := assemble.Report(t, types, findings, parseWarnings, opts.PreviewRows)

	handle := s.store.Put(&ports.ProcessingContext{
		Table:    t,
		Types:    types,
		Findings: findings,
		Profiles: profiles,
		Report:   rep,
	})

	s.log.Info("processed table: %d rows, %d columns, handle=%s", t.RowCount(), t.ColumnCount(), handle)
	return rep, handle, nil
}

// Summarize returns the statistics portion for a previously processed table
func (s *ProcessService) Summarize(handle core.TableHandle) (*report.SummaryReport, error) {
	pc, ok := s.store.Get(handle)
	if !ok {
		return nil, core.NewHandleNotFoundError(handle)
	}
	return assemble.Summary(pc.Table, pc.Findings, pc.Profiles), nil
}

// Report returns the stored processing report for a handle
func (s *ProcessService) Report(handle core.TableHandle) (*report.ProcessingReport, error) {
	pc, ok := s.store.Get(handle)
	if !ok {
		return nil, core.NewHandleNotFoundError(handle)
	}
	return pc.Report, nil
}
