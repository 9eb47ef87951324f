package table

import (
	"fmt"

	"csvprof/domain/core"
)

// Default processing limits, overridable via configuration.
const (
	DefaultMaxSizeMB   = 10
	DefaultPreviewRows = 5
)

// ProcessOptions are the limits a caller passes into a processing call. The
// core never reads the environment itself; entry points resolve defaults and
// hand plain values in.
type ProcessOptions struct {
	MaxSizeBytes  int  `json:"max_size_bytes"`
	PreviewRows   int  `json:"preview_row_count"`
	AdvancedStats bool `json:"advanced_stats"`
}

// DefaultOptions returns the built-in limits: 10 MB, 5 preview rows, advanced
// stats enabled.
func DefaultOptions() ProcessOptions {
	return ProcessOptions{
		MaxSizeBytes:  DefaultMaxSizeMB * 1024 * 1024,
		PreviewRows:   DefaultPreviewRows,
		AdvancedStats: true,
	}
}

// Validate fails fast on malformed configuration, distinct from data-quality
// errors which always surface inside a report.
func (o ProcessOptions) Validate() error {
	if o.MaxSizeBytes <= 0 {
		return fmt.Errorf("%w: max_size_bytes must be positive, got %d", core.ErrInvalidOptions, o.MaxSizeBytes)
	}
	if o.PreviewRows < 0 {
		return fmt.Errorf("%w: preview_row_count must not be negative, got %d", core.ErrInvalidOptions, o.PreviewRows)
	}
	return nil
}
