// Package excel reads spreadsheet sources into the raw records the profiling
// pipeline consumes, so .xlsx inputs get the exact same structural checks and
// statistics as CSV text.
package excel

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"csvprof/domain/core"
)

// Reader reads the first sheet of an .xlsx workbook
type Reader struct {
	filePath string
}

// NewReader creates a reader for the given workbook path
func NewReader(filePath string) *Reader {
	return &Reader{filePath: filePath}
}

// ReadRecords returns the first sheet as raw string records, header row first.
// maxSizeBytes bounds the total decoded cell text, mirroring the CSV size
// check.
func (r *Reader) ReadRecords(maxSizeBytes int) ([][]string, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("workbook not found: %s", r.filePath)
	}

	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	total := 0
	for _, row := range rows {
		for _, cell := range row {
			total += len(cell)
		}
	}
	if total > maxSizeBytes {
		return nil, core.NewSizeLimitError(total, maxSizeBytes)
	}

	// GetRows drops trailing empty cells, so a rectangular sheet with blanks
	// in its last columns would come back ragged. Restore the header width;
	// the blanks become missing values downstream.
	if len(rows) > 0 {
		width := len(rows[0])
		for i := range rows {
			for len(rows[i]) < width {
				rows[i] = append(rows[i], "")
			}
		}
	}

	return rows, nil
}
