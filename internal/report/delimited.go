package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/nao1215/cpgannot/internal/annotation"
)

// DelimitedWriter writes the result table as delimited text with a header
// row. Unmatched annotation cells serialize as empty fields, the null
// representation shared with the manifests themselves.
type DelimitedWriter struct {
	baseWriter

	// comma is the field delimiter, '\t' for TSV or ',' for CSV.
	comma rune
}

// NewTSVWriter creates a DelimitedWriter producing tab-separated output.
func NewTSVWriter(output io.Writer) *DelimitedWriter {
	return &DelimitedWriter{baseWriter: newBaseWriter(output), comma: '\t'}
}

// NewCSVWriter creates a DelimitedWriter producing comma-separated output.
func NewCSVWriter(output io.Writer) *DelimitedWriter {
	return &DelimitedWriter{baseWriter: newBaseWriter(output), comma: ','}
}

// Write serializes the result table: header first, then one line per
// input probe in result order.
func (w *DelimitedWriter) Write(result *annotation.Result) (int, error) {
	cw := &countingWriter{w: w.output}
	enc := csv.NewWriter(cw)
	enc.Comma = w.comma

	if err := enc.Write(result.Columns); err != nil {
		return cw.n, fmt.Errorf("failed to write result header: %w", err)
	}
	for _, row := range result.Rows {
		if err := enc.Write(row); err != nil {
			return cw.n, fmt.Errorf("failed to write result row: %w", err)
		}
	}

	enc.Flush()
	if err := enc.Error(); err != nil {
		return cw.n, fmt.Errorf("failed to flush result table: %w", err)
	}
	return cw.n, nil
}
