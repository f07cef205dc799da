package annotation

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// KeyColumn is the join key shared by the probe list and every annotation
// manifest.
const KeyColumn = "Probe_ID"

// RequiredColumns are the columns every annotation table must carry.
// Additional columns (gene names, strand, design type, ...) are carried
// through the join untouched.
var RequiredColumns = []string{KeyColumn, "CpG_chrm", "CpG_beg", "CpG_end"}

// Table is an in-memory annotation table keyed by Probe_ID. It is built
// once by ReadTable and immutable afterwards; the Annotator replaces it
// wholesale on each load.
//
// Design decision: rows are stored in a map keyed by probe ID rather than
// as an ordered slice because the only read path is point lookups during
// the left join. When the source file repeats a probe ID the first
// occurrence wins, which keeps the one-result-row-per-input-ID invariant
// that a multi-match join would break.
type Table struct {
	// columns is the header row, in file order.
	columns []string

	// keyIdx is the position of the Probe_ID column within columns.
	keyIdx int

	// rows maps a probe ID to its full row (including the key cell),
	// padded to len(columns).
	rows map[string][]string
}

// ReadTable parses a tab-separated annotation table with a header row.
// Paths ending in ".gz" are transparently gunzipped, which covers the
// downloaded manifests. The header is validated against RequiredColumns
// before any data row is read; missing columns fail with *SchemaError.
// Cell values are not validated.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided annotation path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open annotation file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress annotation file %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	return readTable(r, path)
}

// readTable parses an annotation table from r. The path argument is only
// used in error messages.
func readTable(r io.Reader, path string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	// Manifest fields are not quoted; treat quotes as ordinary bytes so
	// stray quote characters in gene annotations do not break parsing.
	cr.LazyQuotes = true
	// Manifests occasionally omit trailing fields; rows are padded to the
	// header length below instead of being rejected.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &SchemaError{Path: path, Missing: slices.Clone(RequiredColumns)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read annotation header: %w", err)
	}

	if missing := missingColumns(header); len(missing) > 0 {
		return nil, &SchemaError{Path: path, Missing: missing}
	}

	keyIdx := slices.Index(header, KeyColumn)
	t := &Table{
		columns: slices.Clone(header),
		keyIdx:  keyIdx,
		rows:    make(map[string][]string),
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read annotation row: %w", err)
		}

		if len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		} else if len(row) > len(header) {
			row = row[:len(header)]
		}

		key := row[keyIdx]
		if key == "" {
			continue
		}
		// First occurrence wins for duplicate probe IDs.
		if _, ok := t.rows[key]; ok {
			continue
		}
		t.rows[key] = row
	}

	return t, nil
}

// missingColumns returns the required columns absent from header, in
// RequiredColumns order.
func missingColumns(header []string) []string {
	var missing []string
	for _, col := range RequiredColumns {
		if !slices.Contains(header, col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// Columns returns the header row in file order. The slice is a copy.
func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

// Len returns the number of distinct probe IDs in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// Lookup returns the row for the given probe ID, or ok=false when the
// table has no entry. Matching is exact string equality.
func (t *Table) Lookup(probeID string) ([]string, bool) {
	row, ok := t.rows[probeID]
	return row, ok
}

// annotationColumns returns the header without the key column, preserving
// file order. These are the columns a join attaches after Probe_ID.
func (t *Table) annotationColumns() []string {
	cols := make([]string, 0, len(t.columns)-1)
	for i, col := range t.columns {
		if i == t.keyIdx {
			continue
		}
		cols = append(cols, col)
	}
	return cols
}

// annotationValues returns row without the key cell, aligned with
// annotationColumns.
func (t *Table) annotationValues(row []string) []string {
	vals := make([]string, 0, len(row)-1)
	for i, v := range row {
		if i == t.keyIdx {
			continue
		}
		vals = append(vals, v)
	}
	return vals
}
