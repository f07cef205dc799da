package annotation

import (
	"log/slog"
)

// DefaultChunkSize is the probe-list length above which the join is
// performed in contiguous slices. Matches the manifest scale: the largest
// supported array (EPICv2) has roughly 900k probes, so a typical whole-array
// query runs in a handful of chunks.
const DefaultChunkSize = 100000

// Annotator joins probe ID lists against an annotation table for one
// array type. The array type is fixed at construction; the table can be
// loaded (and reloaded, replacing the previous one) at any time before
// Annotate is called.
//
// Design decision: the Annotator holds values rather than a *config.Config
// so the package stays independent of the CLI configuration layer. The
// command layer translates its Config into options here.
type Annotator struct {
	// arrayType selects the fixed annotation source.
	arrayType ArrayType

	// table is the currently loaded annotation table, nil until LoadTable
	// succeeds. Replaced wholesale on each load.
	table *Table

	// chunkSize is the maximum slice length joined in one pass.
	chunkSize int

	// logger receives progress messages. Never nil.
	logger *slog.Logger
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithChunkSize sets the probe-list length above which the join runs in
// contiguous slices. Non-positive values are ignored and the default kept.
func WithChunkSize(n int) Option {
	return func(a *Annotator) {
		if n > 0 {
			a.chunkSize = n
		}
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Annotator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an Annotator for the given array-type tag. The tag is
// matched case-insensitively against the three supported array types;
// anything else fails with *UnsupportedArrayTypeError before any I/O.
func New(arrayTag string, opts ...Option) (*Annotator, error) {
	at, err := ParseArrayType(arrayTag)
	if err != nil {
		return nil, err
	}

	a := &Annotator{
		arrayType: at,
		chunkSize: DefaultChunkSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// ArrayType returns the array type this annotator was constructed for.
func (a *Annotator) ArrayType() ArrayType {
	return a.arrayType
}

// Table returns the currently loaded annotation table, or nil.
func (a *Annotator) Table() *Table {
	return a.table
}

// LoadTable parses and validates the annotation table at path, replacing
// any previously loaded table. Validation fails with *SchemaError when
// required columns are missing.
func (a *Annotator) LoadTable(path string) error {
	t, err := ReadTable(path)
	if err != nil {
		return err
	}

	a.logger.Debug("annotation table loaded",
		"path", path,
		"probes", t.Len(),
		"columns", len(t.Columns()),
	)
	a.table = t
	return nil
}

// Result is the outcome of a join: one row per input probe ID, in input
// order. Columns starts with Probe_ID followed by the remaining annotation
// columns in table order. Unmatched probes carry empty strings for every
// annotation column (the null representation in the serialized output).
type Result struct {
	// Columns is the result header: Probe_ID, then annotation columns.
	Columns []string

	// Rows holds one row per input probe ID, aligned with Columns.
	Rows [][]string

	// Matched counts the input probes found in the annotation table.
	Matched int
}

// Len returns the number of result rows, which always equals the input
// list length.
func (r *Result) Len() int {
	return len(r.Rows)
}

// Unmatched counts the input probes absent from the annotation table.
func (r *Result) Unmatched() int {
	return len(r.Rows) - r.Matched
}

// Annotate left-joins the probe ID list against the loaded annotation
// table. If annotationFile is non-empty the table is (re)loaded from it
// first. Lists longer than the chunk size are joined in contiguous slices
// and concatenated in slice order; the output is identical to a single
// join either way. Every input ID produces exactly one result row, in
// input order, whether or not it matched.
func (a *Annotator) Annotate(probeIDs []string, annotationFile string) (*Result, error) {
	if len(probeIDs) == 0 {
		return nil, ErrEmptyInput
	}

	if annotationFile != "" {
		if err := a.LoadTable(annotationFile); err != nil {
			return nil, err
		}
	}
	if a.table == nil {
		return nil, ErrNoAnnotation
	}

	res := &Result{
		Columns: append([]string{KeyColumn}, a.table.annotationColumns()...),
		Rows:    make([][]string, 0, len(probeIDs)),
	}

	if len(probeIDs) > a.chunkSize {
		a.logger.Info("annotating in chunks",
			"probes", len(probeIDs),
			"chunkSize", a.chunkSize,
		)
		for start := 0; start < len(probeIDs); start += a.chunkSize {
			end := min(start+a.chunkSize, len(probeIDs))
			a.joinChunk(res, probeIDs[start:end])
		}
	} else {
		a.joinChunk(res, probeIDs)
	}

	return res, nil
}

// joinChunk left-joins one slice of probe IDs against the full table and
// appends the rows to res.
func (a *Annotator) joinChunk(res *Result, probeIDs []string) {
	width := len(res.Columns)
	for _, id := range probeIDs {
		out := make([]string, width)
		out[0] = id
		if row, ok := a.table.Lookup(id); ok {
			copy(out[1:], a.table.annotationValues(row))
			res.Matched++
		}
		res.Rows = append(res.Rows, out)
	}
}
