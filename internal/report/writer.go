package report

import (
	"io"

	"github.com/nao1215/cpgannot/internal/annotation"
)

// Writer serializes an annotation result to a configured destination.
//
// Design decision: an interface rather than free functions so the command
// layer can pick a format once and treat files, stdout, and test buffers
// uniformly. Write reports the number of bytes written, matching the
// io-adjacent convention the rest of the codebase follows.
type Writer interface {
	// Write serializes the result. Returns the number of bytes written
	// and any error encountered.
	Write(result *annotation.Result) (int, error)
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// countingWriter wraps an io.Writer and counts bytes written through it.
// encoding/csv does not report byte counts, so the delimited writers wrap
// their destination in one of these.
type countingWriter struct {
	w io.Writer
	n int
}

// Write implements io.Writer.
func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += n
	return n, err
}
