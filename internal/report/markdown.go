package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
)

// Summary describes one annotation run for the markdown run report.
// It is assembled by the command layer after a successful join.
type Summary struct {
	// ArrayType is the canonical array-type tag for the run.
	ArrayType string

	// InputFile is the probe list that was annotated.
	InputFile string

	// AnnotationFile is the annotation table the join ran against
	// (local path or downloaded manifest path).
	AnnotationFile string

	// Probes is the number of input probe IDs.
	Probes int

	// Matched is the number of probes found in the annotation table.
	Matched int

	// Unmatched is the number of probes with no table entry.
	Unmatched int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// GeneratedAt is when the summary was produced.
	GeneratedAt time.Time
}

// MarkdownWriter outputs a run summary in GitHub-flavored markdown.
// The table itself goes through a DelimitedWriter; this report is for
// sharing what a run did, not the data.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// WriteSummary renders the run summary.
func (w *MarkdownWriter) WriteSummary(s Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("CpG Annotation Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Array Type", s.ArrayType},
			{"Input File", "`" + s.InputFile + "`"},
			{"Annotation File", "`" + s.AnnotationFile + "`"},
			{"Run Date", s.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Elapsed", s.Elapsed.Round(time.Millisecond).String()},
		},
	})
	md.PlainText("")

	md.H2("Probes")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Annotated", strconv.Itoa(s.Probes)},
			{"Matched", strconv.Itoa(s.Matched)},
			{"Unmatched", strconv.Itoa(s.Unmatched)},
		},
	})

	return len(md.String()), md.Build()
}
