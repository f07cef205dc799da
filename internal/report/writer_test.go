package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/cpgannot/internal/annotation"
)

// testResult returns a small result table with one matched and one
// unmatched probe.
func testResult() *annotation.Result {
	return &annotation.Result{
		Columns: []string{"Probe_ID", "CpG_chrm", "CpG_beg", "CpG_end"},
		Rows: [][]string{
			{"cg00000029", "chr16", "53434200", "53434201"},
			{"cg00000108", "", "", ""},
		},
		Matched: 1,
	}
}

// TestDelimitedWriter tests TSV and CSV serialization of result tables.
func TestDelimitedWriter(t *testing.T) {
	t.Parallel()

	t.Run("tsv output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewTSVWriter(&buf).Write(testResult())
		if err != nil {
			t.Fatalf("Write returned error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, buffer holds %d", n, buf.Len())
		}

		want := "Probe_ID\tCpG_chrm\tCpG_beg\tCpG_end\n" +
			"cg00000029\tchr16\t53434200\t53434201\n" +
			"cg00000108\t\t\t\n"
		if buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	})

	t.Run("csv output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewCSVWriter(&buf).Write(testResult()); err != nil {
			t.Fatalf("Write returned error: %v", err)
		}

		want := "Probe_ID,CpG_chrm,CpG_beg,CpG_end\n" +
			"cg00000029,chr16,53434200,53434201\n" +
			"cg00000108,,,\n"
		if buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	})

	t.Run("header only for zero rows", func(t *testing.T) {
		t.Parallel()

		res := &annotation.Result{Columns: []string{"Probe_ID", "CpG_chrm"}}
		var buf bytes.Buffer
		if _, err := NewTSVWriter(&buf).Write(res); err != nil {
			t.Fatalf("Write returned error: %v", err)
		}
		if buf.String() != "Probe_ID\tCpG_chrm\n" {
			t.Errorf("output = %q, want header only", buf.String())
		}
	})
}

// TestMarkdownWriter tests the run-summary report.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	summary := Summary{
		ArrayType:      "EPICV2",
		InputFile:      "probes.txt",
		AnnotationFile: "epicv2_annotation.tsv.gz",
		Probes:         2,
		Matched:        1,
		Unmatched:      1,
		Elapsed:        1500 * time.Millisecond,
		GeneratedAt:    time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
	}

	n, err := NewMarkdownWriter(&buf).WriteSummary(summary)
	if err != nil {
		t.Fatalf("WriteSummary returned error: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero byte count")
	}

	out := buf.String()
	for _, want := range []string{
		"# CpG Annotation Summary",
		"EPICV2",
		"probes.txt",
		"epicv2_annotation.tsv.gz",
		"Annotated",
		"Matched",
		"Unmatched",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}
