package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/cpgannot/internal/annotation"
	"github.com/nao1215/cpgannot/internal/config"
	"github.com/nao1215/cpgannot/internal/download"
	"github.com/nao1215/cpgannot/internal/report"
)

// runAnnotate performs one annotation run: read the probe list, resolve
// the annotation table (local file or cached download), left-join, and
// write the result in the configured format.
func runAnnotate(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	startTime := now()

	probeIDs, err := annotation.ReadProbeList(cfg.InputFile)
	if err != nil {
		return err
	}
	if len(probeIDs) == 0 {
		return fmt.Errorf("no valid probe IDs found in %s", cfg.InputFile)
	}
	logger.Debug("probe list read", "path", cfg.InputFile, "probes", len(probeIDs))

	annotator, err := annotation.New(cfg.ArrayTag,
		annotation.WithChunkSize(cfg.ChunkSize),
		annotation.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	// Resolve the annotation table: an explicit local file wins; otherwise
	// fetch the fixed manifest for the array type (reusing the cached copy
	// unless verification is disabled).
	annotationFile := cfg.AnnotationFile
	if annotationFile == "" {
		dl := download.New(cfg.CacheDir,
			download.WithTimeout(cfg.Timeout),
			download.WithSkipExisting(cfg.VerifyDownloads),
			download.WithProgress(!cfg.Quiet),
			download.WithLogger(logger),
		)
		annotationFile, err = dl.Fetch(ctx, annotator.ArrayType())
		if err != nil {
			return err
		}
	}

	result, err := annotator.Annotate(probeIDs, annotationFile)
	if err != nil {
		return err
	}

	if err := writeResult(cfg, result, stdout); err != nil {
		return err
	}

	logger.Info("annotation complete",
		"probes", result.Len(),
		"matched", result.Matched,
		"unmatched", result.Unmatched(),
	)

	if cfg.SummaryFile != "" {
		summary := report.Summary{
			ArrayType:      annotator.ArrayType().String(),
			InputFile:      cfg.InputFile,
			AnnotationFile: annotationFile,
			Probes:         result.Len(),
			Matched:        result.Matched,
			Unmatched:      result.Unmatched(),
			Elapsed:        now().Sub(startTime),
			GeneratedAt:    now(),
		}
		if err := writeSummary(cfg.SummaryFile, summary); err != nil {
			return err
		}
		logger.Info("summary written", "path", cfg.SummaryFile)
	}

	return nil
}

// writeResult serializes the result table to the configured destination
// and format. Without an output file the table goes to stdout.
func writeResult(cfg *config.Config, result *annotation.Result, stdout io.Writer) error {
	output := stdout
	if cfg.OutputFile != "" {
		f, err := createOutputFile(cfg.OutputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		output = f
	}

	var w report.Writer
	if cfg.Format == config.FormatCSV {
		w = report.NewCSVWriter(output)
	} else {
		w = report.NewTSVWriter(output)
	}

	if _, err := w.Write(result); err != nil {
		return fmt.Errorf("failed to write result table: %w", err)
	}
	return nil
}

// writeSummary renders the markdown run summary to path.
func writeSummary(path string, summary report.Summary) error {
	f, err := createOutputFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := report.NewMarkdownWriter(f).WriteSummary(summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// createOutputFile creates (or truncates) path, creating parent
// directories as needed.
func createOutputFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}
