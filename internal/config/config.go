package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values. These mirror the scale of the supported
// manifests: the largest (EPICv2) carries roughly 900k probes, so the
// default chunk size keeps a whole-array query to a handful of join passes.
const (
	// DefaultChunkSize is the probe-list length above which the join runs
	// in contiguous slices. Chunking bounds the working set per pass
	// without changing the result.
	DefaultChunkSize = 100000

	// DefaultFormat is the serialization format for the result table.
	DefaultFormat = FormatTSV

	// DefaultTimeout bounds one manifest download. Manifests are tens of
	// megabytes compressed, so this is generous for slow links while
	// still failing a stalled transfer.
	DefaultTimeout = 10 * time.Minute

	// AppName is the application name used for XDG directory paths.
	AppName = "cpgannot"
)

// Output formats for the result table.
const (
	// FormatTSV writes tab-separated output.
	FormatTSV = "tsv"

	// FormatCSV writes comma-separated output.
	FormatCSV = "csv"
)

// Config holds all options for one annotation run. It is populated once
// from CLI flags (and the optional config file) and passed through the
// application via dependency injection; nothing mutates it afterwards.
//
// Design decision: a single flat struct rather than nested sub-structs.
// The option count is small, and per-concern sub-structs would add
// indirection without behavior.
type Config struct {
	// InputFile is the newline-delimited probe ID list to annotate.
	// Required; blank lines in the file are ignored.
	InputFile string

	// ArrayTag is the user-supplied array-type tag (EPICv1, EPICv2, or
	// MSA, case-insensitive). Validated by the annotation package at
	// annotator construction.
	ArrayTag string

	// AnnotationFile is an optional local annotation table. When set, no
	// download is performed and the table is loaded from this path.
	AnnotationFile string

	// OutputFile is where the result table is written. When empty, the
	// result goes to stdout.
	OutputFile string

	// SummaryFile is an optional markdown run-summary destination.
	SummaryFile string

	// Format is the result serialization format, FormatTSV or FormatCSV.
	Format string

	// ChunkSize is the probe-list length above which the join runs in
	// contiguous slices. Must be positive.
	ChunkSize int

	// CacheDir is the directory for downloaded annotation manifests.
	// Defaults to the XDG cache directory for cpgannot.
	CacheDir string

	// VerifyDownloads reuses an already-downloaded manifest when the
	// cached file exists. When false, the manifest is re-downloaded
	// unconditionally.
	VerifyDownloads bool

	// Timeout bounds one manifest download.
	Timeout time.Duration

	// Verbose enables slog.LevelDebug output.
	Verbose bool

	// Quiet suppresses everything below slog.LevelError and the download
	// progress bar. Mutually exclusive with Verbose.
	Quiet bool

	// ConfigFilePath is an explicit config file path. When empty, the
	// loader searches for .cpgannot in the current directory and then in
	// the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a Config with default values. Defaults live in a
// constructor rather than in zero values because several of them are
// non-zero (chunk size, timeout, download verification).
func NewConfig() *Config {
	return &Config{
		Format:          DefaultFormat,
		ChunkSize:       DefaultChunkSize,
		CacheDir:        XDGCacheDir(),
		VerifyDownloads: true,
		Timeout:         DefaultTimeout,
	}
}

// XDGCacheDir returns the XDG cache directory for cpgannot.
// On Linux: ~/.cache/cpgannot
// On macOS: ~/Library/Caches/cpgannot
// On Windows: %LOCALAPPDATA%\cpgannot\cache
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// XDGConfigDir returns the XDG config directory for cpgannot.
// On Linux: ~/.config/cpgannot
// On macOS: ~/Library/Application Support/cpgannot
// On Windows: %APPDATA%\cpgannot
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns the first error found.
// It runs once after CLI parsing, before any I/O, so invalid runs fail
// fast with a specific message.
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return ErrNoInputFile
	}

	if c.ChunkSize <= 0 {
		return ErrInvalidChunkSize
	}

	if c.Format != FormatTSV && c.Format != FormatCSV {
		return ErrInvalidFormat
	}

	if c.Verbose && c.Quiet {
		return ErrConflictingVerbosity
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	return nil
}
