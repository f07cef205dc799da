package config

import "errors"

// Configuration validation errors returned by Config.Validate().
//
// Design decision: package-level sentinel errors rather than error values
// created inside Validate(). Callers can use errors.Is() for programmatic
// handling while the messages stay human-readable. errors.New() suffices
// because none of these carries dynamic values.
var (
	// ErrNoInputFile is returned when no probe ID input file is specified.
	ErrNoInputFile = errors.New("no input file specified: provide a newline-delimited probe ID list")

	// ErrInvalidChunkSize is returned when the chunk size is not positive.
	// A zero or negative chunk size would make slice partitioning undefined.
	ErrInvalidChunkSize = errors.New("invalid chunk size: must be positive")

	// ErrInvalidFormat is returned when the output format is neither
	// "tsv" nor "csv".
	ErrInvalidFormat = errors.New(`invalid output format: must be "tsv" or "csv"`)

	// ErrConflictingVerbosity is returned when both --verbose and --quiet
	// are specified. Only one verbosity mode can be active.
	ErrConflictingVerbosity = errors.New("conflicting verbosity: --verbose and --quiet cannot be used together")

	// ErrInvalidTimeout is returned when the download timeout is not
	// positive. A zero timeout would fail every transfer immediately.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")
)
