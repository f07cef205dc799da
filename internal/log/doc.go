// Package log constructs the structured logger used throughout cpgannot.
// It maps the --verbose and --quiet CLI flags onto slog levels.
package log
