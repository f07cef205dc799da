// Package config defines the run configuration for cpgannot: defaults,
// validation, XDG directory helpers, and the optional .cpgannot YAML file
// that supplies per-user defaults for chunk size, output format, cache
// directory, and download behavior.
package config
