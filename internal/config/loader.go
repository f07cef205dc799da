package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".cpgannot"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .cpgannot configuration file.
// Every field is optional; unset fields leave the built-in defaults in
// place, and explicit CLI flags always win over file values.
type File struct {
	// ChunkSize overrides the default join chunk size.
	ChunkSize int `yaml:"chunk_size,omitempty"`

	// Format overrides the default output format ("tsv" or "csv").
	Format string `yaml:"format,omitempty"`

	// CacheDir overrides the default download cache directory.
	CacheDir string `yaml:"cache_dir,omitempty"`

	// VerifyDownloads overrides download verification. A pointer
	// distinguishes "unset" from an explicit false.
	VerifyDownloads *bool `yaml:"verify_downloads,omitempty"`

	// Timeout overrides the download timeout, e.g. "5m" or "90s".
	Timeout Duration `yaml:"timeout,omitempty"`
}

// Duration wraps time.Duration so YAML values can be written in the
// familiar "5m" / "90s" notation; yaml.v3 only handles integer
// nanoseconds for time.Duration out of the box.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// LoadConfigFile loads run defaults from a YAML file. If the file does not
// exist it returns ErrConfigNotFound; callers decide whether that is fatal
// based on whether the path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .cpgannot in the current directory
// 3. Look for .cpgannot in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// Apply copies the file's set values onto cfg. Zero values in the file are
// treated as unset so the built-in defaults survive a sparse config file.
func (cf *File) Apply(cfg *Config) {
	if cf.ChunkSize > 0 {
		cfg.ChunkSize = cf.ChunkSize
	}
	if cf.Format != "" {
		cfg.Format = cf.Format
	}
	if cf.CacheDir != "" {
		cfg.CacheDir = cf.CacheDir
	}
	if cf.VerifyDownloads != nil {
		cfg.VerifyDownloads = *cf.VerifyDownloads
	}
	if cf.Timeout > 0 {
		cfg.Timeout = time.Duration(cf.Timeout)
	}
}
