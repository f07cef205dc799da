package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/cpgannot/internal/config"
	"github.com/nao1215/cpgannot/internal/log"
)

// NewRootCmd creates the root command for cpgannot. The root command
// itself performs the annotation run; version information is available
// via the version subcommand or --version.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cpgannot <input_file> <array_type>",
		Short: "Annotate CpG probes with genomic location and gene metadata",
		Long: `cpgannot annotates CpG probe identifiers from DNA methylation microarrays
with genomic location and gene metadata.

It left-joins a newline-delimited probe ID list against the annotation
manifest for the given array type (EPICv1, EPICv2, or MSA). The manifest is
downloaded from the fixed Infinium annotation source and cached, or read
from a local file with --annotation_file. Every input probe produces exactly
one output row, in input order; probes absent from the manifest keep empty
annotation columns.

Examples:
  # Annotate against the EPICv2 manifest (downloaded and cached)
  cpgannot probes.txt EPICv2

  # Use a local annotation table and write CSV
  cpgannot probes.txt MSA --annotation_file msa.tsv --output_file out.csv --format csv

  # Large lists: join in slices of 50000
  cpgannot probes.txt EPICv1 --chunk-size 50000 --output_file annotated.tsv

Configuration file (.cpgannot) example:
  chunk_size: 50000
  format: csv
  cache_dir: /data/annotation-cache
  verify_downloads: true
  timeout: 5m`,
		Args:          cobra.ExactArgs(2),
		RunE:          runRootCmd,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output except errors")

	// Input/output flags. Underscore flag names match the interface
	// existing pipelines already call this tool with.
	cmd.Flags().String("annotation_file", "",
		"Path to a local annotation table (skips the manifest download)")
	cmd.Flags().String("output_file", "",
		"Write the annotated table to this path (default: stdout)")
	cmd.Flags().String("format", config.DefaultFormat,
		"Output format for the annotated table (tsv or csv)")
	cmd.Flags().String("summary_file", "",
		"Write a markdown run summary to this path")

	// Processing flags
	cmd.Flags().Int("chunk-size", config.DefaultChunkSize,
		"Join the probe list in contiguous slices of this size")
	cmd.Flags().Bool("no-verify", false,
		"Ignore a cached manifest and re-download unconditionally")
	cmd.Flags().String("output-dir", "",
		"Cache directory for downloaded manifests (default: XDG cache dir)")
	cmd.Flags().Duration("timeout", config.DefaultTimeout,
		"Timeout for the manifest download")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .cpgannot in current or home directory)")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// runRootCmd executes the annotation run.
func runRootCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose, cfg.Quiet)
	slog.SetDefault(logger)

	// Set up context with signal handling so a download in flight can be
	// cancelled with Ctrl-C.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runAnnotate(ctx, cfg, logger, cmd.OutOrStdout())
}

// buildConfig creates a Config from the config file and cobra flags.
// File values override the built-in defaults; explicitly set flags
// override the file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.InputFile = args[0]
	cfg.ArrayTag = args[1]

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Apply config-file defaults before flag overrides. An explicitly
	// specified config file must exist; the implicit search may come up
	// empty without error.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("chunk-size") {
		cfg.ChunkSize, err = cmd.Flags().GetInt("chunk-size")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("format") {
		cfg.Format, err = cmd.Flags().GetString("format")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("output-dir") {
		cfg.CacheDir, err = cmd.Flags().GetString("output-dir")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}

	noVerify, err := cmd.Flags().GetBool("no-verify")
	if err != nil {
		return nil, err
	}
	if noVerify {
		cfg.VerifyDownloads = false
	}

	cfg.AnnotationFile, err = cmd.Flags().GetString("annotation_file")
	if err != nil {
		return nil, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output_file")
	if err != nil {
		return nil, err
	}

	cfg.SummaryFile, err = cmd.Flags().GetString("summary_file")
	if err != nil {
		return nil, err
	}

	cfg.Verbose, err = cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	cfg.Quiet, err = cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// now is the clock used for run summaries; tests may substitute it.
var now = time.Now
