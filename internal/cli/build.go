package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jrh-151/simplesig/internal/checksum"
	"github.com/jrh-151/simplesig/internal/config"
	"github.com/jrh-151/simplesig/internal/export"
	"github.com/jrh-151/simplesig/internal/files/scanner"
	"github.com/jrh-151/simplesig/internal/logging"
	"github.com/jrh-151/simplesig/internal/ui"
	"github.com/jrh-151/simplesig/pkg/simplesig"
)

// timestampedFileFormat is the layout for timestamped output file names.
// No colons, so the name is valid on every platform.
const timestampedFileFormat = "20060102T150405Z"

var buildCmd = &cobra.Command{
	Use:   "build [input-dir]",
	Short: "Build a simplified signature file from PRONOM reports",
	Long: `Build scans a directory of PRONOM format report XML files and writes one
simplified signature file.

The build command:
1. Discovers every .xml report under the input directory
2. Parses each report and normalizes its byte signatures
3. Resolves priority relations between formats, dropping broken references
4. Writes the aggregated signature file atomically

A report that cannot be parsed is excluded and reported at the end of the
run; the remaining reports still produce a signature file.

Arguments:
  input-dir    Directory containing PRONOM report XML files
               (default: ./pronom, or $` + simplesig.EnvInputDir + `)

Configuration precedence (highest first):
  1. Command-line flags
  2. simplesig.yaml in the input directory
  3. Environment variables ($` + simplesig.EnvInputDir + `, $` + simplesig.EnvOutputFile + `), .env honoured
  4. Built-in defaults

Examples:
  # Build from ./pronom into ./simple-signature-file.yaml
  simplesig build

  # Build from an explicit directory into an explicit file
  simplesig build ./exports -o dist/signatures.yaml

  # Embed the generation time and timestamp the default file name
  simplesig build -t

  # Overwrite an existing output file without prompting
  simplesig build --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

type buildFlagValues struct {
	output    string
	timestamp bool
	force     bool
}

var buildFlags buildFlagValues

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildFlags.output, "output", "o", "",
		"Signature file destination\n"+
			"Precedence: --output > simplesig.yaml > $"+simplesig.EnvOutputFile+" > "+simplesig.DefaultOutputFile)
	buildCmd.Flags().BoolVarP(&buildFlags.timestamp, "timestamp", "t", false,
		"Embed the generation time in the output header.\n"+
			"Without an explicit --output the file name is timestamped too.\n"+
			"Omitting this keeps output byte-identical across runs on unchanged input.")
	buildCmd.Flags().BoolVar(&buildFlags.force, "force", false,
		"Overwrite an existing output file after a short countdown instead of prompting\n"+
			"Use for CI/CD pipelines")

	buildCmd.ValidArgsFunction = completeInputDir
}

// buildRunConfig resolves the effective configuration from flags, the
// optional simplesig.yaml in the input directory, environment variables
// and built-in defaults.
func buildRunConfig(cmd *cobra.Command, args []string, verbose bool) (simplesig.BuildConfig, error) {
	_ = godotenv.Load()

	inputDir := simplesig.DefaultInputDir
	if env := os.Getenv(simplesig.EnvInputDir); env != "" {
		inputDir = env
	}
	if len(args) > 0 {
		inputDir = args[0]
	}

	projectCfg, err := config.Load(inputDir)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return simplesig.BuildConfig{}, fmt.Errorf("%w: %v", simplesig.ErrInvalidConfig, err)
	}

	timestamp := buildFlags.timestamp
	if !cmd.Flags().Changed("timestamp") && projectCfg != nil {
		timestamp = projectCfg.Timestamp
	}

	// Resolve the generation time once so the header's Created line and a
	// timestamped file name carry the same instant.
	var generatedAt time.Time
	if timestamp {
		generatedAt = time.Now().UTC()
	}

	outputPath, outputExplicit := resolveOutputPath(cmd, projectCfg)
	if timestamp && !outputExplicit {
		outputPath = timestampedOutputPath(generatedAt)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Configuration resolved:\n")
		fmt.Fprintf(os.Stderr, "  Input Directory: %s\n", inputDir)
		fmt.Fprintf(os.Stderr, "  Output File: %s\n", outputPath)
		fmt.Fprintf(os.Stderr, "  Timestamp: %v\n", timestamp)
		fmt.Fprintf(os.Stderr, "  Force: %v\n", buildFlags.force)
	}

	return simplesig.BuildConfig{
		InputDir:    inputDir,
		OutputPath:  outputPath,
		Timestamp:   timestamp,
		GeneratedAt: generatedAt,
		Force:       buildFlags.force,
		Verbose:     verbose,
	}, nil
}

// resolveOutputPath picks the output destination and reports whether it
// was set explicitly rather than defaulted.
func resolveOutputPath(cmd *cobra.Command, projectCfg *config.ProjectConfig) (path string, explicit bool) {
	if cmd.Flags().Changed("output") && buildFlags.output != "" {
		return buildFlags.output, true
	}
	if projectCfg != nil && projectCfg.Output != "" {
		return projectCfg.Output, true
	}
	if env := os.Getenv(simplesig.EnvOutputFile); env != "" {
		return env, true
	}
	return simplesig.DefaultOutputFile, false
}

// timestampedOutputPath derives the default output name carrying the
// generation time, e.g. simple-signature-file-20240301T123000Z.yaml.
func timestampedOutputPath(now time.Time) string {
	base := strings.TrimSuffix(simplesig.DefaultOutputFile, ".yaml")
	return fmt.Sprintf("%s-%s.yaml", base, now.Format(timestampedFileFormat))
}

func runBuild(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := buildRunConfig(cmd, args, verbose)
	if err != nil {
		return err
	}

	// Select approver implementation based on --force flag
	var approver simplesig.Approver
	if cfg.Force {
		approver = ui.NewForcedApprover(verbose)
	} else {
		approver = ui.NewInteractiveApprover(verbose)
	}
	logger := logging.NewConsoleLogger(verbose)
	reportScanner := scanner.NewScanner(checksum.New())

	service := export.NewService(reportScanner, approver, logger, version)

	// Handle interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling build...")
		cancel()
	}()

	summary, report, err := service.Run(ctx, cfg)
	printRunReport(logger, report)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	printSummary(logger, summary)
	return nil
}

// printRunReport prints the accumulated record failures and reference
// warnings. Shown even when the run aborted, so partial diagnostics are
// not lost.
func printRunReport(logger simplesig.Logger, report *simplesig.RunReport) {
	for _, failure := range report.Failures {
		logger.Error("Report excluded: %s", failure)
	}
	for _, warning := range report.Warnings {
		logger.Info("Warning: %s", warning)
	}
}

func printSummary(logger simplesig.Logger, summary export.Summary) {
	logger.Info("")
	logger.Info("Reports scanned:  %d", summary.ReportsScanned)
	logger.Info("Formats written:  %d", summary.Formats)
	if summary.RecordsFailed > 0 {
		logger.Info("Reports excluded: %d", summary.RecordsFailed)
	}
	logger.Info("Fingerprint:      %s", summary.Fingerprint)
	logger.Info("Output:           %s", summary.OutputPath)
}
