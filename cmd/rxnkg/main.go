// Package main provides the rxnkg binary entry point.
// Rxnkg converts chemical reaction datasets into ontology-typed
// knowledge graph documents.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/cwru-sdle/rxnkg/chem"
	"github.com/cwru-sdle/rxnkg/config"
	"github.com/cwru-sdle/rxnkg/dataset"
	"github.com/cwru-sdle/rxnkg/metric"
	"github.com/cwru-sdle/rxnkg/ontology"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "rxnkg"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cliFlags holds flag values shared by the processing subcommands.
type cliFlags struct {
	configPath  string
	ontology    string
	outputDir   string
	errorLogDir string
	format      string
	logLevel    string
	metricsAddr string
}

func rootCmd() *cobra.Command {
	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:   "rxnkg",
		Short: "Reaction record to knowledge graph converter",
		Long: `Rxnkg converts chemical reaction datasets into ontology-typed
knowledge graph documents.

Each reaction becomes one linked-data document: identifiers, inputs,
conditions, workups, outcomes, and provenance are minted as ontology
instances, and the resulting graph is serialized as Turtle, N-Triples,
or JSON-LD. Failed reactions are logged and skipped; the run index
records every document written.`,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	pf.StringVar(&flags.ontology, "ontology", "", "OWL ontology file")
	pf.StringVarP(&flags.outputDir, "output", "o", "", "Output directory for documents")
	pf.StringVar(&flags.errorLogDir, "error-log", "", "Directory for dataset logs and the run index")
	pf.StringVar(&flags.format, "format", "", "Serialization format (turtle, ntriples, jsonld)")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.metricsAddr, "metrics-addr", "", "Expose Prometheus metrics on this address")

	cmd.AddCommand(allCmd(flags))
	cmd.AddCommand(singleDatasetCmd(flags))

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func allCmd(flags *cliFlags) *cobra.Command {
	var datasetRoot string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Process every dataset under a root directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if datasetRoot != "" {
				cfg.Datasets.Root = datasetRoot
			}

			paths, err := dataset.Discover(cfg.Datasets.Root)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no dataset files found under %s", cfg.Datasets.Root)
			}
			return runConversion(cmd.Context(), cfg, flags, paths)
		},
	}

	cmd.Flags().StringVar(&datasetRoot, "dataset-root", "", "Directory searched recursively for dataset files")
	return cmd
}

func singleDatasetCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "single-dataset <file>",
		Short: "Process one dataset file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return runConversion(cmd.Context(), cfg, flags, []string{args[0]})
		},
	}
}

func runConversion(parent context.Context, cfg *config.Config, flags *cliFlags, paths []string) error {
	logger := setupLogging(flags.logLevel)

	// Setup signal handling
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	model, err := ontology.Load(cfg.Ontology.Path)
	if err != nil {
		return fmt.Errorf("load ontology: %w", err)
	}
	logger.Info("Ontology loaded",
		slog.String("path", cfg.Ontology.Path),
		slog.Int("classes", model.ClassCount()))

	var metrics *metric.Metrics
	if cfg.Metrics.Enabled {
		registry := metric.NewRegistry()
		metrics = registry.Metrics
		startMetricsServer(ctx, cfg.Metrics.ListenAddr, registry, logger)
	}

	proc := dataset.NewProcessor(model, &chem.BasicNormalizer{}, dataset.Options{
		Format:      cfg.Format(),
		OutputDir:   cfg.Output.Dir,
		ErrorLogDir: cfg.Output.ErrorLogDir,
		Metrics:     metrics,
		Logger:      logger,
	})

	summary, err := proc.Run(ctx, paths)
	if err != nil {
		return err
	}

	written, failed := 0, 0
	for _, res := range summary.Results {
		written += res.Written
		failed += len(res.Failures)
	}
	logger.Info("Run complete",
		slog.String("run_id", summary.RunID),
		slog.Int("datasets", len(summary.Results)),
		slog.Int("documents", written),
		slog.Int("failed_reactions", failed),
		slog.Int("failed_datasets", len(summary.DatasetFailures)))

	if len(summary.Results) == 0 && len(summary.DatasetFailures) > 0 {
		return fmt.Errorf("all %d datasets failed", len(summary.DatasetFailures))
	}
	return nil
}

func setupLogging(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func loadConfig(flags *cliFlags) (*config.Config, error) {
	loader := config.NewLoader(slog.Default())

	var cfg *config.Config
	var err error
	if flags.configPath != "" {
		cfg, err = loader.LoadFile(flags.configPath)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Flags take precedence over files
	if flags.ontology != "" {
		cfg.Ontology.Path = flags.ontology
	}
	if flags.outputDir != "" {
		cfg.Output.Dir = flags.outputDir
	}
	if flags.errorLogDir != "" {
		cfg.Output.ErrorLogDir = flags.errorLogDir
	}
	if flags.format != "" {
		cfg.Output.Format = flags.format
	}
	if flags.metricsAddr != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.ListenAddr = flags.metricsAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// startMetricsServer exposes the registry on /metrics until ctx is done.
// Serving errors are logged, not fatal; a run without metrics still
// produces documents.
func startMetricsServer(ctx context.Context, addr string, registry *metric.Registry, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry.PrometheusRegistry(), promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Info("Metrics endpoint listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Metrics server failed", slog.String("error", err.Error()))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}
