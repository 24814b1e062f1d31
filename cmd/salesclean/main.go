package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"salesclean/internal/config"
	"salesclean/internal/exporter"
	"salesclean/internal/infrastructure"
	"salesclean/internal/loader"
	"salesclean/internal/pipeline"
)

func main() {
	in := flag.String("in", "", "input file, csv or xlsx (default data/raw/sales_data_raw.csv)")
	out := flag.String("out", "", "output file, csv or xlsx (default data/processed/sales_data_clean.csv)")
	configFile := flag.String("config", "", "optional yaml config file")
	delimiter := flag.String("delimiter", "", "field delimiter for csv input and output")
	encoding := flag.String("encoding", "", "input charset: utf-8, utf-8-sig, windows-1252 or iso-8859-1")
	sheet := flag.String("sheet", "", "xlsx sheet to read (default: first sheet)")
	required := flag.String("required", "", "comma-separated required columns (default price,quantity)")
	dryRun := flag.Bool("dry-run", false, "run all stages but skip writing the output")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn or error")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Flags beat environment and file settings.
	if *in != "" {
		cfg.Input.Path = *in
	}
	if *out != "" {
		cfg.Output.Path = *out
	}
	if *delimiter != "" {
		cfg.Input.Delimiter = *delimiter
		cfg.Output.Delimiter = *delimiter
	}
	if *encoding != "" {
		cfg.Input.Encoding = *encoding
	}
	if *sheet != "" {
		cfg.Input.Sheet = *sheet
	}
	if *required != "" {
		cfg.Cleaning.RequiredColumns = splitColumns(*required)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	// Set up the conventional data layout before anything touches it.
	paths, err := config.GetPaths("")
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())
	logger.InfoContext(ctx, "Starting sales data cleaning",
		slog.String("version", config.AppVersion),
		slog.String("input", cfg.Input.Path),
		slog.String("output", cfg.Output.Path),
		slog.Bool("dry_run", *dryRun))

	summary, err := runPipeline(ctx, cfg, *dryRun)
	if err != nil {
		logger.ErrorContext(ctx, "Cleaning failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Cleaning complete",
		slog.Int("rows_in", summary.RowsIn),
		slog.Int("rows_out", summary.RowsOut),
		slog.Duration("duration", summary.Duration))
	reportSummary(summary, *dryRun)
}

// runPipeline loads the input and runs it through the cleaning stages.
// Every failure comes back as a *pipeline.StageError naming the stage.
func runPipeline(ctx context.Context, cfg *config.Config, dryRun bool) (*pipeline.Summary, error) {
	ld := loader.New(loader.Options{
		Delimiter: cfg.Input.DelimiterRune(),
		Encoding:  cfg.Input.Encoding,
		Sheet:     cfg.Input.Sheet,
	})
	tbl, err := ld.Load(ctx, cfg.Input.Path)
	if err != nil {
		return nil, &pipeline.StageError{Stage: "load", Err: err}
	}

	stages := []pipeline.Stage{
		pipeline.NewNormalizeStage(),
		pipeline.NewFilterStage(cfg.Cleaning.RequiredColumns...),
	}
	if !dryRun {
		w := exporter.New(exporter.Options{
			Delimiter: cfg.Output.DelimiterRune(),
			BOMPrefix: cfg.Output.BOM,
			Sheet:     cfg.Output.Sheet,
		})
		stages = append(stages, pipeline.NewWriteStage(w, cfg.Output.Path))
	}

	_, summary, err := pipeline.NewRunner(stages...).Run(ctx, tbl)
	if err != nil {
		return nil, err
	}
	summary.InputPath = cfg.Input.Path
	summary.OutputPath = cfg.Output.Path
	return summary, nil
}

// reportSummary echoes the row counts for the run on stdout.
func reportSummary(s *pipeline.Summary, dryRun bool) {
	fmt.Printf("Loaded %d rows from %s\n", s.RowsIn, s.InputPath)
	if s.Drops != nil {
		fmt.Printf("Kept %d of %d rows (%d missing, %d not numeric, %d negative)\n",
			s.RowsOut, s.RowsIn,
			s.Drops.DroppedMissing, s.Drops.DroppedNotNumeric, s.Drops.DroppedNegative)
	} else {
		fmt.Printf("Kept %d of %d rows\n", s.RowsOut, s.RowsIn)
	}
	if dryRun {
		fmt.Printf("Dry run: skipped writing %s\n", s.OutputPath)
		return
	}
	fmt.Printf("Wrote %s\n", s.OutputPath)
}

// splitColumns parses a comma-separated column list, dropping empty entries.
func splitColumns(s string) []string {
	var cols []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}
