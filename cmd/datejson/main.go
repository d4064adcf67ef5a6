package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"energycli/internal/app"
	"energycli/internal/config"
	"energycli/internal/infrastructure"
)

func main() {
	var output string
	flag.StringVar(&output, "o", "", "output file path (defaults to stdout)")
	flag.StringVar(&output, "output", "", "output file path (defaults to stdout)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "too many arguments: %v\n", flag.Args()[1:])
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())

	logger.InfoContext(ctx, "starting date conversion",
		slog.String("input", flag.Arg(0)),
		slog.String("output", output))

	a := app.New(logger)
	if err := a.Run(ctx, app.Options{
		InputPath:  flag.Arg(0),
		OutputPath: output,
		Mode:       app.ModeDate,
	}); err != nil {
		logger.ErrorContext(ctx, "conversion failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-o output.json] [input.csv|input.xlsx|-]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Converts wide monthly-series CSV or workbook input to JSON grouped by month.")
	fmt.Fprintln(os.Stderr, "Reads stdin when the input path is omitted or \"-\"; writes stdout unless -o is given.")
	flag.PrintDefaults()
}
