package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"energycli/internal/errors"
	"energycli/internal/exporter"
	"energycli/pkg/energy"
)

// Mode selects which aggregation a run produces
type Mode int

const (
	// ModeSeries groups observations under their column metadata
	ModeSeries Mode = iota
	// ModeDate groups observations under their month
	ModeDate
)

// Options carries one run's invocation arguments. An empty or "-" path
// selects the process streams.
type Options struct {
	InputPath  string
	OutputPath string
	Mode       Mode
}

// App wires the conversion pipeline: read input, parse, aggregate, write
// JSON. Stdin and Stdout are fields so tests can substitute buffers.
type App struct {
	Logger *slog.Logger
	Stdin  io.Reader
	Stdout io.Writer

	writer *exporter.JSONWriter
}

// New creates an App bound to the process streams
func New(logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		Logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		writer: exporter.NewJSONWriter(logger),
	}
}

// Run executes one conversion. Nothing reaches the output destination
// until the whole input has parsed and aggregated cleanly, so a failed
// run never leaves partial JSON behind.
func (a *App) Run(ctx context.Context, opts Options) error {
	data, err := a.readInput(ctx, opts.InputPath)
	if err != nil {
		return err
	}

	table, err := parseTable(data)
	if err != nil {
		return err
	}

	a.Logger.InfoContext(ctx, "parsed input table",
		slog.Int("columns", len(table.Columns)),
		slog.Int("rows", len(table.Rows)),
		slog.Bool("workbook", energy.IsWorkbook(data)))

	var records interface{}
	switch opts.Mode {
	case ModeDate:
		byDate, err := energy.ByDate(table)
		if err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "aggregated by date", slog.Int("record_count", len(byDate)))
		records = byDate
	default:
		bySeries, err := energy.BySeries(table)
		if err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "aggregated by series", slog.Int("record_count", len(bySeries)))
		records = bySeries
	}

	return a.writeOutput(ctx, opts.OutputPath, records)
}

func (a *App) readInput(ctx context.Context, path string) ([]byte, error) {
	if path == "" || path == "-" {
		a.Logger.DebugContext(ctx, "reading standard input")
		data, err := io.ReadAll(a.Stdin)
		if err != nil {
			return nil, errors.NewInputNotFoundError("cannot read standard input", err)
		}
		return data, nil
	}

	a.Logger.DebugContext(ctx, "reading input file", slog.String("path", path))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputNotFoundError(fmt.Sprintf("input file not found: %s", path), err)
		}
		return nil, errors.NewInputNotFoundError(fmt.Sprintf("cannot read input file %s", path), err)
	}
	return data, nil
}

// parseTable picks the reader by content: workbook bytes by their ZIP
// magic, anything else as CSV text.
func parseTable(data []byte) (*energy.Table, error) {
	if energy.IsWorkbook(data) {
		return energy.ParseWorkbook(data)
	}
	return energy.Parse(string(data))
}

func (a *App) writeOutput(ctx context.Context, path string, records interface{}) error {
	if path == "" || path == "-" {
		return a.writer.WriteStream(ctx, a.Stdout, records)
	}
	return a.writer.WriteFile(ctx, path, records)
}
