package exporter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"energycli/internal/errors"
)

// JSONWriter provides indented JSON export for converted records
type JSONWriter struct {
	logger *slog.Logger
}

// NewJSONWriter creates a new JSON writer instance
func NewJSONWriter(logger *slog.Logger) *JSONWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONWriter{logger: logger}
}

// Marshal renders v as two-space indented JSON with a trailing newline.
// Files and streams both go through here so the bytes agree everywhere.
func (w *JSONWriter) Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return nil, errors.NewOutputWriteError("cannot encode records as JSON", err)
	}

	return buf.Bytes(), nil
}

// WriteFile writes v to filePath, creating parent directories as needed
func (w *JSONWriter) WriteFile(ctx context.Context, filePath string, v interface{}) error {
	data, err := w.Marshal(v)
	if err != nil {
		return err
	}

	w.logger.InfoContext(ctx, "writing JSON file",
		slog.String("file_path", filePath),
		slog.Int("bytes", len(data)))

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.NewOutputWriteError(fmt.Sprintf("cannot create directory %s", dir), err)
		}
	}

	file, err := os.Create(filePath)
	if err != nil {
		return errors.NewOutputWriteError(fmt.Sprintf("cannot create output file %s", filePath), err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return errors.NewOutputWriteError(fmt.Sprintf("cannot write output file %s", filePath), err)
	}

	if err := file.Close(); err != nil {
		return errors.NewOutputWriteError(fmt.Sprintf("cannot close output file %s", filePath), err)
	}

	return nil
}

// WriteStream writes v to out. Marshal runs to completion first so a
// failure never leaves partial JSON on the stream.
func (w *JSONWriter) WriteStream(ctx context.Context, out io.Writer, v interface{}) error {
	data, err := w.Marshal(v)
	if err != nil {
		return err
	}

	w.logger.DebugContext(ctx, "writing JSON stream", slog.Int("bytes", len(data)))

	if _, err := out.Write(data); err != nil {
		return errors.NewOutputWriteError("cannot write output stream", err)
	}

	return nil
}
