// Package exporter writes converted records as indented JSON.
//
// JSONWriter renders any record slice through one Marshal path, so the
// bytes written to a file and the bytes written to a stream are always
// identical: two-space indentation with a trailing newline. Write
// failures are classified as output errors for the CLI boundary.
//
// Example usage:
//
//	writer := exporter.NewJSONWriter(logger)
//
//	// Stream to stdout
//	err := writer.WriteStream(ctx, os.Stdout, records)
//
//	// Or write to a file, creating parent directories
//	err = writer.WriteFile(ctx, "out/series.json", records)
package exporter
