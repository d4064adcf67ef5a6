// Package app orchestrates one conversion run for the command-line
// entrypoints: read the input, parse it into a table, aggregate, and
// write the JSON result.
//
// # Pipeline
//
// A run always moves through the same stages:
//
//	1. Read the whole input (file path, or stdin for "" / "-")
//	2. Detect the format by content and parse into a Table
//	3. Aggregate by series or by date, per Options.Mode
//	4. Serialize once and write to the destination (stdout for "" / "-")
//
// Serialization happens strictly after parsing and aggregation succeed,
// so a failed run never emits partial JSON.
//
// # Usage
//
// The main entry point is typically:
//
//	a := app.New(logger)
//	if err := a.Run(ctx, app.Options{InputPath: path, Mode: app.ModeSeries}); err != nil {
//	    // classify via errors.TypeOf and exit non-zero
//	}
//
// # Error Handling
//
// All failures are returned to the caller as classified application
// errors. The app never calls os.Exit() directly, allowing the main
// function to control the exit process.
package app
