// Package cli provides common utilities for the smartbuf command-line
// tools.
//
// This package includes:
//   - Output formatting (YAML, JSON, raw, tables)
//   - Request file loading (YAML/JSON)
//   - Byte and duration formatting for reports
//   - Terminal styles for boxed output
//
// Example usage:
//
//	// Load a benchmark request
//	var req BenchRequest
//	err := cli.LoadRequest("bench.yaml", &req)
//
//	// Output result
//	cli.Output(result, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	    File:   outputPath,
//	})
package cli
