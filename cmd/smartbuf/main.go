// Package main is the entry point for the smartbuf CLI.
//
// Usage:
//
//	smartbuf [flags] <command> [args]
//
// Commands:
//
//	layout   - Show storage layouts for a set of sizes
//	demo     - Walk through construction, access, copy and move
//	bench    - Measure construction, copy and access costs
//	version  - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/Anluren/smart-buf/cmd/smartbuf/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
