// Package main is the entry point for the framepipe CLI.
//
// Usage:
//
//	framepipe [flags] <command> [args]
//
// Commands:
//
//	run       - Run a pipeline over a recorded or RTP frame stream
//	version   - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/kinestream/framepipe/cmd/framepipe/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
