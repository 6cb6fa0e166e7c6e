// Package main is the entry point for the jsonpath CLI, a thin demo
// wrapper around the jsonpath engine (out of the core's scope per
// spec §1, but a natural ambient surface for exercising it end to end).
package main

import (
	"fmt"
	"os"

	"github.com/cortronic/jsonpath/cmd/jsonpath/internal/cli"
)

// Version is injected at build time, following the teacher's
// ldflags-injected version convention.
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCmd()
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
