// SPDX-License-Identifier: MIT

// Command magicsquare prints magic squares of any order that has one.
//
// Usage:
//
//	magicsquare generate N [--format text|json|yaml|cbor] [--heatmap]
//	magicsquare repl
//	magicsquare bench [--sizes 3,4,6] [--repeats 100] [--sample]
//
// Global flags:
//
//	--config string     YAML configuration file
//	--log-level string  debug, info, warn, error (default "info")
//
// Every setting can also come from the environment, e.g.
// MAGICSQUARE_HEATMAP_ENABLED=true or MAGICSQUARE_BENCH_REPEATS=10.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
