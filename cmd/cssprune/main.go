// Package main provides the cssprune CLI for reporting and removing unused CSS classes.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/yacobolo/cssprune"
	"github.com/yacobolo/cssprune/internal/sass"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command with args and maps errors to an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	// Interrupt cancels a running sass compile
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	if errors.Is(err, cssprune.ErrPreprocessorMissing) {
		fmt.Fprintf(stderr, "\n%s\n", sass.Remediation)
	}
	return 1
}
