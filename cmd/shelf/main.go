// Package main provides the shelf CLI: a command-line front door to the
// Shelf containment model for creating resources and editing their
// relations.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI exit code: 1 for user errors
// (bad input, rejected edges, missing resources), 2 for system errors.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrWrongKind),
		errors.Is(err, types.ErrUnknownKind),
		errors.Is(err, types.ErrUntypedResource),
		errors.Is(err, types.ErrAmbiguousKind),
		errors.Is(err, types.ErrCycleDetected):
		return exitUserError
	default:
		return exitSysError
	}
}
