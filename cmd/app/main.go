// Package main provides the operator CLI for the field protection library:
// key material generation, ad-hoc protect/unprotect/verify, and password
// hashing for ops and migration work.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:     "fieldshield",
		Usage:    "Tiered field-level data protection toolkit",
		Version:  version,
		Commands: getCommands(),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
