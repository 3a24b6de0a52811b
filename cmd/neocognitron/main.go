// Package main provides the neocognitron CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/born-ml/neocognitron/ops"
)

const version = "v0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "neocognitron %s\n", version)
		return 0
	case "padding":
		if err := padding(args[1:], stdout); err != nil {
			fmt.Fprintf(stderr, "padding: %v\n", err)
			return 1
		}
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "neocognitron %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                      Show version")
	fmt.Fprintln(w, "  padding H W KH KW STRIDE     Compute same padding for a strided convolution")
}

// padding prints the output size and same padding for the given geometry.
func padding(args []string, w io.Writer) error {
	if len(args) != 5 {
		return fmt.Errorf("expected 5 arguments (H W KH KW STRIDE), got %d", len(args))
	}

	names := [5]string{"H", "W", "KH", "KW", "STRIDE"}
	var v [5]int
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%s: %w", names[i], err)
		}
		v[i] = n
	}

	pad, err := ops.ComputeSamePadding(v[0], v[1], v[2], v[3], v[4])
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "out=%dx%d pad=%s\n",
		ops.SameOutputSize(v[0], v[4]), ops.SameOutputSize(v[1], v[4]), pad)
	return nil
}
