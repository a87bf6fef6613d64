// Package main provides the lexigraph binary: build a relation graph from a
// thesaurus file once, then query the saved artifact.
package main

import (
	"fmt"
	"os"
)

const (
	Version = "0.1.0"
	appName = "lexigraph"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
