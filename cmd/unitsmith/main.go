// Package main is the entry point for the unitsmith CLI.
package main

import (
	"os"

	"github.com/unitsmith/unitsmith/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
