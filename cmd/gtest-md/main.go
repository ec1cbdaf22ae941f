// Package main is the entry point for the gtest-md CLI.
package main

import (
	"os"

	"github.com/quickprint-soft/gtest-run/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
