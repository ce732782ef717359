// Package main is the entry point for the driftlens CLI binary.
package main

import (
	"os"

	cli "driftlens/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
