// Package main provides the entry point for the beacon launcher.
package main

import (
	"os"

	"github.com/beacon-sh/beacon/cmd/beacon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
