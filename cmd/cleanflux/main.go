// Package main is the entry point for the cleanflux CLI.
package main

import (
	"os"

	"github.com/cleanflux/cleanflux-go/cmd/cleanflux/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
