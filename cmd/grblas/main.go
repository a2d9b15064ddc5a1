// SPDX-License-Identifier: MIT

// Command grblas runs the sparse graph engines on coordinate-list graph
// files and prints JSON results.
package main

import (
	"os"

	"github.com/katalvlaran/grblas/cmd/grblas/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
