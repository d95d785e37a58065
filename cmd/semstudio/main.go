// Package main provides the semstudio CLI entrypoint.
package main

import (
	"os"

	"github.com/semstack-labs/semstudio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
