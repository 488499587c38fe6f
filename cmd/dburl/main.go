// Package main provides the dburl command-line tool.
package main

import (
	"os"

	"github.com/veldtlabs/dburl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
