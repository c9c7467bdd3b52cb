package main

import (
	"os"

	"github.com/cppforge/genc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
