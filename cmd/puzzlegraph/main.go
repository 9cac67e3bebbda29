package main

import (
	"os"

	"github.com/katalvlaran/puzzlegraph/cmd/puzzlegraph/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
