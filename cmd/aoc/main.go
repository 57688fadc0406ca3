package main

import (
	"os"

	"github.com/daydemir/aoc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
