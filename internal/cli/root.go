package cli

import (
	"fmt"
	"os"

	"github.com/daydemir/aoc/internal/display"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	cfgFile string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Scaffold Advent of Code solution and test stubs",
	Long: `aoc sets up the starter files for a new Advent of Code season.

Get started:
  aoc init              Write a default .aoc.yaml
  aoc new-year          Scaffold the year after the latest one on disk
  aoc new-year 2024     Scaffold a specific year`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and prints any error to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		display.NewFor(os.Stderr, noColor).Error(err.Error())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .aoc.yaml at the repository root); relative paths in it resolve against its directory")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.SetVersionTemplate(fmt.Sprintf("aoc version %s\n", version))
}
