package cli

import (
	"os"

	"github.com/daydemir/aoc/internal/workspace"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .aoc.yaml in the current directory",
	Long: `Write a default .aoc.yaml in the current directory.

The config sets where season directories are created, the file extension
of generated stubs, an optional template override directory and the tool
used to list created files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}

		path, err := workspace.Init(cwd, initForce)
		if err != nil {
			return err
		}

		d := newDisplay()
		d.Success("Initialized aoc config")
		d.Info("config", d.Highlight(path))
		d.Println()
		d.Println("Next steps:")
		d.Println("  1. Adjust paths and files.extension in .aoc.yaml")
		d.Println("  2. Optionally add solution.tmpl / test.tmpl under .aoc/templates/")
		d.Println("  3. Run 'aoc new-year' to scaffold a season")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config")
	rootCmd.AddCommand(initCmd)
}
