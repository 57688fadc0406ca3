package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/daydemir/aoc/internal/config"
	"github.com/daydemir/aoc/internal/workspace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "View or modify configuration",
	Long: `View or modify aoc configuration.

Examples:
  aoc config                          Show the config file
  aoc config files.extension          Get a specific value
  aoc config files.extension go       Set a value
  aoc config -- report.tree_args -C,-a
                                      Set a list (comma-separated)

Only list keys such as report.tree_args are split on commas. Setting a value
rewrites .aoc.yaml, which drops the comments written by 'aoc init'.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		wsDir, err := workspace.Find()
		if err != nil {
			return err
		}
		configPath := cfgFile
		if configPath == "" {
			configPath = workspace.ConfigPath(wsDir)
		}

		out := cmd.OutOrStdout()
		switch len(args) {
		case 0:
			return showConfig(out, configPath)
		case 1:
			return getConfigValue(out, wsDir, args[0])
		case 2:
			return setConfigValue(out, configPath, args[0], args[1])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func showConfig(out io.Writer, configPath string) error {
	content, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("no config at %s (run 'aoc init' first)", configPath)
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	fmt.Fprint(out, string(content))
	return nil
}

func getConfigValue(out io.Writer, wsDir, key string) error {
	value, err := config.Value(wsDir, cfgFile, key)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, value)
	return nil
}

func setConfigValue(out io.Writer, configPath, key, value string) error {
	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("no config at %s (run 'aoc init' first)", configPath)
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if config.IsList(key) {
		v.Set(key, strings.Split(value, ","))
	} else {
		v.Set(key, value)
	}

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(out, "Set %s = %s\n", key, value)
	return nil
}
