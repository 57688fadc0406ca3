package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/daydemir/aoc/internal/types"
	"github.com/daydemir/aoc/internal/utils"
	"github.com/spf13/viper"
)

const (
	// FileName is the config file looked up at the workspace root
	FileName = ".aoc.yaml"

	// EnvPrefix is prepended to environment overrides, e.g. AOC_FILES_EXTENSION
	EnvPrefix = "AOC"
)

// Config represents the aoc configuration
type Config struct {
	Paths     PathsConfig     `mapstructure:"paths"`
	Files     FilesConfig     `mapstructure:"files"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Report    ReportConfig    `mapstructure:"report"`
}

// PathsConfig contains the roots the season directories are created under
type PathsConfig struct {
	SolutionsRoot string `mapstructure:"solutions_root"`
	TestsRoot     string `mapstructure:"tests_root"`
}

// FilesConfig contains settings for generated files
type FilesConfig struct {
	Extension string `mapstructure:"extension"`
}

// TemplatesConfig points at optional template overrides
type TemplatesConfig struct {
	Dir string `mapstructure:"dir"`
}

// ReportConfig contains settings for the post-scaffold listing
type ReportConfig struct {
	TreeBinary string   `mapstructure:"tree_binary"`
	TreeArgs   []string `mapstructure:"tree_args"`
}

// Load reads the config for a workspace. configFile overrides the default
// location; when neither exists the defaults are used. Environment variables
// prefixed with AOC_ take precedence over the file.
func Load(workspaceDir, configFile string) (*Config, error) {
	v, err := read(workspaceDir, configFile)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Files.Extension = utils.NormalizeExtension(cfg.Files.Extension)

	return &cfg, nil
}

// Value returns the effective value of a single key, e.g. "files.extension"
func Value(workspaceDir, configFile, key string) (interface{}, error) {
	v, err := read(workspaceDir, configFile)
	if err != nil {
		return nil, err
	}
	if !v.IsSet(key) {
		return nil, fmt.Errorf("key not found: %s", key)
	}
	return v.Get(key), nil
}

// IsList reports whether key holds a list, e.g. "report.tree_args"
func IsList(key string) bool {
	v := viper.New()
	setDefaults(v)
	_, ok := v.Get(key).([]string)
	return ok
}

func read(workspaceDir, configFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := configFile
	if path == "" {
		path = filepath.Join(workspaceDir, FileName)
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if configFile != "" || !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return v, nil
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			SolutionsRoot: filepath.Join("adventofcode", "solutions"),
			TestsRoot:     "tests",
		},
		Files: FilesConfig{
			Extension: "py",
		},
		Templates: TemplatesConfig{
			Dir: filepath.Join(".aoc", "templates"),
		},
		Report: ReportConfig{
			TreeBinary: "tree",
			TreeArgs:   []string{"-C", "--noreport"},
		},
	}
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("paths.solutions_root", defaults.Paths.SolutionsRoot)
	v.SetDefault("paths.tests_root", defaults.Paths.TestsRoot)
	v.SetDefault("files.extension", defaults.Files.Extension)
	v.SetDefault("templates.dir", defaults.Templates.Dir)
	v.SetDefault("report.tree_binary", defaults.Report.TreeBinary)
	v.SetDefault("report.tree_args", defaults.Report.TreeArgs)
}

// Validate checks the config for values the scaffolder cannot work with
func (c *Config) Validate() error {
	var errs types.ValidationErrors

	if strings.TrimSpace(c.Paths.SolutionsRoot) == "" {
		errs.Add("paths.solutions_root", "a directory path", c.Paths.SolutionsRoot, "must not be empty")
	}
	if strings.TrimSpace(c.Paths.TestsRoot) == "" {
		errs.Add("paths.tests_root", "a directory path", c.Paths.TestsRoot, "must not be empty")
	}
	if c.Paths.SolutionsRoot != "" && filepath.Clean(c.Paths.SolutionsRoot) == filepath.Clean(c.Paths.TestsRoot) {
		errs.Add("paths.tests_root", "a directory distinct from paths.solutions_root", c.Paths.TestsRoot,
			"must differ from the solutions root")
	}
	if c.Files.Extension == "" {
		errs.Add("files.extension", "a file extension such as \"py\"", c.Files.Extension, "must not be empty")
	} else if strings.ContainsAny(c.Files.Extension, `/\`) {
		errs.Add("files.extension", "a file extension such as \"py\"", c.Files.Extension, "must not contain path separators")
	}

	if errs.HasErrors() {
		return &errs
	}
	return nil
}

// SolutionsRoot returns the solutions root resolved against the workspace
func (c *Config) SolutionsRoot(workspaceDir string) string {
	return resolve(workspaceDir, c.Paths.SolutionsRoot)
}

// TestsRoot returns the tests root resolved against the workspace
func (c *Config) TestsRoot(workspaceDir string) string {
	return resolve(workspaceDir, c.Paths.TestsRoot)
}

// TemplatesDir returns the template override directory resolved against the
// workspace, or "" when overrides are disabled
func (c *Config) TemplatesDir(workspaceDir string) string {
	if c.Templates.Dir == "" {
		return ""
	}
	return resolve(workspaceDir, c.Templates.Dir)
}

func resolve(workspaceDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workspaceDir, path)
}
