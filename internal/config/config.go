package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cppforge/genc/internal/defs"
)

// maxConfigSize is the maximum allowed size for the defaults file.
const maxConfigSize = 1 * 1024 * 1024 // 1MB

// Config holds user-level defaults for project generation.
type Config struct {
	Defaults   DefaultsSection   `yaml:"defaults"`
	Git        GitSection        `yaml:"git"`
	Submodules SubmodulesSection `yaml:"submodules"`
}

// DefaultsSection holds the default scaffold toggles.
type DefaultsSection struct {
	Tests     bool `yaml:"tests"`
	Benchmark bool `yaml:"benchmark"`
}

// GitSection holds repository settings.
type GitSection struct {
	Branch string `yaml:"branch"`
}

// SubmodulesSection names the framework repositories registered as submodules.
type SubmodulesSection struct {
	GoogleTest Source `yaml:"googletest"`
	Benchmark  Source `yaml:"benchmark"`
}

// Source is a submodule origin: repository URL and the relative path it is
// pinned at inside the generated project.
type Source struct {
	URL  string `yaml:"url"`
	Path string `yaml:"path"`
}

// DefaultConfig returns the built-in defaults used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsSection{
			Tests:     true,
			Benchmark: true,
		},
		Git: GitSection{
			Branch: defs.DefaultBranch,
		},
		Submodules: SubmodulesSection{
			GoogleTest: Source{URL: defs.GoogleTestURL, Path: defs.GoogleTestPath},
			Benchmark:  Source{URL: defs.BenchmarkURL, Path: defs.BenchmarkPath},
		},
	}
}

// DefaultPath returns the default location of the defaults file:
// $XDG_CONFIG_HOME/genc/config.yaml, falling back to ~/.config/genc/config.yaml.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "genc", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "genc", "config.yaml")
}

// Load reads the defaults file at path, layering it over the built-in
// defaults. An empty path means DefaultPath(); a missing file is not an
// error and yields the built-in defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrFileTooLarge, path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the scaffold pipeline cannot
// work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Git.Branch) == "" {
		return fmt.Errorf("%w: git.branch must not be empty", ErrInvalidConfig)
	}
	if err := c.Submodules.GoogleTest.validate("submodules.googletest"); err != nil {
		return err
	}
	if err := c.Submodules.Benchmark.validate("submodules.benchmark"); err != nil {
		return err
	}
	return nil
}

// validate checks a submodule source. The pinned path must stay inside the
// generated project tree.
func (s Source) validate(field string) error {
	if strings.TrimSpace(s.URL) == "" {
		return fmt.Errorf("%w: %s.url must not be empty", ErrInvalidConfig, field)
	}
	p := s.Path
	if strings.TrimSpace(p) == "" {
		return fmt.Errorf("%w: %s.path must not be empty", ErrInvalidConfig, field)
	}
	if filepath.IsAbs(p) || p != filepath.ToSlash(filepath.Clean(p)) || strings.HasPrefix(p, "..") {
		return fmt.Errorf("%w: %s.path must be a clean relative path inside the project", ErrInvalidConfig, field)
	}
	return nil
}
