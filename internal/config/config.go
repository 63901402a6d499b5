// Package config loads generator configuration from an optional YAML file
// with environment variable expansion. CLI flags override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full generator configuration.
type Config struct {
	// Project is the source tree to scan: a local directory or a git URL.
	Project string `yaml:"project"`
	// Branch selects the branch when Project is a git URL.
	Branch string `yaml:"branch,omitempty"`
	// Output is the docs output root.
	Output string `yaml:"output"`
	// Templates is a template directory or zip archive.
	Templates string `yaml:"templates"`
	// Extensions limits scanning to these file extensions.
	Extensions []string `yaml:"extensions,omitempty"`
	// HistoryDB, when set, records each run in a SQLite database.
	HistoryDB string `yaml:"history_db,omitempty"`

	Preview PreviewConfig `yaml:"preview,omitempty"`
}

// PreviewConfig configures the preview server and its rebuild triggers.
type PreviewConfig struct {
	Port         int           `yaml:"port,omitempty"`
	Debounce     time.Duration `yaml:"debounce,omitempty"`
	MaxDelay     time.Duration `yaml:"max_delay,omitempty"`
	RebuildEvery time.Duration `yaml:"rebuild_every,omitempty"`
	NATSURL      string        `yaml:"nats_url,omitempty"`
	NATSSubject  string        `yaml:"nats_subject,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Extensions: []string{".cpp", ".hpp", ".h"},
		Preview: PreviewConfig{
			Port:        8080,
			Debounce:    2 * time.Second,
			MaxDelay:    30 * time.Second,
			NATSSubject: "docsgen.runs",
		},
	}
}

// Load reads the configuration file if it exists and merges it over the
// defaults. A missing file is not an error; flags may supply everything.
func Load(path string) (*Config, error) {
	// Load .env if present so ${VAR} expansion sees it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Note: .env file couldn't be loaded: %v\n", err)
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".cpp", ".hpp", ".h"}
	}
	return cfg, nil
}

// Validate checks that the fields required for a generation run are set.
func (c *Config) Validate() error {
	if c.Project == "" {
		return errors.New("project is required (--project or config file)")
	}
	if c.Output == "" {
		return errors.New("output is required (--out or config file)")
	}
	if c.Templates == "" {
		return errors.New("templates is required (--templates or config file)")
	}
	return nil
}

// ParseExtensions parses a comma-separated extension list ("cpp,.hpp").
// An empty string keeps the current value; "*" is not supported and
// returns an error since unbounded scanning defeats the pre-scan filter.
func ParseExtensions(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var exts []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if part == "*" {
			return nil, errors.New("wildcard extension list is not supported")
		}
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		exts = append(exts, strings.ToLower(part))
	}
	return exts, nil
}

// IsGitURL reports whether project points at a remote git repository
// rather than a local directory.
func IsGitURL(project string) bool {
	return strings.HasPrefix(project, "http://") ||
		strings.HasPrefix(project, "https://") ||
		strings.HasPrefix(project, "ssh://") ||
		strings.HasPrefix(project, "git@")
}
