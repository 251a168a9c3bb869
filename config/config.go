// Package config loads parsnip settings from YAML or TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config selects the grammar to parse with and how to log.
type Config struct {
	// Grammar is the path of the EBNF grammar file. A relative path in a
	// config file is resolved against the file's directory.
	Grammar string   `yaml:"grammar" toml:"grammar"`
	Start   string   `yaml:"start" toml:"start"`
	Skip    []string `yaml:"skip" toml:"skip"`
	Log     Log      `yaml:"log" toml:"log"`
}

type Log struct {
	Verbosity int    `yaml:"verbosity" toml:"verbosity"`
	File      string `yaml:"file" toml:"file"`
}

func Default() *Config {
	return &Config{
		Skip: []string{"WhiteSpace", "Comment"},
	}
}

// Load reads the file at path on top of Default. The format follows the
// extension: .yaml or .yml for YAML, .toml for TOML.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("%s: YAML parse error: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("%s: TOML parse error: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported config format %q", path, ext)
	}

	if cfg.Grammar != "" && !filepath.IsAbs(cfg.Grammar) {
		cfg.Grammar = filepath.Join(filepath.Dir(path), cfg.Grammar)
	}
	return cfg, nil
}

// Override replaces every setting of c that is set in o.
func (c *Config) Override(o Config) {
	if o.Grammar != "" {
		c.Grammar = o.Grammar
	}
	if o.Start != "" {
		c.Start = o.Start
	}
	if o.Skip != nil {
		c.Skip = o.Skip
	}
	if o.Log.Verbosity != 0 {
		c.Log.Verbosity = o.Log.Verbosity
	}
	if o.Log.File != "" {
		c.Log.File = o.Log.File
	}
}

// Validate reports settings a parse cannot run without.
func (c *Config) Validate() error {
	if c.Grammar == "" {
		return fmt.Errorf("no grammar given")
	}
	if c.Start == "" {
		return fmt.Errorf("no start production given")
	}
	return nil
}
