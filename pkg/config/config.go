// Package config populates a verbosity registry from YAML files and
// CLI-style verbosity specs.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/larkengine/lark-log/pkg/log"
)

// Config is the on-disk logging configuration.
type Config struct {
	// Verbosity maps group names to level names, e.g.
	// "core/session" -> "debug". The reserved group "all" sets the
	// final fallback threshold.
	Verbosity map[string]string `yaml:"verbosity"`
}

// Load reads a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse parses a configuration from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &cfg, nil
}

// Apply writes every configured verbosity entry into reg. An
// unrecognized level name is reported without touching that entry;
// entries already applied are not rolled back.
func (c *Config) Apply(reg *log.Registry) error {
	for group, name := range c.Verbosity {
		lvl, err := log.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("group %q: %w", group, err)
		}
		reg.Set(group, lvl)
	}
	return nil
}

// ApplyVerbositySpec applies a comma-separated verbosity spec such as
// "core/session=debug,script=info" to reg. A bare level token with no
// "=" sets the threshold for the reserved group "all", so
// "verbose,core/ipc=debug" raises everything to verbose and core/ipc
// further to debug.
func ApplyVerbositySpec(reg *log.Registry, spec string) error {
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		group, name, found := strings.Cut(entry, "=")
		if !found {
			group, name = "all", entry
		}
		if group == "" {
			return fmt.Errorf("entry %q: empty group", entry)
		}

		lvl, err := log.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("entry %q: %w", entry, err)
		}
		reg.Set(group, lvl)
	}
	return nil
}
