// Package config reads and writes the optional .rulekit.yaml defaults
// file. The file seeds non-interactive runs (--yes) and remembers the
// last interactive selection when --save is passed; its absence is never
// an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rulekit-dev/rulekit/internal/defs"
)

// Defaults holds the persisted selection defaults.
type Defaults struct {
	Tool      string `yaml:"tool,omitempty" mapstructure:"tool"`
	Category  string `yaml:"category,omitempty" mapstructure:"category"`
	Framework string `yaml:"framework,omitempty" mapstructure:"framework"`
	Output    string `yaml:"output,omitempty" mapstructure:"output"`
}

// IsComplete reports whether the defaults name a full generation triple.
func (d *Defaults) IsComplete() bool {
	return d.Tool != "" && d.Category != "" && d.Framework != ""
}

// Load reads .rulekit.yaml from dir, with RULEKIT_* environment variables
// taking precedence over file values. A missing file yields zero-value
// defaults and no error; a malformed file is reported.
func Load(dir string) (*Defaults, error) {
	v := viper.New()
	v.SetConfigName(strings.TrimSuffix(defs.DefaultsYAML, ".yaml"))
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("RULEKIT")
	v.AutomaticEnv()
	// Bind explicitly: AutomaticEnv alone does not surface env-only keys
	// through Unmarshal.
	for _, key := range []string{"tool", "category", "framework", "output"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %q: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read %s: %w", defs.DefaultsYAML, err)
		}
	}

	d := &Defaults{}
	if err := v.Unmarshal(d); err != nil {
		return nil, fmt.Errorf("parse %s: %w", defs.DefaultsYAML, err)
	}
	return d, nil
}

// Save writes the defaults to .rulekit.yaml in dir, replacing any
// existing file.
func Save(dir string, d *Defaults) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode defaults: %w", err)
	}

	path := filepath.Join(dir, defs.DefaultsYAML)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
