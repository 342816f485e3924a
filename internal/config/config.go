// internal/config/config.go
package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// Run holds the scan settings.
type Run struct {
	Algorithm string `toml:"algorithm"`
	Threads   int    `toml:"threads"`
	BatchSize int    `toml:"batch-size"`
	Output    string `toml:"output"`
	Strict    bool   `toml:"strict"`
}

// Log holds the logger settings.
type Log struct {
	Level zapcore.Level `toml:"level"`
}

// Config is the file-level configuration. Command-line flags override it.
type Config struct {
	Run Run `toml:"run"`
	Log Log `toml:"log"`
}

// New returns the defaults.
func New() *Config {
	return &Config{
		Run: Run{
			Algorithm: "aho-corasick",
			Threads:   0,
			BatchSize: 64,
			Output:    "text",
		},
		Log: Log{
			Level: zapcore.InfoLevel,
		},
	}
}

// Load decodes the TOML file at path over the defaults. Unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := New()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.WithMessagef(err, "config %s", path)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Run.Threads < 0 {
		return fmt.Errorf("run.threads must be >= 0")
	}
	if c.Run.BatchSize < 0 {
		return fmt.Errorf("run.batch-size must be >= 0")
	}
	if c.Run.Algorithm == "" {
		return fmt.Errorf("run.algorithm must not be empty")
	}
	return nil
}

// String renders c as TOML.
func (c *Config) String() string {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(c); err != nil {
		return err.Error()
	}
	return buf.String()
}
