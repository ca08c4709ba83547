// Package config holds settings of the fragile command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/fragile/internal/cluster"
	"github.com/sirkon/fragile/internal/report"
)

// Config is the YAML layout of the configuration file.
type Config struct {
	// Clusters to match functions against.
	Clusters []cluster.Cluster `yaml:"clusters"`

	// Strict rejects clusters failing cluster.Cluster.Validate.
	Strict bool `yaml:"strict"`

	// Workers is the number of classification workers.
	Workers int `yaml:"workers"`

	Output struct {
		Format report.Format `yaml:"format"` // "table"|"json"
		Color  ColorMode     `yaml:"color"`  // "auto"|"always"|"never"
	} `yaml:"output"`

	Logging struct {
		Format string `yaml:"format"` // "text"|"json"
		Level  string `yaml:"level"`  // "debug"|"info"|"warn"|"error"
	} `yaml:"logging"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.Workers = 1
	c.Output.Format = report.FormatTable
	c.Output.Color = ColorAuto
	c.Logging.Format = "text"
	c.Logging.Level = "warn"
	return c
}

// Load reads the configuration from path over defaults. A missing file at an
// empty path is not an error. Environment overrides are applied last.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return c, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := c.applyEnv(); err != nil {
		return c, fmt.Errorf("apply environment: %w", err)
	}

	if _, err := c.logLevel(); err != nil {
		return c, err
	}
	if _, err := c.logJSON(); err != nil {
		return c, err
	}

	if c.Strict {
		for i, cl := range c.Clusters {
			if err := cl.Validate(); err != nil {
				return c, fmt.Errorf("validate cluster #%d %s: %w", i, cl, err)
			}
		}
	}

	return c, nil
}

// LoadOptional is Load that treats a missing file as empty.
func LoadOptional(path string) (Config, error) {
	c, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Load("")
	}

	return c, err
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("FRAGILE_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse FRAGILE_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("FRAGILE_OUTPUT_FORMAT"); v != "" {
		if err := c.Output.Format.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("parse FRAGILE_OUTPUT_FORMAT: %w", err)
		}
	}
	if v := os.Getenv("FRAGILE_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("FRAGILE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return nil
}
