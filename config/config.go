// Package config handles hashmoji settings. Settings are stored as YAML on
// disk and supply defaults for command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"

	"github.com/creachadair/hashmoji/digests"
	"github.com/creachadair/hashmoji/source"
	yaml "gopkg.in/yaml.v3"
)

// EnvVar is the name of the environment variable that overrides the default
// settings file path. If it is set but empty, no settings file is read.
const EnvVar = "HASHMOJI_CONFIG"

// A Config represents the contents of a settings file.
type Config struct {
	// The default hash algorithm name.
	Algorithm string `yaml:"algorithm,omitempty"`

	// The default read mode.
	Mode *source.Mode `yaml:"mode,omitempty"`

	// The default text encoding.
	Encoding string `yaml:"encoding,omitempty"`

	// Copy fingerprints to the clipboard by default.
	Copy bool `yaml:"copy,omitempty"`

	// Settings for the HTTP service.
	Server Server `yaml:"server,omitempty"`
}

// Server holds settings for the HTTP service.
type Server struct {
	Addr  string   `yaml:"addr,omitempty"`  // listen address (host:port)
	Allow []string `yaml:"allow,omitempty"` // CIDR masks of allowed callers
}

// Path returns the settings file path, or "" if settings are disabled.
func Path() string {
	if path, ok := os.LookupEnv(EnvVar); ok {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hashmoji", "config.yaml")
}

// Load reads settings from path. If path is empty or does not exist, Load
// returns an empty Config without error.
func Load(path string) (*Config, error) {
	cfg := new(Config)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate reports an error if c contains invalid settings.
func (c *Config) Validate() error {
	if c.Algorithm != "" {
		if _, err := digests.Lookup(c.Algorithm); err != nil {
			return err
		}
	}
	if c.Encoding != "" {
		if _, err := source.LookupEncoding(c.Encoding); err != nil {
			return err
		}
	}
	for _, cidr := range c.Server.Allow {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return fmt.Errorf("server allow: %w", err)
		}
	}
	return nil
}

// Options returns read options with fields from c filling in the zero
// fields of base. The mode from c applies only if useMode is true, meaning
// the caller did not select a mode explicitly.
func (c *Config) Options(base source.Options, useMode bool) source.Options {
	if base.Algorithm == "" {
		base.Algorithm = c.Algorithm
	}
	if base.Encoding == "" {
		base.Encoding = c.Encoding
	}
	if useMode && c.Mode != nil {
		base.Mode = *c.Mode
	}
	return base
}
