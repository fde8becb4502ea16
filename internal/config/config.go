// Package config loads quack.yaml project configuration: import search
// paths, the maximum call-stack depth, and whether trace logging defaults
// to on. Parsing follows the yaml.v3 Unmarshal-into-struct pattern used for
// test-fixture loading in the example pack (MongooseMoo-barn's
// conformance.loadTestFile).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the contents of a quack.yaml project file.
type Config struct {
	ImportPaths    []string `yaml:"importPaths"`
	MaxImportDepth int      `yaml:"maxImportDepth"`
	MaxCallDepth   int      `yaml:"maxCallDepth"`
	Trace          bool     `yaml:"trace"`
}

// Default returns the configuration used when no quack.yaml is present.
func Default() Config {
	return Config{
		MaxImportDepth: 64,
		MaxCallDepth:   256,
	}
}

// Load reads and parses path, falling back to Default() values for any
// field the file leaves unset.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.MaxImportDepth == 0 {
		cfg.MaxImportDepth = 64
	}
	if cfg.MaxCallDepth == 0 {
		cfg.MaxCallDepth = 256
	}
	return cfg, nil
}

// LoadOrDefault loads path if it exists, otherwise returns Default().
func LoadOrDefault(path string) Config {
	if _, err := os.Stat(path); err != nil {
		return Default()
	}
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}
