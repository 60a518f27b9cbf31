// Package config holds the resolved parameters of one search run and
// the optional on-disk defaults file that seeds them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultWorkers is the worker-pool size used when neither the command
// line nor the defaults file specifies one.
const DefaultWorkers = 4

// DefaultConfigFile is the defaults file looked up in the current
// working directory.
const DefaultConfigFile = ".seekr.yaml"

// SearchConfig is the fully resolved parameter set for one run. It is
// immutable for the duration of the run and read concurrently by all
// scan tasks without locking; nothing may mutate it after Validate.
type SearchConfig struct {
	// Directory is the root of the search.
	Directory string

	// Extension, when non-empty, restricts candidates to files whose
	// extension (without the leading dot) equals it exactly,
	// case-sensitively.
	Extension string

	// Term is the raw search term.
	Term string

	// Recursive enables descent into subdirectories.
	Recursive bool

	// CaseSensitive disables case folding of searched text.
	CaseSensitive bool

	// Regex treats Term as a regular expression instead of a literal.
	Regex bool

	// Workers is the bounded worker-pool size for per-file fan-out.
	Workers int
}

// Validate checks the config for values no run can proceed with.
func (c *SearchConfig) Validate() error {
	if c.Term == "" {
		return fmt.Errorf("search term is required")
	}
	if c.Directory == "" {
		return fmt.Errorf("search directory is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("worker count must be at least 1, got %d", c.Workers)
	}
	return nil
}

// Config represents the optional user defaults loaded from a
// .seekr.yaml file. Command-line flags that were set explicitly always
// win over these values.
type Config struct {
	// Threads is the default worker-pool size.
	Threads int `yaml:"threads"`

	// Recursive is the default for recursive descent.
	Recursive bool `yaml:"recursive"`

	// Progress enables the live progress bar.
	Progress bool `yaml:"progress"`
}

// DefaultConfig returns a Config with the built-in default values.
func DefaultConfig() *Config {
	return &Config{
		Threads:   DefaultWorkers,
		Recursive: true,
		Progress:  true,
	}
}

// LoadConfig loads defaults from the specified file path.
// If the file doesn't exist, returns default configuration without
// error. If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.Threads < 1 {
		return nil, fmt.Errorf("config file %s: threads must be at least 1, got %d", path, cfg.Threads)
	}

	return cfg, nil
}
