package analyzer

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file `scover init` writes and the CLI loads.
const DefaultConfigFile = ".scover.yaml"

// DefaultMaxVariables bounds the 2^n enumeration.
const DefaultMaxVariables = 16

// Variant selects which of the two selector behaviors is used.
type Variant string

const (
	VariantBasic    Variant = "basic"    // cover variable reads only
	VariantExtended Variant = "extended" // also cover each result value
)

// Validate reports an error for unknown variants.
func (v Variant) Validate() error {
	switch v {
	case VariantBasic, VariantExtended:
		return nil
	}
	return fmt.Errorf("unknown variant %q (want %q or %q)", v, VariantBasic, VariantExtended)
}

// Config represents the contents of a .scover.yaml file.
type Config struct {
	Name         string  `yaml:"name"`
	Variant      Variant `yaml:"variant"`
	MaxVariables int     `yaml:"max_variables"`
	Color        bool    `yaml:"color"`
	CacheDir     string  `yaml:"cache_dir,omitempty"`
	Workers      int     `yaml:"workers,omitempty"` // 0 means one per CPU
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Name:         "scover",
		Variant:      VariantBasic,
		MaxVariables: DefaultMaxVariables,
		Color:        true,
	}
}

// Validate checks the loaded values.
func (c Config) Validate() error {
	if err := c.Variant.Validate(); err != nil {
		return err
	}
	if c.MaxVariables <= 0 {
		return fmt.Errorf("max_variables must be positive, got %d", c.MaxVariables)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// LoadConfig reads path on top of DefaultConfig. Fields missing from the
// file keep their default value.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// LoadConfigOrDefault is LoadConfig, except that a missing file yields the
// defaults instead of an error.
func LoadConfigOrDefault(path string) (Config, error) {
	config, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return config, err
}

// WriteConfig stores config as YAML at path.
func WriteConfig(path string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error marshaling config file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}
