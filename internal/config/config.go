package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when none is given on the command line.
const DefaultPath = "ncdu-import.yaml"

type Config struct {
	PathColumn string   `yaml:"path_column"`
	SizeColumn string   `yaml:"size_column"`
	IsDuOutput bool     `yaml:"is_du_output"`
	OutputFile string   `yaml:"output_file"`
	Exclude    []string `yaml:"exclude"`
	Compact    bool     `yaml:"compact"`
}

func DefaultConfig() *Config {
	return &Config{
		PathColumn: "name",
		SizeColumn: "size",
		OutputFile: "-",
		Exclude:    []string{},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Blank values in the file fall back to the defaults
	defaults := DefaultConfig()
	if cfg.PathColumn == "" {
		cfg.PathColumn = defaults.PathColumn
	}
	if cfg.SizeColumn == "" {
		cfg.SizeColumn = defaults.SizeColumn
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = defaults.OutputFile
	}
	if cfg.Exclude == nil {
		cfg.Exclude = []string{}
	}

	return cfg, nil
}

// Validate checks settings that flags may have overridden after loading.
func (c *Config) Validate() error {
	if c.IsDuOutput {
		return nil
	}
	if c.PathColumn == "" {
		return errors.New("path column must not be empty")
	}
	if c.SizeColumn == "" {
		return errors.New("size column must not be empty")
	}
	return nil
}
