package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	FormatTree  = "tree"
	FormatDebug = "debug"
)

// Config represents the complete configuration for jsonparse
type Config struct {
	Lexer  LexerConfig  `yaml:"lexer"`
	Output OutputConfig `yaml:"output"`
	Dev    DevConfig    `yaml:"dev"`
}

// LexerConfig controls optional tokenizer strictness
type LexerConfig struct {
	// RejectLeadingZeros turns a digit immediately after a lone '0' into a
	// lex error instead of starting a second number token.
	RejectLeadingZeros bool `yaml:"reject_leading_zeros"`
}

// OutputConfig controls how the parse tree is rendered
type OutputConfig struct {
	Format string `yaml:"format"` // "tree" or "debug"
	Indent int    `yaml:"indent"` // spaces per tree level
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Lexer: LexerConfig{
			RejectLeadingZeros: false,
		},
		Output: OutputConfig{
			Format: FormatTree,
			Indent: 2,
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// Validate checks the configuration for values the CLI cannot act on
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatTree, FormatDebug:
	default:
		return fmt.Errorf("unknown output format %q, want %q or %q", c.Output.Format, FormatTree, FormatDebug)
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("output indent must not be negative, got %d", c.Output.Indent)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonparse.yml", ".jsonparse.yaml", "jsonparse.yml", "jsonparse.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}
