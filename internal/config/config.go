package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bin2s/bin2s/internal/bin2s"
)

// Config represents the top-level manifest structure parsed from bin2s.yaml.
// It defines the output destination, the encoding parameters shared by all
// assets, and the list of binary files to embed.
type Config struct {
	// Output is the path of the generated assembly file. Empty writes to stdout.
	Output string `yaml:"output"`
	// Alignment is the boundary alignment of each data section, in bytes.
	Alignment int `yaml:"alignment"`
	// LineLength is the number of data bytes emitted per assembly line.
	LineLength int `yaml:"line_length"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Assets is the list of binary files to convert.
	Assets []Asset `yaml:"assets"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// Asset describes a single binary file to embed.
type Asset struct {
	// File is the path of the binary file.
	File string `yaml:"file"`
	// Name overrides the identifier derived from the file's base name.
	Name string `yaml:"name"`
}

// Identifier returns the raw name the asset's symbols are derived from.
func (a Asset) Identifier() string {
	if a.Name != "" {
		return a.Name
	}
	return filepath.Base(a.File)
}

// Validate checks the manifest for errors, such as non-positive encoding
// parameters or two assets whose sanitized identifiers collide.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the manifest is invalid, or nil otherwise.
func Validate(config *Config) error {
	if len(config.Assets) == 0 {
		return fmt.Errorf("manifest lists no assets")
	}
	if config.Alignment <= 0 {
		return fmt.Errorf("alignment must be greater than 0, got %d", config.Alignment)
	}
	if config.LineLength <= 0 {
		return fmt.Errorf("line_length must be greater than 0, got %d", config.LineLength)
	}

	seen := make(map[string]string)
	for _, asset := range config.Assets {
		if asset.File == "" {
			return fmt.Errorf("asset is missing a file path")
		}
		symbol, err := bin2s.Sanitize(asset.Identifier())
		if err != nil {
			return fmt.Errorf("asset '%s': %w", asset.File, err)
		}
		if prev, ok := seen[symbol]; ok {
			return fmt.Errorf("assets '%s' and '%s' both produce symbol '%s'", prev, asset.File, symbol)
		}
		seen[symbol] = asset.File
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}

// ApplyDefaults sets default values for manifest fields that are missing.
//
// Parameters:
//   - config: The Config object to modify.
func ApplyDefaults(config *Config) {
	if config.Alignment == 0 {
		config.Alignment = bin2s.DefaultAlignment
	}
	if config.LineLength == 0 {
		config.LineLength = bin2s.DefaultLineLength
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}
