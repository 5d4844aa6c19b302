// Package config defines the application configuration and its loading
// from files, environment variables, and defaults.
package config

import (
	"fmt"
	"runtime"
	"strings"
)

// Config is the complete configuration for the medscan extraction core.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	OCR        OCRConfig        `mapstructure:"ocr" yaml:"ocr" json:"ocr"`
	Detection  DetectionConfig  `mapstructure:"detection" yaml:"detection" json:"detection"`
	Extraction ExtractionConfig `mapstructure:"extraction" yaml:"extraction" json:"extraction"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output" json:"output"`
}

// OCRConfig contains settings for the OCR engine.
type OCRConfig struct {
	// Language is the tesseract language pack, e.g. "eng".
	Language string `mapstructure:"language" yaml:"language" json:"language"`

	// CorrectionsFile optionally replaces the built-in OCR correction
	// list with a YAML file of from/to pairs.
	CorrectionsFile string `mapstructure:"corrections_file" yaml:"corrections_file" json:"corrections_file"`

	// Workers bounds concurrent OCR pages. 0 means one per CPU.
	Workers int `mapstructure:"workers" yaml:"workers" json:"workers"`

	// ImageDPI is the assumed resolution of standalone image inputs.
	ImageDPI int `mapstructure:"image_dpi" yaml:"image_dpi" json:"image_dpi"`
}

// DetectionConfig contains test-type detection settings.
type DetectionConfig struct {
	// CorrectionsDB is the SQLite path where user corrections accumulate.
	// Empty disables correction-based confidence adjustment.
	CorrectionsDB string `mapstructure:"corrections_db" yaml:"corrections_db" json:"corrections_db"`

	// MultiThreshold is the minimum confidence for a type to appear in
	// multi-type detection output.
	MultiThreshold float64 `mapstructure:"multi_threshold" yaml:"multi_threshold" json:"multi_threshold"`
}

// ExtractionConfig contains document extraction settings.
type ExtractionConfig struct {
	// MaxPages caps how many PDF pages are processed. 0 means no cap.
	MaxPages int `mapstructure:"max_pages" yaml:"max_pages" json:"max_pages"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	// Format is "json" or "text".
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		OCR: OCRConfig{
			Language: "eng",
			Workers:  runtime.NumCPU(),
			ImageDPI: 72,
		},
		Detection: DetectionConfig{
			MultiThreshold: 0.3,
		},
		Output: OutputConfig{
			Format: "json",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (want debug, info, warn, or error)", c.LogLevel)
	}

	if c.OCR.Language == "" {
		return fmt.Errorf("ocr.language must not be empty")
	}
	if c.OCR.Workers < 0 {
		return fmt.Errorf("ocr.workers must not be negative, got %d", c.OCR.Workers)
	}
	if c.OCR.ImageDPI < 0 {
		return fmt.Errorf("ocr.image_dpi must not be negative, got %d", c.OCR.ImageDPI)
	}

	if c.Detection.MultiThreshold < 0 || c.Detection.MultiThreshold > 1 {
		return fmt.Errorf("detection.multi_threshold must be in [0,1], got %g", c.Detection.MultiThreshold)
	}

	if c.Extraction.MaxPages < 0 {
		return fmt.Errorf("extraction.max_pages must not be negative, got %d", c.Extraction.MaxPages)
	}

	switch c.Output.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid output.format %q (want json or text)", c.Output.Format)
	}
	return nil
}
