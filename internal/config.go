// Package internal provides the application configuration and runtime wiring.
package internal

import (
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration. Every setting is required;
// there are no defaults.
type Config struct {
	Writer  WriterConfig  `yaml:"writer"`
	Hugo    HugoConfig    `yaml:"hugo"`
	Content ContentConfig `yaml:"content"`
}

// Validate validates the configuration. Only presence is checked; path
// contents are verified when the pipeline opens them.
func (c *Config) Validate() error {
	if err := c.Writer.Validate(); err != nil {
		return err
	}
	if err := c.Hugo.Validate(); err != nil {
		return err
	}
	return c.Content.Validate()
}

// WriterConfig holds the source note and image directories.
type WriterConfig struct {
	PostDir  string `yaml:"post_dir"`
	ImageDir string `yaml:"image_dir"`
}

// Validate validates the writer configuration.
func (c *WriterConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.PostDir, validation.Required),
		validation.Field(&c.ImageDir, validation.Required),
	)
}

// HugoConfig holds the site output directories.
type HugoConfig struct {
	PostDir  string `yaml:"post_dir"`
	ImageDir string `yaml:"image_dir"`
}

// Validate validates the site output configuration.
func (c *HugoConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.PostDir, validation.Required),
		validation.Field(&c.ImageDir, validation.Required),
	)
}

// ContentConfig holds rendering-related settings.
type ContentConfig struct {
	// EmptyBodyText is substituted for whitespace-only note bodies and used
	// verbatim as the body of placeholder posts.
	EmptyBodyText string `yaml:"empty_body_text"`
}

// Validate validates the content configuration.
func (c *ContentConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.EmptyBodyText, validation.Required),
	)
}

// DefaultConfigPath returns the conventional config location under the user
// config directory.
func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("raido", "config.yaml")
	}
	return filepath.Join(base, "raido", "config.yaml")
}
