// Package config provides configuration loading for codepane.
//
// Configuration comes from a TOML file, overlaid with CODEPANE_*
// environment variables. A missing file is not an error; defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid indicates a configuration value outside its valid range.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the tunables of the display core.
type Config struct {
	// LineHeightPx is the pixel height of one rendered line.
	LineHeightPx int `toml:"line_height_px"`

	// BufferLines is the overscan margin in lines on each side of the
	// visible window.
	BufferLines int `toml:"buffer_lines"`

	// TabWidth is the number of columns a tab expands to when rendered.
	TabWidth int `toml:"tab_width"`

	// Theme names the token style palette used by the renderer.
	Theme string `toml:"theme"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LineHeightPx: 16,
		BufferLines:  5,
		TabWidth:     4,
		Theme:        "default",
	}
}

// Load reads configuration from path over the defaults, then applies
// environment overrides. A non-existent file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.LineHeightPx < 1 {
		return fmt.Errorf("%w: line_height_px must be positive, got %d", ErrInvalid, c.LineHeightPx)
	}
	if c.BufferLines < 0 {
		return fmt.Errorf("%w: buffer_lines must not be negative, got %d", ErrInvalid, c.BufferLines)
	}
	if c.TabWidth < 1 {
		return fmt.Errorf("%w: tab_width must be positive, got %d", ErrInvalid, c.TabWidth)
	}
	return nil
}

// applyEnv overlays CODEPANE_* environment variables. Unparsable values
// are ignored; the file or default value stands.
func (c *Config) applyEnv() {
	if v, ok := envInt("CODEPANE_LINE_HEIGHT_PX"); ok {
		c.LineHeightPx = v
	}
	if v, ok := envInt("CODEPANE_BUFFER_LINES"); ok {
		c.BufferLines = v
	}
	if v, ok := envInt("CODEPANE_TAB_WIDTH"); ok {
		c.TabWidth = v
	}
	if v := os.Getenv("CODEPANE_THEME"); v != "" {
		c.Theme = v
	}
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
