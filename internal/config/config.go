// Package config loads ltsvg settings from YAML.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/render"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/render/svg"
)

// LibraryPathEnv lists extra symbol directories, separated like PATH
const LibraryPathEnv = "LTSPICE_LIB_PATH"

// Config holds every tunable of a conversion
type Config struct {
	FontSize      float64    `yaml:"font_size"`
	MarginPercent float64    `yaml:"margin_percent"`
	StrokeWidth   float64    `yaml:"stroke_width"`
	DotSize       float64    `yaml:"dot_size"`
	Scale         float64    `yaml:"scale"`
	FontFamily    string     `yaml:"font_family"`
	Theme         string     `yaml:"theme"`
	Workers       int        `yaml:"workers"`
	LibraryPaths  []string   `yaml:"library_paths"`
	Text          TextConfig `yaml:"text"`
}

// TextConfig switches text categories off
type TextConfig struct {
	Disable            bool `yaml:"disable"`
	NoSchematicComment bool `yaml:"no_schematic_comment"`
	NoSpiceDirective   bool `yaml:"no_spice_directive"`
	NoSymbolText       bool `yaml:"no_symbol_text"`
	NoComponentName    bool `yaml:"no_component_name"`
	NoComponentValue   bool `yaml:"no_component_value"`
}

// Default returns the built-in settings. Library paths come from
// LTSPICE_LIB_PATH when it is set.
func Default() *Config {
	cfg := &Config{
		FontSize:      16,
		MarginPercent: 10,
		StrokeWidth:   3,
		DotSize:       1.5,
		Scale:         1,
		FontFamily:    "Arial",
		Theme:         "light",
		Workers:       runtime.GOMAXPROCS(0),
	}
	if env := os.Getenv(LibraryPathEnv); env != "" {
		for _, dir := range filepath.SplitList(env) {
			if dir != "" {
				cfg.LibraryPaths = append(cfg.LibraryPaths, dir)
			}
		}
	}
	return cfg
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader parses YAML over the defaults. Keys absent from the
// document keep their default values.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the renderer cannot use
func (c *Config) Validate() error {
	switch {
	case c.FontSize <= 0:
		return fmt.Errorf("font_size must be positive, got %g", c.FontSize)
	case c.MarginPercent < 0:
		return fmt.Errorf("margin_percent must not be negative, got %g", c.MarginPercent)
	case c.StrokeWidth <= 0:
		return fmt.Errorf("stroke_width must be positive, got %g", c.StrokeWidth)
	case c.DotSize < 0:
		return fmt.Errorf("dot_size must not be negative, got %g", c.DotSize)
	case c.Scale <= 0:
		return fmt.Errorf("scale must be positive, got %g", c.Scale)
	case c.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := svg.ParseTheme(c.Theme); err != nil {
		return err
	}
	return nil
}

// RenderOptions converts the settings for the render pipeline
func (c *Config) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.FontSize = c.FontSize
	opts.MarginPercent = c.MarginPercent
	opts.JunctionRadius = c.StrokeWidth * c.DotSize
	if c.Workers > 0 {
		opts.Workers = c.Workers
	}
	opts.NoText = c.Text.Disable
	opts.NoSchematicComment = c.Text.NoSchematicComment
	opts.NoSpiceDirective = c.Text.NoSpiceDirective
	opts.NoSymbolText = c.Text.NoSymbolText
	opts.NoComponentName = c.Text.NoComponentName
	opts.NoComponentValue = c.Text.NoComponentValue
	return opts
}

// Style converts the settings for the SVG sink
func (c *Config) Style() (svg.Style, error) {
	theme, err := svg.ParseTheme(c.Theme)
	if err != nil {
		return svg.Style{}, err
	}
	st := svg.DefaultStyle()
	st.StrokeWidth = c.StrokeWidth
	st.DotSize = c.DotSize
	st.Scale = c.Scale
	st.Theme = theme
	if c.FontFamily != "" {
		st.FontFamily = c.FontFamily
	}
	return st, nil
}
