// Package config loads the viewer configuration: viewport size, grid
// shape, scroll step and the scrollbar theme.
//
// Every field is optional. Missing values fall back to Default, so an
// empty file is a valid configuration.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"gridcanvas/pkg/grid"
	"gridcanvas/pkg/scroll"
)

// Config is the top-level configuration.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Grid     GridConfig     `yaml:"grid"`
	Scroll   ScrollConfig   `yaml:"scroll"`
	Theme    ThemeConfig    `yaml:"theme"`
}

// ViewportConfig is the initial drawing surface size in pixels.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig describes a grid of uniform cells.
type GridConfig struct {
	Columns      int `yaml:"columns"`
	Rows         int `yaml:"rows"`
	ColumnWidth  int `yaml:"column_width"`
	RowHeight    int `yaml:"row_height"`
	HeaderHeight int `yaml:"header_height"`
	HeaderWidth  int `yaml:"header_width"`
}

// ScrollConfig configures the scrollbars.
type ScrollConfig struct {
	// Step is the distance one arrow click scrolls, in pixels.
	Step int `yaml:"step"`
}

// ThemeConfig holds the scrollbar chrome colors as hex strings such as
// "#f1f1f1".
type ThemeConfig struct {
	Clear string `yaml:"clear"`
	Track string `yaml:"track"`
	Hover string `yaml:"hover"`
	Thumb string `yaml:"thumb"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Viewport: ViewportConfig{Width: 800, Height: 600},
		Grid: GridConfig{
			Columns:      26,
			Rows:         100,
			ColumnWidth:  100,
			RowHeight:    25,
			HeaderHeight: 25,
			HeaderWidth:  30,
		},
		Scroll: ScrollConfig{Step: scroll.DefaultStep},
		Theme: ThemeConfig{
			Clear: "#ffffff",
			Track: "#f1f1f1",
			Hover: "#d2d2d2",
			Thumb: "#c1c1c1",
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Validate checks sizes are positive and colors parse.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"viewport.width", c.Viewport.Width},
		{"viewport.height", c.Viewport.Height},
		{"grid.column_width", c.Grid.ColumnWidth},
		{"grid.row_height", c.Grid.RowHeight},
		{"scroll.step", c.Scroll.Step},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.value)
		}
	}
	nonNegative := []struct {
		name  string
		value int
	}{
		{"grid.columns", c.Grid.Columns},
		{"grid.rows", c.Grid.Rows},
		{"grid.header_height", c.Grid.HeaderHeight},
		{"grid.header_width", c.Grid.HeaderWidth},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalid, p.name, p.value)
		}
	}
	_, err := c.Theme.Theme()
	return err
}

// Theme converts the hex colors to a scroll.Theme.
func (t ThemeConfig) Theme() (scroll.Theme, error) {
	var theme scroll.Theme
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"theme.clear", t.Clear, &theme.Clear},
		{"theme.track", t.Track, &theme.Track},
		{"theme.hover", t.Hover, &theme.Hover},
		{"theme.thumb", t.Thumb, &theme.Thumb},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return scroll.Theme{}, fmt.Errorf("%w: %s: %v", ErrInvalid, f.name, err)
		}
		r, g, b := c.RGB255()
		*f.dst = color.RGBA{r, g, b, 0xff}
	}
	return theme, nil
}

// NewGrid builds the grid described by c.
func (c GridConfig) NewGrid() *grid.Grid {
	g := grid.New(c.Columns, c.Rows, c.ColumnWidth, c.RowHeight)
	g.ColumnNames.Height = c.HeaderHeight
	g.RowNames.Width = c.HeaderWidth
	return g
}

// ScrollOptions returns the scroll options c describes. Validate must
// have succeeded.
func (c Config) ScrollOptions() []scroll.Option {
	theme, err := c.Theme.Theme()
	if err != nil {
		theme = scroll.DefaultTheme()
	}
	return []scroll.Option{scroll.WithStep(c.Scroll.Step), scroll.WithTheme(theme)}
}
