// Package config loads termcast settings from TOML and converts them into component settings
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/termcast/palette"
	"github.com/lixenwraith/termcast/raster"
	"github.com/lixenwraith/termcast/render"
	"github.com/lixenwraith/termcast/screen"
	"github.com/lixenwraith/termcast/terminal"
)

// Config is the full settings tree; zero sections in a file keep their defaults
type Config struct {
	Script  string            `toml:"script"` // Session script path, empty runs the built-in demo
	Grid    GridConfig        `toml:"grid"`
	Font    FontConfig        `toml:"font"`
	Raster  RasterConfig      `toml:"raster"`
	Output  OutputConfig      `toml:"output"`
	Palette map[string]string `toml:"palette"` // Token overrides: "#rrggbb" or a color name
}

// GridConfig sizes the virtual terminal
type GridConfig struct {
	Rows      int    `toml:"rows"`
	Cols      int    `toml:"cols"`
	MenuWidth int    `toml:"menu_width"`
	Bounds    string `toml:"bounds"` // "clamp" or "reject"
}

// FontConfig selects the glyph face
type FontConfig struct {
	Path string  `toml:"path"` // Empty uses embedded Go Mono
	Size float64 `toml:"size"`
	DPI  float64 `toml:"dpi"`
}

// RasterConfig is the pixel geometry of the output image
type RasterConfig struct {
	CellW   int    `toml:"cell_w"`
	CellH   int    `toml:"cell_h"`
	Padding int    `toml:"padding"`
	ChromeH int    `toml:"chrome_h"`
	Title   string `toml:"title"`
}

// OutputConfig controls the written artifacts
type OutputConfig struct {
	Path     string `toml:"path"`
	Colors   int    `toml:"colors"`
	ANSIDir  string `toml:"ansi_dir"`  // Per-frame ANSI text export, empty disables
	ANSIMode string `toml:"ansi_mode"` // "truecolor" or "256"
}

// Default returns the 96×28 demo configuration
func Default() Config {
	m := raster.DefaultMetrics()
	return Config{
		Grid: GridConfig{
			Rows:      28,
			Cols:      96,
			MenuWidth: render.DefaultTheme().MenuWidth,
			Bounds:    "clamp",
		},
		Font: FontConfig{
			Size: 14,
			DPI:  72,
		},
		Raster: RasterConfig{
			CellW:   m.CellW,
			CellH:   m.CellH,
			Padding: m.Padding,
			ChromeH: m.ChromeH,
			Title:   raster.DefaultChrome().Title,
		},
		Output: OutputConfig{
			Path:     "demo.gif",
			Colors:   64,
			ANSIMode: "truecolor",
		},
	}
}

// Load reads path over the defaults; keys absent from the file keep default values
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	g := c.Grid
	if g.MenuWidth < 10 {
		add("grid.menu_width %d: must be at least 10", g.MenuWidth)
	}
	if g.Rows < 3 {
		add("grid.rows %d: must be at least 3", g.Rows)
	}
	if g.Cols < g.MenuWidth+4 {
		add("grid.cols %d: must leave at least 4 columns beside menu_width %d", g.Cols, g.MenuWidth)
	}
	if _, err := screen.ParseBoundsPolicy(g.Bounds); err != nil {
		add("grid.bounds: %w", err)
	}

	if c.Font.Size <= 0 {
		add("font.size %g: must be positive", c.Font.Size)
	}
	if c.Font.DPI <= 0 {
		add("font.dpi %g: must be positive", c.Font.DPI)
	}

	r := c.Raster
	if r.CellW <= 0 || r.CellH <= 0 {
		add("raster cell size %dx%d: must be positive", r.CellW, r.CellH)
	}
	if r.Padding < 0 {
		add("raster.padding %d: must not be negative", r.Padding)
	}
	if r.ChromeH < 0 {
		add("raster.chrome_h %d: must not be negative", r.ChromeH)
	}

	o := c.Output
	if o.Path == "" {
		add("output.path: must not be empty")
	}
	if o.Colors < 2 || o.Colors > 256 {
		add("output.colors %d: must be within 2..256", o.Colors)
	}
	if _, err := terminal.ParseColorMode(o.ANSIMode); err != nil {
		add("output.ansi_mode: %w", err)
	}

	if _, err := c.BuildPalette(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// BuildPalette applies the palette overrides to the default palette
func (c Config) BuildPalette() (*palette.Palette, error) {
	return palette.New(palette.Default(), c.Palette)
}

// Theme returns the default theme sized to the configured menu width
func (c Config) Theme() render.Theme {
	t := render.DefaultTheme()
	t.MenuWidth = c.Grid.MenuWidth
	return t
}

// Policy returns the grid bounds policy; call after Validate
func (c Config) Policy() screen.BoundsPolicy {
	p, _ := screen.ParseBoundsPolicy(c.Grid.Bounds)
	return p
}

// ColorMode returns the ANSI export color mode; call after Validate
func (c Config) ColorMode() terminal.ColorMode {
	m, _ := terminal.ParseColorMode(c.Output.ANSIMode)
	return m
}

// Metrics returns the raster geometry
func (c Config) Metrics() raster.Metrics {
	return raster.Metrics{
		CellW:   c.Raster.CellW,
		CellH:   c.Raster.CellH,
		Padding: c.Raster.Padding,
		ChromeH: c.Raster.ChromeH,
	}
}

// Chrome returns the default chrome with the configured title
func (c Config) Chrome() raster.Chrome {
	ch := raster.DefaultChrome()
	ch.Title = c.Raster.Title
	return ch
}
