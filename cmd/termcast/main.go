// termcast renders a scripted terminal browsing session into a looping GIF.
//
// Usage examples:
//
// # Built-in demo to demo.gif
// ./termcast
//
// # Custom script and output, 256-color ANSI frames alongside
// ./termcast -script session.toml -o session.gif -ansi frames -ansi-mode 256
//
// # Write the built-in demo script as a starting point
// ./termcast -dump-script > session.toml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/termcast/anim"
	"github.com/lixenwraith/termcast/config"
	"github.com/lixenwraith/termcast/palette"
	"github.com/lixenwraith/termcast/raster"
	"github.com/lixenwraith/termcast/render"
	"github.com/lixenwraith/termcast/screen"
	"github.com/lixenwraith/termcast/script"
	"github.com/lixenwraith/termcast/terminal"
	"github.com/lixenwraith/termcast/timeline"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds flag values; zero values leave the config untouched
type options struct {
	configPath string
	scriptPath string
	output     string
	fontPath   string
	colors     int
	ansiDir    string
	ansiMode   string
	dumpScript bool
	debug      bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("termcast", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "TOML config file")
	fs.StringVar(&o.scriptPath, "script", "", "Session script (TOML), default is the built-in demo")
	fs.StringVar(&o.output, "o", "", "Output GIF path")
	fs.StringVar(&o.fontPath, "font", "", "TrueType/OpenType font file, default is embedded Go Mono")
	fs.IntVar(&o.colors, "colors", 0, "Palette size per frame (2-256)")
	fs.StringVar(&o.ansiDir, "ansi", "", "Also write each frame as ANSI text into this directory")
	fs.StringVar(&o.ansiMode, "ansi-mode", "", "ANSI color depth: 'truecolor' or '256'")
	fs.BoolVar(&o.dumpScript, "dump-script", false, "Print the built-in demo script as TOML and exit")
	fs.BoolVar(&o.debug, "debug", false, "Write debug log to logs/termcast.log")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return o, nil
}

func loadConfig(o options) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
		log.Printf("config loaded from %s", o.configPath)
	}

	if o.scriptPath != "" {
		cfg.Script = o.scriptPath
	}
	if o.output != "" {
		cfg.Output.Path = o.output
	}
	if o.fontPath != "" {
		cfg.Font.Path = o.fontPath
	}
	if o.colors != 0 {
		cfg.Output.Colors = o.colors
	}
	if o.ansiDir != "" {
		cfg.Output.ANSIDir = o.ansiDir
	}
	if o.ansiMode != "" {
		cfg.Output.ANSIMode = o.ansiMode
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

func loadTimeline(path string, pal *palette.Palette) (*timeline.Timeline, error) {
	file := script.Demo()
	if path != "" {
		var err error
		if file, err = script.Load(path); err != nil {
			return nil, err
		}
	}
	steps, err := script.Compile(file, script.WithPalette(pal))
	if err != nil {
		return nil, fmt.Errorf("invalid script:\n%w", err)
	}
	return timeline.New(steps...), nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if logFile := setupLogging(o.debug); logFile != nil {
		defer logFile.Close()
	}

	if o.dumpScript {
		return script.Encode(stdout, script.Demo())
	}

	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}

	pal, err := cfg.BuildPalette()
	if err != nil {
		return err
	}

	tl, err := loadTimeline(cfg.Script, pal)
	if err != nil {
		return err
	}
	log.Printf("timeline: %d steps, %v", tl.Len(), tl.TotalDuration())

	face, err := raster.LoadFace(cfg.Font.Path, cfg.Font.Size, cfg.Font.DPI)
	if err != nil {
		return err
	}
	defer face.Close()

	rows, cols := cfg.Grid.Rows, cfg.Grid.Cols
	m := cfg.Metrics()
	rast := raster.New(m, cfg.Chrome(), pal, face)
	renderer := render.NewRenderer(cfg.Theme())
	grid := screen.New(rows, cols, screen.WithPolicy(cfg.Policy()))

	size := rast.Size(rows, cols)
	fmt.Fprintf(stderr, "Terminal: %d×%d  |  Char: %d×%d  |  Font: %gpt\n", cols, rows, m.CellW, m.CellH, cfg.Font.Size)
	fmt.Fprintf(stderr, "Image: %d×%d\n", size.X, size.Y)

	if cfg.Output.ANSIDir != "" {
		if err := writeANSI(cfg.Output.ANSIDir, tl, grid, renderer, pal, cfg.ColorMode()); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "ANSI: %d frames in %s\n", tl.Len(), cfg.Output.ANSIDir)
	}

	frames, err := tl.Frames(grid, renderer, rast)
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "Frames: %d\n", len(frames))
	if n := grid.Dropped(); n > 0 {
		log.Printf("last frame dropped %d out-of-bounds writes", n)
	}

	enc := anim.NewEncoder(cfg.Output.Colors)
	if err := enc.WriteFile(cfg.Output.Path, frames); err != nil {
		return err
	}

	info, err := os.Stat(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("failed to stat output: %w", err)
	}
	total := anim.Total(frames)
	fmt.Fprintf(stderr, "Saved: %s  (%.0f KB, %.1fs, %d frames)\n",
		cfg.Output.Path, float64(info.Size())/1024, total.Seconds(), len(frames))
	return nil
}

// writeANSI replays the timeline and writes frame_NNN.ans per step into dir
func writeANSI(dir string, tl *timeline.Timeline, g *screen.Grid, c timeline.Composer, p *palette.Palette, mode terminal.ColorMode) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create ANSI directory: %w", err)
	}
	return tl.Replay(g, c, func(i int, _ timeline.Step, g *screen.Grid) error {
		path := filepath.Join(dir, fmt.Sprintf("frame_%03d.ans", i))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := terminal.WriteFrame(f, g.Resolve(p), g.Cols(), g.Rows(), mode); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close %s: %w", path, err)
		}
		log.Printf("ansi frame %d written", i)
		return nil
	})
}
