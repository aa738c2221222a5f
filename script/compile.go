package script

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lixenwraith/termcast/anim"
	"github.com/lixenwraith/termcast/palette"
	"github.com/lixenwraith/termcast/render"
	"github.com/lixenwraith/termcast/timeline"
)

// ErrUnknownRef is returned when a step names a menu, content or target list that does not exist,
// or a content line names a color the palette does not define
var ErrUnknownRef = errors.New("unknown reference")

// Option configures Compile
type Option func(*compiler)

type compiler struct {
	palette *palette.Palette
}

// WithPalette checks content colors against p instead of the default palette
func WithPalette(p *palette.Palette) Option {
	return func(c *compiler) {
		if p != nil {
			c.palette = p
		}
	}
}

// Compile resolves named blocks and validates every step
// All problems are reported together; no steps are returned on error
func Compile(f File, opts ...Option) ([]timeline.Step, error) {
	c := compiler{palette: palette.Default()}
	for _, opt := range opts {
		opt(&c)
	}

	if len(f.Steps) == 0 {
		return nil, errors.New("script has no steps")
	}

	var errs []error

	// 1. Convert named blocks once; steps share them read-only
	menus := make(map[string][]render.MenuItem, len(f.Menus))
	for _, name := range sortedKeys(f.Menus) {
		items := make([]render.MenuItem, len(f.Menus[name]))
		for i, it := range f.Menus[name] {
			items[i] = render.MenuItem{Kind: render.Kind(it.Kind), Label: it.Label}
		}
		menus[name] = items
	}

	contents := make(map[string][]render.Line, len(f.Contents))
	for _, name := range sortedKeys(f.Contents) {
		lines := make([]render.Line, len(f.Contents[name]))
		for i, l := range f.Contents[name] {
			color := palette.Token(l.Color)
			if color == "" {
				color = palette.Fg
			}
			if !c.palette.Has(color) {
				errs = append(errs, fmt.Errorf("contents %q line %d: color %q: %w", name, i, l.Color, ErrUnknownRef))
			}
			lines[i] = render.Line{Text: l.Text, Color: color}
		}
		contents[name] = lines
	}

	targets := make(map[string][]render.Entry, len(f.Targets))
	for _, name := range sortedKeys(f.Targets) {
		entries := make([]render.Entry, len(f.Targets[name]))
		for i, t := range f.Targets[name] {
			if t.Depth < 0 {
				errs = append(errs, fmt.Errorf("targets %q entry %d: negative depth %d", name, i, t.Depth))
			}
			entries[i] = render.Entry{Depth: t.Depth, Dir: t.Dir, Expanded: t.Expanded, Label: t.Label}
		}
		targets[name] = entries
	}

	// 2. Build steps, collecting every validation failure
	steps := make([]timeline.Step, 0, len(f.Steps))
	for i, def := range f.Steps {
		step, err := compileStep(def, menus, contents, targets)
		if err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i, err))
			continue
		}
		steps = append(steps, step)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return steps, nil
}

func compileStep(def StepDef, menus map[string][]render.MenuItem, contents map[string][]render.Line, targets map[string][]render.Entry) (timeline.Step, error) {
	var errs []error

	scene := render.Scene{
		Path:        def.Path,
		Selected:    def.Selected,
		Loading:     def.Loading,
		Status:      def.Status,
		SearchInput: def.Input,
	}

	if def.Menu != "" {
		items, ok := menus[def.Menu]
		if !ok {
			errs = append(errs, fmt.Errorf("menu %q: %w", def.Menu, ErrUnknownRef))
		}
		scene.Items = items
	}
	if def.Content != "" {
		lines, ok := contents[def.Content]
		if !ok {
			errs = append(errs, fmt.Errorf("content %q: %w", def.Content, ErrUnknownRef))
		}
		scene.Content = lines
	}

	focus, err := render.ParseFocus(def.Focus)
	if err != nil {
		errs = append(errs, err)
	}
	scene.Focus = focus

	switch def.Mode {
	case "", "normal":
		scene.Mode = render.ModeNormal
	case "search":
		scene.Mode = render.ModeSearch
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q (use 'normal' or 'search')", def.Mode))
	}

	d := time.Duration(def.DurationMS) * time.Millisecond
	if _, err := anim.Delay(d); err != nil {
		errs = append(errs, fmt.Errorf("duration_ms %d: %w", def.DurationMS, err))
	}

	var popup *render.Popup
	if def.Popup != nil {
		all, ok := targets[def.Popup.Targets]
		if !ok {
			errs = append(errs, fmt.Errorf("targets %q: %w", def.Popup.Targets, ErrUnknownRef))
		}
		popup = &render.Popup{
			Query:    def.Popup.Query,
			Entries:  Filter(all, def.Popup.Query),
			Selected: def.Popup.Selected,
		}
	}

	if len(errs) > 0 {
		return timeline.Step{}, errors.Join(errs...)
	}
	return timeline.Step{Scene: scene, Popup: popup, Duration: d}, nil
}

// sortedKeys gives deterministic iteration for error output
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
