package render

import (
	"fmt"

	"github.com/lixenwraith/termcast/screen"
)

// Renderer composes a full frame: layout, then the go-to popup when present
type Renderer struct {
	layout Layout
	goTo   GoTo
}

// NewRenderer builds a renderer sharing one theme between layout and overlay
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{
		layout: Layout{Theme: theme},
		goTo:   GoTo{Theme: theme},
	}
}

// Theme returns the active theme
func (r *Renderer) Theme() Theme { return r.layout.Theme }

// Compose redraws g from scratch for one UI state
// Returns the grid's recorded bounds error, non-nil only under the reject policy
func (r *Renderer) Compose(g *screen.Grid, s Scene, p *Popup) error {
	r.layout.Draw(g, s)
	if p != nil {
		r.goTo.Draw(g, *p)
	}
	if err := g.Err(); err != nil {
		return fmt.Errorf("compose %q: %w", s.Path, err)
	}
	return nil
}
