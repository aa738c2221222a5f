package screen

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/termcast/palette"
	"github.com/lixenwraith/termcast/terminal"
)

// ErrOutOfBounds is recorded by a Reject grid for writes outside the grid
var ErrOutOfBounds = errors.New("position out of bounds")

// Cell is one character position: a glyph and two color tokens
type Cell struct {
	Glyph rune
	Fg    palette.Token
	Bg    palette.Token
}

// Blank is the cleared cell state
var Blank = Cell{Glyph: ' ', Fg: palette.Fg, Bg: palette.Bg}

// BoundsPolicy selects how out-of-range writes are treated
type BoundsPolicy uint8

const (
	Clamp  BoundsPolicy = iota // drop silently
	Reject                     // drop and record ErrOutOfBounds
)

// ParseBoundsPolicy accepts "clamp" or "reject"
func ParseBoundsPolicy(s string) (BoundsPolicy, error) {
	switch s {
	case "", "clamp":
		return Clamp, nil
	case "reject":
		return Reject, nil
	}
	return Clamp, fmt.Errorf("unknown bounds policy %q (use 'clamp' or 'reject')", s)
}

// Option configures a Grid
type Option func(*Grid)

// WithPolicy sets the out-of-bounds policy
func WithPolicy(p BoundsPolicy) Option {
	return func(g *Grid) { g.policy = p }
}

// Grid is a fixed rows × cols cell array, row-major
// Not safe for concurrent use; one rendering pipeline owns it
type Grid struct {
	rows, cols int
	cells      []Cell
	policy     BoundsPolicy

	err     error
	dropped int
}

// New creates a cleared grid, non-positive dimensions yield an empty grid
func New(rows, cols int, opts ...Option) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Clear()
	return g
}

// Rows returns grid height
func (g *Grid) Rows() int { return g.rows }

// Cols returns grid width
func (g *Grid) Cols() int { return g.cols }

// Policy returns the active bounds policy
func (g *Grid) Policy() BoundsPolicy { return g.policy }

// Err returns the first out-of-bounds write since the last Clear under Reject, nil otherwise
func (g *Grid) Err() error { return g.err }

// Dropped returns how many writes were dropped since the last Clear
func (g *Grid) Dropped() int { return g.dropped }

// Clear resets every cell to Blank and forgets recorded bounds errors
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Blank
	}
	g.err = nil
	g.dropped = 0
}

// inBounds checks position and records a drop when outside
func (g *Grid) inBounds(row, col int) bool {
	if uint(row) < uint(g.rows) && uint(col) < uint(g.cols) {
		return true
	}
	g.dropped++
	if g.policy == Reject && g.err == nil {
		g.err = fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return false
}

// At returns the cell at (row, col) and whether the position exists
func (g *Grid) At(row, col int) (Cell, bool) {
	if uint(row) >= uint(g.rows) || uint(col) >= uint(g.cols) {
		return Cell{}, false
	}
	return g.cells[row*g.cols+col], true
}

// Put writes one full cell, out-of-bounds positions are dropped
func (g *Grid) Put(row, col int, glyph rune, fg, bg palette.Token) {
	if !g.inBounds(row, col) {
		return
	}
	g.cells[row*g.cols+col] = Cell{Glyph: glyph, Fg: fg, Bg: bg}
}

// Cells returns a row-major copy of the grid
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Row returns a copy of one row, nil when out of range
func (g *Grid) Row(row int) []Cell {
	if uint(row) >= uint(g.rows) {
		return nil
	}
	out := make([]Cell, g.cols)
	copy(out, g.cells[row*g.cols:(row+1)*g.cols])
	return out
}

// RowText returns the glyphs of one row as a string
func (g *Grid) RowText(row int) string {
	cells := g.Row(row)
	runes := make([]rune, len(cells))
	for i, c := range cells {
		runes[i] = c.Glyph
	}
	return string(runes)
}

// Resolve maps every cell through p into terminal cells for export
func (g *Grid) Resolve(p *palette.Palette) []terminal.Cell {
	out := make([]terminal.Cell, len(g.cells))
	for i, c := range g.cells {
		out[i] = terminal.Cell{
			Rune: c.Glyph,
			Fg:   p.Resolve(c.Fg, false),
			Bg:   p.Resolve(c.Bg, true),
		}
	}
	return out
}
