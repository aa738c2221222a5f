package screen

import "github.com/lixenwraith/termcast/palette"

// Single-line box drawing characters
const (
	CornerTL   = '┌'
	CornerTR   = '┐'
	CornerBL   = '└'
	CornerBR   = '┘'
	Horizontal = '─'
	Vertical   = '│'
)

// Text writes s at consecutive columns from col, one Put per rune
func (g *Grid) Text(row, col int, s string, fg, bg palette.Token) {
	i := 0
	for _, ch := range s {
		g.Put(row, col+i, ch, fg, bg)
		i++
	}
}

// HLine writes width horizontal rule glyphs on the default background
func (g *Grid) HLine(row, col, width int, fg palette.Token) {
	for i := 0; i < width; i++ {
		g.Put(row, col+i, Horizontal, fg, palette.Bg)
	}
}

// VLine writes height vertical rule glyphs on the default background
func (g *Grid) VLine(row, col, height int, fg palette.Token) {
	for i := 0; i < height; i++ {
		g.Put(row+i, col, Vertical, fg, palette.Bg)
	}
}

// Box draws a single-line border; the interior is left untouched
// A non-empty title is written from left+1 on the top row in the border color
func (g *Grid) Box(top, left, height, width int, color palette.Token, title string) {
	bottom := top + height - 1
	right := left + width - 1

	// Corners
	g.Put(top, left, CornerTL, color, palette.Bg)
	g.Put(top, right, CornerTR, color, palette.Bg)
	g.Put(bottom, left, CornerBL, color, palette.Bg)
	g.Put(bottom, right, CornerBR, color, palette.Bg)

	// Edges
	g.HLine(top, left+1, width-2, color)
	g.HLine(bottom, left+1, width-2, color)
	for r := top + 1; r < bottom; r++ {
		g.Put(r, left, Vertical, color, palette.Bg)
		g.Put(r, right, Vertical, color, palette.Bg)
	}

	if title != "" {
		g.Text(top, left+1, title, color, palette.Bg)
	}
}

// FillBg sets the background of columns [colStart, colEnd) on row, keeping glyph and fg
func (g *Grid) FillBg(row, colStart, colEnd int, bg palette.Token) {
	for c := colStart; c < colEnd; c++ {
		if !g.inBounds(row, c) {
			continue
		}
		g.cells[row*g.cols+c].Bg = bg
	}
}

// FillArea applies FillBg to height rows starting at top
func (g *Grid) FillArea(top, left, height, width int, bg palette.Token) {
	for r := top; r < top+height; r++ {
		g.FillBg(r, left, left+width, bg)
	}
}

// BlankArea replaces every non-space glyph in the rectangle with a space on bg
// Cells already holding a space keep their fg
func (g *Grid) BlankArea(top, left, height, width int, bg palette.Token) {
	for r := top; r < top+height; r++ {
		for c := left; c < left+width; c++ {
			cell, ok := g.At(r, c)
			if !ok || cell.Glyph == ' ' {
				continue
			}
			g.cells[r*g.cols+c] = Cell{Glyph: ' ', Fg: palette.Fg, Bg: bg}
		}
	}
}

// ClearArea writes a blank cell with fg and bg to every position in the rectangle
func (g *Grid) ClearArea(top, left, height, width int, bg palette.Token) {
	for r := top; r < top+height; r++ {
		for c := left; c < left+width; c++ {
			g.Put(r, c, ' ', palette.Fg, bg)
		}
	}
}
