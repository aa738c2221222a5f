package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/termcast/palette"
	"github.com/lixenwraith/termcast/screen"
)

const (
	popupMinW   = 30
	popupMinH   = 8
	inputHeight = 3
	prompt      = "> "
	dirOpen     = "[-] "
	dirClosed   = "[+] "
	fileMarker  = "    "
)

// Rect is a cell-space rectangle
type Rect struct {
	Top, Left, Height, Width int
}

// PopupRect returns the go-to popup rectangle centered in a rows × cols grid:
// 58% of the width (at least 30) and 60% of the height (at least 8)
func PopupRect(rows, cols int) Rect {
	w := max(cols*58/100, popupMinW)
	h := max(rows*60/100, popupMinH)
	return Rect{
		Top:    (rows - h) / 2,
		Left:   (cols - w) / 2,
		Height: h,
		Width:  w,
	}
}

// GoTo draws the go-to popup over an already drawn layout
type GoTo struct {
	Theme Theme
}

// EntryBudget is the rune budget of one list row in a popup of the given width
func (GoTo) EntryBudget(width int) int {
	return width - 5
}

// Draw composites p onto g; cells outside the popup rectangle are untouched
func (o GoTo) Draw(g *screen.Grid, p Popup) {
	t := o.Theme
	r := PopupRect(g.Rows(), g.Cols())
	x0, y0, pw, ph := r.Left, r.Top, r.Width, r.Height

	g.FillArea(y0, x0, ph, pw, t.PopupBg)
	g.BlankArea(y0, x0, ph, pw, t.PopupBg)

	// Input box
	title := fmt.Sprintf(" Go to (%d) Tab:expand ", len(p.Entries))
	g.Box(y0, x0, inputHeight, pw, t.PopupAccent, Clip(title, pw-2))
	g.ClearArea(y0+1, x0+1, 1, pw-2, t.PopupBg)
	query := Clip(p.Query, pw-5)
	g.Text(y0+1, x0+1, prompt, t.PopupAccent, t.PopupBg)
	g.Text(y0+1, x0+3, query, t.PopupTextFg, t.PopupBg)
	g.Text(y0+1, x0+3+runeLen(query), caret, t.PopupAccent, t.PopupBg)

	// List frame continues below the input box without a top rule
	listTop := y0 + inputHeight
	bottom := y0 + ph - 1
	g.VLine(listTop, x0, bottom-listTop, t.PopupAccent)
	g.VLine(listTop, x0+pw-1, bottom-listTop, t.PopupAccent)
	g.Put(bottom, x0, screen.CornerBL, t.PopupAccent, palette.Bg)
	g.Put(bottom, x0+pw-1, screen.CornerBR, t.PopupAccent, palette.Bg)
	g.HLine(bottom, x0+1, pw-2, t.PopupAccent)
	g.ClearArea(listTop, x0+1, bottom-listTop, pw-2, t.PopupBg)

	budget := o.EntryBudget(pw)
	for i, e := range p.Entries {
		row := listTop + i
		if row >= bottom {
			break
		}
		text := Clip(entryText(e), budget)
		fg := t.FileFg
		if e.Dir {
			fg = t.DirFg
		}
		if i == p.Selected {
			g.FillBg(row, x0+1, x0+pw-1, t.PopupSelBg)
			g.Text(row, x0+2, prompt, t.PopupAccent, t.PopupSelBg)
			g.Text(row, x0+4, text, fg, t.PopupSelBg)
			continue
		}
		g.Text(row, x0+4, text, fg, t.PopupBg)
	}
}

func entryText(e Entry) string {
	marker := fileMarker
	if e.Dir {
		marker = dirClosed
		if e.Expanded {
			marker = dirOpen
		}
	}
	return strings.Repeat("  ", max(e.Depth, 0)) + marker + e.Label
}
