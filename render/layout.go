package render

import (
	"github.com/lixenwraith/termcast/palette"
	"github.com/lixenwraith/termcast/screen"
)

const (
	menuGlyph   = " >(^.^)> "
	contentName = " Content "
	selMarker   = ">> "
	searchLabel = "Search: "
	caret       = "_"
)

// Layout draws the two-pane browser layout with the status bar on the last row
type Layout struct {
	Theme Theme
}

// LabelBudget is the rune budget of a menu label: borders plus the ">> [+] " prefix
func (l Layout) LabelBudget() int {
	return l.Theme.MenuWidth - 2 - 7
}

// ContentBudget is the rune budget of a content line in a grid of cols columns
func (l Layout) ContentBudget(cols int) int {
	return cols - l.Theme.MenuWidth - 3
}

// Draw clears g and renders s; rows beyond pane capacity are skipped
func (l Layout) Draw(g *screen.Grid, s Scene) {
	t := l.Theme
	rows, cols := g.Rows(), g.Cols()
	bodyH := rows - 1
	menuW := t.MenuWidth
	contentW := cols - menuW

	g.Clear()

	menuBorder, contentBorder := t.FocusBorder, t.BlurBorder
	if s.Focus == FocusContent {
		menuBorder, contentBorder = t.BlurBorder, t.FocusBorder
	}

	title := menuGlyph + "/ "
	if s.Path != "" {
		title = menuGlyph + s.Path + " "
	}
	g.Box(0, 0, bodyH, menuW, menuBorder, Clip(title, menuW-2))
	g.Box(0, menuW, bodyH, contentW, contentBorder, Clip(contentName, contentW-2))

	l.drawItems(g, s, bodyH)
	l.drawContent(g, s, bodyH, cols)
	l.drawStatus(g, s, rows-1, cols)
}

func (l Layout) drawItems(g *screen.Grid, s Scene, bodyH int) {
	t := l.Theme
	budget := l.LabelBudget()
	for i, item := range s.Items {
		row := 1 + i
		if row >= bodyH-1 {
			break
		}
		ind := t.Indicator(item.Kind)
		text := ind.Glyphs + " " + Clip(item.Label, budget)
		if i == s.Selected {
			g.FillBg(row, 1, t.MenuWidth-1, t.SelectionBg)
			g.Text(row, 1, selMarker, ind.Color, t.SelectionBg)
			g.Text(row, 4, text, ind.Color, t.SelectionBg)
			continue
		}
		g.Text(row, 4, text, ind.Color, palette.Bg)
	}
}

func (l Layout) drawContent(g *screen.Grid, s Scene, bodyH, cols int) {
	budget := l.ContentBudget(cols)
	col := l.Theme.MenuWidth + 2
	for i, line := range s.Content {
		row := 1 + i
		if row >= bodyH-1 {
			break
		}
		g.Text(row, col, Clip(line.Text, budget), line.Color, palette.Bg)
	}
}

// drawStatus paints the status row; segments are separated by one column
// and clipped at the right edge
func (l Layout) drawStatus(g *screen.Grid, s Scene, row, cols int) {
	t := l.Theme
	g.FillBg(row, 0, cols, t.StatusBg)

	col := 1
	write := func(text string, fg palette.Token, gap int) {
		g.Text(row, col, Clip(text, cols-col), fg, t.StatusBg)
		col += runeLen(text) + gap
	}

	if s.Mode == ModeSearch {
		write(searchLabel, t.SearchFg, 0)
		write(s.SearchInput, t.SearchTextFg, 0)
		write(caret, t.SearchFg, 0)
		return
	}

	path := s.Path
	if path == "" {
		path = "/"
	}
	write(path, t.PathFg, 1)
	if s.Loading {
		write(t.LoadingText, t.LoadingFg, 1)
	}
	if s.Status != "" {
		write(" "+s.Status+" ", t.MessageFg, 1)
	}
	write(t.HelpText, t.HelpFg, 0)
}
