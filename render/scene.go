package render

import (
	"fmt"

	"github.com/lixenwraith/termcast/palette"
)

// Focus selects which pane owns keyboard focus
type Focus uint8

const (
	FocusMenu Focus = iota
	FocusContent
)

func (f Focus) String() string {
	if f == FocusContent {
		return "content"
	}
	return "menu"
}

// ParseFocus accepts "menu" (or empty) and "content"
func ParseFocus(s string) (Focus, error) {
	switch s {
	case "", "menu":
		return FocusMenu, nil
	case "content":
		return FocusContent, nil
	}
	return FocusMenu, fmt.Errorf("unknown focus %q (use 'menu' or 'content')", s)
}

// Mode is the status bar input mode
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeSearch
)

// MenuItem is one entry of the menu pane
type MenuItem struct {
	Kind  Kind
	Label string
}

// Line is one content pane line with its color token
type Line struct {
	Text  string
	Color palette.Token
}

// Scene describes one full two-pane UI state
type Scene struct {
	Path     string
	Items    []MenuItem
	Selected int // index into Items, out of range highlights nothing
	Content  []Line
	Focus    Focus
	Loading  bool

	Status      string // error message shown in the status bar
	Mode        Mode
	SearchInput string
}

// Entry is one row of the go-to list
type Entry struct {
	Depth    int
	Dir      bool
	Expanded bool
	Label    string
}

// Popup describes the go-to overlay
type Popup struct {
	Query    string
	Entries  []Entry
	Selected int
}
