package render

import "github.com/lixenwraith/termcast/palette"

// Kind is the single-character item type of a menu entry
type Kind string

const (
	KindMenu   Kind = "1"
	KindText   Kind = "0"
	KindSearch Kind = "7"
	KindHTML   Kind = "h"
	KindInfo   Kind = "i"
)

// Indicator is the three-column marker drawn before a menu label
type Indicator struct {
	Glyphs string
	Color  palette.Token
}

// Theme carries every layout constant and color role used by Layout and GoTo
type Theme struct {
	MenuWidth int

	FocusBorder palette.Token
	BlurBorder  palette.Token
	SelectionBg palette.Token

	StatusBg     palette.Token
	PathFg       palette.Token
	LoadingFg    palette.Token
	HelpFg       palette.Token
	MessageFg    palette.Token
	SearchFg     palette.Token
	SearchTextFg palette.Token

	PopupBg     palette.Token
	PopupAccent palette.Token
	PopupSelBg  palette.Token
	PopupTextFg palette.Token
	DirFg       palette.Token
	FileFg      palette.Token

	HelpText    string
	LoadingText string

	Kinds    map[Kind]Indicator
	Fallback Indicator
}

// DefaultTheme returns the stock dark theme with a 38-column menu pane
func DefaultTheme() Theme {
	return Theme{
		MenuWidth: 38,

		FocusBorder: palette.Cyan,
		BlurBorder:  palette.DarkGray,
		SelectionBg: palette.SelBg,

		StatusBg:     palette.StatusBg,
		PathFg:       palette.Cyan,
		LoadingFg:    palette.Yellow,
		HelpFg:       palette.DarkGray,
		MessageFg:    palette.Red,
		SearchFg:     palette.Yellow,
		SearchTextFg: palette.Fg,

		PopupBg:     palette.PopupBg,
		PopupAccent: palette.Green,
		PopupSelBg:  palette.GreenSel,
		PopupTextFg: palette.Fg,
		DirFg:       palette.Yellow,
		FileFg:      palette.White,

		HelpText:    " q:quit  b:back  /:search  ::goto  Tab:pane  Enter:open",
		LoadingText: " loading… ",

		Kinds: map[Kind]Indicator{
			KindMenu:   {Glyphs: "[+]", Color: palette.Yellow},
			KindText:   {Glyphs: "[T]", Color: palette.White},
			KindSearch: {Glyphs: "[?]", Color: palette.Green},
			KindHTML:   {Glyphs: "[H]", Color: palette.Magenta},
			KindInfo:   {Glyphs: "   ", Color: palette.DarkGray},
		},
		Fallback: Indicator{Glyphs: "[.]", Color: palette.DarkGray},
	}
}

// Indicator returns the marker for k, or the fallback for unknown kinds
func (t Theme) Indicator(k Kind) Indicator {
	if ind, ok := t.Kinds[k]; ok {
		return ind
	}
	return t.Fallback
}
