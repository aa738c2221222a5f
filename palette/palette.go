// Package palette maps the logical color tokens carried by grid cells to exact RGB values
package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termcast/terminal"
)

// Token names a color role; cells store tokens, never raw colors
type Token string

const (
	Bg       Token = "bg"
	Fg       Token = "fg"
	Cyan     Token = "cyan"
	Yellow   Token = "yellow"
	Green    Token = "green"
	Magenta  Token = "magenta"
	DarkGray Token = "darkgray"
	White    Token = "white"
	Red      Token = "red"
	Black    Token = "black"
	SelBg    Token = "sel_bg"
	StatusBg Token = "status_bg"
	GreenSel Token = "green_sel"
	PopupBg  Token = "popup_bg"
	TitleBar Token = "titlebar"
	TitleTxt Token = "titletxt"
)

// Palette is a read-only token table; construct with New or Default and share freely
type Palette struct {
	colors map[Token]terminal.RGB
}

// Default returns the built-in dark palette
func Default() *Palette {
	return &Palette{colors: map[Token]terminal.RGB{
		Bg:       {R: 13, G: 17, B: 23},
		Fg:       {R: 201, G: 209, B: 217},
		Cyan:     {R: 86, G: 209, B: 219},
		Yellow:   {R: 229, G: 192, B: 123},
		Green:    {R: 152, G: 195, B: 121},
		Magenta:  {R: 198, G: 120, B: 221},
		DarkGray: {R: 110, G: 118, B: 129},
		White:    {R: 224, G: 228, B: 233},
		Red:      {R: 240, G: 113, B: 120},
		Black:    {R: 1, G: 4, B: 9},
		SelBg:    {R: 48, G: 54, B: 61},
		StatusBg: {R: 22, G: 27, B: 34},
		GreenSel: {R: 30, G: 70, B: 35},
		PopupBg:  {R: 22, G: 27, B: 34},
		TitleBar: {R: 30, G: 34, B: 42},
		TitleTxt: {R: 139, G: 148, B: 158},
	}}
}

// New builds a palette from base with overrides applied
// Override values are "#rrggbb" or a W3C color name; fg and bg must resolve afterwards
func New(base *Palette, overrides map[string]string) (*Palette, error) {
	colors := make(map[Token]terminal.RGB, len(base.colors)+len(overrides))
	for k, v := range base.colors {
		colors[k] = v
	}

	// Sorted for stable error reporting
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		c, err := ParseColor(overrides[k])
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", k, err)
		}
		colors[Token(k)] = c
	}

	if _, ok := colors[Fg]; !ok {
		return nil, fmt.Errorf("palette missing %q", Fg)
	}
	if _, ok := colors[Bg]; !ok {
		return nil, fmt.Errorf("palette missing %q", Bg)
	}
	return &Palette{colors: colors}, nil
}

// ParseColor accepts "#rrggbb", "#rgb" or a named color known to tcell
func ParseColor(s string) (terminal.RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return terminal.RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return terminal.RGB{R: r, G: g, B: b}, nil
	}

	tc := tcell.GetColor(strings.ToLower(s))
	if tc == tcell.ColorDefault || !tc.Valid() {
		return terminal.RGB{}, fmt.Errorf("unknown color %q", s)
	}
	r, g, b := tc.RGB()
	if r < 0 {
		return terminal.RGB{}, fmt.Errorf("color %q has no RGB value", s)
	}
	return terminal.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Lookup returns the color for tok and whether it is defined
func (p *Palette) Lookup(tok Token) (terminal.RGB, bool) {
	c, ok := p.colors[tok]
	return c, ok
}

// Resolve returns the color for tok, falling back to fg (or bg when isBg) for unknown tokens
func (p *Palette) Resolve(tok Token, isBg bool) terminal.RGB {
	if c, ok := p.colors[tok]; ok {
		return c
	}
	if isBg {
		return p.colors[Bg]
	}
	return p.colors[Fg]
}

// Has reports whether tok is defined
func (p *Palette) Has(tok Token) bool {
	_, ok := p.colors[tok]
	return ok
}

// Tokens returns all defined tokens in sorted order
func (p *Palette) Tokens() []Token {
	toks := make([]Token, 0, len(p.colors))
	for k := range p.colors {
		toks = append(toks, k)
	}
	sort.Slice(toks, func(i, j int) bool { return toks[i] < toks[j] })
	return toks
}
