package palette

import (
	"testing"

	"github.com/lixenwraith/termcast/terminal"
)

func TestDefault_ExactValues(t *testing.T) {
	p := Default()
	tests := []struct {
		tok  Token
		want terminal.RGB
	}{
		{Bg, terminal.RGB{R: 13, G: 17, B: 23}},
		{Fg, terminal.RGB{R: 201, G: 209, B: 217}},
		{StatusBg, terminal.RGB{R: 22, G: 27, B: 34}},
		{GreenSel, terminal.RGB{R: 30, G: 70, B: 35}},
		{TitleTxt, terminal.RGB{R: 139, G: 148, B: 158}},
	}
	for _, tt := range tests {
		got, ok := p.Lookup(tt.tok)
		if !ok {
			t.Errorf("token %q missing", tt.tok)
			continue
		}
		if got != tt.want {
			t.Errorf("%q = %v, want %v", tt.tok, got, tt.want)
		}
	}
	if n := len(p.Tokens()); n != 16 {
		t.Errorf("expected 16 tokens, got %d", n)
	}
}

func TestResolve_FallsBackForUnknown(t *testing.T) {
	p := Default()
	fg, _ := p.Lookup(Fg)
	bg, _ := p.Lookup(Bg)
	if got := p.Resolve("nope", false); got != fg {
		t.Errorf("unknown fg token resolved to %v, want %v", got, fg)
	}
	if got := p.Resolve("nope", true); got != bg {
		t.Errorf("unknown bg token resolved to %v, want %v", got, bg)
	}
}

func TestNew_Overrides(t *testing.T) {
	p, err := New(Default(), map[string]string{
		"bg":     "#000000",
		"accent": "#abc",
		"cyan":   "Aqua",
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got, _ := p.Lookup(Bg); got != (terminal.RGB{}) {
		t.Errorf("bg override not applied: %v", got)
	}
	if got, _ := p.Lookup("accent"); got != (terminal.RGB{R: 0xaa, G: 0xbb, B: 0xcc}) {
		t.Errorf("short hex parsed as %v", got)
	}
	if got, _ := p.Lookup(Cyan); got != (terminal.RGB{R: 0, G: 255, B: 255}) {
		t.Errorf("named color parsed as %v", got)
	}

	// Base must be untouched
	if got, _ := Default().Lookup(Bg); got == (terminal.RGB{}) {
		t.Error("base palette mutated")
	}
}

func TestNew_InvalidColor(t *testing.T) {
	if _, err := New(Default(), map[string]string{"fg": "#zzzzzz"}); err == nil {
		t.Error("expected error for bad hex")
	}
	if _, err := New(Default(), map[string]string{"fg": "notacolor"}); err == nil {
		t.Error("expected error for unknown name")
	}
}
