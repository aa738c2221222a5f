package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/termcast/anim"
	"github.com/lixenwraith/termcast/script"
)

func TestRun_Demo(t *testing.T) {
	if testing.Short() {
		t.Skip("encodes the full demo")
	}
	dir := t.TempDir()
	out := filepath.Join(dir, "demo.gif")
	ansiDir := filepath.Join(dir, "frames")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-o", out, "-ansi", ansiDir, "-ansi-mode", "256"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	for _, want := range []string{"Terminal: 96×28", "Image: 888×586", "Frames: 24", "23.3s"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stats missing %q:\n%s", want, stderr.String())
		}
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	info, err := anim.Inspect(f)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if info.Frames != 24 || info.Total() != 23280*time.Millisecond {
		t.Errorf("gif has %d frames totalling %v", info.Frames, info.Total())
	}
	if info.Width != 888 || info.Height != 586 || info.LoopCount != 0 {
		t.Errorf("gif info = %+v", info)
	}

	entries, err := os.ReadDir(ansiDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 24 {
		t.Errorf("ansi frames = %d, want 24", len(entries))
	}
	first, err := os.ReadFile(filepath.Join(ansiDir, "frame_000.ans"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(first, []byte("gopher-cli")) || !bytes.Contains(first, []byte("\x1b[38;5;")) {
		t.Error("frame_000.ans lacks expected text or 256-color sequences")
	}
}

func TestRun_DumpScript(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-dump-script"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := script.Decode(&stdout)
	if err != nil {
		t.Fatalf("dumped script does not decode: %v", err)
	}
	steps, err := script.Compile(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) != 24 {
		t.Errorf("steps = %d", len(steps))
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	badScript := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(badScript, []byte("[[steps]]\nmenu = \"nope\"\nduration_ms = 100\n"), 0644); err != nil {
		t.Fatal(err)
	}
	badColor := filepath.Join(dir, "color.toml")
	if err := os.WriteFile(badColor, []byte(colorScript("purpel")), 0644); err != nil {
		t.Fatal(err)
	}
	badFrame := filepath.Join(dir, "long.toml")
	if err := os.WriteFile(badFrame, []byte("[[steps]]\nduration_ms = 700000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"-nope"}, "not defined"},
		{"stray argument", []string{"extra"}, "unexpected arguments"},
		{"bad colors", []string{"-colors", "1"}, "output.colors"},
		{"bad ansi mode", []string{"-ansi-mode", "16"}, "output.ansi_mode"},
		{"missing config", []string{"-config", filepath.Join(dir, "none.toml")}, "failed to read config"},
		{"missing font", []string{"-font", filepath.Join(dir, "none.ttf"), "-o", filepath.Join(dir, "x.gif")}, "failed to read font"},
		{"bad script", []string{"-script", badScript}, "unknown reference"},
		{"unknown line color", []string{"-script", badColor}, `color "purpel"`},
		{"frame too long", []string{"-script", badFrame}, "centiseconds"},
		{"unwritable output", []string{"-script", writeTinyScript(t, dir), "-o", filepath.Join(dir, "no", "such", "x.gif")}, "create output"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func colorScript(color string) string {
	return "[contents]\nc = [{ text = \"hi\", color = \"" + color + "\" }]\n\n[[steps]]\ncontent = \"c\"\nduration_ms = 100\n"
}

func TestRun_ConfigPaletteAddsLineColor(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "termcast.toml")
	if err := os.WriteFile(cfgPath, []byte("[palette]\naccent = \"#ff8800\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	scriptPath := filepath.Join(dir, "accent.toml")
	if err := os.WriteFile(scriptPath, []byte(colorScript("accent")), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	out := filepath.Join(dir, "accent.gif")
	if err := run([]string{"-config", cfgPath, "-script", scriptPath, "-o", out}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

// writeTinyScript writes a one-step script so error paths stay fast
func writeTinyScript(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "tiny.toml")
	if err := os.WriteFile(path, []byte("[[steps]]\nduration_ms = 100\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
