package anim

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, 0xff
	}
	return img
}

// split paints the left half a and the right half b
func split(w, h int, a, b color.RGBA) *image.RGBA {
	img := solid(w, h, a)
	for y := 0; y < h; y++ {
		for x := w / 2; x < w; x++ {
			img.SetRGBA(x, y, b)
		}
	}
	return img
}

func TestDelay(t *testing.T) {
	tests := []struct {
		d       time.Duration
		want    int
		wantErr bool
	}{
		{2200 * time.Millisecond, 220, false},
		{320 * time.Millisecond, 32, false},
		{10 * time.Millisecond, 1, false},
		{MaxDelay, 65535, false},
		{MaxDelay + Centisecond, 0, true},
		{700 * time.Second, 0, true},
		{15 * time.Millisecond, 0, true},
		{time.Millisecond, 0, true},
		{0, 0, true},
		{-time.Second, 0, true},
	}
	for _, tt := range tests {
		got, err := Delay(tt.d)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Delay(%v) expected error", tt.d)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("Delay(%v) = %d, %v; want %d", tt.d, got, err, tt.want)
		}
	}

	for _, d := range []time.Duration{15 * time.Millisecond, 700 * time.Second} {
		if _, err := Delay(d); !errors.Is(err, ErrDelayResolution) {
			t.Errorf("Delay(%v): expected ErrDelayResolution, got %v", d, err)
		}
	}
}

func TestEncode_RoundTripDurations(t *testing.T) {
	bg := color.RGBA{R: 13, G: 17, B: 23, A: 0xff}
	fg := color.RGBA{R: 201, G: 209, B: 217, A: 0xff}
	durations := []time.Duration{
		2200 * time.Millisecond,
		800 * time.Millisecond,
		320 * time.Millisecond,
		3500 * time.Millisecond,
	}

	var frames []Frame
	for i, d := range durations {
		img := solid(24, 16, bg)
		if i%2 == 1 {
			img = split(24, 16, bg, fg)
		}
		frames = append(frames, Frame{Image: img, Duration: d})
	}

	var buf bytes.Buffer
	if err := NewEncoder(0).Encode(&buf, frames); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	info, err := Inspect(&buf)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if info.Frames != len(frames) {
		t.Fatalf("frames = %d, want %d", info.Frames, len(frames))
	}
	for i, d := range durations {
		if info.Delays[i] != d {
			t.Errorf("frame %d delay = %v, want %v", i, info.Delays[i], d)
		}
	}
	if info.Total() != Total(frames) {
		t.Errorf("total = %v, want %v", info.Total(), Total(frames))
	}
	if info.LoopCount != 0 {
		t.Errorf("loop count = %d, want 0 (forever)", info.LoopCount)
	}
	if info.Width != 24 || info.Height != 16 {
		t.Errorf("size = %dx%d", info.Width, info.Height)
	}
}

func TestEncode_PreservesFlatColors(t *testing.T) {
	a := color.RGBA{R: 255, G: 95, B: 86, A: 0xff}
	b := color.RGBA{R: 39, G: 201, B: 63, A: 0xff}
	img := split(32, 8, a, b)

	q := quantizeFrame(img, DefaultColors)
	if len(q.Palette) > DefaultColors {
		t.Fatalf("palette size = %d", len(q.Palette))
	}

	near := func(got color.Color, want color.RGBA) bool {
		r, g, bb, _ := got.RGBA()
		d := func(x uint32, y uint8) int {
			v := int(x>>8) - int(y)
			if v < 0 {
				v = -v
			}
			return v
		}
		return d(r, want.R) <= 8 && d(g, want.G) <= 8 && d(bb, want.B) <= 8
	}
	if got := q.At(0, 0); !near(got, a) {
		t.Errorf("left pixel = %v, want ~%v", got, a)
	}
	if got := q.At(31, 7); !near(got, b) {
		t.Errorf("right pixel = %v, want ~%v", got, b)
	}
}

func TestPaletteMapper_NearestAndCached(t *testing.T) {
	pal := color.Palette{
		color.RGBA{0, 0, 0, 0xff},
		color.RGBA{255, 255, 255, 0xff},
		color.RGBA{200, 0, 0, 0xff},
	}
	m := newPaletteMapper(pal)

	if got := m.index(color.RGBA{10, 10, 10, 0xff}); got != 0 {
		t.Errorf("near-black mapped to %d", got)
	}
	if got := m.index(color.RGBA{230, 30, 20, 0xff}); got != 2 {
		t.Errorf("reddish mapped to %d", got)
	}
	if got := m.index(color.RGBA{255, 255, 255, 0xff}); got != 1 {
		t.Errorf("white mapped to %d", got)
	}
	if len(m.cache) != 3 {
		t.Errorf("cache size = %d, want 3", len(m.cache))
	}
}

func TestEncode_Errors(t *testing.T) {
	img := solid(4, 4, color.RGBA{A: 0xff})
	var buf bytes.Buffer

	if err := NewEncoder(0).Encode(&buf, nil); !errors.Is(err, ErrNoFrames) {
		t.Errorf("empty: %v", err)
	}

	err := NewEncoder(0).Encode(&buf, []Frame{{Image: img, Duration: 15 * time.Millisecond}})
	if !errors.Is(err, ErrDelayResolution) {
		t.Errorf("15ms: %v", err)
	}

	// Longer than the delay field holds; must fail instead of wrapping
	buf.Reset()
	err = NewEncoder(0).Encode(&buf, []Frame{{Image: img, Duration: 700 * time.Second}})
	if !errors.Is(err, ErrDelayResolution) {
		t.Errorf("700s: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("700s: %d bytes written", buf.Len())
	}

	err = NewEncoder(0).Encode(&buf, []Frame{
		{Image: img, Duration: time.Second},
		{Image: solid(5, 4, color.RGBA{A: 0xff}), Duration: time.Second},
	})
	if err == nil {
		t.Error("mismatched bounds accepted")
	}

	if err := NewEncoder(300).Encode(&buf, []Frame{{Image: img, Duration: time.Second}}); err == nil {
		t.Error("palette size 300 accepted")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	frames := []Frame{
		{Image: solid(8, 8, color.RGBA{R: 13, G: 17, B: 23, A: 0xff}), Duration: 500 * time.Millisecond},
		{Image: solid(8, 8, color.RGBA{R: 86, G: 209, B: 219, A: 0xff}), Duration: 1500 * time.Millisecond},
	}
	if err := NewEncoder(16).WriteFile(path, frames); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	info, err := Inspect(f)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if info.Frames != 2 || info.Total() != 2*time.Second {
		t.Errorf("info = %+v", info)
	}

	if err := NewEncoder(0).WriteFile(filepath.Join(t.TempDir(), "missing", "x.gif"), frames); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestWriteFile_InvalidFramesLeaveNoFile(t *testing.T) {
	img := solid(8, 8, color.RGBA{A: 0xff})
	tests := []struct {
		name   string
		frames []Frame
	}{
		{"nil image", []Frame{{Image: img, Duration: time.Second}, {Duration: time.Second}}},
		{"bounds mismatch", []Frame{{Image: img, Duration: time.Second}, {Image: solid(9, 8, color.RGBA{A: 0xff}), Duration: time.Second}}},
		{"bad delay", []Frame{{Image: img, Duration: 15 * time.Millisecond}}},
		{"delay overflow", []Frame{{Image: img, Duration: 700 * time.Second}}},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.gif")
			if err := NewEncoder(0).WriteFile(path, tt.frames); err == nil {
				t.Fatal("expected error")
			}
			if _, err := os.Stat(path); !os.IsNotExist(err) {
				t.Errorf("output file exists after failed encode (stat err %v)", err)
			}
		})
	}
}
