package anim

import (
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"
	"time"
)

const (
	DefaultColors = 64
	maxColors     = 256
)

// Encoder writes frame sequences as a GIF that loops forever
type Encoder struct {
	// Colors per frame palette, 2..256
	Colors int
}

// NewEncoder returns an encoder with the given palette size, 0 selects DefaultColors
func NewEncoder(colors int) *Encoder {
	if colors == 0 {
		colors = DefaultColors
	}
	return &Encoder{Colors: colors}
}

// Encode quantizes every frame and writes the animation to w
// All frames must share the first frame's bounds; nothing is written when a frame is invalid
func (e *Encoder) Encode(w io.Writer, frames []Frame) error {
	g, err := e.build(frames)
	if err != nil {
		return err
	}
	return write(w, g)
}

// WriteFile encodes frames into a new file at path
// Frames are validated and quantized before the file is created; a failed write removes it
func (e *Encoder) WriteFile(path string, frames []Frame) (err error) {
	g, err := e.build(frames)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return write(f, g)
}

// build validates frames and converts them into paletted GIF frames
func (e *Encoder) build(frames []Frame) (*gif.GIF, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if e.Colors < 2 || e.Colors > maxColors {
		return nil, fmt.Errorf("palette size %d out of range 2..%d", e.Colors, maxColors)
	}
	if frames[0].Image == nil {
		return nil, fmt.Errorf("frame 0: nil image")
	}
	bounds := frames[0].Image.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("frame 0: empty image")
	}

	// Delays first so a bad duration fails before any quantization work
	delays := make([]int, len(frames))
	for i, f := range frames {
		if f.Image == nil {
			return nil, fmt.Errorf("frame %d: nil image", i)
		}
		if f.Image.Bounds() != bounds {
			return nil, fmt.Errorf("frame %d: bounds %v differ from %v", i, f.Image.Bounds(), bounds)
		}
		delay, err := Delay(f.Duration)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		delays[i] = delay
	}

	g := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     delays,
		LoopCount: 0,
	}
	for i, f := range frames {
		g.Image[i] = quantizeFrame(f.Image, e.Colors)
	}
	return g, nil
}

func write(w io.Writer, g *gif.GIF) error {
	if err := gif.EncodeAll(w, g); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

// Info summarizes a decoded GIF
type Info struct {
	Frames    int
	Delays    []time.Duration
	LoopCount int
	Width     int
	Height    int
}

// Total is the sum of all frame delays
func (i Info) Total() time.Duration {
	var total time.Duration
	for _, d := range i.Delays {
		total += d
	}
	return total
}

// Inspect decodes a GIF and reports its frame structure
func Inspect(r io.Reader) (Info, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return Info{}, fmt.Errorf("decode gif: %w", err)
	}
	info := Info{
		Frames:    len(g.Image),
		Delays:    make([]time.Duration, len(g.Delay)),
		LoopCount: g.LoopCount,
		Width:     g.Config.Width,
		Height:    g.Config.Height,
	}
	for i, d := range g.Delay {
		info.Delays[i] = time.Duration(d) * Centisecond
	}
	return info, nil
}
