package anim

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/lucasb-eyer/go-colorful"
)

// paletteMapper assigns source colors to the nearest palette entry in Lab space
// Results are cached per packed RGB value; rasterized frames repeat few colors
type paletteMapper struct {
	palette color.Palette
	lab     []colorful.Color
	cache   map[uint32]uint8
}

func newPaletteMapper(p color.Palette) *paletteMapper {
	m := &paletteMapper{
		palette: p,
		lab:     make([]colorful.Color, len(p)),
		cache:   make(map[uint32]uint8, len(p)*4),
	}
	for i, c := range p {
		m.lab[i] = toColorful(c)
	}
	return m
}

func toColorful(c color.Color) colorful.Color {
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
	}
}

// index returns the palette index nearest to c
func (m *paletteMapper) index(c color.Color) uint8 {
	r, g, b, _ := c.RGBA()
	key := (r>>8)<<16 | (g>>8)<<8 | b>>8
	if idx, ok := m.cache[key]; ok {
		return idx
	}

	src := toColorful(c)
	best, bestDist := 0, -1.0
	for i, p := range m.lab {
		d := src.DistanceLab(p)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
			if d == 0 {
				break
			}
		}
	}
	m.cache[key] = uint8(best)
	return uint8(best)
}

// quantizeFrame reduces img to at most colors entries
func quantizeFrame(img image.Image, colors int) *image.Paletted {
	q := quantize.MedianCutQuantizer{}
	pal := q.Quantize(make(color.Palette, 0, colors), img)

	b := img.Bounds()
	out := image.NewPaletted(b, pal)
	m := newPaletteMapper(pal)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := out.Pix[(y-b.Min.Y)*out.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			row[x-b.Min.X] = m.index(img.At(x, y))
		}
	}
	return out
}
