// Package raster paints a screen.Grid into an RGBA image inside a window frame
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/termcast/palette"
	"github.com/lixenwraith/termcast/screen"
	"github.com/lixenwraith/termcast/terminal"
)

// Metrics is the pixel geometry of one cell and the surrounding frame
type Metrics struct {
	CellW   int
	CellH   int
	Padding int // Around the cell area on all sides
	ChromeH int // Title bar height above the padding
}

// DefaultMetrics matches a 14px monospace face
func DefaultMetrics() Metrics {
	return Metrics{CellW: 9, CellH: 19, Padding: 12, ChromeH: 30}
}

// Chrome is the window title bar decoration
type Chrome struct {
	Title      string
	Dots       []terminal.RGB
	DotSpacing int
	DotRadius  int
}

// DefaultChrome returns the three-dot title bar
func DefaultChrome() Chrome {
	return Chrome{
		Title: "gopher-cli",
		Dots: []terminal.RGB{
			{R: 255, G: 95, B: 86},
			{R: 255, G: 189, B: 46},
			{R: 39, G: 201, B: 63},
		},
		DotSpacing: 22,
		DotRadius:  6,
	}
}

// Rasterizer converts grids to images; reuse one instance for a whole recording
// Not safe for concurrent use, the font face carries glyph caches
type Rasterizer struct {
	metrics Metrics
	chrome  Chrome
	palette *palette.Palette
	face    font.Face
	ascent  int
}

// New creates a rasterizer drawing glyphs with face
func New(m Metrics, c Chrome, p *palette.Palette, face font.Face) *Rasterizer {
	return &Rasterizer{
		metrics: m,
		chrome:  c,
		palette: p,
		face:    face,
		ascent:  face.Metrics().Ascent.Ceil(),
	}
}

// Size returns the output image size for a rows × cols grid
func (r *Rasterizer) Size(rows, cols int) image.Point {
	m := r.metrics
	return image.Point{
		X: cols*m.CellW + 2*m.Padding,
		Y: rows*m.CellH + 2*m.Padding + m.ChromeH,
	}
}

// Rasterize paints g into a new image
// Per cell the background rectangle goes first, then the glyph
func (r *Rasterizer) Rasterize(g *screen.Grid) *image.RGBA {
	m := r.metrics
	size := r.Size(g.Rows(), g.Cols())
	img := image.NewRGBA(image.Rectangle{Max: size})

	fill(img, img.Bounds(), r.palette.Resolve(palette.Bg, true))
	r.drawChrome(img)

	d := &font.Drawer{Dst: img, Face: r.face}
	yOff := m.ChromeH + m.Padding
	for row := 0; row < g.Rows(); row++ {
		for col, cell := range g.Row(row) {
			x := m.Padding + col*m.CellW
			y := yOff + row*m.CellH

			if cell.Bg != palette.Bg {
				fill(img, image.Rect(x, y, x+m.CellW, y+m.CellH), r.palette.Resolve(cell.Bg, true))
			}
			if cell.Glyph != ' ' && cell.Glyph != 0 {
				d.Src = image.NewUniform(r.palette.Resolve(cell.Fg, false))
				d.Dot = fixed.P(x, y+1+r.ascent)
				d.DrawString(string(cell.Glyph))
			}
		}
	}
	return img
}

func (r *Rasterizer) drawChrome(img *image.RGBA) {
	m, c := r.metrics, r.chrome
	w := img.Bounds().Dx()
	if m.ChromeH <= 0 {
		return
	}

	fill(img, image.Rect(0, 0, w, m.ChromeH), r.palette.Resolve(palette.TitleBar, true))

	dotY := m.ChromeH / 2
	for i, dc := range c.Dots {
		disc(img, m.Padding+i*c.DotSpacing, dotY, c.DotRadius, dc)
	}

	if c.Title == "" {
		return
	}
	tw := font.MeasureString(r.face, c.Title).Floor()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.palette.Resolve(palette.TitleTxt, false)),
		Face: r.face,
		Dot:  fixed.P((w-tw)/2, dotY-7+r.ascent),
	}
	d.DrawString(c.Title)
}

func fill(img *image.RGBA, rect image.Rectangle, c terminal.RGB) {
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// disc paints a filled circle of radius rad centered at (cx, cy)
func disc(img *image.RGBA, cx, cy, rad int, c terminal.RGB) {
	col := color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	for dy := -rad; dy <= rad; dy++ {
		for dx := -rad; dx <= rad; dx++ {
			if dx*dx+dy*dy <= rad*rad {
				img.SetRGBA(cx+dx, cy+dy, col)
			}
		}
	}
}
