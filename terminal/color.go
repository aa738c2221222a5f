package terminal

import "fmt"

// ColorMode indicates target color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	}
	return fmt.Sprintf("ColorMode(%d)", uint8(m))
}

// ParseColorMode accepts true, truecolor, 24bit for 24-bit output and 256 for the xterm palette
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "true", "truecolor", "24", "24bit":
		return ColorModeTrueColor, nil
	case "256", "8", "8bit":
		return ColorMode256, nil
	}
	return ColorModeTrueColor, fmt.Errorf("unknown color mode %q (use 'truecolor' or '256')", s)
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color so palette entries can be painted directly
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the #rrggbb spelling
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube index 0-5
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := abs(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest 256-color palette index for an RGB value
func RGBTo256(c RGB) uint8 {
	r, g, b := c.R, c.G, c.B

	// Grayscale ramp: 232-255 maps to luminance 8, 18, 28, ..., 238
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray))

	cr, cg, cb := cubeIndex[r], cubeIndex[g], cubeIndex[b]

	if maxDiff < 10 {
		if gray < 4 {
			return 16
		}
		if gray > 243 {
			return 231
		}
		step := (gray - 8) / 10
		if step > 23 {
			step = 23
		}
		if step < 0 {
			step = 0
		}
		grayLevel := 8 + step*10
		grayDist := abs(int(r)-grayLevel) + abs(int(g)-grayLevel) + abs(int(b)-grayLevel)
		cubeDist := abs(int(r)-int(cubeValues[cr])) +
			abs(int(g)-int(cubeValues[cg])) +
			abs(int(b)-int(cubeValues[cb]))

		if grayDist < cubeDist {
			return uint8(232 + step)
		}
	}

	return 16 + 36*cr + 6*cg + cb
}
