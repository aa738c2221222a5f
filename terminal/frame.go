// @lixen: #focus{sys[term,io,output]}
package terminal

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// frameWriter encodes one cell buffer as SGR text, emitting style only when it changes
type frameWriter struct {
	w    *bufio.Writer
	mode ColorMode

	lastFg    RGB
	lastBg    RGB
	lastValid bool

	scratch []byte
}

// WriteFrame writes cells as ANSI text, one line per row, reset at each line end
// Cells are row-major: cells[y*width + x]
func WriteFrame(w io.Writer, cells []Cell, width, height int, mode ColorMode) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if len(cells) < width*height {
		return fmt.Errorf("cell buffer too short: %d < %d", len(cells), width*height)
	}

	fw := &frameWriter{
		w:    bufio.NewWriterSize(w, 32768),
		mode: mode,
	}

	for y := 0; y < height; y++ {
		rowStart := y * width
		x := 0
		for x < width {
			c := cells[rowStart+x]
			fw.writeStyle(c.Fg, c.Bg)

			r := c.Rune
			if r == 0 {
				r = ' '
			}
			if r < 0x80 {
				fw.w.WriteByte(byte(r))
			} else {
				fw.w.WriteRune(r)
			}

			// Wide runes occupy the following column on a real terminal
			adv := runewidth.RuneWidth(r)
			if adv < 1 {
				adv = 1
			}
			x += adv
		}
		fw.w.WriteString(sgrReset)
		fw.lastValid = false
		fw.w.WriteString(lineEnd)
	}

	return fw.w.Flush()
}

// writeStyle emits one SGR sequence covering whichever colors changed
func (f *frameWriter) writeStyle(fg, bg RGB) {
	fgChanged := !f.lastValid || fg != f.lastFg
	bgChanged := !f.lastValid || bg != f.lastBg
	if !fgChanged && !bgChanged {
		return
	}

	buf := append(f.scratch[:0], "\x1b["...)
	if fgChanged {
		buf = appendColor(buf, paramFg, fg, f.mode)
	}
	if bgChanged {
		if fgChanged {
			buf = append(buf, ';')
		}
		buf = appendColor(buf, paramBg, bg, f.mode)
	}
	buf = append(buf, 'm')
	f.w.Write(buf)
	f.scratch = buf

	f.lastFg = fg
	f.lastBg = bg
	f.lastValid = true
}
