// @lixen: #focus{sys[term,ansi]}
package terminal

import "strconv"

const (
	sgrReset = "\x1b[0m"
	lineEnd  = "\r\n"

	paramFg = 38
	paramBg = 48
)

// appendColor appends the SGR parameters selecting c for base (38 fg, 48 bg)
// Output has no CSI prefix and no 'm' terminator
func appendColor(buf []byte, base int, c RGB, mode ColorMode) []byte {
	buf = strconv.AppendInt(buf, int64(base), 10)
	if mode == ColorModeTrueColor {
		buf = append(buf, ";2;"...)
		buf = strconv.AppendUint(buf, uint64(c.R), 10)
		buf = append(buf, ';')
		buf = strconv.AppendUint(buf, uint64(c.G), 10)
		buf = append(buf, ';')
		return strconv.AppendUint(buf, uint64(c.B), 10)
	}
	buf = append(buf, ";5;"...)
	return strconv.AppendUint(buf, uint64(RGBTo256(c)), 10)
}
