// Package anim encodes frame sequences as looping animated GIFs.
//
// Each frame gets its own palette: median cut picks the colors, then every
// source color is mapped to its nearest palette entry in CIE Lab space.
// Frame delays are stored in centiseconds, so durations must be whole
// multiples of 10ms.
package anim
