// Package terminal provides the color model and ANSI encoding for rendered cell buffers.
//
// Features:
//   - True color (24-bit) and 256-color palette support
//   - Whole-frame SGR encoding with style coalescing
//   - Display-width aware cell advance for wide runes
//
// Nothing here touches a real terminal device: frames are written to any io.Writer,
// typically a .ans file that can be replayed with cat or less -R.
package terminal
