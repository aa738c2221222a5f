// Package screen provides the virtual terminal: a fixed-size grid of cells and the
// compositing primitives that mutate it.
//
// All coordinates are absolute (row, col) with origin at the top-left cell.
// Writes outside the grid never fail the caller: under the default Clamp policy they
// are silently dropped, under Reject they are dropped and recorded for Err.
//
// Usage pattern:
//
//	g := screen.New(28, 96)
//	g.Clear()
//	g.Box(0, 0, 27, 38, palette.Cyan, " Menu ")
//	g.FillBg(5, 1, 37, palette.SelBg) // background before text
//	g.Text(5, 1, ">> ", palette.Yellow, palette.SelBg)
package screen
