package terminal

// Cell represents a single resolved terminal cell
// Rune 0 is written as a space
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}
