// Package render draws the two-pane browser UI and the go-to popup onto a screen.Grid.
//
// Layout owns the whole grid: it clears, draws the menu and content panes and
// the status bar. GoTo only touches the popup rectangle and is drawn after
// Layout. Renderer combines both for one frame.
package render
