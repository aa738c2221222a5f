// Package script describes recorded browsing sessions as named data blocks plus an ordered step list
package script

// File is the on-disk form of a session script
// Menus, contents and targets are referenced by name from steps
type File struct {
	Menus    map[string][]Item   `toml:"menus,omitempty"`
	Contents map[string][]Line   `toml:"contents,omitempty"`
	Targets  map[string][]Target `toml:"targets,omitempty"`
	Steps    []StepDef           `toml:"steps"`
}

// Item is one menu entry; Kind is the gopher item type character
type Item struct {
	Kind  string `toml:"kind"`
	Label string `toml:"label"`
}

// Line is one content line with a palette token name, empty means fg
type Line struct {
	Text  string `toml:"text"`
	Color string `toml:"color,omitempty"`
}

// Target is one go-to list entry
type Target struct {
	Depth    int    `toml:"depth"`
	Dir      bool   `toml:"dir"`
	Expanded bool   `toml:"expanded"`
	Label    string `toml:"label"`
}

// StepDef is one scripted UI state
type StepDef struct {
	Note       string    `toml:"note,omitempty"`    // Free text, ignored by Compile
	Path       string    `toml:"path,omitempty"`    // Empty is the root
	Menu       string    `toml:"menu,omitempty"`    // Menus key, empty for no items
	Selected   int       `toml:"selected"`          // Highlighted menu index
	Content    string    `toml:"content,omitempty"` // Contents key, empty for a blank pane
	Focus      string    `toml:"focus,omitempty"`   // "menu" or "content"
	Loading    bool      `toml:"loading,omitempty"`
	Status     string    `toml:"status,omitempty"` // Error message for the status bar
	Mode       string    `toml:"mode,omitempty"`   // "normal" or "search"
	Input      string    `toml:"input,omitempty"`  // Search input in search mode
	DurationMS int       `toml:"duration_ms"`
	Popup      *PopupDef `toml:"popup,omitempty"`
}

// PopupDef opens the go-to popup over the step's layout
type PopupDef struct {
	Query    string `toml:"query"`
	Targets  string `toml:"targets"` // Targets key, filtered by Query
	Selected int    `toml:"selected"`
}
