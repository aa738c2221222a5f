package script

import "strings"

// Demo returns the built-in session: root menu, feed browse, article read,
// live gopher browse, go-to popup with incremental typing, back to root
func Demo() File {
	const (
		hn       = "feed.hackernews/"
		floodgap = "gopher.floodgap.com/"
	)

	steps := []StepDef{
		{Note: "root menu, welcome", Menu: "root", Selected: 0, Content: "welcome", DurationMS: 2200},
		{Note: "cursor to feed.hackernews", Menu: "root", Selected: 1, Content: "welcome", DurationMS: 800},
		{Note: "enter feed: loading", Path: hn, Loading: true, DurationMS: 550},
		{Note: "feed entries loaded", Path: hn, Menu: "hn", Selected: 0, Content: "welcome", DurationMS: 1200},
	}
	for _, sel := range []int{1, 2, 3} {
		steps = append(steps, StepDef{Note: "browse entries", Path: hn, Menu: "hn", Selected: sel, Content: "welcome", DurationMS: 320})
	}
	steps = append(steps,
		StepDef{Note: "back to first entry", Path: hn, Menu: "hn", Selected: 0, Content: "welcome", DurationMS: 400},
		StepDef{Note: "read article", Path: hn, Menu: "hn", Selected: 0, Content: "hn_article", Focus: "content", DurationMS: 3500},
		StepDef{Note: "back to root", Menu: "root", Selected: 1, Content: "welcome", DurationMS: 500},
		StepDef{Note: "cursor to gopher.floodgap.com", Menu: "root", Selected: 2, Content: "welcome", DurationMS: 800},
		StepDef{Note: "enter gopher: loading", Path: floodgap, Loading: true, DurationMS: 650},
		StepDef{Note: "gopher menu", Path: floodgap, Menu: "floodgap", Selected: 0, Content: "welcome", DurationMS: 1000},
	)
	for _, sel := range []int{1, 2, 3} {
		steps = append(steps, StepDef{Note: "navigate to About This Server", Path: floodgap, Menu: "floodgap", Selected: sel, Content: "welcome", DurationMS: 280})
	}
	steps = append(steps,
		StepDef{Note: "read gopher content", Path: floodgap, Menu: "floodgap", Selected: 3, Content: "floodgap", Focus: "content", DurationMS: 3500},
		StepDef{Note: "open go-to popup", Path: floodgap, Menu: "floodgap", Selected: 3, Content: "floodgap", DurationMS: 1100,
			Popup: &PopupDef{Targets: "all"}},
	)
	for _, q := range []string{"g", "go", "gop", "goph"} {
		steps = append(steps, StepDef{Note: "type query", Path: floodgap, Menu: "floodgap", Selected: 3, Content: "floodgap", DurationMS: 320,
			Popup: &PopupDef{Query: q, Targets: "all"}})
	}
	steps = append(steps,
		StepDef{Note: "filtered result", Path: floodgap, Menu: "floodgap", Selected: 3, Content: "floodgap", DurationMS: 1500,
			Popup: &PopupDef{Query: "goph", Targets: "all"}},
		StepDef{Note: "back to root", Menu: "root", Selected: 0, Content: "welcome", DurationMS: 2500},
	)

	return File{
		Menus: map[string][]Item{
			"root":     rootItems(),
			"hn":       hnItems(),
			"floodgap": floodgapItems(),
		},
		Contents: map[string][]Line{
			"welcome":    welcome(),
			"hn_article": hnArticle(),
			"floodgap":   floodgapContent(),
		},
		Targets: map[string][]Target{
			"all": allTargets(),
		},
		Steps: steps,
	}
}

var rootHosts = []string{
	"local",
	"feed.hackernews",
	"gopher.floodgap.com",
	"gopher.quux.org",
	"gopherpedia.com",
	"cosmic.voyage",
	"sdf.org",
	"bitreich.org",
}

func rootItems() []Item {
	items := make([]Item, len(rootHosts))
	for i, h := range rootHosts {
		items[i] = Item{Kind: "1", Label: h}
	}
	return items
}

func allTargets() []Target {
	targets := make([]Target, len(rootHosts))
	for i, h := range rootHosts {
		targets[i] = Target{Dir: true, Label: h}
	}
	return targets
}

func welcome() []Line {
	return []Line{
		{Text: "", Color: "fg"},
		{Text: "       >(^.^)>", Color: "cyan"},
		{Text: "", Color: "fg"},
		{Text: "      gopher-cli", Color: "white"},
		{Text: "", Color: "fg"},
		{Text: " Select an item to view", Color: "darkgray"},
		{Text: " its content.", Color: "darkgray"},
		{Text: "", Color: "fg"},
		{Text: " Unified browser for gopherspace,", Color: "darkgray"},
		{Text: " RSS feeds, files & knowledge", Color: "darkgray"},
		{Text: " graphs.", Color: "darkgray"},
	}
}

func hnItems() []Item {
	titles := []string{
		"Show HN: Gopher-CLI – terminal browser",
		"Rust 2025 edition is now stable",
		"The small web is beautiful",
		"Ask HN: Favorite TUI applications?",
		"SQLite 4.0 design notes released",
		"Deep dive into terminal emulators",
		"Why I still use Gopher in 2026",
		"Structured content discovery tools",
		"Building CLI tools in Rust",
		"SPARQL for beginners",
		"A love letter to plain text",
		"Gemini protocol one year later",
	}
	items := make([]Item, len(titles))
	for i, t := range titles {
		items[i] = Item{Kind: "0", Label: t}
	}
	return items
}

func hnArticle() []Line {
	return []Line{
		{Text: "Show HN: Gopher-CLI", Color: "white"},
		{Text: "A terminal browser for gopherspace", Color: "white"},
		{Text: strings.Repeat("─", 40), Color: "darkgray"},
		{Text: "342 points | 127 comments | 2h ago", Color: "darkgray"},
		{Text: "by gopherfan", Color: "darkgray"},
		{Text: "", Color: "fg"},
		{Text: "I built a unified terminal browser", Color: "fg"},
		{Text: "that combines Gopherspace, RSS feeds,", Color: "fg"},
		{Text: "local files, and RDF knowledge graphs", Color: "fg"},
		{Text: "into a single navigable interface.", Color: "fg"},
		{Text: "", Color: "fg"},
		{Text: "Everything uses Gopher’s simple menu/", Color: "fg"},
		{Text: "document model, so you browse all", Color: "fg"},
		{Text: "sources with the same keystrokes.", Color: "fg"},
		{Text: "", Color: "fg"},
		{Text: "Features:", Color: "yellow"},
		{Text: " • Interactive TUI with two-pane view", Color: "fg"},
		{Text: " • CLI with auto-JSON pipe output", Color: "fg"},
		{Text: " • RSS/Atom feed integration", Color: "fg"},
		{Text: " • Live Gopher server browsing", Color: "fg"},
		{Text: " • RDF/SPARQL knowledge graphs", Color: "fg"},
		{Text: " • File system vault for notes", Color: "fg"},
		{Text: "", Color: "fg"},
		{Text: "github.com/user/gopher-cli", Color: "cyan"},
	}
}

func floodgapItems() []Item {
	return []Item{
		{Kind: "i", Label: "Welcome to Floodgap Systems"},
		{Kind: "i", Label: "Official Gopher Server"},
		{Kind: "i", Label: ""},
		{Kind: "1", Label: "About This Server"},
		{Kind: "1", Label: "Fun and Games"},
		{Kind: "1", Label: "Gopher Project"},
		{Kind: "1", Label: "Technical Information"},
		{Kind: "1", Label: "Weather Maps & Data"},
		{Kind: "1", Label: "The Overbite Project"},
		{Kind: "0", Label: "What is Gopher?"},
		{Kind: "7", Label: "Search Gopherspace (Veronica-2)"},
		{Kind: "i", Label: ""},
		{Kind: "i", Label: "Last updated: 2026-03-01"},
	}
}

func floodgapContent() []Line {
	return []Line{
		{Text: "Welcome to Floodgap Systems", Color: "white"},
		{Text: strings.Repeat("═", 35), Color: "darkgray"},
		{Text: "", Color: "fg"},
		{Text: "This is the Floodgap gopher server.", Color: "fg"},
		{Text: "We’ve been serving the Gopherverse", Color: "fg"},
		{Text: "since 1999.", Color: "fg"},
		{Text: "", Color: "fg"},
		{Text: "The Gopher protocol is a simple,", Color: "fg"},
		{Text: "text-based information retrieval", Color: "fg"},
		{Text: "protocol that predates the World", Color: "fg"},
		{Text: "Wide Web.", Color: "fg"},
		{Text: "", Color: "fg"},
		{Text: "Despite its age, Gopher remains a", Color: "fg"},
		{Text: "vibrant space for those who value", Color: "fg"},
		{Text: "simplicity and text-based content.", Color: "fg"},
		{Text: "", Color: "fg"},
		{Text: "Explore our menus to discover fun", Color: "fg"},
		{Text: "content, technical info, or search", Color: "fg"},
		{Text: "the wider Gopherspace.", Color: "fg"},
		{Text: "", Color: "fg"},
		{Text: `   "In a world of complexity,`, Color: "yellow"},
		{Text: `    Gopher keeps it simple."`, Color: "yellow"},
		{Text: "", Color: "fg"},
		{Text: "Server uptime: 9847 days", Color: "darkgray"},
	}
}
