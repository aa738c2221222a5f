package timeline

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/lixenwraith/termcast/render"
	"github.com/lixenwraith/termcast/screen"
)

// recordingComposer writes the scene path into row 0 and logs calls
type recordingComposer struct {
	paths  []string
	popups int
	failAt int
}

func (r *recordingComposer) Compose(g *screen.Grid, s render.Scene, p *render.Popup) error {
	if r.failAt >= 0 && len(r.paths) == r.failAt {
		return errors.New("boom")
	}
	r.paths = append(r.paths, s.Path)
	if p != nil {
		r.popups++
	}
	g.Clear()
	g.Text(0, 0, s.Path, "fg", "bg")
	return nil
}

// countingSnapshotter returns a 1×1 image per call
type countingSnapshotter struct {
	rows []string
}

func (c *countingSnapshotter) Rasterize(g *screen.Grid) *image.RGBA {
	c.rows = append(c.rows, g.RowText(0))
	return image.NewRGBA(image.Rect(0, 0, 1, 1))
}

func sample() *Timeline {
	return New(
		Step{Scene: render.Scene{Path: "a"}, Duration: 2200 * time.Millisecond},
		Step{Scene: render.Scene{Path: "b"}, Popup: &render.Popup{Query: "g"}, Duration: 320 * time.Millisecond},
		Step{Scene: render.Scene{Path: "c"}, Duration: 1500 * time.Millisecond},
	)
}

func TestTimeline_Basics(t *testing.T) {
	tl := sample()
	if tl.Len() != 3 {
		t.Fatalf("len = %d", tl.Len())
	}
	if got := tl.TotalDuration(); got != 4020*time.Millisecond {
		t.Errorf("total = %v", got)
	}

	steps := tl.Steps()
	steps[0].Duration = 0
	if tl.Steps()[0].Duration != 2200*time.Millisecond {
		t.Error("Steps exposed internal storage")
	}

	tl.Add(Step{Scene: render.Scene{Path: "d"}, Duration: time.Second})
	if tl.Len() != 4 || tl.Steps()[3].Scene.Path != "d" {
		t.Error("Add did not append")
	}
}

func TestTimeline_ReplayOrder(t *testing.T) {
	tl := sample()
	g := screen.New(2, 8)
	c := &recordingComposer{failAt: -1}

	var visited []int
	err := tl.Replay(g, c, func(i int, s Step, g *screen.Grid) error {
		visited = append(visited, i)
		if got := g.RowText(0)[:1]; got != s.Scene.Path {
			t.Errorf("step %d grid shows %q, want %q", i, got, s.Scene.Path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(visited) != 3 || visited[0] != 0 || visited[2] != 2 {
		t.Errorf("visited = %v", visited)
	}
	if c.popups != 1 {
		t.Errorf("popups = %d, want 1", c.popups)
	}
}

func TestTimeline_ReplayStopsOnError(t *testing.T) {
	tl := sample()
	g := screen.New(2, 8)

	c := &recordingComposer{failAt: 1}
	if err := tl.Replay(g, c, nil); err == nil {
		t.Fatal("expected compose error")
	}
	if len(c.paths) != 1 {
		t.Errorf("composed %d steps after failure", len(c.paths))
	}

	stop := errors.New("stop")
	c = &recordingComposer{failAt: -1}
	err := tl.Replay(g, c, func(i int, _ Step, _ *screen.Grid) error {
		if i == 0 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("err = %v, want wrapped stop", err)
	}
	if len(c.paths) != 1 {
		t.Errorf("composed %d steps after visit error", len(c.paths))
	}
}

func TestTimeline_Frames(t *testing.T) {
	tl := sample()
	g := screen.New(2, 8)
	snap := &countingSnapshotter{}

	frames, err := tl.Frames(g, &recordingComposer{failAt: -1}, snap)
	if err != nil {
		t.Fatalf("Frames: %v", err)
	}
	if len(frames) != tl.Len() {
		t.Fatalf("frames = %d, want %d", len(frames), tl.Len())
	}

	var total time.Duration
	for i, f := range frames {
		if f.Duration != tl.Steps()[i].Duration {
			t.Errorf("frame %d duration = %v", i, f.Duration)
		}
		total += f.Duration
	}
	if total != tl.TotalDuration() {
		t.Errorf("summed = %v, want %v", total, tl.TotalDuration())
	}
	if snap.rows[1][:1] != "b" {
		t.Errorf("snapshot 1 taken from %q", snap.rows[1])
	}
}

func TestTimeline_RealComposer(t *testing.T) {
	tl := sample()
	g := screen.New(28, 96, screen.WithPolicy(screen.Reject))
	r := render.NewRenderer(render.DefaultTheme())

	if err := tl.Replay(g, r, nil); err != nil {
		t.Fatalf("Replay with renderer: %v", err)
	}
}
