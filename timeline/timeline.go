// Package timeline holds the ordered scene steps of a recording and replays them onto one grid
package timeline

import (
	"fmt"
	"image"
	"time"

	"github.com/lixenwraith/termcast/anim"
	"github.com/lixenwraith/termcast/render"
	"github.com/lixenwraith/termcast/screen"
)

// Step is one UI state and how long it is shown
type Step struct {
	Scene    render.Scene
	Popup    *render.Popup
	Duration time.Duration
}

// Composer draws a full UI state onto a grid
type Composer interface {
	Compose(g *screen.Grid, s render.Scene, p *render.Popup) error
}

// Snapshotter turns the current grid contents into an image
type Snapshotter interface {
	Rasterize(g *screen.Grid) *image.RGBA
}

// VisitFunc observes the grid right after step i was composed
// The grid is reused for the next step; copy what must outlive the call
type VisitFunc func(i int, s Step, g *screen.Grid) error

// Timeline is an append-only ordered list of steps
type Timeline struct {
	steps []Step
}

// New returns a timeline holding steps in order
func New(steps ...Step) *Timeline {
	t := &Timeline{}
	for _, s := range steps {
		t.Add(s)
	}
	return t
}

// Add appends a step
func (t *Timeline) Add(s Step) {
	t.steps = append(t.steps, s)
}

// Len returns the number of steps
func (t *Timeline) Len() int { return len(t.steps) }

// Steps returns a copy of the step list
func (t *Timeline) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)
	return out
}

// TotalDuration sums all step durations
func (t *Timeline) TotalDuration() time.Duration {
	var total time.Duration
	for _, s := range t.steps {
		total += s.Duration
	}
	return total
}

// Replay composes each step onto g in order and calls visit after each one
// The first error from compose or visit stops the replay
func (t *Timeline) Replay(g *screen.Grid, c Composer, visit VisitFunc) error {
	for i, s := range t.steps {
		if err := c.Compose(g, s.Scene, s.Popup); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if visit == nil {
			continue
		}
		if err := visit(i, s, g); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// Frames replays the timeline and captures one frame per step with the step's duration
func (t *Timeline) Frames(g *screen.Grid, c Composer, snap Snapshotter) ([]anim.Frame, error) {
	frames := make([]anim.Frame, 0, len(t.steps))
	err := t.Replay(g, c, func(_ int, s Step, g *screen.Grid) error {
		frames = append(frames, anim.Frame{
			Image:    snap.Rasterize(g),
			Duration: s.Duration,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return frames, nil
}
