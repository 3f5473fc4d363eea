// Package viewer provides the interactive scroll-through-frames display.
package viewer

import (
	"github.com/pkg/errors"

	"github.com/avdeyev/seisplot/graphic"
	"github.com/avdeyev/seisplot/grid"
)

// Direction is a scroll input direction.
type Direction int

const (
	// Up advances to later frames.
	Up Direction = iota
	// Down steps back to earlier frames.
	Down
)

// Screen is the rendering surface a Scroller draws on. graphic.Term
// satisfies it for the terminal.
type Screen interface {
	Clear()
	DrawFrame(f *grid.Frame, style graphic.ImageStyle)
	SetTitle(title string)
	Flush() error
}

// Scroller tracks the currently displayed index into a frame sequence and
// redraws on every scroll input. It owns its Screen for the session.
type Scroller struct {
	screen Screen
	frames []*grid.Frame
	names  []string
	style  graphic.ImageStyle

	step  int
	index int
}

// New builds a scroller over the frames, displays the middle frame and
// returns. Names must parallel frames; step is the default scroll stride.
func New(screen Screen, frames []*grid.Frame, names []string, step int, style graphic.ImageStyle) (*Scroller, error) {
	if len(frames) == 0 {
		return nil, errors.New("viewer: no frames")
	}

	if len(names) != len(frames) {
		return nil, errors.Errorf("viewer: %d names for %d frames", len(names), len(frames))
	}

	if step < 1 {
		return nil, errors.Errorf("viewer: scroll step %d not positive", step)
	}

	s := &Scroller{
		screen: screen,
		frames: frames,
		names:  names,
		style:  style,
		step:   step,
		index:  len(frames) / 2,
	}

	if err := s.Update(); err != nil {
		return nil, err
	}

	return s, nil
}

// Index returns the currently displayed frame index.
func (s *Scroller) Index() int {
	return s.index
}

// Scroll moves the displayed index by step in the given direction, clamped
// to the frame sequence. Inputs at the boundary are clamped, never
// dropped. The screen is redrawn afterwards.
func (s *Scroller) Scroll(dir Direction, step int) error {
	if dir == Up {
		s.index = clamp(s.index+step, 0, len(s.frames)-1)
	} else {
		s.index = clamp(s.index-step, 0, len(s.frames)-1)
	}

	return s.Update()
}

// Step scrolls by the configured stride.
func (s *Scroller) Step(dir Direction) error {
	return s.Scroll(dir, s.step)
}

// Jump displays the frame at idx, clamped.
func (s *Scroller) Jump(idx int) error {
	s.index = clamp(idx, 0, len(s.frames)-1)
	return s.Update()
}

// Update redraws the current frame: clear, image, title, flush.
func (s *Scroller) Update() error {
	s.screen.Clear()
	s.screen.DrawFrame(s.frames[s.index], s.style)
	s.screen.SetTitle(s.names[s.index])

	return s.screen.Flush()
}

func clamp(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}

	return v
}
