package viewer

import (
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// pageFactor is the stride multiplier for page up/down.
const pageFactor = 5

// Run consumes terminal events and drives the scroller until the user
// quits with q, Escape or Ctrl-C. Events are handled one at a time; the
// handler runs to completion before the next event is read.
func Run(s *Scroller) error {
	for {
		ev := termbox.PollEvent()

		switch ev.Type {
		case termbox.EventKey:
			switch ev.Key {
			case termbox.KeyEsc, termbox.KeyCtrlC:
				return nil

			case termbox.KeyArrowUp, termbox.KeyArrowRight:
				if err := s.Step(Up); err != nil {
					return err
				}

			case termbox.KeyArrowDown, termbox.KeyArrowLeft:
				if err := s.Step(Down); err != nil {
					return err
				}

			case termbox.KeyPgup:
				if err := s.Scroll(Up, s.step*pageFactor); err != nil {
					return err
				}

			case termbox.KeyPgdn:
				if err := s.Scroll(Down, s.step*pageFactor); err != nil {
					return err
				}

			case termbox.KeyHome:
				if err := s.Jump(0); err != nil {
					return err
				}

			case termbox.KeyEnd:
				if err := s.Jump(len(s.frames) - 1); err != nil {
					return err
				}

			default:
				switch ev.Ch {
				case 'q', 'Q':
					return nil
				}
			}

		case termbox.EventMouse:
			switch ev.Key {
			case termbox.MouseWheelUp:
				if err := s.Step(Up); err != nil {
					return err
				}

			case termbox.MouseWheelDown:
				if err := s.Step(Down); err != nil {
					return err
				}
			}

		case termbox.EventResize:
			if err := s.Update(); err != nil {
				return err
			}

		case termbox.EventError:
			return errors.Wrap(ev.Err, "viewer: terminal event")
		}
	}
}
