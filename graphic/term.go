package graphic

import (
	"os"
	"strings"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"

	"github.com/avdeyev/seisplot/grid"
)

// Grayscale attribute range in termbox's OutputGrayscale mode: 1 is black,
// 26 is white, 2..25 are the xterm gray ramp.
const (
	grayFloor = 1
	grayCeil  = 26
)

// Term renders frames as shaded cells on a termbox screen. One Term owns
// the terminal for its whole session; Close restores it.
type Term struct {
	restore func()
}

// normalizeTerminal looks for incompatibilities in the terminal configuration
// with the underlying rendering libraries (Termbox) and makes some adjustments
// to avoid problems.
//
// Returns a function that allows you to restore the terminal configuration to its original state.
func normalizeTerminal() (func(), error) {
	prevTERMINFO := os.Getenv("TERMINFO")

	if strings.HasPrefix(os.Getenv("TERM"), "tmux") {
		// Some combinations of TERMINFO with TERM in some Tmux value
		// will cause Termbox to fail.
		if err := os.Unsetenv("TERMINFO"); err != nil {
			return nil, err
		}
	}

	restore := func() {
		if err := os.Setenv("TERMINFO", prevTERMINFO); err != nil {
			panic(err)
		}
	}

	return restore, nil
}

// OpenTerm initializes the terminal for frame display: grayscale cell
// output, mouse events enabled.
func OpenTerm() (*Term, error) {
	restore, err := normalizeTerminal()
	if err != nil {
		return nil, errors.Wrap(err, "graphic: normalize terminal")
	}

	if err := termbox.Init(); err != nil {
		restore()
		return nil, errors.Wrap(err, "graphic: termbox init")
	}

	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	termbox.SetOutputMode(termbox.OutputGrayscale)
	termbox.HideCursor()

	return &Term{restore: restore}, nil
}

// Close shuts the screen down and restores the terminal.
func (t *Term) Close() {
	termbox.Close()
	t.restore()
}

// Clear wipes the screen buffer.
func (t *Term) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

// SetTitle writes the title into the top screen row.
func (t *Term) SetTitle(title string) {
	width, _ := termbox.Size()
	x := 0
	for _, ch := range title {
		if x >= width {
			break
		}
		termbox.SetCell(x, 0, ch, termbox.ColorDefault, termbox.ColorDefault)
		x++
	}
}

// DrawFrame paints the frame transposed onto the cell grid below the title
// row: traces left to right, samples top to bottom (sample 0 at the top).
// Values map to gray shades inside the style's range.
func (t *Term) DrawFrame(f *grid.Frame, style ImageStyle) {
	width, height := termbox.Size()
	if width <= 0 || height <= 1 {
		return
	}

	rows, cols := f.Dims()
	lo, hi := style.Range(f.Min(), f.Max())
	span := hi - lo

	for y := 1; y < height; y++ {
		j := (y - 1) * cols / (height - 1)

		for x := 0; x < width; x++ {
			i := x * rows / width

			v := 0.0
			if span > 0 {
				v = (f.At(i, j) - lo) / span
			}

			termbox.SetCell(x, y, ' ', termbox.ColorDefault, shade(v))
		}
	}
}

// Flush pushes the back buffer to the terminal.
func (t *Term) Flush() error {
	return termbox.Flush()
}

func shade(v float64) termbox.Attribute {
	s := grayFloor + int(v*float64(grayCeil-grayFloor))

	switch {
	case s < grayFloor:
		s = grayFloor
	case s > grayCeil:
		s = grayCeil
	}

	return termbox.Attribute(s)
}
