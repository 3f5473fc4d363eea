package graphic

import "github.com/avdeyev/seisplot/grid"

// frameGrid adapts a frame to plotter.GridXYZ with the display convention
// used throughout: the frame is drawn transposed, so the x axis walks
// traces and the y axis walks samples. Axis inversion (sample 0 at the
// top) is handled by the panel's y scale, not here.
type frameGrid struct {
	frame *grid.Frame
}

func (g frameGrid) Dims() (c, r int) {
	rows, cols := g.frame.Dims()
	return rows, cols
}

func (g frameGrid) Z(c, r int) float64 {
	return g.frame.At(c, r)
}

func (g frameGrid) X(c int) float64 {
	return float64(c)
}

func (g frameGrid) Y(r int) float64 {
	return float64(r)
}
