// Package seisplot renders seismogram frames as figures: plain image rows
// and image-plus-power-spectrum columns.
package seisplot

import (
	"github.com/pkg/errors"

	"github.com/avdeyev/seisplot/dsp"
	"github.com/avdeyev/seisplot/dsp/window"
	"github.com/avdeyev/seisplot/graphic"
	"github.com/avdeyev/seisplot/grid"
)

// Options configures the static plot functions. The zero value renders
// untitled grayscale panels sized from the panel count and does not save.
type Options struct {
	// Names are per-frame panel titles, parallel to the frames.
	Names []string
	// Width and Height are the figure size in inches; zero sizes from the
	// panel count.
	Width  float64
	Height float64
	// SaveTo writes the finished figure to this path when non-empty. The
	// format follows the extension.
	SaveTo string
	// Image styles the frame panels.
	Image graphic.ImageStyle
	// Rect styles the region-of-interest outline; red, two points wide
	// when left zero.
	Rect graphic.LineStyle
	// Curve styles the spectrum traces; blue, two points wide when left
	// zero.
	Curve graphic.LineStyle
	// MaxFreq bounds the displayed spectrum when non-zero.
	MaxFreq float64
	// Window is applied to each trace before the spectrum transform. Nil
	// leaves traces untouched.
	Window window.Function
}

func (o Options) name(i int) string {
	if o.Names == nil {
		return ""
	}

	return o.Names[i]
}

func (o Options) validate(frames []*grid.Frame) error {
	if len(frames) == 0 {
		return errors.New("seisplot: no frames")
	}

	if o.Names != nil && len(o.Names) != len(frames) {
		return errors.Errorf("seisplot: %d names for %d frames", len(o.Names), len(frames))
	}

	return nil
}

func (o Options) rect() graphic.LineStyle {
	if o.Rect == (graphic.LineStyle{}) {
		return graphic.DefaultLineStyle()
	}

	return o.Rect
}

func (o Options) curve() graphic.LineStyle {
	if o.Curve == (graphic.LineStyle{}) {
		return graphic.DefaultCurveStyle()
	}

	return o.Curve
}

// Seismic renders the frames as one row of image panels, one per frame,
// and returns the figure. With Options.SaveTo set the figure is also
// written out.
func Seismic(opts Options, frames ...*grid.Frame) (*graphic.Figure, error) {
	if err := opts.validate(frames); err != nil {
		return nil, err
	}

	fig := graphic.NewFigure(1, len(frames), opts.Width, opts.Height)

	for i, f := range frames {
		if err := fig.AddImage(0, i, f, opts.Image, opts.name(i)); err != nil {
			return nil, err
		}
	}

	if opts.SaveTo != "" {
		if err := fig.Save(opts.SaveTo); err != nil {
			return nil, err
		}
	}

	return fig, nil
}

// Spectrum renders each frame as a column of two panels: the full frame
// with the region of interest outlined on top, and the mean power spectrum
// of that region below. The region's traces are transformed along the
// sample axis with sampling interval dt seconds and averaged across
// traces. With Options.MaxFreq non-zero only frequencies at or below the
// bound are plotted.
func Spectrum(roi grid.ROI, dt float64, opts Options, frames ...*grid.Frame) (*graphic.Figure, error) {
	if err := opts.validate(frames); err != nil {
		return nil, err
	}

	if dt <= 0 {
		return nil, errors.Errorf("seisplot: sampling interval %v not positive", dt)
	}

	fig := graphic.NewFigure(2, len(frames), opts.Width, opts.Height)
	rect, curve := opts.rect(), opts.curve()

	for i, f := range frames {
		block, err := f.Slice(roi)
		if err != nil {
			return nil, err
		}

		if err := fig.AddImage(0, i, f, opts.Image, "Seismogram "+opts.name(i)); err != nil {
			return nil, err
		}

		if err := fig.AddRect(0, i, roi, rect); err != nil {
			return nil, err
		}

		freqs, power, err := dsp.MeanPower(block, dt, opts.Window)
		if err != nil {
			return nil, err
		}

		if opts.MaxFreq != 0 {
			freqs, power = dsp.Truncate(freqs, power, opts.MaxFreq)
		}

		if err := fig.AddCurve(1, i, freqs, power, curve, "Spectrum plot "+opts.name(i), "Hz"); err != nil {
			return nil, err
		}
	}

	if opts.SaveTo != "" {
		if err := fig.Save(opts.SaveTo); err != nil {
			return nil, err
		}
	}

	return fig, nil
}
