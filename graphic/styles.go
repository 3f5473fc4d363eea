package graphic

import (
	"image/color"

	"github.com/pkg/errors"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// paletteSize is the number of discrete shades rendered per colormap.
const paletteSize = 64

// ImageStyle configures how a frame is mapped to colors. Min and Max bound
// the value range; leaving both zero scales to the data range of the frame
// being drawn.
type ImageStyle struct {
	Colormap string
	Min      float64
	Max      float64
}

// LineStyle configures overlay and curve strokes. Width is in points.
type LineStyle struct {
	Width float64
	Color string
}

// DefaultImageStyle returns the style used when the caller does not care.
func DefaultImageStyle() ImageStyle {
	return ImageStyle{Colormap: "gray"}
}

// DefaultLineStyle matches the rectangle overlay of the spectrum figure:
// red, two points wide.
func DefaultLineStyle() LineStyle {
	return LineStyle{Width: 2, Color: "red"}
}

// DefaultCurveStyle is the stroke used for spectrum traces: blue, two
// points wide.
func DefaultCurveStyle() LineStyle {
	return LineStyle{Width: 2, Color: "blue"}
}

// Range resolves the display value bounds for a frame spanning [lo, hi].
func (s ImageStyle) Range(lo, hi float64) (float64, float64) {
	if s.Min == 0 && s.Max == 0 {
		return lo, hi
	}

	return s.Min, s.Max
}

// grayPalette is a linear black-to-white palette. The plot palette package
// ships heat, rainbow and diverging maps but no plain grayscale, so we
// satisfy the Palette interface ourselves.
type grayPalette struct {
	colors []color.Color
}

func (p grayPalette) Colors() []color.Color {
	return p.colors
}

func newGrayPalette(n int) palette.Palette {
	colors := make([]color.Color, n)
	for i := range colors {
		v := uint8(i * 255 / (n - 1))
		colors[i] = color.Gray{Y: v}
	}

	return grayPalette{colors: colors}
}

// Palette resolves the style's colormap name.
func (s ImageStyle) Palette() (palette.Palette, error) {
	switch s.Colormap {
	case "", "gray", "grey":
		return newGrayPalette(paletteSize), nil
	case "heat":
		return palette.Heat(paletteSize, 1), nil
	case "rainbow":
		return palette.Rainbow(paletteSize, palette.Blue, palette.Red, 1, 1, 1), nil
	case "divergent":
		return moreland.SmoothBlueRed().Palette(paletteSize), nil
	}

	return nil, errors.Errorf("graphic: unknown colormap %q", s.Colormap)
}

// StrokeColor resolves the style's color name.
func (s LineStyle) StrokeColor() (color.Color, error) {
	switch s.Color {
	case "", "red":
		return color.RGBA{R: 0xff, A: 0xff}, nil
	case "green":
		return color.RGBA{G: 0xff, A: 0xff}, nil
	case "blue":
		return color.RGBA{B: 0xff, A: 0xff}, nil
	case "black":
		return color.Black, nil
	case "white":
		return color.White, nil
	case "orange":
		return color.RGBA{R: 0xff, G: 0xa5, A: 0xff}, nil
	}

	return nil, errors.Errorf("graphic: unknown color %q", s.Color)
}
