// Package window provides window functions applied to traces before
// spectral analysis.
//
// See https://wikipedia.org/wiki/Window_function
package window

import (
	"math"

	"github.com/pkg/errors"
)

// Function modifies a trace buffer in place.
type Function func(buf []float64)

// Rectangle leaves the trace untouched.
func Rectangle(buf []float64) {
	// do nothing
}

// CosSum applies a generalized cosine sum window with leading coefficient a0.
func CosSum(buf []float64, a0 float64) {
	size := len(buf)
	a1 := 1.0 - a0
	coef := 2.0 * math.Pi / float64(size)
	for n := 0; n < size; n++ {
		buf[n] *= (a0 - a1*math.Cos(coef*float64(n)))
	}
}

// Hamming applies a Hamming window.
func Hamming(buf []float64) {
	CosSum(buf, 25.0/46.0)
}

// Hann applies a Hann window.
func Hann(buf []float64) {
	CosSum(buf, 0.5)
}

// Bartlett applies a triangular Bartlett window.
func Bartlett(buf []float64) {
	size := len(buf)
	fSize := float64(size)
	for n := 0; n < size; n++ {
		buf[n] *= (1.0 - math.Abs((2.0*float64(n)-fSize)/fSize))
	}
}

// Blackman applies a Blackman window.
func Blackman(buf []float64) {
	size := len(buf)
	coef := 2.0 * math.Pi / float64(size)
	for n := 0; n < size; n++ {
		buf[n] *= (0.42 - 0.5*math.Cos(coef*float64(n)) +
			0.08*math.Cos(2.0*coef*float64(n)))
	}
}

// Named resolves a window function from its configuration name. An empty
// name selects Rectangle.
func Named(name string) (Function, error) {
	switch name {
	case "", "rectangle", "none":
		return Rectangle, nil
	case "hamming":
		return Hamming, nil
	case "hann":
		return Hann, nil
	case "bartlett":
		return Bartlett, nil
	case "blackman":
		return Blackman, nil
	}

	return nil, errors.Errorf("window: unknown function %q", name)
}
