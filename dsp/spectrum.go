// Package dsp computes power spectra of framed seismogram regions.
package dsp

import (
	"github.com/pkg/errors"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/avdeyev/seisplot/dsp/window"
	"github.com/avdeyev/seisplot/grid"
)

// Plan holds a forward real FFT over a fixed-length input buffer. The
// output is one-sided, length len(Input)/2+1.
type Plan struct {
	Input  []float64
	Output []complex128

	fft *fourier.FFT
}

// NewPlan allocates buffers for traces of n samples.
func NewPlan(n int) *Plan {
	return &Plan{
		Input:  make([]float64, n),
		Output: make([]complex128, n/2+1),
	}
}

// Execute runs the transform on the current input buffer.
func (p *Plan) Execute() {
	if p.fft == nil {
		p.fft = fourier.NewFFT(len(p.Input))
	}
	p.fft.Coefficients(p.Output, p.Input)
}

// Freqs returns the one-sided frequency bin centers in Hz for traces of n
// samples taken every dt seconds: bin i sits at i/(n*dt).
func Freqs(n int, dt float64) []float64 {
	freqs := make([]float64, n/2+1)
	for i := range freqs {
		freqs[i] = float64(i) / (float64(n) * dt)
	}

	return freqs
}

// MeanPower computes the power spectrum of every trace in the block along
// the sample axis and averages across traces. The window function is
// applied to each trace before the transform; a nil win leaves traces
// untouched. Returned slices are parallel: frequency in Hz, mean power.
func MeanPower(block *grid.Frame, dt float64, win window.Function) (freqs, power []float64, err error) {
	if dt <= 0 {
		return nil, nil, errors.Errorf("dsp: sampling interval %v not positive", dt)
	}

	rows, cols := block.Dims()
	if rows == 0 || cols == 0 {
		return nil, nil, errors.New("dsp: empty block")
	}

	plan := NewPlan(cols)
	power = make([]float64, cols/2+1)

	for i := 0; i < rows; i++ {
		copy(plan.Input, block.Row(i))
		if win != nil {
			win(plan.Input)
		}
		plan.Execute()

		for j, c := range plan.Output {
			re, im := real(c), imag(c)
			power[j] += re*re + im*im
		}
	}

	for j := range power {
		power[j] /= float64(rows)
	}

	return Freqs(cols, dt), power, nil
}

// Truncate restricts the spectrum to frequencies at or below maxFreq. A
// bound below the first bin yields empty slices.
func Truncate(freqs, power []float64, maxFreq float64) ([]float64, []float64) {
	n := 0
	for n < len(freqs) && freqs[n] <= maxFreq {
		n++
	}

	return freqs[:n], power[:n]
}
