// Package grid holds the 2-D frame model shared by the plotting helpers.
//
// A frame is one seismogram snapshot. The first axis indexes traces, the
// second axis indexes time samples. Frames are referenced, never copied, by
// the consumers in this module.
package grid

import (
	"github.com/pkg/errors"

	"gonum.org/v1/gonum/mat"
)

// Frame is a single 2-D snapshot backed by a dense matrix.
type Frame struct {
	data *mat.Dense
}

// New builds a frame from a row-major value slice. A nil data slice
// allocates a zero frame.
func New(rows, cols int, data []float64) *Frame {
	return &Frame{data: mat.NewDense(rows, cols, data)}
}

// FromRows builds a frame from per-trace slices. All traces must have the
// same length.
func FromRows(traces [][]float64) (*Frame, error) {
	if len(traces) == 0 {
		return nil, errors.New("grid: no traces")
	}

	cols := len(traces[0])
	if cols == 0 {
		return nil, errors.New("grid: empty trace")
	}

	f := New(len(traces), cols, nil)
	for i, tr := range traces {
		if len(tr) != cols {
			return nil, errors.Errorf("grid: trace %d has %d samples, want %d", i, len(tr), cols)
		}
		f.data.SetRow(i, tr)
	}

	return f, nil
}

// Dims returns the trace and sample counts.
func (f *Frame) Dims() (rows, cols int) {
	return f.data.Dims()
}

// At returns the sample value at trace r, sample c.
func (f *Frame) At(r, c int) float64 {
	return f.data.At(r, c)
}

// Row returns trace i without copying.
func (f *Frame) Row(i int) []float64 {
	return f.data.RawRowView(i)
}

// Min returns the smallest value in the frame.
func (f *Frame) Min() float64 {
	return mat.Min(f.data)
}

// Max returns the largest value in the frame.
func (f *Frame) Max() float64 {
	return mat.Max(f.data)
}

// Span is a half-open index range [Start, Stop).
type Span struct {
	Start int
	Stop  int
}

// Len returns the number of indices covered by the span.
func (s Span) Len() int {
	return s.Stop - s.Start
}

// ROI frames a rectangular region of interest: a trace range and a sample
// range.
type ROI struct {
	Rows Span
	Cols Span
}

// Validate reports whether the region lies within the frame.
func (r ROI) Validate(f *Frame) error {
	rows, cols := f.Dims()

	switch {
	case r.Rows.Start < 0 || r.Rows.Stop > rows || r.Rows.Len() <= 0:
		return errors.Errorf("grid: row range %d:%d outside frame with %d traces",
			r.Rows.Start, r.Rows.Stop, rows)

	case r.Cols.Start < 0 || r.Cols.Stop > cols || r.Cols.Len() <= 0:
		return errors.Errorf("grid: column range %d:%d outside frame with %d samples",
			r.Cols.Start, r.Cols.Stop, cols)
	}

	return nil
}

// Slice extracts the region as a view sharing the frame's storage.
func (f *Frame) Slice(r ROI) (*Frame, error) {
	if err := r.Validate(f); err != nil {
		return nil, err
	}

	sub := f.data.Slice(r.Rows.Start, r.Rows.Stop, r.Cols.Start, r.Cols.Stop).(*mat.Dense)

	return &Frame{data: sub}, nil
}
