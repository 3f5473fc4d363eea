package window

import (
	"math"
	"testing"
)

func ones(n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = 1
	}

	return buf
}

func TestRectangleLeavesBuffer(t *testing.T) {
	buf := ones(8)
	Rectangle(buf)

	for i, v := range buf {
		if v != 1 {
			t.Fatalf("expected buf[%d]=1, got %v", i, v)
		}
	}
}

func TestHannEndpoint(t *testing.T) {
	buf := ones(16)
	Hann(buf)

	if math.Abs(buf[0]) > 1e-12 {
		t.Fatalf("expected zero at the first sample, got %v", buf[0])
	}

	for _, v := range buf {
		if v < 0 || v > 1 {
			t.Fatalf("expected Hann weights in [0,1], got %v", v)
		}
	}
}

func TestNamed(t *testing.T) {
	for _, name := range []string{"", "rectangle", "none", "hann", "hamming", "bartlett", "blackman"} {
		fn, err := Named(name)
		if err != nil {
			t.Fatalf("Named(%q) failed: %v", name, err)
		}
		if fn == nil {
			t.Fatalf("Named(%q) returned nil", name)
		}
	}

	if _, err := Named("kaiser"); err == nil {
		t.Fatal("expected error for unknown window")
	}
}
