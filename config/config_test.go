package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultSanitizes(t *testing.T) {
	cfg := Default()
	if err := cfg.Sanitize(); err != nil {
		t.Fatalf("default config did not sanitize: %v", err)
	}
}

func TestSanitizeFillsZeroes(t *testing.T) {
	cfg := Config{SampleInterval: 0.004}
	if err := cfg.Sanitize(); err != nil {
		t.Fatalf("Sanitize failed: %v", err)
	}

	if cfg.Colormap != "gray" || cfg.EdgeColor != "red" || cfg.CurveColor != "blue" {
		t.Fatalf("expected default colors, got %q/%q/%q", cfg.Colormap, cfg.EdgeColor, cfg.CurveColor)
	}

	if cfg.LineWidth != 2 || cfg.ScrollStep != 1 {
		t.Fatalf("expected default strokes, got width %v step %d", cfg.LineWidth, cfg.ScrollStep)
	}
}

func TestSanitizeRejects(t *testing.T) {
	bad := []Config{
		{SampleInterval: 0},
		{SampleInterval: 0.004, Colormap: "viridis"},
		{SampleInterval: 0.004, EdgeColor: "chartreuse"},
		{SampleInterval: 0.004, CurveColor: "chartreuse"},
		{SampleInterval: 0.004, Window: "kaiser"},
	}

	for i, cfg := range bad {
		if err := cfg.Sanitize(); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestSanitizeValueRange(t *testing.T) {
	bad := []Config{
		{SampleInterval: 0.004, VMin: 2, VMax: 1},
		{SampleInterval: 0.004, VMin: 1, VMax: 1},
		{SampleInterval: 0.004, VMin: 3},
	}

	for i, cfg := range bad {
		if err := cfg.Sanitize(); err == nil {
			t.Errorf("case %d: expected error for range %v..%v", i, cfg.VMin, cfg.VMax)
		}
	}

	ok := Config{SampleInterval: 0.004, VMin: -3}
	if err := ok.Sanitize(); err != nil {
		t.Fatalf("range %v..%v should pass: %v", ok.VMin, ok.VMax, err)
	}
}

func TestSaveLoad(t *testing.T) {
	cfg := Default()
	cfg.Colormap = "heat"
	cfg.MaxFreq = 120
	cfg.Window = "hann"

	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded != cfg {
		t.Fatalf("expected %+v back, got %+v", cfg, loaded)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing preset")
	}
}

func TestStyleConversions(t *testing.T) {
	cfg := Config{Colormap: "heat", VMin: -1, VMax: 1, LineWidth: 3, EdgeColor: "green", CurveColor: "black"}

	img := cfg.ImageStyle()
	if img.Colormap != "heat" || img.Min != -1 || img.Max != 1 {
		t.Fatalf("unexpected image style %+v", img)
	}

	rect := cfg.RectStyle()
	if rect.Width != 3 || rect.Color != "green" {
		t.Fatalf("unexpected rect style %+v", rect)
	}

	curve := cfg.CurveStyle()
	if curve.Width != 3 || curve.Color != "black" {
		t.Fatalf("unexpected curve style %+v", curve)
	}
}
