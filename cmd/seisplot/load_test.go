package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "shot.csv", "1,2,3\n4,5,6\n")

	f, err := loadCSV(path)
	if err != nil {
		t.Fatalf("loadCSV failed: %v", err)
	}

	rows, cols := f.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("expected 2x3, got %dx%d", rows, cols)
	}

	if got := f.At(1, 0); got != 4 {
		t.Fatalf("expected At(1,0)=4, got %v", got)
	}
}

func TestLoadCSVBadField(t *testing.T) {
	path := writeCSV(t, "shot.csv", "1,2\n3,oops\n")

	if _, err := loadCSV(path); err == nil {
		t.Fatal("expected error for non-numeric field")
	}
}

func TestLoadFramesNames(t *testing.T) {
	path := writeCSV(t, "line42.csv", "1,2\n3,4\n")

	frames, names, err := loadFrames([]string{path})
	if err != nil {
		t.Fatalf("loadFrames failed: %v", err)
	}

	if len(frames) != 1 || names[0] != "line42" {
		t.Fatalf("expected one frame named line42, got %v", names)
	}
}

func TestLoadFramesEmpty(t *testing.T) {
	if _, _, err := loadFrames(nil); err == nil {
		t.Fatal("expected error for no inputs")
	}
}

func writePreset(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write preset: %v", err)
	}

	return path
}

func TestPresetPath(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"view", "-c", "a.yaml"}, "a.yaml"},
		{[]string{"--config", "b.yaml", "plot"}, "b.yaml"},
		{[]string{"plot", "--config=c.yaml"}, "c.yaml"},
		{[]string{"plot", "-o", "out.png"}, ""},
		{[]string{"-c"}, ""},
	}

	for i, c := range cases {
		if got := presetPath(c.args); got != c.want {
			t.Errorf("case %d: presetPath(%v) = %q, want %q", i, c.args, got, c.want)
		}
	}
}

func TestFlagsOverridePreset(t *testing.T) {
	preset := writePreset(t, "colormap: heat\nvmin: -2\nvmax: 2\nscroll_step: 3\n")

	args := []string{"-c", preset, "-m", "rainbow", "view"}

	cfg, err := loadPreset(args)
	if err != nil {
		t.Fatalf("loadPreset failed: %v", err)
	}

	var c cli
	if err := newParser(&cfg, &c).ParseArgs(args); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if cfg.Colormap != "rainbow" {
		t.Fatalf("expected flag to win over preset, got colormap %q", cfg.Colormap)
	}

	if cfg.VMin != -2 || cfg.VMax != 2 || cfg.ScrollStep != 3 {
		t.Fatalf("expected unset flags to keep preset values, got %+v", cfg)
	}

	if !c.view.Used {
		t.Fatal("expected view subcommand")
	}
}

func TestPresetWithoutFlags(t *testing.T) {
	preset := writePreset(t, "colormap: divergent\nmax_freq: 80\n")

	args := []string{"--config=" + preset, "plot", "-o", "out.png"}

	cfg, err := loadPreset(args)
	if err != nil {
		t.Fatalf("loadPreset failed: %v", err)
	}

	var c cli
	if err := newParser(&cfg, &c).ParseArgs(args); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if cfg.Colormap != "divergent" || cfg.MaxFreq != 80 {
		t.Fatalf("expected preset values to survive parsing, got %+v", cfg)
	}

	if c.output != "out.png" || !c.plot.Used {
		t.Fatalf("expected plot -o out.png, got %q", c.output)
	}
}

func TestLoadPresetMissing(t *testing.T) {
	if _, err := loadPreset([]string{"-c", "nope.yaml"}); err == nil {
		t.Fatal("expected error for missing preset")
	}
}

func TestParseROI(t *testing.T) {
	roi, err := parseROI("10:20,5:40")
	if err != nil {
		t.Fatalf("parseROI failed: %v", err)
	}

	if roi.Rows.Start != 10 || roi.Rows.Stop != 20 || roi.Cols.Start != 5 || roi.Cols.Stop != 40 {
		t.Fatalf("unexpected region %+v", roi)
	}
}

func TestParseROIBad(t *testing.T) {
	for _, spec := range []string{"", "10:20", "10:20,5", "a:b,c:d", "1:2,3:4,5:6"} {
		if _, err := parseROI(spec); err == nil {
			t.Errorf("expected error for %q", spec)
		}
	}
}
