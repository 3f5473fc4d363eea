// Package config holds the display configuration shared by the seisplot
// binary and the plotting API, with YAML persistence for presets.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/avdeyev/seisplot/dsp/window"
	"github.com/avdeyev/seisplot/graphic"
)

// Config defines the recognized rendering options.
type Config struct {
	// Colormap is the image colormap name: gray, heat, rainbow, divergent.
	Colormap string `yaml:"colormap"`
	// VMin and VMax bound the displayed value range; both zero scales to
	// the data.
	VMin float64 `yaml:"vmin"`
	VMax float64 `yaml:"vmax"`
	// LineWidth is the overlay and curve stroke width in points.
	LineWidth float64 `yaml:"line_width"`
	// EdgeColor is the region outline color name.
	EdgeColor string `yaml:"edge_color"`
	// CurveColor is the spectrum trace color name.
	CurveColor string `yaml:"curve_color"`
	// FigWidth and FigHeight are the figure size in inches; zero sizes
	// from the panel count.
	FigWidth  float64 `yaml:"fig_width"`
	FigHeight float64 `yaml:"fig_height"`
	// ScrollStep is the viewer stride per scroll event.
	ScrollStep int `yaml:"scroll_step"`
	// SampleInterval is the time between samples, in seconds.
	SampleInterval float64 `yaml:"sample_interval"`
	// MaxFreq bounds the displayed spectrum when non-zero.
	MaxFreq float64 `yaml:"max_freq"`
	// Window is the trace window function name applied before the
	// spectrum transform.
	Window string `yaml:"window"`
}

// Default returns the configuration used when the caller sets nothing.
func Default() Config {
	return Config{
		Colormap:       "gray",
		LineWidth:      2,
		EdgeColor:      "red",
		CurveColor:     "blue",
		ScrollStep:     1,
		SampleInterval: 0.002,
	}
}

// Sanitize clamps and validates the configuration in place.
func (c *Config) Sanitize() error {
	if c.Colormap == "" {
		c.Colormap = "gray"
	}

	if c.EdgeColor == "" {
		c.EdgeColor = "red"
	}

	if c.CurveColor == "" {
		c.CurveColor = "blue"
	}

	if c.LineWidth <= 0 {
		c.LineWidth = 2
	}

	if c.ScrollStep < 1 {
		c.ScrollStep = 1
	}

	if c.SampleInterval <= 0 {
		return errors.Errorf("config: sample interval %v not positive", c.SampleInterval)
	}

	if (c.VMin != 0 || c.VMax != 0) && c.VMin >= c.VMax {
		return errors.Errorf("config: value range %v..%v is empty", c.VMin, c.VMax)
	}

	if _, err := c.ImageStyle().Palette(); err != nil {
		return err
	}

	if _, err := c.RectStyle().StrokeColor(); err != nil {
		return err
	}

	if _, err := c.CurveStyle().StrokeColor(); err != nil {
		return err
	}

	if _, err := window.Named(c.Window); err != nil {
		return err
	}

	return nil
}

// ImageStyle converts the image-related fields.
func (c Config) ImageStyle() graphic.ImageStyle {
	return graphic.ImageStyle{
		Colormap: c.Colormap,
		Min:      c.VMin,
		Max:      c.VMax,
	}
}

// RectStyle converts the region outline fields.
func (c Config) RectStyle() graphic.LineStyle {
	return graphic.LineStyle{
		Width: c.LineWidth,
		Color: c.EdgeColor,
	}
}

// CurveStyle converts the spectrum trace fields.
func (c Config) CurveStyle() graphic.LineStyle {
	return graphic.LineStyle{
		Width: c.LineWidth,
		Color: c.CurveColor,
	}
}

// Load reads a configuration preset from a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: read preset")
	}

	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(err, "config: parse preset")
	}

	return c, nil
}

// Save writes the configuration as a YAML preset.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "config: encode preset")
	}

	return os.WriteFile(path, data, 0644)
}
