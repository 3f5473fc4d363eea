package main

import (
	"log"
	"os"
	"strings"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/avdeyev/seisplot"
	"github.com/avdeyev/seisplot/config"
	"github.com/avdeyev/seisplot/dsp/window"
	"github.com/avdeyev/seisplot/graphic"
	"github.com/avdeyev/seisplot/grid"
	"github.com/avdeyev/seisplot/viewer"
)

// AppName is the app name
const AppName = "seisplot"

// AppDesc is the app description
const AppDesc = "seismogram viewer and plotter"

var version = "unknown"

var errNoOutput = errors.New("no output path (use -o)")

// cli carries everything the flag parser writes besides the config.
type cli struct {
	inputs     []string
	configPath string
	output     string
	roiSpec    string

	view     *flaggy.Subcommand
	plot     *flaggy.Subcommand
	spectrum *flaggy.Subcommand
}

func main() {
	log.SetFlags(0)

	// The preset seeds the config before flag binding so that flags given
	// alongside --config win over preset values.
	cfg, err := loadPreset(os.Args[1:])
	chk(err, "failed to load preset")

	var c cli
	parser := newParser(&cfg, &c)

	chk(parser.Parse(), "failed to parse arguments")

	chk(cfg.Sanitize(), "invalid config")

	if !c.view.Used && !c.plot.Used && !c.spectrum.Used {
		log.Fatalln("specify a subcommand: view, plot or spectrum")
	}

	frames, names, err := loadFrames(c.inputs)
	chk(err, "failed to load frames")

	switch {
	case c.view.Used:
		chk(view(cfg, frames, names), "viewer failed")

	case c.plot.Used:
		opts, err := options(cfg, names, c.output)
		chk(err, "invalid options")

		_, err = seisplot.Seismic(opts, frames...)
		chk(err, "plot failed")

	case c.spectrum.Used:
		roi, err := parseROI(c.roiSpec)
		chk(err, "invalid region")

		opts, err := options(cfg, names, c.output)
		chk(err, "invalid options")

		_, err = seisplot.Spectrum(roi, cfg.SampleInterval, opts, frames...)
		chk(err, "spectrum failed")
	}
}

func newParser(cfg *config.Config, c *cli) *flaggy.Parser {
	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.Version = version

	parser.StringSlice(&c.inputs, "i", "input", "CSV frame file (one row per trace); repeatable")
	parser.String(&c.configPath, "c", "config", "YAML preset with display options")
	parser.String(&cfg.Colormap, "m", "cmap", "colormap (gray, heat, rainbow, divergent)")
	parser.Float64(&cfg.VMin, "", "vmin", "lower display value bound")
	parser.Float64(&cfg.VMax, "", "vmax", "upper display value bound")
	parser.Float64(&cfg.FigWidth, "", "width", "figure width in inches")
	parser.Float64(&cfg.FigHeight, "", "height", "figure height in inches")

	c.view = flaggy.NewSubcommand("view")
	c.view.Description = "scroll through frames in the terminal"
	c.view.Int(&cfg.ScrollStep, "s", "step", "frames per scroll event")

	c.plot = flaggy.NewSubcommand("plot")
	c.plot.Description = "render frames side by side to an image file"
	c.plot.String(&c.output, "o", "out", "output image path (.png, .jpg, .tif)")

	c.spectrum = flaggy.NewSubcommand("spectrum")
	c.spectrum.Description = "render frames with the power spectrum of a region"
	c.spectrum.String(&c.output, "o", "out", "output image path (.png, .jpg, .tif)")
	c.spectrum.String(&c.roiSpec, "r", "roi", "region of interest as r0:r1,c0:c1")
	c.spectrum.Float64(&cfg.SampleInterval, "d", "dt", "sampling interval in seconds")
	c.spectrum.Float64(&cfg.MaxFreq, "f", "max-freq", "upper displayed frequency in Hz")
	c.spectrum.String(&cfg.Window, "w", "window", "trace window (rectangle, hann, hamming, bartlett, blackman)")

	parser.AttachSubcommand(c.view, 1)
	parser.AttachSubcommand(c.plot, 1)
	parser.AttachSubcommand(c.spectrum, 1)

	return parser
}

// loadPreset pre-scans the arguments for a --config preset and returns the
// configuration to bind flags onto: the preset when named, the defaults
// otherwise.
func loadPreset(args []string) (config.Config, error) {
	path := presetPath(args)
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

func presetPath(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "-c" || arg == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}

		case strings.HasPrefix(arg, "-c="):
			return strings.TrimPrefix(arg, "-c=")

		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}

	return ""
}

func options(cfg config.Config, names []string, output string) (seisplot.Options, error) {
	if output == "" {
		return seisplot.Options{}, errNoOutput
	}

	win, err := window.Named(cfg.Window)
	if err != nil {
		return seisplot.Options{}, err
	}

	return seisplot.Options{
		Names:   names,
		Width:   cfg.FigWidth,
		Height:  cfg.FigHeight,
		SaveTo:  output,
		Image:   cfg.ImageStyle(),
		Rect:    cfg.RectStyle(),
		Curve:   cfg.CurveStyle(),
		MaxFreq: cfg.MaxFreq,
		Window:  win,
	}, nil
}

func view(cfg config.Config, frames []*grid.Frame, names []string) error {
	term, err := graphic.OpenTerm()
	if err != nil {
		return err
	}
	defer term.Close()

	s, err := viewer.New(term, frames, names, cfg.ScrollStep, cfg.ImageStyle())
	if err != nil {
		return err
	}

	return viewer.Run(s)
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
