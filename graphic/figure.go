package graphic

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/avdeyev/seisplot/grid"
)

// Default per-panel size, in inches.
const (
	panelWidth  = 5
	panelHeight = 4
)

// Figure is an off-screen figure of rows x cols subplot panels. Panels are
// filled through the Add methods and the whole figure is rasterized on
// Save or WriteTo.
type Figure struct {
	rows  int
	cols  int
	plots [][]*plot.Plot

	width  vg.Length
	height vg.Length
}

// NewFigure builds an empty figure. Width and height are in inches; zero
// values size the figure from the panel count.
func NewFigure(rows, cols int, width, height float64) *Figure {
	if width <= 0 {
		width = float64(cols) * panelWidth
	}
	if height <= 0 {
		height = float64(rows) * panelHeight
	}

	plots := make([][]*plot.Plot, rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, cols)
		for c := range plots[r] {
			plots[r][c] = plot.New()
		}
	}

	return &Figure{
		rows:   rows,
		cols:   cols,
		plots:  plots,
		width:  vg.Length(width) * vg.Inch,
		height: vg.Length(height) * vg.Inch,
	}
}

func (fig *Figure) panel(row, col int) (*plot.Plot, error) {
	if row < 0 || row >= fig.rows || col < 0 || col >= fig.cols {
		return nil, errors.Errorf("graphic: panel (%d,%d) outside %dx%d figure",
			row, col, fig.rows, fig.cols)
	}

	return fig.plots[row][col], nil
}

// AddImage renders the frame into a panel, transposed: traces along x in
// [0, rows], samples along y in [0, cols] with sample 0 at the top.
func (fig *Figure) AddImage(row, col int, f *grid.Frame, style ImageStyle, title string) error {
	p, err := fig.panel(row, col)
	if err != nil {
		return err
	}

	pal, err := style.Palette()
	if err != nil {
		return err
	}

	hm := plotter.NewHeatMap(frameGrid{frame: f}, pal)
	hm.Min, hm.Max = style.Range(f.Min(), f.Max())
	p.Add(hm)

	rows, cols := f.Dims()
	p.Title.Text = title
	p.X.Min, p.X.Max = 0, float64(rows)
	p.Y.Min, p.Y.Max = 0, float64(cols)
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	return nil
}

// AddRect overlays an unfilled rectangle marking the region of interest on
// an image panel, in the panel's transposed coordinates.
func (fig *Figure) AddRect(row, col int, roi grid.ROI, style LineStyle) error {
	p, err := fig.panel(row, col)
	if err != nil {
		return err
	}

	edge, err := style.StrokeColor()
	if err != nil {
		return err
	}

	x0, x1 := float64(roi.Rows.Start), float64(roi.Rows.Stop)
	y0, y1 := float64(roi.Cols.Start), float64(roi.Cols.Stop)

	outline, err := plotter.NewLine(plotter.XYs{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
		{X: x0, Y: y0},
	})
	if err != nil {
		return errors.Wrap(err, "graphic: rectangle overlay")
	}

	outline.LineStyle.Width = vg.Points(style.Width)
	outline.LineStyle.Color = edge
	p.Add(outline)

	return nil
}

// AddCurve plots ys against xs in a panel.
func (fig *Figure) AddCurve(row, col int, xs, ys []float64, style LineStyle, title, xlabel string) error {
	p, err := fig.panel(row, col)
	if err != nil {
		return err
	}

	if len(xs) != len(ys) {
		return errors.Errorf("graphic: curve has %d x values and %d y values", len(xs), len(ys))
	}

	stroke, err := style.StrokeColor()
	if err != nil {
		return err
	}

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "graphic: curve")
	}

	line.LineStyle.Width = vg.Points(style.Width)
	line.LineStyle.Color = stroke
	p.Add(line)

	p.Title.Text = title
	p.X.Label.Text = xlabel

	return nil
}

func (fig *Figure) draw() *vgimg.Canvas {
	img := vgimg.New(fig.width, fig.height)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: fig.rows,
		Cols: fig.cols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}

	canvases := plot.Align(fig.plots, tiles, dc)
	for r := range fig.plots {
		for c := range fig.plots[r] {
			fig.plots[r][c].Draw(canvases[r][c])
		}
	}

	return img
}

// WriteTo rasterizes the figure and writes it as PNG.
func (fig *Figure) WriteTo(w io.Writer) (int64, error) {
	png := vgimg.PngCanvas{Canvas: fig.draw()}
	return png.WriteTo(w)
}

// Save rasterizes the figure to the given path. The format follows the
// path extension: .png, .jpg/.jpeg or .tif/.tiff.
func (fig *Figure) Save(path string) (err error) {
	w, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "graphic: save figure")
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	img := fig.draw()

	switch ext := filepath.Ext(path); ext {
	case ".png":
		_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	case ".jpg", ".jpeg":
		_, err = vgimg.JpegCanvas{Canvas: img}.WriteTo(w)
	case ".tif", ".tiff":
		_, err = vgimg.TiffCanvas{Canvas: img}.WriteTo(w)
	default:
		err = errors.Errorf("graphic: unsupported figure format %q", ext)
	}

	return err
}
