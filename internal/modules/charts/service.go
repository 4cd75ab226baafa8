// Package charts renders the analysis charts as PNG images.
package charts

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure sizes used by the analysis charts
var (
	WideFigure     = Size{Width: 14 * vg.Inch, Height: 8 * vg.Inch}
	StandardFigure = Size{Width: 10 * vg.Inch, Height: 6 * vg.Inch}
)

// Named colors for fixed-series charts
var (
	SteelBlue  = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	DarkOrange = color.RGBA{R: 255, G: 140, B: 0, A: 255}
)

// Size is the physical size of a rendered figure
type Size struct {
	Width  vg.Length
	Height vg.Length
}

// Bar is a single labelled bar
type Bar struct {
	Label      string
	Value      float64
	Annotation string // Drawn above the bar; empty means no annotation
}

// BarSpec describes a bar chart with one bar per category
type BarSpec struct {
	Title         string
	XLabel        string
	YLabel        string
	Bars          []Bar
	Colors        []color.Color // Cycled per bar; defaults to the service palette
	AnnotationPad float64       // Vertical distance in data units between bar top and annotation
	RotateTicks   bool
	Size          Size
}

// BoxGroup is one category of a box plot
type BoxGroup struct {
	Label        string
	Values       []float64
	Annotation   string
	AnnotationAt float64 // Y position of the annotation in data units
}

// BoxSpec describes a box plot with one box per category
type BoxSpec struct {
	Title  string
	XLabel string
	YLabel string
	Groups []BoxGroup
	Size   Size
}

// Service renders charts to PNG files
type Service struct {
	dpi     int
	palette []color.Color
	log     zerolog.Logger
}

// NewService creates a chart service rendering at the given resolution
func NewService(dpi int, log zerolog.Logger) (*Service, error) {
	p, err := brewer.GetPalette(brewer.TypeSequential, "YlGnBu", 9)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart palette: %w", err)
	}

	// Skip the palest shades, they vanish on a white background
	colors := p.Colors()[3:]

	return &Service{
		dpi:     dpi,
		palette: colors,
		log:     log.With().Str("service", "charts").Logger(),
	}, nil
}

// RenderBarChart draws spec as a bar chart and writes it to path
func (s *Service) RenderBarChart(spec BarSpec, path string) error {
	if len(spec.Bars) == 0 {
		return fmt.Errorf("bar chart %q has no bars", spec.Title)
	}

	p := newPlot(spec.Title, spec.XLabel, spec.YLabel)

	colors := spec.Colors
	if len(colors) == 0 {
		colors = s.palette
	}

	names := make([]string, len(spec.Bars))
	var annotations plotter.XYLabels
	maxY := 0.0

	for i, b := range spec.Bars {
		names[i] = b.Label

		bc, err := plotter.NewBarChart(plotter.Values{b.Value}, barWidth(spec.Size, len(spec.Bars)))
		if err != nil {
			return fmt.Errorf("failed to build bar %q: %w", b.Label, err)
		}
		bc.XMin = float64(i)
		bc.Color = colors[i%len(colors)]
		bc.LineStyle.Width = 0
		p.Add(bc)

		top := b.Value
		if b.Annotation != "" {
			top += spec.AnnotationPad
			annotations.XYs = append(annotations.XYs, plotter.XY{X: float64(i), Y: top})
			annotations.Labels = append(annotations.Labels, b.Annotation)
		}
		maxY = math.Max(maxY, top)
	}

	if err := addAnnotations(p, annotations); err != nil {
		return err
	}

	p.NominalX(names...)
	if spec.RotateTicks {
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter
	}
	p.Y.Min = math.Min(p.Y.Min, 0)
	p.Y.Max = math.Max(p.Y.Max, maxY*1.1)

	return s.save(p, spec.Size, path)
}

// RenderBoxPlot draws spec as a box plot and writes it to path
func (s *Service) RenderBoxPlot(spec BoxSpec, path string) error {
	if len(spec.Groups) == 0 {
		return fmt.Errorf("box plot %q has no groups", spec.Title)
	}

	p := newPlot(spec.Title, spec.XLabel, spec.YLabel)

	names := make([]string, len(spec.Groups))
	var annotations plotter.XYLabels
	maxY := math.Inf(-1)

	for i, g := range spec.Groups {
		names[i] = g.Label

		box, err := plotter.NewBoxPlot(barWidth(spec.Size, len(spec.Groups)), float64(i), plotter.Values(g.Values))
		if err != nil {
			return fmt.Errorf("failed to build box %q: %w", g.Label, err)
		}
		box.FillColor = s.palette[i%len(s.palette)]
		p.Add(box)

		if g.Annotation != "" {
			annotations.XYs = append(annotations.XYs, plotter.XY{X: float64(i), Y: g.AnnotationAt})
			annotations.Labels = append(annotations.Labels, g.Annotation)
			maxY = math.Max(maxY, g.AnnotationAt)
		}
	}

	if err := addAnnotations(p, annotations); err != nil {
		return err
	}

	p.NominalX(names...)
	if !math.IsInf(maxY, -1) {
		p.Y.Max = math.Max(p.Y.Max, maxY*1.05)
	}

	return s.save(p, spec.Size, path)
}

// save rasterizes p at the service DPI and writes a PNG to path
func (s *Service) save(p *plot.Plot, size Size, path string) error {
	c := vgimg.NewWith(vgimg.UseWH(size.Width, size.Height), vgimg.UseDPI(s.dpi))
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		return fmt.Errorf("failed to write chart %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close chart file %s: %w", path, err)
	}

	s.log.Debug().Str("path", path).Int("dpi", s.dpi).Msg("Chart written")
	return nil
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

func addAnnotations(p *plot.Plot, xyl plotter.XYLabels) error {
	if len(xyl.Labels) == 0 {
		return nil
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return fmt.Errorf("failed to build annotations: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YBottom
	}
	p.Add(labels)
	return nil
}

// barWidth spreads n categories across the figure, leaving a gap between them
func barWidth(size Size, n int) vg.Length {
	w := size.Width * 0.6 / vg.Length(n+1)
	if w > vg.Points(60) {
		w = vg.Points(60)
	}
	return w
}
