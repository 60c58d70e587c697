// Package poster turns catalog definitions into finished poster
// images: the 3D installation scene, the print panels, the statistics
// insets and the banner and footer bars, rendered at print resolution
// and encoded to JPEG, PNG or WebP.
package poster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
	humanize "github.com/dustin/go-humanize"

	"github.com/posterforge/nvisposter/internal/antenna"
	"github.com/posterforge/nvisposter/internal/catalog"
	"github.com/posterforge/nvisposter/internal/chartbuilder"
	"github.com/posterforge/nvisposter/internal/panel"
	"github.com/posterforge/nvisposter/internal/render"
	"github.com/posterforge/nvisposter/internal/theme"
	"github.com/posterforge/nvisposter/internal/vehicle"
)

// Output formats.
const (
	FormatJPG  = "jpg"
	FormatPNG  = "png"
	FormatWebP = "webp"
)

var ErrUnknownFormat = errors.New("unknown output format")

const (
	defaultDPI  = 200
	jpegQuality = 95
)

// ParseFormat normalizes a format name as given on the command line.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(s) {
	case "jpg", "jpeg":
		return FormatJPG, nil
	case "png":
		return FormatPNG, nil
	case "webp":
		return FormatWebP, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Formats returns the supported output formats.
func Formats() []string {
	return []string{FormatJPG, FormatPNG, FormatWebP}
}

// Params are the renderer settings.
type Params struct {
	// DPI is the print resolution. Zero means 200.
	DPI float64
	// Scale multiplies the resolution, e.g. 0.25 for a quick proof.
	// Zero means full size.
	Scale  float64
	Logger *slog.Logger
}

// Renderer renders posters from catalog definitions. It is stateless
// apart from its settings and safe for concurrent use.
type Renderer struct {
	dpi float64
	log *slog.Logger
}

func New(p Params) *Renderer {
	dpi := p.DPI
	if dpi <= 0 {
		dpi = defaultDPI
	}
	if p.Scale > 0 {
		dpi *= p.Scale
	}
	log := p.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Renderer{dpi: dpi, log: log}
}

// DPI returns the effective print resolution after scaling.
func (r *Renderer) DPI() float64 {
	return r.dpi
}

// Render draws the complete poster and returns the image.
func (r *Renderer) Render(ctx context.Context, def catalog.Definition) (image.Image, error) {
	start := time.Now()
	if err := def.Validate(); err != nil {
		return nil, err
	}
	pal, err := theme.Get(def.Palette)
	if err != nil {
		return nil, err
	}
	style, err := vehicle.ParseStyle(def.Vehicle)
	if err != nil {
		return nil, err
	}
	m, err := vehicle.Build(style)
	if err != nil {
		return nil, err
	}
	ant, err := antenna.Build(def.Antenna, m, pal)
	if err != nil {
		return nil, err
	}
	m.Scene.Merge(ant)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := render.NewCanvas(def.WidthIn, def.HeightIn, r.dpi, pal.Background)
	sr := def.Scene.Rect
	render.Paint(c, m.Scene, def.Scene.Camera(), c.FigRect(sr[0], sr[1], sr[2], sr[3]))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := panel.New(c, pal)
	p.Table(def.Spec)
	p.Guide(def.Guide)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, in := range def.Insets {
		if err := r.inset(c, pal, in); err != nil {
			return nil, fmt.Errorf("%s inset: %w", in.Kind, err)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	// Banner and footer last, like the figure level patches they
	// replace: they overpaint anything reaching into their bands.
	p.Banner(def.Banner)
	p.Footer(def.Footer)

	r.log.Debug("rendered poster", "name", def.Name, "dpi", r.dpi, "duration", time.Since(start))
	return c.Image(), nil
}

func (r *Renderer) inset(c *render.Canvas, pal theme.Palette, in catalog.Inset) error {
	rect := c.FigRect(in.Rect[0], in.Rect[1], in.Rect[2], in.Rect[3])
	switch in.Kind {
	case catalog.InsetPolar:
		chartbuilder.ElevationPattern{Title: in.Title, Fill: pal.SceneFill}.Draw(c, rect)
	case catalog.InsetCoverage:
		rings := make([]chartbuilder.Ring, len(in.Rings))
		for i, g := range in.Rings {
			rings[i] = chartbuilder.Ring{Km: g.Km, Alpha: g.Alpha}
		}
		chartbuilder.CoverageMap{
			Title: in.Title, Fill: pal.SceneFill, Rings: rings, Note: in.Note,
		}.Draw(c, rect)
	case catalog.InsetSchematic:
		chartbuilder.BandSwitch{
			Title: in.Title, Fill: pal.SceneFill,
			LoopLabel: in.Loop, BankA: in.BankA, BankB: in.BankB,
			Motor: in.Motor, Controller: in.Controller,
		}.Draw(c, rect)
	case catalog.InsetBar:
		return r.chart(c, pal, in, rect, chartbuilder.Bar)
	case catalog.InsetPie:
		return r.chart(c, pal, in, rect, chartbuilder.Pie)
	default:
		return fmt.Errorf("unknown kind %q", in.Kind)
	}
	return nil
}

// chart draws a go-chart inset: frame and title first, the chart
// composed below the title, then the legend and any ratio badges.
func (r *Renderer) chart(c *render.Canvas, pal theme.Palette, in catalog.Inset, rect render.Rect, ct chartbuilder.ChartType) error {
	titleSize := 14.0
	if ct == chartbuilder.Pie {
		titleSize = 11
	}
	var titleColor color.NRGBA
	if in.TitleColor != "" {
		titleColor = theme.MustHex(in.TitleColor)
	}
	chartbuilder.InsetFrame{
		Title: in.Title, TitleSize: titleSize, TitleColor: titleColor, Fill: pal.SceneFill,
	}.Draw(c, rect)

	cb := chartbuilder.New(pal)
	cb.YMax = in.YMax
	cb.KeepSmallSlices = true
	pad := c.Px(titleSize + 8)
	area := render.Rect{X: rect.X, Y: rect.Y + pad, W: rect.W, H: rect.H - pad}
	im, err := cb.Render(ct, int(area.W), int(area.H), insetValues(in.Values, ct == chartbuilder.Pie))
	if errors.Is(err, chartbuilder.ErrInsufficientData) {
		r.log.Warn("skipping chart inset", "title", in.Title, "error", err)
		return nil
	}
	if err != nil {
		return err
	}
	c.Compose(im, area)

	if legend := legendEntries(in, ct); len(legend) > 0 && in.LegendRect != ([4]float64{}) {
		lr := c.FigRect(in.LegendRect[0], in.LegendRect[1], in.LegendRect[2], in.LegendRect[3])
		size := 10.0
		if ct == chartbuilder.Pie {
			size = 8
		}
		chartbuilder.DrawLegend(c, lr, legend, size)
	}
	for _, b := range in.Badges {
		chartbuilder.DrawCallout(c,
			rect.X+b.X*rect.W, rect.Y+(1-b.Y)*rect.H, b.Text, pal.Gold, pal.Gold, 14)
	}
	return nil
}

// insetValues converts catalog values for the chart builder. Pie slices
// lose their labels here; the legend below the pie carries them.
func insetValues(vals []catalog.InsetValue, stripLabels bool) []chartbuilder.Value {
	out := make([]chartbuilder.Value, len(vals))
	for i, v := range vals {
		out[i] = chartbuilder.Value{Value: v.Value}
		if !stripLabels {
			out[i].Label = v.Label
		}
		if v.Color != "" {
			out[i].Color = theme.MustHex(v.Color)
		}
	}
	return out
}

// legendEntries picks the legend content: explicit entries when the
// catalog declares them, otherwise the labeled pie values.
func legendEntries(in catalog.Inset, ct chartbuilder.ChartType) []chartbuilder.Value {
	src := in.Legend
	if len(src) == 0 && ct == chartbuilder.Pie {
		src = in.Values
	}
	out := make([]chartbuilder.Value, 0, len(src))
	for _, v := range src {
		cv := chartbuilder.Value{Label: v.Label, Value: v.Value}
		if v.Color != "" {
			cv.Color = theme.MustHex(v.Color)
		}
		out = append(out, cv)
	}
	return out
}

// RenderFile renders the poster into dir under its catalog file name
// plus the format extension. The image goes through a temp file first,
// so an interrupted run never leaves a half written poster behind.
func (r *Renderer) RenderFile(ctx context.Context, def catalog.Definition, dir, format string) (string, error) {
	im, err := r.Render(ctx, def)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, def.File+"."+format)
	tmp, err := os.CreateTemp(dir, def.File+".*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	if err := Encode(tmp, im, format); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}
	if fi, err := os.Stat(path); err == nil {
		r.log.Info("wrote poster", "name", def.Name, "path", path, "size", humanize.Bytes(uint64(fi.Size())))
	}
	return path, nil
}

// Encode writes im to w in the given output format.
func Encode(w io.Writer, im image.Image, format string) error {
	switch format {
	case FormatJPG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: jpegQuality})
	case FormatPNG:
		return png.Encode(w, im)
	case FormatWebP:
		return webp.Encode(w, im, &webp.Options{Quality: jpegQuality})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
