// Package chartbuilder renders the statistics insets that run along the
// bottom edge of a poster: efficiency and ERP bar charts and the loss
// budget pies. Bar and pie charts are produced with go-chart on a
// transparent background and composed onto the poster canvas afterwards.
//
// The polar elevation pattern, the coverage rings and the band switching
// schematic have no go-chart equivalent and are drawn directly on the
// canvas (see polar.go, coverage.go and schematic.go).
package chartbuilder

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	humanize "github.com/dustin/go-humanize"
	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/posterforge/nvisposter/internal/theme"
)

type ChartType uint

const (
	Bar ChartType = iota
	Pie
)

const (
	chartOtherThreshold = 0.05
	defaultWidth        = 512
	defaultHeight       = 512
	chartPadding        = 0.04
	defaultFontSize     = 10
)

// ErrInsufficientData reports that a chart had too little data to be
// meaningful. Callers are expected to skip the inset and carry on.
var ErrInsufficientData = errors.New("insufficient data for chart")

// Value is a value in a chart. A zero Color falls back to the builder's
// foreground color.
type Value struct {
	Label string
	Value float64
	Color color.NRGBA
}

// ChartBuilder renders bar and pie charts as images.
// Bars keep the order their values were given in, so paired
// before-and-after values stay adjacent.
type ChartBuilder struct {
	ForegroundColor color.NRGBA
	BackgroundColor color.NRGBA
	Font            *truetype.Font
	FontSize        float64

	// YMax fixes the bar chart value axis ceiling.
	// When zero the axis is sized from the data.
	YMax float64

	// KeepSmallSlices stops pie slices below 5% from being folded
	// into an aggregated Other slice.
	KeepSmallSlices bool
}

func New(pal theme.Palette) ChartBuilder {
	return ChartBuilder{
		ForegroundColor: pal.TextLight,
		BackgroundColor: pal.SceneFill,
		Font:            theme.Bold(),
		FontSize:        defaultFontSize,
	}
}

func (cb ChartBuilder) foregroundColor() drawing.Color {
	return chartColor(cb.ForegroundColor)
}

func (cb ChartBuilder) backgroundColor() drawing.Color {
	return chartColor(cb.BackgroundColor)
}

// Render renders values as a chart image of the given type,
// ready for composing onto a canvas.
func (cb ChartBuilder) Render(ct ChartType, width, height int, values []Value) (image.Image, error) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	if len(values) < 2 {
		return nil, ErrInsufficientData
	}
	var max float64
	for _, v := range values {
		if v.Value > max {
			max = v.Value
		}
	}
	if max == 0 {
		return nil, ErrInsufficientData
	}
	var content []byte
	var err error
	switch ct {
	case Bar:
		content, err = cb.makeBarChart(width, height, values)
	case Pie:
		content, err = cb.makePieChart(width, height, values)
	default:
		err = fmt.Errorf("unknown chart type %d", ct)
	}
	if err != nil {
		return nil, err
	}
	im, err := png.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("decode rendered chart: %w", err)
	}
	return im, nil
}

func (cb ChartBuilder) makePieChart(width, height int, values []Value) ([]byte, error) {
	var total, other float64
	for _, r := range values {
		total += r.Value
	}
	data2 := make([]Value, 0)
	for _, r := range values {
		if !cb.KeepSmallSlices && r.Value/total < chartOtherThreshold {
			other += r.Value
			continue
		}
		data2 = append(data2, r)
	}
	if other > 0 {
		data2 = append(data2, Value{Label: "Other", Value: other})
	}
	chartValues := make([]chart.Value, 0)
	for _, r := range data2 {
		o := chart.Value{
			Label: r.Label,
			Value: r.Value,
			Style: chart.Style{
				FillColor:   chartColor(cb.sliceColor(r)),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1.5,
				FontColor:   cb.foregroundColor(),
				FontSize:    cb.FontSize,
			},
		}
		chartValues = append(chartValues, o)
	}
	pie := chart.PieChart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: chart.ColorTransparent,
			Padding: chart.Box{
				Top:    int(chartPadding * float64(height)),
				Bottom: int(chartPadding * float64(height)),
			},
		},
		Canvas: chart.Style{
			FillColor: chart.ColorTransparent,
			FontSize:  cb.FontSize,
		},
		SliceStyle: chart.Style{
			FontColor:   cb.foregroundColor(),
			StrokeColor: drawing.ColorWhite,
			StrokeWidth: 1.5,
			FontSize:    cb.FontSize,
		},
		Values: chartValues,
	}
	if cb.Font != nil {
		pie.Font = cb.Font
	}
	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (cb ChartBuilder) makeBarChart(width, height int, data []Value) ([]byte, error) {
	bars := make([]chart.Value, len(data))
	for i, r := range data {
		bars[i] = chart.Value{
			Label: r.Label,
			Value: r.Value,
			Style: chart.Style{
				FillColor:   chartColor(cb.sliceColor(r)),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1.5,
			},
		}
	}

	barChart := chart.BarChart{
		Background: chart.Style{
			FillColor: chart.ColorTransparent,
		},
		Canvas: chart.Style{
			FillColor: chart.ColorTransparent,
			FontSize:  cb.FontSize,
		},
		Width:  width,
		Height: height,
		XAxis: chart.Style{
			Hidden:              false,
			FontColor:           cb.foregroundColor(),
			FontSize:            cb.FontSize,
			TextRotationDegrees: 90,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				Hidden:    false,
				FontColor: cb.foregroundColor(),
				FontSize:  cb.FontSize,
			},
			ValueFormatter: numericValueFormatter,
		},
		Bars: bars,
	}
	if cb.YMax > 0 {
		barChart.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: cb.YMax}
	}
	if cb.Font != nil {
		barChart.Font = cb.Font
	}
	var buf bytes.Buffer
	if err := barChart.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (cb ChartBuilder) sliceColor(v Value) color.NRGBA {
	if v.Color == (color.NRGBA{}) {
		return cb.ForegroundColor
	}
	return v.Color
}

func numericValueFormatter(v interface{}) string {
	x, ok := v.(float64)
	if !ok {
		return ""
	}
	return humanize.Ftoa(x)
}

func chartColor(c color.Color) drawing.Color {
	r, g, b, a := c.RGBA()
	return drawing.Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}
