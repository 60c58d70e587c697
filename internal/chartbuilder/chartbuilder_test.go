package chartbuilder_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posterforge/nvisposter/internal/chartbuilder"
	"github.com/posterforge/nvisposter/internal/render"
	"github.com/posterforge/nvisposter/internal/theme"
)

func TestChartBuilder(t *testing.T) {
	pal, err := theme.Get("slate")
	require.NoError(t, err)
	cb := chartbuilder.New(pal)
	values := []chartbuilder.Value{
		{Label: "80 m", Value: 7.7, Color: theme.MustHex("#ffab40")},
		{Label: "40 m", Value: 33.1, Color: theme.MustHex("#66bb6a")},
		{Label: "20 m", Value: 84.0, Color: theme.MustHex("#4dd0e1")},
	}
	t.Run("can render a bar chart", func(t *testing.T) {
		// when
		im, err := cb.Render(chartbuilder.Bar, 400, 300, values)
		// then
		if assert.NoError(t, err) {
			assert.Equal(t, 400, im.Bounds().Dx())
			assert.Equal(t, 300, im.Bounds().Dy())
		}
	})
	t.Run("can render a pie chart", func(t *testing.T) {
		// when
		im, err := cb.Render(chartbuilder.Pie, 300, 300, values)
		// then
		if assert.NoError(t, err) {
			assert.Equal(t, 300, im.Bounds().Dx())
		}
	})
	t.Run("can render with a fixed value axis ceiling", func(t *testing.T) {
		// given
		cb2 := cb
		cb2.YMax = 100
		// when
		_, err := cb2.Render(chartbuilder.Bar, 400, 300, values)
		// then
		assert.NoError(t, err)
	})
	t.Run("should report error when too few values", func(t *testing.T) {
		// when
		_, err := cb.Render(chartbuilder.Bar, 400, 300, values[:1])
		// then
		assert.ErrorIs(t, err, chartbuilder.ErrInsufficientData)
	})
	t.Run("should report error when all values are zero", func(t *testing.T) {
		// given
		zeros := []chartbuilder.Value{{Label: "a"}, {Label: "b"}}
		// when
		_, err := cb.Render(chartbuilder.Pie, 300, 300, zeros)
		// then
		assert.ErrorIs(t, err, chartbuilder.ErrInsufficientData)
	})
	t.Run("should report error for unknown chart type", func(t *testing.T) {
		// when
		_, err := cb.Render(chartbuilder.ChartType(99), 400, 300, values)
		// then
		assert.Error(t, err)
	})
}

func TestInsets(t *testing.T) {
	pal, err := theme.Get("slate")
	require.NoError(t, err)
	newCanvas := func() *render.Canvas {
		return render.NewCanvas(3, 3, 72, pal.Background)
	}
	rect := render.Rect{X: 20, Y: 20, W: 170, H: 170}
	t.Run("can draw the elevation pattern", func(t *testing.T) {
		// given
		c := newCanvas()
		p := chartbuilder.ElevationPattern{Title: "Elevation Pattern", Fill: pal.SceneFill}
		// when
		p.Draw(c, rect)
		// then
		assert.Positive(t, countChanged(c.Image(), rect, pal.Background))
	})
	t.Run("can draw the coverage map", func(t *testing.T) {
		// given
		c := newCanvas()
		m := chartbuilder.CoverageMap{
			Title: "NVIS Coverage (40 m)",
			Fill:  pal.SceneFill,
			Rings: []chartbuilder.Ring{{Km: 600, Alpha: 0.15}, {Km: 400, Alpha: 0.25}, {Km: 200, Alpha: 0.4}},
			Note:  "No skip zone!",
		}
		// when
		m.Draw(c, rect)
		// then
		assert.Positive(t, countChanged(c.Image(), rect, pal.Background))
	})
	t.Run("can draw the band switching schematic", func(t *testing.T) {
		// given
		c := newCanvas()
		s := chartbuilder.BandSwitch{
			Title:      "Band Switching Schematic",
			Fill:       pal.SceneFill,
			LoopLabel:  "Main Loop",
			BankA:      "Bank A",
			BankB:      "Bank B",
			Motor:      "NEMA17 Stepper",
			Controller: "ESP32 Controller",
		}
		// when
		s.Draw(c, rect)
		// then
		assert.Positive(t, countChanged(c.Image(), rect, pal.Background))
	})
	t.Run("can draw a pie legend", func(t *testing.T) {
		// given
		c := newCanvas()
		entries := []chartbuilder.Value{
			{Label: "Rr 3.3mΩ", Color: theme.MustHex("#66bb6a")},
			{Label: "Rl 40.7mΩ", Color: theme.MustHex("#ef5350")},
		}
		// when
		chartbuilder.DrawLegend(c, render.Rect{X: 30, Y: 30, W: 120, H: 60}, entries, 8)
		// then
		assert.Positive(t, countChanged(c.Image(), rect, pal.Background))
	})
}

// countChanged counts pixels inside r that no longer match the
// background color.
func countChanged(im image.Image, r render.Rect, bg color.NRGBA) int {
	var n int
	wantR, wantG, wantB, _ := bg.RGBA()
	for y := int(r.Y); y < int(r.Y+r.H); y++ {
		for x := int(r.X); x < int(r.X+r.W); x++ {
			gotR, gotG, gotB, _ := im.At(x, y).RGBA()
			if gotR != wantR || gotG != wantG || gotB != wantB {
				n++
			}
		}
	}
	return n
}
