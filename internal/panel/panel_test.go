package panel_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posterforge/nvisposter/internal/panel"
	"github.com/posterforge/nvisposter/internal/render"
	"github.com/posterforge/nvisposter/internal/theme"
)

func testPainter(t *testing.T) (*panel.Painter, *render.Canvas) {
	t.Helper()
	pal, err := theme.Get("navy")
	require.NoError(t, err)
	c := render.NewCanvas(4, 3, 72, pal.Background)
	return panel.New(c, pal), c
}

func TestTable(t *testing.T) {
	t.Run("can render a two column table", func(t *testing.T) {
		// given
		p, c := testPainter(t)
		tb := panel.Table{
			Rect:      [4]float64{0.05, 0.05, 0.9, 0.9},
			Title:     "Specifications",
			TitleSize: 11, TitleY: 9.6,
			Rows: []panel.Row{
				{Label: "Band", Values: []string{"40 m"}},
				{Label: "Loop Diameter", Values: []string{"1.00 m"}},
				{Label: "Efficiency", Values: []string{"~12-15 %"}},
			},
			RowY0: 8.9, RowDY: 0.6, RowH: 0.5, RowOff: 0.22, Size: 7,
		}
		// when
		p.Table(tb)
		// then the light panel fill dominates the dark page
		assert.Greater(t, litFraction(c.Image()), 0.5)
	})
	t.Run("can render a band comparison table", func(t *testing.T) {
		p, c := testPainter(t)
		tb := panel.Table{
			Rect:      [4]float64{0.05, 0.05, 0.9, 0.9},
			Title:     "Dual-Band Specifications",
			TitleSize: 11, TitleY: 9.65,
			Columns: []panel.Column{
				{Title: "80 m", X: 5.0, Color: "#ffd600"},
				{Title: "40 m", X: 8.0, Color: "#ffd600"},
			},
			HeaderY: 8.85, HeaderH: 0.55, HeaderSize: 7,
			Dividers: []float64{3.7, 6.5},
			Rows: []panel.Row{
				{Label: "Efficiency", Values: []string{"~1.7 %", "~12 %"}, Highlight: true},
				{Label: "Bandwidth", Values: []string{"~1.5 kHz", "~5-8 kHz"}},
				{Label: "Improvement", Values: []string{"3.1x", "2.0x"}, Colors: []string{"#e65100", "#1b5e20"}},
			},
			RowY0: 8.4, RowDY: 0.6, RowH: 0.5, RowOff: 0.2, Size: 6,
			Note:  &panel.Strip{Text: "reliable 24h", Y: 0.4, Size: 6, Kind: panel.StripNote},
		}
		require.NotPanics(t, func() { p.Table(tb) })
		assert.Greater(t, litFraction(c.Image()), 0.5)
	})
}

func TestGuide(t *testing.T) {
	t.Run("can render numbered steps with strips", func(t *testing.T) {
		// given
		p, c := testPainter(t)
		g := panel.Guide{
			Rect:      [4]float64{0.05, 0.05, 0.9, 0.9},
			Title:     "Installation & Operation Guide",
			TitleSize: 10, TitleY: 9.7,
			Steps: []panel.Step{
				{Num: "1.", Title: "BUILD LOOP", Desc: "Cut tube.\nBend into circle."},
				{Num: "2.", Title: "ROUTE COAX", Desc: "Through the window seal."},
			},
			RowY0: 8.8, RowDY: 1.6, RowH: 1.3, RowOff: 0.6,
			BadgeX: 0.6, BadgeR: 0.35, NumSize: 8,
			TextX: 1.2, TextDY: 0.3, StepSize: 8, DescSize: 6,
			Strips: []panel.Strip{
				{Text: "BOM: tube $30 + cap $120", Y: 1.0, Size: 6, Kind: panel.StripBOM},
				{Text: "40 m NVIS is highly reliable", Y: 0.3, Size: 6, Kind: panel.StripOK},
				{Text: "retune across the band", Y: 1.7, Size: 6, Kind: panel.StripWarn},
			},
		}
		// when
		require.NotPanics(t, func() { p.Guide(g) })
		// then
		assert.Greater(t, litFraction(c.Image()), 0.5)
	})
}

func TestBannerFooter(t *testing.T) {
	t.Run("can render banner and footer strips", func(t *testing.T) {
		p, c := testPainter(t)
		before := litFraction(c.Image())
		p.Banner(panel.Banner{
			Rect:  [4]float64{0.01, 0.93, 0.98, 0.06},
			Title: "NVIS 40 m Mobile Antenna", TitleSize: 10, TitleY: 0.968,
			Subtitle: "1.00 m Loop | Motor Tuned", SubSize: 7, SubY: 0.94,
		})
		p.Footer(panel.Footer{
			Rect: [4]float64{0.01, 0.002, 0.98, 0.028},
			Text: "Generated 2026-02-23", Size: 6, TextY: 0.016,
		})
		assert.Greater(t, litFraction(c.Image()), before)
	})
}

// litFraction returns the share of pixels clearly brighter than the
// dark page background.
func litFraction(im image.Image) float64 {
	b := im.Bounds()
	var n int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := im.At(x, y).RGBA()
			if r > 0x3000 || g > 0x3000 || bl > 0x3000 {
				n++
			}
		}
	}
	return float64(n) / float64(b.Dx()*b.Dy())
}
