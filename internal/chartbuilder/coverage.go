package chartbuilder

import (
	"fmt"
	"image/color"
	"math"

	"github.com/posterforge/nvisposter/internal/render"
	"github.com/posterforge/nvisposter/internal/theme"
)

var (
	coverageRingColor  = theme.MustHex("#4dd0e1")
	coverageLabelColor = theme.MustHex("#80deea")
	coverageNoteColor  = theme.MustHex("#a5d6a7")
	coverageNoteEdge   = theme.MustHex("#4caf50")
	coverageTxColor    = theme.MustHex("#c62828")
)

// Ring is one concentric coverage circle. Alpha grows towards the
// center so the rings stack into a gradient.
type Ring struct {
	Km    float64
	Alpha float64
}

// CoverageMap is the inset of concentric rings around the transmitter
// illustrating continuous NVIS coverage with no skip zone.
type CoverageMap struct {
	Title string
	Fill  color.NRGBA
	Rings []Ring // outermost first
	Note  string
	MaxKm float64 // ring normalization radius
}

// Draw renders the map into r on c.
func (m CoverageMap) Draw(c *render.Canvas, r render.Rect) {
	maxKm := m.MaxKm
	if maxKm == 0 {
		maxKm = 700
	}
	cx := r.X + r.W/2
	cy := r.Y + r.H/2 + c.Px(6)
	scale := math.Min(r.W, r.H) / 2 / 1.05

	c.FillRect(r, m.Fill)
	c.StrokeRect(r, insetSpineColor, 1.5)

	for _, ring := range m.Rings {
		rad := ring.Km / maxKm * scale
		c.FillCirclePx(cx, cy, rad, theme.Alpha(coverageRingColor, ring.Alpha))
		c.CirclePx(cx, cy, rad, theme.Alpha(coverageRingColor, 0.6), 1.2, nil)
		c.Text(cx, cy-rad-0.03*scale, fmt.Sprintf("%.0f km", ring.Km), render.TextStyle{
			Size: 10, Color: coverageLabelColor, Bold: true, VAlign: render.VBottom,
		})
	}

	// Transmitter marker at the center.
	half := c.Px(4)
	c.FillRect(render.Rect{X: cx - half, Y: cy - half, W: 2 * half, H: 2 * half}, coverageTxColor)
	c.Text(cx+0.05*scale, cy+0.05*scale, "TX", render.TextStyle{
		Size: 10, Color: coverageTxColor, Bold: true, HAlign: render.HLeft,
	})

	if m.Note != "" {
		DrawCallout(c, cx+0.45*scale, cy+0.55*scale, m.Note, coverageNoteColor, coverageNoteEdge, 10)
	}

	c.Text(cx, r.Y+c.Px(4), m.Title, render.TextStyle{
		Size: 13, Color: insetTitleColor, Bold: true, VAlign: render.VTop,
	})
}
