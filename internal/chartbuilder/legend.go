package chartbuilder

import (
	"image/color"

	"github.com/posterforge/nvisposter/internal/render"
	"github.com/posterforge/nvisposter/internal/theme"
)

var legendFill = theme.MustHex("#1a2530")

// InsetFrame is the rectangular backing, spine and title that the bar
// and pie insets share with the hand drawn ones. A zero TitleColor
// falls back to the standard inset title gray.
type InsetFrame struct {
	Title      string
	TitleSize  float64
	TitleColor color.NRGBA
	Fill       color.NRGBA
}

// Draw renders the frame into r on c.
func (f InsetFrame) Draw(c *render.Canvas, r render.Rect) {
	c.FillRect(r, f.Fill)
	c.StrokeRect(r, insetSpineColor, 1.5)
	if f.Title == "" {
		return
	}
	tc := f.TitleColor
	if tc == (color.NRGBA{}) {
		tc = insetTitleColor
	}
	size := f.TitleSize
	if size == 0 {
		size = 13
	}
	c.Text(r.X+r.W/2, r.Y+c.Px(4), f.Title, render.TextStyle{
		Size: size, Color: tc, Bold: true, VAlign: render.VTop,
	})
}

// DrawLegend draws a single column legend for a pie chart: a color
// swatch per entry with its label to the right, inside a rounded box.
func DrawLegend(c *render.Canvas, r render.Rect, entries []Value, fontSize float64) {
	c.RoundedBox(r, c.Px(3), theme.Alpha(legendFill, 0.92), insetSpineColor, 1)
	rowH := r.H / float64(len(entries))
	sw := c.Px(fontSize)
	for i, e := range entries {
		y := r.Y + rowH*(float64(i)+0.5)
		x := r.X + c.Px(6)
		c.FillRect(render.Rect{X: x, Y: y - sw/2, W: sw, H: sw}, e.Color)
		c.Text(x+sw+c.Px(4), y, e.Label, render.TextStyle{
			Size: fontSize, Color: insetTitleColor, HAlign: render.HLeft,
		})
	}
}
