package chartbuilder

import (
	"image/color"
	"math"

	"github.com/posterforge/nvisposter/internal/render"
	"github.com/posterforge/nvisposter/internal/theme"
)

var (
	relayFill      = theme.MustHex("#37474f")
	relayEdge      = theme.MustHex("#78909c")
	relayLedColor  = theme.MustHex("#f44336")
	bankAFill      = theme.MustHex("#0d47a1")
	bankAEdge      = theme.MustHex("#42a5f5")
	bankAText      = theme.MustHex("#bbdefb")
	bankBFill      = theme.MustHex("#b71c1c")
	bankBEdge      = theme.MustHex("#ef5350")
	bankBText      = theme.MustHex("#ffcdd2")
	stepperFill    = theme.MustHex("#455a64")
	controllerFill = theme.MustHex("#1b5e20")
	controllerEdge = theme.MustHex("#4caf50")
	controllerText = theme.MustHex("#c8e6c9")
	schematicCu    = theme.MustHex("#b5651d")
	schematicCuHi  = theme.MustHex("#e8a54a")
)

// BandSwitch is the schematic inset of the dual band switching chain:
// loop, DPDT relay, the two capacitor banks, the stepper drive and the
// controller.
type BandSwitch struct {
	Title      string
	Fill       color.NRGBA
	LoopLabel  string
	BankA      string
	BankB      string
	Motor      string
	Controller string
}

// Draw renders the schematic into r on c.
func (s BandSwitch) Draw(c *render.Canvas, r render.Rect) {
	// The layout lives on a 10 by 10 grid with a little headroom below
	// for the controller box.
	px := func(x float64) float64 { return r.X + x/10*r.W }
	py := func(y float64) float64 { return r.Y + (10.2-y)/11*r.H }
	box := func(x, y, w, h float64) render.Rect {
		return render.Rect{X: px(x), Y: py(y + h), W: w / 10 * r.W, H: h / 11 * r.H}
	}
	line := func(x0, y0, x1, y1 float64, col color.NRGBA, lw float64, dash []float64) {
		c.Polyline([]render.Pt{{X: px(x0), Y: py(y0)}, {X: px(x1), Y: py(y1)}}, col, lw, dash)
	}

	c.FillRect(r, s.Fill)
	c.StrokeRect(r, insetSpineColor, 1.5)
	c.Text(r.X+r.W/2, r.Y+c.Px(4), s.Title, render.TextStyle{
		Size: 12, Color: insetTitleColor, Bold: true, VAlign: render.VTop,
	})

	radius := c.Px(3)

	// Loop symbol on top, feeding the relay through the gap lines.
	ellipse := make([]render.Pt, 0, 61)
	for i := 0; i <= 60; i++ {
		th := 2 * math.Pi * float64(i) / 60
		ellipse = append(ellipse, render.Pt{
			X: px(5 + 1.5*math.Cos(th)),
			Y: py(8.2 + 0.6*math.Sin(th)),
		})
	}
	c.Polyline(ellipse, schematicCu, 3, nil)
	c.Text(px(5), py(8.2), s.LoopLabel, render.TextStyle{
		Size: 9, Color: schematicCuHi, Bold: true,
	})
	line(3.5, 7.6, 3.5, 6.2, schematicCu, 2.5, nil)
	line(6.5, 7.6, 6.5, 6.2, schematicCu, 2.5, nil)

	relay := box(3.0, 5.0, 4.0, 1.2)
	c.RoundedBox(relay, radius, relayFill, relayEdge, 2)
	c.Text(px(5), py(5.6), "DPDT Relay", render.TextStyle{
		Size: 11, Color: insetTitleColor, Bold: true,
	})
	c.Disc(px(3.4), py(5.3), 3, relayLedColor, color.NRGBA{255, 255, 255, 255}, 1)

	// Bank A feeds on the left, Bank B on the right. The dashed legs
	// show the unselected path.
	dash := []float64{3.7, 1.6}
	line(3.5, 5.0, 2.0, 3.8, bankAEdge, 2.5, nil)
	line(6.5, 5.0, 2.0, 3.8, theme.Alpha(bankAEdge, 0.4), 2.5, dash)
	c.RoundedBox(box(0.5, 2.8, 3.0, 1.0), radius, bankAFill, bankAEdge, 1.5)
	c.Text(px(2.0), py(3.3), s.BankA, render.TextStyle{Size: 9, Color: bankAText, Bold: true})

	line(3.5, 5.0, 8.0, 3.8, theme.Alpha(bankBEdge, 0.4), 2.5, dash)
	line(6.5, 5.0, 8.0, 3.8, bankBEdge, 2.5, nil)
	c.RoundedBox(box(6.5, 2.8, 3.0, 1.0), radius, bankBFill, bankBEdge, 1.5)
	c.Text(px(8.0), py(3.3), s.BankB, render.TextStyle{Size: 9, Color: bankBText, Bold: true})

	// Stepper drives both banks through the worm gear.
	c.RoundedBox(box(3.5, 1.0, 3.0, 1.0), radius, stepperFill, relayEdge, 1.5)
	c.Text(px(5), py(1.5), s.Motor, render.TextStyle{Size: 9, Color: insetTitleColor, Bold: true})
	line(5, 2.0, 5, 2.8, relayEdge, 2, nil)
	drawArrow(c, px(5), py(2.0), px(2.0), py(2.8), relayEdge, 1.5)
	drawArrow(c, px(5), py(2.0), px(8.0), py(2.8), relayEdge, 1.5)

	c.RoundedBox(box(3.5, -0.2, 3.0, 0.8), radius, controllerFill, controllerEdge, 1.5)
	c.Text(px(5), py(0.2), s.Controller, render.TextStyle{Size: 9, Color: controllerText, Bold: true})
	line(5, 0.6, 5, 1.0, controllerEdge, 1.5, nil)
}

// drawArrow draws a straight arrow with a simple open head at the tip.
func drawArrow(c *render.Canvas, x0, y0, x1, y1 float64, col color.NRGBA, lw float64) {
	c.Polyline([]render.Pt{{X: x0, Y: y0}, {X: x1, Y: y1}}, col, lw, nil)
	ang := math.Atan2(y1-y0, x1-x0)
	head := c.Px(4 * lw)
	for _, da := range []float64{math.Pi - 0.5, math.Pi + 0.5} {
		c.Polyline([]render.Pt{
			{X: x1, Y: y1},
			{X: x1 + head*math.Cos(ang+da), Y: y1 + head*math.Sin(ang+da)},
		}, col, lw, nil)
	}
}
