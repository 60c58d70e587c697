package chartbuilder

import (
	"fmt"
	"image/color"
	"math"

	"github.com/posterforge/nvisposter/internal/render"
	"github.com/posterforge/nvisposter/internal/theme"
)

// Shared inset styling. These hues are the same on every poster
// regardless of palette.
var (
	insetSpineColor   = theme.MustHex("#546e7a")
	insetGridColor    = theme.MustHex("#37474f")
	insetTickColor    = theme.MustHex("#78909c")
	insetTitleColor   = theme.MustHex("#e0e0e0")
	insetCalloutFill  = theme.MustHex("#0a1628")
	patternCurveColor = theme.MustHex("#ff8a65")
	nvisZoneColor     = theme.MustHex("#ffd600")
)

// Loop height above the ground plane in wavelengths, used for the
// ground reflection factor. A roof mounted loop sits essentially on
// the ground plane on 40 m and up.
const heightWavelengths = 0.002

// ElevationPattern is the polar inset showing where the loop puts its
// energy: the response of a small horizontal loop over ground with the
// 70 to 90 degree NVIS window highlighted in gold.
type ElevationPattern struct {
	Title string
	Fill  color.NRGBA
}

// Draw renders the pattern into r on c.
func (p ElevationPattern) Draw(c *render.Canvas, r render.Rect) {
	cx := r.X + r.W/2
	cy := r.Y + r.H/2 + c.Px(8)
	outer := 0.38 * math.Min(r.W, r.H) // radius of the 1.15 axis limit
	unit := outer / 1.15

	// pt maps a polar coordinate to the canvas. Theta is measured from
	// straight up, positive clockwise, so the two pattern halves mirror
	// around the vertical.
	pt := func(theta, radius float64) render.Pt {
		return render.Pt{
			X: cx + radius*math.Sin(theta),
			Y: cy - radius*math.Cos(theta),
		}
	}

	// Axes disc and spine.
	c.FillCirclePx(cx, cy, outer, p.Fill)
	c.CirclePx(cx, cy, outer, insetSpineColor, 1.5, nil)

	// Radial grid rings at the dB ticks, spokes every 30 degrees.
	grid := theme.Alpha(insetGridColor, 0.4)
	for _, tick := range []float64{0.25, 0.5, 0.75, 1.0} {
		c.CirclePx(cx, cy, tick*unit, grid, 0.8, nil)
	}
	for deg := 0; deg < 360; deg += 30 {
		th := float64(deg) * math.Pi / 180
		c.Polyline([]render.Pt{pt(th, 0), pt(th, outer)}, grid, 0.8, nil)
		lp := pt(th, outer+c.Px(9))
		c.Text(lp.X, lp.Y, fmt.Sprintf("%d°", deg), render.TextStyle{
			Size: 8, Color: insetTickColor,
		})
	}
	for i, lbl := range []string{"-12", "-6", "-3", "0 dB"} {
		tick := 0.25 * float64(i+1)
		lp := pt(22.5*math.Pi/180, tick*unit)
		c.Text(lp.X, lp.Y, lbl, render.TextStyle{Size: 8, Color: insetTickColor})
	}

	// Pattern of a horizontal loop close to ground, normalized.
	const n = 180
	radii := make([]float64, n)
	var max float64
	for i := range radii {
		el := math.Pi * float64(i) / float64(n-1)
		gf := math.Abs(math.Sin(2*math.Pi*heightWavelengths*math.Sin(el)) + 0.8)
		radii[i] = math.Abs(math.Cos(el)) * gf
		if radii[i] > max {
			max = radii[i]
		}
	}
	for i := range radii {
		radii[i] /= max
	}

	for _, sign := range []float64{1, -1} {
		curve := make([]render.Pt, n)
		for i, rr := range radii {
			el := math.Pi * float64(i) / float64(n-1)
			curve[i] = pt(sign*el, rr*unit)
		}
		fill := append([]render.Pt{pt(0, 0)}, curve...)
		c.FillPoly(fill, theme.Alpha(patternCurveColor, 0.15))
		c.Polyline(curve, patternCurveColor, 2.5, nil)

		// NVIS window, 70 to 90 degrees off zenith.
		wedge := []render.Pt{pt(0, 0)}
		for i := 0; i <= 20; i++ {
			el := (70 + float64(i)) * math.Pi / 180
			rr := sampleAt(radii, el)
			wedge = append(wedge, pt(sign*el, rr*unit))
		}
		c.FillPoly(wedge, theme.Alpha(nvisZoneColor, 0.4))
	}

	c.Text(cx, r.Y+c.Px(4), p.Title, render.TextStyle{
		Size: 13, Color: insetTitleColor, Bold: true, VAlign: render.VTop,
	})

	np := pt(80*math.Pi/180, 0.85*unit)
	DrawCallout(c, np.X, np.Y, "NVIS\nZone", nvisZoneColor, nvisZoneColor, 11)
}

// sampleAt linearly interpolates the normalized pattern at elevation el,
// with samples spaced evenly over 0..pi.
func sampleAt(radii []float64, el float64) float64 {
	x := el / math.Pi * float64(len(radii)-1)
	i := int(x)
	if i >= len(radii)-1 {
		return radii[len(radii)-1]
	}
	f := x - float64(i)
	return radii[i]*(1-f) + radii[i+1]*f
}

// DrawCallout draws centered text in a small rounded box, the style
// shared by every inset annotation.
func DrawCallout(c *render.Canvas, x, y float64, text string, textColor, edge color.NRGBA, size float64) {
	st := render.TextStyle{Size: size, Color: textColor, Bold: true}
	w, h, _ := c.MeasureText(text, st)
	pad := c.Px(3)
	box := render.Rect{X: x - w/2 - pad, Y: y - h/2 - pad, W: w + 2*pad, H: h + 2*pad}
	c.RoundedBox(box, pad+2, theme.Alpha(insetCalloutFill, 0.9), edge, 1)
	c.Text(x, y, text, st)
}
