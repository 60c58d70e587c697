package vehicle

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/posterforge/nvisposter/internal/geom"
	"github.com/posterforge/nvisposter/internal/scene"
	"github.com/posterforge/nvisposter/internal/theme"
)

// newClassicSedan builds the plain gray mid-size sedan.
func newClassicSedan() *Sedan {
	const zg = -0.18
	d := &Sedan{
		Ground: zg,
		Body: Profile{
			X: []float64{-2.2, -2.0, -1.6, -1.0, -0.4, 0.0, 0.4, 0.8,
				1.2, 1.6, 2.0, 2.2, 2.35},
			Half: []float64{0.40, 0.72, 0.78, 0.80, 0.80, 0.80, 0.80, 0.80,
				0.78, 0.74, 0.66, 0.50, 0.30},
			Top: rel(zg, 0.20, 0.38, 0.44, 0.46, 0.46, 0.46, 0.46, 0.46,
				0.44, 0.42, 0.36, 0.28, 0.20),
		},
		Cabin: Profile{
			X:    []float64{-1.4, -1.0, -0.5, 0.0, 0.5, 0.9, 1.2},
			Half: []float64{0.68, 0.74, 0.76, 0.76, 0.76, 0.72, 0.65},
			Top:  rel(zg, 0.44, 0.72, 0.78, 0.80, 0.78, 0.72, 0.60),
		},
		Paint: Paint{
			SideL:  theme.MustHex("#3a4d5c"),
			SideR:  theme.MustHex("#2d3a45"),
			Top:    theme.MustHex("#4a6272"),
			Bottom: theme.MustHex("#1a2530"),
			Front:  theme.MustHex("#3d5060"),
			Rear:   theme.MustHex("#2a3842"),
			Glass:  theme.MustHex("#5bc0de"),
			GlassA: 0.30,
			Roof:   theme.MustHex("#4a6272"),
			Pillar: theme.MustHex("#1e2d38"),
			Edge:   theme.MustHex("#1e2d38"),
		},
		sc: &scene.Scene{},
	}
	d.shell()
	d.greenhouse(1.5, 1.0)
	d.endGlass(true, 0, 1, 0.35)
	d.endGlass(false, 0, 1, 0.35)
	d.pillars(0.06, 6, 2, 0)
	d.doorLines([]float64{-0.2, 0.8}, 0.005, 0.02, theme.MustHex("#1a2530"), 2)
	d.handles([]float64{-0.55, 0.45}, 0.08, 0.008, theme.MustHex("#90a4ae"), 3)
	d.classicMirrors()
	d.classicLights()
	d.classicNose()
	d.classicWheels()
	d.roofRails(0.1, 0.005, theme.MustHex("#78909c"), 2.5, 30)
	return d
}

func (d *Sedan) classicMirrors() {
	housing := theme.MustHex("#2d3a45")
	last := len(d.Cabin.X) - 1
	mx := d.Cabin.X[last] - 0.05
	mw := d.Body.HalfAt(mx)
	mz := d.Body.TopAt(mx) + 0.04
	for _, s := range []float64{-1, 1} {
		my := s * (mw + 0.12)
		d.line([]r3.Vec{vec(mx, s*mw, mz), vec(mx, my, mz)},
			housing, 3, 1, scene.LayerRoof)
		d.sc.Add(&scene.Face{
			Pts: geom.Quad(
				vec(mx-0.04, my, mz-0.03), vec(mx+0.04, my, mz-0.03),
				vec(mx+0.04, my, mz+0.03), vec(mx-0.04, my, mz+0.03)),
			Fill: housing, Edge: theme.MustHex("#1a2530"), EdgeWidth: 1,
			Alpha: 0.9, Z: scene.LayerRoof,
		})
	}
}

func (d *Sedan) classicLights() {
	b := d.Body
	last := len(b.X) - 1
	for _, s := range []float64{-1, 1} {
		hx := b.X[last] + 0.01
		d.sc.Add(&scene.Face{
			Pts: geom.Quad(
				vec(hx, s*b.Half[last]*0.3, d.Ground+0.16),
				vec(hx, s*b.Half[last-1]*0.95, d.Ground+0.16),
				vec(hx, s*b.Half[last-1]*0.95, d.Ground+0.28),
				vec(hx, s*b.Half[last]*0.3, d.Ground+0.28)),
			Fill: theme.MustHex("#fff9c4"), Edge: theme.MustHex("#fdd835"),
			EdgeWidth: 1.5, Alpha: 0.85, Z: scene.LayerDetail,
		})
		tx := b.X[0] - 0.01
		d.sc.Add(&scene.Face{
			Pts: geom.Quad(
				vec(tx, s*b.Half[0]*0.3, d.Ground+0.08),
				vec(tx, s*b.Half[1]*0.9, d.Ground+0.08),
				vec(tx, s*b.Half[1]*0.9, d.Ground+0.20),
				vec(tx, s*b.Half[0]*0.3, d.Ground+0.20)),
			Fill: theme.MustHex("#d32f2f"), Edge: theme.MustHex("#b71c1c"),
			EdgeWidth: 1.5, Alpha: 0.85, Z: scene.LayerDetail,
		})
	}
}

// classicNose adds the grille, license plate and both bumpers.
func (d *Sedan) classicNose() {
	b := d.Body
	last := len(b.X) - 1
	zg := d.Ground

	gx := b.X[last] + 0.015
	gw := b.Half[last] * 0.7
	d.sc.Add(&scene.Face{
		Pts: geom.Quad(
			vec(gx, -gw, zg+0.03), vec(gx, gw, zg+0.03),
			vec(gx, gw, zg+0.16), vec(gx, -gw, zg+0.16)),
		Fill: theme.MustHex("#1a2530"), Edge: theme.MustHex("#263238"),
		EdgeWidth: 1, Alpha: 0.9, Z: scene.LayerDetail,
	})
	for _, z := range geom.Linspace(zg+0.05, zg+0.14, 4) {
		d.line([]r3.Vec{
			vec(gx+0.005, -gw*0.9, z), vec(gx+0.005, gw*0.9, z),
		}, theme.MustHex("#78909c"), 1.5, 1, scene.LayerRoof)
	}

	px := b.X[0] - 0.015
	d.sc.Add(&scene.Face{
		Pts: geom.Quad(
			vec(px, -0.12, zg+0.06), vec(px, 0.12, zg+0.06),
			vec(px, 0.12, zg+0.14), vec(px, -0.12, zg+0.14)),
		Fill: theme.MustHex("#f5f5f5"), Edge: theme.MustHex("#333333"),
		EdgeWidth: 1, Alpha: 0.9, Z: scene.LayerDetail,
	})

	bumper := theme.MustHex("#263238")
	fw := b.Half[last-1] * 0.92
	d.sc.Add(&scene.Face{
		Pts: geom.Quad(
			vec(b.X[last]+0.02, -fw, zg), vec(b.X[last]+0.02, fw, zg),
			vec(b.X[last]+0.02, fw, zg+0.08), vec(b.X[last]+0.02, -fw, zg+0.08)),
		Fill: bumper, Edge: theme.MustHex("#1a2530"), EdgeWidth: 1,
		Alpha: 0.9, Z: scene.LayerDetail,
	})
	rw := b.Half[1] * 0.85
	d.sc.Add(&scene.Face{
		Pts: geom.Quad(
			vec(b.X[0]-0.02, -rw, zg), vec(b.X[0]-0.02, rw, zg),
			vec(b.X[0]-0.02, rw, zg+0.08), vec(b.X[0]-0.02, -rw, zg+0.08)),
		Fill: bumper, Edge: theme.MustHex("#1a2530"), EdgeWidth: 1,
		Alpha: 0.9, Z: scene.LayerDetail,
	})
}

func (d *Sedan) classicWheels() {
	const (
		wheelR = 0.17
		rimR   = 0.10
		squash = 0.35
	)
	for _, wp := range []struct{ x, y float64 }{
		{1.55, -0.80}, {1.55, 0.80}, {-1.45, -0.80}, {-1.45, 0.80},
	} {
		center := vec(wp.x, wp.y, d.Ground+0.01)
		d.sc.Add(&scene.Face{
			Pts:  geom.DiscXZ(center, wheelR, squash, 32),
			Fill: theme.MustHex("#1a1a1a"), Edge: theme.MustHex("#111111"),
			EdgeWidth: 1, Alpha: 0.9, Z: scene.LayerDetail,
		})
		d.sc.Add(&scene.Face{
			Pts:  geom.DiscXZ(center, rimR, squash, 32),
			Fill: theme.MustHex("#b0bec5"), Edge: theme.MustHex("#78909c"),
			EdgeWidth: 1, Alpha: 0.85, Z: scene.LayerRoof,
		})
		d.line(geom.ArcXZ(center, wheelR+0.03, squash, -0.3, math.Pi+0.3, 30),
			theme.MustHex("#1a2530"), 3, 1, scene.LayerDetail)
	}
}

// rel builds station heights relative to the ground level.
func rel(base float64, hs ...float64) []float64 {
	out := make([]float64, len(hs))
	for i, h := range hs {
		out[i] = base + h
	}
	return out
}
