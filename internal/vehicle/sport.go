package vehicle

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/posterforge/nvisposter/internal/geom"
	"github.com/posterforge/nvisposter/internal/scene"
	"github.com/posterforge/nvisposter/internal/theme"
)

// newSportSedan builds the metallic gray sedan with sport trim: LED
// light signatures, alloy wheels with visible brake discs and a shark
// fin on the rear roof.
func newSportSedan() *Sedan {
	const zg = -0.20
	d := &Sedan{
		Ground: zg,
		Body: Profile{
			X: []float64{-2.30, -2.15, -2.00, -1.80, -1.50, -1.20, -0.80, -0.40,
				0.00, 0.30, 0.60, 0.90, 1.20, 1.50, 1.75,
				2.00, 2.15, 2.30, 2.42, 2.50},
			Half: []float64{0.28, 0.52, 0.72, 0.79, 0.82, 0.83, 0.84, 0.84,
				0.84, 0.84, 0.84, 0.84, 0.82, 0.79, 0.74,
				0.67, 0.56, 0.42, 0.30, 0.18},
			Top: rel(zg, 0.15, 0.30, 0.40, 0.45, 0.48, 0.48, 0.48, 0.48,
				0.48, 0.48, 0.48, 0.48, 0.47, 0.45, 0.42,
				0.38, 0.33, 0.26, 0.20, 0.14),
		},
		Cabin: Profile{
			X:    []float64{-1.50, -1.20, -0.80, -0.40, 0.00, 0.40, 0.70, 1.00, 1.25, 1.45},
			Half: []float64{0.60, 0.72, 0.77, 0.78, 0.78, 0.78, 0.77, 0.74, 0.68, 0.58},
			Top: rel(zg, 0.48, 0.68, 0.78, 0.82, 0.84,
				0.82, 0.78, 0.72, 0.64, 0.55),
		},
		Paint: Paint{
			SideL:  theme.MustHex("#4a6878"),
			SideR:  theme.MustHex("#2a3e4a"),
			Top:    theme.MustHex("#5a7888"),
			Bottom: theme.MustHex("#1a2830"),
			Front:  theme.MustHex("#3a5565"),
			Rear:   theme.MustHex("#283c48"),
			Glass:  theme.MustHex("#5bc0de"),
			GlassA: 0.28,
			Roof:   theme.MustHex("#5a7888"),
			Pillar: theme.MustHex("#1a2530"),
			Edge:   theme.MustHex("#1a2530"),
		},
		sc: &scene.Scene{},
	}
	d.shell()
	d.greenhouse(1.2, 0.8)
	d.endGlass(true, 0.20, 0.93, 0.32)
	d.endGlass(false, 0.12, 0.93, 0.32)
	d.pillars(0.065, 9, 3, 0)
	d.doorLines([]float64{-0.25, 0.70}, 0.005, 0.03, theme.MustHex("#1a2530"), 1.8)
	d.handles([]float64{-0.65, 0.35}, 0.07, 0.008, theme.MustHex("#b0bec5"), 3.5)
	d.mirrors(0.08, 0.14, 0.05, 0.035, 0.025, theme.MustHex("#2d3a45"))
	d.sportLights()
	d.sportNose()
	d.sportWheels()
	d.roofRails(0.15, 0.008, theme.MustHex("#90a4ae"), 3, 40)
	d.sharkFin(1, theme.MustHex("#2d3a45"))
	d.wipers(0.12, 0.25, 0.7, theme.MustHex("#1a1a1a"), 2)
	d.exhaust(0.025, false)
	return d
}

// mirrors adds side mirrors with a glass face. The housing hangs out
// from the A pillar on a short arm.
func (d *Sedan) mirrors(backoff, out, lift, halfH, glassHalfH float64, housing color.NRGBA) {
	last := len(d.Cabin.X) - 1
	mx := d.Cabin.X[last] - backoff
	mw := d.Body.HalfAt(mx)
	mz := d.Body.TopAt(mx) + lift
	for _, s := range []float64{-1, 1} {
		my := s * (mw + out)
		d.line([]r3.Vec{vec(mx, s*mw, mz), vec(mx, my, mz)},
			housing, 3, 1, scene.LayerRoof)
		d.face(geom.Quad(
			vec(mx-0.05, my, mz-halfH), vec(mx+0.05, my, mz-halfH),
			vec(mx+0.05, my, mz+halfH), vec(mx-0.05, my, mz+halfH)),
			housing, 1, 0.9, scene.LayerRoof)
		gy := my + s*0.005
		d.face(geom.Quad(
			vec(mx-0.04, gy, mz-glassHalfH), vec(mx+0.04, gy, mz-glassHalfH),
			vec(mx+0.04, gy, mz+glassHalfH), vec(mx-0.04, gy, mz+glassHalfH)),
			theme.MustHex("#90caf9"), 1, 0.5, scene.LayerChrome)
	}
}

func (d *Sedan) sportLights() {
	b := d.Body
	last := len(b.X) - 1
	zg := d.Ground
	for _, s := range []float64{-1, 1} {
		hx := b.X[last] + 0.015
		for _, seg := range [][2]float64{
			{s * 0.05, s * 0.20},
			{s * 0.22, s * b.Half[last-1] * 0.9},
		} {
			d.sc.Add(&scene.Face{
				Pts: geom.Quad(
					vec(hx, seg[0], zg+0.14), vec(hx, seg[1], zg+0.14),
					vec(hx, seg[1], zg+0.24), vec(hx, seg[0], zg+0.24)),
				Fill: theme.MustHex("#fff9c4"), Edge: theme.MustHex("#fdd835"),
				EdgeWidth: 1.2, Alpha: 0.85, Z: scene.LayerDetail,
			})
		}
		d.line([]r3.Vec{
			vec(hx+0.005, s*0.05, zg+0.25), vec(hx+0.005, s*b.Half[last-1]*0.88, zg+0.25),
		}, theme.MustHex("#bbdefb"), 2, 0.6, scene.LayerRoof)

		tx := b.X[0] - 0.015
		d.sc.Add(&scene.Face{
			Pts: geom.Quad(
				vec(tx, s*0.08, zg+0.06), vec(tx, s*b.Half[1]*0.88, zg+0.06),
				vec(tx, s*b.Half[1]*0.88, zg+0.22), vec(tx, s*0.08, zg+0.22)),
			Fill: theme.MustHex("#d32f2f"), Edge: theme.MustHex("#b71c1c"),
			EdgeWidth: 1.2, Alpha: 0.85, Z: scene.LayerDetail,
		})
		d.line([]r3.Vec{
			vec(tx-0.005, s*0.10, zg+0.14), vec(tx-0.005, s*b.Half[1]*0.85, zg+0.14),
		}, theme.MustHex("#ff8a80"), 2.5, 0.7, scene.LayerRoof)
	}
}

// sportNose adds the split grille with chrome bar, the badge, both
// plates, bumpers and the rocker panels.
func (d *Sedan) sportNose() {
	b := d.Body
	last := len(b.X) - 1
	zg := d.Ground
	gx := b.X[last] + 0.02
	gw := b.Half[last] * 0.85

	d.face(geom.Quad(
		vec(gx, -gw, zg+0.10), vec(gx, gw, zg+0.10),
		vec(gx, gw, zg+0.18), vec(gx, -gw, zg+0.18)),
		theme.MustHex("#1a2530"), 1, 0.92, scene.LayerDetail)
	d.face(geom.Quad(
		vec(gx, -gw*0.8, zg+0.01), vec(gx, gw*0.8, zg+0.01),
		vec(gx, gw*0.8, zg+0.08), vec(gx, -gw*0.8, zg+0.08)),
		theme.MustHex("#111820"), 1, 0.92, scene.LayerDetail)
	d.line([]r3.Vec{
		vec(gx+0.005, -gw*0.9, zg+0.135), vec(gx+0.005, gw*0.9, zg+0.135),
	}, theme.MustHex("#b0bec5"), 2.5, 1, scene.LayerRoof)
	for _, z := range geom.Linspace(zg+0.11, zg+0.17, 3) {
		d.line([]r3.Vec{
			vec(gx+0.003, -gw*0.85, z), vec(gx+0.003, gw*0.85, z),
		}, theme.MustHex("#37474f"), 1.2, 1, scene.LayerRoof)
	}
	d.badge(gx+0.008, zg+0.14, 0.03)

	for _, lx := range []float64{b.X[0] - 0.018, b.X[last] + 0.018} {
		d.sc.Add(&scene.Face{
			Pts: geom.Quad(
				vec(lx, -0.14, zg+0.04), vec(lx, 0.14, zg+0.04),
				vec(lx, 0.14, zg+0.12), vec(lx, -0.14, zg+0.12)),
			Fill: theme.MustHex("#f5f5f5"), Edge: theme.MustHex("#555555"),
			EdgeWidth: 1, Alpha: 0.9, Z: scene.LayerDetail,
		})
	}

	fw := b.Half[last-1] * 0.92
	d.face(geom.Quad(
		vec(b.X[last]+0.01, -fw, zg), vec(b.X[last]+0.01, fw, zg),
		vec(b.X[last]+0.01, fw, zg+0.04), vec(b.X[last]+0.01, -fw, zg+0.04)),
		theme.MustHex("#1a2530"), 1, 0.9, scene.LayerDetail)
	rw := b.Half[1] * 0.88
	d.face(geom.Quad(
		vec(b.X[0]-0.01, -rw, zg), vec(b.X[0]-0.01, rw, zg),
		vec(b.X[0]-0.01, rw, zg+0.04), vec(b.X[0]-0.01, -rw, zg+0.04)),
		theme.MustHex("#1a2530"), 1, 0.9, scene.LayerDetail)

	for _, s := range []float64{-1, 1} {
		rx0, rx1 := -1.80, 2.10
		rw0, rw1 := b.HalfAt(rx0), b.HalfAt(rx1)
		d.face(geom.Quad(
			vec(rx0, s*rw0, zg), vec(rx1, s*rw1, zg),
			vec(rx1, s*rw1, zg+0.04), vec(rx0, s*rw0, zg+0.04)),
			theme.MustHex("#1a2530"), 0.8, 0.9, scene.LayerDetail)
	}
}

// badge draws the round brand badge on the grille.
func (d *Sedan) badge(x, z, r float64) {
	pts := make([]r3.Vec, 0, 16)
	for i := 0; i < 16; i++ {
		t := 2 * math.Pi * float64(i) / 16
		pts = append(pts, vec(x, r*math.Cos(t), z+r*math.Sin(t)))
	}
	d.sc.Add(&scene.Face{
		Pts: pts, Fill: theme.MustHex("#b0bec5"), Edge: theme.MustHex("#78909c"),
		EdgeWidth: 1, Alpha: 0.9, Z: scene.LayerChrome,
	})
}

func (d *Sedan) sportWheels() {
	const (
		tireR  = 0.18
		rimR   = 0.12
		discR  = 0.08
		squash = 0.35
	)
	for _, wp := range []struct{ x, y float64 }{
		{1.60, -0.84}, {1.60, 0.84}, {-1.50, -0.84}, {-1.50, 0.84},
	} {
		center := vec(wp.x, wp.y, d.Ground+0.01)
		d.sc.Add(&scene.Face{
			Pts:  geom.DiscXZ(center, tireR, squash, 36),
			Fill: theme.MustHex("#1a1a1a"), Edge: theme.MustHex("#0a0a0a"),
			EdgeWidth: 1, Alpha: 0.92, Z: scene.LayerDetail,
		})
		d.sc.Add(&scene.Face{
			Pts:  geom.DiscXZ(center, rimR, squash, 36),
			Fill: theme.MustHex("#cfd8dc"), Edge: theme.MustHex("#90a4ae"),
			EdgeWidth: 1, Alpha: 0.88, Z: scene.LayerRoof,
		})
		d.sc.Add(&scene.Face{
			Pts:  geom.DiscXZ(center, discR, squash, 36),
			Fill: theme.MustHex("#78909c"), Edge: theme.MustHex("#546e7a"),
			EdgeWidth: 1, Alpha: 0.7, Z: scene.LayerChrome,
		})
		d.spokes(center, discR, rimR, squash, theme.MustHex("#cfd8dc"), 2)
		d.line(geom.ArcXZ(center, tireR+0.03, squash, -0.4, math.Pi+0.4, 40),
			theme.MustHex("#1a2530"), 3.5, 1, scene.LayerDetail)
		lip := d.Paint.SideL
		if wp.y > 0 {
			lip = d.Paint.SideR
		}
		d.line(geom.ArcXZ(center, tireR+0.04, squash, -0.4, math.Pi+0.4, 40),
			lip, 2, 1, scene.LayerDetail)
	}
}

// spokes draws the five spoke pattern between disc and rim.
func (d *Sedan) spokes(center r3.Vec, inner, outer, squash float64, col color.NRGBA, lw float64) {
	for i := 0; i < 5; i++ {
		a := 2 * math.Pi * float64(i) / 5
		d.line([]r3.Vec{
			vec(center.X+inner*math.Cos(a), center.Y, center.Z+inner*squash*math.Sin(a)),
			vec(center.X+outer*math.Cos(a), center.Y, center.Z+outer*squash*math.Sin(a)),
		}, col, lw, 1, scene.LayerChrome)
	}
}

// sharkFin plants the antenna fin on the rear roof at cabin station i.
func (d *Sedan) sharkFin(i int, col color.NRGBA) {
	fx := d.Cabin.X[i]
	base := d.Cabin.TopAt(fx) + 0.008
	top := base + 0.06
	d.face(geom.Quad(
		vec(fx-0.04, 0, base), vec(fx+0.04, 0, base),
		vec(fx+0.01, 0, top), vec(fx-0.01, 0, top)),
		col, 1, 0.9, scene.LayerAccessory)
}

// wipers lays two blades on the windshield cowl.
func (d *Sedan) wipers(backoff, spread, sweep float64, col color.NRGBA, lw float64) {
	last := len(d.Cabin.X) - 1
	wx := d.Cabin.X[last] - backoff
	wz := d.Body.TopAt(wx) + 0.005
	for _, s := range []float64{-spread, spread} {
		d.line([]r3.Vec{vec(wx, s, wz), vec(wx+0.35, s*sweep, wz)},
			col, lw, 1, scene.LayerChrome)
	}
}

// exhaust adds the twin tailpipes under the rear bumper.
func (d *Sedan) exhaust(r float64, capped bool) {
	ex := d.Body.X[0] - 0.04
	for _, s := range []float64{-0.30, 0.30} {
		for _, q := range geom.CylinderSide(ex, s, r, d.Ground-0.01, d.Ground+0.02, 10) {
			d.sc.Add(&scene.Face{
				Pts: q, Fill: theme.MustHex("#78909c"), Edge: theme.MustHex("#546e7a"),
				EdgeWidth: 0.8, Alpha: 0.8, Z: scene.LayerDetail,
			})
		}
		if capped {
			d.sc.Add(&scene.Face{
				Pts:  geom.Circle(vec(ex, s, d.Ground+0.02), r, 10),
				Fill: theme.MustHex("#37474f"), Edge: theme.MustHex("#546e7a"),
				EdgeWidth: 0.8, Alpha: 0.8, Z: scene.LayerDetail,
			})
		}
	}
}
