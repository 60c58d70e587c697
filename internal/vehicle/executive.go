package vehicle

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/posterforge/nvisposter/internal/geom"
	"github.com/posterforge/nvisposter/internal/scene"
	"github.com/posterforge/nvisposter/internal/theme"
)

// newExecutiveSedan builds the full-size dark blue sedan. It carries
// the richest trim of the three styles: a chrome character line, side
// skirts, window surrounds, projector headlights with fog lamps, rear
// headrests visible through the glass and a soft ground shadow.
func newExecutiveSedan() *Sedan {
	const zg = -0.15
	d := &Sedan{
		Ground: zg,
		Body: Profile{
			X: []float64{-2.30, -2.18, -2.05, -1.90, -1.72, -1.50, -1.28, -1.05,
				-0.80, -0.55, -0.30, -0.05, 0.20, 0.45, 0.70, 0.95,
				1.20, 1.45, 1.70, 1.90, 2.08, 2.22, 2.35, 2.45},
			Half: []float64{0.42, 0.62, 0.76, 0.84, 0.89, 0.92, 0.93, 0.93,
				0.93, 0.93, 0.93, 0.93, 0.93, 0.93, 0.93, 0.92,
				0.90, 0.86, 0.80, 0.72, 0.62, 0.52, 0.40, 0.28},
			Top: rel(zg, 0.28, 0.36, 0.42, 0.46, 0.47, 0.48, 0.48, 0.48,
				0.48, 0.48, 0.48, 0.48, 0.48, 0.48, 0.48, 0.48,
				0.47, 0.46, 0.44, 0.42, 0.38, 0.34, 0.28, 0.22),
		},
		Cabin: Profile{
			X:    []float64{-1.50, -1.20, -0.85, -0.45, 0.00, 0.40, 0.75, 1.05, 1.25, 1.40},
			Half: []float64{0.78, 0.84, 0.88, 0.90, 0.90, 0.90, 0.88, 0.85, 0.80, 0.72},
			Top: rel(zg, 0.48, 0.72, 0.83, 0.87, 0.88,
				0.88, 0.86, 0.82, 0.76, 0.68),
		},
		Paint: Paint{
			SideL:     theme.MustHex("#2c4a7c"),
			SideR:     theme.MustHex("#1a3058"),
			Top:       theme.MustHex("#3a5e96"),
			Bottom:    theme.MustHex("#0e1a30"),
			Front:     theme.MustHex("#2a4570"),
			Rear:      theme.MustHex("#1e3460"),
			Highlight: theme.MustHex("#4a72a8"),
			Glass:     theme.MustHex("#5bc0de"),
			GlassA:    0.28,
			Roof:      theme.MustHex("#3a5e96"),
			Pillar:    theme.MustHex("#0e1a30"),
			Trim:      theme.MustHex("#b0bec5"),
			Edge:      theme.MustHex("#1a2530"),
		},
		sc: &scene.Scene{},
	}
	d.groundShadow(2.20, 0.85)
	d.shell()
	d.characterLine()
	d.sideSkirts()
	d.greenhouse(1.2, 0.8)
	d.windowTrim()
	d.endGlass(true, 0.20, 0.92, 0.30)
	d.endGlass(false, 0.12, 0.92, 0.30)
	d.headrests()
	d.pillars(0.065, 9, 4, 1)
	d.doorLines([]float64{-0.50, 0.25, 0.95}, 0.006, 0.04, d.Paint.Pillar, 2)
	d.handles([]float64{-0.85, -0.10, 0.60, 1.15}, 0.06, 0.008, d.Paint.Trim, 3)
	d.mirrors(0.05, 0.15, 0.04, 0.035, 0.028, d.Paint.Pillar)
	d.execLights()
	d.execNose()
	d.execWheels()
	d.sharkFin(2, theme.MustHex("#1a3058"))
	d.wipers(0.10, 0.28, 0.65, theme.MustHex("#111111"), 1.8)
	d.exhaust(0.024, true)
	return d
}

// groundShadow pools a soft dark ellipse under the car.
func (d *Sedan) groundShadow(rx, ry float64) {
	d.sc.Add(&scene.Face{
		Pts:  geom.Ellipse(vec(0, 0, d.Ground-0.008), rx, ry, 60),
		Fill: theme.MustHex("#050810"), Alpha: 0.55, Z: scene.LayerShadow,
	})
}

// characterLine runs a chrome crease just below the beltline.
func (d *Sedan) characterLine() {
	b := d.Body
	xs := geom.Linspace(b.X[2], b.X[len(b.X)-3], 60)
	for _, s := range []float64{-1, 1} {
		pts := make([]r3.Vec, len(xs))
		for i, x := range xs {
			pts[i] = vec(x, s*(b.HalfAt(x)+0.003), b.TopAt(x)-0.04)
		}
		d.line(pts, d.Paint.Highlight, 2, 0.7, scene.LayerDetail)
	}
}

func (d *Sedan) sideSkirts() {
	b := d.Body
	xs := geom.Linspace(-1.40, 1.40, 40)
	for _, s := range []float64{-1, 1} {
		pts := make([]r3.Vec, len(xs))
		for i, x := range xs {
			pts[i] = vec(x, s*(b.HalfAt(x)+0.004), d.Ground+0.02)
		}
		d.line(pts, theme.MustHex("#1a2a40"), 3.5, 0.85, scene.LayerDetail)
	}
}

// windowTrim traces chrome strips along the beltline and the roofline
// of the glasshouse.
func (d *Sedan) windowTrim() {
	cb := d.Cabin
	for _, s := range []float64{-1, 1} {
		belt := make([]r3.Vec, len(cb.X))
		roof := make([]r3.Vec, len(cb.X))
		for j, x := range cb.X {
			belt[j] = vec(x, s*cb.Half[j], d.Body.TopAt(x))
			roof[j] = vec(x, s*cb.Half[j], cb.Top[j])
		}
		d.line(belt, d.Paint.Trim, 2, 0.6, scene.LayerChrome)
		d.line(roof, d.Paint.Trim, 1.5, 0.5, scene.LayerChrome)
	}
}

// headrests puts four boxes behind the glass, barely visible through
// the tint.
func (d *Sedan) headrests() {
	cols := [6]struct{ hex string }{
		{"#1a1a1a"}, {"#222222"}, {"#2a2a2a"}, {"#1a1a1a"}, {"#151515"}, {"#222222"},
	}
	for _, hp := range []struct{ x, y float64 }{
		{0.30, -0.28}, {0.30, 0.28}, {-0.40, -0.28}, {-0.40, 0.28},
	} {
		base := d.Body.TopAt(hp.x) + 0.10
		faces := geom.Box(vec(hp.x, hp.y, base+0.04), 0.04, 0.03, 0.04)
		for i, f := range faces {
			d.sc.Add(&scene.Face{
				Pts: f, Fill: theme.MustHex(cols[i].hex), Edge: theme.MustHex("#111111"),
				EdgeWidth: 0.5, Alpha: 0.35, Z: scene.LayerDetail,
			})
		}
	}
}

func (d *Sedan) execLights() {
	b := d.Body
	last := len(b.X) - 1
	zg := d.Ground
	hw := b.Half[last-2]
	for _, s := range []float64{-1, 1} {
		hx := b.X[last] + 0.015
		d.sc.Add(&scene.Face{
			Pts: geom.Quad(
				vec(hx, s*0.06, zg+0.18), vec(hx, s*hw*0.80, zg+0.18),
				vec(hx, s*hw*0.75, zg+0.30), vec(hx, s*0.06, zg+0.30)),
			Fill: theme.MustHex("#fff9c4"), Edge: theme.MustHex("#fdd835"),
			EdgeWidth: 1.2, Alpha: 0.85, Z: scene.LayerDetail,
		})
		d.sc.Add(&scene.Face{
			Pts: geom.Quad(
				vec(hx, s*0.10, zg+0.06), vec(hx, s*hw*0.60, zg+0.06),
				vec(hx, s*hw*0.60, zg+0.12), vec(hx, s*0.10, zg+0.12)),
			Fill: theme.MustHex("#e0e0e0"), Edge: theme.MustHex("#bdbdbd"),
			EdgeWidth: 1, Alpha: 0.75, Z: scene.LayerDetail,
		})
		d.line([]r3.Vec{
			vec(hx+0.005, s*0.06, zg+0.31), vec(hx+0.005, s*hw*0.78, zg+0.31),
		}, theme.MustHex("#bbdefb"), 2, 0.6, scene.LayerRoof)

		tx := b.X[0] - 0.015
		tw := b.Half[2]
		d.sc.Add(&scene.Face{
			Pts: geom.Quad(
				vec(tx, s*0.10, zg+0.16), vec(tx, s*tw*0.82, zg+0.16),
				vec(tx, s*tw*0.82, zg+0.28), vec(tx, s*0.10, zg+0.28)),
			Fill: theme.MustHex("#d32f2f"), Edge: theme.MustHex("#b71c1c"),
			EdgeWidth: 1.2, Alpha: 0.85, Z: scene.LayerDetail,
		})
		d.line([]r3.Vec{
			vec(tx-0.005, s*0.12, zg+0.22), vec(tx-0.005, s*tw*0.78, zg+0.22),
		}, theme.MustHex("#ff8a80"), 2.5, 0.7, scene.LayerRoof)
	}
	// Light bar bridging the two taillights across the trunk.
	tx := b.X[0] - 0.015
	d.sc.Add(&scene.Face{
		Pts: geom.Quad(
			vec(tx, -0.10, zg+0.24), vec(tx, 0.10, zg+0.24),
			vec(tx, 0.10, zg+0.27), vec(tx, -0.10, zg+0.27)),
		Fill: theme.MustHex("#d32f2f"), Edge: theme.MustHex("#b71c1c"),
		EdgeWidth: 0.8, Alpha: 0.6, Z: scene.LayerDetail,
	})
	d.line([]r3.Vec{
		vec(b.X[2], -b.Half[2]*0.85, b.Top[2]+0.005),
		vec(b.X[2], b.Half[2]*0.85, b.Top[2]+0.005),
	}, d.Paint.Highlight, 3, 0.7, scene.LayerRoof)
}

// execNose adds the tall split grille with chrome surround, the badge,
// plates, body color bumpers and the fuel door.
func (d *Sedan) execNose() {
	b := d.Body
	last := len(b.X) - 1
	zg := d.Ground
	gx := b.X[last] + 0.02
	gw := b.Half[last-1] * 0.82

	d.face(geom.Quad(
		vec(gx, -gw, zg+0.16), vec(gx, gw, zg+0.16),
		vec(gx, gw, zg+0.30), vec(gx, -gw, zg+0.30)),
		theme.MustHex("#111820"), 1, 0.92, scene.LayerDetail)
	for _, z := range []float64{zg + 0.16, zg + 0.30} {
		d.line([]r3.Vec{
			vec(gx+0.004, -gw*0.95, z), vec(gx+0.004, gw*0.95, z),
		}, d.Paint.Trim, 2, 1, scene.LayerRoof)
	}
	for _, z := range geom.Linspace(zg+0.18, zg+0.28, 4) {
		for _, seg := range [][2]float64{{-gw * 0.88, -0.02}, {0.02, gw * 0.88}} {
			d.line([]r3.Vec{
				vec(gx+0.003, seg[0], z), vec(gx+0.003, seg[1], z),
			}, theme.MustHex("#37474f"), 1.5, 1, scene.LayerRoof)
		}
	}
	d.face(geom.Quad(
		vec(gx, -gw*0.90, zg+0.02), vec(gx, gw*0.90, zg+0.02),
		vec(gx, gw*0.90, zg+0.12), vec(gx, -gw*0.90, zg+0.12)),
		theme.MustHex("#0a0f15"), 1, 0.92, scene.LayerDetail)
	d.badge(gx+0.01, zg+0.23, 0.04)

	for _, lx := range []float64{b.X[0] - 0.018, b.X[last] + 0.018} {
		d.sc.Add(&scene.Face{
			Pts: geom.Quad(
				vec(lx, -0.15, zg+0.04), vec(lx, 0.15, zg+0.04),
				vec(lx, 0.15, zg+0.12), vec(lx, -0.15, zg+0.12)),
			Fill: theme.MustHex("#f5f5f5"), Edge: theme.MustHex("#555555"),
			EdgeWidth: 1, Alpha: 0.9, Z: scene.LayerDetail,
		})
	}

	fw := b.Half[last-2] * 0.88
	d.face(geom.Quad(
		vec(b.X[last]+0.01, -fw, zg), vec(b.X[last]+0.01, fw, zg),
		vec(b.X[last]+0.01, fw, zg+0.04), vec(b.X[last]+0.01, -fw, zg+0.04)),
		d.Paint.Front, 1, 0.92, scene.LayerDetail)
	rw := b.Half[2] * 0.88
	d.face(geom.Quad(
		vec(b.X[0]-0.01, -rw, zg), vec(b.X[0]-0.01, rw, zg),
		vec(b.X[0]-0.01, rw, zg+0.04), vec(b.X[0]-0.01, -rw, zg+0.04)),
		d.Paint.Rear, 1, 0.92, scene.LayerDetail)

	// Fuel door on the rear right quarter.
	fx := -0.90
	fy := b.HalfAt(fx) + 0.006
	fz := b.TopAt(fx) - 0.10
	d.sc.Add(&scene.Face{
		Pts: geom.Quad(
			vec(fx-0.04, fy, fz-0.04), vec(fx+0.04, fy, fz-0.04),
			vec(fx+0.04, fy, fz+0.04), vec(fx-0.04, fy, fz+0.04)),
		Fill: d.Paint.Highlight, Edge: theme.MustHex("#4a72a8"),
		EdgeWidth: 1, Alpha: 0.7, Z: scene.LayerDetail,
	})
}

func (d *Sedan) execWheels() {
	const (
		tireR  = 0.19
		rimR   = 0.13
		discR  = 0.08
		capR   = 0.035
		squash = 0.38
	)
	for _, wp := range []struct{ x, y float64 }{
		{1.55, -0.93}, {1.55, 0.93}, {-1.48, -0.93}, {-1.48, 0.93},
	} {
		center := vec(wp.x, wp.y, d.Ground+0.02)
		d.sc.Add(&scene.Face{
			Pts:  geom.DiscXZ(center, tireR, squash, 40),
			Fill: theme.MustHex("#151515"), Edge: theme.MustHex("#0a0a0a"),
			EdgeWidth: 1, Alpha: 0.92, Z: scene.LayerDetail,
		})
		d.sc.Add(&scene.Face{
			Pts:  geom.DiscXZ(center, rimR, squash, 40),
			Fill: theme.MustHex("#d0d8dc"), Edge: theme.MustHex("#a0a8ae"),
			EdgeWidth: 1, Alpha: 0.88, Z: scene.LayerRoof,
		})
		d.sc.Add(&scene.Face{
			Pts:  geom.DiscXZ(center, discR, squash, 40),
			Fill: theme.MustHex("#78909c"), Edge: theme.MustHex("#546e7a"),
			EdgeWidth: 1, Alpha: 0.7, Z: scene.LayerChrome,
		})
		d.sc.Add(&scene.Face{
			Pts:  geom.DiscXZ(center, capR, squash, 40),
			Fill: theme.MustHex("#888888"), Edge: theme.MustHex("#666666"),
			EdgeWidth: 1, Alpha: 0.85, Z: scene.LayerAccessory,
		})
		d.spokes(center, discR, rimR, squash, theme.MustHex("#d0d8dc"), 2.2)
		arch := d.Paint.SideL
		if wp.y > 0 {
			arch = d.Paint.SideR
		}
		d.line(geom.ArcXZ(center, tireR+0.03, squash, -0.4, math.Pi+0.4, 45),
			arch, 3.5, 1, scene.LayerDetail)
	}
}
