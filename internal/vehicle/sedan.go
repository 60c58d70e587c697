package vehicle

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/posterforge/nvisposter/internal/geom"
	"github.com/posterforge/nvisposter/internal/scene"
)

// Sedan is a lofted sedan assembled from a body and a cabin profile.
// The shared builders cover the shell and greenhouse; style specific
// trim is added by the style constructors.
type Sedan struct {
	Ground float64
	Body   Profile
	Cabin  Profile
	Paint  Paint

	sc *scene.Scene
}

func (d *Sedan) face(pts []r3.Vec, fill color.NRGBA, lw, alpha float64, layer int) {
	d.sc.Add(&scene.Face{
		Pts: pts, Fill: fill, Edge: d.Paint.Edge,
		EdgeWidth: lw, Alpha: alpha, Z: layer,
	})
}

func (d *Sedan) line(pts []r3.Vec, col color.NRGBA, lw, alpha float64, layer int) {
	d.sc.Add(&scene.Stroke{Pts: pts, Color: col, Width: lw, Alpha: alpha, Z: layer})
}

// shell lofts the lower body shell between stations plus the front and
// rear faces.
func (d *Sedan) shell() {
	b := d.Body
	zg := d.Ground
	for i := 0; i < len(b.X)-1; i++ {
		x0, x1 := b.X[i], b.X[i+1]
		w0, w1 := b.Half[i], b.Half[i+1]
		zt0, zt1 := b.Top[i], b.Top[i+1]
		d.face(geom.Quad(
			vec(x0, -w0, zg), vec(x1, -w1, zg), vec(x1, -w1, zt1), vec(x0, -w0, zt0)),
			d.Paint.SideL, 1, 0.92, scene.LayerBody)
		d.face(geom.Quad(
			vec(x0, w0, zg), vec(x1, w1, zg), vec(x1, w1, zt1), vec(x0, w0, zt0)),
			d.Paint.SideR, 1, 0.92, scene.LayerBody)
		d.face(geom.Quad(
			vec(x0, -w0, zt0), vec(x1, -w1, zt1), vec(x1, w1, zt1), vec(x0, w0, zt0)),
			d.Paint.Top, 1, 0.92, scene.LayerBody)
		d.face(geom.Quad(
			vec(x0, -w0, zg), vec(x1, -w1, zg), vec(x1, w1, zg), vec(x0, w0, zg)),
			d.Paint.Bottom, 1, 0.92, scene.LayerUnderbody)
	}
	last := len(b.X) - 1
	d.face(geom.Quad(
		vec(b.X[last], -b.Half[last], zg), vec(b.X[last], b.Half[last], zg),
		vec(b.X[last], b.Half[last], b.Top[last]), vec(b.X[last], -b.Half[last], b.Top[last])),
		d.Paint.Front, 1, 0.92, scene.LayerBody)
	d.face(geom.Quad(
		vec(b.X[0], -b.Half[0], zg), vec(b.X[0], b.Half[0], zg),
		vec(b.X[0], b.Half[0], b.Top[0]), vec(b.X[0], -b.Half[0], b.Top[0])),
		d.Paint.Rear, 1, 0.92, scene.LayerBody)
}

// greenhouse lofts the side glass between the beltline and the
// roofline, with the roof panels on top.
func (d *Sedan) greenhouse(glassLW, roofLW float64) {
	c := d.Cabin
	for i := 0; i < len(c.X)-1; i++ {
		x0, x1 := c.X[i], c.X[i+1]
		w0, w1 := c.Half[i], c.Half[i+1]
		zb0, zb1 := d.Body.TopAt(x0), d.Body.TopAt(x1)
		zt0, zt1 := c.Top[i], c.Top[i+1]
		for _, s := range []float64{-1, 1} {
			d.face(geom.Quad(
				vec(x0, s*w0, zb0), vec(x1, s*w1, zb1),
				vec(x1, s*w1, zt1), vec(x0, s*w0, zt0)),
				d.Paint.Glass, glassLW, d.Paint.GlassA, scene.LayerDetail)
		}
		d.face(geom.Quad(
			vec(x0, -w0, zt0), vec(x1, -w1, zt1),
			vec(x1, w1, zt1), vec(x0, w0, zt0)),
			d.Paint.Roof, roofLW, 0.95, scene.LayerRoof)
	}
}

// endGlass adds the windshield or the rear glass. rake leans the top
// edge towards the cabin and narrow pulls it in; both zero gives a
// flat pane.
func (d *Sedan) endGlass(front bool, rake, narrow, alpha float64) {
	c := d.Cabin
	i := 0
	lean := rake
	if front {
		i = len(c.X) - 1
		lean = -rake
	}
	x, w := c.X[i], c.Half[i]
	zb := d.Body.TopAt(x)
	zt := c.Top[i]
	if narrow == 0 {
		narrow = 1
	}
	d.face(geom.Quad(
		vec(x, -w, zb), vec(x, w, zb),
		vec(x+lean, w*narrow, zt), vec(x+lean, -w*narrow, zt)),
		d.Paint.Glass, 2, alpha, scene.LayerDetail)
}

// pillars draws the A, B and C pillar pairs at the given cabin
// stations.
func (d *Sedan) pillars(halfW float64, stations ...int) {
	for _, i := range stations {
		x, w := d.Cabin.X[i], d.Cabin.Half[i]
		zb := d.Body.TopAt(x)
		zt := d.Cabin.TopAt(x)
		for _, s := range []float64{-1, 1} {
			d.face(geom.Quad(
				vec(x-halfW, s*w, zb), vec(x+halfW, s*w, zb),
				vec(x+halfW, s*w, zt), vec(x-halfW, s*w, zt)),
				d.Paint.Pillar, 1.5, 0.92, scene.LayerRoof)
		}
	}
}

// doorLines cuts the door gaps into both sides.
func (d *Sedan) doorLines(xs []float64, offset, lift float64, col color.NRGBA, lw float64) {
	for _, x := range xs {
		w := d.Body.HalfAt(x)
		zb := d.Ground + lift
		zt := d.Body.TopAt(x) - 0.02
		for _, s := range []float64{-1, 1} {
			d.line([]r3.Vec{
				vec(x, s*(w+offset), zb), vec(x, s*(w+offset), zt),
			}, col, lw, 1, scene.LayerDetail)
		}
	}
}

// handles adds a door handle pair per x position, drop below the
// beltline.
func (d *Sedan) handles(xs []float64, drop, offset float64, col color.NRGBA, lw float64) {
	for _, x := range xs {
		w := d.Body.HalfAt(x)
		z := d.Body.TopAt(x) - drop
		for _, s := range []float64{-1, 1} {
			y := s * (w + offset)
			d.line([]r3.Vec{vec(x-0.06, y, z), vec(x+0.06, y, z)},
				col, lw, 1, scene.LayerRoof)
		}
	}
}

// roofRails traces the roof edges.
func (d *Sedan) roofRails(inset, lift float64, col color.NRGBA, lw float64, n int) {
	c := d.Cabin
	for _, s := range []float64{-1, 1} {
		pts := make([]r3.Vec, 0, n)
		for _, x := range geom.Linspace(c.X[0]+inset, c.X[len(c.X)-1]-inset, n) {
			pts = append(pts, vec(x, s*c.HalfAt(x), c.TopAt(x)+lift))
		}
		d.line(pts, col, lw, 1, scene.LayerChrome)
	}
}

// build finalizes the model.
func (d *Sedan) build() Model {
	return Model{
		Scene:  d.sc,
		Ground: d.Ground,
		RoofZ:  d.Cabin.TopAt(0),
		Body:   d.Body,
		Cabin:  d.Cabin,
	}
}

func vec(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }
