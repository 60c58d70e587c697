// Package geom builds the point sets and face sets that poster scenes
// are assembled from. All helpers are pure: they return world
// coordinates and leave styling and paint order to the scene layer.
//
// Conventions: vehicles face +X, the ground is the XY plane and Z is
// up. Loop gaps sit on the +Y side so the capacitor hardware lands at
// the top of the loop in the rendered view.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Linspace returns n values evenly spaced over [a, b] inclusive.
// n must be at least 2.
func Linspace(a, b float64, n int) []float64 {
	vs := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range vs {
		vs[i] = a + float64(i)*step
	}
	vs[n-1] = b
	return vs
}

// Interp linearly interpolates y at x over the sample points (xs, ys).
// xs must be ascending and the same length as ys. Outside the sampled
// range the nearest end value is returned.
func Interp(x float64, xs, ys []float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[len(xs)-1] {
		return ys[len(ys)-1]
	}
	for i := 1; i < len(xs); i++ {
		if x <= xs[i] {
			t := (x - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + t*(ys[i]-ys[i-1])
		}
	}
	return ys[len(ys)-1]
}

// Arc returns n points on a circular arc of radius r around center,
// in the horizontal plane at center.Z, from angle a0 to a1 (radians,
// counterclockwise from +X).
func Arc(center r3.Vec, r, a0, a1 float64, n int) []r3.Vec {
	pts := make([]r3.Vec, n)
	for i, th := range Linspace(a0, a1, n) {
		pts[i] = r3.Vec{
			X: center.X + r*math.Cos(th),
			Y: center.Y + r*math.Sin(th),
			Z: center.Z,
		}
	}
	return pts
}

// Circle returns a closed circle of radius r around center in the
// horizontal plane.
func Circle(center r3.Vec, r float64, n int) []r3.Vec {
	return Arc(center, r, 0, 2*math.Pi, n)
}

// GapLoop returns an almost closed circle with a gap of 2*gapAngle
// centered on the +Y side, where the tuning capacitor bridges the
// conductor ends.
func GapLoop(center r3.Vec, r, gapAngle float64, n int) []r3.Vec {
	return Arc(center, r, math.Pi/2+gapAngle, math.Pi/2+2*math.Pi-gapAngle, n)
}

// GapAngle converts a gap chord length to the half-angle subtended at
// the loop center.
func GapAngle(r, chord float64) float64 {
	return math.Asin(chord / 2 / r)
}

// Ellipse returns a closed ellipse with radii rx, ry around center in
// the horizontal plane.
func Ellipse(center r3.Vec, rx, ry float64, n int) []r3.Vec {
	pts := make([]r3.Vec, n)
	for i, th := range Linspace(0, 2*math.Pi, n) {
		pts[i] = r3.Vec{
			X: center.X + rx*math.Cos(th),
			Y: center.Y + ry*math.Sin(th),
			Z: center.Z,
		}
	}
	return pts
}

// DiscXZ returns a disc in the vertical XZ plane at y=center.Y, with
// the X radius squashed by squash. Wheels and rims are drawn with it.
func DiscXZ(center r3.Vec, r, squash float64, n int) []r3.Vec {
	pts := make([]r3.Vec, n)
	for i, th := range Linspace(0, 2*math.Pi, n) {
		pts[i] = r3.Vec{
			X: center.X + r*math.Cos(th)*squash,
			Y: center.Y,
			Z: center.Z + r*math.Sin(th),
		}
	}
	return pts
}

// ArcXZ returns an open arc in the vertical XZ plane, used for wheel
// arches.
func ArcXZ(center r3.Vec, r, squash, a0, a1 float64, n int) []r3.Vec {
	pts := make([]r3.Vec, n)
	for i, th := range Linspace(a0, a1, n) {
		pts[i] = r3.Vec{
			X: center.X + r*math.Cos(th)*squash,
			Y: center.Y,
			Z: center.Z + r*math.Sin(th),
		}
	}
	return pts
}

// RoundedRectLoop returns an almost closed loop shaped as an lx by ly
// rectangle with corners rounded to radius rc, in the horizontal plane
// at center.Z. The gap, gap wide, is centered on the +Y straight. Each
// corner is a quarter arc of nCorner points.
func RoundedRectLoop(center r3.Vec, lx, ly, rc, gap float64, nCorner int) []r3.Vec {
	hx := lx/2 - rc
	hy := ly/2 - rc
	var pts []r3.Vec
	line := func(x0, y0, x1, y1 float64, n int) {
		txs := Linspace(x0, x1, n)
		tys := Linspace(y0, y1, n)
		for i := range txs {
			pts = append(pts, r3.Vec{X: center.X + txs[i], Y: center.Y + tys[i], Z: center.Z})
		}
	}
	corner := func(cx, cy, a0, a1 float64) {
		for _, th := range Linspace(a0, a1, nCorner) {
			pts = append(pts, r3.Vec{
				X: center.X + cx + rc*math.Cos(th),
				Y: center.Y + cy + rc*math.Sin(th),
				Z: center.Z,
			})
		}
	}
	// clockwise from the right edge of the gap
	line(gap/2, ly/2, hx, ly/2, 8)
	corner(hx, hy, math.Pi/2, 0)
	line(lx/2, hy, lx/2, -hy, 8)
	corner(hx, -hy, 0, -math.Pi/2)
	line(hx, -ly/2, -hx, -ly/2, 8)
	corner(-hx, -hy, -math.Pi/2, -math.Pi)
	line(-lx/2, -hy, -lx/2, hy, 8)
	corner(-hx, hy, math.Pi, math.Pi/2)
	line(-hx, ly/2, -gap/2, ly/2, 8)
	return pts
}

// Quad builds a quadrilateral face from four corners.
func Quad(a, b, c, d r3.Vec) []r3.Vec {
	return []r3.Vec{a, b, c, d}
}

// Box returns the six faces of an axis-aligned box around center with
// half extents hw (X), hd (Y), hh (Z), in the order bottom, top,
// front side (-Y), back side (+Y), left (-X), right (+X).
func Box(center r3.Vec, hw, hd, hh float64) [][]r3.Vec {
	cx, cy, cz := center.X, center.Y, center.Z
	return [][]r3.Vec{
		{
			{X: cx - hw, Y: cy - hd, Z: cz - hh}, {X: cx + hw, Y: cy - hd, Z: cz - hh},
			{X: cx + hw, Y: cy + hd, Z: cz - hh}, {X: cx - hw, Y: cy + hd, Z: cz - hh},
		},
		{
			{X: cx - hw, Y: cy - hd, Z: cz + hh}, {X: cx + hw, Y: cy - hd, Z: cz + hh},
			{X: cx + hw, Y: cy + hd, Z: cz + hh}, {X: cx - hw, Y: cy + hd, Z: cz + hh},
		},
		{
			{X: cx - hw, Y: cy - hd, Z: cz - hh}, {X: cx + hw, Y: cy - hd, Z: cz - hh},
			{X: cx + hw, Y: cy - hd, Z: cz + hh}, {X: cx - hw, Y: cy - hd, Z: cz + hh},
		},
		{
			{X: cx - hw, Y: cy + hd, Z: cz - hh}, {X: cx + hw, Y: cy + hd, Z: cz - hh},
			{X: cx + hw, Y: cy + hd, Z: cz + hh}, {X: cx - hw, Y: cy + hd, Z: cz + hh},
		},
		{
			{X: cx - hw, Y: cy - hd, Z: cz - hh}, {X: cx - hw, Y: cy + hd, Z: cz - hh},
			{X: cx - hw, Y: cy + hd, Z: cz + hh}, {X: cx - hw, Y: cy - hd, Z: cz + hh},
		},
		{
			{X: cx + hw, Y: cy - hd, Z: cz - hh}, {X: cx + hw, Y: cy + hd, Z: cz - hh},
			{X: cx + hw, Y: cy + hd, Z: cz + hh}, {X: cx + hw, Y: cy - hd, Z: cz + hh},
		},
	}
}

// CylinderSide returns the side wall of a vertical cylinder of radius
// r around (cx, cy), from z0 to z1, as n-1 quads.
func CylinderSide(cx, cy, r, z0, z1 float64, n int) [][]r3.Vec {
	ths := Linspace(0, 2*math.Pi, n)
	faces := make([][]r3.Vec, 0, n-1)
	for i := 0; i < n-1; i++ {
		x0, y0 := cx+r*math.Cos(ths[i]), cy+r*math.Sin(ths[i])
		x1, y1 := cx+r*math.Cos(ths[i+1]), cy+r*math.Sin(ths[i+1])
		faces = append(faces, []r3.Vec{
			{X: x0, Y: y0, Z: z0},
			{X: x1, Y: y1, Z: z0},
			{X: x1, Y: y1, Z: z1},
			{X: x0, Y: y0, Z: z1},
		})
	}
	return faces
}

// Toroid returns the visual outline of a ferrite toroid at center:
// a circle in a tilted plane, squashed by squash in X and Y.
func Toroid(center r3.Vec, r, squash float64, n int) []r3.Vec {
	pts := make([]r3.Vec, n)
	for i, th := range Linspace(0, 2*math.Pi, n) {
		pts[i] = r3.Vec{
			X: center.X + r*math.Cos(th)*squash,
			Y: center.Y + r*math.Cos(th)*squash,
			Z: center.Z + r*math.Sin(th),
		}
	}
	return pts
}

// Lerp returns a + t*(b-a) componentwise.
func Lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}
