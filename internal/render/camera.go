// Package render projects scene items through an orthographic camera
// and rasterizes them onto a canvas. The camera model matches the
// poster designs: a view described by elevation and azimuth angles
// over a bounded, aspect-scaled world box.
package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds is the world box shown by a camera.
type Bounds struct {
	X0, X1 float64
	Y0, Y1 float64
	Z0, Z1 float64
}

// Camera is an orthographic view onto a world box. Elev and Azim are
// in degrees: Elev raises the eye above the XY plane, Azim swings it
// around Z from the +X axis toward +Y. Aspect stretches the normalized
// box per axis before projection.
type Camera struct {
	Elev   float64
	Azim   float64
	Limits Bounds
	Aspect r3.Vec
}

// basis returns the screen-right, screen-up and forward unit vectors.
// Forward points from the scene toward the eye, so larger depth means
// closer to the viewer.
func (c Camera) basis() (right, up, fwd r3.Vec) {
	a := c.Azim * math.Pi / 180
	e := c.Elev * math.Pi / 180
	sa, ca := math.Sincos(a)
	se, ce := math.Sincos(e)
	right = r3.Vec{X: -sa, Y: ca}
	up = r3.Vec{X: -se * ca, Y: -se * sa, Z: ce}
	fwd = r3.Vec{X: ce * ca, Y: ce * sa, Z: se}
	return right, up, fwd
}

// normalize maps a world point into the centered aspect box, with each
// axis of Limits spanning [-aspect/2, +aspect/2].
func (c Camera) normalize(p r3.Vec) r3.Vec {
	nx := ((p.X-c.Limits.X0)/(c.Limits.X1-c.Limits.X0) - 0.5) * c.Aspect.X
	ny := ((p.Y-c.Limits.Y0)/(c.Limits.Y1-c.Limits.Y0) - 0.5) * c.Aspect.Y
	nz := ((p.Z-c.Limits.Z0)/(c.Limits.Z1-c.Limits.Z0) - 0.5) * c.Aspect.Z
	return r3.Vec{X: nx, Y: ny, Z: nz}
}

// Project returns view-plane coordinates and depth for a world point.
// u grows to the right, v upward, both in aspect units.
func (c Camera) Project(p r3.Vec) (u, v, depth float64) {
	right, up, fwd := c.basis()
	q := c.normalize(p)
	return r3.Dot(q, right), r3.Dot(q, up), r3.Dot(q, fwd)
}

// Rect is a pixel rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Projector binds a camera to a pixel viewport. The projected world
// box is fitted into the viewport with a uniform scale and centered.
type Projector struct {
	cam        Camera
	scale      float64
	cx, cy     float64 // viewport center in pixels
	umid, vmid float64 // projected box center in view units
}

// NewProjector fits cam's world box into the viewport vp.
func NewProjector(cam Camera, vp Rect) *Projector {
	uMin, vMin := math.Inf(1), math.Inf(1)
	uMax, vMax := math.Inf(-1), math.Inf(-1)
	for _, x := range []float64{cam.Limits.X0, cam.Limits.X1} {
		for _, y := range []float64{cam.Limits.Y0, cam.Limits.Y1} {
			for _, z := range []float64{cam.Limits.Z0, cam.Limits.Z1} {
				u, v, _ := cam.Project(r3.Vec{X: x, Y: y, Z: z})
				uMin = math.Min(uMin, u)
				uMax = math.Max(uMax, u)
				vMin = math.Min(vMin, v)
				vMax = math.Max(vMax, v)
			}
		}
	}
	scale := math.Min(vp.W/(uMax-uMin), vp.H/(vMax-vMin))
	return &Projector{
		cam:   cam,
		scale: scale,
		cx:    vp.X + vp.W/2,
		cy:    vp.Y + vp.H/2,
		umid:  (uMin + uMax) / 2,
		vmid:  (vMin + vMax) / 2,
	}
}

// Point projects a world point to pixel coordinates.
func (pr *Projector) Point(p r3.Vec) (x, y float64) {
	u, v, _ := pr.cam.Project(p)
	return pr.cx + (u-pr.umid)*pr.scale, pr.cy - (v-pr.vmid)*pr.scale
}

// Depth returns the camera depth of a world point. Larger values are
// closer to the viewer.
func (pr *Projector) Depth(p r3.Vec) float64 {
	_, _, d := pr.cam.Project(p)
	return d
}
