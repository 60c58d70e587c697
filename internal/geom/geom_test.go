package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/posterforge/nvisposter/internal/geom"
)

func TestLinspace(t *testing.T) {
	t.Run("can space values over a range", func(t *testing.T) {
		vs := geom.Linspace(0, 1, 5)
		assert.Len(t, vs, 5)
		assert.Equal(t, 0.0, vs[0])
		assert.Equal(t, 1.0, vs[4])
		assert.InDelta(t, 0.25, vs[1], 1e-12)
	})
	t.Run("should include exact endpoints for fractional steps", func(t *testing.T) {
		vs := geom.Linspace(0, 2*math.Pi, 7)
		assert.Equal(t, 2*math.Pi, vs[6])
	})
}

func TestInterp(t *testing.T) {
	xs := []float64{0, 1, 3}
	ys := []float64{10, 20, 40}
	t.Run("can interpolate between samples", func(t *testing.T) {
		assert.InDelta(t, 15.0, geom.Interp(0.5, xs, ys), 1e-12)
		assert.InDelta(t, 30.0, geom.Interp(2, xs, ys), 1e-12)
	})
	t.Run("should return sample values at sample points", func(t *testing.T) {
		assert.Equal(t, 20.0, geom.Interp(1, xs, ys))
	})
	t.Run("should clamp outside the sampled range", func(t *testing.T) {
		assert.Equal(t, 10.0, geom.Interp(-5, xs, ys))
		assert.Equal(t, 40.0, geom.Interp(99, xs, ys))
	})
}

func TestCircle(t *testing.T) {
	t.Run("can build a closed circle", func(t *testing.T) {
		// when
		pts := geom.Circle(r3.Vec{Z: 2}, 1.5, 33)
		// then
		assert.Len(t, pts, 33)
		assert.InDelta(t, pts[0].X, pts[32].X, 1e-9)
		assert.InDelta(t, pts[0].Y, pts[32].Y, 1e-9)
		for _, p := range pts {
			assert.InDelta(t, 1.5, math.Hypot(p.X, p.Y), 1e-9)
			assert.Equal(t, 2.0, p.Z)
		}
	})
}

func TestGapLoop(t *testing.T) {
	t.Run("should center the gap on the +Y side", func(t *testing.T) {
		// given
		const r, gap = 0.5, 0.08
		// when
		pts := geom.GapLoop(r3.Vec{}, r, gap, 200)
		// then
		first, last := pts[0], pts[len(pts)-1]
		assert.InDelta(t, r*math.Cos(math.Pi/2+gap), first.X, 1e-9)
		assert.InDelta(t, r*math.Sin(math.Pi/2+gap), first.Y, 1e-9)
		// both ends are near the top and symmetric about the Y axis
		assert.InDelta(t, first.Y, last.Y, 1e-9)
		assert.InDelta(t, first.X, -last.X, 1e-9)
		assert.Greater(t, first.Y, 0.0)
	})
	t.Run("can derive the gap angle from a chord", func(t *testing.T) {
		a := geom.GapAngle(0.60, 0.08)
		assert.InDelta(t, math.Asin(0.04/0.60), a, 1e-12)
	})
}

func TestRoundedRectLoop(t *testing.T) {
	t.Run("can build a rounded rectangle with a top gap", func(t *testing.T) {
		// given
		const lx, ly, rc, gap = 1.40, 0.80, 0.10, 0.06
		// when
		pts := geom.RoundedRectLoop(r3.Vec{Z: 1}, lx, ly, rc, gap, 12)
		// then
		assert.NotEmpty(t, pts)
		for _, p := range pts {
			assert.LessOrEqual(t, math.Abs(p.X), lx/2+1e-9)
			assert.LessOrEqual(t, math.Abs(p.Y), ly/2+1e-9)
			assert.Equal(t, 1.0, p.Z)
		}
		// the loop starts and ends at the gap edges on the +Y straight
		first, last := pts[0], pts[len(pts)-1]
		assert.InDelta(t, gap/2, first.X, 1e-9)
		assert.InDelta(t, ly/2, first.Y, 1e-9)
		assert.InDelta(t, -gap/2, last.X, 1e-9)
		assert.InDelta(t, ly/2, last.Y, 1e-9)
	})
}

func TestBox(t *testing.T) {
	t.Run("can build six quad faces", func(t *testing.T) {
		faces := geom.Box(r3.Vec{X: 1, Y: 2, Z: 3}, 0.5, 0.25, 0.1)
		assert.Len(t, faces, 6)
		for _, f := range faces {
			assert.Len(t, f, 4)
		}
		// bottom face sits below the top face
		assert.Equal(t, 2.9, faces[0][0].Z)
		assert.Equal(t, 3.1, faces[1][0].Z)
	})
}

func TestCylinderSide(t *testing.T) {
	t.Run("can build the side wall quads", func(t *testing.T) {
		faces := geom.CylinderSide(0, 0, 0.025, 1.0, 1.1, 20)
		assert.Len(t, faces, 19)
		for _, f := range faces {
			assert.Equal(t, 1.0, f[0].Z)
			assert.Equal(t, 1.1, f[2].Z)
		}
	})
}

func TestDiscXZ(t *testing.T) {
	t.Run("should squash only the X radius", func(t *testing.T) {
		pts := geom.DiscXZ(r3.Vec{Y: -0.8}, 0.17, 0.35, 32)
		var maxX, maxZ float64
		for _, p := range pts {
			maxX = math.Max(maxX, math.Abs(p.X))
			maxZ = math.Max(maxZ, math.Abs(p.Z))
			assert.Equal(t, -0.8, p.Y)
		}
		assert.InDelta(t, 0.17*0.35, maxX, 1e-3)
		assert.InDelta(t, 0.17, maxZ, 1e-3)
	})
}

func TestLerp(t *testing.T) {
	t.Run("can blend two points", func(t *testing.T) {
		p := geom.Lerp(r3.Vec{X: 1}, r3.Vec{X: 3, Z: 2}, 0.5)
		assert.Equal(t, r3.Vec{X: 2, Z: 1}, p)
	})
}
