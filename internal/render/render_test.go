package render_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/posterforge/nvisposter/internal/render"
	"github.com/posterforge/nvisposter/internal/scene"
	"github.com/posterforge/nvisposter/internal/theme"
)

func testCamera() render.Camera {
	return render.Camera{
		Elev:   0,
		Azim:   0,
		Limits: render.Bounds{X0: -1, X1: 1, Y0: -1, Y1: 1, Z0: -1, Z1: 1},
		Aspect: r3.Vec{X: 1, Y: 1, Z: 1},
	}
}

func TestCameraProject(t *testing.T) {
	t.Run("should project the box center to the origin", func(t *testing.T) {
		u, v, _ := testCamera().Project(r3.Vec{})
		assert.InDelta(t, 0, u, 1e-12)
		assert.InDelta(t, 0, v, 1e-12)
	})
	t.Run("should put +Y to the right and +Z up when looking along X", func(t *testing.T) {
		cam := testCamera()
		u, _, _ := cam.Project(r3.Vec{Y: 0.5})
		_, v, _ := cam.Project(r3.Vec{Z: 0.5})
		assert.Greater(t, u, 0.0)
		assert.Greater(t, v, 0.0)
	})
	t.Run("should rank nearer points deeper when looking along X", func(t *testing.T) {
		cam := testCamera()
		_, _, near := cam.Project(r3.Vec{X: 0.9})
		_, _, far := cam.Project(r3.Vec{X: -0.9})
		assert.Greater(t, near, far)
	})
	t.Run("should rank higher points nearer from straight above", func(t *testing.T) {
		cam := testCamera()
		cam.Elev = 90
		_, _, top := cam.Project(r3.Vec{Z: 0.9})
		_, _, bottom := cam.Project(r3.Vec{Z: -0.9})
		assert.Greater(t, top, bottom)
	})
	t.Run("should respect the box aspect", func(t *testing.T) {
		cam := testCamera()
		cam.Aspect = r3.Vec{X: 1, Y: 2, Z: 1}
		u1, _, _ := cam.Project(r3.Vec{Y: 1})
		cam.Aspect = r3.Vec{X: 1, Y: 1, Z: 1}
		u2, _, _ := cam.Project(r3.Vec{Y: 1})
		assert.InDelta(t, 2*u2, u1, 1e-12)
	})
}

func TestProjector(t *testing.T) {
	t.Run("should keep the world box inside the viewport", func(t *testing.T) {
		// given
		cam := render.Camera{
			Elev:   25,
			Azim:   -52,
			Limits: render.Bounds{X0: -1.6, X1: 1.6, Y0: -1, Y1: 1, Z0: -0.3, Z1: 1.4},
			Aspect: r3.Vec{X: 1.6, Y: 1, Z: 0.85},
		}
		vp := render.Rect{X: 10, Y: 20, W: 300, H: 200}
		pr := render.NewProjector(cam, vp)
		// when / then
		for _, x := range []float64{-1.6, 1.6} {
			for _, y := range []float64{-1, 1} {
				for _, z := range []float64{-0.3, 1.4} {
					px, py := pr.Point(r3.Vec{X: x, Y: y, Z: z})
					assert.GreaterOrEqual(t, px, vp.X-0.5)
					assert.LessOrEqual(t, px, vp.X+vp.W+0.5)
					assert.GreaterOrEqual(t, py, vp.Y-0.5)
					assert.LessOrEqual(t, py, vp.Y+vp.H+0.5)
				}
			}
		}
	})
	t.Run("should map higher world points to smaller pixel Y", func(t *testing.T) {
		pr := render.NewProjector(testCamera(), render.Rect{W: 100, H: 100})
		_, yLow := pr.Point(r3.Vec{Z: -0.5})
		_, yHigh := pr.Point(r3.Vec{Z: 0.5})
		assert.Less(t, yHigh, yLow)
	})
}

func TestCanvas(t *testing.T) {
	t.Run("can allocate at physical size", func(t *testing.T) {
		c := render.NewCanvas(2, 1, 100, theme.MustHex("#0d1b2a"))
		w, h := c.Size()
		assert.Equal(t, 200, w)
		assert.Equal(t, 100, h)
		assert.Equal(t, 100.0, c.DPI())
	})
	t.Run("can convert points to pixels", func(t *testing.T) {
		c := render.NewCanvas(1, 1, 144, color.NRGBA{A: 255})
		assert.InDelta(t, 144.0, c.Px(72), 1e-9)
	})
	t.Run("should fill the background", func(t *testing.T) {
		c := render.NewCanvas(1, 1, 50, theme.MustHex("#ff0000"))
		r, g, b, _ := c.Image().At(25, 25).RGBA()
		assert.Equal(t, uint32(0xffff), r)
		assert.Zero(t, g)
		assert.Zero(t, b)
	})
	t.Run("should flip figure rects to a top-left origin", func(t *testing.T) {
		c := render.NewCanvas(1, 1, 100, color.NRGBA{A: 255})
		r := c.FigRect(0.1, 0, 0.5, 0.25)
		assert.InDelta(t, 10.0, r.X, 1e-9)
		assert.InDelta(t, 75.0, r.Y, 1e-9)
		assert.InDelta(t, 50.0, r.W, 1e-9)
		assert.InDelta(t, 25.0, r.H, 1e-9)
	})
	t.Run("can fill a polygon", func(t *testing.T) {
		c := render.NewCanvas(1, 1, 100, color.NRGBA{A: 255})
		c.FillPoly([]render.Pt{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}}, theme.MustHex("#00ff00"))
		_, g, _, _ := c.Image().At(50, 50).RGBA()
		assert.Equal(t, uint32(0xffff), g)
	})
	t.Run("can draw text", func(t *testing.T) {
		c := render.NewCanvas(1, 1, 100, color.NRGBA{A: 255})
		c.Text(50, 50, "NVIS", render.TextStyle{Size: 24, Color: theme.MustHex("#ffffff"), Bold: true})
		assert.Positive(t, countBrighterThan(c.Image(), 0x1000))
	})
	t.Run("can measure multi line blocks", func(t *testing.T) {
		c := render.NewCanvas(1, 1, 100, color.NRGBA{A: 255})
		w1, h1, lh := c.MeasureText("one", render.TextStyle{Size: 12})
		_, h2, _ := c.MeasureText("one\ntwo", render.TextStyle{Size: 12})
		assert.Positive(t, w1)
		assert.InDelta(t, h1+lh, h2, 1e-9)
	})
	t.Run("can compose an image into a rect", func(t *testing.T) {
		// given
		c := render.NewCanvas(1, 1, 100, color.NRGBA{A: 255})
		tile := image.NewNRGBA(image.Rect(0, 0, 10, 10))
		for i := range tile.Pix {
			tile.Pix[i] = 0xff
		}
		// when
		c.Compose(tile, render.Rect{X: 20, Y: 20, W: 40, H: 40})
		// then
		r, _, _, _ := c.Image().At(40, 40).RGBA()
		assert.Equal(t, uint32(0xffff), r)
	})
}

func TestPaint(t *testing.T) {
	quadAt := func(x float64) []r3.Vec {
		return []r3.Vec{
			{X: x, Y: -0.5, Z: -0.5}, {X: x, Y: 0.5, Z: -0.5},
			{X: x, Y: 0.5, Z: 0.5}, {X: x, Y: -0.5, Z: 0.5},
		}
	}
	t.Run("should paint nearer faces over deeper ones in a layer", func(t *testing.T) {
		// given
		c := render.NewCanvas(1, 1, 100, color.NRGBA{A: 255})
		var s scene.Scene
		s.Add(&scene.Face{Pts: quadAt(0.5), Fill: theme.MustHex("#0000ff"), Z: 5})
		s.Add(&scene.Face{Pts: quadAt(-0.5), Fill: theme.MustHex("#ff0000"), Z: 5})
		// when
		render.Paint(c, &s, testCamera(), render.Rect{W: 100, H: 100})
		// then the near blue quad wins although it was added first
		_, _, b, _ := c.Image().At(50, 50).RGBA()
		assert.Equal(t, uint32(0xffff), b)
	})
	t.Run("should let a higher layer win over depth", func(t *testing.T) {
		c := render.NewCanvas(1, 1, 100, color.NRGBA{A: 255})
		var s scene.Scene
		s.Add(&scene.Face{Pts: quadAt(0.5), Fill: theme.MustHex("#0000ff"), Z: 5})
		s.Add(&scene.Face{Pts: quadAt(-0.5), Fill: theme.MustHex("#ff0000"), Z: 9})
		render.Paint(c, &s, testCamera(), render.Rect{W: 100, H: 100})
		r, _, _, _ := c.Image().At(50, 50).RGBA()
		assert.Equal(t, uint32(0xffff), r)
	})
	t.Run("can paint strokes, dots and labels", func(t *testing.T) {
		c := render.NewCanvas(1, 1, 100, color.NRGBA{A: 255})
		var s scene.Scene
		s.Add(&scene.Stroke{
			Pts:   []r3.Vec{{X: 0, Y: -0.8, Z: 0}, {X: 0, Y: 0.8, Z: 0}},
			Color: theme.MustHex("#b5651d"), Width: 6, Z: 10,
		})
		s.Add(&scene.Dot{At: r3.Vec{}, Radius: 4, Fill: theme.MustHex("#ffffff"), Z: 11})
		s.Add(&scene.Label{
			At: r3.Vec{Z: 0.5}, Text: "D = 0.80 m", Size: 10,
			Color: theme.MustHex("#ef9a9a"), Bold: true,
			Box: &scene.LabelBox{Fill: theme.MustHex("#1a1a2e"), Edge: theme.MustHex("#c62828"), EdgeWidth: 1, Pad: 2},
			Z:  20,
		})
		require.NotPanics(t, func() {
			render.Paint(c, &s, testCamera(), render.Rect{W: 100, H: 100})
		})
		assert.Positive(t, countBrighterThan(c.Image(), 0x1000))
	})
}

func countBrighterThan(im image.Image, min uint32) int {
	b := im.Bounds()
	var n int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := im.At(x, y).RGBA()
			if r > min || g > min || bl > min {
				n++
			}
		}
	}
	return n
}
