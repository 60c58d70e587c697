package vehicle

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/posterforge/nvisposter/internal/geom"
	"github.com/posterforge/nvisposter/internal/scene"
	"github.com/posterforge/nvisposter/internal/theme"
)

var (
	boxBodyEdge  = theme.MustHex("#263238")
	boxGlass     = theme.MustHex("#4fc3f7")
	boxRoofColor = theme.MustHex("#546e7a")
)

// buildBox constructs the simplified three box sedan: a slab lower
// body, a glass house, hood and trunk slopes and four disc wheels.
func buildBox() Model {
	const (
		halfL  = 2.4
		halfW  = 0.70
		bodyH  = 0.35
		ground = -0.15
	)
	zBody := ground + bodyH
	zRoof := zBody + 0.32

	sc := &scene.Scene{}
	v := func(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }
	face := func(pts []r3.Vec, fill string, alpha, lw float64, layer int) {
		sc.Add(&scene.Face{
			Pts: pts, Fill: theme.MustHex(fill), Edge: boxBodyEdge,
			EdgeWidth: lw, Alpha: alpha, Z: layer,
		})
	}

	// Lower body slab. The open top is covered by the hood, trunk and
	// cabin, matching the drawing.
	face(geom.Quad(
		v(-halfL, -halfW, ground), v(halfL, -halfW, ground),
		v(halfL, -halfW, zBody), v(-halfL, -halfW, zBody)),
		"#455a64", 0.92, 1, scene.LayerBody)
	face(geom.Quad(
		v(-halfL, halfW, ground), v(halfL, halfW, ground),
		v(halfL, halfW, zBody), v(-halfL, halfW, zBody)),
		"#37474f", 0.92, 1, scene.LayerBody)
	face(geom.Quad(
		v(halfL, -halfW, ground), v(halfL, halfW, ground),
		v(halfL, halfW, zBody), v(halfL, -halfW, zBody)),
		"#4a6572", 0.92, 1, scene.LayerBody)
	face(geom.Quad(
		v(-halfL, -halfW, ground), v(-halfL, halfW, ground),
		v(-halfL, halfW, zBody), v(-halfL, -halfW, zBody)),
		"#37474f", 0.92, 1, scene.LayerBody)
	face(geom.Quad(
		v(-halfL, -halfW, ground), v(halfL, -halfW, ground),
		v(halfL, halfW, ground), v(-halfL, halfW, ground)),
		"#37474f", 0.92, 1, scene.LayerBody)

	// Glass house between the rear and front roof corners.
	rxR := -halfL * 0.40
	rxF := halfL * 0.25
	rw := halfW * 0.90
	sc.Add(&scene.Face{
		Pts: geom.Quad(
			v(rxR, -rw, zRoof), v(rxF, -rw, zRoof),
			v(rxF, rw, zRoof), v(rxR, rw, zRoof)),
		Fill: boxRoofColor, Edge: boxBodyEdge, EdgeWidth: 1.5, Alpha: 0.95,
		Z: scene.LayerDetail,
	})
	for _, pts := range [][]r3.Vec{
		geom.Quad(v(rxR, -rw, zBody), v(rxF, -rw, zBody), v(rxF, -rw, zRoof), v(rxR, -rw, zRoof)),
		geom.Quad(v(rxR, rw, zBody), v(rxF, rw, zBody), v(rxF, rw, zRoof), v(rxR, rw, zRoof)),
		geom.Quad(v(rxF, -rw, zBody), v(rxF, rw, zBody), v(rxF, rw, zRoof), v(rxF, -rw, zRoof)),
		geom.Quad(v(rxR, -rw, zBody), v(rxR, rw, zBody), v(rxR, rw, zRoof), v(rxR, -rw, zRoof)),
	} {
		sc.Add(&scene.Face{
			Pts: pts, Fill: boxGlass, Edge: boxBodyEdge, EdgeWidth: 1.5,
			Alpha: 0.35, Z: scene.LayerDetail,
		})
	}

	// Hood and trunk slopes close the body towards the bumpers.
	face(geom.Quad(
		v(rxF, -halfW*0.95, zBody), v(halfL, -halfW, ground+0.22),
		v(halfL, halfW, ground+0.22), v(rxF, halfW*0.95, zBody)),
		"#4a6572", 0.92, 1, scene.LayerBody)
	face(geom.Quad(
		v(rxR, -halfW*0.95, zBody), v(-halfL, -halfW, ground+0.25),
		v(-halfL, halfW, ground+0.25), v(rxR, halfW*0.95, zBody)),
		"#4a6572", 0.92, 1, scene.LayerBody)

	const wheelR = 0.15
	for _, wp := range []struct{ x, y float64 }{
		{halfL * 0.6, -halfW - 0.01},
		{halfL * 0.6, halfW + 0.01},
		{-halfL * 0.6, -halfW - 0.01},
		{-halfL * 0.6, halfW + 0.01},
	} {
		sc.Add(&scene.Face{
			Pts:  geom.DiscXZ(v(wp.x, wp.y, ground+wheelR*0.4), wheelR, 0.3, 24),
			Fill: theme.MustHex("#212121"), Edge: theme.MustHex("#111111"),
			EdgeWidth: 1.5, Alpha: 0.85, Z: scene.LayerBody,
		})
	}

	for _, side := range []float64{-1, 1} {
		sc.Add(&scene.Face{
			Pts: geom.Quad(
				v(halfL+0.01, side*halfW*0.6, ground+0.18),
				v(halfL+0.01, side*halfW*0.85, ground+0.18),
				v(halfL+0.01, side*halfW*0.85, ground+0.28),
				v(halfL+0.01, side*halfW*0.6, ground+0.28)),
			Fill: theme.MustHex("#fff9c4"), Edge: theme.MustHex("#f9a825"),
			EdgeWidth: 1, Alpha: 0.9, Z: scene.LayerDetail,
		})
	}

	// Flat synthetic profiles so roof and flank queries work the same
	// as for the lofted sedans.
	return Model{
		Scene:  sc,
		Ground: ground,
		RoofZ:  zRoof,
		Body: Profile{
			X:    []float64{-halfL, halfL},
			Half: []float64{halfW, halfW},
			Top:  []float64{zBody, zBody},
		},
		Cabin: Profile{
			X:    []float64{-halfL * 0.40, halfL * 0.25},
			Half: []float64{halfW * 0.90, halfW * 0.90},
			Top:  []float64{zRoof, zRoof},
		},
	}
}
