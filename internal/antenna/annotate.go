package antenna

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/posterforge/nvisposter/internal/geom"
	"github.com/posterforge/nvisposter/internal/scene"
	"github.com/posterforge/nvisposter/internal/theme"
)

// radLayout holds the hand-tuned annotation geometry for one arrow fan
// density. The three densities track the three poster scales.
type radLayout struct {
	offsets        [][3]float64 // arrow base x, y and outward drift
	factor         float64
	driftF         float64
	z0, z1         float64 // shaft span above the loop
	headDX, headDZ float64
	width          float64
	alpha          float64
	headAlpha      float64
	labelZ         float64
	labelSize      float64

	ionoT          float64 // arc parameter half-range
	ionoN          int
	ionoLift       float64 // first arc height above the loop
	ionoGap        float64 // second arc offset
	ionoW, ionoA   float64
	iono2W, iono2A float64
	ionoLabelZ     float64
	ionoLabelSize  float64

	retR0, retZ0 float64 // return ray start fraction and height
	retZ1        float64
	retW, retA   float64

	dimLift, dimDrop  float64
	dimSize, dimTick  float64
	profTop, profTick float64
	profLift          float64
	profSize          float64
	frontSize         float64
}

var radLayouts = map[int]radLayout{
	5: {
		offsets: [][3]float64{{0, 0, 0}, {0.15, 0.1, 0}, {-0.15, 0.1, 0}, {0.1, -0.12, 0}, {-0.1, -0.12, 0}},
		factor:  0.3, z0: 0.08, z1: 0.55, headDX: 0.02, headDZ: 0.05,
		width: 2.5, alpha: 0.7, headAlpha: 1,
		labelZ: 0.62, labelSize: 16,
		ionoT: 0.5, ionoN: 40, ionoLift: 1.05, ionoW: 3, ionoA: 0.6,
		ionoLabelZ: 1.12, ionoLabelSize: 13,
		dimLift: 0.05, dimDrop: 0.06, dimSize: 16, dimTick: 0.025,
		profTop: 0.04, profTick: 0.02, profLift: 0.02, profSize: 14,
		frontSize: 14,
	},
	7: {
		offsets: [][3]float64{{0, 0, 0}, {0.18, 0.12, 0.06}, {-0.18, 0.12, 0.06},
			{0.12, -0.15, 0.05}, {-0.12, -0.15, 0.05}, {0.25, 0, 0.08}, {-0.25, 0, 0.08}},
		factor: 0.15, driftF: 0.1, z0: 0.10, z1: 0.65, headDX: 0.015, headDZ: 0.04,
		width: 2.2, alpha: 0.65, headAlpha: 0.65,
		labelZ: 0.73, labelSize: 15,
		ionoT: 0.6, ionoN: 60, ionoLift: 1.20, ionoGap: 0.08,
		ionoW: 3.5, ionoA: 0.55, iono2W: 2, iono2A: 0.35,
		ionoLabelZ: 1.32, ionoLabelSize: 12,
		retR0: 0.3, retZ0: 1.15, retZ1: 0.35, retW: 1.8, retA: 0.4,
		dimLift: 0.06, dimDrop: 0.08, dimSize: 15, dimTick: 0.03,
		profTop: 0.05, profTick: 0.025, profLift: 0.02, profSize: 13,
		frontSize: 14,
	},
	9: {
		offsets: [][3]float64{{0, 0, 0}, {0.22, 0.14, 0.06}, {-0.22, 0.14, 0.06},
			{0.16, -0.18, 0.05}, {-0.16, -0.18, 0.05}, {0.30, 0, 0.08}, {-0.30, 0, 0.08},
			{0.12, 0.26, 0.04}, {-0.12, 0.26, 0.04}},
		factor: 0.12, driftF: 0.08, z0: 0.12, z1: 0.72, headDX: 0.015, headDZ: 0.045,
		width: 2.2, alpha: 0.6, headAlpha: 0.6,
		labelZ: 0.82, labelSize: 14,
		ionoT: 0.6, ionoN: 60, ionoLift: 1.25, ionoGap: 0.10,
		ionoW: 3, ionoA: 0.55, iono2W: 3, iono2A: 0.30,
		ionoLabelZ: 1.48, ionoLabelSize: 11,
		retR0: 0.25, retZ0: 1.20, retZ1: 0.35, retW: 1.5, retA: 0.35,
		dimLift: 0.07, dimDrop: 0.08, dimSize: 14, dimTick: 0.03,
		profTop: 0.06, profTick: 0.025, profLift: 0.03, profSize: 12,
		frontSize: 13,
	},
}

var returnRays = [][2]float64{
	{0.9, 0.35}, {-0.9, 0.35}, {0.7, -0.45}, {-0.7, -0.45}, {0.5, 0.55}, {-0.5, -0.55},
}

var returnRaysNear = [][2]float64{
	{0.8, 0.3}, {-0.8, 0.3}, {0.6, -0.4}, {-0.6, -0.4},
}

// radiation draws the upward arrow fan, the NVIS callout and the
// ionosphere sketch with its return rays.
func (in *install) radiation() {
	rd := in.cfg.Radiation
	lay := radLayouts[rd.Arrows]
	arrow := theme.MustHex("#ff8a65")
	for _, o := range lay.offsets {
		ox, oy, drift := o[0], o[1], o[2]
		tipX := ox*lay.factor + drift*lay.driftF
		tipY := oy * lay.factor
		z0, z1 := in.zMid+lay.z0, in.zMid+lay.z1
		in.sc.Add(&scene.Stroke{
			Pts:   []r3.Vec{{X: ox, Y: oy, Z: z0}, {X: tipX, Y: tipY, Z: z1}},
			Color: arrow, Width: lay.width, Alpha: lay.alpha, Z: scene.LayerArrow,
		})
		for _, dx := range []float64{-lay.headDX, lay.headDX} {
			in.sc.Add(&scene.Stroke{
				Pts:   []r3.Vec{{X: tipX, Y: tipY, Z: z1}, {X: tipX + dx, Y: tipY, Z: z1 - lay.headDZ}},
				Color: arrow, Width: 2, Alpha: lay.headAlpha, Z: scene.LayerArrow,
			})
		}
	}
	in.label(r3.Vec{Z: in.zMid + lay.labelZ}, rd.Label, lay.labelSize, arrow, scene.AlignCenter,
		&scene.LabelBox{Fill: in.pal.Background, Edge: arrow, EdgeWidth: 2, Alpha: 0.93, Pad: 5})

	in.ionoArc(lay, rd.IonoScale, rd.IonoDepth, lay.ionoLift, in.pal.CyanLight, lay.ionoW, lay.ionoA)
	if rd.IonoArcs > 1 {
		in.ionoArc(lay, rd.IonoScale*0.87, rd.IonoDepth*0.87, lay.ionoLift+lay.ionoGap,
			theme.MustHex("#80deea"), lay.iono2W, lay.iono2A)
	}
	var box *scene.LabelBox
	if rd.IonoBox {
		box = &scene.LabelBox{Fill: in.pal.Background, Edge: in.pal.CyanLight, EdgeWidth: 1.2, Alpha: 0.88, Pad: 3}
	}
	in.label(r3.Vec{Z: in.zMid + lay.ionoLabelZ}, rd.IonoLabel, lay.ionoLabelSize, in.pal.CyanLight, scene.AlignCenter, box)

	in.returns(lay)
}

func (in *install) ionoArc(lay radLayout, sx, sy, lift float64, col color.NRGBA, w, a float64) {
	ts := geom.Linspace(-lay.ionoT, lay.ionoT, lay.ionoN)
	pts := make([]r3.Vec, len(ts))
	for i, t := range ts {
		pts[i] = r3.Vec{X: sx * math.Sin(t), Y: sy * math.Cos(t), Z: in.zMid + lift}
	}
	in.sc.Add(&scene.Stroke{Pts: pts, Color: col, Width: w, Dash: scene.Dotted, Alpha: a, Z: scene.LayerSky})
}

// returns draws the sky-wave rays coming back down around the vehicle.
func (in *install) returns(lay radLayout) {
	rd := in.cfg.Radiation
	if rd.Returns == 0 {
		return
	}
	col := theme.MustHex("#26c6da")
	rays := returnRays
	if rd.ReturnHeads {
		rays = returnRaysNear
	}
	if rd.Returns < len(rays) {
		rays = rays[:rd.Returns]
	}
	for _, ray := range rays {
		rx, ry := ray[0], ray[1]
		in.sc.Add(&scene.Stroke{
			Pts: []r3.Vec{
				{X: rx * lay.retR0, Y: ry * lay.retR0, Z: in.zMid + lay.retZ0},
				{X: rx, Y: ry, Z: in.zMid + lay.retZ1},
			},
			Color: col, Width: lay.retW, Dash: scene.Dashed, Alpha: lay.retA, Z: scene.LayerSky,
		})
		if rd.ReturnHeads {
			tick := -0.02
			if rx < 0 {
				tick = 0.02
			}
			in.sc.Add(&scene.Stroke{
				Pts: []r3.Vec{
					{X: rx, Y: ry, Z: in.zMid + lay.retZ1},
					{X: rx + tick, Y: ry, Z: in.zMid + lay.retZ1 + 0.07},
				},
				Color: col, Width: lay.retW, Alpha: lay.retA, Z: scene.LayerSky,
			})
		}
	}
}

func (in *install) dimensions() {
	dm := in.cfg.Dims
	lay := radLayouts[in.cfg.Radiation.Arrows]
	red := in.pal.AccentRed

	// span across the loop
	dz := in.zTop + lay.dimLift
	back, drop := 0.04, lay.dimDrop
	if in.twoTurn {
		back, drop = 0.05, 0.10
	}
	in.sc.Add(&scene.Stroke{
		Pts:   []r3.Vec{{X: -in.halfX, Z: dz}, {X: in.halfX, Z: dz}},
		Color: red, Width: 2.5, Z: scene.LayerDim,
	})
	for _, s := range []float64{-1, 1} {
		for _, ty := range []float64{lay.dimTick, -lay.dimTick} {
			in.sc.Add(&scene.Stroke{
				Pts:   []r3.Vec{{X: s * in.halfX, Z: dz}, {X: s * (in.halfX - back), Y: ty, Z: dz}},
				Color: red, Width: 2.5, Z: scene.LayerDim,
			})
		}
	}
	in.label(r3.Vec{Y: -drop, Z: dz + 0.03}, dm.Diameter, lay.dimSize, theme.MustHex("#ef9a9a"), scene.AlignCenter,
		&scene.LabelBox{Fill: in.pal.Background, Edge: red, EdgeWidth: 1.5, Alpha: 0.9, Pad: 3})

	if dm.WidthDim {
		wx := in.halfX + 0.08
		wz := in.zTop + 0.04
		in.sc.Add(&scene.Stroke{
			Pts:   []r3.Vec{{X: wx, Y: -in.halfY, Z: wz}, {X: wx, Y: in.halfY, Z: wz}},
			Color: red, Width: 2, Alpha: 0.7, Z: scene.LayerDim,
		})
		for _, s := range []float64{-1, 1} {
			in.sc.Add(&scene.Stroke{
				Pts:   []r3.Vec{{X: wx, Y: s * in.halfY, Z: wz}, {X: wx, Y: s * (in.halfY - 0.03), Z: wz}},
				Color: red, Width: 2, Alpha: 0.7, Z: scene.LayerDim,
			})
		}
	}

	if dm.Spacing != "" && in.twoTurn {
		purple := theme.MustHex("#ab47bc")
		sx := -in.halfX - 0.10
		in.sc.Add(&scene.Stroke{
			Pts:   []r3.Vec{{X: sx, Z: in.zLoop}, {X: sx, Z: in.zLoop2}},
			Color: purple, Width: 2.5, Z: scene.LayerDim,
		})
		for _, z := range []float64{in.zLoop, in.zLoop2} {
			in.sc.Add(&scene.Stroke{
				Pts:   []r3.Vec{{X: sx - 0.025, Z: z}, {X: sx + 0.025, Z: z}},
				Color: purple, Width: 2.5, Z: scene.LayerDim,
			})
		}
		in.label(r3.Vec{X: sx - 0.06, Z: in.zMid}, dm.Spacing, 11, theme.MustHex("#ce93d8"), scene.AlignRight,
			&scene.LabelBox{Fill: in.pal.Background, Edge: purple, EdgeWidth: 1.2, Alpha: 0.9, Pad: 2})
	}

	// profile height at the right edge
	green := in.pal.AccentGreen
	px := in.halfX + dm.ProfileOffset
	top := in.zTop + lay.profTop
	base := in.roofAt(0)
	in.sc.Add(&scene.Stroke{
		Pts:   []r3.Vec{{X: px, Z: base}, {X: px, Z: top}},
		Color: green, Width: 2.5, Z: scene.LayerDim,
	})
	for _, z := range []float64{base, top} {
		in.sc.Add(&scene.Stroke{
			Pts:   []r3.Vec{{X: px - lay.profTick, Z: z}, {X: px + lay.profTick, Z: z}},
			Color: green, Width: 2.5, Z: scene.LayerDim,
		})
	}
	in.label(r3.Vec{X: px + 0.06, Z: (base+in.zTop)/2 + lay.profLift}, dm.Profile,
		lay.profSize, theme.MustHex("#a5d6a7"), scene.AlignLeft,
		&scene.LabelBox{Fill: in.pal.Background, Edge: green, EdgeWidth: 1.5, Alpha: 0.9, Pad: 3})
}

// scenery lays the ground grid, road markings and the FRONT marker.
func (in *install) scenery() {
	sy := in.cfg.Scenery
	lay := radLayouts[in.cfg.Radiation.Arrows]
	gz := in.m.Ground - 0.01
	col := theme.MustHex(sy.GridColor)
	for _, g := range geom.Linspace(-sy.GridHalfX, sy.GridHalfX, sy.GridLines) {
		in.sc.Add(&scene.Stroke{
			Pts:   []r3.Vec{{X: g, Y: -sy.GridHalfY, Z: gz}, {X: g, Y: sy.GridHalfY, Z: gz}},
			Color: col, Width: 0.4, Alpha: sy.GridAlpha, Z: scene.LayerShadow,
		})
	}
	for _, g := range geom.Linspace(-sy.GridHalfY, sy.GridHalfY, sy.GridLines) {
		in.sc.Add(&scene.Stroke{
			Pts:   []r3.Vec{{X: -sy.GridHalfX, Y: g, Z: gz}, {X: sy.GridHalfX, Y: g, Z: gz}},
			Color: col, Width: 0.4, Alpha: sy.GridAlpha, Z: scene.LayerShadow,
		})
	}
	if sy.Road {
		in.sc.Add(&scene.Stroke{
			Pts:   []r3.Vec{{X: -sy.GridHalfX, Z: in.m.Ground - 0.008}, {X: sy.GridHalfX, Z: in.m.Ground - 0.008}},
			Color: in.pal.Gold, Width: 1.5, Dash: scene.Dashed, Alpha: sy.RoadAlpha, Z: scene.LayerShadow,
		})
	}
	in.label(r3.Vec{X: sy.FrontX, Z: in.m.Ground + sy.FrontLift}, "FRONT ▶",
		lay.frontSize, theme.MustHex(sy.FrontColor), scene.AlignLeft, nil)
}
