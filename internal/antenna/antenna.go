package antenna

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/posterforge/nvisposter/internal/geom"
	"github.com/posterforge/nvisposter/internal/scene"
	"github.com/posterforge/nvisposter/internal/theme"
	"github.com/posterforge/nvisposter/internal/vehicle"
)

// Silver-plated conductor tones. Copper tones come from the palette.
var (
	silverTube = theme.MustHex("#d4852e")
	silverHi   = theme.MustHex("#ffe0a0")
	silverGlow = theme.MustHex("#ff9800")
	silverDark = theme.MustHex("#4a2800")
	bronze     = theme.MustHex("#cd7f32")
)

// style selects the callout layout family. The compact single-band
// install labels parts in place, the larger designs pull the callouts
// out on leader lines so they clear the loop hardware.
type style int

const (
	styleMini style = iota
	styleSingle
	styleDual
	styleTwoTurn
)

type install struct {
	cfg Config
	m   vehicle.Model
	pal theme.Palette
	sc  *scene.Scene
	st  style

	halfX, halfY float64
	zBase        float64 // roof surface under the loop centre
	zLoop        float64 // turn 1
	zLoop2       float64 // turn 2, equals zLoop for single-turn loops
	zMid, zTop   float64
	gapA         float64 // half-angle of the front gap (circular loops)
	twoTurn      bool
	capY, capZ   float64
	feedY        float64

	tubeCol, tubeHi, feedHi color.NRGBA
}

// Build assembles the antenna installation scene on top of the vehicle
// model: loop conductors, capacitor assembly, coupling loop, standoffs,
// cable routing, radiation annotations and ground scenery.
func Build(cfg Config, m vehicle.Model, pal theme.Palette) (*scene.Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	in := &install{cfg: cfg, m: m, pal: pal, sc: &scene.Scene{}}
	in.derive()
	in.scenery()
	in.mainLoop()
	in.capacitor()
	in.feedLoop()
	in.standoffs()
	in.route()
	in.radiation()
	in.dimensions()
	return in.sc, nil
}

func (in *install) derive() {
	l := in.cfg.Loop
	if l.Shape == ShapeRectangle {
		in.halfX = l.Length / 2
		in.halfY = l.Width / 2
	} else {
		in.halfX = l.Radius
		in.halfY = l.Radius
	}
	in.zBase = in.m.Cabin.TopAt(0)
	in.zLoop = in.zBase + l.Standoff
	in.twoTurn = l.TurnSpacing > 0
	in.zLoop2 = in.zLoop + l.TurnSpacing
	in.zMid = (in.zLoop + in.zLoop2) / 2
	in.zTop = in.zLoop2
	in.gapA = l.GapAngle
	if l.GapChord > 0 && l.Shape == ShapeCircle {
		in.gapA = geom.GapAngle(l.Radius, l.GapChord)
	}
	in.capY = in.halfY + in.cfg.Cap.EdgeGap
	in.capZ = in.zLoop
	if in.twoTurn {
		in.capZ = in.zMid
	}
	in.feedY = -in.halfY

	if l.Conductor == ConductorSilver {
		in.tubeCol, in.tubeHi = silverTube, silverHi
		in.feedHi = theme.MustHex("#e8a060")
		in.st = styleTwoTurn
	} else {
		in.tubeCol, in.tubeHi = in.pal.Copper, in.pal.CopperHi
		in.feedHi = theme.MustHex("#d2691e")
		switch {
		case in.cfg.Cap.Relay == "box":
			in.st = styleDual
		case in.cfg.Cap.Leader:
			in.st = styleSingle
		default:
			in.st = styleMini
		}
	}
}

// roofAt is the roof surface height under a standoff base at x.
func (in *install) roofAt(x float64) float64 {
	return in.m.Cabin.TopAt(x) + in.cfg.Loop.RoofLift
}

// tube draws a conductor as a thick stroke with a thin specular
// highlight on top.
func (in *install) tube(pts []r3.Vec, col, hi color.NRGBA, w float64, layer int) {
	in.sc.Add(
		&scene.Stroke{Pts: pts, Color: col, Width: w, Z: layer},
		&scene.Stroke{Pts: pts, Color: hi, Width: w * 0.45, Alpha: 0.35, Z: layer + 1},
	)
}

// box adds the six faces of an axis-aligned box with per-face shading.
func (in *install) box(center r3.Vec, hw, hd, hh float64, cols [6]color.NRGBA, edge color.NRGBA, alpha float64, layer int) {
	for i, f := range geom.Box(center, hw, hd, hh) {
		in.sc.Add(&scene.Face{Pts: f, Fill: cols[i], Edge: edge, EdgeWidth: 1, Alpha: alpha, Z: layer})
	}
}

func (in *install) cylinder(cx, cy, r, z0, z1 float64, n int, fill, edge color.NRGBA, alpha float64, layer int) {
	for _, f := range geom.CylinderSide(cx, cy, r, z0, z1, n) {
		in.sc.Add(&scene.Face{Pts: f, Fill: fill, Edge: edge, EdgeWidth: 0.5, Alpha: alpha, Z: layer})
	}
}

func (in *install) label(at r3.Vec, text string, size float64, col color.NRGBA, ha scene.Align, box *scene.LabelBox) {
	in.sc.Add(&scene.Label{At: at, Text: text, Size: size, Color: col, Bold: true, HAlign: ha, Box: box, Z: scene.LayerText})
}

func (in *install) leader(from, to r3.Vec, w float64) {
	in.sc.Add(&scene.Stroke{Pts: []r3.Vec{from, to}, Color: theme.MustHex("#b0bec5"), Width: w, Z: scene.LayerDim})
}

// ring returns the loop conductor path at height z, with the tuning gap
// centred on the front (+Y) side.
func (in *install) ring(z float64) []r3.Vec {
	l := in.cfg.Loop
	c := r3.Vec{Z: z}
	if l.Shape == ShapeRectangle {
		return geom.RoundedRectLoop(c, l.Length, l.Width, l.Corner, l.GapChord, 12)
	}
	return geom.GapLoop(c, l.Radius, in.gapA, 200)
}

func (in *install) mainLoop() {
	l := in.cfg.Loop
	w := l.Stroke
	zs := []float64{in.zLoop}
	if in.twoTurn {
		zs = append(zs, in.zLoop2)
	}
	for _, z := range zs {
		pts := in.ring(z)
		if l.Conductor == ConductorSilver {
			// soft halo and a dark underlay so the plated tube reads
			// bright against the night sky
			in.sc.Add(
				&scene.Stroke{Pts: pts, Color: silverGlow, Width: w + 7, Alpha: 0.12, Z: scene.LayerMount},
				&scene.Stroke{Pts: pts, Color: silverGlow, Width: w + 1, Alpha: 0.18, Z: scene.LayerMount},
				&scene.Stroke{Pts: pts, Color: silverDark, Width: w + 3, Alpha: 0.7, Z: scene.LayerMount},
			)
		}
		in.tube(pts, in.tubeCol, in.tubeHi, w, scene.LayerLoop)
	}
	if in.twoTurn {
		in.jumper()
	}
	in.turnLabels()
}

// jumper is the short vertical conductor joining turn 1 to turn 2 at
// the left edge of the gap.
func (in *install) jumper() {
	jx, jy := in.jumperPos()
	w := in.cfg.Loop.Stroke * 0.75
	pts := []r3.Vec{{X: jx, Y: jy, Z: in.zLoop}, {X: jx, Y: jy, Z: in.zLoop2}}
	in.sc.Add(&scene.Stroke{Pts: pts, Color: silverDark, Width: w + 4, Alpha: 0.7, Z: scene.LayerMount})
	in.tube(pts, bronze, silverHi, w, scene.LayerLoop)

	if in.cfg.Loop.JumperLabel != "" {
		in.label(r3.Vec{X: jx - 0.14, Y: jy + 0.06, Z: in.zMid}, in.cfg.Loop.JumperLabel,
			12, silverHi, scene.AlignRight,
			&scene.LabelBox{Fill: theme.MustHex("#3e2723"), Edge: silverTube, EdgeWidth: 1.5, Alpha: 0.92, Pad: 3.5})
	}
}

func (in *install) jumperPos() (x, y float64) {
	x = -in.cfg.Loop.GapChord / 2
	if in.cfg.Loop.Shape == ShapeRectangle {
		return x, in.halfY
	}
	return x, math.Sqrt(in.halfY*in.halfY - x*x)
}

func (in *install) turnLabels() {
	red := theme.MustHex("#ef5350")
	for i, text := range in.cfg.Loop.TurnLabels {
		z := in.zLoop
		col, bg := silverTube, theme.MustHex("#1a1208")
		if i > 0 {
			z = in.zLoop2
			col, bg = red, theme.MustHex("#1a0808")
		}
		in.label(r3.Vec{X: -in.halfX - 0.18, Y: 0.30, Z: z}, text, 13, col, scene.AlignRight,
			&scene.LabelBox{Fill: bg, Edge: col, EdgeWidth: 2, Alpha: 0.93, Pad: 4})
	}
}

var (
	capLight = [6]color.NRGBA{
		theme.MustHex("#1565c0"), theme.MustHex("#1976d2"), theme.MustHex("#1e88e5"),
		theme.MustHex("#1565c0"), theme.MustHex("#0d47a1"), theme.MustHex("#1976d2"),
	}
	capEnclosure = [6]color.NRGBA{
		theme.MustHex("#0d47a1"), theme.MustHex("#1565c0"), theme.MustHex("#1976d2"),
		theme.MustHex("#0d47a1"), theme.MustHex("#0a3d8f"), theme.MustHex("#1565c0"),
	}
	relayRed = [6]color.NRGBA{
		theme.MustHex("#c62828"), theme.MustHex("#e53935"), theme.MustHex("#ef5350"),
		theme.MustHex("#c62828"), theme.MustHex("#b71c1c"), theme.MustHex("#e53935"),
	}
	controllerGray = [6]color.NRGBA{
		theme.MustHex("#263238"), theme.MustHex("#37474f"), theme.MustHex("#455a64"),
		theme.MustHex("#263238"), theme.MustHex("#1a2530"), theme.MustHex("#37474f"),
	}
)

func (in *install) capacitor() {
	cp := in.cfg.Cap
	center := r3.Vec{Y: in.capY, Z: in.capZ}
	cols := capLight
	if cp.Relay != "" {
		cols = capEnclosure
	}
	in.box(center, cp.HalfW, cp.HalfD, cp.HalfH, cols, theme.MustHex("#0d47a1"), 0.85, scene.LayerHardware)
	in.capLeads()

	if cp.Stripes {
		// bank indicator stripes on the front face
		for _, s := range []struct {
			x   float64
			col color.NRGBA
		}{{-cp.HalfW * 2 / 3, theme.MustHex("#42a5f5")}, {cp.HalfW * 2 / 3, theme.MustHex("#ef5350")}} {
			in.sc.Add(&scene.Stroke{Pts: []r3.Vec{
				{X: s.x, Y: in.capY - cp.HalfD, Z: in.capZ - cp.HalfH},
				{X: s.x, Y: in.capY - cp.HalfD, Z: in.capZ + cp.HalfH},
			}, Color: s.col, Width: 4, Z: scene.LayerHardwareHi})
		}
	}

	in.motor()
	in.relay()
	in.dome()
	in.capLabel()
}

func (in *install) capLeads() {
	cp := in.cfg.Cap
	w := in.cfg.Loop.Stroke - 3
	if in.cfg.Loop.Conductor == ConductorSilver {
		w = 7
	}
	if in.twoTurn {
		c := in.cfg.Loop.GapChord
		for _, sx := range []float64{1, -1} {
			for _, z := range []float64{in.zLoop, in.zLoop2} {
				in.sc.Add(&scene.Stroke{Pts: []r3.Vec{
					{X: sx * c / 2, Y: in.halfY, Z: z},
					{X: sx * cp.LeadSpread, Y: in.capY, Z: in.capZ},
				}, Color: in.tubeCol, Width: w, Z: scene.LayerLoopHi})
			}
		}
		return
	}
	for _, e := range []struct{ angle, sign float64 }{
		{math.Pi/2 + in.gapA, -1},
		{math.Pi/2 + 2*math.Pi - in.gapA, 1},
	} {
		in.sc.Add(&scene.Stroke{Pts: []r3.Vec{
			{X: in.halfX * math.Cos(e.angle), Y: in.halfX * math.Sin(e.angle), Z: in.zLoop},
			{X: e.sign * cp.LeadSpread, Y: in.capY, Z: in.capZ},
		}, Color: in.tubeCol, Width: w, Z: scene.LayerLoopHi})
	}
}

func (in *install) motor() {
	cp := in.cfg.Cap
	if cp.MotorR <= 0 {
		return
	}
	z0 := in.capZ + cp.HalfH
	in.cylinder(cp.MotorDX, in.capY, cp.MotorR, z0, z0+cp.MotorH, 16,
		theme.MustHex("#455a64"), theme.MustHex("#37474f"), 0.85, scene.LayerHardwareHi)
	shaft := theme.MustHex("#b0bec5")
	if cp.MotorDX != 0 {
		// worm gear shaft back to the cap spindle
		in.sc.Add(&scene.Stroke{Pts: []r3.Vec{
			{X: cp.MotorDX, Y: in.capY, Z: z0 + cp.MotorH/2},
			{Y: in.capY, Z: z0},
		}, Color: shaft, Width: 2, Z: scene.LayerHardwareHi})
	}
	if in.twoTurn {
		in.sc.Add(&scene.Stroke{Pts: []r3.Vec{
			{Y: in.capY, Z: z0 + cp.MotorH},
			{Y: in.capY, Z: z0 + cp.MotorH + 0.03},
		}, Color: shaft, Width: 2.5, Z: scene.LayerHardwareHi})
	}
	if cp.MotorLabel != "" {
		in.label(r3.Vec{X: cp.MotorDX + 0.12, Y: in.capY + 0.05, Z: in.capZ + 0.09},
			cp.MotorLabel, 11, theme.MustHex("#b0bec5"), scene.AlignLeft,
			&scene.LabelBox{Fill: theme.MustHex("#37474f"), Edge: theme.MustHex("#78909c"), EdgeWidth: 1.2, Alpha: 0.9, Pad: 2.5})
	}
}

func (in *install) relay() {
	cp := in.cfg.Cap
	switch cp.Relay {
	case "box":
		in.box(r3.Vec{X: -0.06, Y: in.capY + 0.04, Z: in.capZ + 0.06},
			0.025, 0.02, 0.015, relayRed, theme.MustHex("#b71c1c"), 0.85, scene.LayerHardwareHi)
	case "jumper":
		jx, jy := in.jumperPos()
		rx, ry := jx-0.10, jy+0.04
		in.box(r3.Vec{X: rx, Y: ry, Z: in.zMid}, 0.05, 0.035, 0.03,
			relayRed, theme.MustHex("#b71c1c"), 0.85, scene.LayerHardwareHi)
		if cp.RelayLabel != "" {
			in.label(r3.Vec{X: rx - 0.12, Y: ry + 0.08, Z: in.zMid}, cp.RelayLabel,
				10, theme.MustHex("#ef9a9a"), scene.AlignRight,
				&scene.LabelBox{Fill: theme.MustHex("#1a0808"), Edge: theme.MustHex("#ef5350"), EdgeWidth: 1.2, Alpha: 0.9, Pad: 3})
		}
	}
}

func (in *install) dome() {
	cp := in.cfg.Cap
	if cp.DomeRX <= 0 {
		return
	}
	lift, w, a := 0.01, 1.5, 0.5
	if in.twoTurn {
		lift, w = 0.02, 2
	}
	if cp.Relay != "" {
		a = 0.45
	}
	pts := geom.Ellipse(r3.Vec{Y: in.capY, Z: in.capZ + cp.HalfH + lift}, cp.DomeRX, cp.DomeRY, 40)
	in.sc.Add(&scene.Stroke{Pts: pts, Color: theme.MustHex("#80cbc4"), Width: w, Dash: scene.Dashed, Alpha: a, Z: scene.LayerHardware})
}

func (in *install) capLabel() {
	cp := in.cfg.Cap
	text := theme.MustHex("#bbdefb")
	if in.st == styleMini {
		in.label(r3.Vec{Y: in.capY + 0.12, Z: in.capZ + 0.06}, cp.Label, 12, text, scene.AlignCenter,
			&scene.LabelBox{Fill: theme.MustHex("#0d47a1"), Edge: text, EdgeWidth: 1.5, Alpha: 0.9, Pad: 4})
		return
	}
	var start, end r3.Vec
	size, lw, ew, pad := 11.0, 1.5, 1.5, 4.0
	switch in.st {
	case styleSingle:
		start = r3.Vec{Y: cp.HalfD, Z: cp.HalfH}
		end = r3.Vec{X: 0.25, Y: 0.25, Z: 0.20}
	case styleDual:
		start = r3.Vec{Y: cp.HalfD, Z: cp.HalfH + cp.MotorH}
		end = r3.Vec{X: 0.35, Y: 0.32, Z: 0.30}
		size = 10.5
	default:
		start = r3.Vec{Y: cp.HalfD, Z: cp.HalfH + cp.MotorH}
		end = r3.Vec{X: 0.45, Y: 0.38, Z: 0.40}
		lw, ew, pad = 2, 2, 5
	}
	base := r3.Vec{Y: in.capY, Z: in.capZ}
	in.sc.Add(&scene.Stroke{
		Pts:   []r3.Vec{r3.Add(base, start), r3.Add(base, end)},
		Color: theme.MustHex("#90caf9"), Width: lw, Z: scene.LayerDim,
	})
	at := r3.Add(base, r3.Add(end, r3.Vec{X: 0.02, Y: 0.02, Z: 0.02}))
	in.label(at, cp.Label, size, text, scene.AlignLeft,
		&scene.LabelBox{Fill: theme.MustHex("#0d47a1"), Edge: theme.MustHex("#64b5f6"), EdgeWidth: ew, Alpha: 0.93, Pad: pad})
}

func (in *install) feedLoop() {
	fd := in.cfg.Feed
	center := r3.Vec{Y: in.feedY, Z: in.zLoop}
	pts := geom.Arc(center, fd.Radius, 0.12, 2*math.Pi-0.12, 200)
	if fd.Glow {
		in.sc.Add(&scene.Stroke{Pts: pts, Color: theme.MustHex("#d2691e"), Width: 12, Alpha: 0.15, Z: scene.LayerMount})
	}
	in.tube(pts, in.pal.CopperCouple, in.feedHi, fd.Stroke, scene.LayerLoop)
	in.soConnector()
	in.feedLabel()
}

func (in *install) soConnector() {
	fd := in.cfg.Feed
	if fd.SORadius <= 0 {
		return
	}
	at := r3.Vec{Y: in.feedY - fd.Radius, Z: in.zLoop}
	in.sc.Add(&scene.Face{
		Pts:  geom.Circle(at, fd.SORadius, 7),
		Fill: theme.MustHex("#b0bec5"), Edge: theme.MustHex("#78909c"), EdgeWidth: 1,
		Alpha: 0.9, Z: scene.LayerHardware,
	})
	off, size, col := r3.Vec{X: -0.08, Y: -0.04, Z: -0.03}, 9.0, theme.MustHex("#90a4ae")
	switch in.st {
	case styleDual:
		off = r3.Vec{Y: -0.05, Z: -0.03}
	case styleTwoTurn:
		off, size, col = r3.Vec{Y: -0.06, Z: -0.04}, 10, theme.MustHex("#b0bec5")
	}
	in.label(r3.Add(at, off), "SO-239", size, col, scene.AlignCenter, nil)
}

func (in *install) feedLabel() {
	fd := in.cfg.Feed
	text := theme.MustHex("#d7ccc8")
	if in.st == styleMini {
		in.label(r3.Vec{X: fd.Radius + 0.06, Y: in.feedY, Z: in.zLoop + 0.05}, fd.Label,
			12, text, scene.AlignLeft,
			&scene.LabelBox{Fill: theme.MustHex("#4e342e"), Edge: theme.MustHex("#8d6e63"), EdgeWidth: 1.5, Alpha: 0.9, Pad: 3.5})
		return
	}
	var end r3.Vec
	size, lw, ew, pad := 10.5, 1.5, 1.5, 3.5
	switch in.st {
	case styleSingle:
		end = r3.Vec{X: fd.Radius + 0.20, Y: -0.15, Z: 0.12}
		size = 11
	case styleDual:
		end = r3.Vec{X: fd.Radius + 0.22, Y: -0.18, Z: 0.14}
	default:
		end = r3.Vec{X: fd.Radius + 0.28, Y: -0.24, Z: 0.16}
		size, lw, ew, pad = 11, 2, 2, 4
	}
	base := r3.Vec{Y: in.feedY, Z: in.zLoop}
	in.sc.Add(&scene.Stroke{
		Pts:   []r3.Vec{r3.Add(base, r3.Vec{X: fd.Radius * 0.7}), r3.Add(base, end)},
		Color: theme.MustHex("#bcaaa4"), Width: lw, Z: scene.LayerDim,
	})
	at := r3.Add(base, r3.Add(end, r3.Vec{X: 0.02, Y: -0.02, Z: 0.02}))
	in.label(at, fd.Label, size, text, scene.AlignLeft,
		&scene.LabelBox{Fill: theme.MustHex("#3e2723"), Edge: theme.MustHex("#8d6e63"), EdgeWidth: ew, Alpha: 0.92, Pad: pad})
}

func (in *install) standoffs() {
	so := in.cfg.Standoffs
	base := theme.MustHex("#212121")
	baseEdge := theme.MustHex("#111111")
	pad := theme.MustHex("#37474f")
	padEdge := theme.MustHex("#263238")
	rod := theme.MustHex("#eceff1")
	for _, p := range so.Positions {
		sx, sy := p[0], p[1]
		zr := in.roofAt(sx)
		if so.BaseH > 0 {
			in.cylinder(sx, sy, so.BaseR, zr, zr+so.BaseH, 14, base, baseEdge, 0.9, scene.LayerMount)
		} else {
			in.sc.Add(&scene.Face{Pts: geom.Circle(r3.Vec{X: sx, Y: sy, Z: zr}, so.BaseR, 20),
				Fill: base, Edge: baseEdge, EdgeWidth: 0.5, Alpha: 0.9, Z: scene.LayerMount})
		}
		zp := zr + so.BaseH
		if so.PadR > 0 {
			if so.BaseH > 0 {
				in.cylinder(sx, sy, so.PadR, zp, zp+so.PadH, 14, pad, padEdge, 0.85, scene.LayerMount)
			} else {
				in.sc.Add(&scene.Face{Pts: geom.Circle(r3.Vec{X: sx, Y: sy, Z: zp + so.PadH}, so.PadR, 20),
					Fill: pad, Edge: padEdge, EdgeWidth: 0.5, Alpha: 0.8, Z: scene.LayerMount})
			}
			zp += so.PadH
		}
		in.sc.Add(&scene.Stroke{Pts: []r3.Vec{{X: sx, Y: sy, Z: zp + 0.005}, {X: sx, Y: sy, Z: in.zLoop}},
			Color: rod, Width: so.RodStroke, Z: scene.LayerMount})
		in.clip(sx, sy, in.zLoop)
		if in.twoTurn {
			in.sc.Add(&scene.Stroke{Pts: []r3.Vec{{X: sx, Y: sy, Z: in.zLoop}, {X: sx, Y: sy, Z: in.zLoop2}},
				Color: rod, Width: so.RodStroke - 1.5, Z: scene.LayerMount})
			in.clip(sx, sy, in.zLoop2)
		}
	}
	in.standoffLabel()
}

func (in *install) clip(sx, sy, z float64) {
	so := in.cfg.Standoffs
	if so.ClipR <= 0 {
		return
	}
	fill := theme.MustHex("#e0e0e0")
	edge := theme.MustHex("#bdbdbd")
	if so.ClipH > 0 {
		in.cylinder(sx, sy, so.ClipR, z-so.ClipH, z+so.ClipH, 12, fill, edge, 0.9, scene.LayerLoopHi)
		return
	}
	in.sc.Add(&scene.Face{Pts: geom.Circle(r3.Vec{X: sx, Y: sy, Z: z}, so.ClipR, 16),
		Fill: fill, Edge: edge, EdgeWidth: 0.5, Alpha: 0.9, Z: scene.LayerLoopHi})
}

// standoffLabel anchors the post callout at whichever post sits closest
// to the front-right of the scene.
func (in *install) standoffLabel() {
	so := in.cfg.Standoffs
	if len(so.Positions) == 0 || so.Label == "" {
		return
	}
	best := so.Positions[0]
	for _, p := range so.Positions[1:] {
		if p[0]-p[1] > best[0]-best[1] {
			best = p
		}
	}
	px, py := best[0], best[1]
	zm := (in.zBase + in.zLoop) / 2
	text := theme.MustHex("#cfd8dc")
	if !so.Leader {
		in.label(r3.Vec{X: px + 0.12, Y: py, Z: zm}, so.Label, 11, text, scene.AlignLeft,
			&scene.LabelBox{Fill: theme.MustHex("#263238"), Edge: theme.MustHex("#78909c"), EdgeWidth: 1.2, Alpha: 0.9, Pad: 3})
		return
	}
	var start, end r3.Vec
	size, lw, ew, pad := 10.0, 1.5, 1.2, 3.0
	switch in.st {
	case styleSingle:
		start = r3.Vec{X: 0.04}
		end = r3.Vec{X: 0.28, Y: -0.18, Z: -0.06}
		size = 10.5
	case styleDual:
		start = r3.Vec{X: 0.04}
		end = r3.Vec{X: 0.30, Y: -0.20, Z: -0.08}
	default:
		start = r3.Vec{X: 0.05}
		end = r3.Vec{X: 0.36, Y: -0.25, Z: -0.12}
		lw, ew, pad = 2, 1.5, 3.5
	}
	base := r3.Vec{X: px, Y: py, Z: zm}
	in.leader(r3.Add(base, start), r3.Add(base, end), lw)
	at := r3.Add(base, r3.Add(end, r3.Vec{X: 0.02, Y: -0.02, Z: -0.02}))
	in.label(at, so.Label, size, text, scene.AlignLeft,
		&scene.LabelBox{Fill: theme.MustHex("#1a2530"), Edge: theme.MustHex("#78909c"), EdgeWidth: ew, Alpha: 0.92, Pad: pad})
}

func (in *install) route() {
	rt := in.cfg.Route
	pts := in.coaxPath()
	in.sc.Add(&scene.Stroke{Pts: pts, Color: theme.MustHex("#222222"), Width: rt.Stroke, Dash: scene.Dashed, Alpha: 0.7, Z: scene.LayerCable})
	if rt.Control {
		off := make([]r3.Vec, len(pts))
		for i, p := range pts {
			off[i] = r3.Add(p, r3.Vec{X: 0.03, Y: 0.01})
		}
		in.sc.Add(&scene.Stroke{Pts: off, Color: theme.MustHex("#4a148c"), Width: rt.Stroke - 1.5, Dash: scene.DashDot, Alpha: 0.5, Z: scene.LayerCable})
	}
	in.routeLabel(pts)
	in.choke(pts)
	in.controller()
}

func (in *install) coaxPath() []r3.Vec {
	y0 := in.feedY
	if in.cfg.Feed.SORadius > 0 {
		y0 -= in.cfg.Feed.Radius
	}
	g := in.m.Ground
	roof := in.m.Cabin.TopAt(0)
	switch in.st {
	case styleMini:
		// flat roof, straight drop over the sill
		w := in.m.Body.HalfAt(0) * 0.85
		zb := in.m.Body.TopAt(0)
		return []r3.Vec{
			{Y: y0, Z: in.zLoop},
			{Y: y0 - 0.05, Z: in.zLoop - 0.02},
			{Y: -w, Z: zb + 0.15},
			{Y: -w, Z: zb},
			{Y: -w, Z: zb - 0.08},
		}
	case styleSingle:
		return []r3.Vec{
			{Y: y0, Z: in.zLoop},
			{X: 0.05, Y: y0 - 0.05, Z: in.zLoop - 0.02},
			{X: 0.10, Y: -(in.m.Cabin.HalfAt(0.10) + 0.02), Z: roof - 0.05},
			{X: 0.15, Y: -(in.m.Body.HalfAt(0.10) + 0.01), Z: g + 0.40},
			{X: 0.15, Y: -(in.m.Body.HalfAt(0.10) + 0.01), Z: g + 0.25},
		}
	case styleDual:
		return []r3.Vec{
			{Y: y0, Z: in.zLoop},
			{X: 0.05, Y: y0 - 0.05, Z: in.zLoop - 0.02},
			{X: 0.12, Y: -(in.m.Cabin.HalfAt(0.12) + 0.02), Z: roof - 0.05},
			{X: 0.15, Y: -(in.m.Body.HalfAt(0.15) + 0.01), Z: g + 0.38},
		}
	default:
		return []r3.Vec{
			{Y: y0, Z: in.zLoop},
			{X: 0.05, Y: y0 - 0.05, Z: in.zLoop - 0.02},
			{X: 0.12, Y: -(in.m.Cabin.HalfAt(0.12) + 0.03), Z: roof - 0.05},
			{X: 0.15, Y: -(in.m.Body.HalfAt(0.15) + 0.01), Z: g + 0.35},
		}
	}
}

func (in *install) routeLabel(pts []r3.Vec) {
	rt := in.cfg.Route
	last := pts[len(pts)-1]
	g := in.m.Ground
	switch in.st {
	case styleMini:
		in.label(r3.Vec{X: 0.05, Y: last.Y - 0.08, Z: in.m.Body.TopAt(0) + 0.08}, rt.Label,
			10, theme.MustHex("#90a4ae"), scene.AlignLeft, nil)
	case styleSingle:
		in.label(r3.Vec{X: 0.22, Y: last.Y - 0.06, Z: g + 0.32}, rt.Label,
			10, theme.MustHex("#78909c"), scene.AlignLeft, nil)
	case styleDual:
		in.label(r3.Vec{X: 0.25, Y: last.Y - 0.06, Z: g + 0.35}, rt.Label,
			9.5, theme.MustHex("#78909c"), scene.AlignLeft, nil)
	default:
		in.label(r3.Vec{X: 0.25, Y: last.Y - 0.08, Z: g + 0.32}, rt.Label,
			10, theme.MustHex("#90a4ae"), scene.AlignLeft, nil)
	}
}

// choke draws the ferrite choke balun threaded on the coax near the
// window entry.
func (in *install) choke(pts []r3.Vec) {
	rt := in.cfg.Route
	if rt.ChokeR <= 0 {
		return
	}
	cx, squash := 0.14, 0.3
	col, labelCol := theme.MustHex("#4e342e"), theme.MustHex("#8d6e63")
	size := 9.0
	switch in.st {
	case styleSingle:
		cx, col = 0.12, theme.MustHex("#5d4037")
	case styleTwoTurn:
		squash, labelCol, size = 0.35, theme.MustHex("#a1887f"), 10
	}
	center := r3.Vec{X: cx, Y: pts[2].Y, Z: in.m.Cabin.TopAt(0) - 0.02}
	in.sc.Add(&scene.Stroke{Pts: geom.Toroid(center, rt.ChokeR, squash, 30), Color: col, Width: rt.ChokeStroke, Z: scene.LayerCable})
	in.label(r3.Vec{X: cx + 2*rt.ChokeR + 0.01, Y: center.Y, Z: center.Z}, "Choke\nBalun",
		size, labelCol, scene.AlignLeft, nil)
}

func (in *install) controller() {
	rt := in.cfg.Route
	if rt.ControllerLabel == "" {
		return
	}
	y := -(in.m.Body.HalfAt(0.18) - 0.08)
	z := in.m.Ground + rt.ControllerLift
	in.box(r3.Vec{X: 0.18, Y: y, Z: z}, 0.06, 0.04, 0.03, controllerGray, theme.MustHex("#1a2530"), 0.8, scene.LayerCable)
	in.label(r3.Vec{X: 0.30, Y: y, Z: z}, rt.ControllerLabel, 9, theme.MustHex("#78909c"), scene.AlignLeft, nil)
}
