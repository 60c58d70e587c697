package antenna_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/posterforge/nvisposter/internal/antenna"
	"github.com/posterforge/nvisposter/internal/scene"
	"github.com/posterforge/nvisposter/internal/theme"
	"github.com/posterforge/nvisposter/internal/vehicle"
)

// nanPoints counts scene anchor and outline points with a NaN
// coordinate.
func nanPoints(sc *scene.Scene) int {
	var n int
	count := func(pts ...r3.Vec) {
		for _, p := range pts {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) {
				n++
			}
		}
	}
	for _, it := range sc.Items() {
		switch v := it.(type) {
		case *scene.Face:
			count(v.Pts...)
		case *scene.Stroke:
			count(v.Pts...)
		case *scene.Dot:
			count(v.At)
		case *scene.Label:
			count(v.At)
		}
	}
	return n
}

func singleTurnConfig() antenna.Config {
	return antenna.Config{
		Loop: antenna.Loop{
			Shape:     antenna.ShapeCircle,
			Radius:    0.50,
			GapAngle:  0.07,
			Standoff:  0.10,
			Conductor: antenna.ConductorCopper,
			Stroke:    9,
		},
		Cap: antenna.Cap{
			HalfW: 0.10, HalfD: 0.06, HalfH: 0.05,
			LeadSpread: 0.042,
			MotorR:     0.028, MotorH: 0.04,
			DomeRX: 0.12, DomeRY: 0.084,
			Label: "Vacuum Variable Cap", Leader: true,
		},
		Feed: antenna.Feed{
			Radius: 0.10, Stroke: 5,
			Label: "Faraday Feed Loop", Leader: true, SORadius: 0.018,
		},
		Standoffs: antenna.Standoffs{
			Positions: [][2]float64{{0.325, 0.325}, {0.325, -0.325}, {-0.325, 0.325}, {-0.325, -0.325}},
			BaseR:     0.04, PadR: 0.035, PadH: 0.005,
			RodStroke: 5, ClipR: 0.025,
			Label: "HDPE Post", Leader: true,
		},
		Route: antenna.Route{
			Label: "RG-58 Coax", Stroke: 3.5,
			ChokeR: 0.025, ChokeStroke: 4,
		},
		Radiation: antenna.Radiation{
			Arrows: 7, Label: "NVIS Radiation",
			IonoScale: 1.4, IonoDepth: 0.24, IonoArcs: 2,
			IonoLabel: "F2 Layer", IonoBox: true,
			Returns: 4, ReturnHeads: true,
		},
		Dims: antenna.Dims{
			Diameter: `D = 1.00 m (39.4")`,
			Profile:  "Profile\n~10 cm", ProfileOffset: 0.18,
		},
		Scenery: antenna.Scenery{
			GridHalfX: 1.8, GridHalfY: 1.1, GridLines: 12,
			GridColor: "#192133", GridAlpha: 0.3,
			Road: true, RoadAlpha: 0.2,
			FrontX: 2.55, FrontLift: 0.18, FrontColor: "#607d8b",
		},
	}
}

func twoTurnConfig() antenna.Config {
	cfg := singleTurnConfig()
	cfg.Loop.Radius = 0.60
	cfg.Loop.GapAngle = 0
	cfg.Loop.GapChord = 0.08
	cfg.Loop.TurnSpacing = 0.05
	cfg.Loop.Conductor = antenna.ConductorSilver
	cfg.Loop.Stroke = 17
	cfg.Loop.TurnLabels = []string{"TURN 1", "TURN 2"}
	cfg.Loop.JumperLabel = "Ag-Cu Jumper\n50 mm"
	cfg.Cap.EdgeGap = 0.06
	cfg.Cap.LeadSpread = 0.10
	cfg.Cap.Relay = "jumper"
	cfg.Cap.RelayLabel = "1× DPDT Relay"
	cfg.Feed.Glow = true
	cfg.Standoffs.BaseH = 0.018
	cfg.Standoffs.ClipH = 0.010
	cfg.Route.Control = true
	cfg.Route.ControllerLabel = "ESP32 Tri-Band\nController"
	cfg.Route.ControllerLift = 0.22
	cfg.Radiation.Arrows = 9
	cfg.Radiation.ReturnHeads = false
	cfg.Dims.WidthDim = true
	cfg.Dims.Spacing = "50 mm\nspacing"
	return cfg
}

func TestConfigValidate(t *testing.T) {
	t.Run("can validate a complete config", func(t *testing.T) {
		assert.NoError(t, singleTurnConfig().Validate())
		assert.NoError(t, twoTurnConfig().Validate())
	})
	t.Run("should report unknown shape", func(t *testing.T) {
		cfg := singleTurnConfig()
		cfg.Loop.Shape = "triangle"
		assert.ErrorIs(t, cfg.Validate(), antenna.ErrBadConfig)
	})
	t.Run("should report missing radius", func(t *testing.T) {
		cfg := singleTurnConfig()
		cfg.Loop.Radius = 0
		assert.ErrorIs(t, cfg.Validate(), antenna.ErrBadConfig)
	})
	t.Run("should report unknown conductor", func(t *testing.T) {
		cfg := singleTurnConfig()
		cfg.Loop.Conductor = "gold"
		assert.ErrorIs(t, cfg.Validate(), antenna.ErrBadConfig)
	})
	t.Run("should report missing gap", func(t *testing.T) {
		cfg := singleTurnConfig()
		cfg.Loop.GapAngle = 0
		assert.ErrorIs(t, cfg.Validate(), antenna.ErrBadConfig)
	})
	t.Run("should report a gap chord wider than the loop", func(t *testing.T) {
		cfg := singleTurnConfig()
		cfg.Loop.GapAngle = 0
		cfg.Loop.GapChord = 1.2 // loop diameter is 1.0
		assert.ErrorIs(t, cfg.Validate(), antenna.ErrBadConfig)
	})
	t.Run("should report a rectangle loop without a gap chord", func(t *testing.T) {
		cfg := twoTurnConfig()
		cfg.Loop.Shape = antenna.ShapeRectangle
		cfg.Loop.Radius = 0
		cfg.Loop.Length = 1.40
		cfg.Loop.Width = 0.80
		cfg.Loop.GapChord = 0
		assert.ErrorIs(t, cfg.Validate(), antenna.ErrBadConfig)
	})
	t.Run("should report missing standoffs", func(t *testing.T) {
		cfg := singleTurnConfig()
		cfg.Standoffs.Positions = nil
		assert.ErrorIs(t, cfg.Validate(), antenna.ErrBadConfig)
	})
	t.Run("should report unsupported arrow count", func(t *testing.T) {
		cfg := singleTurnConfig()
		cfg.Radiation.Arrows = 6
		assert.ErrorIs(t, cfg.Validate(), antenna.ErrBadConfig)
	})
}

func TestBuild(t *testing.T) {
	pal, err := theme.Get("navy")
	require.NoError(t, err)
	t.Run("can build a single turn copper install", func(t *testing.T) {
		// given
		m, err := vehicle.Build(vehicle.StyleClassic)
		require.NoError(t, err)
		// when
		sc, err := antenna.Build(singleTurnConfig(), m, pal)
		// then
		require.NoError(t, err)
		assert.Positive(t, sc.Len())
	})
	t.Run("can build a two turn silver install", func(t *testing.T) {
		// given
		m, err := vehicle.Build(vehicle.StyleExecutive)
		require.NoError(t, err)
		// when
		sc, err := antenna.Build(twoTurnConfig(), m, pal)
		// then
		require.NoError(t, err)
		assert.Positive(t, sc.Len())
	})
	t.Run("two turn install carries more scene items", func(t *testing.T) {
		// given
		m, err := vehicle.Build(vehicle.StyleExecutive)
		require.NoError(t, err)
		// when
		single, err := antenna.Build(singleTurnConfig(), m, pal)
		require.NoError(t, err)
		double, err := antenna.Build(twoTurnConfig(), m, pal)
		require.NoError(t, err)
		// then
		assert.Greater(t, double.Len(), single.Len())
	})
	t.Run("can build a rectangular two turn install", func(t *testing.T) {
		// given
		cfg := twoTurnConfig()
		cfg.Loop.Shape = antenna.ShapeRectangle
		cfg.Loop.Radius = 0
		cfg.Loop.Length = 1.40
		cfg.Loop.Width = 0.80
		cfg.Loop.Corner = 0.05
		m, err := vehicle.Build(vehicle.StyleExecutive)
		require.NoError(t, err)
		// when
		sc, err := antenna.Build(cfg, m, pal)
		// then
		require.NoError(t, err)
		assert.Positive(t, sc.Len())
	})
	t.Run("should not build when the gap chord exceeds the loop diameter", func(t *testing.T) {
		// given
		cfg := singleTurnConfig()
		cfg.Loop.Radius = 0.40
		cfg.Loop.GapAngle = 0
		cfg.Loop.GapChord = 1.0
		m, err := vehicle.Build(vehicle.StyleClassic)
		require.NoError(t, err)
		// when
		_, err = antenna.Build(cfg, m, pal)
		// then
		assert.ErrorIs(t, err, antenna.ErrBadConfig)
	})
	t.Run("built scenes contain only finite geometry", func(t *testing.T) {
		// given
		m, err := vehicle.Build(vehicle.StyleExecutive)
		require.NoError(t, err)
		for _, cfg := range []antenna.Config{singleTurnConfig(), twoTurnConfig()} {
			// when
			sc, err := antenna.Build(cfg, m, pal)
			// then
			require.NoError(t, err)
			assert.Zero(t, nanPoints(sc))
		}
	})
	t.Run("should report invalid config", func(t *testing.T) {
		// given
		cfg := singleTurnConfig()
		cfg.Radiation.Arrows = 3
		m, err := vehicle.Build(vehicle.StyleBox)
		require.NoError(t, err)
		// when
		_, err = antenna.Build(cfg, m, pal)
		// then
		assert.ErrorIs(t, err, antenna.ErrBadConfig)
	})
}
