// Package antenna assembles a roof-mounted magnetic loop installation
// into scene items: the conductor loop (one or two turns), tuning
// capacitor hardware, feed loop, standoff posts, cable routing and the
// explanatory annotations around them. Everything is driven by a
// catalog config so one builder serves all poster variants.
package antenna

import (
	"errors"
	"fmt"

	"github.com/posterforge/nvisposter/internal/theme"
)

// Loop shapes.
const (
	ShapeCircle    = "circle"
	ShapeRectangle = "rectangle"
)

// Conductor finishes.
const (
	ConductorCopper = "copper"
	ConductorSilver = "silver"
)

// ErrBadConfig reports a config the builder cannot render.
var ErrBadConfig = errors.New("invalid antenna config")

// Config describes one complete loop installation. It carries data
// only; geometry and layout rules live in the builder.
type Config struct {
	Loop      Loop      `yaml:"loop"`
	Cap       Cap       `yaml:"cap"`
	Feed      Feed      `yaml:"feed"`
	Standoffs Standoffs `yaml:"standoffs"`
	Route     Route     `yaml:"route"`
	Radiation Radiation `yaml:"radiation"`
	Dims      Dims      `yaml:"dims"`
	Scenery   Scenery   `yaml:"scenery"`
}

// Loop is the main conductor geometry. Radius applies to circles;
// Length, Width and Corner to rounded rectangles. The capacitor gap
// sits on the +Y side, given either as an angle (radians) or as a
// chord length in meters.
type Loop struct {
	Shape       string   `yaml:"shape"`
	Radius      float64  `yaml:"radius,omitempty"`
	Length      float64  `yaml:"length,omitempty"`
	Width       float64  `yaml:"width,omitempty"`
	Corner      float64  `yaml:"corner,omitempty"`
	GapAngle    float64  `yaml:"gap_angle,omitempty"`
	GapChord    float64  `yaml:"gap_chord,omitempty"`
	Standoff    float64  `yaml:"standoff"`
	RoofLift    float64  `yaml:"roof_lift"`
	TurnSpacing float64  `yaml:"turn_spacing,omitempty"`
	Conductor   string   `yaml:"conductor"`
	Stroke      float64  `yaml:"stroke"`
	TurnLabels  []string `yaml:"turn_labels,omitempty"`
	JumperLabel string   `yaml:"jumper_label,omitempty"`
}

// Cap is the tuning capacitor assembly on the gap side of the loop.
type Cap struct {
	HalfW      float64 `yaml:"half_w"`
	HalfD      float64 `yaml:"half_d"`
	HalfH      float64 `yaml:"half_h"`
	EdgeGap    float64 `yaml:"edge_gap,omitempty"`
	LeadSpread float64 `yaml:"lead_spread"`
	Stripes    bool    `yaml:"stripes,omitempty"`
	Relay      string  `yaml:"relay,omitempty"` // "box" or "jumper"
	RelayLabel string  `yaml:"relay_label,omitempty"`
	MotorR     float64 `yaml:"motor_r"`
	MotorH     float64 `yaml:"motor_h"`
	MotorDX    float64 `yaml:"motor_dx,omitempty"`
	MotorLabel string  `yaml:"motor_label,omitempty"`
	DomeRX     float64 `yaml:"dome_rx,omitempty"`
	DomeRY     float64 `yaml:"dome_ry,omitempty"`
	Label      string  `yaml:"label"`
	Leader     bool    `yaml:"leader,omitempty"`
}

// Feed is the small Faraday coupling loop on the -Y side.
type Feed struct {
	Radius   float64 `yaml:"radius"`
	Stroke   float64 `yaml:"stroke"`
	Glow     bool    `yaml:"glow,omitempty"`
	Label    string  `yaml:"label"`
	Leader   bool    `yaml:"leader,omitempty"`
	SORadius float64 `yaml:"so_radius,omitempty"`
}

// Standoffs are the insulating posts the loop rides on, each on a
// magnetic mount base.
type Standoffs struct {
	Positions [][2]float64 `yaml:"positions"`
	BaseR     float64      `yaml:"base_r"`
	BaseH     float64      `yaml:"base_h,omitempty"`
	PadR      float64      `yaml:"pad_r,omitempty"`
	PadH      float64      `yaml:"pad_h,omitempty"`
	RodStroke float64      `yaml:"rod_stroke"`
	ClipR     float64      `yaml:"clip_r,omitempty"`
	ClipH     float64      `yaml:"clip_h,omitempty"`
	Label     string       `yaml:"label"`
	Leader    bool         `yaml:"leader,omitempty"`
}

// Route is the coax run from the feed loop into the cabin, with the
// optional control cable, choke balun and controller box.
type Route struct {
	Label           string  `yaml:"label"`
	Stroke          float64 `yaml:"stroke"`
	Control         bool    `yaml:"control,omitempty"`
	ChokeR          float64 `yaml:"choke_r,omitempty"`
	ChokeStroke     float64 `yaml:"choke_stroke,omitempty"`
	ControllerLabel string  `yaml:"controller_label,omitempty"`
	ControllerLift  float64 `yaml:"controller_lift,omitempty"`
}

// Radiation is the skyward annotation set: the arrow fan, the NVIS
// callout and the ionosphere arcs with reflected rays. Arrows selects
// a fixed fan preset (5, 7 or 9).
type Radiation struct {
	Arrows      int     `yaml:"arrows"`
	Label       string  `yaml:"label"`
	IonoScale   float64 `yaml:"iono_scale"`
	IonoDepth   float64 `yaml:"iono_depth"`
	IonoArcs    int     `yaml:"iono_arcs"`
	IonoLabel   string  `yaml:"iono_label"`
	IonoBox     bool    `yaml:"iono_box,omitempty"`
	Returns     int     `yaml:"returns,omitempty"`
	ReturnHeads bool    `yaml:"return_heads,omitempty"`
}

// Dims are the dimension callouts. Empty strings drop the callout.
type Dims struct {
	Diameter      string  `yaml:"diameter"`
	WidthDim      bool    `yaml:"width_dim,omitempty"`
	Spacing       string  `yaml:"spacing,omitempty"`
	Profile       string  `yaml:"profile"`
	ProfileOffset float64 `yaml:"profile_offset"`
}

// Scenery is the stage around the car: ground grid, road line and the
// FRONT marker.
type Scenery struct {
	GridHalfX  float64 `yaml:"grid_half_x"`
	GridHalfY  float64 `yaml:"grid_half_y"`
	GridLines  int     `yaml:"grid_lines"`
	GridColor  string  `yaml:"grid_color"`
	GridAlpha  float64 `yaml:"grid_alpha"`
	Road       bool    `yaml:"road,omitempty"`
	RoadAlpha  float64 `yaml:"road_alpha,omitempty"`
	FrontX     float64 `yaml:"front_x"`
	FrontLift  float64 `yaml:"front_lift"`
	FrontColor string  `yaml:"front_color"`
}

// Validate reports the first config field the builder cannot work
// with.
func (c Config) Validate() error {
	switch c.Loop.Shape {
	case ShapeCircle:
		if c.Loop.Radius <= 0 {
			return fmt.Errorf("%w: circle loop needs a positive radius", ErrBadConfig)
		}
		if c.Loop.GapChord >= 2*c.Loop.Radius {
			return fmt.Errorf("%w: gap chord %g does not fit a loop of radius %g",
				ErrBadConfig, c.Loop.GapChord, c.Loop.Radius)
		}
	case ShapeRectangle:
		if c.Loop.Length <= 0 || c.Loop.Width <= 0 {
			return fmt.Errorf("%w: rectangle loop needs positive length and width", ErrBadConfig)
		}
		if c.Loop.GapChord <= 0 {
			return fmt.Errorf("%w: rectangle loop needs a positive gap chord", ErrBadConfig)
		}
	default:
		return fmt.Errorf("%w: unknown loop shape %q", ErrBadConfig, c.Loop.Shape)
	}
	switch c.Loop.Conductor {
	case ConductorCopper, ConductorSilver:
	default:
		return fmt.Errorf("%w: unknown conductor %q", ErrBadConfig, c.Loop.Conductor)
	}
	if c.Loop.GapAngle <= 0 && c.Loop.GapChord <= 0 {
		return fmt.Errorf("%w: loop needs a gap angle or chord", ErrBadConfig)
	}
	if len(c.Standoffs.Positions) == 0 {
		return fmt.Errorf("%w: no standoff positions", ErrBadConfig)
	}
	switch c.Radiation.Arrows {
	case 5, 7, 9:
	default:
		return fmt.Errorf("%w: no arrow fan preset for %d arrows", ErrBadConfig, c.Radiation.Arrows)
	}
	if _, err := theme.ParseHex(c.Scenery.GridColor); err != nil {
		return fmt.Errorf("%w: grid color: %v", ErrBadConfig, err)
	}
	if _, err := theme.ParseHex(c.Scenery.FrontColor); err != nil {
		return fmt.Errorf("%w: front color: %v", ErrBadConfig, err)
	}
	return nil
}
