// Package scene models a poster's 3D content as a flat list of
// drawable items. Items carry world coordinates and styling only;
// projection and rasterization happen in the render package.
//
// Paint order is explicit: every item has a Layer, mirroring the
// hand-tuned draw order of the poster designs. Within one layer the
// painter falls back to camera depth, so faces of the same assembly
// still occlude each other correctly.
package scene

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
)

// Paint layers, low to high. The vehicle occupies the bottom band, the
// antenna assembly the middle band, and annotations the top band, so
// hardware always draws over the car and callouts over everything.
const (
	LayerShadow = iota
	LayerUnderbody
	LayerBody
	LayerDetail
	LayerRoof
	LayerChrome
	LayerAccessory
)

const (
	LayerCable = 10 + iota // coax route, control cable, controller box, choke
	LayerMount             // mag-mount bases, standoff rods, glow underlays
	LayerLoop              // main and feed loop tubes
	LayerLoopHi            // tube highlights, capacitor leads, post clips
	LayerHardware          // SO-239, weather dome, capacitor enclosure
	LayerHardwareHi        // stepper motor, relay, bank stripes, gear shaft
)

const (
	LayerSky = 20 + iota // ionosphere arcs, reflected return rays
	LayerArrow           // radiation arrow fan
	LayerDim             // dimension arrows, label leader lines
	LayerText            // callout and annotation text
)

// Align selects horizontal label alignment relative to the anchor.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// Item is one drawable element of a scene.
type Item interface {
	// Layer returns the explicit paint layer. Higher draws later.
	Layer() int
	// Anchor returns a representative world point used for depth
	// ordering within a layer.
	Anchor() r3.Vec
}

// Face is a filled polygon, optionally edged.
type Face struct {
	Pts       []r3.Vec
	Fill      color.NRGBA
	Edge      color.NRGBA
	EdgeWidth float64 // points; 0 disables the edge
	Alpha     float64
	Z         int
}

func (f *Face) Layer() int { return f.Z }

func (f *Face) Anchor() r3.Vec { return centroid(f.Pts) }

// Dash patterns for strokes, as on/off lengths that scale with the
// line width.
var (
	Dashed  = []float64{3.7, 1.6}
	Dotted  = []float64{1.0, 1.65}
	DashDot = []float64{6.4, 1.6, 1.0, 1.6}
)

// Stroke is an open polyline with round caps.
type Stroke struct {
	Pts   []r3.Vec
	Color color.NRGBA
	Width float64 // points
	Alpha float64
	Dash  []float64 // on/off pattern in points; nil draws solid
	Z     int
}

func (s *Stroke) Layer() int { return s.Z }

func (s *Stroke) Anchor() r3.Vec { return centroid(s.Pts) }

// Dot is a filled disc of fixed on-page size anchored at a world
// point, used for markers such as step bullets and the TX marker.
type Dot struct {
	At     r3.Vec
	Radius float64 // points
	Fill   color.NRGBA
	Edge   color.NRGBA
	Alpha  float64
	Z      int
}

func (d *Dot) Layer() int { return d.Z }

func (d *Dot) Anchor() r3.Vec { return d.At }

// Label is text anchored at a world point. Size is the font size in
// points; Box, when set, draws a rounded background behind the text.
type Label struct {
	At      r3.Vec
	Text    string
	Size    float64
	Color   color.NRGBA
	Bold    bool
	HAlign  Align
	LineGap float64 // extra leading as a fraction of the line height
	Box     *LabelBox
	Z       int
}

func (l *Label) Layer() int { return l.Z }

func (l *Label) Anchor() r3.Vec { return l.At }

// LabelBox styles the rounded box behind a label.
type LabelBox struct {
	Fill      color.NRGBA
	Edge      color.NRGBA
	EdgeWidth float64 // points
	Alpha     float64
	Pad       float64 // points
}

// Scene is an ordered collection of items.
type Scene struct {
	items []Item
}

// Add appends items in draw order. Insertion order is preserved for
// items that share both layer and depth.
func (s *Scene) Add(items ...Item) {
	s.items = append(s.items, items...)
}

// Merge appends every item of other.
func (s *Scene) Merge(other *Scene) {
	s.items = append(s.items, other.items...)
}

// Items returns the items in insertion order.
func (s *Scene) Items() []Item {
	return s.items
}

// Len returns the number of items.
func (s *Scene) Len() int {
	return len(s.items)
}

func centroid(pts []r3.Vec) r3.Vec {
	if len(pts) == 0 {
		return r3.Vec{}
	}
	var c r3.Vec
	for _, p := range pts {
		c = r3.Add(c, p)
	}
	return r3.Scale(1/float64(len(pts)), c)
}
