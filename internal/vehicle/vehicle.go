// Package vehicle builds the 3D car models the loop antennas mount on.
// Every model is a fixed catalog of lofted cross sections and trim
// taken from the installation drawings. Vehicles face +X, sit on the
// XY plane and report the roof height the antenna deck builds on.
package vehicle

import (
	"fmt"
	"image/color"

	"github.com/posterforge/nvisposter/internal/geom"
	"github.com/posterforge/nvisposter/internal/scene"
)

// Style selects a car model.
type Style string

const (
	// StyleBox is the simplified three box sedan.
	StyleBox Style = "box"
	// StyleClassic is the plain gray mid-size sedan.
	StyleClassic Style = "classic"
	// StyleSport is the metallic gray sedan with sport trim.
	StyleSport Style = "sport"
	// StyleExecutive is the dark blue sedan with chrome trim.
	StyleExecutive Style = "executive"
)

// ErrUnknownStyle reports a style no model exists for.
var ErrUnknownStyle = fmt.Errorf("unknown vehicle style")

// Styles returns all known styles.
func Styles() []Style {
	return []Style{StyleBox, StyleClassic, StyleSport, StyleExecutive}
}

// ParseStyle converts a catalog string into a Style.
func ParseStyle(s string) (Style, error) {
	st := Style(s)
	switch st {
	case StyleBox, StyleClassic, StyleSport, StyleExecutive:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// Model is a built vehicle ready to merge into a poster scene.
type Model struct {
	Scene *scene.Scene
	// Ground is the road surface height.
	Ground float64
	// RoofZ is the roof height above the loop center at x = 0.
	RoofZ float64
	// Body and Cabin expose the loft profiles so the antenna builder
	// can follow the roof curve and route cables along the flanks.
	Body  Profile
	Cabin Profile
}

// Build constructs the model for a style.
func Build(st Style) (Model, error) {
	switch st {
	case StyleBox:
		return buildBox(), nil
	case StyleClassic:
		return newClassicSedan().build(), nil
	case StyleSport:
		return newSportSedan().build(), nil
	case StyleExecutive:
		return newExecutiveSedan().build(), nil
	}
	return Model{}, fmt.Errorf("%w: %q", ErrUnknownStyle, st)
}

// Profile is a lofted longitudinal profile: half width and top height
// sampled at stations along the X axis.
type Profile struct {
	X    []float64
	Half []float64
	Top  []float64
}

// HalfAt interpolates the half width at x.
func (p Profile) HalfAt(x float64) float64 { return geom.Interp(x, p.X, p.Half) }

// TopAt interpolates the top height at x.
func (p Profile) TopAt(x float64) float64 { return geom.Interp(x, p.X, p.Top) }

// Paint is a sedan color scheme. The sides differ so the shell reads
// as lit from the viewer's side.
type Paint struct {
	SideL     color.NRGBA
	SideR     color.NRGBA
	Top       color.NRGBA
	Bottom    color.NRGBA
	Front     color.NRGBA
	Rear      color.NRGBA
	Highlight color.NRGBA
	Glass     color.NRGBA
	GlassA    float64
	Roof      color.NRGBA
	Pillar    color.NRGBA
	Trim      color.NRGBA
	Edge      color.NRGBA
}
