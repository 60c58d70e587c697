// Package catalog holds the poster definitions: page size, palette,
// camera, vehicle, the antenna install config and every piece of panel
// and inset content. The built-in catalog describes the five NVIS loop
// installation posters and is embedded in the binary; alternative
// catalogs can be loaded from YAML at run time.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/goccy/go-yaml"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/posterforge/nvisposter/internal/antenna"
	"github.com/posterforge/nvisposter/internal/panel"
	"github.com/posterforge/nvisposter/internal/render"
	"github.com/posterforge/nvisposter/internal/theme"
	"github.com/posterforge/nvisposter/internal/vehicle"
)

//go:embed catalog.yaml
var builtin []byte

var ErrNotFound = errors.New("no such poster")
var ErrBadDefinition = errors.New("invalid poster definition")

// Definition is one poster: everything needed to render it.
type Definition struct {
	Name     string         `yaml:"name"`
	File     string         `yaml:"file"`
	Title    string         `yaml:"title"`
	WidthIn  float64        `yaml:"width_in"`
	HeightIn float64        `yaml:"height_in"`
	Palette  string         `yaml:"palette"`
	Vehicle  string         `yaml:"vehicle"`
	Scene    Scene          `yaml:"scene"`
	Antenna  antenna.Config `yaml:"antenna"`
	Spec     panel.Table    `yaml:"spec"`
	Guide    panel.Guide    `yaml:"guide"`
	Banner   panel.Banner   `yaml:"banner"`
	Footer   panel.Footer   `yaml:"footer"`
	Insets   []Inset        `yaml:"insets,omitempty"`
}

// Scene places the 3D viewport on the page and aims the camera.
type Scene struct {
	Rect   [4]float64 `yaml:"rect,flow"`
	Elev   float64    `yaml:"elev"`
	Azim   float64    `yaml:"azim"`
	Aspect [3]float64 `yaml:"aspect,flow"`
	XLim   [2]float64 `yaml:"xlim,flow"`
	YLim   [2]float64 `yaml:"ylim,flow"`
	ZLim   [2]float64 `yaml:"zlim,flow"`
}

// Camera converts the scene placement into a render camera.
func (s Scene) Camera() render.Camera {
	return render.Camera{
		Elev: s.Elev,
		Azim: s.Azim,
		Limits: render.Bounds{
			X0: s.XLim[0], X1: s.XLim[1],
			Y0: s.YLim[0], Y1: s.YLim[1],
			Z0: s.ZLim[0], Z1: s.ZLim[1],
		},
		Aspect: r3.Vec{X: s.Aspect[0], Y: s.Aspect[1], Z: s.Aspect[2]},
	}
}

// Inset kinds.
const (
	InsetPolar     = "polar"
	InsetCoverage  = "coverage"
	InsetSchematic = "schematic"
	InsetBar       = "bar"
	InsetPie       = "pie"
)

// Inset is one statistics tile along the bottom edge. Kind selects the
// drawing; the other fields apply where they make sense for it.
type Inset struct {
	Kind       string       `yaml:"kind"`
	Rect       [4]float64   `yaml:"rect,flow"`
	Title      string       `yaml:"title,omitempty"`
	TitleColor string       `yaml:"title_color,omitempty"`
	Values     []InsetValue `yaml:"values,omitempty"`
	YMax       float64      `yaml:"ymax,omitempty"`
	Badges     []Badge      `yaml:"badges,omitempty"`
	Rings      []InsetRing  `yaml:"rings,omitempty"`
	Note       string       `yaml:"note,omitempty"`
	Legend     []InsetValue `yaml:"legend,omitempty"`
	LegendRect [4]float64   `yaml:"legend_rect,flow,omitempty"`
	Loop       string       `yaml:"loop,omitempty"`
	BankA      string       `yaml:"bank_a,omitempty"`
	BankB      string       `yaml:"bank_b,omitempty"`
	Motor      string       `yaml:"motor,omitempty"`
	Controller string       `yaml:"controller,omitempty"`
}

// InsetValue is one bar or pie slice.
type InsetValue struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
	Color string  `yaml:"color,omitempty"`
}

// InsetRing is one coverage circle.
type InsetRing struct {
	Km    float64 `yaml:"km"`
	Alpha float64 `yaml:"alpha"`
}

// Badge is a gold callout drawn over a chart inset. X and Y are
// fractions of the inset rectangle from its bottom-left corner.
type Badge struct {
	Text string  `yaml:"text"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Validate reports the first problem that would make the poster
// unrenderable.
func (d Definition) Validate() error {
	if d.Name == "" || d.File == "" {
		return fmt.Errorf("%w: name and file are required", ErrBadDefinition)
	}
	if d.WidthIn <= 0 || d.HeightIn <= 0 {
		return fmt.Errorf("%w %s: page size must be positive", ErrBadDefinition, d.Name)
	}
	if _, err := theme.Get(d.Palette); err != nil {
		return fmt.Errorf("%w %s: %v", ErrBadDefinition, d.Name, err)
	}
	if _, err := vehicle.ParseStyle(d.Vehicle); err != nil {
		return fmt.Errorf("%w %s: %v", ErrBadDefinition, d.Name, err)
	}
	if err := d.Antenna.Validate(); err != nil {
		return fmt.Errorf("%w %s: %v", ErrBadDefinition, d.Name, err)
	}
	if len(d.Spec.Rows) == 0 {
		return fmt.Errorf("%w %s: empty specification table", ErrBadDefinition, d.Name)
	}
	if len(d.Guide.Steps) == 0 {
		return fmt.Errorf("%w %s: empty installation guide", ErrBadDefinition, d.Name)
	}
	for _, in := range d.Insets {
		switch in.Kind {
		case InsetPolar, InsetCoverage, InsetSchematic:
		case InsetBar, InsetPie:
			if len(in.Values) < 2 {
				return fmt.Errorf("%w %s: %s inset needs at least two values", ErrBadDefinition, d.Name, in.Kind)
			}
		default:
			return fmt.Errorf("%w %s: unknown inset kind %q", ErrBadDefinition, d.Name, in.Kind)
		}
	}
	if err := d.checkColors(); err != nil {
		return fmt.Errorf("%w %s: %v", ErrBadDefinition, d.Name, err)
	}
	return nil
}

// checkColors verifies every color string the painters will parse, so a
// bad hex in a loaded catalog fails at load time instead of mid render.
func (d Definition) checkColors() error {
	check := func(field, s string) error {
		if s == "" {
			return nil
		}
		if _, err := theme.ParseHex(s); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		return nil
	}
	for _, col := range d.Spec.Columns {
		if err := check("column color", col.Color); err != nil {
			return err
		}
	}
	for _, row := range d.Spec.Rows {
		for _, s := range row.Colors {
			if err := check("row color", s); err != nil {
				return err
			}
		}
	}
	for _, in := range d.Insets {
		if err := check("inset title color", in.TitleColor); err != nil {
			return err
		}
		for _, v := range in.Values {
			if err := check("inset value color", v.Color); err != nil {
				return err
			}
		}
		for _, v := range in.Legend {
			if err := check("legend color", v.Color); err != nil {
				return err
			}
		}
	}
	return nil
}

type file struct {
	Posters []Definition `yaml:"posters"`
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) ([]Definition, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Posters) == 0 {
		return nil, fmt.Errorf("%w: catalog has no posters", ErrBadDefinition)
	}
	seen := make(map[string]bool)
	for _, d := range f.Posters {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("%w: duplicate poster %q", ErrBadDefinition, d.Name)
		}
		seen[d.Name] = true
	}
	return f.Posters, nil
}

// Load reads a catalog document from r.
func Load(r io.Reader) ([]Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

var builtinOnce = sync.OnceValues(func() ([]Definition, error) {
	return Parse(builtin)
})

// All returns the built-in posters in catalog order.
func All() ([]Definition, error) {
	return builtinOnce()
}

// Get returns one built-in poster by name.
func Get(name string) (Definition, error) {
	defs, err := All()
	if err != nil {
		return Definition{}, err
	}
	for _, d := range defs {
		if d.Name == name {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Names returns the built-in poster names in catalog order.
func Names() ([]string, error) {
	defs, err := All()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	return names, nil
}
