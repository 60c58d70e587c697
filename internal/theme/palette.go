// Package theme holds the shared poster palettes and the embedded
// typefaces all drawing goes through.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var ErrUnknownPalette = errors.New("unknown palette")

// Palette is the color vocabulary of one poster family. Values mirror
// the print designs: a near-black page, a slightly lighter scene fill
// and warm copper tones for the antenna conductor.
type Palette struct {
	Name       string
	Background color.NRGBA // page background
	SceneFill  color.NRGBA // 3D viewport background
	BannerFill color.NRGBA // title banner and footer strip

	Copper       color.NRGBA
	CopperHi     color.NRGBA
	CopperDark   color.NRGBA
	CopperCouple color.NRGBA

	AccentBlue  color.NRGBA
	AccentRed   color.NRGBA
	AccentGreen color.NRGBA
	Gold        color.NRGBA
	Cyan        color.NRGBA
	CyanLight   color.NRGBA

	TextLight color.NRGBA
	TextDark  color.NRGBA

	PanelSpec  color.NRGBA // specification panel background
	PanelGuide color.NRGBA // installation guide panel background
}

var palettes = map[string]Palette{
	"navy":     newPalette("navy", "#0d1b2a", "#162236", "#1565c0"),
	"midnight": newPalette("midnight", "#0a1628", "#111d30", "#0d47a1"),
	"slate":    newPalette("slate", "#080e1a", "#0f1a2e", "#0d47a1"),
}

func newPalette(name, bg, scene, banner string) Palette {
	return Palette{
		Name:         name,
		Background:   MustHex(bg),
		SceneFill:    MustHex(scene),
		BannerFill:   MustHex(banner),
		Copper:       MustHex("#b5651d"),
		CopperHi:     MustHex("#e8a54a"),
		CopperDark:   MustHex("#8b4513"),
		CopperCouple: MustHex("#a0522d"),
		AccentBlue:   MustHex("#1565c0"),
		AccentRed:    MustHex("#c62828"),
		AccentGreen:  MustHex("#2e7d32"),
		Gold:         MustHex("#ffd600"),
		Cyan:         MustHex("#00838f"),
		CyanLight:    MustHex("#4dd0e1"),
		TextLight:    MustHex("#e0e0e0"),
		TextDark:     MustHex("#1a1a2e"),
		PanelSpec:    MustHex("#e3f2fd"),
		PanelGuide:   MustHex("#fff3e0"),
	}
}

// Get returns a palette by name.
func Get(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %s", ErrUnknownPalette, name)
	}
	return p, nil
}

// Names returns the palette names in no particular order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	return names
}

// ParseHex parses #rgb, #rrggbb and #rrggbbaa color strings.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("malformed hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("malformed hex color %q: %w", s, err)
	}
	c := color.NRGBA{A: 0xff}
	if len(h) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}

// MustHex is ParseHex for compile-time constants and panics on bad
// input.
func MustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Alpha returns c with its alpha channel scaled by a (0..1).
func Alpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A) * a)
	return c
}
