// Generates a swatch sheet of all poster palettes as a PNG, for
// checking palette edits without rendering a full poster.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"
	"sort"

	"github.com/posterforge/nvisposter/internal/render"
	"github.com/posterforge/nvisposter/internal/theme"
)

var outFlag = flag.String("o", "swatches.png", "output file")

type swatch struct {
	label string
	pick  func(theme.Palette) color.NRGBA
}

var swatches = []swatch{
	{"Background", func(p theme.Palette) color.NRGBA { return p.Background }},
	{"SceneFill", func(p theme.Palette) color.NRGBA { return p.SceneFill }},
	{"BannerFill", func(p theme.Palette) color.NRGBA { return p.BannerFill }},
	{"Copper", func(p theme.Palette) color.NRGBA { return p.Copper }},
	{"CopperHi", func(p theme.Palette) color.NRGBA { return p.CopperHi }},
	{"CopperDark", func(p theme.Palette) color.NRGBA { return p.CopperDark }},
	{"CopperCouple", func(p theme.Palette) color.NRGBA { return p.CopperCouple }},
	{"AccentBlue", func(p theme.Palette) color.NRGBA { return p.AccentBlue }},
	{"AccentRed", func(p theme.Palette) color.NRGBA { return p.AccentRed }},
	{"AccentGreen", func(p theme.Palette) color.NRGBA { return p.AccentGreen }},
	{"Gold", func(p theme.Palette) color.NRGBA { return p.Gold }},
	{"Cyan", func(p theme.Palette) color.NRGBA { return p.Cyan }},
	{"CyanLight", func(p theme.Palette) color.NRGBA { return p.CyanLight }},
	{"TextLight", func(p theme.Palette) color.NRGBA { return p.TextLight }},
	{"TextDark", func(p theme.Palette) color.NRGBA { return p.TextDark }},
	{"PanelSpec", func(p theme.Palette) color.NRGBA { return p.PanelSpec }},
	{"PanelGuide", func(p theme.Palette) color.NRGBA { return p.PanelGuide }},
}

const (
	cellW   = 110.0
	cellH   = 70.0
	labelW  = 120.0
	headerH = 40.0
)

func main() {
	flag.Parse()
	names := theme.Names()
	sort.Strings(names)

	widthPx := labelW + cellW*float64(len(names))
	heightPx := headerH + cellH*float64(len(swatches))
	c := render.NewCanvas(widthPx/100, heightPx/100, 100, theme.MustHex("#202020"))

	white := theme.MustHex("#ffffff")
	for col, name := range names {
		c.Text(labelW+cellW*(float64(col)+0.5), headerH/2, name,
			render.TextStyle{Size: 14, Color: white, Bold: true})
	}
	for row, sw := range swatches {
		y := headerH + cellH*float64(row)
		c.Text(8, y+cellH/2, sw.label,
			render.TextStyle{Size: 11, Color: white, HAlign: render.HLeft})
		for col, name := range names {
			p, err := theme.Get(name)
			if err != nil {
				log.Fatal(err)
			}
			r := render.Rect{X: labelW + cellW*float64(col) + 5, Y: y + 5, W: cellW - 10, H: cellH - 10}
			c.FillRect(r, sw.pick(p))
			c.StrokeRect(r, white, 1)
		}
	}

	f, err := os.Create(*outFlag)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, c.Image()); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Saved: %s\n", *outFlag)
}
