package theme

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// The posters use a single sans family in two weights. Both faces ship
// embedded so renders do not depend on system fonts.

var (
	parseOnce sync.Once
	regular   *truetype.Font
	bold      *truetype.Font
)

func parseFonts() {
	var err error
	regular, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
	bold, err = truetype.Parse(gobold.TTF)
	if err != nil {
		panic(err)
	}
}

// Regular returns the parsed regular weight, used by chart rendering
// which needs the raw font rather than a face.
func Regular() *truetype.Font {
	parseOnce.Do(parseFonts)
	return regular
}

// Bold returns the parsed bold weight.
func Bold() *truetype.Font {
	parseOnce.Do(parseFonts)
	return bold
}

// NewFace creates a font.Face for the given point size at the given
// raster DPI. Faces keep an internal glyph cache that is not safe for
// concurrent use, so every canvas gets its own.
func NewFace(points, dpi float64, useBold bool) font.Face {
	parseOnce.Do(parseFonts)
	src := regular
	if useBold {
		src = bold
	}
	return truetype.NewFace(src, &truetype.Options{
		Size:    points,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}
