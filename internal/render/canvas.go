package render

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/posterforge/nvisposter/internal/theme"
)

// VAlign selects vertical text anchoring.
type VAlign int

const (
	VMiddle VAlign = iota
	VTop
	VBottom
)

// HAlign selects horizontal text anchoring.
type HAlign int

const (
	HCenter HAlign = iota
	HLeft
	HRight
)

// Pt is a point in canvas pixels.
type Pt struct {
	X, Y float64
}

// TextStyle describes one block of poster text. Size is in points and
// scales with the canvas DPI like every other point-based measure.
type TextStyle struct {
	Size    float64
	Color   color.NRGBA
	Bold    bool
	HAlign  HAlign
	VAlign  VAlign
	LineGap float64 // extra leading as a fraction of the line height
}

// Canvas is a raster drawing surface of fixed physical size. All
// style measures (line widths, font sizes, pads, dash patterns) are
// given in points and converted through the canvas DPI, so poster
// definitions stay resolution independent.
//
// A canvas is not safe for concurrent use; each render owns one.
type Canvas struct {
	dc    *gg.Context
	dpi   float64
	w     int
	h     int
	faces map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

// NewCanvas allocates a canvas of the given physical size filled with
// the background color.
func NewCanvas(widthIn, heightIn, dpi float64, bg color.NRGBA) *Canvas {
	w := int(math.Round(widthIn * dpi))
	h := int(math.Round(heightIn * dpi))
	dc := gg.NewContext(w, h)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc, dpi: dpi, w: w, h: h, faces: map[faceKey]font.Face{}}
}

func (c *Canvas) face(size float64, bold bool) font.Face {
	key := faceKey{size: size, bold: bold}
	f, ok := c.faces[key]
	if !ok {
		f = theme.NewFace(size, c.dpi, bold)
		c.faces[key] = f
	}
	return f
}

// DPI returns the raster resolution.
func (c *Canvas) DPI() float64 { return c.dpi }

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// Px converts points to pixels at the canvas DPI.
func (c *Canvas) Px(points float64) float64 {
	return points * c.dpi / 72
}

// FigRect converts a figure-fraction rectangle with a bottom-left
// origin into a pixel rectangle.
func (c *Canvas) FigRect(fx, fy, fw, fh float64) Rect {
	return Rect{
		X: fx * float64(c.w),
		Y: (1 - fy - fh) * float64(c.h),
		W: fw * float64(c.w),
		H: fh * float64(c.h),
	}
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// FillRect fills a pixel rectangle.
func (c *Canvas) FillRect(r Rect, fill color.NRGBA) {
	c.dc.SetColor(fill)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.Fill()
}

// StrokeRect outlines a pixel rectangle with a line width in points.
func (c *Canvas) StrokeRect(r Rect, edge color.NRGBA, width float64) {
	c.dc.SetColor(edge)
	c.dc.SetLineWidth(c.Px(width))
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.Stroke()
}

// RoundedBox draws a rounded rectangle, filled and optionally edged.
// radius and width are in points.
func (c *Canvas) RoundedBox(r Rect, radius float64, fill, edge color.NRGBA, width float64) {
	rad := math.Min(c.Px(radius), math.Min(r.W, r.H)/2)
	c.dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, rad)
	c.dc.SetColor(fill)
	if edge.A > 0 && width > 0 {
		c.dc.FillPreserve()
		c.dc.SetColor(edge)
		c.dc.SetLineWidth(c.Px(width))
		c.dc.Stroke()
	} else {
		c.dc.Fill()
	}
}

// RoundedBoxPx is RoundedBox with the corner radius in pixels.
func (c *Canvas) RoundedBoxPx(r Rect, radius float64, fill, edge color.NRGBA, width float64) {
	rad := math.Min(radius, math.Min(r.W, r.H)/2)
	c.dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, rad)
	c.dc.SetColor(fill)
	if edge.A > 0 && width > 0 {
		c.dc.FillPreserve()
		c.dc.SetColor(edge)
		c.dc.SetLineWidth(c.Px(width))
		c.dc.Stroke()
	} else {
		c.dc.Fill()
	}
}

// FillPoly fills a polygon given in pixel coordinates.
func (c *Canvas) FillPoly(pts []Pt, fill color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	c.path(pts, true)
	c.dc.SetColor(fill)
	c.dc.Fill()
}

// StrokePoly outlines a closed polygon with a line width in points.
func (c *Canvas) StrokePoly(pts []Pt, edge color.NRGBA, width float64) {
	if len(pts) < 2 {
		return
	}
	c.path(pts, true)
	c.stroke(edge, width, nil)
}

// Polyline draws an open round-capped path. width is in points, dash
// is an on/off pattern in points (nil draws solid).
func (c *Canvas) Polyline(pts []Pt, col color.NRGBA, width float64, dash []float64) {
	if len(pts) < 2 {
		return
	}
	c.path(pts, false)
	c.stroke(col, width, dash)
}

// Disc draws a filled circle with a pixel-space center and a radius in
// points.
func (c *Canvas) Disc(x, y, radius float64, fill, edge color.NRGBA, width float64) {
	c.dc.DrawCircle(x, y, c.Px(radius))
	c.dc.SetColor(fill)
	if edge.A > 0 && width > 0 {
		c.dc.FillPreserve()
		c.dc.SetColor(edge)
		c.dc.SetLineWidth(c.Px(width))
		c.dc.Stroke()
	} else {
		c.dc.Fill()
	}
}

// CirclePx strokes a circle with radius given in pixels.
func (c *Canvas) CirclePx(x, y, radius float64, col color.NRGBA, width float64, dash []float64) {
	c.dc.DrawCircle(x, y, radius)
	c.stroke(col, width, dash)
}

// FillCirclePx fills a circle with radius given in pixels.
func (c *Canvas) FillCirclePx(x, y, radius float64, fill color.NRGBA) {
	c.dc.DrawCircle(x, y, radius)
	c.dc.SetColor(fill)
	c.dc.Fill()
}

// Text draws a block of text anchored at a pixel position. Newlines
// split the block into left/center/right aligned lines per the style.
func (c *Canvas) Text(x, y float64, s string, st TextStyle) {
	face := c.face(st.Size, st.Bold)
	c.dc.SetFontFace(face)
	c.dc.SetColor(st.Color)
	lines := strings.Split(s, "\n")
	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	lineH := (float64(m.Height) / 64) * (1 + st.LineGap)
	total := lineH * float64(len(lines))
	var top float64
	switch st.VAlign {
	case VTop:
		top = y
	case VBottom:
		top = y - total
	default:
		top = y - total/2
	}
	for i, line := range lines {
		w, _ := c.dc.MeasureString(line)
		lx := x
		switch st.HAlign {
		case HCenter:
			lx -= w / 2
		case HRight:
			lx -= w
		}
		c.dc.DrawString(line, lx, top+lineH*float64(i)+ascent)
	}
}

// MeasureText returns the pixel width and height of a text block and
// the line height used.
func (c *Canvas) MeasureText(s string, st TextStyle) (w, h, lineH float64) {
	face := c.face(st.Size, st.Bold)
	c.dc.SetFontFace(face)
	m := face.Metrics()
	lineH = (float64(m.Height) / 64) * (1 + st.LineGap)
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		lw, _ := c.dc.MeasureString(line)
		w = math.Max(w, lw)
	}
	return w, lineH * float64(len(lines)), lineH
}

// Clipped runs fn with all drawing clipped to r, the way figure axes
// clip their content.
func (c *Canvas) Clipped(r Rect, fn func()) {
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.Clip()
	fn()
	c.dc.ResetClip()
}

// Compose scales an image to a pixel rectangle and draws it onto the
// canvas.
func (c *Canvas) Compose(im image.Image, r Rect) {
	scaled := transform.Resize(im, int(math.Round(r.W)), int(math.Round(r.H)), transform.Linear)
	c.dc.DrawImage(scaled, int(math.Round(r.X)), int(math.Round(r.Y)))
}

func (c *Canvas) path(pts []Pt, closed bool) {
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	if closed {
		c.dc.ClosePath()
	}
}

func (c *Canvas) stroke(col color.NRGBA, width float64, dash []float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(c.Px(width))
	c.dc.SetLineCapRound()
	if len(dash) > 0 {
		px := make([]float64, len(dash))
		for i, d := range dash {
			// dash patterns scale with the line width like the
			// poster designs expect
			px[i] = c.Px(d * math.Max(width, 1))
		}
		c.dc.SetDash(px...)
	}
	c.dc.Stroke()
	c.dc.SetDash()
}
