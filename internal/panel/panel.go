// Package panel renders the flat print surfaces of a poster: the
// specification table, the numbered installation guide, the title
// banner and the footer strip. Panels address their content on a
// 10 x 10 grid inside a figure-fraction rectangle, so the catalog can
// position text the same way on every poster size.
package panel

import (
	"image/color"

	"github.com/posterforge/nvisposter/internal/render"
	"github.com/posterforge/nvisposter/internal/theme"
)

// Table is the key-specifications panel. Two-column tables carry one
// value per row, right aligned. Band-comparison tables declare Columns
// and get a header bar, centered values and vertical dividers.
type Table struct {
	Rect       [4]float64 `yaml:"rect,flow"`
	Title      string     `yaml:"title"`
	TitleSize  float64    `yaml:"title_size"`
	TitleY     float64    `yaml:"title_y"`
	Columns    []Column   `yaml:"columns,omitempty"`
	HeaderY    float64    `yaml:"header_y,omitempty"`
	HeaderH    float64    `yaml:"header_h,omitempty"`
	HeaderSize float64    `yaml:"header_size,omitempty"`
	Dividers   []float64  `yaml:"dividers,flow,omitempty"`
	Rows       []Row      `yaml:"rows"`
	RowY0      float64    `yaml:"row_y0"`
	RowDY      float64    `yaml:"row_dy"`
	RowH       float64    `yaml:"row_h"`
	RowOff     float64    `yaml:"row_off"`
	Size       float64    `yaml:"size"`
	Note       *Strip     `yaml:"note,omitempty"`
}

// Column heads one band column of a comparison table.
type Column struct {
	Title string  `yaml:"title"`
	X     float64 `yaml:"x"`
	Color string  `yaml:"color"`
}

// Row is one table line. Highlight rows get a green tint and bold
// values; Colors optionally overrides the text color per value.
type Row struct {
	Label     string   `yaml:"label"`
	Values    []string `yaml:"values,flow"`
	Highlight bool     `yaml:"highlight,omitempty"`
	Colors    []string `yaml:"colors,flow,omitempty"`
}

// Guide is the numbered build-and-installation panel.
type Guide struct {
	Rect      [4]float64 `yaml:"rect,flow"`
	Title     string     `yaml:"title"`
	TitleSize float64    `yaml:"title_size"`
	TitleY    float64    `yaml:"title_y"`
	Steps     []Step     `yaml:"steps"`
	RowY0     float64    `yaml:"row_y0"`
	RowDY     float64    `yaml:"row_dy"`
	RowH      float64    `yaml:"row_h"`
	RowOff    float64    `yaml:"row_off"`
	BadgeX    float64    `yaml:"badge_x"`
	BadgeR    float64    `yaml:"badge_r"`
	NumSize   float64    `yaml:"num_size"`
	TextX     float64    `yaml:"text_x"`
	TextDY    float64    `yaml:"text_dy"`
	StepSize  float64    `yaml:"step_size"`
	DescSize  float64    `yaml:"desc_size"`
	Strips    []Strip    `yaml:"strips,omitempty"`
}

// Step is one numbered guide entry.
type Step struct {
	Num   string `yaml:"num"`
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

// Strip is a boxed one-liner under a panel: a bill of materials, an
// all-clear or warning note, or a key-facts summary.
type Strip struct {
	Text string  `yaml:"text"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
	Kind string  `yaml:"kind"`
}

// Strip kinds.
const (
	StripBOM  = "bom"
	StripOK   = "ok"
	StripWarn = "warn"
	StripNote = "note"
)

// Banner is the full-width title bar at the top of the page.
type Banner struct {
	Rect      [4]float64 `yaml:"rect,flow"`
	Title     string     `yaml:"title"`
	TitleSize float64    `yaml:"title_size"`
	TitleY    float64    `yaml:"title_y"`
	Subtitle  string     `yaml:"subtitle"`
	SubSize   float64    `yaml:"sub_size"`
	SubY      float64    `yaml:"sub_y"`
}

// Footer is the narrow identification strip at the bottom.
type Footer struct {
	Rect  [4]float64 `yaml:"rect,flow"`
	Text  string     `yaml:"text"`
	Size  float64    `yaml:"size"`
	TextY float64    `yaml:"text_y"`
}

// Painter draws panels onto one canvas with one palette.
type Painter struct {
	c   *render.Canvas
	pal theme.Palette
}

func New(c *render.Canvas, pal theme.Palette) *Painter {
	return &Painter{c: c, pal: pal}
}

// patches carry a thin dark default edge
var patchEdge = theme.MustHex("#000000")

// grid maps 10 x 10 panel coordinates into a pixel rectangle.
type grid struct {
	r      render.Rect
	sx, sy float64
}

func (p *Painter) grid(rect [4]float64) grid {
	r := p.c.FigRect(rect[0], rect[1], rect[2], rect[3])
	return grid{r: r, sx: r.W / 10, sy: r.H / 10}
}

func (g grid) pt(u, v float64) (x, y float64) {
	return g.r.X + u*g.sx, g.r.Y + (10-v)*g.sy
}

// rect converts a panel-space box with a bottom-left anchor.
func (g grid) rect(u, v, w, h float64) render.Rect {
	return render.Rect{X: g.r.X + u*g.sx, Y: g.r.Y + (10-v-h)*g.sy, W: w * g.sx, H: h * g.sy}
}

// box draws a rounded panel box the way the print patches do: the
// rectangle grows by pad on every side and the pad doubles as the
// corner radius. pad is in panel units.
func (p *Painter) box(g grid, r render.Rect, pad float64, fill color.NRGBA, alpha float64) {
	pp := pad * g.sx
	er := render.Rect{X: r.X - pp, Y: r.Y - pp, W: r.W + 2*pp, H: r.H + 2*pp}
	p.c.RoundedBoxPx(er, pp, theme.Alpha(fill, alpha), theme.Alpha(patchEdge, alpha), 1)
}

func (p *Painter) frame(rect [4]float64, bg, border color.NRGBA) grid {
	g := p.grid(rect)
	p.c.FillRect(g.r, bg)
	p.c.StrokeRect(g.r, border, 2.5)
	return g
}

// Table renders the specifications panel.
func (p *Painter) Table(t Table) {
	g := p.frame(t.Rect, p.pal.PanelSpec, p.pal.AccentBlue)
	x, y := g.pt(5, t.TitleY)
	p.c.Text(x, y, t.Title, render.TextStyle{
		Size: t.TitleSize, Color: p.pal.TextDark, Bold: true,
		HAlign: render.HCenter, VAlign: render.VTop,
	})
	if len(t.Columns) > 0 {
		p.box(g, g.rect(0.1, t.HeaderY, 9.8, t.HeaderH), 0.06, theme.MustHex("#0d47a1"), 0.92)
		hy := t.HeaderY + t.HeaderH/2
		hx, hyy := g.pt(0.3, hy)
		p.c.Text(hx, hyy, "Parameter", render.TextStyle{
			Size: t.HeaderSize, Color: theme.MustHex("#ffffff"), Bold: true, HAlign: render.HLeft,
		})
		for _, col := range t.Columns {
			cx, cy := g.pt(col.X, hy)
			p.c.Text(cx, cy, col.Title, render.TextStyle{
				Size: t.HeaderSize, Color: theme.MustHex(col.Color), Bold: true, HAlign: render.HCenter,
			})
		}
	}
	for i, row := range t.Rows {
		ry := t.RowY0 - float64(i)*t.RowDY
		fill := rowFill(i, row.Highlight)
		alpha := 0.7
		if len(t.Columns) > 0 {
			alpha = 0.75
		}
		p.box(g, g.rect(0.1, ry-t.RowOff, 9.8, t.RowH), 0.04, fill, alpha)
		lx, ly := g.pt(0.3, ry)
		p.c.Text(lx, ly, row.Label, render.TextStyle{
			Size: t.Size, Color: p.pal.TextDark, Bold: true, HAlign: render.HLeft,
		})
		for j, v := range row.Values {
			vc := p.pal.TextDark
			if j < len(row.Colors) && row.Colors[j] != "" {
				vc = theme.MustHex(row.Colors[j])
			}
			st := render.TextStyle{Size: t.Size, Color: vc, Bold: row.Highlight}
			if len(t.Columns) == 0 {
				st.HAlign = render.HRight
				vx, vy := g.pt(9.7, ry)
				p.c.Text(vx, vy, v, st)
				continue
			}
			st.HAlign = render.HCenter
			vx, vy := g.pt(t.Columns[j].X, ry)
			p.c.Text(vx, vy, v, st)
		}
	}
	divCol := theme.Alpha(theme.MustHex("#90caf9"), 0.5)
	for _, dx := range t.Dividers {
		x0, y0 := g.pt(dx, 0.2)
		x1, y1 := g.pt(dx, t.HeaderY)
		p.c.Polyline([]render.Pt{{X: x0, Y: y0}, {X: x1, Y: y1}}, divCol, 1.5, nil)
	}
	if t.Note != nil {
		p.strip(g, *t.Note)
	}
}

func rowFill(i int, highlight bool) color.NRGBA {
	if highlight {
		if i%2 == 0 {
			return theme.MustHex("#c8e6c9")
		}
		return theme.MustHex("#e8f5e9")
	}
	if i%2 == 0 {
		return theme.MustHex("#bbdefb")
	}
	return theme.MustHex("#ffffff")
}

// Guide renders the installation panel.
func (p *Painter) Guide(gd Guide) {
	g := p.frame(gd.Rect, p.pal.PanelGuide, theme.MustHex("#ff9800"))
	x, y := g.pt(5, gd.TitleY)
	p.c.Text(x, y, gd.Title, render.TextStyle{
		Size: gd.TitleSize, Color: p.pal.TextDark, Bold: true,
		HAlign: render.HCenter, VAlign: render.VTop,
	})
	for i, step := range gd.Steps {
		ry := gd.RowY0 - float64(i)*gd.RowDY
		fill := theme.MustHex("#ffffff")
		if i%2 == 0 {
			fill = theme.MustHex("#ffe0b2")
		}
		p.box(g, g.rect(0.2, ry-gd.RowOff, 9.6, gd.RowH), 0.08, fill, 0.6)
		bx, by := g.pt(gd.BadgeX, ry)
		p.c.FillCirclePx(bx, by, gd.BadgeR*g.sx, theme.MustHex("#e65100"))
		p.c.CirclePx(bx, by, gd.BadgeR*g.sx, theme.MustHex("#ffffff"), 2, nil)
		p.c.Text(bx, by, step.Num, render.TextStyle{
			Size: gd.NumSize, Color: theme.MustHex("#ffffff"), Bold: true, HAlign: render.HCenter,
		})
		tx, ty := g.pt(gd.TextX, ry+gd.TextDY)
		p.c.Text(tx, ty, step.Title, render.TextStyle{
			Size: gd.StepSize, Color: theme.MustHex("#bf360c"), Bold: true, HAlign: render.HLeft,
		})
		dx, dy := g.pt(gd.TextX, ry-gd.TextDY)
		p.c.Text(dx, dy, step.Desc, render.TextStyle{
			Size: gd.DescSize, Color: theme.MustHex("#333333"), HAlign: render.HLeft, LineGap: 0.1,
		})
	}
	for _, s := range gd.Strips {
		p.strip(g, s)
	}
}

func (p *Painter) strip(g grid, s Strip) {
	var txt, fill, edge color.NRGBA
	var ew float64
	alpha := 0.9
	switch s.Kind {
	case StripOK:
		txt, fill, edge, ew = theme.MustHex("#1b5e20"), theme.MustHex("#c8e6c9"), theme.MustHex("#2e7d32"), 2
		alpha = 0.95
	case StripWarn:
		txt, fill, edge, ew = theme.MustHex("#b71c1c"), theme.MustHex("#ffcdd2"), theme.MustHex("#b71c1c"), 2
		alpha = 0.95
	case StripNote:
		txt, fill, edge, ew = theme.MustHex("#0d47a1"), theme.MustHex("#e1f5fe"), theme.MustHex("#0d47a1"), 1.5
	default:
		txt, fill, edge, ew = theme.MustHex("#e65100"), theme.MustHex("#fff8e1"), theme.MustHex("#e65100"), 2
	}
	x, y := g.pt(5, s.Y)
	st := render.TextStyle{Size: s.Size, Color: txt, Bold: true, HAlign: render.HCenter}
	w, h, _ := p.c.MeasureText(s.Text, st)
	pad := p.c.Px(s.Size * 0.25)
	r := render.Rect{X: x - w/2 - pad, Y: y - h/2 - pad, W: w + 2*pad, H: h + 2*pad}
	p.c.RoundedBoxPx(r, pad+p.c.Px(2), theme.Alpha(fill, alpha), theme.Alpha(edge, alpha), ew)
	p.c.Text(x, y, s.Text, st)
}

// Banner renders the title bar across the top of the figure.
func (p *Painter) Banner(b Banner) {
	p.bar(b.Rect, 0.008, 0.95)
	w, h := p.c.Size()
	p.c.Text(0.5*float64(w), (1-b.TitleY)*float64(h), b.Title, render.TextStyle{
		Size: b.TitleSize, Color: theme.MustHex("#ffffff"), Bold: true, HAlign: render.HCenter,
	})
	p.c.Text(0.5*float64(w), (1-b.SubY)*float64(h), b.Subtitle, render.TextStyle{
		Size: b.SubSize, Color: p.pal.Gold, Bold: true, HAlign: render.HCenter,
	})
}

// Footer renders the identification strip at the bottom.
func (p *Painter) Footer(f Footer) {
	p.bar(f.Rect, 0.005, 0.85)
	w, h := p.c.Size()
	p.c.Text(0.5*float64(w), (1-f.TextY)*float64(h), f.Text, render.TextStyle{
		Size: f.Size, Color: theme.MustHex("#e3f2fd"), Bold: true, HAlign: render.HCenter,
	})
}

func (p *Painter) bar(rect [4]float64, pad, alpha float64) {
	r := p.c.FigRect(rect[0], rect[1], rect[2], rect[3])
	w, _ := p.c.Size()
	pp := pad * float64(w)
	er := render.Rect{X: r.X - pp, Y: r.Y - pp, W: r.W + 2*pp, H: r.H + 2*pp}
	p.c.RoundedBoxPx(er, pp, theme.Alpha(p.pal.BannerFill, alpha), theme.Alpha(patchEdge, alpha), 1)
}
