package render

import (
	"sort"

	"github.com/posterforge/nvisposter/internal/scene"
	"github.com/posterforge/nvisposter/internal/theme"
)

// Paint projects a scene through the camera and draws it into the
// viewport. Items are painted by ascending layer; within a layer the
// deepest item is painted first so nearer geometry covers it.
func Paint(c *Canvas, s *scene.Scene, cam Camera, vp Rect) {
	pr := NewProjector(cam, vp)
	items := s.Items()

	type entry struct {
		item  scene.Item
		depth float64
		seq   int
	}
	entries := make([]entry, len(items))
	for i, it := range items {
		entries[i] = entry{item: it, depth: pr.Depth(it.Anchor()), seq: i}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.item.Layer() != b.item.Layer() {
			return a.item.Layer() < b.item.Layer()
		}
		if a.depth != b.depth {
			return a.depth < b.depth
		}
		return a.seq < b.seq
	})

	// Geometry is clipped at the viewport like axes content. Labels
	// are not, so callouts near the edge stay whole.
	c.Clipped(vp, func() {
		for _, e := range entries {
			switch it := e.item.(type) {
			case *scene.Face:
				paintFace(c, pr, it)
			case *scene.Stroke:
				paintStroke(c, pr, it)
			case *scene.Dot:
				paintDot(c, pr, it)
			}
		}
	})
	for _, e := range entries {
		if it, ok := e.item.(*scene.Label); ok {
			paintLabel(c, pr, it)
		}
	}
}

func paintFace(c *Canvas, pr *Projector, f *scene.Face) {
	pts := make([]Pt, len(f.Pts))
	for i, p := range f.Pts {
		x, y := pr.Point(p)
		pts[i] = Pt{X: x, Y: y}
	}
	a := alphaOrOne(f.Alpha)
	c.FillPoly(pts, theme.Alpha(f.Fill, a))
	if f.EdgeWidth > 0 && f.Edge.A > 0 {
		c.StrokePoly(pts, theme.Alpha(f.Edge, a), f.EdgeWidth)
	}
}

func paintStroke(c *Canvas, pr *Projector, s *scene.Stroke) {
	pts := make([]Pt, len(s.Pts))
	for i, p := range s.Pts {
		x, y := pr.Point(p)
		pts[i] = Pt{X: x, Y: y}
	}
	c.Polyline(pts, theme.Alpha(s.Color, alphaOrOne(s.Alpha)), s.Width, s.Dash)
}

func paintDot(c *Canvas, pr *Projector, d *scene.Dot) {
	x, y := pr.Point(d.At)
	a := alphaOrOne(d.Alpha)
	edge := theme.Alpha(d.Edge, a)
	c.Disc(x, y, d.Radius, theme.Alpha(d.Fill, a), edge, 1)
}

func paintLabel(c *Canvas, pr *Projector, l *scene.Label) {
	x, y := pr.Point(l.At)
	st := TextStyle{
		Size:    l.Size,
		Color:   l.Color,
		Bold:    l.Bold,
		HAlign:  halign(l.HAlign),
		VAlign:  VMiddle,
		LineGap: l.LineGap,
	}
	if l.Box != nil {
		w, h, _ := c.MeasureText(l.Text, st)
		pad := c.Px(l.Box.Pad)
		r := Rect{W: w + 2*pad, H: h + 2*pad}
		switch st.HAlign {
		case HCenter:
			r.X = x - r.W/2
		case HLeft:
			r.X = x - pad
		case HRight:
			r.X = x - r.W + pad
		}
		r.Y = y - r.H/2
		a := l.Box.Alpha
		if a == 0 {
			a = 1
		}
		c.RoundedBox(r, l.Box.Pad+2, theme.Alpha(l.Box.Fill, a), l.Box.Edge, l.Box.EdgeWidth)
	}
	c.Text(x, y, l.Text, st)
}

func halign(a scene.Align) HAlign {
	switch a {
	case scene.AlignLeft:
		return HLeft
	case scene.AlignRight:
		return HRight
	default:
		return HCenter
	}
}

func alphaOrOne(a float64) float64 {
	if a == 0 {
		return 1
	}
	return a
}
