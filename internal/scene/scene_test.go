package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/posterforge/nvisposter/internal/scene"
	"github.com/posterforge/nvisposter/internal/theme"
)

func TestScene(t *testing.T) {
	t.Run("can collect items in insertion order", func(t *testing.T) {
		// given
		var s scene.Scene
		f := &scene.Face{Pts: []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}}, Z: 2}
		l := &scene.Label{At: r3.Vec{Z: 1}, Text: "NVIS", Z: 20}
		// when
		s.Add(f)
		s.Add(l)
		// then
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, []scene.Item{f, l}, s.Items())
	})
	t.Run("can merge two scenes", func(t *testing.T) {
		var a, b scene.Scene
		a.Add(&scene.Dot{Z: 1})
		b.Add(&scene.Dot{Z: 2}, &scene.Dot{Z: 3})
		a.Merge(&b)
		assert.Equal(t, 3, a.Len())
	})
}

func TestAnchors(t *testing.T) {
	t.Run("face anchor is the centroid", func(t *testing.T) {
		f := &scene.Face{Pts: []r3.Vec{{X: 0}, {X: 2}, {X: 2, Y: 2}, {X: 0, Y: 2}}}
		assert.Equal(t, r3.Vec{X: 1, Y: 1}, f.Anchor())
	})
	t.Run("stroke anchor averages the path", func(t *testing.T) {
		s := &scene.Stroke{Pts: []r3.Vec{{Z: 0}, {Z: 4}}, Color: theme.MustHex("#b5651d")}
		assert.Equal(t, r3.Vec{Z: 2}, s.Anchor())
	})
	t.Run("label anchor is its position", func(t *testing.T) {
		l := &scene.Label{At: r3.Vec{X: 1, Y: 2, Z: 3}}
		assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, l.Anchor())
	})
	t.Run("empty face anchors at origin", func(t *testing.T) {
		assert.Equal(t, r3.Vec{}, (&scene.Face{}).Anchor())
	})
}

func TestLayers(t *testing.T) {
	t.Run("items report their explicit layer", func(t *testing.T) {
		assert.Equal(t, 15, (&scene.Face{Z: 15}).Layer())
		assert.Equal(t, 10, (&scene.Stroke{Z: 10}).Layer())
		assert.Equal(t, 8, (&scene.Dot{Z: 8}).Layer())
		assert.Equal(t, 20, (&scene.Label{Z: 20}).Layer())
	})
}
