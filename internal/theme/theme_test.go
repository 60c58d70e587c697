package theme_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posterforge/nvisposter/internal/theme"
)

func TestGet(t *testing.T) {
	t.Run("can fetch a built-in palette", func(t *testing.T) {
		p, err := theme.Get("navy")
		require.NoError(t, err)
		assert.Equal(t, "navy", p.Name)
		assert.Equal(t, theme.MustHex("#0d1b2a"), p.Background)
		assert.Equal(t, theme.MustHex("#b5651d"), p.Copper)
	})
	t.Run("should report unknown names", func(t *testing.T) {
		_, err := theme.Get("neon")
		assert.ErrorIs(t, err, theme.ErrUnknownPalette)
	})
	t.Run("should list all built-ins", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"navy", "midnight", "slate"}, theme.Names())
	})
}

func TestParseHex(t *testing.T) {
	t.Run("can parse six digit colors", func(t *testing.T) {
		c, err := theme.ParseHex("#ffd600")
		require.NoError(t, err)
		assert.Equal(t, color.NRGBA{R: 0xff, G: 0xd6, B: 0x00, A: 0xff}, c)
	})
	t.Run("can parse colors with alpha", func(t *testing.T) {
		c, err := theme.ParseHex("#4fc3f780")
		require.NoError(t, err)
		assert.Equal(t, color.NRGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0x80}, c)
	})
	t.Run("can parse short colors", func(t *testing.T) {
		c, err := theme.ParseHex("#f0a")
		require.NoError(t, err)
		assert.Equal(t, color.NRGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0xff}, c)
	})
	t.Run("should reject malformed input", func(t *testing.T) {
		_, err := theme.ParseHex("#12345")
		assert.Error(t, err)
		_, err = theme.ParseHex("red")
		assert.Error(t, err)
	})
}

func TestAlpha(t *testing.T) {
	t.Run("can scale the alpha channel", func(t *testing.T) {
		c := theme.Alpha(color.NRGBA{R: 10, A: 200}, 0.5)
		assert.Equal(t, uint8(100), c.A)
		assert.Equal(t, uint8(10), c.R)
	})
	t.Run("should clamp the factor", func(t *testing.T) {
		assert.Equal(t, uint8(0), theme.Alpha(color.NRGBA{A: 99}, -1).A)
		assert.Equal(t, uint8(99), theme.Alpha(color.NRGBA{A: 99}, 7).A)
	})
}

func TestFonts(t *testing.T) {
	t.Run("can create faces in both weights", func(t *testing.T) {
		r := theme.NewFace(14, 200, false)
		b := theme.NewFace(14, 200, true)
		require.NotNil(t, r)
		require.NotNil(t, b)
	})
	t.Run("should scale faces with DPI", func(t *testing.T) {
		small := theme.NewFace(12, 72, false)
		large := theme.NewFace(12, 200, false)
		assert.Greater(t, large.Metrics().Height, small.Metrics().Height)
	})
	t.Run("can parse both embedded fonts", func(t *testing.T) {
		assert.NotNil(t, theme.Regular())
		assert.NotNil(t, theme.Bold())
	})
}
