package poster_test

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posterforge/nvisposter/internal/catalog"
	"github.com/posterforge/nvisposter/internal/poster"
	"github.com/posterforge/nvisposter/internal/theme"
)

func TestParseFormat(t *testing.T) {
	t.Run("can normalize format names", func(t *testing.T) {
		for in, want := range map[string]string{
			"jpg": poster.FormatJPG, "JPEG": poster.FormatJPG,
			"png": poster.FormatPNG, "WebP": poster.FormatWebP,
		} {
			got, err := poster.ParseFormat(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})
	t.Run("should reject unknown formats", func(t *testing.T) {
		_, err := poster.ParseFormat("tiff")
		assert.ErrorIs(t, err, poster.ErrUnknownFormat)
	})
}

func TestRendererRender(t *testing.T) {
	ctx := context.Background()
	def, err := catalog.Get("20m")
	require.NoError(t, err)
	r := poster.New(poster.Params{Scale: 0.02}) // 4 DPI proof render
	t.Run("can render a poster end to end", func(t *testing.T) {
		// when
		im, err := r.Render(ctx, def)
		// then
		require.NoError(t, err)
		b := im.Bounds()
		assert.Equal(t, 168, b.Dx()) // 42 in x 4 DPI
		assert.Equal(t, 112, b.Dy()) // 28 in x 4 DPI
	})
	t.Run("should fail an invalid definition before drawing", func(t *testing.T) {
		bad := def
		bad.Palette = "neon"
		_, err := r.Render(ctx, bad)
		assert.ErrorIs(t, err, theme.ErrUnknownPalette)
	})
	t.Run("should stop on a canceled context", func(t *testing.T) {
		ctx2, cancel := context.WithCancel(ctx)
		cancel()
		_, err := r.Render(ctx2, def)
		assert.ErrorIs(t, err, context.Canceled)
	})
	t.Run("can skip chart insets without data", func(t *testing.T) {
		// given a poster whose chart values are all zero
		def, err := catalog.Get("triband")
		require.NoError(t, err)
		insets := make([]catalog.Inset, len(def.Insets))
		copy(insets, def.Insets)
		for i := range insets {
			if insets[i].Kind != catalog.InsetBar && insets[i].Kind != catalog.InsetPie {
				continue
			}
			vals := make([]catalog.InsetValue, len(insets[i].Values))
			copy(vals, insets[i].Values)
			for j := range vals {
				vals[j].Value = 0
			}
			insets[i].Values = vals
		}
		def.Insets = insets
		r := poster.New(poster.Params{Scale: 0.1})
		// when
		im, err := r.Render(ctx, def)
		// then the poster still renders, minus the charts
		require.NoError(t, err)
		assert.NotNil(t, im)
	})
}

func TestRendererRenderFile(t *testing.T) {
	ctx := context.Background()
	def, err := catalog.Get("20m")
	require.NoError(t, err)
	r := poster.New(poster.Params{Scale: 0.02})
	t.Run("can write a complete poster file", func(t *testing.T) {
		// given
		dir := t.TempDir()
		// when
		path, err := r.RenderFile(ctx, def, dir, poster.FormatPNG)
		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, def.File+".png"), path)
		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		im, err := png.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, 168, im.Bounds().Dx())
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1) // no temp file left behind
	})
	t.Run("should leave nothing behind when encoding fails", func(t *testing.T) {
		// given
		dir := t.TempDir()
		// when
		_, err := r.RenderFile(ctx, def, dir, "tiff")
		// then
		assert.ErrorIs(t, err, poster.ErrUnknownFormat)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestEncode(t *testing.T) {
	def, err := catalog.Get("20m")
	require.NoError(t, err)
	r := poster.New(poster.Params{Scale: 0.02})
	im, err := r.Render(context.Background(), def)
	require.NoError(t, err)
	t.Run("can encode every supported format", func(t *testing.T) {
		for _, format := range poster.Formats() {
			var buf bytes.Buffer
			require.NoError(t, poster.Encode(&buf, im, format), format)
			assert.Positive(t, buf.Len(), format)
		}
	})
	t.Run("should reject an unknown format", func(t *testing.T) {
		err := poster.Encode(&bytes.Buffer{}, im, "gif")
		assert.ErrorIs(t, err, poster.ErrUnknownFormat)
	})
}

func TestRenderAllBuiltins(t *testing.T) {
	if testing.Short() {
		t.Skip("renders all five posters")
	}
	defs, err := catalog.All()
	require.NoError(t, err)
	require.Len(t, defs, 5)
	r := poster.New(poster.Params{Scale: 0.1})
	for _, def := range defs {
		t.Run("can render "+def.Name, func(t *testing.T) {
			im, err := r.Render(context.Background(), def)
			require.NoError(t, err)
			assert.Equal(t, int(def.WidthIn*20), im.Bounds().Dx())
		})
	}
}

func TestFileNamesAreStrings(t *testing.T) {
	t.Run("catalog file names carry no extension", func(t *testing.T) {
		defs, err := catalog.All()
		require.NoError(t, err)
		for _, d := range defs {
			assert.False(t, strings.ContainsRune(d.File, '.'), d.Name)
		}
	})
}
