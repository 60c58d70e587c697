package vehicle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posterforge/nvisposter/internal/vehicle"
)

func TestParseStyle(t *testing.T) {
	t.Run("can parse every known style", func(t *testing.T) {
		for _, st := range vehicle.Styles() {
			got, err := vehicle.ParseStyle(string(st))
			if assert.NoError(t, err) {
				assert.Equal(t, st, got)
			}
		}
	})
	t.Run("should report error for unknown style", func(t *testing.T) {
		_, err := vehicle.ParseStyle("hovercraft")
		assert.ErrorIs(t, err, vehicle.ErrUnknownStyle)
	})
}

func TestBuild(t *testing.T) {
	for _, st := range vehicle.Styles() {
		t.Run("can build "+string(st), func(t *testing.T) {
			// when
			m, err := vehicle.Build(st)
			// then
			require.NoError(t, err)
			assert.Positive(t, m.Scene.Len())
			assert.Greater(t, m.RoofZ, m.Ground)
		})
	}
	t.Run("should report error for unknown style", func(t *testing.T) {
		_, err := vehicle.Build(vehicle.Style("tank"))
		assert.ErrorIs(t, err, vehicle.ErrUnknownStyle)
	})
	t.Run("sedans carry more detail than the box car", func(t *testing.T) {
		// given
		box, err := vehicle.Build(vehicle.StyleBox)
		require.NoError(t, err)
		// when
		exec, err := vehicle.Build(vehicle.StyleExecutive)
		// then
		require.NoError(t, err)
		assert.Greater(t, exec.Scene.Len(), box.Scene.Len())
	})
}

func TestProfile(t *testing.T) {
	p := vehicle.Profile{
		X:    []float64{-1, 0, 1},
		Half: []float64{0.2, 0.4, 0.2},
		Top:  []float64{0.5, 1.0, 0.5},
	}
	t.Run("can interpolate between stations", func(t *testing.T) {
		assert.InDelta(t, 0.3, p.HalfAt(-0.5), 1e-9)
		assert.InDelta(t, 0.75, p.TopAt(0.5), 1e-9)
	})
	t.Run("should clamp outside the loft", func(t *testing.T) {
		assert.InDelta(t, 0.2, p.HalfAt(-5), 1e-9)
		assert.InDelta(t, 0.5, p.TopAt(9), 1e-9)
	})
}
