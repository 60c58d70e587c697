package humanize_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/posterforge/nvisposter/internal/humanize"
)

func TestNumber(t *testing.T) {
	var cases = []struct {
		value    int
		decimals int
		want     string
	}{
		{999, 2, "999"},
		{-42, 2, "-42"},
		{1000, 2, "1.00 K"},
		{8800, 2, "8.80 K"},
		{1235, 0, "1 K"},
		{1_234_000, 2, "1.23 M"},
		{52_800_000, 1, "52.8 M"},
		{1_234_000_000, 2, "1.23 B"},
		{-1_234_000, 2, "-1.23 M"},
		{0, 2, "0"},
		{1235, 3, "1.235 K"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("Can format numbers: %d", tc.value), func(t *testing.T) {
			got := humanize.Number(tc.value, tc.decimals)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("should panic when called with undefined decimals", func(t *testing.T) {
		assert.Panics(t, func() {
			humanize.Number(99_000, 7)
		})
	})
}

func TestBytes(t *testing.T) {
	t.Run("can format file sizes", func(t *testing.T) {
		assert.Equal(t, "26 MB", humanize.Bytes(25_800_000))
	})
}
