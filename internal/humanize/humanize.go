// Package humanize transforms values into more user friendly representations.
package humanize

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/constraints"
)

// Bytes returns a byte count in short decimal form, e.g. "24.6 MB".
func Bytes[T constraints.Integer](n T) string {
	return humanize.Bytes(uint64(n))
}

// Number returns a humanized int number, e.g. 1234 becomes 1.23 K
func Number[T constraints.Integer](value T, decimals int) string {
	if v := int(value); v > -1000 && v < 1000 {
		return fmt.Sprint(value)
	}
	return number(float64(value), decimals)
}

func number(value float64, decimals int) string {
	var s int
	var a string
	v2 := math.Abs(value)
	switch {
	case v2 >= 1_000_000_000:
		s = 9
		a = " B"
	case v2 >= 1_000_000:
		s = 6
		a = " M"
	case v2 >= 1_000:
		s = 3
		a = " K"
	default:
		s = 0
		a = ""
	}
	x := value / math.Pow10(s)
	var f string
	switch decimals {
	case 3:
		f = "%.3f%s"
	case 2:
		f = "%.2f%s"
	case 1:
		f = "%.1f%s"
	case 0:
		f = "%.0f%s"
	default:
		panic(fmt.Sprintf("Undefined decimals: %d", decimals))
	}
	return fmt.Sprintf(f, x, a)
}
