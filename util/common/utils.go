package common

import (
	"fmt"

	"github.com/inhies/go-bytesize"
)

// GetSize renders a byte count in human readable units, e.g. "488.28KB".
func GetSize(sizeVal int64) string {
	size := bytesize.New(float64(sizeVal))
	return size.String()
}

// Plural returns "<n> <noun>" with a trailing "s" unless n is 1.
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
