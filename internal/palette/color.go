// Package palette holds the palette state: colors, lock flags and the
// generated example snippet.
package palette

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// colorSpace is the number of distinct 24-bit RGB values.
const colorSpace = 1 << 24

const hexDigits = "0123456789abcdefABCDEF"

// ErrInvalidColor is returned when a string cannot be read as an RGB hex color.
var ErrInvalidColor = errors.New("invalid color")

// Color is a 24-bit RGB color in canonical "#rrggbb" form.
type Color string

// String implements fmt.Stringer.
func (c Color) String() string {
	return string(c)
}

// Colorful converts the color for use with go-colorful. Malformed values
// yield black.
func (c Color) Colorful() colorful.Color {
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{}
	}
	return cc
}

// IsLight reports whether dark text reads better on top of this color.
func (c Color) IsLight() bool {
	l, _, _ := c.Colorful().Lab()
	return l > 0.6
}

// Source draws uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultSource draws from the process-wide generator.
func DefaultSource() Source {
	return globalSource{}
}

// NewSeededSource returns a reproducible source for the given seed.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomColor draws one color uniformly over all 2^24 RGB values.
func RandomColor(src Source) Color {
	if src == nil {
		src = DefaultSource()
	}
	return FromInt(src.IntN(colorSpace))
}

// FromInt formats the low 24 bits of v as a color.
func FromInt(v int) Color {
	return Color(fmt.Sprintf("#%06x", v&(colorSpace-1)))
}

// ParseColor accepts "#rgb" or "#rrggbb" in any case, with or without the
// leading '#', and returns the canonical form.
func ParseColor(s string) (Color, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if !strings.HasPrefix(raw, "#") {
		raw = "#" + raw
	}
	if len(raw) != 4 && len(raw) != 7 || strings.Trim(raw[1:], hexDigits) != "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	cc, err := colorful.Hex(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color(cc.Hex()), nil
}
