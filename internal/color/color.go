// internal/color/color.go
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidHex = errors.New("invalid hex color")

// colorful.Hex stops scanning at the first bad digit without an error, so
// the digits are checked up front.
var hexRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Color is an RGBA value with normalized channels in [0,1].
// It marshals to and from text as a hex string.
type Color struct {
	R, G, B, A float64
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
)

// New returns an opaque color.
func New(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

func NewRGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromHex parses #RGB, #RRGGBB or #AARRGGBB. The eight digit form puts alpha
// first, the way packed ARGB integers are written.
func FromHex(value string) (Color, error) {
	hex := strings.TrimSpace(value)
	if !hexRegex.MatchString(hex) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, value)
	}

	alpha := 1.0
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[1:3], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, value)
		}
		alpha = float64(a) / 255
		hex = "#" + hex[3:]
	}

	parsed, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, value)
	}
	return Color{R: parsed.R, G: parsed.G, B: parsed.B, A: alpha}, nil
}

// MustHex is FromHex for package-level tables. It panics on malformed input.
func MustHex(value string) Color {
	c, err := FromHex(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the color as #rrggbb. Alpha is dropped; channels outside
// [0,1] are clamped for display only.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

func (c Color) String() string {
	return c.Hex()
}

// Equal reports exact channel equality.
func (c Color) Equal(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B && c.A == other.A
}

// ApproxEqual reports whether every channel differs by at most eps.
func (c Color) ApproxEqual(other Color, eps float64) bool {
	return math.Abs(c.R-other.R) <= eps &&
		math.Abs(c.G-other.G) <= eps &&
		math.Abs(c.B-other.B) <= eps &&
		math.Abs(c.A-other.A) <= eps
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Mix linearly interpolates from a to b per channel: (1-amount)*a + amount*b.
// The result is always opaque.
func Mix(a, b Color, amount float64) Color {
	mixed := a.colorful().BlendRgb(b.colorful(), amount)
	return Color{R: mixed.R, G: mixed.G, B: mixed.B, A: 1}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}
