package color

import "math"

// HSV holds hue in degrees [0,360) with saturation and value in [0,1].
type HSV struct {
	H, S, V float64
}

// RGBToHSV converts c to HSV. Inputs are assumed normalized; nothing is clamped.
func RGBToHSV(c Color) HSV {
	max := math.Max(math.Max(c.R, c.G), c.B)
	min := math.Min(math.Min(c.R, c.G), c.B)
	delta := max - min

	var h float64
	switch {
	case delta == 0:
		h = 0
	case max == c.R:
		h = 60 * ((c.G - c.B) / delta)
	case max == c.G:
		h = 60 * ((c.B-c.R)/delta + 2)
	default:
		h = 60 * ((c.R-c.G)/delta + 4)
	}
	h = math.Mod(h+360, 360)

	var s float64
	if max != 0 {
		s = delta / max
	}

	return HSV{H: h, S: s, V: max}
}

// HSVToColor converts an HSV triple to an opaque color. Any hue wraps into
// [0,360), so 360 lands in the red sector.
func HSVToColor(hue, saturation, value float64) Color {
	h := wrapHue(hue)
	c := value * saturation
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := value - c

	var r, g, b float64
	switch int(h / 60) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{R: r + m, G: g + m, B: b + m, A: 1}
}

// Color converts the triple back to RGB.
func (hsv HSV) Color() Color {
	return HSVToColor(hsv.H, hsv.S, hsv.V)
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
