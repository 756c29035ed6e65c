// Package palette derives a ten-step tint/shade ramp from a single seed color.
//
// Tints and shades are stepped in HSV space. The hue rotates by a fixed step
// per level, in a direction that depends on whether the seed hue lies in the
// [60,240] band, so lighter tints drift toward cooler or warmer hues
// consistently around the wheel. Dark mode reuses the light ramp and mixes
// each entry into the background instead of re-deriving HSV steps.
package palette

import (
	"math"

	"github.com/codr1/tintkit/internal/color"
)

const (
	hueStep             = 2.0
	saturationStepLight = 0.16
	saturationStepDark  = 0.05
	brightnessStepLight = 0.05
	brightnessStepDark  = 0.15
	lightColorCount     = 5
	darkColorCount      = 4

	minSaturation         = 0.06
	maxLightestSaturation = 0.1

	// Size is the number of entries in every palette.
	Size = lightColorCount + 1 + darkColorCount
	// AnchorIndex is the zero-based position of the seed color.
	AnchorIndex = lightColorCount
)

// darkMixPercents is how much of each light entry survives when mixed into
// the background in dark mode, by position.
var darkMixPercents = [Size]float64{15, 25, 30, 45, 65, 85, 90, 95, 97, 98}

// Palette is ordered from the lightest tint (step 1) to the darkest shade
// (step 10). Step 6 is the seed.
type Palette [Size]color.Color

// Generate builds the palette for seed. When isDark is set every entry is
// mixed into background.
func Generate(seed color.Color, isDark bool, background color.Color) Palette {
	steps := HSVSteps(seed)

	var p Palette
	for i, hsv := range steps {
		if i == AnchorIndex {
			p[i] = seed
			continue
		}
		p[i] = hsv.Color()
	}

	if !isDark {
		return p
	}
	for i, c := range p {
		p[i] = color.Mix(background, c, darkMixPercents[i]/100)
	}
	return p
}

// HSVSteps returns the HSV triples behind the light-mode palette. The anchor
// entry is the seed's own triple.
func HSVSteps(seed color.Color) [Size]color.HSV {
	base := color.RGBToHSV(seed)

	var steps [Size]color.HSV
	n := 0
	for i := lightColorCount; i > 0; i-- {
		steps[n] = color.HSV{
			H: stepHue(base, i, true),
			S: stepSaturation(base, i, true),
			V: stepValue(base, i, true),
		}
		n++
	}
	steps[n] = base
	n++
	for i := 1; i <= darkColorCount; i++ {
		steps[n] = color.HSV{
			H: stepHue(base, i, false),
			S: stepSaturation(base, i, false),
			V: stepValue(base, i, false),
		}
		n++
	}
	return steps
}

func stepHue(base color.HSV, i int, light bool) float64 {
	shift := hueStep * float64(i)
	var h float64
	if base.H >= 60 && base.H <= 240 {
		if light {
			h = base.H - shift
		} else {
			h = base.H + shift
		}
	} else {
		if light {
			h = base.H + shift
		} else {
			h = base.H - shift
		}
	}
	return math.Mod(h+360, 360)
}

func stepSaturation(base color.HSV, i int, light bool) float64 {
	// Gray seeds stay gray.
	if base.H == 0 && base.S == 0 {
		return base.S
	}

	var s float64
	switch {
	case light:
		s = base.S - saturationStepLight*float64(i)
	case i == darkColorCount:
		s = base.S + saturationStepLight
	default:
		s = base.S + saturationStepDark*float64(i)
	}

	if s > 1 {
		s = 1
	}
	if light && i == lightColorCount && s > maxLightestSaturation {
		s = maxLightestSaturation
	}
	if s < minSaturation {
		s = minSaturation
	}
	return s
}

func stepValue(base color.HSV, i int, light bool) float64 {
	var v float64
	if light {
		v = base.V + brightnessStepLight*float64(i)
	} else {
		v = base.V - brightnessStepDark*float64(i)
	}
	return math.Max(0, math.Min(1, v))
}

// Step returns the 1-based step n.
func (p Palette) Step(n int) color.Color {
	return p[n-1]
}

// Anchor returns step 6.
func (p Palette) Anchor() color.Color {
	return p[AnchorIndex]
}

func (p Palette) Slice() []color.Color {
	out := make([]color.Color, Size)
	copy(out, p[:])
	return out
}

// Hex returns the palette as #rrggbb strings in step order.
func (p Palette) Hex() []string {
	out := make([]string, Size)
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}
