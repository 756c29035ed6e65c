package themecolor

import (
	"github.com/codr1/tintkit/internal/color"
	"github.com/codr1/tintkit/internal/palette"
)

var (
	warningSeed = color.MustHex("#faad14")
	errorSeed   = color.MustHex("#fa541c")
)

// WarningSeed returns the amber seed behind the warning color.
func WarningSeed() color.Color { return warningSeed }

// ErrorSeed returns the red-orange seed behind the error color.
func ErrorSeed() color.Color { return errorSeed }

// FunctionalColorSet holds the semantic status colors.
type FunctionalColorSet struct {
	Success color.Color `json:"success"`
	Warning color.Color `json:"warning"`
	Error   color.Color `json:"error"`
}

// FunctionalColors derives the status colors. Success tracks the brand
// anchor; warning and error are anchors of palettes generated from fixed
// seeds in the same mode and against the same background.
func FunctionalColors(brand palette.Palette, isDark bool, background color.Color) FunctionalColorSet {
	return FunctionalColorSet{
		Success: brand.Anchor(),
		Warning: palette.Generate(warningSeed, isDark, background).Anchor(),
		Error:   palette.Generate(errorSeed, isDark, background).Anchor(),
	}
}

func (f FunctionalColorSet) Roles() []NamedColor {
	return []NamedColor{
		{"success", f.Success},
		{"warning", f.Warning},
		{"error", f.Error},
	}
}
