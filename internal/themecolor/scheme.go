// Package themecolor assembles complete theme color schemes from a brand seed.
//
// A Scheme is a plain value: building one has no side effects, and two builds
// with the same inputs compare equal. Callers that rebuild often should keep
// the result, or use a Cache.
package themecolor

import (
	"github.com/codr1/tintkit/internal/color"
	"github.com/codr1/tintkit/internal/palette"
)

// Scheme is everything a renderer needs for one (seed, mode) pair.
type Scheme struct {
	Dark       bool               `json:"dark"`
	Seed       color.Color        `json:"seed"`
	Neutral    NeutralColorSet    `json:"neutral"`
	Palette    palette.Palette    `json:"palette"`
	Functional FunctionalColorSet `json:"functional"`
}

// Build derives the scheme for seed. The palette and functional colors are
// generated against the neutral background of the chosen mode.
func Build(seed color.Color, isDark bool) Scheme {
	neutral := NeutralColors(isDark)
	p := palette.Generate(seed, isDark, neutral.Background)
	return Scheme{
		Dark:       isDark,
		Seed:       seed,
		Neutral:    neutral,
		Palette:    p,
		Functional: FunctionalColors(p, isDark, neutral.Background),
	}
}

// Mode returns "dark" or "light".
func (s Scheme) Mode() string {
	if s.Dark {
		return ModeDark
	}
	return ModeLight
}

const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// BrandTokens names palette steps by the role they usually play.
type BrandTokens struct {
	Bg          color.Color `json:"bg"`
	BgHover     color.Color `json:"bgHover"`
	Border      color.Color `json:"border"`
	BorderHover color.Color `json:"borderHover"`
	Hover       color.Color `json:"hover"`
	Primary     color.Color `json:"primary"`
	Active      color.Color `json:"active"`
	TextHover   color.Color `json:"textHover"`
	Text        color.Color `json:"text"`
	TextActive  color.Color `json:"textActive"`
}

func (s Scheme) Brand() BrandTokens {
	p := s.Palette
	return BrandTokens{
		Bg:          p.Step(1),
		BgHover:     p.Step(2),
		Border:      p.Step(3),
		BorderHover: p.Step(4),
		Hover:       p.Step(5),
		Primary:     p.Step(6),
		Active:      p.Step(7),
		TextHover:   p.Step(5),
		Text:        p.Step(6),
		TextActive:  p.Step(7),
	}
}

func (b BrandTokens) Roles() []NamedColor {
	return []NamedColor{
		{"bg", b.Bg},
		{"bg-hover", b.BgHover},
		{"border", b.Border},
		{"border-hover", b.BorderHover},
		{"hover", b.Hover},
		{"primary", b.Primary},
		{"active", b.Active},
		{"text-hover", b.TextHover},
		{"text", b.Text},
		{"text-active", b.TextActive},
	}
}
