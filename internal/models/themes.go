// internal/models/themes.go
package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/codr1/tintkit/internal/color"
	"github.com/codr1/tintkit/internal/themecolor"
)

// DefaultSeed is the brand seed used when a request does not name one.
const DefaultSeed = "#1677ff"

const maxCSSPrefixLength = 32

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
var cssPrefixRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(value))
}

// IsCSSPrefix reports whether value can prefix CSS custom property names.
func IsCSSPrefix(value string) bool {
	return len(value) <= maxCSSPrefixLength && cssPrefixRegex.MatchString(value)
}

// SchemeRequest is the user-supplied input for one scheme.
type SchemeRequest struct {
	Seed       string `json:"seed"`
	Mode       string `json:"mode"`
	Background string `json:"background,omitempty"`
}

// Normalize trims fields and lowercases the mode.
func (r SchemeRequest) Normalize() SchemeRequest {
	return SchemeRequest{
		Seed:       strings.TrimSpace(r.Seed),
		Mode:       strings.ToLower(strings.TrimSpace(r.Mode)),
		Background: strings.TrimSpace(r.Background),
	}
}

func (r SchemeRequest) Validate() error {
	if r.Seed == "" {
		return fmt.Errorf("seed is required")
	}
	if !hexColorRegex.MatchString(r.Seed) {
		return fmt.Errorf("seed must be a 6-digit hex color like #AABBCC")
	}
	switch r.Mode {
	case "", themecolor.ModeLight, themecolor.ModeDark:
	default:
		return fmt.Errorf("mode must be %q or %q", themecolor.ModeLight, themecolor.ModeDark)
	}
	if r.Background != "" && !hexColorRegex.MatchString(r.Background) {
		return fmt.Errorf("background must be a 6-digit hex color like #AABBCC")
	}
	return nil
}

func (r SchemeRequest) IsDark() bool {
	return r.Mode == themecolor.ModeDark
}

// SeedColor parses the seed. Call Validate first.
func (r SchemeRequest) SeedColor() (color.Color, error) {
	return color.FromHex(r.Seed)
}

// BackgroundColor returns the explicit background, or the neutral background
// of the requested mode when none was given.
func (r SchemeRequest) BackgroundColor() (color.Color, error) {
	if r.Background == "" {
		return themecolor.NeutralColors(r.IsDark()).Background, nil
	}
	return color.FromHex(r.Background)
}
