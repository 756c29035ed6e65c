package themecolor

import "github.com/codr1/tintkit/internal/color"

// neutralRamp runs from pure black (index 0) to pure white (index 12).
var neutralRamp = [13]color.Color{
	color.MustHex("#000000"),
	color.MustHex("#141414"),
	color.MustHex("#1f1f1f"),
	color.MustHex("#262626"),
	color.MustHex("#434343"),
	color.MustHex("#595959"),
	color.MustHex("#8c8c8c"),
	color.MustHex("#bfbfbf"),
	color.MustHex("#d9d9d9"),
	color.MustHex("#f0f0f0"),
	color.MustHex("#f5f5f5"),
	color.MustHex("#fafafa"),
	color.MustHex("#ffffff"),
}

// NeutralColorSet holds the brand-independent grayscale roles.
type NeutralColorSet struct {
	Title               color.Color `json:"title"`
	PrimaryText         color.Color `json:"primaryText"`
	SecondaryText       color.Color `json:"secondaryText"`
	DisableText         color.Color `json:"disableText"`
	Border              color.Color `json:"border"`
	Divider             color.Color `json:"divider"`
	Background          color.Color `json:"background"`
	TableHeader         color.Color `json:"tableHeader"`
	ContainerBackground color.Color `json:"containerBackground"`
	Fill1               color.Color `json:"fill1"`
	Fill2               color.Color `json:"fill2"`
	Fill3               color.Color `json:"fill3"`
}

// neutralIndexes maps each role to a ramp position, in NeutralColorSet field order.
type neutralIndexes [12]int

var (
	lightNeutralIndexes = neutralIndexes{2, 3, 5, 7, 8, 9, 12, 11, 12, 11, 10, 9}
	darkNeutralIndexes  = neutralIndexes{11, 10, 7, 5, 4, 3, 1, 2, 2, 2, 3, 4}
)

// NeutralColors selects the neutral roles for the given mode.
func NeutralColors(isDark bool) NeutralColorSet {
	idx := lightNeutralIndexes
	if isDark {
		idx = darkNeutralIndexes
	}
	return NeutralColorSet{
		Title:               neutralRamp[idx[0]],
		PrimaryText:         neutralRamp[idx[1]],
		SecondaryText:       neutralRamp[idx[2]],
		DisableText:         neutralRamp[idx[3]],
		Border:              neutralRamp[idx[4]],
		Divider:             neutralRamp[idx[5]],
		Background:          neutralRamp[idx[6]],
		TableHeader:         neutralRamp[idx[7]],
		ContainerBackground: neutralRamp[idx[8]],
		Fill1:               neutralRamp[idx[9]],
		Fill2:               neutralRamp[idx[10]],
		Fill3:               neutralRamp[idx[11]],
	}
}

// NeutralRamp returns a copy of the canonical grayscale ramp.
func NeutralRamp() [13]color.Color {
	return neutralRamp
}

// Roles lists the neutral roles with stable kebab-case names, in declaration order.
func (n NeutralColorSet) Roles() []NamedColor {
	return []NamedColor{
		{"title", n.Title},
		{"primary-text", n.PrimaryText},
		{"secondary-text", n.SecondaryText},
		{"disable-text", n.DisableText},
		{"border", n.Border},
		{"divider", n.Divider},
		{"background", n.Background},
		{"table-header", n.TableHeader},
		{"container-background", n.ContainerBackground},
		{"fill-1", n.Fill1},
		{"fill-2", n.Fill2},
		{"fill-3", n.Fill3},
	}
}

// NamedColor pairs a role name with its color.
type NamedColor struct {
	Name  string      `json:"name"`
	Color color.Color `json:"color"`
}
