package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/codr1/tintkit/internal/color"
)

// swatch renders label on a block filled with c. The label is drawn in black
// or white, whichever sits further from c's perceived brightness.
func swatch(c color.Color, label string) string {
	fg := color.White
	if brightness(c) > 0.6 {
		fg = color.Black
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(fg.Hex())).
		Padding(0, 1).
		Render(label)
}

func brightness(c color.Color) float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}
