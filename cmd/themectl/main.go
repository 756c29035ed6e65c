// cmd/themectl/main.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/codr1/tintkit/internal/color"
	"github.com/codr1/tintkit/internal/presets"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "themectl",
		Short: "Generate theme palettes and color schemes",
		Long: `themectl derives a ten-step palette and a full light or dark color
scheme from a single brand seed color.

Seeds are #rrggbb hex values or the name of a built-in preset.

Examples:
  themectl palette "#a0d911"              # Light palette as text
  themectl palette lime --dark --swatch   # Dark palette with color swatches
  themectl scheme "#1677ff" --format css  # CSS custom properties
  themectl presets                        # List built-in presets
  themectl mix "#141414" "#a0d911" 0.85   # Blend two colors`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newPaletteCmd(),
		newSchemeCmd(),
		newPresetsCmd(),
		newMixCmd(),
	)
	return root
}

// resolveSeed accepts a hex color or a preset name.
func resolveSeed(arg string) (color.Color, error) {
	arg = strings.TrimSpace(arg)
	if strings.HasPrefix(arg, "#") {
		c, err := color.FromHex(arg)
		if err != nil {
			return color.Color{}, fmt.Errorf("invalid seed %q: %w", arg, err)
		}
		return c, nil
	}

	p, err := presets.Lookup(arg)
	if err != nil {
		return color.Color{}, fmt.Errorf("seed must be a hex color or preset name: %w", err)
	}
	log.Debug().Str("preset", p.Name).Str("seed", p.Seed.Hex()).Msg("Resolved preset seed")
	return p.Seed, nil
}
