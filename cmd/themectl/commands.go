package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/codr1/tintkit/internal/api/apiutil"
	"github.com/codr1/tintkit/internal/color"
	"github.com/codr1/tintkit/internal/cssvars"
	"github.com/codr1/tintkit/internal/models"
	"github.com/codr1/tintkit/internal/palette"
	"github.com/codr1/tintkit/internal/presets"
	"github.com/codr1/tintkit/internal/themecolor"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatCSS  = "css"
)

func newPaletteCmd() *cobra.Command {
	var (
		dark       bool
		background string
		format     string
		withSwatch bool
	)

	cmd := &cobra.Command{
		Use:   "palette <seed>",
		Short: "Print the ten-step palette for a seed",
		Long: `Print the ten palette steps for a seed, lightest first. Step 6 is the
seed itself in light mode.

In dark mode each step is blended over the background, which defaults to the
dark neutral background (#141414).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := resolveSeed(args[0])
			if err != nil {
				return err
			}

			bg := themecolor.NeutralColors(dark).Background
			if background != "" {
				if bg, err = color.FromHex(background); err != nil {
					return fmt.Errorf("invalid --background: %w", err)
				}
			}

			p := palette.Generate(seed, dark, bg)
			out := cmd.OutOrStdout()
			switch format {
			case formatText:
				return writePaletteText(out, p, withSwatch)
			case formatJSON:
				return writeJSON(out, p)
			default:
				return fmt.Errorf("unknown format %q (use text or json)", format)
			}
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "Generate the dark-mode palette")
	cmd.Flags().StringVar(&background, "background", "", "Background to blend over in dark mode (#rrggbb)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json")
	cmd.Flags().BoolVar(&withSwatch, "swatch", false, "Show a color swatch next to each step")
	return cmd
}

func newSchemeCmd() *cobra.Command {
	var (
		dark   bool
		format string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "scheme <seed>",
		Short: "Print the full color scheme for a seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := resolveSeed(args[0])
			if err != nil {
				return err
			}
			if prefix != "" && !models.IsCSSPrefix(prefix) {
				return fmt.Errorf("invalid --prefix %q: must match [a-z][a-z0-9-]*", prefix)
			}

			s := themecolor.Build(seed, dark)
			out := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				return writeJSON(out, s)
			case formatCSS:
				_, err := fmt.Fprintln(out, cssvars.Render(s, prefix))
				return err
			default:
				return fmt.Errorf("unknown format %q (use json or css)", format)
			}
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "Build the dark-mode scheme")
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "Output format: json, css")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Prefix for CSS custom property names")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	var withSwatch bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List built-in preset seeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := presets.All()
			if err != nil {
				return fmt.Errorf("failed to load presets: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSEED\tDEFAULT")
			for _, p := range all {
				seed := p.Seed.Hex()
				if withSwatch {
					seed = swatch(p.Seed, seed)
				}
				def := ""
				if p.Default {
					def = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, seed, def)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&withSwatch, "swatch", false, "Show a color swatch for each seed")
	return cmd
}

func newMixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mix <a> <b> <amount>",
		Short: "Blend two colors",
		Long: `Blend from a to b by amount in [0,1]; 0 returns a and 1 returns b.

This is the blend applied to every palette step in dark mode.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := color.FromHex(args[0])
			if err != nil {
				return fmt.Errorf("invalid color a: %w", err)
			}
			b, err := color.FromHex(args[1])
			if err != nil {
				return fmt.Errorf("invalid color b: %w", err)
			}
			amount, err := apiutil.ParseUnitField(args[2], "amount")
			if err != nil {
				return fmt.Errorf("%w, got %q", err, args[2])
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), color.Mix(a, b, amount).Hex())
			return err
		},
	}
}

func writePaletteText(out io.Writer, p palette.Palette, withSwatch bool) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, c := range p {
		line := c.Hex()
		if withSwatch {
			line = swatch(c, line)
		}
		marker := ""
		if i == palette.AnchorIndex {
			marker = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, line, marker)
	}
	return w.Flush()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
