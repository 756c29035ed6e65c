package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/codr1/tintkit/internal/color"
	"github.com/codr1/tintkit/internal/palette"
	"github.com/codr1/tintkit/internal/themecolor"
)

func runThemectl(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPaletteText(t *testing.T) {
	out, err := runThemectl(t, "palette", "#a0d911")
	if err != nil {
		t.Fatalf("palette error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != palette.Size {
		t.Fatalf("palette printed %d lines, want %d:\n%s", len(lines), palette.Size, out)
	}
	fields := strings.Fields(lines[palette.AnchorIndex])
	if len(fields) != 3 || fields[0] != "6" || fields[1] != "#a0d911" || fields[2] != "*" {
		t.Fatalf("anchor line = %q", lines[palette.AnchorIndex])
	}
}

func TestPaletteJSONDark(t *testing.T) {
	out, err := runThemectl(t, "palette", "lime", "--dark", "--format", "json")
	if err != nil {
		t.Fatalf("palette error = %v", err)
	}

	var got []string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	want := palette.Generate(color.MustHex("#a0d911"), true, color.MustHex("#141414")).Hex()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("palette = %v, want %v", got, want)
	}
}

func TestPaletteBackground(t *testing.T) {
	out, err := runThemectl(t, "palette", "#a0d911", "--dark", "--background", "#000000", "-f", "json")
	if err != nil {
		t.Fatalf("palette error = %v", err)
	}
	var got []string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	want := palette.Generate(color.MustHex("#a0d911"), true, color.Black).Hex()
	if got[0] != want[0] {
		t.Fatalf("palette[0] = %s, want %s", got[0], want[0])
	}
}

func TestPaletteSwatch(t *testing.T) {
	out, err := runThemectl(t, "palette", "#1677ff", "--swatch")
	if err != nil {
		t.Fatalf("palette error = %v", err)
	}
	if !strings.Contains(out, "#1677ff") {
		t.Fatalf("swatch output missing seed:\n%s", out)
	}
}

func TestSchemeFormats(t *testing.T) {
	out, err := runThemectl(t, "scheme", "#fa541c", "--dark")
	if err != nil {
		t.Fatalf("scheme error = %v", err)
	}
	var s themecolor.Scheme
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if !s.Dark || s.Seed.Hex() != "#fa541c" {
		t.Fatalf("scheme dark=%v seed=%s", s.Dark, s.Seed)
	}

	out, err = runThemectl(t, "scheme", "#fa541c", "--format", "css", "--prefix", "tk")
	if err != nil {
		t.Fatalf("scheme css error = %v", err)
	}
	if !strings.HasPrefix(out, ":root{--tk-palette-1:") || !strings.Contains(out, "--tk-palette-6:#fa541c;") {
		t.Fatalf("scheme css = %s", out)
	}
}

func TestPresetsList(t *testing.T) {
	out, err := runThemectl(t, "presets")
	if err != nil {
		t.Fatalf("presets error = %v", err)
	}
	if !strings.HasPrefix(out, "NAME") {
		t.Fatalf("presets missing header:\n%s", out)
	}
	for _, want := range []string{"red", "#f5222d", "blue"} {
		if !strings.Contains(out, want) {
			t.Fatalf("presets output missing %q:\n%s", want, out)
		}
	}
}

func TestMix(t *testing.T) {
	out, err := runThemectl(t, "mix", "#000000", "#ffffff", "0.5")
	if err != nil {
		t.Fatalf("mix error = %v", err)
	}
	if strings.TrimSpace(out) != "#808080" {
		t.Fatalf("mix = %q, want #808080", out)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown_preset", args: []string{"palette", "mauve"}, want: "preset not found"},
		{name: "bad_hex", args: []string{"palette", "#zzzzzz"}, want: "invalid seed"},
		{name: "bad_format", args: []string{"palette", "#a0d911", "-f", "yaml"}, want: "unknown format"},
		{name: "bad_background", args: []string{"palette", "#a0d911", "--background", "black"}, want: "--background"},
		{name: "bad_prefix", args: []string{"scheme", "#a0d911", "--format", "css", "--prefix", "9x"}, want: "--prefix"},
		{name: "bad_hex_digit", args: []string{"palette", "#12345z"}, want: "invalid seed"},
		{name: "bad_mix_color", args: []string{"mix", "#1 2345", "#ffffff", "0.5"}, want: "invalid color a"},
		{name: "bad_amount", args: []string{"mix", "#000000", "#ffffff", "2"}, want: "amount must be"},
		{name: "nan_amount", args: []string{"mix", "#000000", "#ffffff", "NaN"}, want: "amount must be"},
		{name: "empty_amount", args: []string{"mix", "#000000", "#ffffff", " "}, want: "amount is required"},
		{name: "missing_args", args: []string{"mix", "#000000"}, want: "accepts 3 arg(s)"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := runThemectl(t, test.args...)
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Fatalf("error = %v, want containing %q", err, test.want)
			}
		})
	}
}

func TestSwatchForeground(t *testing.T) {
	if brightness(color.White) <= 0.6 || brightness(color.Black) > 0.6 {
		t.Fatal("brightness thresholds inverted")
	}
	if got := swatch(color.MustHex("#fadb14"), "#fadb14"); !strings.Contains(got, "#fadb14") {
		t.Fatalf("swatch() = %q", got)
	}
}
