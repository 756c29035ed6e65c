package cssvars

import (
	"strings"
	"testing"

	"github.com/codr1/tintkit/internal/color"
	"github.com/codr1/tintkit/internal/themecolor"
)

func TestRenderOrderAndValues(t *testing.T) {
	s := themecolor.Build(color.MustHex("#a0d911"), false)
	css := Render(s, "tk")

	if !strings.HasPrefix(css, ":root{--tk-palette-1:") || !strings.HasSuffix(css, ";}") {
		t.Fatalf("Render() = %q, want a :root block starting with palette-1", css)
	}
	if !strings.Contains(css, "--tk-palette-6:#a0d911;") {
		t.Fatalf("Render() missing anchor: %q", css)
	}
	if !strings.Contains(css, "--tk-neutral-background:#ffffff;") {
		t.Fatalf("Render() missing neutral background: %q", css)
	}
	if !strings.Contains(css, "--tk-success:#a0d911;--tk-warning:#faad14;--tk-error:#fa541c;") {
		t.Fatalf("Render() functional block out of order: %q", css)
	}

	order := []string{"--tk-palette-1:", "--tk-palette-10:", "--tk-neutral-title:", "--tk-neutral-fill-3:", "--tk-success:", "--tk-brand-bg:", "--tk-brand-text-active:"}
	last := -1
	for _, name := range order {
		idx := strings.Index(css, name)
		if idx <= last {
			t.Fatalf("%s at %d, want after %d in %q", name, idx, last, css)
		}
		last = idx
	}

	if got := strings.Count(css, ";"); got != 10+12+3+10 {
		t.Fatalf("Render() declares %d properties, want 35", got)
	}
}

func TestRenderPrefixFallback(t *testing.T) {
	s := themecolor.Build(color.MustHex("#1677ff"), true)
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{name: "empty", prefix: "", want: ":root{--palette-1:"},
		{name: "invalid", prefix: "x;}body{", want: ":root{--palette-1:"},
		{name: "trimmed", prefix: " app ", want: ":root{--app-palette-1:"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Render(s, test.prefix); !strings.HasPrefix(got, test.want) {
				t.Fatalf("Render(prefix=%q) = %q, want prefix %q", test.prefix, got, test.want)
			}
		})
	}
}

func TestStyleTag(t *testing.T) {
	s := themecolor.Build(color.MustHex("#1677ff"), true)
	tag := StyleTag(s, "")
	if !strings.HasPrefix(tag, `<style data-theme-mode="dark">:root{`) || !strings.HasSuffix(tag, "}</style>") {
		t.Fatalf("StyleTag() = %q", tag)
	}
}
