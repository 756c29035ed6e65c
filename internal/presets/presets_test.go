package presets

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestAllParsesEmbeddedFile(t *testing.T) {
	all, err := All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	// presets.txt currently defines 13 presets.
	if len(all) != 13 {
		t.Fatalf("All() preset count = %d, want 13", len(all))
	}
	if all[0].Name != "red" || all[0].Seed.Hex() != "#f5222d" {
		t.Fatalf("first preset = %+v, want red #f5222d", all[0])
	}

	defaults := 0
	for _, p := range all {
		if strings.HasSuffix(p.Name, " DEFAULT") {
			t.Fatalf("preset name still contains DEFAULT suffix: %q", p.Name)
		}
		if p.Name != url.PathEscape(p.Name) {
			t.Fatalf("preset name %q needs escaping in a URL path", p.Name)
		}
		if p.Default {
			defaults++
		}
	}
	if defaults != 1 {
		t.Fatalf("default presets = %d, want 1", defaults)
	}

	all[0].Name = "mutated"
	again, _ := All()
	if again[0].Name != "red" {
		t.Fatalf("All() returned shared storage")
	}
}

func TestDefault(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if p.Name != "blue" || p.Seed.Hex() != "#1677ff" {
		t.Fatalf("Default() = %+v, want blue #1677ff", p)
	}
}

func TestLookup(t *testing.T) {
	p, err := Lookup("  lime ")
	if err != nil {
		t.Fatalf("Lookup(lime) error = %v", err)
	}
	if p.Seed.Hex() != "#a0d911" {
		t.Fatalf("Lookup(lime) seed = %s, want #a0d911", p.Seed)
	}

	if _, err := Lookup("chartreuse"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Lookup(chartreuse) error = %v, want ErrNotFound", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "odd_lines", input: "Red\n#ff0000\nBlue\n", want: "multiples of 2"},
		{name: "bad_seed", input: "Red\nred\n", want: "6-digit hex"},
		{name: "short_seed", input: "Red\n#f00\n", want: "6-digit hex"},
		{name: "missing_name", input: "#ff0000\n#00ff00\n", want: "name missing"},
		{name: "two_defaults", input: "Red DEFAULT\n#ff0000\nBlue DEFAULT\n#0000ff\n", want: "multiple DEFAULT"},
		{name: "duplicate", input: "Red\n#ff0000\nred\n#ee0000\n", want: "duplicate preset"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(test.input))
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Fatalf("Parse() error = %v, want containing %q", err, test.want)
			}
		})
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	presets, err := Parse(strings.NewReader("\n\n  Red  \n\n #ff0000 \n\nBlue DEFAULT\n#0000ff\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(presets) != 2 || presets[0].Name != "Red" || !presets[1].Default || presets[1].Name != "Blue" {
		t.Fatalf("Parse() = %+v", presets)
	}
}
