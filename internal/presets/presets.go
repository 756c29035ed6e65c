// internal/presets/presets.go
package presets

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/codr1/tintkit/internal/color"
	"github.com/codr1/tintkit/internal/models"
)

const defaultPresetSuffix = " DEFAULT"

var ErrNotFound = errors.New("preset not found")

//go:embed presets.txt
var presetsFile string

// Preset is a named built-in brand seed.
type Preset struct {
	Name    string      `json:"name"`
	Seed    color.Color `json:"seed"`
	Default bool        `json:"default"`
}

var (
	loaded     []Preset
	loadedErr  error
	loadedOnce sync.Once
)

// All returns the embedded presets in file order. The file is parsed once.
func All() ([]Preset, error) {
	loadedOnce.Do(func() {
		loaded, loadedErr = Parse(strings.NewReader(presetsFile))
	})
	if loadedErr != nil {
		return nil, loadedErr
	}
	out := make([]Preset, len(loaded))
	copy(out, loaded)
	return out, nil
}

// Default returns the preset marked DEFAULT.
func Default() (Preset, error) {
	all, err := All()
	if err != nil {
		return Preset{}, err
	}
	for _, p := range all {
		if p.Default {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("no DEFAULT preset: %w", ErrNotFound)
}

// Lookup finds a preset by name, ignoring case and surrounding whitespace.
func Lookup(name string) (Preset, error) {
	all, err := All()
	if err != nil {
		return Preset{}, err
	}
	want := strings.TrimSpace(name)
	for _, p := range all {
		if strings.EqualFold(p.Name, want) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Parse reads presets as pairs of non-empty lines: a name, optionally
// suffixed with DEFAULT, followed by a #rrggbb seed.
func Parse(r io.Reader) ([]Preset, error) {
	lines, err := readNonEmptyLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines)%2 != 0 {
		return nil, fmt.Errorf("presets file has %d non-empty lines, expected multiples of 2", len(lines))
	}

	presets := make([]Preset, 0, len(lines)/2)
	seen := make(map[string]struct{}, len(lines)/2)
	defaultName := ""
	for i := 0; i < len(lines); i += 2 {
		name := lines[i]
		isDefault := false
		if strings.HasSuffix(name, defaultPresetSuffix) {
			name = strings.TrimSpace(strings.TrimSuffix(name, defaultPresetSuffix))
			if name == "" {
				return nil, fmt.Errorf("preset name missing before DEFAULT at line %d", i+1)
			}
			if defaultName != "" {
				return nil, fmt.Errorf("multiple DEFAULT presets: %q and %q", defaultName, name)
			}
			defaultName = name
			isDefault = true
		}
		if models.IsHexColor(name) {
			return nil, fmt.Errorf("preset name missing at line %d", i+1)
		}

		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate preset %q", name)
		}
		seen[key] = struct{}{}

		if !models.IsHexColor(lines[i+1]) {
			return nil, fmt.Errorf("invalid preset %q: seed must be a 6-digit hex color like #AABBCC", name)
		}
		seed, err := color.FromHex(lines[i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid preset %q: %w", name, err)
		}

		presets = append(presets, Preset{Name: name, Seed: seed, Default: isDefault})
	}

	return presets, nil
}

func readNonEmptyLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	lines := []string{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read presets file: %w", err)
	}
	return lines, nil
}
