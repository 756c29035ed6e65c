package cssvars

import (
	"fmt"
	"strings"

	"github.com/codr1/tintkit/internal/models"
	"github.com/codr1/tintkit/internal/themecolor"
)

// Render writes s as CSS custom properties on :root, in a fixed order:
// palette steps, neutral roles, functional roles, then brand roles.
// An invalid prefix is dropped rather than emitted into the stylesheet.
func Render(s themecolor.Scheme, prefix string) string {
	namePrefix := "--"
	if p := strings.TrimSpace(prefix); p != "" && models.IsCSSPrefix(p) {
		namePrefix = "--" + p + "-"
	}

	var b strings.Builder
	b.WriteString(":root{")
	for i, c := range s.Palette {
		writeVar(&b, fmt.Sprintf("%spalette-%d", namePrefix, i+1), c.Hex())
	}
	for _, role := range s.Neutral.Roles() {
		writeVar(&b, namePrefix+"neutral-"+role.Name, role.Color.Hex())
	}
	for _, role := range s.Functional.Roles() {
		writeVar(&b, namePrefix+role.Name, role.Color.Hex())
	}
	for _, role := range s.Brand().Roles() {
		writeVar(&b, namePrefix+"brand-"+role.Name, role.Color.Hex())
	}
	b.WriteString("}")
	return b.String()
}

// StyleTag wraps Render in a <style> element for HTML fragments.
func StyleTag(s themecolor.Scheme, prefix string) string {
	return fmt.Sprintf(`<style data-theme-mode="%s">%s</style>`, s.Mode(), Render(s, prefix))
}

func writeVar(b *strings.Builder, name, value string) {
	b.WriteString(name)
	b.WriteByte(':')
	b.WriteString(value)
	b.WriteByte(';')
}
