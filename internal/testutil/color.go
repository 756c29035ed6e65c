package testutil

import (
	"math"
	"testing"

	"github.com/codr1/tintkit/internal/color"
)

// AssertColorNear fails the test when any channel of got differs from want by more than eps.
func AssertColorNear(t *testing.T, label string, got, want color.Color, eps float64) {
	t.Helper()

	if !got.ApproxEqual(want, eps) {
		t.Fatalf("%s = %+v (%s), want %+v (%s) within %g", label, got, got.Hex(), want, want.Hex(), eps)
	}
}

// AssertNormalized fails the test when a channel is NaN or outside [0,1],
// allowing for floating point rounding at the edges.
func AssertNormalized(t *testing.T, label string, c color.Color) {
	t.Helper()

	for _, ch := range []float64{c.R, c.G, c.B, c.A} {
		if math.IsNaN(ch) || ch < -1e-9 || ch > 1+1e-9 {
			t.Fatalf("%s = %+v has a channel outside [0,1]", label, c)
		}
	}
}
