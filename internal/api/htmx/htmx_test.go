package htmx

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsRequest(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{header: "true", want: true},
		{header: "TRUE", want: true},
		{header: "", want: false},
		{header: "false", want: false},
	}

	for _, test := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if test.header != "" {
			r.Header.Set("HX-Request", test.header)
		}
		if got := IsRequest(r); got != test.want {
			t.Fatalf("IsRequest(%q) = %v, want %v", test.header, got, test.want)
		}
	}
}

func TestMarkVaries(t *testing.T) {
	rec := httptest.NewRecorder()
	MarkVaries(rec)
	if got := rec.Header().Get("Vary"); got != "HX-Request" {
		t.Fatalf("Vary = %q, want HX-Request", got)
	}
}
