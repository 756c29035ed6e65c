package models

import "testing"

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "empty", value: "", want: false},
		{name: "whitespace", value: "   ", want: false},
		{name: "missing_hash", value: "AABBCC", want: false},
		{name: "short_hex", value: "#ABC", want: false},
		{name: "long_hex", value: "#AABBCCDD", want: false},
		{name: "invalid_char", value: "#AABBCG", want: false},
		{name: "lowercase_hex", value: "#aabbcc", want: true},
		{name: "uppercase_hex", value: "#AABBCC", want: true},
		{name: "trimmed_hex", value: "  #AABBCC  ", want: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsHexColor(test.value); got != test.want {
				t.Fatalf("IsHexColor(%q) = %t, want %t", test.value, got, test.want)
			}
		})
	}
}

func TestIsCSSPrefix(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "tk", want: true},
		{value: "brand-2", want: true},
		{value: "", want: false},
		{value: "2tk", want: false},
		{value: "Tk", want: false},
		{value: "tk;color:red", want: false},
		{value: "abcdefghijklmnopqrstuvwxyzabcdefg", want: false},
	}

	for _, test := range tests {
		if got := IsCSSPrefix(test.value); got != test.want {
			t.Fatalf("IsCSSPrefix(%q) = %t, want %t", test.value, got, test.want)
		}
	}
}

func TestSchemeRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SchemeRequest
		wantErr bool
	}{
		{name: "default", req: SchemeRequest{Seed: DefaultSeed, Mode: "light"}},
		{name: "dark", req: SchemeRequest{Seed: "#a0d911", Mode: "dark"}},
		{name: "empty_mode", req: SchemeRequest{Seed: "#a0d911"}},
		{name: "background", req: SchemeRequest{Seed: "#a0d911", Mode: "dark", Background: "#000000"}},
		{name: "missing_seed", req: SchemeRequest{Mode: "dark"}, wantErr: true},
		{name: "short_seed", req: SchemeRequest{Seed: "#abc"}, wantErr: true},
		{name: "bad_mode", req: SchemeRequest{Seed: "#a0d911", Mode: "dim"}, wantErr: true},
		{name: "bad_background", req: SchemeRequest{Seed: "#a0d911", Background: "black"}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.req.Validate()
			if (err != nil) != test.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %t", err, test.wantErr)
			}
		})
	}
}

func TestSchemeRequestNormalize(t *testing.T) {
	req := SchemeRequest{Seed: " #A0D911 ", Mode: " Dark "}.Normalize()
	if req.Seed != "#A0D911" || req.Mode != "dark" {
		t.Fatalf("Normalize() = %+v", req)
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !req.IsDark() {
		t.Fatalf("IsDark() = false for dark mode")
	}
}

func TestSchemeRequestColors(t *testing.T) {
	req := SchemeRequest{Seed: "#a0d911", Mode: "dark"}
	seed, err := req.SeedColor()
	if err != nil || seed.Hex() != "#a0d911" {
		t.Fatalf("SeedColor() = %s, %v", seed, err)
	}
	bg, err := req.BackgroundColor()
	if err != nil || bg.Hex() != "#141414" {
		t.Fatalf("BackgroundColor() = %s, %v, want dark neutral background", bg, err)
	}

	req.Background = "#202020"
	bg, err = req.BackgroundColor()
	if err != nil || bg.Hex() != "#202020" {
		t.Fatalf("BackgroundColor() = %s, %v, want explicit background", bg, err)
	}
}
