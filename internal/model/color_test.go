package model

import "testing"

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "current palette token passes through", token: "dark-blue", want: "dark-blue"},
		{name: "first palette entry", token: "gray", want: "gray"},
		{name: "legacy grey maps to gray", token: "grey", want: "gray"},
		{name: "legacy navy maps to dark-blue", token: "navy", want: "dark-blue"},
		{name: "legacy lightgreen maps to light-green", token: "lightgreen", want: "light-green"},
		{name: "unknown token falls back to default", token: "ultraviolet", want: "gray"},
		{name: "empty token falls back to default", token: "", want: "gray"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeColor(tt.token); got != tt.want {
				t.Errorf("NormalizeColor(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestColorByID(t *testing.T) {
	opt := ColorByID("yellow")
	if opt.ID != "yellow" || opt.Background != "#fff9c4" {
		t.Errorf("ColorByID(yellow) = %+v, unexpected entry", opt)
	}

	fallback := ColorByID("no-such-color")
	if fallback.ID != ColorOptions[0].ID {
		t.Errorf("ColorByID(unknown) = %q, want first palette entry %q", fallback.ID, ColorOptions[0].ID)
	}
}

func TestPaletteSize(t *testing.T) {
	if len(ColorOptions) != 9 {
		t.Errorf("palette has %d entries, want 9", len(ColorOptions))
	}
}
