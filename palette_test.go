package firstx

import (
	"image/color"
	"testing"
)

func TestDefaultPalette(t *testing.T) {
	tests := []struct {
		index PaletteIndex
		want  color.NRGBA
	}{
		{ColorBg, color.NRGBA{0, 0, 0, 255}},
		{ColorAccent, color.NRGBA{0xef, 0x44, 0x44, 255}},
		{ColorAccentSoft, color.NRGBA{248, 113, 113, 255}},
		{ColorPanel, color.NRGBA{15, 15, 15, 217}},
	}

	for _, tt := range tests {
		t.Run(tt.index.String(), func(t *testing.T) {
			if got := DefaultPalette[tt.index]; got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaletteNames(t *testing.T) {
	seen := make(map[string]bool)
	for i := PaletteIndex(0); i < PaletteSize; i++ {
		name := i.String()
		if name == "" {
			t.Errorf("palette index %d has no name", i)
		}
		if seen[name] {
			t.Errorf("duplicate palette name %q", name)
		}
		seen[name] = true
	}
}

func TestApplyPaletteOverrides(t *testing.T) {
	palette := DefaultPalette

	err := ApplyPaletteOverrides(&palette, map[string]string{
		"accent": "rgb(34, 197, 94)",
		"bg":     "#111",
	})
	if err != nil {
		t.Fatalf("ApplyPaletteOverrides: %v", err)
	}

	if got, want := palette[ColorAccent], (color.NRGBA{34, 197, 94, 255}); got != want {
		t.Errorf("accent = %v, want %v", got, want)
	}
	if got, want := palette[ColorBg], (color.NRGBA{0x11, 0x11, 0x11, 255}); got != want {
		t.Errorf("bg = %v, want %v", got, want)
	}
	if palette[ColorText] != DefaultPalette[ColorText] {
		t.Errorf("text changed without an override")
	}
}

func TestApplyPaletteOverridesIsAtomic(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
	}{
		{"unknown name", map[string]string{"accent": "#000", "glitter": "#fff"}},
		{"bad color", map[string]string{"bg": "#000", "accent": "reddish"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			palette := DefaultPalette
			if err := ApplyPaletteOverrides(&palette, tt.overrides); err == nil {
				t.Fatalf("no error")
			}
			if palette != DefaultPalette {
				t.Errorf("palette changed on error")
			}
		})
	}
}

func TestSetPaletteResetsRemovedOverrides(t *testing.T) {
	defer func() { Palette = DefaultPalette }()

	if err := SetPalette(map[string]string{"accent": "#000"}); err != nil {
		t.Fatal(err)
	}
	if err := SetPalette(nil); err != nil {
		t.Fatal(err)
	}

	if Palette != DefaultPalette {
		t.Errorf("override survived a reset")
	}
}
