package firstx

import (
	"fmt"
	"image/color"
)

type PaletteIndex int

const (
	ColorBg PaletteIndex = iota

	ColorText
	ColorTextMuted
	ColorTextDim

	ColorAccent
	ColorAccentSoft
	ColorAccentDeep

	ColorPanel
	ColorPanelStroke

	ColorField
	ColorFieldStroke
	ColorFieldFocus

	ColorBgWord

	PaletteSize
)

var paletteNames = [PaletteSize]string{
	ColorBg: "bg",

	ColorText:      "text",
	ColorTextMuted: "text-muted",
	ColorTextDim:   "text-dim",

	ColorAccent:     "accent",
	ColorAccentSoft: "accent-soft",
	ColorAccentDeep: "accent-deep",

	ColorPanel:       "panel",
	ColorPanelStroke: "panel-stroke",

	ColorField:       "field",
	ColorFieldStroke: "field-stroke",
	ColorFieldFocus:  "field-focus",

	ColorBgWord: "bg-word",
}

func (i PaletteIndex) String() string {
	if i < 0 || i >= PaletteSize {
		return fmt.Sprintf("PaletteIndex(%d)", int(i))
	}
	return paletteNames[i]
}

var defaultPaletteCSS = [PaletteSize]string{
	ColorBg: "#000000",

	ColorText:      "#ffffff",
	ColorTextMuted: "#d1d5db",
	ColorTextDim:   "#9ca3af",

	ColorAccent:     "#ef4444",
	ColorAccentSoft: "rgb(248, 113, 113)",
	ColorAccentDeep: "#b91c1c",

	ColorPanel:       "rgba(15, 15, 15, 0.85)",
	ColorPanelStroke: "rgba(248, 113, 113, 0.18)",

	ColorField:       "rgba(0, 0, 0, 0.5)",
	ColorFieldStroke: "rgba(239, 68, 68, 0.3)",
	ColorFieldFocus:  "#ef4444",

	ColorBgWord: "rgba(255, 255, 255, 0.22)",
}

var Palette [PaletteSize]color.NRGBA

// DefaultPalette is Palette before any overrides.
var DefaultPalette [PaletteSize]color.NRGBA

func init() {
	for i, str := range defaultPaletteCSS {
		c, err := ParseColorString(str)
		if err != nil {
			panic(fmt.Sprintf("bad default color %s %q: %v", PaletteIndex(i), str, err))
		}
		DefaultPalette[i] = c
	}
	Palette = DefaultPalette
}

// SetPalette resets Palette to the defaults with overrides applied.
// On error Palette is left as it was.
func SetPalette(overrides map[string]string) error {
	palette := DefaultPalette
	if err := ApplyPaletteOverrides(&palette, overrides); err != nil {
		return err
	}
	Palette = palette
	SetRedraw()
	return nil
}

// ApplyPaletteOverrides replaces palette entries by name with CSS colors.
// Unknown names and unparsable colors are reported and leave the palette untouched.
func ApplyPaletteOverrides(palette *[PaletteSize]color.NRGBA, overrides map[string]string) error {
	var parsed [PaletteSize]color.NRGBA
	var set [PaletteSize]bool

	for name, str := range overrides {
		index := PaletteIndex(-1)
		for i := PaletteIndex(0); i < PaletteSize; i++ {
			if i.String() == name {
				index = i
				break
			}
		}
		if index < 0 {
			return fmt.Errorf("unknown palette color %q", name)
		}

		c, err := ParseColorString(str)
		if err != nil {
			return fmt.Errorf("palette color %q: %w", name, err)
		}

		parsed[index] = c
		set[index] = true
	}

	for i := range parsed {
		if set[i] {
			palette[i] = parsed[i]
		}
	}

	return nil
}
