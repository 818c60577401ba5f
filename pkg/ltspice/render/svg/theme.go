package svg

import (
	"fmt"
	"image/color"
	"strings"
)

// Theme represents a color scheme for SVG output
type Theme int

const (
	// ThemeLight draws black on white, like LTspice's default
	ThemeLight Theme = iota
	// ThemeDark draws light strokes on a dark background
	ThemeDark
)

// ParseTheme accepts "light" or "dark"
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(s) {
	case "", "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeLight, fmt.Errorf("unknown theme %q (want light or dark)", s)
}

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// SchematicColors defines the color scheme for rendering schematic elements
type SchematicColors struct {
	Background color.NRGBA

	// Wires and connections
	Wire     color.NRGBA
	Junction color.NRGBA

	// Flags
	Ground   color.NRGBA
	NetLabel color.NRGBA
	IOPin    color.NRGBA

	// Symbols
	SymbolBody color.NRGBA
	SymbolText color.NRGBA

	// Standalone drawing and text
	Shape     color.NRGBA
	Comment   color.NRGBA
	Directive color.NRGBA
}

// GetSchematicColors returns the color scheme for the given theme
func GetSchematicColors(theme Theme) *SchematicColors {
	switch theme {
	case ThemeDark:
		return getDarkTheme()
	default:
		return getLightTheme()
	}
}

func getLightTheme() *SchematicColors {
	black := color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	return &SchematicColors{
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Wire:       black,
		Junction:   black,
		Ground:     black,
		NetLabel:   black,
		IOPin:      black,
		SymbolBody: black,
		SymbolText: black,
		Shape:      black,
		Comment:    color.NRGBA{R: 0, G: 0, B: 255, A: 255}, // LTspice comment blue
		Directive:  black,
	}
}

func getDarkTheme() *SchematicColors {
	fg := color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	return &SchematicColors{
		Background: color.NRGBA{R: 30, G: 30, B: 30, A: 255},
		Wire:       color.NRGBA{R: 80, G: 200, B: 120, A: 255},
		Junction:   color.NRGBA{R: 80, G: 200, B: 120, A: 255},
		Ground:     fg,
		NetLabel:   color.NRGBA{R: 255, G: 200, B: 100, A: 255},
		IOPin:      color.NRGBA{R: 255, G: 200, B: 100, A: 255},
		SymbolBody: fg,
		SymbolText: fg,
		Shape:      fg,
		Comment:    color.NRGBA{R: 120, G: 160, B: 255, A: 255},
		Directive:  fg,
	}
}

// hex formats c as #rrggbb
func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
