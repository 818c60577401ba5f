package svg

import (
	"strconv"
	"strings"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
)

// Style controls stroke geometry, fonts and colors of the output
type Style struct {
	StrokeWidth float64
	DotSize     float64 // junction dot radius, as a multiple of StrokeWidth
	FontFamily  string
	Theme       Theme
	Scale       float64 // multiplies the outer width and height, not the viewBox
	Title       string  // optional <title>
}

// DefaultStyle returns the default output style
func DefaultStyle() Style {
	return Style{
		StrokeWidth: 3,
		DotSize:     1.5,
		FontFamily:  "Arial",
		Theme:       ThemeLight,
		Scale:       1,
	}
}

// dashPatterns are in units of the stroke width. A near-zero dash with a
// round cap draws a dot.
var dashPatterns = map[model.LineStyle][]float64{
	model.StyleDash:       {4, 2},
	model.StyleDot:        {0.001, 2},
	model.StyleDashDot:    {4, 2, 0.001, 2},
	model.StyleDashDotDot: {4, 2, 0.001, 2, 0.001, 2},
}

// DashArray returns the stroke-dasharray for ls at the given stroke width,
// or "" for solid lines.
func DashArray(ls model.LineStyle, width float64) string {
	pattern, ok := dashPatterns[ls]
	if !ok {
		return ""
	}
	parts := make([]string, len(pattern))
	for i, v := range pattern {
		parts[i] = strconv.FormatFloat(v*width, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// strokeWidth returns the stroke for a shape's weight
func (s Style) strokeWidth(w model.LineWidth) float64 {
	if w == model.WidthWide {
		return s.StrokeWidth * 2
	}
	return s.StrokeWidth
}
