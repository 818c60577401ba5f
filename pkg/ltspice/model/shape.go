package model

import (
	"fmt"
	"math"
)

// ShapeKind tags the Shape variant
type ShapeKind int

const (
	ShapeLine ShapeKind = iota
	ShapeRectangle
	ShapeCircle
	ShapeArc
)

var shapeKindNames = map[ShapeKind]string{
	ShapeLine:      "line",
	ShapeRectangle: "rectangle",
	ShapeCircle:    "circle",
	ShapeArc:       "arc",
}

func (k ShapeKind) String() string {
	return shapeKindNames[k]
}

// MarshalText encodes the kind by name
func (k ShapeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// LineStyle is the numeric dash style carried as the optional last field of
// LINE, RECTANGLE, CIRCLE and ARC lines.
type LineStyle int

const (
	StyleSolid LineStyle = iota
	StyleDash
	StyleDot
	StyleDashDot
	StyleDashDotDot
)

// ParseLineStyle validates a numeric style code
func ParseLineStyle(n int) (LineStyle, error) {
	if n < int(StyleSolid) || n > int(StyleDashDotDot) {
		return StyleSolid, fmt.Errorf("%w: line style %d out of range 0..4", ErrMalformedInput, n)
	}
	return LineStyle(n), nil
}

// LineWidth is the stroke weight keyword
type LineWidth int

const (
	WidthNormal LineWidth = iota
	WidthWide
)

// ParseLineWidth accepts Normal or Wide
func ParseLineWidth(s string) (LineWidth, error) {
	switch s {
	case "Normal":
		return WidthNormal, nil
	case "Wide":
		return WidthWide, nil
	}
	return WidthNormal, fmt.Errorf("%w: line width %q", ErrMalformedInput, s)
}

// Shape is one drawing primitive. P1 and P2 are the line endpoints, the
// rectangle corners or the corners of the box enclosing the ellipse of a
// circle or arc. ArcStart and ArcEnd lie on the ellipse; the arc sweeps
// with increasing screen angle (clockwise as drawn, Y down) from ArcStart
// to ArcEnd.
type Shape struct {
	Kind     ShapeKind
	P1       Point
	P2       Point
	ArcStart Point
	ArcEnd   Point
	Style    LineStyle
	Width    LineWidth
	Filled   bool
}

// Center returns the ellipse center of a circle or arc. The corners may
// come in any order.
func (s Shape) Center() Point {
	return BoundingBox{Min: s.P1, Max: s.P2}.Center()
}

// Radii returns the ellipse radii of a circle or arc
func (s Shape) Radii() (rx, ry float64) {
	return math.Abs(s.P2.X-s.P1.X) / 2, math.Abs(s.P2.Y-s.P1.Y) / 2
}

// Bounds returns the box a shape occupies. Arcs contribute their whole
// defining ellipse.
func (s Shape) Bounds() BoundingBox {
	bb := NewBoundingBox()
	switch s.Kind {
	case ShapeCircle, ShapeArc:
		c := s.Center()
		rx, ry := s.Radii()
		bb.Expand(Pt(c.X-rx, c.Y-ry), Pt(c.X+rx, c.Y+ry))
	default:
		bb.Expand(s.P1, s.P2)
	}
	return bb
}
