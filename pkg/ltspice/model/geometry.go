// Package model provides the shared value types of the LTspice converter:
// points, wires, shapes, texts, symbols, flags and their resolved
// (absolute-space) counterparts. Types carry no behavior beyond validation
// and small geometric helpers.
package model

import "math"

// Point is a coordinate in LTspice grid units. Y grows downward.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Wire is a straight schematic wire segment
type Wire struct {
	Start Point
	End   Point
}

// Touches reports whether p is one of the wire's endpoints
func (w Wire) Touches(p Point) bool {
	return w.Start == p || w.End == p
}

// Other returns the endpoint opposite to p. p must be an endpoint.
func (w Wire) Other(p Point) Point {
	if w.Start == p {
		return w.End
	}
	return w.Start
}

// BoundingBox is an axis-aligned box in grid units. Start from
// NewBoundingBox; the zero value already covers the origin.
type BoundingBox struct {
	Min, Max Point
}

// NewBoundingBox returns a box that covers nothing
func NewBoundingBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{Min: Pt(inf, inf), Max: Pt(-inf, -inf)}
}

// IsEmpty reports whether nothing has been added yet
func (bb BoundingBox) IsEmpty() bool {
	return bb.Max.X < bb.Min.X || bb.Max.Y < bb.Min.Y
}

// Expand grows bb to cover every point in pts
func (bb *BoundingBox) Expand(pts ...Point) {
	for _, p := range pts {
		bb.Min = Pt(min(bb.Min.X, p.X), min(bb.Min.Y, p.Y))
		bb.Max = Pt(max(bb.Max.X, p.X), max(bb.Max.Y, p.Y))
	}
}

// ExpandBox grows bb to cover o. An empty o adds nothing.
func (bb *BoundingBox) ExpandBox(o BoundingBox) {
	if o.IsEmpty() {
		return
	}
	bb.Expand(o.Min, o.Max)
}

func (bb BoundingBox) Width() float64  { return bb.Max.X - bb.Min.X }
func (bb BoundingBox) Height() float64 { return bb.Max.Y - bb.Min.Y }

// Center is the midpoint of the two corners
func (bb BoundingBox) Center() Point {
	return Pt((bb.Min.X+bb.Max.X)/2, (bb.Min.Y+bb.Max.Y)/2)
}

// Direction is one of the four grid directions, as seen from a point.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

var directionNames = map[Direction]string{
	DirNone:  "none",
	DirLeft:  "left",
	DirRight: "right",
	DirUp:    "up",
	DirDown:  "down",
}

func (d Direction) String() string {
	return directionNames[d]
}

// MarshalText encodes the direction by name
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Opposite returns the direction rotated by 180 degrees
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	}
	return DirNone
}

// Vertical reports whether d is up or down
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// DirectionTo returns the cardinal direction from p toward q. Off-axis
// segments snap to their dominant axis; coincident points give DirNone.
func DirectionTo(p, q Point) Direction {
	dx, dy := q.X-p.X, q.Y-p.Y
	switch {
	case dx == 0 && dy == 0:
		return DirNone
	case math.Abs(dx) >= math.Abs(dy):
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	case dy > 0:
		return DirDown
	default:
		return DirUp
	}
}
