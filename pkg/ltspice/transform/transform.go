// Package transform maps symbol-local geometry into document coordinates
// and computes the text compensation for rotated placements.
package transform

import (
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
)

// Transform places symbol-local points: mirror, rotate, then translate
type Transform struct {
	Orientation model.Orientation
	Translate   model.Point
}

// NewTransform creates the transform for an instance placement
func NewTransform(o model.Orientation, at model.Point) Transform {
	return Transform{Orientation: o, Translate: at}
}

// Apply applies the transformation to a local point
func (t Transform) Apply(p model.Point) model.Point {
	return Lookup(t.Orientation).Map(p).Add(t.Translate)
}

// ApplyShape transforms every defining point of s. Mirroring reverses the
// sweep of an arc, so the endpoints are exchanged to keep the drawn arc.
func (t Transform) ApplyShape(s model.Shape) model.Shape {
	out := s
	out.P1 = t.Apply(s.P1)
	out.P2 = t.Apply(s.P2)
	if s.Kind == model.ShapeArc {
		out.ArcStart = t.Apply(s.ArcStart)
		out.ArcEnd = t.Apply(s.ArcEnd)
		if t.Orientation.Mirrored() {
			out.ArcStart, out.ArcEnd = out.ArcEnd, out.ArcStart
		}
	}
	return out
}

// Rotate turns p clockwise on screen (Y down) by a multiple of 90 degrees.
// The quarter turns are written out so results stay exact.
func Rotate(p model.Point, deg int) model.Point {
	switch ((deg % 360) + 360) % 360 {
	case 90:
		return model.Point{X: -p.Y, Y: p.X}
	case 180:
		return model.Point{X: -p.X, Y: -p.Y}
	case 270:
		return model.Point{X: p.Y, Y: -p.X}
	}
	return p
}
