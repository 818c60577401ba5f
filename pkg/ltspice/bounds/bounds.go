// Package bounds computes the document extent and the SVG viewport.
package bounds

import (
	"math"
	"unicode/utf8"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/transform"
)

// Text box approximation factors, relative to the font size
const (
	CharWidth  = 1.0
	LineHeight = 1.2
)

// Viewport is the visible document rectangle
type Viewport struct {
	MinX   float64 `json:"min_x"`
	MinY   float64 `json:"min_y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Geometry is everything that contributes to the document extent
type Geometry struct {
	Wires    []model.Wire
	Shapes   []model.Shape
	Texts    []model.ResolvedText
	Points   []model.Point
	FontSize float64 // base font size used for text boxes

	Dots      []model.Point // junction dot centers
	DotRadius float64
}

// Extent folds every contribution of g into one box
func Extent(g Geometry) model.BoundingBox {
	bb := model.NewBoundingBox()
	for _, w := range g.Wires {
		bb.Expand(w.Start, w.End)
	}
	for _, s := range g.Shapes {
		bb.ExpandBox(s.Bounds())
	}
	for _, t := range g.Texts {
		bb.ExpandBox(TextBox(t, g.FontSize))
	}
	bb.Expand(g.Points...)
	r := model.Pt(g.DotRadius, g.DotRadius)
	for _, p := range g.Dots {
		bb.Expand(p.Sub(r), p.Add(r))
	}
	return bb
}

// Compute returns the viewport of g padded by marginPercent of the larger
// dimension on each side.
func Compute(g Geometry, marginPercent float64) (Viewport, error) {
	bb := Extent(g)
	if bb.IsEmpty() {
		return Viewport{}, model.ErrEmptyDocument
	}
	return Pad(bb, marginPercent), nil
}

// Pad converts bb to a viewport with a margin on all four sides
func Pad(bb model.BoundingBox, marginPercent float64) Viewport {
	m := marginPercent / 100 * math.Max(bb.Width(), bb.Height())
	return Viewport{
		MinX:   bb.Min.X - m,
		MinY:   bb.Min.Y - m,
		Width:  bb.Width() + 2*m,
		Height: bb.Height() + 2*m,
	}
}

// FontSize returns the rendered font size of t for a base size
func FontSize(t model.ResolvedText, base float64) float64 {
	return base * model.SizeMultiplier(t.Size)
}

// TextFrame returns the text's box in its own frame: the anchor at the
// origin, before any rotation. Lines stack downward from the top edge.
func TextFrame(t model.ResolvedText, base float64) model.BoundingBox {
	fs := FontSize(t, base)
	lines := t.Lines()
	longest := 0
	for _, line := range lines {
		longest = max(longest, utf8.RuneCountInString(line))
	}
	w := float64(longest) * fs * CharWidth
	h := float64(len(lines)) * fs * LineHeight

	var x0, y0 float64
	switch t.Justification.Horizontal() {
	case model.JustifyLeft:
		x0 = 0
	case model.JustifyRight:
		x0 = -w
	default:
		x0 = -w / 2
	}
	switch t.Justification {
	case model.JustifyTop:
		y0 = 0
	case model.JustifyBottom:
		y0 = -h
	default:
		y0 = -h / 2
	}
	return model.BoundingBox{Min: model.Pt(x0, y0), Max: model.Pt(x0+w, y0+h)}
}

// TextBox is the conservative document-space box of a text: its frame
// rotated by the absolute rotation about the anchor.
func TextBox(t model.ResolvedText, base float64) model.BoundingBox {
	frame := TextFrame(t, base)
	rot := t.AbsoluteRotation()

	bb := model.NewBoundingBox()
	corners := []model.Point{
		frame.Min,
		{X: frame.Max.X, Y: frame.Min.Y},
		frame.Max,
		{X: frame.Min.X, Y: frame.Max.Y},
	}
	for _, c := range corners {
		bb.Expand(transform.Rotate(c, rot).Add(t.Position))
	}
	return bb
}
