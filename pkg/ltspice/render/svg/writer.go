// Package svg writes a render.Document as an SVG file.
package svg

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svgo "github.com/ajstarks/svgo/float"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/bounds"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/render"
)

// errWriter keeps the first write error; svgo does not report them
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

type writer struct {
	canvas *svgo.SVG
	style  Style
	colors *SchematicColors
	font   float64
}

// Write renders doc to w
func Write(w io.Writer, doc *render.Document, style Style) error {
	ew := &errWriter{w: w}
	wr := &writer{
		canvas: svgo.New(ew),
		style:  style,
		colors: GetSchematicColors(style.Theme),
		font:   doc.FontSize,
	}
	wr.document(doc)
	if ew.err != nil {
		return fmt.Errorf("failed to write svg: %w", ew.err)
	}
	return nil
}

func (wr *writer) document(doc *render.Document) {
	c := wr.canvas
	vp := doc.Viewport
	width, height := math.Max(vp.Width, 1), math.Max(vp.Height, 1)

	scale := wr.style.Scale
	if scale <= 0 {
		scale = 1
	}

	c.Startview(width*scale, height*scale, vp.MinX, vp.MinY, width, height)
	if wr.style.Title != "" {
		c.Title(wr.style.Title)
	}
	c.Rect(vp.MinX, vp.MinY, width, height, "fill:"+hex(wr.colors.Background))

	c.Group(`id="wires"`, wr.strokeStyle(wr.colors.Wire, wr.style.StrokeWidth))
	for _, w := range doc.Wires {
		c.Line(w.Start.X, w.Start.Y, w.End.X, w.End.Y)
	}
	c.Gend()

	c.Group(`id="shapes"`)
	for _, s := range doc.Shapes {
		wr.shape(s, wr.colors.Shape)
	}
	c.Gend()

	c.Group(`id="symbols"`)
	for _, rs := range doc.Symbols {
		c.Group(fmt.Sprintf(`class="symbol %s"`, escapeAttr(rs.Instance.Symbol)))
		for _, s := range rs.Shapes {
			wr.shape(s, wr.colors.SymbolBody)
		}
		for _, t := range rs.Texts {
			wr.text(t, wr.colors.SymbolText)
		}
		c.Gend()
	}
	c.Gend()

	c.Group(`id="texts"`)
	for _, t := range doc.Texts {
		fill := wr.colors.Comment
		if t.Kind == model.TextDirective {
			fill = wr.colors.Directive
		}
		wr.text(t, fill)
	}
	c.Gend()

	c.Group(`id="flags"`)
	for _, g := range doc.Flags {
		col := wr.colors.NetLabel
		switch g.Flag.Flag.Kind {
		case model.FlagGround:
			col = wr.colors.Ground
		case model.FlagIOPin:
			col = wr.colors.IOPin
		}
		for _, s := range g.Lines {
			wr.shape(s, col)
		}
		if g.Label != nil {
			wr.text(*g.Label, col)
		}
	}
	c.Gend()

	c.Group(`id="junctions"`, "stroke:none;fill:"+hex(wr.colors.Junction))
	r := wr.style.StrokeWidth * wr.style.DotSize
	for _, p := range doc.Junctions {
		c.Circle(p.X, p.Y, r)
	}
	c.Gend()

	c.End()
}

func (wr *writer) strokeStyle(col color.NRGBA, width float64) string {
	return fmt.Sprintf("stroke:%s;stroke-width:%g;stroke-linecap:round;stroke-linejoin:round;fill:none", hex(col), width)
}

func (wr *writer) shape(s model.Shape, col color.NRGBA) {
	c := wr.canvas
	width := wr.style.strokeWidth(s.Width)
	style := wr.strokeStyle(col, width)
	if s.Filled {
		style += ";fill:" + hex(col)
	}
	if dash := DashArray(s.Style, width); dash != "" {
		style += ";stroke-dasharray:" + dash
	}

	switch s.Kind {
	case model.ShapeLine:
		c.Line(s.P1.X, s.P1.Y, s.P2.X, s.P2.Y, style)
	case model.ShapeRectangle:
		bb := s.Bounds()
		c.Rect(bb.Min.X, bb.Min.Y, bb.Width(), bb.Height(), style)
	case model.ShapeCircle:
		ctr := s.Center()
		rx, ry := s.Radii()
		if rx == ry {
			c.Circle(ctr.X, ctr.Y, rx, style)
		} else {
			c.Ellipse(ctr.X, ctr.Y, rx, ry, style)
		}
	case model.ShapeArc:
		if d, ok := ArcPath(s); ok {
			c.Path(d, style)
		} else {
			ctr := s.Center()
			rx, ry := s.Radii()
			c.Ellipse(ctr.X, ctr.Y, rx, ry, style)
		}
	}
}

// ArcPath returns the SVG path data of an arc shape. The start and end
// points are projected onto the ellipse along their angle from the center.
// ok is false when start and end coincide in angle (a full ellipse) or the
// ellipse is degenerate.
func ArcPath(s model.Shape) (string, bool) {
	ctr := s.Center()
	rx, ry := s.Radii()
	if rx == 0 || ry == 0 {
		return "", false
	}
	a0 := math.Atan2((s.ArcStart.Y-ctr.Y)/ry, (s.ArcStart.X-ctr.X)/rx)
	a1 := math.Atan2((s.ArcEnd.Y-ctr.Y)/ry, (s.ArcEnd.X-ctr.X)/rx)
	sweep := math.Mod(a1-a0+2*math.Pi, 2*math.Pi)
	if sweep == 0 {
		return "", false
	}
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	x0, y0 := ctr.X+rx*math.Cos(a0), ctr.Y+ry*math.Sin(a0)
	x1, y1 := ctr.X+rx*math.Cos(a1), ctr.Y+ry*math.Sin(a1)
	return fmt.Sprintf("M%.2f,%.2f A%.2f,%.2f 0 %d 1 %.2f,%.2f", x0, y0, rx, ry, large, x1, y1), true
}

var textAnchors = map[model.Justification]string{
	model.JustifyLeft:   "start",
	model.JustifyCenter: "middle",
	model.JustifyRight:  "end",
}

// text draws a possibly multi-line text. Lines are laid out in the text's
// own frame and the group is rotated about the anchor.
func (wr *writer) text(t model.ResolvedText, col color.NRGBA) {
	c := wr.canvas
	fs := bounds.FontSize(t, wr.font)
	frame := bounds.TextFrame(t, wr.font)
	p := t.Position

	attrs := []string{
		fmt.Sprintf(`font-family="%s"`, escapeAttr(wr.style.FontFamily)),
		fmt.Sprintf(`font-size="%.2f"`, fs),
		fmt.Sprintf(`text-anchor="%s"`, textAnchors[t.Justification.Horizontal()]),
		fmt.Sprintf(`fill="%s"`, hex(col)),
	}
	if rot := t.AbsoluteRotation(); rot != 0 {
		attrs = append(attrs, fmt.Sprintf(`transform="rotate(%d %.2f %.2f)"`, rot, p.X, p.Y))
	}

	c.Group(attrs...)
	for i, line := range t.Lines() {
		y := p.Y + frame.Min.Y + float64(i)*fs*bounds.LineHeight + 0.9*fs
		c.Text(p.X, y, line)
	}
	c.Gend()
}

func escapeAttr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
