// Package parser reads LTspice schematic (.asc) and symbol (.asy) text into
// the immutable geometric model. Input must already be decoded to UTF-8;
// see package library for encoding normalization.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
)

// Source names used in ParseError when the caller gives none
const (
	SchematicSource = "schematic"
)

// lineHandler is invoked once per non-empty line
type lineHandler func(l *sourceLine) error

// scanLines tokenizes r line by line and feeds each line to handle
func scanLines(source string, r io.Reader, handle lineHandler) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	num := 0
	for scanner.Scan() {
		num++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		l, err := tokenize(num, text)
		if err != nil {
			return &ParseError{Source: source, Line: num, Text: text, Expected: "tokens", Err: err}
		}
		if err := handle(l); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}
	return nil
}

// fail builds a ParseError for l
func fail(source string, l *sourceLine, expected string, cause error) error {
	return &ParseError{Source: source, Line: l.num, Text: l.text, Expected: expected, Err: cause}
}

const (
	grammarShape = "<Normal|Wide> x1 y1 x2 y2 [style]"
	grammarArc   = "<Normal|Wide> x1 y1 x2 y2 x3 y3 x4 y4 [style]"
	grammarText  = "x y justification size content"
	grammarWin   = "id x y justification [size]"
)

var shapeKinds = map[string]model.ShapeKind{
	"LINE":      model.ShapeLine,
	"RECTANGLE": model.ShapeRectangle,
	"CIRCLE":    model.ShapeCircle,
	"ARC":       model.ShapeArc,
}

// parseShape handles LINE, RECTANGLE, CIRCLE and ARC lines
func parseShape(source string, l *sourceLine, kind model.ShapeKind) (model.Shape, error) {
	expected := l.keyword() + " " + grammarShape
	n := 4
	if kind == model.ShapeArc {
		expected = l.keyword() + " " + grammarArc
		n = 8
	}

	widthTok, ok := l.word(1)
	if !ok {
		return model.Shape{}, fail(source, l, expected, nil)
	}
	width, err := model.ParseLineWidth(widthTok)
	if err != nil {
		return model.Shape{}, fail(source, l, expected, err)
	}
	c, ok := l.floats(2, n)
	if !ok {
		return model.Shape{}, fail(source, l, expected, nil)
	}

	shape := model.Shape{
		Kind:  kind,
		P1:    model.Pt(c[0], c[1]),
		P2:    model.Pt(c[2], c[3]),
		Width: width,
	}
	if kind == model.ShapeArc {
		// third point is the sweep end, fourth the start
		shape.ArcEnd = model.Pt(c[4], c[5])
		shape.ArcStart = model.Pt(c[6], c[7])
	}

	if l.has(2 + n) {
		code, ok := l.int(2 + n)
		if !ok {
			return model.Shape{}, fail(source, l, expected, nil)
		}
		if shape.Style, err = model.ParseLineStyle(code); err != nil {
			return model.Shape{}, fail(source, l, expected, err)
		}
	}
	return shape, nil
}

// parseText handles TEXT x y justification size [;|!]content
func parseText(source string, l *sourceLine) (model.Text, error) {
	expected := "TEXT " + grammarText
	c, ok := l.floats(1, 2)
	if !ok {
		return model.Text{}, fail(source, l, expected, nil)
	}
	justTok, ok := l.word(3)
	if !ok {
		return model.Text{}, fail(source, l, expected, nil)
	}
	just, err := model.ParseJustification(justTok)
	if err != nil {
		return model.Text{}, fail(source, l, expected, err)
	}

	text := model.Text{
		Position:      model.Pt(c[0], c[1]),
		Justification: just,
		Size:          model.DefaultSize,
		Kind:          model.TextLabel,
	}

	next := 4
	if size, ok := l.int(4); ok {
		if text.Size, err = model.ParseSize(size); err != nil {
			return model.Text{}, fail(source, l, expected, err)
		}
		next = 5
	}

	if mark, content, ok := l.marker(next); ok {
		text.Kind = model.TextComment
		if mark == '!' {
			text.Kind = model.TextDirective
		}
		text.Content = content
	} else {
		text.Content = l.rest(next)
	}
	text.Content = strings.ReplaceAll(text.Content, `\n`, "\n")
	return text, nil
}

// parseWindow handles WINDOW id x y justification|Invisible [size]
func parseWindow(source string, l *sourceLine) (model.Window, error) {
	expected := "WINDOW " + grammarWin
	id, ok := l.int(1)
	if !ok {
		return model.Window{}, fail(source, l, expected, nil)
	}
	c, ok := l.floats(2, 2)
	if !ok {
		return model.Window{}, fail(source, l, expected, nil)
	}
	justTok, ok := l.word(4)
	if !ok {
		return model.Window{}, fail(source, l, expected, nil)
	}

	w := model.Window{
		ID:       model.WindowID(id),
		Position: model.Pt(c[0], c[1]),
		Size:     model.DefaultSize,
	}
	if justTok == "Invisible" {
		w.Hidden = true
	} else {
		just, err := model.ParseJustification(justTok)
		if err != nil {
			return model.Window{}, fail(source, l, expected, err)
		}
		w.Justification = just
	}

	if l.has(5) {
		size, ok := l.int(5)
		if !ok {
			return model.Window{}, fail(source, l, expected, nil)
		}
		var err error
		if w.Size, err = model.ParseSize(size); err != nil {
			return model.Window{}, fail(source, l, expected, err)
		}
	}
	return w, nil
}

// parseAttr handles SYMATTR / PINATTR key value...
func parseAttr(source string, l *sourceLine) (string, string, error) {
	key, ok := l.word(1)
	if !ok {
		return "", "", fail(source, l, l.keyword()+" key value", nil)
	}
	return key, l.rest(2), nil
}
