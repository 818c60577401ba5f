package parser

import (
	"io"
	"strconv"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
)

// symbolParser holds the line-to-line state of one .asy parse
type symbolParser struct {
	source string
	def    *model.SymbolDefinition
	pin    int // index of the current pin, -1 before the first PIN
}

// ParseSymbol parses .asy text into a definition called name
func ParseSymbol(name string, r io.Reader) (*model.SymbolDefinition, error) {
	p := &symbolParser{source: name + ".asy", def: model.NewSymbolDefinition(name), pin: -1}
	if err := scanLines(p.source, r, p.handle); err != nil {
		return nil, err
	}
	return p.def, nil
}

func (p *symbolParser) handle(l *sourceLine) error {
	switch kw := l.keyword(); kw {
	case "SymbolType":
		tok, ok := l.word(1)
		if !ok {
			return fail(p.source, l, "SymbolType CELL|BLOCK", nil)
		}
		t, err := model.ParseSymbolType(tok)
		if err != nil {
			return fail(p.source, l, "SymbolType CELL|BLOCK", err)
		}
		p.def.Type = t

	case "WINDOW":
		w, err := parseWindow(p.source, l)
		if err != nil {
			return err
		}
		p.def.Windows[w.ID] = w

	case "SYMATTR":
		key, value, err := parseAttr(p.source, l)
		if err != nil {
			return err
		}
		p.def.Attributes[key] = value

	case "TEXT":
		text, err := parseText(p.source, l)
		if err != nil {
			return err
		}
		p.def.Texts = append(p.def.Texts, text)

	case "LINE", "RECTANGLE", "CIRCLE", "ARC":
		shape, err := parseShape(p.source, l, shapeKinds[kw])
		if err != nil {
			return err
		}
		p.def.Shapes = append(p.def.Shapes, shape)

	case "PIN":
		const expected = "PIN x y justification offset"
		c, ok := l.floats(1, 2)
		if !ok {
			return fail(p.source, l, expected, nil)
		}
		just, ok := l.word(3)
		if !ok {
			return fail(p.source, l, expected, nil)
		}
		pin := model.Pin{Position: model.Pt(c[0], c[1]), Justification: just}
		if l.has(4) {
			if pin.Offset, ok = l.int(4); !ok {
				return fail(p.source, l, expected, nil)
			}
		}
		p.def.Pins = append(p.def.Pins, pin)
		p.pin = len(p.def.Pins) - 1

	case "PINATTR":
		if p.pin < 0 {
			return fail(p.source, l, "PINATTR after a PIN line", nil)
		}
		key, value, err := parseAttr(p.source, l)
		if err != nil {
			return err
		}
		pin := &p.def.Pins[p.pin]
		switch key {
		case "PinName":
			pin.Name = value
		case "SpiceOrder":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fail(p.source, l, "PINATTR SpiceOrder n", err)
			}
			pin.SpiceOrder = n
		}
	}
	return nil
}
