package parser

import (
	"fmt"
	"io"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
)

// instanceBuilder accumulates the SYMATTR and WINDOW lines that follow a
// SYMBOL line. It is finalized into an immutable SymbolInstance when the
// next SYMBOL line or the end of input is reached.
type instanceBuilder struct {
	inst model.SymbolInstance
}

func newInstanceBuilder(symbol string, pos model.Point, orient model.Orientation, line int) *instanceBuilder {
	return &instanceBuilder{inst: model.SymbolInstance{
		Symbol:      symbol,
		Position:    pos,
		Orientation: orient,
		Values:      make(map[model.WindowID]string),
		Attributes:  make(map[string]string),
		Overrides:   make(map[model.WindowID]model.Window),
		Line:        line,
	}}
}

func (b *instanceBuilder) setAttr(key, value string) {
	b.inst.Attributes[key] = value
	if id, ok := model.AttributeWindow(key); ok {
		b.inst.Values[id] = value
	}
}

func (b *instanceBuilder) override(w model.Window) {
	b.inst.Overrides[w.ID] = w
}

func (b *instanceBuilder) finish() model.SymbolInstance {
	return b.inst
}

// schematicParser holds the line-to-line state of one .asc parse
type schematicParser struct {
	source  string
	sch     *model.Schematic
	current *instanceBuilder
}

// ParseSchematic parses .asc text. Symbol definitions are not loaded; use
// Load to resolve them.
func ParseSchematic(r io.Reader) (*model.Schematic, error) {
	return ParseSchematicNamed(SchematicSource, r)
}

// ParseSchematicNamed is ParseSchematic with a source name for errors
func ParseSchematicNamed(source string, r io.Reader) (*model.Schematic, error) {
	p := &schematicParser{source: source, sch: model.NewSchematic()}
	if err := scanLines(source, r, p.handle); err != nil {
		return nil, err
	}
	p.flush()
	return p.sch, nil
}

func (p *schematicParser) flush() {
	if p.current != nil {
		p.sch.Instances = append(p.sch.Instances, p.current.finish())
		p.current = nil
	}
}

func (p *schematicParser) handle(l *sourceLine) error {
	switch kw := l.keyword(); kw {
	case "Version":
		v, ok := l.word(1)
		if !ok {
			return fail(p.source, l, "Version n", nil)
		}
		p.sch.Version = v

	case "SHEET":
		n, ok1 := l.int(1)
		c, ok2 := l.floats(2, 2)
		if !ok1 || !ok2 {
			return fail(p.source, l, "SHEET n width height", nil)
		}
		p.sch.Sheet = model.Sheet{Number: n, Width: c[0], Height: c[1]}

	case "WIRE":
		c, ok := l.floats(1, 4)
		if !ok {
			return fail(p.source, l, "WIRE x1 y1 x2 y2", nil)
		}
		p.sch.Wires = append(p.sch.Wires, model.Wire{
			Start: model.Pt(c[0], c[1]),
			End:   model.Pt(c[2], c[3]),
		})

	case "FLAG":
		return p.handleFlag(l)

	case "IOPIN":
		return p.handleIOPin(l)

	case "SYMBOL":
		return p.handleSymbol(l)

	case "WINDOW":
		if p.current == nil {
			return fail(p.source, l, "WINDOW after a SYMBOL line", nil)
		}
		w, err := parseWindow(p.source, l)
		if err != nil {
			return err
		}
		p.current.override(w)

	case "SYMATTR":
		if p.current == nil {
			return fail(p.source, l, "SYMATTR after a SYMBOL line", nil)
		}
		key, value, err := parseAttr(p.source, l)
		if err != nil {
			return err
		}
		p.current.setAttr(key, value)

	case "TEXT":
		text, err := parseText(p.source, l)
		if err != nil {
			return err
		}
		p.sch.Texts = append(p.sch.Texts, text)

	case "LINE", "RECTANGLE", "CIRCLE", "ARC":
		shape, err := parseShape(p.source, l, shapeKinds[kw])
		if err != nil {
			return err
		}
		p.sch.Shapes = append(p.sch.Shapes, shape)
	}
	return nil
}

func (p *schematicParser) handleFlag(l *sourceLine) error {
	c, ok := l.floats(1, 2)
	if !ok || !l.has(3) {
		return fail(p.source, l, "FLAG x y label", nil)
	}
	flag := model.Flag{
		Kind:     model.FlagNetLabel,
		Position: model.Pt(c[0], c[1]),
		Label:    l.rest(3),
	}
	if flag.Label == "0" {
		flag.Kind = model.FlagGround
	}
	p.sch.Flags = append(p.sch.Flags, flag)
	return nil
}

// handleIOPin turns the preceding flag at the same point into an IO pin
func (p *schematicParser) handleIOPin(l *sourceLine) error {
	const expected = "IOPIN x y In|Out|BiDir after a FLAG at the same point"
	c, ok := l.floats(1, 2)
	if !ok {
		return fail(p.source, l, expected, nil)
	}
	dirTok, ok := l.word(3)
	if !ok {
		return fail(p.source, l, expected, nil)
	}
	dir, err := model.ParseIODirection(dirTok)
	if err != nil {
		return fail(p.source, l, expected, err)
	}

	n := len(p.sch.Flags)
	if n == 0 || p.sch.Flags[n-1].Position != model.Pt(c[0], c[1]) {
		return fail(p.source, l, expected, nil)
	}
	p.sch.Flags[n-1].Kind = model.FlagIOPin
	p.sch.Flags[n-1].IODirection = dir
	return nil
}

func (p *schematicParser) handleSymbol(l *sourceLine) error {
	const expected = "SYMBOL name x y [orientation]"
	name, ok := l.word(1)
	if !ok {
		return fail(p.source, l, expected, nil)
	}
	c, ok := l.floats(2, 2)
	if !ok {
		return fail(p.source, l, expected, nil)
	}

	orient := model.R0
	if tok, ok := l.word(4); ok {
		var err error
		if orient, err = model.ParseOrientation(tok); err != nil {
			return fail(p.source, l, expected, err)
		}
	}

	p.flush()
	p.current = newInstanceBuilder(name, model.Pt(c[0], c[1]), orient, l.num)
	return nil
}

// SymbolResolver supplies parsed definitions by symbol name. Repeated
// calls with the same name must return the same definition.
type SymbolResolver interface {
	Resolve(name string) (*model.SymbolDefinition, error)
}

// ResolverFunc adapts a function to SymbolResolver
type ResolverFunc func(name string) (*model.SymbolDefinition, error)

// Resolve calls f(name)
func (f ResolverFunc) Resolve(name string) (*model.SymbolDefinition, error) {
	return f(name)
}

// Load parses a schematic and resolves each distinct referenced symbol
// name exactly once through resolver.
func Load(r io.Reader, resolver SymbolResolver) (*model.Schematic, error) {
	return LoadNamed(SchematicSource, r, resolver)
}

// LoadNamed is Load with a source name for errors
func LoadNamed(source string, r io.Reader, resolver SymbolResolver) (*model.Schematic, error) {
	sch, err := ParseSchematicNamed(source, r)
	if err != nil {
		return nil, err
	}
	for _, name := range sch.SymbolNames() {
		def, err := resolver.Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve symbol %q: %w", name, err)
		}
		if def == nil {
			return nil, fmt.Errorf("failed to resolve symbol %q: %w", name, model.ErrUnresolvedSymbol)
		}
		sch.Symbols[name] = def
	}
	return sch, nil
}
