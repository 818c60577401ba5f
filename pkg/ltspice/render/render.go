// Package render turns a parsed schematic into an ordered document of
// drawing primitives in absolute coordinates, plus its viewport.
package render

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/bounds"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/flags"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/junction"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/transform"
)

// Document is the resolved drawing. Sinks draw the fields in declaration
// order: wires, shapes, symbols, texts, flags, junctions.
type Document struct {
	Viewport  bounds.Viewport        `json:"viewport"`
	FontSize  float64                `json:"font_size"`
	Wires     []model.Wire           `json:"wires"`
	Shapes    []model.Shape          `json:"shapes"`
	Symbols   []model.ResolvedSymbol `json:"symbols"`
	Texts     []model.ResolvedText   `json:"texts"`
	Flags     []flags.Glyph          `json:"flags"`
	Junctions []model.Point          `json:"junctions"`

	JunctionRadius float64 `json:"junction_radius"`
}

// Build resolves sch into a Document
func Build(sch *model.Schematic, opts Options) (*Document, error) {
	return BuildContext(context.Background(), sch, opts)
}

// BuildContext is Build with a context that stops instance resolution
func BuildContext(ctx context.Context, sch *model.Schematic, opts Options) (*Document, error) {
	log := opts.logger()

	symbols, err := resolveInstances(ctx, sch, opts.workers())
	if err != nil {
		return nil, err
	}
	for i := range symbols {
		symbols[i].Texts = lo.Filter(symbols[i].Texts, func(t model.ResolvedText, _ int) bool {
			return opts.keepText(t)
		})
	}

	doc := &Document{
		FontSize:       opts.FontSize,
		Wires:          sch.Wires,
		Shapes:         sch.Shapes,
		Symbols:        symbols,
		JunctionRadius: opts.JunctionRadius,
	}

	for _, text := range sch.Texts {
		rt := transform.Standalone(text)
		if opts.keepText(rt) {
			doc.Texts = append(doc.Texts, rt)
		}
	}

	for _, rf := range flags.ResolveAll(sch.Flags, sch.Wires) {
		g := flags.Draw(rf)
		if g.Label != nil && !opts.keepText(*g.Label) {
			g.Label = nil
		}
		doc.Flags = append(doc.Flags, g)
	}

	doc.Junctions = junction.Find(sch.Wires, doc.Terminals())

	vp, err := bounds.Compute(doc.Geometry(), opts.MarginPercent)
	if err != nil {
		return nil, err
	}
	doc.Viewport = vp

	log.Debug("built document",
		"wires", len(doc.Wires),
		"symbols", len(doc.Symbols),
		"texts", len(doc.Texts),
		"flags", len(doc.Flags),
		"junctions", len(doc.Junctions),
		"viewport", fmt.Sprintf("%g %g %g %g", vp.MinX, vp.MinY, vp.Width, vp.Height))
	return doc, nil
}

// resolveInstances places every instance in parallel. Results keep the
// instance order; the first failure cancels the rest.
func resolveInstances(ctx context.Context, sch *model.Schematic, workers int) ([]model.ResolvedSymbol, error) {
	out := make([]model.ResolvedSymbol, len(sch.Instances))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, inst := range sch.Instances {
		i, inst := i, inst
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rs, err := transform.Resolve(inst, sch.Symbols[inst.Symbol])
			if err != nil {
				return fmt.Errorf("line %d: %w", inst.Line, err)
			}
			out[i] = rs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Terminals returns every symbol pin position
func (d *Document) Terminals() []model.Point {
	return lo.FlatMap(d.Symbols, func(rs model.ResolvedSymbol, _ int) []model.Point {
		return rs.Pins
	})
}

// AllTexts returns symbol, standalone and flag texts in drawing order
func (d *Document) AllTexts() []model.ResolvedText {
	var out []model.ResolvedText
	for _, rs := range d.Symbols {
		out = append(out, rs.Texts...)
	}
	out = append(out, d.Texts...)
	for _, g := range d.Flags {
		if g.Label != nil {
			out = append(out, *g.Label)
		}
	}
	return out
}

// Geometry collects every extent contribution of the document. Junction
// dots count with their radius.
func (d *Document) Geometry() bounds.Geometry {
	g := bounds.Geometry{
		Wires:    d.Wires,
		Shapes:   append([]model.Shape(nil), d.Shapes...),
		Texts:    d.AllTexts(),
		Points:   d.Terminals(),
		FontSize: d.FontSize,

		Dots:      d.Junctions,
		DotRadius: d.JunctionRadius,
	}
	for _, rs := range d.Symbols {
		g.Shapes = append(g.Shapes, rs.Shapes...)
	}
	for _, f := range d.Flags {
		g.Shapes = append(g.Shapes, f.Lines...)
		g.Points = append(g.Points, f.Flag.Flag.Position)
	}
	return g
}
