package transform

import (
	"fmt"
	"sort"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
)

// Resolve places every shape, pin and text of def according to inst.
// Definition texts come first, followed by window texts in slot order.
// A window slot renders only when the instance has a non-empty value for
// it, the definition declares it and it is not hidden.
func Resolve(inst model.SymbolInstance, def *model.SymbolDefinition) (model.ResolvedSymbol, error) {
	if def == nil {
		return model.ResolvedSymbol{}, fmt.Errorf("instance %q of symbol %q: %w", inst.Name(), inst.Symbol, model.ErrUnresolvedSymbol)
	}

	t := NewTransform(inst.Orientation, inst.Position)
	out := model.ResolvedSymbol{
		Instance: inst,
		Shapes:   make([]model.Shape, 0, len(def.Shapes)),
		Pins:     make([]model.Point, 0, len(def.Pins)),
		Texts:    make([]model.ResolvedText, 0, len(def.Texts)+len(inst.Values)),
	}

	for _, s := range def.Shapes {
		out.Shapes = append(out.Shapes, t.ApplyShape(s))
	}
	for _, p := range def.Pins {
		out.Pins = append(out.Pins, t.Apply(p.Position))
	}

	for _, text := range def.Texts {
		rt := placeText(t, text.Position, text.Justification)
		rt.Content = text.Content
		rt.Size = text.Size
		rt.Kind = text.Kind
		rt.Source = model.FromSymbol
		out.Texts = append(out.Texts, rt)
	}

	for _, id := range valueSlots(inst) {
		w, ok := inst.EffectiveWindow(def, id)
		if !ok || w.Hidden {
			continue
		}
		rt := placeText(t, w.Position, w.Justification)
		rt.Content = inst.Values[id]
		rt.Size = w.Size
		rt.Kind = model.TextLabel
		rt.Source = model.FromWindow
		rt.Window = id
		out.Texts = append(out.Texts, rt)
	}

	return out, nil
}

// valueSlots lists the slots with a non-empty instance value, ascending
func valueSlots(inst model.SymbolInstance) []model.WindowID {
	ids := make([]model.WindowID, 0, len(inst.Values))
	for id, v := range inst.Values {
		if v != "" {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// placeText applies the placement and text compensation to one anchor
func placeText(t Transform, pos model.Point, just model.Justification) model.ResolvedText {
	e := Lookup(t.Orientation)
	return model.ResolvedText{
		Position:       t.Apply(pos),
		Justification:  e.Swap(just),
		Compensation:   e.Compensation,
		Rotation:       just.BaselineRotation() + e.Compensation,
		SymbolRotation: e.Rotation,
	}
}

// Standalone resolves a schematic-level text with identity placement
func Standalone(text model.Text) model.ResolvedText {
	return model.ResolvedText{
		Position:      text.Position,
		Content:       text.Content,
		Justification: text.Justification,
		Size:          text.Size,
		Kind:          text.Kind,
		Rotation:      text.Justification.BaselineRotation(),
		Source:        model.FromSchematic,
	}
}
