package model

import (
	"fmt"
	"sort"
)

// WindowID is the canonical window-slot id used throughout the model
type WindowID int

const (
	WindowInstName   WindowID = 0
	WindowValue      WindowID = 3
	WindowSpiceModel WindowID = 38
	WindowSpiceLine  WindowID = 39
	WindowSpiceLine2 WindowID = 40
	WindowValue2     WindowID = 123
)

// attributeWindows maps SYMATTR keys to the slot that displays them
var attributeWindows = map[string]WindowID{
	"InstName":   WindowInstName,
	"Value":      WindowValue,
	"SpiceModel": WindowSpiceModel,
	"SpiceLine":  WindowSpiceLine,
	"SpiceLine2": WindowSpiceLine2,
	"Value2":     WindowValue2,
}

// AttributeWindow returns the window slot that displays attribute key
func AttributeWindow(key string) (WindowID, bool) {
	id, ok := attributeWindows[key]
	return id, ok
}

// Window is a text anchor slot on a symbol
type Window struct {
	ID            WindowID
	Position      Point
	Justification Justification
	Size          int
	Hidden        bool
}

// Pin is a connection point on a symbol definition
type Pin struct {
	Position      Point
	Justification string
	Offset        int
	Name          string
	SpiceOrder    int
}

// SymbolType is the SymbolType keyword of a definition
type SymbolType string

const (
	SymbolCell  SymbolType = "CELL"
	SymbolBlock SymbolType = "BLOCK"
)

// ParseSymbolType accepts CELL or BLOCK
func ParseSymbolType(s string) (SymbolType, error) {
	switch SymbolType(s) {
	case SymbolCell, SymbolBlock:
		return SymbolType(s), nil
	}
	return "", fmt.Errorf("%w: unknown symbol type %q", ErrMalformedInput, s)
}

// SymbolDefinition is a reusable template in symbol-local coordinates
type SymbolDefinition struct {
	Name       string
	Type       SymbolType
	Shapes     []Shape
	Texts      []Text
	Pins       []Pin
	Windows    map[WindowID]Window
	Attributes map[string]string
}

// NewSymbolDefinition returns an empty definition with initialized maps
func NewSymbolDefinition(name string) *SymbolDefinition {
	return &SymbolDefinition{
		Name:       name,
		Type:       SymbolCell,
		Windows:    make(map[WindowID]Window),
		Attributes: make(map[string]string),
	}
}

// WindowIDs returns the defined slot ids in ascending order
func (d *SymbolDefinition) WindowIDs() []WindowID {
	ids := make([]WindowID, 0, len(d.Windows))
	for id := range d.Windows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SymbolInstance places a definition in the schematic
type SymbolInstance struct {
	Symbol      string
	Position    Point
	Orientation Orientation
	Values      map[WindowID]string
	Attributes  map[string]string
	Overrides   map[WindowID]Window
	Line        int // source line of the SYMBOL keyword
}

// Name returns the instance name (slot 0 value)
func (inst *SymbolInstance) Name() string {
	return inst.Values[WindowInstName]
}

// Value returns the instance value (slot 3 value)
func (inst *SymbolInstance) Value() string {
	return inst.Values[WindowValue]
}

// EffectiveWindow returns the window used to place slot id: the instance
// override if there is one, otherwise the definition default. A slot the
// definition does not declare is reported as not found even when the
// instance overrides it.
func (inst *SymbolInstance) EffectiveWindow(def *SymbolDefinition, id WindowID) (Window, bool) {
	if def == nil {
		return Window{}, false
	}
	w, ok := def.Windows[id]
	if !ok {
		return Window{}, false
	}
	if o, ok := inst.Overrides[id]; ok {
		return o, true
	}
	return w, true
}
