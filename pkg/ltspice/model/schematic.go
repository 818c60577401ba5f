package model

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// FlagKind distinguishes ground symbols, net labels and IO pins
type FlagKind int

const (
	FlagNetLabel FlagKind = iota
	FlagGround
	FlagIOPin
)

var flagKindNames = map[FlagKind]string{
	FlagNetLabel: "net_label",
	FlagGround:   "ground",
	FlagIOPin:    "io_pin",
}

func (k FlagKind) String() string {
	return flagKindNames[k]
}

// MarshalText encodes the kind by name
func (k FlagKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IODirection is the signal direction of an IO pin
type IODirection int

const (
	IONone IODirection = iota
	IOIn
	IOOut
	IOBiDir
)

var ioDirectionNames = map[IODirection]string{
	IONone:  "",
	IOIn:    "In",
	IOOut:   "Out",
	IOBiDir: "BiDir",
}

// ParseIODirection accepts In, Out or BiDir
func ParseIODirection(s string) (IODirection, error) {
	switch s {
	case "In":
		return IOIn, nil
	case "Out":
		return IOOut, nil
	case "BiDir":
		return IOBiDir, nil
	}
	return IONone, fmt.Errorf("%w: unknown IO direction %q", ErrMalformedInput, s)
}

func (d IODirection) String() string {
	return ioDirectionNames[d]
}

// MarshalText encodes the direction by keyword
func (d IODirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Flag is a ground, net-label or IO-pin annotation anchored to a point
type Flag struct {
	Kind        FlagKind
	Position    Point
	Label       string
	IODirection IODirection
}

// Sheet is the SHEET header of a schematic
type Sheet struct {
	Number int
	Width  float64
	Height float64
}

// Schematic is the parsed, immutable model of one .asc file
type Schematic struct {
	Version   string
	Sheet     Sheet
	Wires     []Wire
	Instances []SymbolInstance
	Texts     []Text
	Shapes    []Shape
	Flags     []Flag
	Symbols   map[string]*SymbolDefinition
}

// NewSchematic returns an empty schematic
func NewSchematic() *Schematic {
	return &Schematic{
		Symbols: make(map[string]*SymbolDefinition),
	}
}

// SymbolNames returns the distinct referenced symbol names, sorted
func (s *Schematic) SymbolNames() []string {
	names := lo.Uniq(lo.Map(s.Instances, func(inst SymbolInstance, _ int) string {
		return inst.Symbol
	}))
	sort.Strings(names)
	return names
}

// GetSymbol returns the definition for name, or nil
func (s *Schematic) GetSymbol(name string) *SymbolDefinition {
	return s.Symbols[name]
}

// GetInstance finds an instance by its InstName
func (s *Schematic) GetInstance(name string) *SymbolInstance {
	for i := range s.Instances {
		if s.Instances[i].Name() == name {
			return &s.Instances[i]
		}
	}
	return nil
}

// FlagsOf returns the flags of the given kind
func (s *Schematic) FlagsOf(kind FlagKind) []Flag {
	return lo.Filter(s.Flags, func(f Flag, _ int) bool { return f.Kind == kind })
}
