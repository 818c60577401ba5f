package model

import (
	"fmt"
	"strings"
)

// Justification is the anchor alignment of a text. The V* variants also
// turn the baseline by 90 degrees.
type Justification int

const (
	JustifyLeft Justification = iota
	JustifyCenter
	JustifyRight
	JustifyTop
	JustifyBottom
	JustifyVTop
	JustifyVCenter
	JustifyVBottom
)

var justificationNames = []string{"Left", "Center", "Right", "Top", "Bottom", "VTop", "VCenter", "VBottom"}

// Justifications lists every legal justification in declaration order
var Justifications = []Justification{
	JustifyLeft, JustifyCenter, JustifyRight, JustifyTop,
	JustifyBottom, JustifyVTop, JustifyVCenter, JustifyVBottom,
}

// ParseJustification maps a source keyword to its Justification
func ParseJustification(s string) (Justification, error) {
	for i, name := range justificationNames {
		if s == name {
			return Justification(i), nil
		}
	}
	return JustifyLeft, fmt.Errorf("%w: unknown justification %q", ErrMalformedInput, s)
}

func (j Justification) String() string {
	if j < 0 || int(j) >= len(justificationNames) {
		return fmt.Sprintf("Justification(%d)", int(j))
	}
	return justificationNames[j]
}

// MarshalText encodes the justification by keyword
func (j Justification) MarshalText() ([]byte, error) {
	return []byte(j.String()), nil
}

// Vertical reports whether the text baseline runs at 90 degrees
func (j Justification) Vertical() bool {
	return j == JustifyVTop || j == JustifyVCenter || j == JustifyVBottom
}

// BaselineRotation is 90 for the V* variants and 0 otherwise
func (j Justification) BaselineRotation() int {
	if j.Vertical() {
		return 90
	}
	return 0
}

// Horizontal returns the justification's alignment along its own baseline:
// Left, Center or Right. VTop aligns like Left after its 90 degree turn,
// VBottom like Right.
func (j Justification) Horizontal() Justification {
	switch j {
	case JustifyLeft, JustifyVTop:
		return JustifyLeft
	case JustifyRight, JustifyVBottom:
		return JustifyRight
	}
	return JustifyCenter
}

// SizeMultipliers maps a size index to its font-size multiplier
var SizeMultipliers = [...]float64{0.625, 1.0, 1.5, 2.0, 2.5, 3.5, 5.0, 7.0}

// DefaultSize is the size index used when a line omits it
const DefaultSize = 2

// ParseSize validates a size index
func ParseSize(n int) (int, error) {
	if n < 0 || n >= len(SizeMultipliers) {
		return DefaultSize, fmt.Errorf("%w: text size %d out of range 0..%d", ErrMalformedInput, n, len(SizeMultipliers)-1)
	}
	return n, nil
}

// SizeMultiplier returns the multiplier for idx, falling back to the
// default index for out-of-range values.
func SizeMultiplier(idx int) float64 {
	if idx < 0 || idx >= len(SizeMultipliers) {
		return SizeMultipliers[DefaultSize]
	}
	return SizeMultipliers[idx]
}

// TextKind separates schematic comments, SPICE directives and plain labels
type TextKind int

const (
	TextLabel TextKind = iota
	TextComment
	TextDirective
)

var textKindNames = map[TextKind]string{
	TextLabel:     "label",
	TextComment:   "comment",
	TextDirective: "directive",
}

func (k TextKind) String() string {
	return textKindNames[k]
}

// MarshalText encodes the kind by name
func (k TextKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Text is a positioned, justified text record
type Text struct {
	Position      Point
	Content       string
	Justification Justification
	Size          int
	Kind          TextKind
}

// Lines splits the content into display lines
func (t Text) Lines() []string {
	return strings.Split(t.Content, "\n")
}
