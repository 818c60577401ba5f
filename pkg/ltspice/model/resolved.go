package model

// TextSource records where a resolved text came from
type TextSource int

const (
	FromSchematic TextSource = iota // standalone TEXT line
	FromSymbol                      // TEXT line inside a definition
	FromWindow                      // instance value placed at a window slot
	FromFlag                        // net label or IO pin name
)

var textSourceNames = map[TextSource]string{
	FromSchematic: "schematic",
	FromSymbol:    "symbol",
	FromWindow:    "window",
	FromFlag:      "flag",
}

func (s TextSource) String() string {
	return textSourceNames[s]
}

// MarshalText encodes the source by name
func (s TextSource) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ResolvedText is a text placed in document coordinates.
//
// Rotation is the text's own turn inside its symbol frame (the 90 degree
// baseline of V* justifications plus Compensation). SymbolRotation is the
// rotation component of the owning instance; zero for standalone text.
type ResolvedText struct {
	Position       Point
	Content        string
	Justification  Justification
	Size           int
	Kind           TextKind
	Compensation   int
	Rotation       int
	SymbolRotation int
	Source         TextSource
	Window         WindowID // valid when Source is FromWindow
}

// AbsoluteRotation is the clockwise document-space rotation of the text
// baseline in degrees, in [0, 360).
func (t ResolvedText) AbsoluteRotation() int {
	return ((t.SymbolRotation+t.Rotation)%360 + 360) % 360
}

// Lines splits the content into display lines
func (t ResolvedText) Lines() []string {
	return Text{Content: t.Content}.Lines()
}

// ResolvedSymbol is one instance with all geometry in document coordinates
type ResolvedSymbol struct {
	Instance SymbolInstance
	Shapes   []Shape
	Pins     []Point
	Texts    []ResolvedText
}

// ResolvedFlag pairs a flag with the direction it faces
type ResolvedFlag struct {
	Flag   Flag
	Facing Direction
}
