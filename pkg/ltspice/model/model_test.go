package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrientation(t *testing.T) {
	for _, o := range Orientations {
		got, err := ParseOrientation(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}

	_, err := ParseOrientation("R45")
	assert.True(t, errors.Is(err, ErrMalformedInput))
}

func TestOrientationComponents(t *testing.T) {
	tests := []struct {
		o        Orientation
		rotation int
		mirrored bool
	}{
		{R0, 0, false},
		{R90, 90, false},
		{R180, 180, false},
		{R270, 270, false},
		{M0, 0, true},
		{M90, 90, true},
		{M180, 180, true},
		{M270, 270, true},
	}
	for _, tt := range tests {
		t.Run(tt.o.String(), func(t *testing.T) {
			assert.Equal(t, tt.rotation, tt.o.Rotation())
			assert.Equal(t, tt.mirrored, tt.o.Mirrored())
		})
	}
}

func TestParseJustification(t *testing.T) {
	for _, j := range Justifications {
		got, err := ParseJustification(j.String())
		require.NoError(t, err)
		assert.Equal(t, j, got)
	}

	_, err := ParseJustification("Middle")
	assert.ErrorIs(t, err, ErrMalformedInput)

	assert.Equal(t, 90, JustifyVTop.BaselineRotation())
	assert.Equal(t, 0, JustifyBottom.BaselineRotation())
	assert.Equal(t, JustifyLeft, JustifyVTop.Horizontal())
	assert.Equal(t, JustifyRight, JustifyVBottom.Horizontal())
	assert.Equal(t, JustifyCenter, JustifyTop.Horizontal())
}

func TestSizeMultiplier(t *testing.T) {
	assert.Equal(t, 0.625, SizeMultiplier(0))
	assert.Equal(t, 1.5, SizeMultiplier(DefaultSize))
	assert.Equal(t, 7.0, SizeMultiplier(7))
	assert.Equal(t, 1.5, SizeMultiplier(12))

	_, err := ParseSize(8)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestShapeBounds(t *testing.T) {
	circle := Shape{Kind: ShapeCircle, P1: Pt(-5, -5), P2: Pt(5, 5)}
	bb := circle.Bounds()
	assert.Equal(t, Pt(-5, -5), bb.Min)
	assert.Equal(t, Pt(5, 5), bb.Max)

	// arcs bound their full ellipse regardless of sweep
	arc := Shape{Kind: ShapeArc, P1: Pt(0, 0), P2: Pt(20, 10), ArcStart: Pt(20, 5), ArcEnd: Pt(10, 0)}
	bb = arc.Bounds()
	assert.Equal(t, Pt(0, 0), bb.Min)
	assert.Equal(t, Pt(20, 10), bb.Max)

	// corners given right-to-left still center the ellipse
	flipped := Shape{Kind: ShapeCircle, P1: Pt(20, 10), P2: Pt(0, 0)}
	assert.Equal(t, Pt(10, 5), flipped.Center())
	assert.Equal(t, arc.Bounds(), flipped.Bounds())

	line := Shape{Kind: ShapeLine, P1: Pt(10, -3), P2: Pt(-2, 7)}
	bb = line.Bounds()
	assert.Equal(t, Pt(-2, -3), bb.Min)
	assert.Equal(t, Pt(10, 7), bb.Max)
}

func TestBoundingBox(t *testing.T) {
	bb := NewBoundingBox()
	assert.True(t, bb.IsEmpty())

	bb.Expand(Pt(1, 2), Pt(-3, 8))
	assert.False(t, bb.IsEmpty())
	assert.Equal(t, 4.0, bb.Width())
	assert.Equal(t, 6.0, bb.Height())
	assert.Equal(t, Pt(-1, 5), bb.Center())

	other := NewBoundingBox()
	bb.ExpandBox(other)
	assert.Equal(t, 4.0, bb.Width())
}

func TestDirectionTo(t *testing.T) {
	o := Pt(0, 0)
	assert.Equal(t, DirUp, DirectionTo(o, Pt(0, -16)))
	assert.Equal(t, DirDown, DirectionTo(o, Pt(0, 16)))
	assert.Equal(t, DirLeft, DirectionTo(o, Pt(-16, 0)))
	assert.Equal(t, DirRight, DirectionTo(o, Pt(16, 0)))
	assert.Equal(t, DirNone, DirectionTo(o, o))
	assert.Equal(t, DirRight, DirectionTo(o, Pt(16, 4)))
	assert.Equal(t, DirDown, DirUp.Opposite())
	assert.Equal(t, DirNone, DirNone.Opposite())
}

func TestEffectiveWindow(t *testing.T) {
	def := NewSymbolDefinition("res")
	def.Windows[WindowInstName] = Window{ID: WindowInstName, Position: Pt(36, 40), Justification: JustifyLeft, Size: 2}
	def.Windows[WindowValue] = Window{ID: WindowValue, Position: Pt(36, 76), Justification: JustifyLeft, Size: 2}

	inst := SymbolInstance{
		Symbol: "res",
		Overrides: map[WindowID]Window{
			WindowValue:     {ID: WindowValue, Position: Pt(-8, 0), Justification: JustifyVBottom, Size: 2},
			WindowSpiceLine: {ID: WindowSpiceLine, Position: Pt(0, 0)},
		},
	}

	w, ok := inst.EffectiveWindow(def, WindowInstName)
	require.True(t, ok)
	assert.Equal(t, Pt(36, 40), w.Position)

	w, ok = inst.EffectiveWindow(def, WindowValue)
	require.True(t, ok)
	assert.Equal(t, JustifyVBottom, w.Justification)

	// an override of an undeclared slot is a no-op
	_, ok = inst.EffectiveWindow(def, WindowSpiceLine)
	assert.False(t, ok)

	_, ok = inst.EffectiveWindow(nil, WindowInstName)
	assert.False(t, ok)
}

func TestSchematicSymbolNames(t *testing.T) {
	sch := NewSchematic()
	sch.Instances = []SymbolInstance{
		{Symbol: "res", Values: map[WindowID]string{WindowInstName: "R1"}},
		{Symbol: "cap", Values: map[WindowID]string{WindowInstName: "C1"}},
		{Symbol: "res", Values: map[WindowID]string{WindowInstName: "R2"}},
	}
	assert.Equal(t, []string{"cap", "res"}, sch.SymbolNames())
	require.NotNil(t, sch.GetInstance("R2"))
	assert.Equal(t, "res", sch.GetInstance("R2").Symbol)
	assert.Nil(t, sch.GetInstance("R9"))
}
