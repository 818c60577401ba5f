package model

import "fmt"

// Orientation is a symbol placement code: a rotation, optionally preceded
// by a mirror about the local Y axis.
type Orientation int

const (
	R0 Orientation = iota
	R90
	R180
	R270
	M0
	M90
	M180
	M270
)

var orientationNames = []string{"R0", "R90", "R180", "R270", "M0", "M90", "M180", "M270"}

// Orientations lists all eight codes
var Orientations = []Orientation{R0, R90, R180, R270, M0, M90, M180, M270}

// ParseOrientation maps a source token to its Orientation
func ParseOrientation(s string) (Orientation, error) {
	for i, name := range orientationNames {
		if s == name {
			return Orientation(i), nil
		}
	}
	return R0, fmt.Errorf("%w: unknown orientation %q", ErrMalformedInput, s)
}

func (o Orientation) String() string {
	if o < 0 || int(o) >= len(orientationNames) {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationNames[o]
}

// MarshalText encodes the orientation by code
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Mirrored reports whether the local X axis is negated before rotating
func (o Orientation) Mirrored() bool {
	return o >= M0
}

// Rotation returns the rotation component in degrees
func (o Orientation) Rotation() int {
	return int(o%4) * 90
}
