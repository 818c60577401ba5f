// Package flags decides which way ground, net-label and IO-pin flags face
// and produces their glyph and label geometry.
package flags

import (
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/junction"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
)

// Facing derives a flag's facing from the directions of its incident
// wires:
//
//	one wire               -> that wire's direction
//	two opposite wires     -> Right for a vertical pair, Down for a horizontal one
//	anything else          -> Left
func Facing(dirs []model.Direction) model.Direction {
	switch {
	case len(dirs) == 1 && dirs[0] != model.DirNone:
		return dirs[0]
	case len(dirs) == 2 && dirs[0] != model.DirNone && dirs[0].Opposite() == dirs[1]:
		if dirs[0].Vertical() {
			return model.DirRight
		}
		return model.DirDown
	}
	return model.DirLeft
}

// Resolve pairs f with its facing, taken from the wires ending at its anchor
func Resolve(f model.Flag, wires []model.Wire) model.ResolvedFlag {
	return model.ResolvedFlag{
		Flag:   f,
		Facing: Facing(junction.Directions(wires, f.Position)),
	}
}

// ResolveAll resolves every flag against the same wire set
func ResolveAll(fs []model.Flag, wires []model.Wire) []model.ResolvedFlag {
	out := make([]model.ResolvedFlag, 0, len(fs))
	for _, f := range fs {
		out = append(out, Resolve(f, wires))
	}
	return out
}
