package transform

import "github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"

// Entry is the behavior attached to one orientation code
type Entry struct {
	Mirror       bool
	Rotation     int
	Compensation int
	Swap         func(model.Justification) model.Justification
}

// Map mirrors (if required) and rotates a local point about the origin
func (e Entry) Map(p model.Point) model.Point {
	if e.Mirror {
		p.X = -p.X
	}
	return Rotate(p, e.Rotation)
}

func keepJustification(j model.Justification) model.Justification {
	return j
}

// swapJustification exchanges the alignment side for a half-turned text.
// Center, VCenter, Top and Bottom are unchanged.
func swapJustification(j model.Justification) model.Justification {
	switch j {
	case model.JustifyLeft:
		return model.JustifyRight
	case model.JustifyRight:
		return model.JustifyLeft
	case model.JustifyVTop:
		return model.JustifyVBottom
	case model.JustifyVBottom:
		return model.JustifyVTop
	}
	return j
}

// orientations is keyed by code. Compensation depends only on the rotation
// component; the mirror bit is absorbed by the coordinate mirror.
var orientations = map[model.Orientation]Entry{
	model.R0:   {Mirror: false, Rotation: 0, Compensation: 0, Swap: keepJustification},
	model.R90:  {Mirror: false, Rotation: 90, Compensation: 0, Swap: keepJustification},
	model.R180: {Mirror: false, Rotation: 180, Compensation: 180, Swap: swapJustification},
	model.R270: {Mirror: false, Rotation: 270, Compensation: 180, Swap: swapJustification},
	model.M0:   {Mirror: true, Rotation: 0, Compensation: 0, Swap: keepJustification},
	model.M90:  {Mirror: true, Rotation: 90, Compensation: 0, Swap: keepJustification},
	model.M180: {Mirror: true, Rotation: 180, Compensation: 180, Swap: swapJustification},
	model.M270: {Mirror: true, Rotation: 270, Compensation: 180, Swap: swapJustification},
}

// Lookup returns the table entry for o. Unknown codes behave like R0.
func Lookup(o model.Orientation) Entry {
	if e, ok := orientations[o]; ok {
		return e
	}
	return orientations[model.R0]
}
