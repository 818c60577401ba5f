package flags

import (
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/transform"
)

// LabelDistance is the gap between a flag's glyph (or anchor) and its label
const LabelDistance = 8.0

type segment [2]model.Point

func seg(x1, y1, x2, y2 float64) segment {
	return segment{model.Pt(x1, y1), model.Pt(x2, y2)}
}

// Glyph outlines in the flag frame: anchor at the origin, the body
// extending toward +Y.
var (
	groundGlyph = []segment{
		seg(-16, 0, 16, 0),
		seg(-16, 0, 0, 16),
		seg(16, 0, 0, 16),
	}

	ioGlyphs = map[model.IODirection][]segment{
		model.IOBiDir: {
			seg(16, 16, 0, 0),
			seg(-16, 84, -16, 16),
			seg(16, 16, 16, 84),
			seg(0, 0, -16, 16),
			seg(0, 100, -16, 84),
			seg(0, 100, 16, 84),
		},
		model.IOIn: {
			seg(0, 0, 16, 16),
			seg(16, 16, 16, 80),
			seg(16, 80, -16, 80),
			seg(-16, 80, -16, 16),
			seg(-16, 16, 0, 0),
		},
		model.IOOut: {
			seg(-16, 80, 0, 96),
			seg(16, 16, 16, 80),
			seg(16, 16, -16, 16),
			seg(-16, 80, -16, 16),
			seg(0, 96, 16, 80),
			seg(0, 16, 0, 0),
		},
	}
)

// GlyphRotation turns the flag frame so the body points away from the
// facing direction.
func GlyphRotation(facing model.Direction) int {
	switch facing {
	case model.DirDown:
		return 180
	case model.DirLeft:
		return 270
	case model.DirRight:
		return 90
	}
	return 0
}

// Glyph is the drawable form of a resolved flag
type Glyph struct {
	Flag  model.ResolvedFlag
	Lines []model.Shape
	Label *model.ResolvedText
}

// Draw builds the glyph lines and the label of rf in document coordinates.
// Ground flags carry no label.
func Draw(rf model.ResolvedFlag) Glyph {
	g := Glyph{Flag: rf}
	rot := GlyphRotation(rf.Facing)

	var outline []segment
	switch rf.Flag.Kind {
	case model.FlagGround:
		outline = groundGlyph
	case model.FlagIOPin:
		outline = ioGlyphs[rf.Flag.IODirection]
	}

	reach := 0.0
	for _, s := range outline {
		reach = max(reach, s[0].Y, s[1].Y)
		g.Lines = append(g.Lines, model.Shape{
			Kind: model.ShapeLine,
			P1:   transform.Rotate(s[0], rot).Add(rf.Flag.Position),
			P2:   transform.Rotate(s[1], rot).Add(rf.Flag.Position),
		})
	}

	if rf.Flag.Kind != model.FlagGround && rf.Flag.Label != "" {
		label := placeLabel(rf, reach+LabelDistance)
		g.Label = &label
	}
	return g
}

// placeLabel puts a horizontal label dist units beyond the anchor on the
// glyph side, aligned so it reads away from the wire.
func placeLabel(rf model.ResolvedFlag, dist float64) model.ResolvedText {
	side := rf.Facing.Opposite()
	t := model.ResolvedText{
		Content: rf.Flag.Label,
		Size:    model.DefaultSize,
		Kind:    model.TextLabel,
		Source:  model.FromFlag,
	}
	p := rf.Flag.Position
	switch side {
	case model.DirRight:
		t.Position = model.Pt(p.X+dist, p.Y)
		t.Justification = model.JustifyLeft
	case model.DirLeft:
		t.Position = model.Pt(p.X-dist, p.Y)
		t.Justification = model.JustifyRight
	case model.DirDown:
		t.Position = model.Pt(p.X, p.Y+dist)
		t.Justification = model.JustifyTop
	default:
		t.Position = model.Pt(p.X, p.Y-dist)
		t.Justification = model.JustifyBottom
	}
	return t
}
