// Package junction finds the wire junctions that need a connection dot.
package junction

import (
	"sort"

	"github.com/samber/lo"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
)

// Find returns the points where three or more distinct wires meet in at
// least three distinct cardinal directions. Points in terminals (symbol pin
// positions) are never junctions. The result is sorted by Y, then X.
//
// Endpoints are grouped by exact coordinate equality; LTspice coordinates
// are grid integers, so no tolerance is applied.
func Find(wires []model.Wire, terminals []model.Point) []model.Point {
	incident := make(map[model.Point][]int)
	for i, w := range wires {
		if w.Start == w.End {
			continue
		}
		incident[w.Start] = append(incident[w.Start], i)
		incident[w.End] = append(incident[w.End], i)
	}

	excluded := lo.SliceToMap(terminals, func(p model.Point) (model.Point, struct{}) {
		return p, struct{}{}
	})

	var out []model.Point
	for p, idx := range incident {
		if _, ok := excluded[p]; ok {
			continue
		}
		idx = lo.Uniq(idx)
		if len(idx) < 3 {
			continue
		}
		dirs := lo.Uniq(lo.Map(idx, func(i int, _ int) model.Direction {
			return model.DirectionTo(p, wires[i].Other(p))
		}))
		if len(dirs) >= 3 {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Directions returns the direction of each wire touching p, in wire
// order. Parallel wires repeat their direction.
func Directions(wires []model.Wire, p model.Point) []model.Direction {
	var dirs []model.Direction
	for _, w := range wires {
		if w.Start == w.End || !w.Touches(p) {
			continue
		}
		dirs = append(dirs, model.DirectionTo(p, w.Other(p)))
	}
	return dirs
}
