package wire

import aoc "github.com/maisem/aoc2019"

// Render draws the wires the way the puzzle does: 'o' marks the origin,
// '-' and '|' the runs, '+' the turns and 'X' where different wires
// cross. The drawing has a one cell border of '.' and north is up.
func Render(wires ...*Wire) aoc.Grid[byte] {
	var lo, hi aoc.Pt
	for _, w := range wires {
		for _, p := range w.pts {
			lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
			hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
		}
	}
	cell := func(p aoc.Pt) aoc.Pt {
		return aoc.Pt{X: p.X - lo.X + 1, Y: hi.Y - p.Y + 1}
	}
	g := aoc.MakeGrid[byte](hi.X-lo.X+3, hi.Y-lo.Y+3)
	g.Fill('.')
	owner := aoc.MakeGrid[int](hi.X-lo.X+3, hi.Y-lo.Y+3)

	for i, w := range wires {
		id := i + 1
		for j := 1; j < len(w.pts); j++ {
			from, to := w.pts[j-1], w.pts[j]
			run := byte('|')
			if from.Y == to.Y {
				run = '-'
			}
			for p := from; p != to; {
				p = p.Toward(to)
				c := run
				if p == to && j < len(w.pts)-1 {
					c = '+'
				}
				q := cell(p)
				switch o, _ := owner.AtOk(q); {
				case o == 0:
					owner.Set(q, id)
				case o == id:
					c = '+'
				default:
					c = 'X'
				}
				g.Set(q, c)
			}
		}
	}
	g.Set(cell(aoc.Pt{}), 'o')
	return g
}
