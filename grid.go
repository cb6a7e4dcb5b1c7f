package aoc

import (
	"fmt"
	"strings"
)

type Grid[T any] [][]T

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= len(g[0]) || p.Y >= len(g) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// Fill sets every cell of g to v.
func (g Grid[T]) Fill(v T) {
	for _, row := range g {
		for x := range row {
			row[x] = v
		}
	}
}

// String returns g with one row per line. Byte and rune cells are
// written as characters, anything else with %v.
func (g Grid[T]) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, c := range row {
			switch c := any(c).(type) {
			case byte:
				sb.WriteByte(c)
			case rune:
				sb.WriteRune(c)
			default:
				fmt.Fprint(&sb, c)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
