// Package wire traces wires laid out on a grid from a central port and
// finds where they cross.
package wire

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2019"
)

var (
	ErrDirection = errors.New("wire: unknown direction")
	ErrDistance  = errors.New("wire: bad distance")
)

// Y grows upward.
var directions = map[byte]aoc.Pt{
	'U': {X: 0, Y: 1},
	'D': {X: 0, Y: -1},
	'L': {X: -1, Y: 0},
	'R': {X: 1, Y: 0},
}

// A Wire is a path of axis-aligned segments starting at the origin. It
// holds one vertex per instruction it was built from.
type Wire struct {
	pts []aoc.Pt
}

// Parse builds a wire from comma separated instructions such as
// "U8,R4", each a direction letter followed by a distance.
func Parse(text string) (*Wire, error) {
	w := &Wire{pts: []aoc.Pt{{}}}
	text = strings.TrimSpace(text)
	if text == "" {
		return w, nil
	}
	for i, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, fmt.Errorf("instruction %d: empty: %w", i, ErrDirection)
		}
		d, ok := directions[tok[0]]
		if !ok {
			return nil, fmt.Errorf("instruction %d %q: %w", i, tok, ErrDirection)
		}
		n, err := strconv.Atoi(tok[1:])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("instruction %d %q: %w", i, tok, ErrDistance)
		}
		last := w.pts[len(w.pts)-1]
		w.pts = append(w.pts, last.Add(aoc.Pt{X: d.X * n, Y: d.Y * n}))
	}
	return w, nil
}

// Points returns the wire's vertices, starting with the origin.
func (w *Wire) Points() []aoc.Pt {
	return w.pts
}

// walk calls f with every point the wire passes through, one unit step
// at a time, and the number of steps taken to get there. The origin is
// step 0. It stops early if f returns false.
func (w *Wire) walk(f func(p aoc.Pt, steps int) (keepGoing bool)) {
	p := w.pts[0]
	if !f(p, 0) {
		return
	}
	steps := 0
	for _, v := range w.pts[1:] {
		for p != v {
			p = p.Toward(v)
			steps++
			if !f(p, steps) {
				return
			}
		}
	}
}

// steps maps each point on w to the fewest steps needed to reach it.
func (w *Wire) steps() map[aoc.Pt]int {
	m := make(map[aoc.Pt]int)
	w.walk(func(p aoc.Pt, steps int) bool {
		if _, ok := m[p]; !ok {
			m[p] = steps
		}
		return true
	})
	return m
}

// StepsTo returns the number of steps along w to first reach p.
func (w *Wire) StepsTo(p aoc.Pt) (n int, ok bool) {
	w.walk(func(q aoc.Pt, steps int) bool {
		if q == p {
			n, ok = steps, true
			return false
		}
		return true
	})
	return n, ok
}

// CrossOvers returns the points both w and other pass through, other
// than the origin, in the order w first reaches them.
func (w *Wire) CrossOvers(other *Wire) []aoc.Pt {
	on := other.steps()
	seen := make(map[aoc.Pt]bool)
	var out []aoc.Pt
	w.walk(func(p aoc.Pt, _ int) bool {
		if _, ok := on[p]; ok && p != (aoc.Pt{}) && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
		return true
	})
	return out
}

// Distance returns the manhattan distance between p1 and p2.
func Distance(p1, p2 aoc.Pt) int {
	return p1.MDist(p2)
}

// Closest returns the manhattan distance from the origin to the nearest
// point where a and b cross. ok is false if they never cross.
func Closest(a, b *Wire) (dist int, ok bool) {
	for _, p := range a.CrossOvers(b) {
		d := Distance(aoc.Pt{}, p)
		if !ok || d < dist {
			dist, ok = d, true
		}
	}
	return dist, ok
}

// FewestSteps returns the lowest combined number of steps a and b take
// to reach a point where they cross.
func FewestSteps(a, b *Wire) (steps int, ok bool) {
	as, bs := a.steps(), b.steps()
	for _, p := range a.CrossOvers(b) {
		s := as[p] + bs[p]
		if !ok || s < steps {
			steps, ok = s, true
		}
	}
	return steps, ok
}
