package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2019"
	"github.com/maisem/aoc2019/fuel"
	"github.com/maisem/aoc2019/intcode"
	"github.com/maisem/aoc2019/wire"
)

func main() {
	aoc.Run(2019, source, &solver{searcher: new(intcode.Searcher)})
}

//go:embed aoc2019.go
var source []byte

type solver struct {
	*aoc.Puzzle

	// searcher remembers noun/verb answers across runs of day 2.
	searcher *intcode.Searcher
}

func (s solver) masses() []int {
	return aoc.Ints(s.Lines()...)
}

/*
want=34241

12
14
1969
100756
*/
func (s solver) D1p1() any {
	return fuel.Sum(s.masses(), fuel.Required)
}

// want=51316
func (s solver) D1p2() any {
	return fuel.Sum(s.masses(), fuel.Total)
}

func (s solver) program() []int {
	return aoc.MustGet(intcode.Parse(string(s.Input())))
}

// D2p1 restores the "1202 program alarm" state and reports address 0.
func (s solver) D2p1() any {
	var m intcode.Machine
	got := aoc.MustGet(intcode.RunWith(&m, s.program(), 12, 2))
	s.Debug(m.Memory()[:4])
	return got
}

func (s solver) D2p2() any {
	return aoc.MustGet(s.searcher.Search(s.program(), 19690720))
}

func (s solver) wires() (a, b *wire.Wire) {
	lines := s.Lines()
	if len(lines) != 2 {
		panic("want 2 wires")
	}
	a = aoc.MustGet(wire.Parse(lines[0]))
	b = aoc.MustGet(wire.Parse(lines[1]))
	s.Debugf("%v", wire.Render(a, b))
	return a, b
}

/*
want=6

R8,U5,L5,D3
U7,R6,D4,L4
*/
func (s solver) D3p1() any {
	d, ok := wire.Closest(s.wires())
	if !ok {
		panic("wires never cross")
	}
	return d
}

// want=30
func (s solver) D3p2() any {
	n, ok := wire.FewestSteps(s.wires())
	if !ok {
		panic("wires never cross")
	}
	return n
}
