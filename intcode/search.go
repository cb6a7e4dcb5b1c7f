package intcode

import (
	"fmt"

	"tailscale.com/util/deephash"
)

var hashProgram = deephash.HasherForType[[]int]()

type searchKey struct {
	prog   deephash.Sum
	target int
}

// A Searcher finds the noun and verb (the values at addresses 1 and 2)
// for which a program leaves a target value at address 0. Answers are
// remembered per program and target.
type Searcher struct {
	m    Machine
	memo map[searchKey]int
}

// Search tries every noun and verb in 0..99, noun-major, and returns
// 100*noun+verb for the first pair producing target.
func (s *Searcher) Search(program []int, target int) (int, error) {
	k := searchKey{hashProgram(&program), target}
	if v, ok := s.memo[k]; ok {
		return v, nil
	}
	for noun := 0; noun < 100; noun++ {
		for verb := 0; verb < 100; verb++ {
			got, err := RunWith(&s.m, program, noun, verb)
			if err != nil {
				return 0, fmt.Errorf("noun=%d verb=%d: %w", noun, verb, err)
			}
			if got != target {
				continue
			}
			if s.memo == nil {
				s.memo = make(map[searchKey]int)
			}
			s.memo[k] = 100*noun + verb
			return s.memo[k], nil
		}
	}
	return 0, fmt.Errorf("%w %d", ErrNotFound, target)
}

// RunWith resets m, loads program, seeds addresses 1 and 2 with noun and
// verb, runs it and returns the value left at address 0.
func RunWith(m *Machine, program []int, noun, verb int) (int, error) {
	m.Reset()
	m.Load(program)
	if err := m.Set(1, noun); err != nil {
		return 0, err
	}
	if err := m.Set(2, verb); err != nil {
		return 0, err
	}
	if err := m.Run(); err != nil {
		return 0, err
	}
	return m.Get(0)
}
