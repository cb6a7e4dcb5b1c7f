package intcode

import "fmt"

// A Machine runs an Intcode program. The zero value is an empty machine
// ready to Load a program.
type Machine struct {
	mem []int
	ip  int
}

// Load replaces memory with a copy of program. The instruction pointer
// is left as is.
func (m *Machine) Load(program []int) {
	m.mem = append(m.mem[:0], program...)
}

// Reset moves the instruction pointer back to 0 and empties memory.
func (m *Machine) Reset() {
	m.ip = 0
	m.mem = m.mem[:0]
}

// Memory returns the machine's memory. It aliases the machine's state.
func (m *Machine) Memory() []int {
	return m.mem
}

func (m *Machine) IP() int {
	return m.ip
}

func (m *Machine) Get(addr int) (int, error) {
	if addr < 0 || addr >= len(m.mem) {
		return 0, fmt.Errorf("read %d of %d: %w", addr, len(m.mem), ErrOutOfBounds)
	}
	return m.mem[addr], nil
}

func (m *Machine) Set(addr, v int) error {
	if addr < 0 || addr >= len(m.mem) {
		return fmt.Errorf("write %d of %d: %w", addr, len(m.mem), ErrOutOfBounds)
	}
	m.mem[addr] = v
	return nil
}

// Run executes instructions until a Halt or until the instruction
// pointer runs off the end of memory.
func (m *Machine) Run() error {
	for m.ip < len(m.mem) {
		in, err := Decode(m.mem, m.ip)
		if err != nil {
			return err
		}
		if in.Op == Halt {
			return nil
		}
		if err := m.exec(in); err != nil {
			return fmt.Errorf("%v at %d: %w", in, m.ip, err)
		}
		m.ip += in.Len()
	}
	return nil
}

func (m *Machine) exec(in Instruction) error {
	a, err := m.Get(in.A)
	if err != nil {
		return err
	}
	b, err := m.Get(in.B)
	if err != nil {
		return err
	}
	switch in.Op {
	case Add:
		return m.Set(in.Dest, a+b)
	case Multiply:
		return m.Set(in.Dest, a*b)
	}
	return fmt.Errorf("%w %d", ErrUnknownOpcode, int(in.Op))
}
