// Package intcode implements the Intcode computer: a flat integer memory
// executed by a machine that understands add, multiply and halt.
package intcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownOpcode = errors.New("intcode: unknown opcode")
	ErrOutOfBounds   = errors.New("intcode: address out of bounds")
	ErrNotFound      = errors.New("intcode: no noun and verb produce target")
)

type Opcode int

const (
	Add      Opcode = 1
	Multiply Opcode = 2
	Halt     Opcode = 99
)

func (o Opcode) String() string {
	switch o {
	case Add:
		return "add"
	case Multiply:
		return "mul"
	case Halt:
		return "halt"
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// An Instruction is a decoded opcode and its parameters. A and B are the
// source addresses and Dest the destination address; all three are
// unused for Halt.
type Instruction struct {
	Op   Opcode
	A, B int
	Dest int
}

// Len returns the number of memory cells the instruction occupies.
func (in Instruction) Len() int {
	if in.Op == Halt {
		return 1
	}
	return 4
}

func (in Instruction) String() string {
	if in.Op == Halt {
		return in.Op.String()
	}
	return fmt.Sprintf("%v %d %d -> %d", in.Op, in.A, in.B, in.Dest)
}

// Decode decodes the instruction at mem[ip].
func Decode(mem []int, ip int) (Instruction, error) {
	if ip < 0 || ip >= len(mem) {
		return Instruction{}, fmt.Errorf("decode at %d: %w", ip, ErrOutOfBounds)
	}
	op := Opcode(mem[ip])
	switch op {
	case Halt:
		return Instruction{Op: Halt}, nil
	case Add, Multiply:
		if ip+3 >= len(mem) {
			return Instruction{}, fmt.Errorf("decode %v at %d: truncated: %w", op, ip, ErrOutOfBounds)
		}
		return Instruction{
			Op:   op,
			A:    mem[ip+1],
			B:    mem[ip+2],
			Dest: mem[ip+3],
		}, nil
	}
	return Instruction{}, fmt.Errorf("%w %d at %d", ErrUnknownOpcode, mem[ip], ip)
}

// Parse parses a comma separated Intcode program.
func Parse(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("intcode: empty program")
	}
	fields := strings.Split(text, ",")
	prog := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("intcode: parsing cell %d: %w", i, err)
		}
		prog[i] = v
	}
	return prog, nil
}
