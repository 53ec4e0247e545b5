package tape

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// VM is the tape-language virtual machine.
type VM struct {
	// Program
	Code []byte
	PC   int

	// Tape and the current cell index
	Tape []uint32
	Cell int

	// I/O for the , and . primitives
	Input  io.Reader
	Output io.Writer

	// Execution limits
	Steps    int
	MaxSteps int // 0 = unlimited

	// Halted
	Halted bool

	// jumps maps each bracket's position to its partner
	jumps map[int]int
}

// New creates a new VM with a small initial tape
func New() *VM {
	return &VM{
		Tape:   make([]uint32, 32),
		Input:  os.Stdin,
		Output: os.Stdout,
	}
}

// Reset clears the tape and execution state, keeping the loaded program
func (vm *VM) Reset() {
	vm.PC = 0
	vm.Cell = 0
	vm.Steps = 0
	vm.Halted = false
	for i := range vm.Tape {
		vm.Tape[i] = 0
	}
}

// Load loads a program into the VM and resolves its loop brackets.
// Unbalanced brackets are a load error.
func (vm *VM) Load(code []byte) error {
	jumps := make(map[int]int)
	var open []int
	for i, b := range code {
		switch b {
		case OpLoop:
			open = append(open, i)
		case OpEnd:
			if len(open) == 0 {
				return fmt.Errorf("unmatched ] at byte %d", i)
			}
			j := open[len(open)-1]
			open = open[:len(open)-1]
			jumps[j] = i
			jumps[i] = j
		}
	}
	if len(open) > 0 {
		return fmt.Errorf("unmatched [ at byte %d", open[len(open)-1])
	}

	vm.Code = code
	vm.PC = 0
	vm.jumps = jumps
	return nil
}

// Step executes one primitive
func (vm *VM) Step() error {
	if vm.Halted {
		return nil
	}

	if vm.PC >= len(vm.Code) {
		vm.Halted = true
		return nil
	}

	// Step budget check
	if vm.MaxSteps > 0 {
		vm.Steps++
		if vm.Steps > vm.MaxSteps {
			return fmt.Errorf("step budget exhausted after %d steps", vm.MaxSteps)
		}
	}

	op := vm.Code[vm.PC]
	vm.PC++

	switch op {
	case OpInc:
		if v := vm.Tape[vm.Cell]; v < ^uint32(0) {
			vm.Tape[vm.Cell] = v + 1
		}

	case OpDec:
		if v := vm.Tape[vm.Cell]; v > 0 {
			vm.Tape[vm.Cell] = v - 1
		}

	case OpRight:
		vm.Cell++
		if vm.Cell >= len(vm.Tape) {
			vm.Tape = append(vm.Tape, 0)
		}

	case OpLeft:
		// Moving left of cell zero stays at cell zero
		if vm.Cell > 0 {
			vm.Cell--
		}

	case OpOut:
		v := vm.Tape[vm.Cell]
		if utf8.ValidRune(rune(v)) {
			fmt.Fprintf(vm.Output, "%c", rune(v))
		} else {
			fmt.Fprintf(vm.Output, "r(%d)", v)
		}

	case OpIn:
		var buf [1]byte
		if _, err := io.ReadFull(vm.Input, buf[:]); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		vm.Tape[vm.Cell] = uint32(buf[0])

	case OpLoop:
		if vm.Tape[vm.Cell] == 0 {
			vm.PC = vm.jumps[vm.PC-1] + 1
		}

	case OpEnd:
		if vm.Tape[vm.Cell] != 0 {
			vm.PC = vm.jumps[vm.PC-1] + 1
		}

	default:
		// Not a primitive, skip
	}

	return nil
}

// Run executes until the program ends or an error occurs
func (vm *VM) Run() error {
	for !vm.Halted {
		if err := vm.Step(); err != nil {
			return err
		}
	}
	return nil
}

// TapeDump returns a string representation of the first n cells
func (vm *VM) TapeDump(n int) string {
	if n > len(vm.Tape) {
		n = len(vm.Tape)
	}
	s := "[ "
	for i := 0; i < n; i++ {
		s += fmt.Sprintf("%d ", vm.Tape[i])
	}
	return s + "]"
}
