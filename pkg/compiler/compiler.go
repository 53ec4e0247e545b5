// Package compiler translates basm instructions into tape-language
// text, one fragment per instruction.
//
// Each fragment is self-contained: it assumes the tape pointer sits on
// the current register when it starts and, except for Move, puts the
// pointer back on that register when it ends. Fragments share no state,
// so a program compiles to the plain concatenation of its fragments.
package compiler

import (
	"io"
	"strings"

	"github.com/basmLang/basm/pkg/tape"
	"github.com/basmLang/basm/pkg/types"
)

// Compile writes the tape-language program for prog to w, one
// newline-terminated line per instruction, in program order.
func Compile(w io.Writer, prog []types.Instruction) error {
	for _, in := range prog {
		if _, err := io.WriteString(w, Fragment(in)); err != nil {
			return err
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}

// CompileString compiles prog and returns the target text.
func CompileString(prog []types.Instruction) string {
	var b strings.Builder
	Compile(&b, prog) // a strings.Builder write cannot fail
	return b.String()
}

// emitter builds one instruction's fragment while tracking the tape
// pointer's offset from the register the fragment started on. Pointer
// bookkeeping is the part that silently corrupts registers when it is
// wrong, so it is explicit data flow here: seek is the only way to
// move the pointer, and it records where the pointer lands.
type emitter struct {
	b   strings.Builder
	pos int32
}

// op emits a primitive that does not move the pointer
func (e *emitter) op(b byte) {
	e.b.WriteByte(b)
}

// seek emits the shifts that take the pointer from its current offset
// to target.
func (e *emitter) seek(target int32) {
	for ; e.pos < target; e.pos++ {
		e.op(tape.OpRight)
	}
	for ; e.pos > target; e.pos-- {
		e.op(tape.OpLeft)
	}
}

// clear zeroes the cell under the pointer
func (e *emitter) clear() {
	e.op(tape.OpLoop)
	e.op(tape.OpDec)
	e.op(tape.OpEnd)
}

// drain emits the drain-and-carry loop: while the cell at from is
// nonzero, decrement it and increment the cell at to. One iteration
// per unit, so it zeroes from and adds its whole value into to.
// The pointer must be at from and ends there.
func (e *emitter) drain(from, to int32) {
	e.op(tape.OpLoop)
	e.op(tape.OpDec)
	e.seek(to)
	e.op(tape.OpInc)
	e.seek(from)
	e.op(tape.OpEnd)
}

// Fragment returns the tape-language fragment for a single
// instruction. Generation is total over the instruction set.
func Fragment(instr types.Instruction) string {
	var e emitter

	switch in := instr.(type) {
	case types.Input:
		e.op(tape.OpIn)

	case types.Print:
		e.op(tape.OpOut)

	case types.Write:
		// The increments only add, so clear the register first
		e.clear()
		for i := uint32(0); i < in.Value; i++ {
			e.op(tape.OpInc)
		}

	case types.Move:
		// The one instruction whose job is to leave the pointer elsewhere
		e.seek(in.Offset)

	case types.MoveValue:
		// The transfer loop only adds into the destination, so zero it
		// before draining the source into it
		e.seek(in.Offset)
		e.clear()
		e.seek(0)
		e.drain(0, in.Offset)

	case types.CopyValue:
		// Zero destination and scratch, fan the source out into both,
		// then drain the scratch copy back to restore the source
		e.seek(in.To)
		e.clear()
		e.seek(in.Tmp)
		e.clear()
		e.seek(0)

		e.op(tape.OpLoop)
		e.op(tape.OpDec)
		e.seek(in.To)
		e.op(tape.OpInc)
		e.seek(in.Tmp)
		e.op(tape.OpInc)
		e.seek(0)
		e.op(tape.OpEnd)

		e.seek(in.Tmp)
		e.drain(in.Tmp, 0)
		e.seek(0)
	}

	return e.b.String()
}
