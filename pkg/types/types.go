// Package types defines the basm instruction set.
// Every instruction the parser can produce implements the Instruction interface.
package types

import "fmt"

// Instruction is the interface all basm instructions implement.
// The set of implementations is closed: Input, Print, Write, Move,
// MoveValue and CopyValue.
type Instruction interface {
	// String returns the canonical basm source form
	String() string
	// Type returns the mnemonic name for error messages
	Type() string
	// Equal checks equality with another instruction
	Equal(other Instruction) bool
}

// Input reads one unit of input into the current register.
type Input struct{}

func (Input) String() string { return "INPUT" }
func (Input) Type() string   { return "INPUT" }

func (Input) Equal(other Instruction) bool {
	_, ok := other.(Input)
	return ok
}

// Print emits the current register's value.
type Print struct{}

func (Print) String() string { return "PRINT" }
func (Print) Type() string   { return "PRINT" }

func (Print) Equal(other Instruction) bool {
	_, ok := other.(Print)
	return ok
}

// Write clears the current register and sets it to Value.
type Write struct {
	Value uint32
}

func (w Write) String() string { return fmt.Sprintf("WRITE %d", w.Value) }
func (w Write) Type() string   { return "WRITE" }

func (w Write) Equal(other Instruction) bool {
	o, ok := other.(Write)
	return ok && w == o
}

// Move shifts the current-register pointer by Offset cells,
// right if positive and left if negative.
type Move struct {
	Offset int32
}

func (m Move) String() string { return fmt.Sprintf("MOVE %d", m.Offset) }
func (m Move) Type() string   { return "MOVE" }

func (m Move) Equal(other Instruction) bool {
	o, ok := other.(Move)
	return ok && m == o
}

// MoveValue transfers the current register's value to the register at
// Offset, zeroing the current register. The destination is cleared
// before the transfer. The pointer ends back on the register it
// started on.
type MoveValue struct {
	Offset int32
}

func (m MoveValue) String() string { return fmt.Sprintf("MOVEVAL %d", m.Offset) }
func (m MoveValue) Type() string   { return "MOVEVAL" }

func (m MoveValue) Equal(other Instruction) bool {
	o, ok := other.(MoveValue)
	return ok && m == o
}

// CopyValue copies the current register's value into the register at
// offset To, using the register at offset Tmp as scratch. Both offsets
// are measured from the current register. The current register keeps
// its value, Tmp ends at zero and the pointer ends back where it started.
type CopyValue struct {
	To  int32
	Tmp int32
}

func (c CopyValue) String() string { return fmt.Sprintf("COPY %d, %d", c.To, c.Tmp) }
func (c CopyValue) Type() string   { return "COPY" }

func (c CopyValue) Equal(other Instruction) bool {
	o, ok := other.(CopyValue)
	return ok && c == o
}
