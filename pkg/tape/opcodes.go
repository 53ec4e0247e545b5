// Package tape implements the cell-machine target language: the eight
// primitives the compiler emits and a virtual machine that runs them.
//
// The machine model is a single tape of unsigned cells with one
// pointer. The tape grows rightward on demand and the pointer stops at
// cell zero when moved left. Cell arithmetic saturates instead of
// wrapping.
package tape

// The eight primitives. Any other byte in a program is a no-op, so
// compiler output may carry newlines and spacing freely.
const (
	OpRight byte = '>' // shift the pointer one cell right
	OpLeft  byte = '<' // shift the pointer one cell left
	OpInc   byte = '+' // increment the current cell
	OpDec   byte = '-' // decrement the current cell
	OpLoop  byte = '[' // enter the loop body if the current cell is nonzero
	OpEnd   byte = ']' // loop back while the current cell is nonzero
	OpOut   byte = '.' // write the current cell as a code point
	OpIn    byte = ',' // read one byte into the current cell
)
