// Package parser provides basm parsing using Participle v2.
// Grammar is defined as Go structs with tags.
package parser

import (
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/basmLang/basm/pkg/types"
)

// AST node types - parsed from source, converted to types.Instruction
// for code generation

// Program is the top-level AST node
type Program struct {
	Statements []*Statement `parser:"@@*"`
}

// Statement is a single instruction, one alternative per mnemonic
type Statement struct {
	Pos lexer.Position

	Input     bool      `parser:"  @'INPUT'"`
	Print     bool      `parser:"| @'PRINT'"`
	Write     *WriteArg `parser:"| 'WRITE' @@"`
	Move      *int32    `parser:"| 'MOVE' @Int"`
	MoveValue *int32    `parser:"| 'MOVEVAL' @Int"`
	Copy      *CopyArgs `parser:"| 'COPY' @@"`
}

// WriteArg is WRITE's parameter: an unsigned decimal integer or a
// character literal (plain or backslash-escaped)
type WriteArg struct {
	Pos lexer.Position

	Number *uint32 `parser:"  @Int"`
	Char   *string `parser:"| @Char"`
}

// CopyArgs is COPY's parameter pair: destination and scratch offsets
type CopyArgs struct {
	To  int32 `parser:"@Int ','"`
	Tmp int32 `parser:"@Int"`
}

// basm lexer definition
var basmLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Skip whitespace and ;-to-end-of-line comments
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Comment", Pattern: `;[^\n]*`},

	// Literals
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "Char", Pattern: `'\\?[^']'`},

	// Mnemonics
	{Name: "Ident", Pattern: `[A-Za-z]+`},

	// Punctuation
	{Name: "Comma", Pattern: `,`},
})

// Parser is the basm parser
var Parser = participle.MustBuild[Program](
	participle.Lexer(basmLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Parse parses basm source code into a Program AST
func Parse(source string) (*Program, error) {
	return Parser.ParseString("", source)
}

// ParseInstructions parses basm source and converts it to the
// instruction list the compiler consumes. The first error anywhere in
// the source aborts the whole parse; there are no partial programs.
func ParseInstructions(source string) ([]types.Instruction, error) {
	prog, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return prog.ToInstructions()
}

// ToInstruction converts a Statement AST node to an Instruction
func (s *Statement) ToInstruction() (types.Instruction, error) {
	switch {
	case s.Input:
		return types.Input{}, nil
	case s.Print:
		return types.Print{}, nil
	case s.Write != nil:
		v, err := s.Write.Value()
		if err != nil {
			return nil, err
		}
		return types.Write{Value: v}, nil
	case s.Move != nil:
		return types.Move{Offset: *s.Move}, nil
	case s.MoveValue != nil:
		return types.MoveValue{Offset: *s.MoveValue}, nil
	case s.Copy != nil:
		return types.CopyValue{To: s.Copy.To, Tmp: s.Copy.Tmp}, nil
	}
	return nil, participle.Errorf(s.Pos, "empty statement")
}

// Value resolves WRITE's parameter to its numeric value. Character
// literals yield their code point; the only recognized escape is \n.
func (w *WriteArg) Value() (uint32, error) {
	if w.Number != nil {
		return *w.Number, nil
	}

	// Strip the surrounding quotes from the Char token. A lone
	// backslash ('\') is a plain character, not an escape.
	body := (*w.Char)[1 : len(*w.Char)-1]
	if len(body) == 2 && body[0] == '\\' {
		esc := body[1]
		if esc != 'n' {
			return 0, participle.Errorf(w.Pos, "unsupported escape character %q", esc)
		}
		return '\n', nil
	}

	r, _ := utf8.DecodeRuneInString(body)
	return uint32(r), nil
}

// ToInstructions converts a Program to the instruction list for
// code generation, preserving source order
func (p *Program) ToInstructions() ([]types.Instruction, error) {
	instrs := make([]types.Instruction, 0, len(p.Statements))
	for _, stmt := range p.Statements {
		in, err := stmt.ToInstruction()
		if err != nil {
			return nil, err
		}
		instrs = append(instrs, in)
	}
	return instrs, nil
}
