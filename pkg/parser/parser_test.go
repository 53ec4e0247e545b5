package parser

import (
	"testing"

	"github.com/basmLang/basm/pkg/types"
)

// Helper to parse source that must be valid
func parse(t *testing.T, source string) []types.Instruction {
	t.Helper()
	instrs, err := ParseInstructions(source)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return instrs
}

func TestSingleInstructions(t *testing.T) {
	tests := []struct {
		source   string
		expected types.Instruction
	}{
		{"INPUT", types.Input{}},
		{"PRINT", types.Print{}},
		{"WRITE 5", types.Write{Value: 5}},
		{"WRITE 0", types.Write{Value: 0}},
		{"WRITE 'a'", types.Write{Value: 'a'}},
		{"WRITE ' '", types.Write{Value: ' '}},
		{`WRITE '\n'`, types.Write{Value: '\n'}},
		{"MOVE 3", types.Move{Offset: 3}},
		{"MOVE -3", types.Move{Offset: -3}},
		{"MOVE 0", types.Move{Offset: 0}},
		{"MOVEVAL 1", types.MoveValue{Offset: 1}},
		{"MOVEVAL -2", types.MoveValue{Offset: -2}},
		{"COPY 1, 2", types.CopyValue{To: 1, Tmp: 2}},
		{"COPY -1,2", types.CopyValue{To: -1, Tmp: 2}},
		{"COPY  1 , -2", types.CopyValue{To: 1, Tmp: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			instrs := parse(t, tt.source)
			if len(instrs) != 1 {
				t.Fatalf("Expected 1 instruction, got %d", len(instrs))
			}
			if !instrs[0].Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, instrs[0])
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"unknown mnemonic", "FOO"},
		{"lowercase mnemonic", "input"},
		{"unsupported escape", `WRITE '\t'`},
		{"missing operand", "WRITE"},
		{"truncated copy", "COPY 1,"},
		{"copy without comma", "COPY 1 2"},
		{"unterminated quote", "WRITE 'a"},
		{"negative write", "WRITE -1"},
		{"bad word mid program", "WRITE 5\nFOO\nPRINT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseInstructions(tt.source); err == nil {
				t.Errorf("Expected parse error for %q", tt.source)
			}
		})
	}
}

func TestProgramOrder(t *testing.T) {
	instrs := parse(t, "WRITE 5\nMOVE 1\nINPUT\nMOVEVAL -1\nPRINT\n")
	expected := []types.Instruction{
		types.Write{Value: 5},
		types.Move{Offset: 1},
		types.Input{},
		types.MoveValue{Offset: -1},
		types.Print{},
	}

	if len(instrs) != len(expected) {
		t.Fatalf("Expected %d instructions, got %d", len(expected), len(instrs))
	}
	for i, exp := range expected {
		if !instrs[i].Equal(exp) {
			t.Errorf("Instruction %d: expected %v, got %v", i, exp, instrs[i])
		}
	}
}

func TestComments(t *testing.T) {
	with := parse(t, "; set up the counter\nWRITE 5\nPRINT ; show it\n")
	without := parse(t, "WRITE 5\nPRINT\n")

	if len(with) != len(without) {
		t.Fatalf("Expected %d instructions, got %d", len(without), len(with))
	}
	for i := range without {
		if !with[i].Equal(without[i]) {
			t.Errorf("Instruction %d: expected %v, got %v", i, without[i], with[i])
		}
	}
}

func TestEmptyInput(t *testing.T) {
	for _, source := range []string{"", "  \n\t ", "; just a comment"} {
		instrs, err := ParseInstructions(source)
		if err != nil {
			t.Fatalf("Parse error for %q: %v", source, err)
		}
		if len(instrs) != 0 {
			t.Errorf("Expected empty program for %q, got %d instructions", source, len(instrs))
		}
	}
}

// Every instruction must survive a round trip through its own
// canonical source form.
func TestCanonicalRoundTrip(t *testing.T) {
	instrs := []types.Instruction{
		types.Input{},
		types.Print{},
		types.Write{Value: 0},
		types.Write{Value: 42},
		types.Move{Offset: -7},
		types.Move{Offset: 0},
		types.MoveValue{Offset: 3},
		types.MoveValue{Offset: -1},
		types.CopyValue{To: 1, Tmp: 2},
		types.CopyValue{To: -2, Tmp: 4},
	}

	for _, in := range instrs {
		t.Run(in.String(), func(t *testing.T) {
			got := parse(t, in.String())
			if len(got) != 1 {
				t.Fatalf("Expected 1 instruction, got %d", len(got))
			}
			if !got[0].Equal(in) {
				t.Errorf("Expected %v, got %v", in, got[0])
			}
		})
	}
}
