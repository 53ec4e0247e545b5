// basm - a small register-machine assembly language that compiles to
// tape-language programs.
//
// Reads source from stdin (or a file argument) and writes the compiled
// program to stdout. Each pipeline stage fails with its own exit code
// so callers can tell an I/O problem from a malformed source.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/basmLang/basm/pkg/compiler"
	"github.com/basmLang/basm/pkg/parser"
	"github.com/basmLang/basm/pkg/tape"
)

// Exit codes, one per pipeline stage
const (
	exitRead  = 101
	exitParse = 102
	exitEmit  = 103
	exitRun   = 104
)

var (
	flagOut   = flag.String("o", "", "Write output to a file instead of stdout")
	flagRun   = flag.Bool("run", false, "Run the compiled program instead of printing it")
	flagSteps = flag.Int("steps", 0, "Step limit for -run (0 = unlimited)")
)

func main() {
	flag.Parse()

	source, err := readSource(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading source: %v\n", err)
		os.Exit(exitRead)
	}

	prog, err := parser.ParseInstructions(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing input: %v\n", err)
		os.Exit(exitParse)
	}

	code := compiler.CompileString(prog)

	if *flagRun {
		if err := runTarget(code); err != nil {
			fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
			os.Exit(exitRun)
		}
		return
	}

	if err := writeTarget(code); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(exitEmit)
	}
}

func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

func writeTarget(code string) error {
	if *flagOut != "" {
		return os.WriteFile(*flagOut, []byte(code), 0644)
	}
	_, err := io.WriteString(os.Stdout, code)
	return err
}

func runTarget(code string) error {
	vm := tape.New()
	vm.MaxSteps = *flagSteps
	if err := vm.Load([]byte(code)); err != nil {
		return err
	}
	return vm.Run()
}
