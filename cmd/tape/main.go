// tape runs tape-language programs.
//
// The program's , primitive reads bytes from stdin and . writes to
// stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/basmLang/basm/pkg/tape"
)

var (
	flagSteps = flag.Int("steps", 0, "Step limit (0 = unlimited)")
	flagCells = flag.Int("cells", 32, "Initial tape size in cells")
	flagDump  = flag.Bool("dump", false, "Print the leading tape cells after the run")
)

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: tape [-steps n] [-cells n] [-dump] <file>")
		os.Exit(1)
	}

	code, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	vm := tape.New()
	if *flagCells > 0 {
		vm.Tape = make([]uint32, *flagCells)
	}
	vm.Input = bufio.NewReader(os.Stdin)
	vm.MaxSteps = *flagSteps

	if err := vm.Load(code); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := vm.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}

	if *flagDump {
		fmt.Println()
		fmt.Println("Tape:", vm.TapeDump(*flagCells))
	}
}
