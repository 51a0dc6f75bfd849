// Command riscv-asm assembles a text file of RISC-V instructions,
// written one per line as "NAME ARG=VALUE ARG=VALUE ...", into their
// little-endian encoded bytes (spec.md §6).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vusec-labs/riscv-inst-mutator/assembler"
)

func main() {
	os.Exit(doMain(os.Args[1:], os.Stdout, os.Stderr))
}

// doMain is separated from main for unit testing.
func doMain(args []string, stdOut, stdErr io.Writer) int {
	flags := flag.NewFlagSet("riscv-asm", flag.ContinueOnError)
	flags.SetOutput(stdErr)
	flags.Usage = func() {
		fmt.Fprintln(stdErr, "usage: riscv-asm <input.asm> <output.bin>")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return 1
	}

	inPath, outPath := flags.Arg(0), flags.Arg(1)

	text, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintln(stdErr, err)
		return 1
	}

	program, err := parseProgramText(string(text))
	if err != nil {
		fmt.Fprintln(stdErr, err)
		return 1
	}

	if err := os.WriteFile(outPath, assembler.Assemble(program), 0o644); err != nil {
		fmt.Fprintln(stdErr, err)
		return 1
	}

	fmt.Fprintf(stdOut, "assembled %d instructions\n", len(program))
	return 0
}
