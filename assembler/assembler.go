// Package assembler turns a Program back into its encoded byte form.
package assembler

import (
	"encoding/binary"

	"github.com/vusec-labs/riscv-inst-mutator/inst"
)

// Assemble concatenates each instruction's little-endian 32-bit encoding.
// The returned slice is always exactly 4*len(program) bytes.
func Assemble(program inst.Program) []byte {
	out := make([]byte, 4*len(program))
	for i, insn := range program {
		binary.LittleEndian.PutUint32(out[4*i:4*i+4], insn.Encode())
	}
	return out
}
