// Package opcodes is the generated, process-lifetime catalog of RISC-V
// RV64-G instruction templates and their operand field specs.
//
// Every var in this package (the RV_*/RV64_* template slices in the
// per-extension files, and the ArgumentSpec vars in args.go) is read-only
// reference data: consumers compare templates and specs by pointer
// identity, never by value, and the slices are safe to share across
// goroutines without synchronization.
//
// The per-extension files are produced by opcodes/gen from a compact
// instruction description; see opcodes/gen/main.go.
package opcodes

import "github.com/vusec-labs/riscv-inst-mutator/inst"

// RiscvG returns the union of RV-I, RV-M, RV-A, RV-F, RV-D and their 64-bit
// counterparts, in the same extension order the original riscv-inst-mutator
// used to build its decoding set. Used for decoding, parsing, and operand
// reuse, where seeing a few duplicate bit patterns across extensions is
// harmless: parser.Parse only ever takes the first matching template in
// iteration order.
func RiscvG() []*inst.InstructionTemplate {
	var result []*inst.InstructionTemplate
	result = append(result, RV64_I...)
	result = append(result, RV64_A...)
	result = append(result, RV64_D...)
	result = append(result, RV64_F...)
	result = append(result, RV64_M...)
	result = append(result, RV_I...)
	result = append(result, RV_A...)
	result = append(result, RV_D...)
	result = append(result, RV_F...)
	result = append(result, RV_M...)
	return result
}

// RiscvBase returns RV-I and RV64-I only, used by the default generator so
// mutations prefer simple integer instructions.
func RiscvBase() []*inst.InstructionTemplate {
	var result []*inst.InstructionTemplate
	result = append(result, RV64_I...)
	result = append(result, RV_I...)
	return result
}

// All returns every template this opcode table knows about: the set
// ProgramInput deserialization parses against, so that entries which no
// longer decode under the current table are correctly rejected at load
// time rather than silently dropped.
func All() []*inst.InstructionTemplate {
	return RiscvG()
}

// Lookup returns the template with the given mnemonic from RiscvG, or nil
// if none exists. Used by fixed-idiom constructs (the mutator's nop and
// snippet instructions) that need a specific named template rather than a
// randomly generated one.
func Lookup(name string) *inst.InstructionTemplate {
	for _, t := range RiscvG() {
		if t.Name == name {
			return t
		}
	}
	return nil
}
