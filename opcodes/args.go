package opcodes

import "github.com/vusec-labs/riscv-inst-mutator/inst"

// Operand field layouts shared across every RV64-G instruction template.
// Two templates never combine fields whose bit ranges overlap: callers may
// rely on pointer identity to tell fields apart. Not every consumer does:
// the generator's reuse pool groups known arguments by Spec.Length, and
// Instruction.SetArg matches by Spec.Equal (name, length and offset).
var (
	// RD is the destination register field, bits [11:7].
	RD = &inst.ArgumentSpec{Name: "rd", Length: 5, Offset: 7}
	// RS1 is the first source register field, bits [19:15].
	RS1 = &inst.ArgumentSpec{Name: "rs1", Length: 5, Offset: 15}
	// RS2 is the second source register field, bits [24:20].
	RS2 = &inst.ArgumentSpec{Name: "rs2", Length: 5, Offset: 20}
	// RS3 is the third source register field used by fused multiply-add
	// instructions, bits [31:27].
	RS3 = &inst.ArgumentSpec{Name: "rs3", Length: 5, Offset: 27}
	// RM is the floating point rounding-mode field, bits [14:12].
	RM = &inst.ArgumentSpec{Name: "rm", Length: 3, Offset: 12}
	// IMM12 is the 12-bit immediate used by I-type instructions, bits [31:20].
	IMM12 = &inst.ArgumentSpec{Name: "imm12", Length: 12, Offset: 20}
	// IMM20 is the 20-bit immediate used by U-type and J-type instructions,
	// bits [31:12].
	IMM20 = &inst.ArgumentSpec{Name: "imm20", Length: 20, Offset: 12}
	// SHAMT is the 6-bit shift amount used by RV64 register-width shifts,
	// bits [25:20].
	SHAMT = &inst.ArgumentSpec{Name: "shamt", Length: 6, Offset: 20}
	// SHAMTW is the 5-bit shift amount used by the word-width (*W) shifts,
	// bits [24:20].
	SHAMTW = &inst.ArgumentSpec{Name: "shamtw", Length: 5, Offset: 20}
	// IMM5 is the low piece of an S-type or B-type immediate, bits [11:7].
	// It shares its bit range with RD, but never appears in the same
	// template as RD.
	IMM5 = &inst.ArgumentSpec{Name: "imm5", Length: 5, Offset: 7}
	// IMM7 is the high piece of an S-type or B-type immediate, bits [31:25].
	IMM7 = &inst.ArgumentSpec{Name: "imm7", Length: 7, Offset: 25}
)
