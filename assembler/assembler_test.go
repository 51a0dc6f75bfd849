package assembler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vusec-labs/riscv-inst-mutator/assembler"
	"github.com/vusec-labs/riscv-inst-mutator/inst"
	"github.com/vusec-labs/riscv-inst-mutator/opcodes"
)

func TestAssembleEmpty(t *testing.T) {
	assert.Empty(t, assembler.Assemble(nil))
}

// AssembleAddLiteral checks the literal encoding spec.md names:
// add x1, x2, x4 -> 0x004100b3.
func TestAssembleAddLiteral(t *testing.T) {
	var tmpl *inst.InstructionTemplate
	for _, candidate := range opcodes.RV_I {
		if candidate.Name == "add" {
			tmpl = candidate
			break
		}
	}
	require.NotNil(t, tmpl)

	rd, err := inst.NewArgument(tmpl.OperandNamed("rd"), 1)
	require.NoError(t, err)
	rs1, err := inst.NewArgument(tmpl.OperandNamed("rs1"), 2)
	require.NoError(t, err)
	rs2, err := inst.NewArgument(tmpl.OperandNamed("rs2"), 4)
	require.NoError(t, err)

	insn := inst.NewInstruction(tmpl, []inst.Argument{rd, rs1, rs2})
	program := inst.Program{insn}

	bytes := assembler.Assemble(program)
	require.Len(t, bytes, 4)
	assert.Equal(t, []byte{0xb3, 0x00, 0x41, 0x00}, bytes)
}

func TestAssembleTwoInstructions(t *testing.T) {
	var add, sub *inst.InstructionTemplate
	for _, tmpl := range opcodes.RV_I {
		switch tmpl.Name {
		case "add":
			add = tmpl
		case "sub":
			sub = tmpl
		}
	}
	require.NotNil(t, add)
	require.NotNil(t, sub)

	mk := func(tmpl *inst.InstructionTemplate, rd, rs1, rs2 uint32) inst.Instruction {
		a, _ := inst.NewArgument(tmpl.OperandNamed("rd"), rd)
		b, _ := inst.NewArgument(tmpl.OperandNamed("rs1"), rs1)
		c, _ := inst.NewArgument(tmpl.OperandNamed("rs2"), rs2)
		return inst.NewInstruction(tmpl, []inst.Argument{a, b, c})
	}

	program := inst.Program{mk(add, 1, 2, 4), mk(sub, 5, 6, 7)}
	bytes := assembler.Assemble(program)
	require.Len(t, bytes, 8)
}
