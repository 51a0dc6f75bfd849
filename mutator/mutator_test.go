package mutator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vusec-labs/riscv-inst-mutator/generator"
	"github.com/vusec-labs/riscv-inst-mutator/inst"
	"github.com/vusec-labs/riscv-inst-mutator/mutator"
	"github.com/vusec-labs/riscv-inst-mutator/opcodes"
)

func genProgram(seed int64, n int) inst.Program {
	rng := rand.New(rand.NewSource(seed))
	gen := generator.NewDefault()
	return gen.GenerateInstructions(rng, opcodes.RiscvBase(), n)
}

func TestAddAlwaysApplies(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	program := inst.Program{}
	m := mutator.New(mutator.Add, opcodes.RiscvBase())
	result := m.Apply(rng, &program)
	assert.Equal(t, mutator.Mutated, result)
	assert.Len(t, program, 1)
}

func TestRemoveSkipsOnEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	program := inst.Program{}
	m := mutator.New(mutator.Remove, opcodes.RiscvBase())
	assert.Equal(t, mutator.Skipped, m.Apply(rng, &program))
}

func TestRemoveShrinksProgram(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	program := genProgram(2, 5)
	before := len(program)
	m := mutator.New(mutator.Remove, opcodes.RiscvBase())
	require.Equal(t, mutator.Mutated, m.Apply(rng, &program))
	assert.Equal(t, before-1, len(program))
}

func TestSwapTwoPreservesLength(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	program := genProgram(3, 6)
	before := len(program)
	m := mutator.New(mutator.SwapTwo, opcodes.RiscvBase())
	require.Equal(t, mutator.Mutated, m.Apply(rng, &program))
	assert.Equal(t, before, len(program))
}

func TestRepeatSeveralGrowsProgram(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	program := genProgram(4, 3)
	before := len(program)
	m := mutator.New(mutator.RepeatSeveral, opcodes.RiscvBase())
	require.Equal(t, mutator.Mutated, m.Apply(rng, &program))
	assert.Greater(t, len(program), before)
}

func TestReplaceWithNopProducesAddiZero(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	program := genProgram(5, 1)
	m := mutator.New(mutator.ReplaceWithNop, nil)
	require.Equal(t, mutator.Mutated, m.Apply(rng, &program))
	require.Len(t, program, 1)
	assert.Equal(t, "addi", program[0].Template.Name)
	for _, arg := range program[0].Arguments {
		assert.Equal(t, uint32(0), arg.Value)
	}
}

func TestSnippetInsertsCallOrReturnIdiom(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	program := inst.Program{}
	m := mutator.New(mutator.Snippet, nil)
	require.Equal(t, mutator.Mutated, m.Apply(rng, &program))
	assert.Contains(t, []int{1, 2}, len(program))
	last := program[len(program)-1]
	assert.Equal(t, "jalr", last.Template.Name)
}

func TestReplaceArgSkipsWithoutOperands(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ecall := opcodes.Lookup("ecall")
	require.NotNil(t, ecall)
	program := inst.Program{inst.NewInstruction(ecall, nil)}
	m := mutator.New(mutator.ReplaceArg, opcodes.RiscvBase())
	assert.Equal(t, mutator.Skipped, m.Apply(rng, &program))
}

func TestSetWeighting(t *testing.T) {
	set := mutator.Set(opcodes.RiscvBase())
	counts := map[mutator.Kind]int{}
	for _, m := range set {
		counts[m.Kind]++
	}
	assert.Equal(t, 2, counts[mutator.Add])
	assert.Equal(t, 1, counts[mutator.Snippet])
	assert.Len(t, set, 13)
}

func TestReducingSetWeighting(t *testing.T) {
	set := mutator.ReducingSet(opcodes.RiscvBase())
	assert.Len(t, set, 3)
}
