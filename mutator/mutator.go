// Package mutator implements spec.md's eight structure-preserving program
// mutations and the two weighted mutator-set factories built from them.
//
// Every mutation guarantees the resulting program is still built entirely
// from legal instructions: it edits the decoded Program, never raw bytes,
// so mutated programs never waste a target's execution budget decoding
// garbage.
package mutator

import (
	"github.com/vusec-labs/riscv-inst-mutator/generator"
	"github.com/vusec-labs/riscv-inst-mutator/inst"
	"github.com/vusec-labs/riscv-inst-mutator/opcodes"
)

// Rand is the randomness source a Mutation consumes.
type Rand = generator.Rand

// Result reports whether a mutation changed the program.
type Result int

const (
	// Mutated means the program was changed in place.
	Mutated Result = iota
	// Skipped means the mutation's precondition did not hold (e.g. an
	// edit that needs a position was asked of an empty program) and the
	// program is unchanged.
	Skipped
)

func (r Result) String() string {
	if r == Mutated {
		return "Mutated"
	}
	return "Skipped"
}

// maxRetries bounds the "keep generating until different" loops that
// Replace and ReplaceArg use. The original source retries unboundedly,
// which spins forever for a single-template set or a 0/1-bit operand
// (spec.md §9, open question ii); we bound it and report Skipped instead.
const maxRetries = 64

// Kind names one of the nine supported mutation strategies.
type Kind int

const (
	Add Kind = iota
	Remove
	Replace
	ReplaceArg
	SwapTwo
	RepeatOne
	RepeatSeveral
	ReplaceWithNop
	Snippet
)

// Mutation applies one Kind of mutation to a program, reading randomness
// from rng and instruction candidates from templates (used by Add and
// Replace to generate fresh instructions).
type Mutation struct {
	Kind      Kind
	templates []*inst.InstructionTemplate
}

// New returns a Mutation of the given kind that generates new instructions
// from templates (spec.md's generator operates over riscv_base by
// default, per the original source's own mutator).
func New(kind Kind, templates []*inst.InstructionTemplate) Mutation {
	return Mutation{Kind: kind, templates: templates}
}

// Apply runs the mutation against program in place and reports whether it
// took effect.
func (m Mutation) Apply(rng Rand, program *inst.Program) Result {
	switch m.Kind {
	case Add:
		pos := addPos(rng, *program)
		insn := m.genInstruction(rng, *program)
		*program = insertAt(*program, pos, insn)
		return Mutated

	case Remove:
		pos, ok := validPos(rng, *program)
		if !ok {
			return Skipped
		}
		*program = removeAt(*program, pos)
		return Mutated

	case Replace:
		pos, ok := validPos(rng, *program)
		if !ok {
			return Skipped
		}
		old := (*program)[pos]
		for try := 0; try < maxRetries; try++ {
			next := m.genInstruction(rng, *program)
			if !next.Equal(old) {
				(*program)[pos] = next
				return Mutated
			}
		}
		return Skipped

	case ReplaceArg:
		pos, ok := validPos(rng, *program)
		if !ok {
			return Skipped
		}
		target := (*program)[pos]
		if len(target.Arguments) == 0 {
			return Skipped
		}
		old := target.Arguments[rng.Intn(len(target.Arguments))]
		gen := generator.NewDefault()
		for try := 0; try < maxRetries; try++ {
			next := gen.GenerateArgument(rng, old.Spec)
			if next.Value != old.Value {
				target.SetArg(next)
				(*program)[pos] = target
				return Mutated
			}
		}
		return Skipped

	case SwapTwo:
		pos1, ok := validPos(rng, *program)
		if !ok {
			return Skipped
		}
		pos2, _ := validPos(rng, *program)
		(*program)[pos1], (*program)[pos2] = (*program)[pos2], (*program)[pos1]
		return Mutated

	case RepeatOne:
		pos, ok := validPos(rng, *program)
		if !ok {
			return Skipped
		}
		*program = insertAt(*program, pos, (*program)[pos])
		return Mutated

	case RepeatSeveral:
		pos, ok := validPos(rng, *program)
		if !ok {
			return Skipped
		}
		k := rng.Intn(32) + 1
		insn := (*program)[pos]
		for i := 0; i < k; i++ {
			*program = insertAt(*program, pos, insn)
		}
		return Mutated

	case ReplaceWithNop:
		pos, ok := validPos(rng, *program)
		if !ok {
			return Skipped
		}
		(*program)[pos] = nop()
		return Mutated

	case Snippet:
		pos := addPos(rng, *program)
		snippet := makeSnippet(rng)
		for i := len(snippet) - 1; i >= 0; i-- {
			*program = insertAt(*program, pos, snippet[i])
		}
		return Mutated
	}
	panic("mutator: unknown mutation kind")
}

// genInstruction generates one instruction from m.templates, forwarding
// program's existing arguments into the generator's reuse pool so data
// dependencies emerge across the edit, mirroring the original source's
// gen_inst helper.
func (m Mutation) genInstruction(rng Rand, program inst.Program) inst.Instruction {
	gen := generator.NewDefault()
	for _, insn := range program {
		gen.ForwardArgs(insn.Arguments)
	}
	templates := m.templates
	if len(templates) == 0 {
		templates = opcodes.RiscvBase()
	}
	return gen.GenerateInstruction(rng, templates)
}

// validPos returns a uniform index in [0, len(program)), or false if
// program is empty.
func validPos(rng Rand, program inst.Program) (int, bool) {
	if len(program) == 0 {
		return 0, false
	}
	return rng.Intn(len(program)), true
}

// addPos returns a uniform insertion point in [0, max(len(program), 1)),
// or 0 for an empty program: an empty program always has exactly one
// valid insertion point.
func addPos(rng Rand, program inst.Program) int {
	if len(program) == 0 {
		return 0
	}
	return rng.Intn(len(program))
}

func insertAt(program inst.Program, pos int, insn inst.Instruction) inst.Program {
	out := make(inst.Program, 0, len(program)+1)
	out = append(out, program[:pos]...)
	out = append(out, insn)
	out = append(out, program[pos:]...)
	return out
}

func removeAt(program inst.Program, pos int) inst.Program {
	out := make(inst.Program, 0, len(program)-1)
	out = append(out, program[:pos]...)
	out = append(out, program[pos+1:]...)
	return out
}

func nop() inst.Instruction {
	tmpl := opcodes.Lookup("addi")
	rd, _ := inst.NewArgument(tmpl.OperandNamed("rd"), 0)
	rs1, _ := inst.NewArgument(tmpl.OperandNamed("rs1"), 0)
	imm, _ := inst.NewArgument(tmpl.OperandNamed("imm12"), 0)
	return inst.NewInstruction(tmpl, []inst.Argument{rd, rs1, imm})
}

// makeSnippet returns one of two fixed idioms chosen uniformly: a
// two-instruction call idiom (auipc x2,0; jalr x1,imm(x2)) or a
// one-instruction return idiom (jalr x0,0(x1)).
func makeSnippet(rng Rand) []inst.Instruction {
	if rng.Intn(2) == 0 {
		return makeCallSnippet(rng)
	}
	return makeReturnSnippet()
}

func makeCallSnippet(rng Rand) []inst.Instruction {
	auipc := opcodes.Lookup("auipc")
	jalr := opcodes.Lookup("jalr")

	rd2, _ := inst.NewArgument(auipc.OperandNamed("rd"), 2)
	imm20, _ := inst.NewArgument(auipc.OperandNamed("imm20"), 0)

	offset := uint32(rng.Intn(64)) * 4
	rd1, _ := inst.NewArgument(jalr.OperandNamed("rd"), 1)
	rs1, _ := inst.NewArgument(jalr.OperandNamed("rs1"), 2)
	imm12, _ := inst.NewArgument(jalr.OperandNamed("imm12"), offset)

	return []inst.Instruction{
		inst.NewInstruction(auipc, []inst.Argument{rd2, imm20}),
		inst.NewInstruction(jalr, []inst.Argument{rd1, rs1, imm12}),
	}
}

func makeReturnSnippet() []inst.Instruction {
	jalr := opcodes.Lookup("jalr")
	rd, _ := inst.NewArgument(jalr.OperandNamed("rd"), 0)
	rs1, _ := inst.NewArgument(jalr.OperandNamed("rs1"), 1)
	imm12, _ := inst.NewArgument(jalr.OperandNamed("imm12"), 0)
	return []inst.Instruction{inst.NewInstruction(jalr, []inst.Argument{rd, rs1, imm12})}
}
