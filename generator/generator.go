// Package generator produces pseudo-random, always-legal RISC-V
// instructions from a caller-supplied instruction set, biasing operand
// values toward reuse and power-of-two edge cases.
package generator

import (
	"github.com/vusec-labs/riscv-inst-mutator/inst"
)

// Rand is the randomness source generator consumes. Callers own the
// concrete source (typically a seeded *rand.Rand) so that generation stays
// reproducible from a fixed seed; the generator itself never reaches for
// process-global randomness.
type Rand interface {
	// Intn returns a non-negative pseudo-random number in [0,n).
	Intn(n int) int
}

// Config holds the generator's tunable probabilities. The zero value
// disables both biases, so every value is drawn uniformly; DefaultConfig
// returns the 50/50 defaults.
type Config struct {
	// ReuseChance is the percentage (0-100) chance of reusing a known
	// argument value of matching bit length instead of generating a
	// fresh one.
	ReuseChance int
	// PowerOfTwoChance is the percentage (0-100) chance, once reuse is
	// not taken, of generating 1<<k for uniform k instead of a uniform
	// value.
	PowerOfTwoChance int
}

// DefaultConfig matches spec.md's stated defaults: 50% reuse, 50%
// power-of-two among the remainder.
func DefaultConfig() Config {
	return Config{ReuseChance: 50, PowerOfTwoChance: 50}
}

// InstGenerator generates instructions and arguments, optionally biasing
// operand values toward previously seen ones so data dependencies emerge
// across a generated or mutated program.
type InstGenerator struct {
	cfg       Config
	knownArgs []inst.Argument
}

// New returns a generator with the given config and no known arguments.
func New(cfg Config) *InstGenerator {
	return &InstGenerator{cfg: cfg}
}

// NewDefault returns a generator using DefaultConfig.
func NewDefault() *InstGenerator {
	return New(DefaultConfig())
}

// ForwardArgs appends args to the generator's reuse pool. The generator
// copies the values; the caller keeps ownership of its own slice.
func (g *InstGenerator) ForwardArgs(args []inst.Argument) {
	g.knownArgs = append(g.knownArgs, args...)
}

// GenerateArgument implements spec.md's three-step decision procedure:
// try reuse by bit length, then a power-of-two value, then a uniform
// value in range.
func (g *InstGenerator) GenerateArgument(rng Rand, spec *inst.ArgumentSpec) inst.Argument {
	if percentHappens(rng, g.cfg.ReuseChance) {
		if reused, ok := g.pickReusable(rng, spec); ok {
			return reused
		}
	}

	if percentHappens(rng, g.cfg.PowerOfTwoChance) {
		k := rng.Intn(int(spec.Length))
		return inst.Argument{Spec: spec, Value: 1 << uint32(k)}
	}

	v := uint32(rng.Intn(int(spec.MaxValue())))
	return inst.Argument{Spec: spec, Value: v}
}

// pickReusable filters knownArgs to entries whose spec has the same bit
// length as spec (not the same spec identity — see spec.md §9(iii)) and
// picks one uniformly.
func (g *InstGenerator) pickReusable(rng Rand, spec *inst.ArgumentSpec) (inst.Argument, bool) {
	var options []inst.Argument
	for _, a := range g.knownArgs {
		if a.Spec.Length == spec.Length {
			options = append(options, a)
		}
	}
	if len(options) == 0 {
		return inst.Argument{}, false
	}
	picked := options[rng.Intn(len(options))]
	return inst.Argument{Spec: spec, Value: picked.Value}, true
}

// GenerateInstruction picks a template uniformly from templates (which
// must be non-empty) and generates one argument per operand in order.
func (g *InstGenerator) GenerateInstruction(rng Rand, templates []*inst.InstructionTemplate) inst.Instruction {
	if len(templates) == 0 {
		panic("generator: GenerateInstruction requires a non-empty template set")
	}
	tmpl := templates[rng.Intn(len(templates))]

	args := make([]inst.Argument, len(tmpl.Operands))
	for i, spec := range tmpl.Operands {
		args[i] = g.GenerateArgument(rng, spec)
	}
	return inst.NewInstruction(tmpl, args)
}

// GenerateInstructions returns n independently generated instructions.
func (g *InstGenerator) GenerateInstructions(rng Rand, templates []*inst.InstructionTemplate, n int) inst.Program {
	program := make(inst.Program, n)
	for i := range program {
		program[i] = g.GenerateInstruction(rng, templates)
	}
	return program
}

// percentHappens reports whether an event with the given percent (0-100)
// chance occurs, per one draw from rng.
func percentHappens(rng Rand, percent int) bool {
	return rng.Intn(100) < percent
}
