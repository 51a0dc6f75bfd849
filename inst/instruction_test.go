package inst_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vusec-labs/riscv-inst-mutator/inst"
	"github.com/vusec-labs/riscv-inst-mutator/opcodes"
)

// OperandsDisjointAcrossOpcodeTable is spec.md §8 invariant 4: every
// template's operand specs cover pairwise-disjoint bit ranges, none of
// which intersect the template's own fixed-bit mask.
func TestOperandsDisjointAcrossOpcodeTable(t *testing.T) {
	for _, tmpl := range opcodes.All() {
		t.Run(tmpl.Name, func(t *testing.T) {
			var used uint32
			for _, spec := range tmpl.Operands {
				m := spec.Mask()
				require.Zerof(t, m&tmpl.Mask, "operand %s overlaps the fixed mask bits", spec.Name)
				require.Zerof(t, m&used, "operand %s overlaps an earlier operand", spec.Name)
				used |= m
			}
		})
	}
}

// EncodeDecodeRoundTrip is spec.md §8 invariant 1: for every template and
// every operand assignment, decoding an encoded instruction yields back an
// equal instruction. Exhausting every possible value of a 20-bit immediate
// isn't practical, so each field is exercised at its boundary values (0,
// max-1) plus a handful of seeded random values in between.
func TestEncodeDecodeRoundTripAcrossOpcodeTable(t *testing.T) {
	const cases = 8
	rng := rand.New(rand.NewSource(1))

	for _, tmpl := range opcodes.All() {
		t.Run(tmpl.Name, func(t *testing.T) {
			if len(tmpl.Operands) == 0 {
				word := tmpl.Match
				require.True(t, tmpl.Matches(word))
				got, ok := tmpl.Decode(word)
				require.True(t, ok)
				assert.True(t, inst.NewInstruction(tmpl, nil).Equal(got))
				return
			}

			for c := 0; c < cases; c++ {
				args := make([]inst.Argument, len(tmpl.Operands))
				for i, spec := range tmpl.Operands {
					args[i] = inst.Argument{Spec: spec, Value: pickValue(rng, spec, c)}
				}
				want := inst.NewInstruction(tmpl, args)

				word := want.Encode()
				require.Truef(t, tmpl.Matches(word), "encoded word %#08x doesn't match its own template", word)

				got, ok := tmpl.Decode(word)
				require.True(t, ok)
				assert.Truef(t, want.Equal(got), "round trip mismatch: want %+v, got %+v", want, got)
			}
		})
	}
}

// pickValue returns case c's test value for spec: 0 on case 0, MaxValue-1
// on case 1, and a seeded random in-range value otherwise.
func pickValue(rng *rand.Rand, spec *inst.ArgumentSpec, c int) uint32 {
	switch c {
	case 0:
		return 0
	case 1:
		return spec.MaxValue() - 1
	default:
		return uint32(rng.Intn(int(spec.MaxValue())))
	}
}
