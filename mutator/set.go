package mutator

import "github.com/vusec-labs/riscv-inst-mutator/inst"

// weighted is one (kind, weight) pair making up a mutator-set factory.
type weighted struct {
	kind   Kind
	weight int
}

// Set returns the weighted "all mutations" enumeration used for
// exploration: the stage-level scheduler (out of scope here) picks
// uniformly from the returned slice, so a kind with weight 2 is picked
// roughly twice as often as a kind with weight 1.
func Set(templates []*inst.InstructionTemplate) []Mutation {
	return expand(templates, []weighted{
		{Add, 2}, {Remove, 2}, {ReplaceArg, 2}, {Replace, 2},
		{RepeatSeveral, 2}, {SwapTwo, 2}, {Snippet, 1},
	})
}

// ReducingSet returns the weighted enumeration used by minimization: only
// mutations that can shrink or simplify a program.
func ReducingSet(templates []*inst.InstructionTemplate) []Mutation {
	return expand(templates, []weighted{
		{Remove, 2}, {ReplaceWithNop, 1},
	})
}

func expand(templates []*inst.InstructionTemplate, weights []weighted) []Mutation {
	var out []Mutation
	for _, w := range weights {
		for i := 0; i < w.weight; i++ {
			out = append(out, New(w.kind, templates))
		}
	}
	return out
}
