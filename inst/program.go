package inst

// Program is an ordered, possibly empty sequence of instructions: the
// fuzzer's unit of input before it is wrapped by a ProgramInput. A zero
// value Program is a valid empty program.
type Program []Instruction

// Equal reports whether two programs hold the same instructions in the
// same order.
func (p Program) Equal(o Program) bool {
	if len(p) != len(o) {
		return false
	}
	for i, insn := range p {
		if !insn.Equal(o[i]) {
			return false
		}
	}
	return true
}

// Clone returns a copy of p whose backing array is independent of p's, so
// replacing, inserting or removing instructions in the copy never affects
// the original. The copy is shallow: each instruction's Arguments slice is
// shared with the original.
func (p Program) Clone() Program {
	out := make(Program, len(p))
	copy(out, p)
	return out
}
