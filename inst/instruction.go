package inst

// InstructionTemplate is the fixed-bit skeleton and operand layout of one
// instruction mnemonic: a 32-bit match pattern (the fixed bits of a
// canonical encoding with every operand field zeroed), a mask pattern (the
// set of fixed-bit positions), and up to five operand specs in declared
// order.
//
// Templates are process-lifetime, generated data (see the opcodes package)
// and are compared by pointer identity.
type InstructionTemplate struct {
	Name     string
	Match    uint32
	Mask     uint32
	Operands []*ArgumentSpec
}

// Matches reports whether word's fixed bits agree with this template.
func (t *InstructionTemplate) Matches(word uint32) bool {
	return word&t.Mask == t.Match
}

// Decode extracts an Instruction from word if it matches this template, in
// the template's declared operand order.
func (t *InstructionTemplate) Decode(word uint32) (Instruction, bool) {
	if !t.Matches(word) {
		return Instruction{}, false
	}
	args := make([]Argument, len(t.Operands))
	for i, spec := range t.Operands {
		args[i] = spec.Extract(word)
	}
	return Instruction{Template: t, Arguments: args}, true
}

// OperandNamed returns the operand spec of this template with the given
// name, or nil if none matches.
func (t *InstructionTemplate) OperandNamed(name string) *ArgumentSpec {
	for _, spec := range t.Operands {
		if spec.Name == name {
			return spec
		}
	}
	return nil
}

// Instruction is a template reference plus one argument per template
// operand, in the template's declared order.
type Instruction struct {
	Template  *InstructionTemplate
	Arguments []Argument
}

// NewInstruction builds an instruction from a template and its arguments.
// Callers must supply exactly one argument per template operand, in
// declared order, matching the operand's spec by name and bit position;
// this is a structural invariant of internally constructed values, not
// re-validated here.
func NewInstruction(t *InstructionTemplate, args []Argument) Instruction {
	return Instruction{Template: t, Arguments: args}
}

// Encode starts from the template's match pattern and bitwise-ORs every
// argument's encoded contribution. By operand disjointness the result
// round-trips through Decode.
func (i Instruction) Encode() uint32 {
	word := i.Template.Match
	for _, a := range i.Arguments {
		word |= a.Encode()
	}
	return word
}

// SetArg removes any existing argument whose spec equals new's spec and
// appends new, preserving exactly one argument per template operand.
func (i *Instruction) SetArg(new Argument) {
	kept := i.Arguments[:0:0]
	for _, a := range i.Arguments {
		if !a.Spec.Equal(new.Spec) {
			kept = append(kept, a)
		}
	}
	i.Arguments = append(kept, new)
}

// Equal reports whether two instructions decode to the same template with
// the same argument values, in order.
func (i Instruction) Equal(o Instruction) bool {
	if i.Template != o.Template || len(i.Arguments) != len(o.Arguments) {
		return false
	}
	for idx, a := range i.Arguments {
		b := o.Arguments[idx]
		if !a.Spec.Equal(b.Spec) || a.Value != b.Value {
			return false
		}
	}
	return true
}
