// Package proginput implements ProgramInput, the fuzzer-visible input type
// wrapping a Program, per spec.md §4.6.
package proginput

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/vusec-labs/riscv-inst-mutator/assembler"
	"github.com/vusec-labs/riscv-inst-mutator/inst"
	"github.com/vusec-labs/riscv-inst-mutator/opcodes"
	"github.com/vusec-labs/riscv-inst-mutator/parser"
)

// ErrInvalidArgument is returned by Crop when its bounds don't satisfy
// from < to <= length.
var ErrInvalidArgument = errors.New("proginput: invalid from or to argument")

// ProgramInput is the input type the outer fuzzing loop mutates, assembles
// to bytes, and hands to a target.
type ProgramInput struct {
	program inst.Program
}

// New wraps program in a ProgramInput. The input takes ownership of
// program's backing array.
func New(program inst.Program) *ProgramInput {
	return &ProgramInput{program: program}
}

// Instructions returns a read-only view of the wrapped program.
func (p *ProgramInput) Instructions() inst.Program {
	return p.program
}

// InstructionsMut returns a pointer to the wrapped program, which the
// mutator stage edits directly; callers may append, remove, or replace
// elements, and a new slice assigned through the pointer becomes this
// input's program.
func (p *ProgramInput) InstructionsMut() *inst.Program {
	return &p.program
}

// SetInstructions replaces the wrapped program outright.
func (p *ProgramInput) SetInstructions(program inst.Program) {
	p.program = program
}

// Len returns the number of instructions, used by corpus-size
// minimization schedulers.
func (p *ProgramInput) Len() int {
	return len(p.program)
}

// TargetBytes returns the little-endian assembled bytes the target
// actually executes. The result is always 4*p.Len() bytes long and always
// decodes back under the full opcode table.
func (p *ProgramInput) TargetBytes() []byte {
	return assembler.Assemble(p.program)
}

// Serialize externalizes this input as the assembled byte encoding: the
// stable on-disk form.
func (p *ProgramInput) Serialize() []byte {
	return assembler.Assemble(p.program)
}

// Deserialize parses bytes against the full opcode table and returns a new
// ProgramInput holding the result. Entries that no longer decode under the current table
// are correctly rejected rather than silently dropped.
func Deserialize(bytes []byte) (*ProgramInput, error) {
	program, err := parser.Parse(bytes, opcodes.All())
	if err != nil {
		return nil, fmt.Errorf("proginput: deserialize: %w", err)
	}
	return New(program), nil
}

// nameSeed is fixed so that equal programs always produce equal names,
// across processes and runs, matching the original implementation's use
// of a zero-seeded hasher.
const nameSeed uint64 = 0

// Name returns a deterministic, filesystem-safe fingerprint of the form
// size:{N}-hash:{H}, where N is the instruction count and H is a 64-bit
// hash of the assembled bytes.
func (p *ProgramInput) Name() string {
	h := xxhash.NewWithSeed(nameSeed)
	h.Write(p.TargetBytes())
	return fmt.Sprintf("size:%d-hash:%016x", p.Len(), h.Sum64())
}

// Crop returns a new ProgramInput holding the [from, to) slice of this
// input's program, or ErrInvalidArgument if the bounds are invalid.
func (p *ProgramInput) Crop(from, to int) (*ProgramInput, error) {
	if !(from < to && to <= len(p.program)) {
		return nil, ErrInvalidArgument
	}
	cropped := make(inst.Program, to-from)
	copy(cropped, p.program[from:to])
	return New(cropped), nil
}
