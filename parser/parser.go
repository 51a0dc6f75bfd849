// Package parser decodes a byte buffer into a Program against a caller-
// supplied set of instruction templates.
package parser

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/vusec-labs/riscv-inst-mutator/inst"
)

// ErrTrailingGarbage is returned when the input length is not a multiple
// of 4: the buffer holds a partial instruction word.
var ErrTrailingGarbage = errors.New("parser: input length is not a multiple of 4 bytes")

// UnknownEncodingError is returned when a 32-bit word does not match any
// template in the set the caller passed to Parse.
type UnknownEncodingError struct {
	Word uint32
}

func (e *UnknownEncodingError) Error() string {
	return fmt.Sprintf("parser: word %#08x does not match any known instruction encoding", e.Word)
}

// Parse reads successive little-endian 32-bit words from bytes and decodes
// each against templates, in order, accepting the first template that
// matches. The returned Program has exactly len(bytes)/4 instructions on
// success.
func Parse(bytes []byte, templates []*inst.InstructionTemplate) (inst.Program, error) {
	if len(bytes)%4 != 0 {
		return nil, ErrTrailingGarbage
	}

	program := make(inst.Program, 0, len(bytes)/4)
	for i := 0; i < len(bytes); i += 4 {
		word := binary.LittleEndian.Uint32(bytes[i : i+4])

		decoded, ok := decodeFirst(word, templates)
		if !ok {
			return nil, &UnknownEncodingError{Word: word}
		}
		program = append(program, decoded)
	}
	return program, nil
}

func decodeFirst(word uint32, templates []*inst.InstructionTemplate) (inst.Instruction, bool) {
	for _, t := range templates {
		if decoded, ok := t.Decode(word); ok {
			return decoded, true
		}
	}
	return inst.Instruction{}, false
}
