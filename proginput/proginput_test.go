package proginput_test

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vusec-labs/riscv-inst-mutator/generator"
	"github.com/vusec-labs/riscv-inst-mutator/inst"
	"github.com/vusec-labs/riscv-inst-mutator/opcodes"
	"github.com/vusec-labs/riscv-inst-mutator/proginput"
)

func sampleProgram(n int) inst.Program {
	rng := rand.New(rand.NewSource(99))
	gen := generator.NewDefault()
	return gen.GenerateInstructions(rng, opcodes.RiscvBase(), n)
}

func TestTargetBytesLength(t *testing.T) {
	program := sampleProgram(7)
	p := proginput.New(program)
	assert.Len(t, p.TargetBytes(), 4*7)
	assert.Equal(t, 7, p.Len())
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	program := sampleProgram(4)
	p := proginput.New(program)

	bytes := p.Serialize()
	roundTripped, err := proginput.Deserialize(bytes)
	require.NoError(t, err)
	assert.True(t, program.Equal(roundTripped.Instructions()))
}

func TestDeserializeRejectsUnknownEncoding(t *testing.T) {
	_, err := proginput.Deserialize([]byte{0xff, 0xff, 0xff, 0xff})
	assert.Error(t, err)
}

var nameRe = regexp.MustCompile(`^size:\d+-hash:[0-9a-f]{16}$`)

func TestNameIsStableAndFilesystemSafe(t *testing.T) {
	program := sampleProgram(3)
	a := proginput.New(program.Clone())
	b := proginput.New(program.Clone())

	assert.Regexp(t, nameRe, a.Name())
	assert.Equal(t, a.Name(), b.Name())
}

func TestCropValidRange(t *testing.T) {
	program := sampleProgram(10)
	p := proginput.New(program)

	cropped, err := p.Crop(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, cropped.Len())
	assert.True(t, program[2:5].Equal(cropped.Instructions()))
}

func TestCropInvalidRange(t *testing.T) {
	program := sampleProgram(4)
	p := proginput.New(program)

	_, err := p.Crop(3, 3)
	assert.ErrorIs(t, err, proginput.ErrInvalidArgument)

	_, err = p.Crop(0, 5)
	assert.ErrorIs(t, err, proginput.ErrInvalidArgument)
}
