package inst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vusec-labs/riscv-inst-mutator/inst"
)

func TestArgumentSpecMaskAndExtract(t *testing.T) {
	spec := &inst.ArgumentSpec{Name: "rd", Length: 5, Offset: 7}

	assert.Equal(t, uint32(32), spec.MaxValue())
	assert.Equal(t, uint32(0x0000_0f80), spec.Mask())

	arg := spec.Extract(0xffff_ffff)
	assert.Equal(t, uint32(31), arg.Value)
	assert.Same(t, spec, arg.Spec)

	arg = spec.Extract(0)
	assert.Equal(t, uint32(0), arg.Value)
}

func TestArgumentSpecEqual(t *testing.T) {
	a := &inst.ArgumentSpec{Name: "rd", Length: 5, Offset: 7}
	b := &inst.ArgumentSpec{Name: "rd", Length: 5, Offset: 7}

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(&inst.ArgumentSpec{Name: "rs1", Length: 5, Offset: 15}))

	var nilSpec *inst.ArgumentSpec
	assert.False(t, a.Equal(nilSpec))
}

func TestNewArgumentRejectsOversizeValue(t *testing.T) {
	spec := &inst.ArgumentSpec{Name: "imm12", Length: 12, Offset: 20}

	_, err := inst.NewArgument(spec, spec.MaxValue())
	require.Error(t, err)

	arg, err := inst.NewArgument(spec, spec.MaxValue()-1)
	require.NoError(t, err)
	assert.Equal(t, spec.MaxValue()-1, arg.Value)
}

func TestArgumentEncode(t *testing.T) {
	spec := &inst.ArgumentSpec{Name: "rd", Length: 5, Offset: 7}
	arg := inst.Argument{Spec: spec, Value: 3}
	assert.Equal(t, uint32(3<<7), arg.Encode())
}
