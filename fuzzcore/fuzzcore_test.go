package fuzzcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vusec-labs/riscv-inst-mutator/fuzzcore"
	"github.com/vusec-labs/riscv-inst-mutator/proginput"
)

func TestExitKindString(t *testing.T) {
	assert.Equal(t, "Ok", fuzzcore.ExitOK.String())
	assert.Equal(t, "Crash", fuzzcore.ExitCrash.String())
	assert.Equal(t, "Timeout", fuzzcore.ExitTimeout.String())
}

// *proginput.ProgramInput must satisfy HasProgramInput: this is a
// compile-time check, same seam the original trait served.
var _ fuzzcore.HasProgramInput = (*proginput.ProgramInput)(nil)

func TestEngineConfigZeroValue(t *testing.T) {
	var cfg fuzzcore.EngineConfig
	assert.Equal(t, 0, cfg.Workers)
}
