package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProgramTextAddLiteral(t *testing.T) {
	program, err := parseProgramText("add rd=1 rs1=2 rs2=4\n")
	require.NoError(t, err)
	require.Len(t, program, 1)
	assert.Equal(t, "add", program[0].Template.Name)
}

func TestParseProgramTextSkipsComments(t *testing.T) {
	text := "# a comment\n  # indented comment\naddi rd=0 rs1=0 imm12=0 # trailing comment\n\n"
	program, err := parseProgramText(text)
	require.NoError(t, err)
	require.Len(t, program, 1)
	assert.Equal(t, "addi", program[0].Template.Name)
}

func TestParseProgramTextUnknownMnemonic(t *testing.T) {
	_, err := parseProgramText("frobnicate rd=1\n")
	assert.Error(t, err)
}

func TestParseProgramTextDuplicateOperand(t *testing.T) {
	_, err := parseProgramText("add rd=1 rd=2 rs1=2 rs2=4\n")
	assert.ErrorContains(t, err, "duplicate operand")
}

func TestParseProgramTextMissingOperand(t *testing.T) {
	_, err := parseProgramText("add rd=1 rs1=2\n")
	assert.ErrorContains(t, err, "missing operand")
}

// RejectsOversizeValue mirrors spec.md's literal scenario: addi's rd is
// five bits wide, so 0xfff is rejected.
func TestParseProgramTextRejectsOversizeValue(t *testing.T) {
	_, err := parseProgramText("addi rd=0xfff rs1=0x1 imm12=0x3\n")
	assert.ErrorContains(t, err, "too large value")
}

func TestDoMainEndToEnd(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.asm")
	outPath := filepath.Join(dir, "out.bin")
	require.NoError(t, os.WriteFile(inPath, []byte("add rd=1 rs1=2 rs2=4\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := doMain([]string{inPath, outPath}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xb3, 0x00, 0x41, 0x00}, out)
}

func TestDoMainReportsError(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.asm")
	outPath := filepath.Join(dir, "out.bin")
	require.NoError(t, os.WriteFile(inPath, []byte("bogus rd=1\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := doMain([]string{inPath, outPath}, &stdout, &stderr)
	assert.NotEqual(t, 0, code)
	assert.NotEmpty(t, stderr.String())
}
