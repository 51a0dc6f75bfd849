package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoMainDisassemblesAddLiteral(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "add.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xb3, 0x00, 0x41, 0x00}, 0o644))

	var stdout, stderr bytes.Buffer
	code := doMain([]string{path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "add rd=0x1 rs1=0x2 rs2=0x4")
}

func TestDoMainRawFlagMatchesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "add.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xb3, 0x00, 0x41, 0x00}, 0o644))

	var stdout, stderr bytes.Buffer
	code := doMain([]string{"--raw", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "add rd=0x1 rs1=0x2 rs2=0x4")
}

func TestDoMainMultipleFilesHaveHeaders(t *testing.T) {
	dir := t.TempDir()
	path1 := filepath.Join(dir, "one.bin")
	path2 := filepath.Join(dir, "two.bin")
	require.NoError(t, os.WriteFile(path1, []byte{0xb3, 0x00, 0x41, 0x00}, 0o644))
	require.NoError(t, os.WriteFile(path2, []byte{0xb3, 0x00, 0x41, 0x00}, 0o644))

	var stdout, stderr bytes.Buffer
	code := doMain([]string{path1, path2}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.True(t, strings.Contains(stdout.String(), "==> "+path1+" <=="))
	assert.True(t, strings.Contains(stdout.String(), "==> "+path2+" <=="))
}

func TestDoMainRejectsTrailingGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x01, 0x02, 0x03}, 0o644))

	var stdout, stderr bytes.Buffer
	code := doMain([]string{path}, &stdout, &stderr)
	assert.NotEqual(t, 0, code)
	assert.NotEmpty(t, stderr.String())
}
