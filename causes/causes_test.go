package causes_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vusec-labs/riscv-inst-mutator/causes"
)

func TestScanParsesTagAndSuffix(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, at time.Time) {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("crash"), 0o644))
		require.NoError(t, os.Chtimes(path, at, at))
	}

	base := time.Now().Add(-time.Hour)
	write("null_pointer_deref%001", base)
	write("stack_overflow%002", base.Add(time.Minute))
	write("no_suffix", base.Add(2*time.Minute))

	found, err := causes.Scan(dir)
	require.NoError(t, err)
	require.Len(t, found, 3)

	assert.Equal(t, "null pointer deref", found[0].Tag)
	assert.Equal(t, "001", found[0].Suffix)
	assert.Equal(t, "stack overflow", found[1].Tag)
	assert.Equal(t, "no suffix", found[2].Tag)
	assert.Empty(t, found[2].Suffix)
}

func TestMissingReportsUnseenTags(t *testing.T) {
	found := []causes.Cause{{Tag: "bug one"}, {Tag: "bug two"}}
	missing := causes.Missing(found, []string{"bug one", "bug three"})
	assert.Equal(t, []string{"bug three"}, missing)
}
