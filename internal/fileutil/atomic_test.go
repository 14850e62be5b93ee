package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "rules.hcl")

	require.NoError(t, WriteAtomic(path, 0644, writeString("owner = \"Me\"\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "owner = \"Me\"\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file left behind")
}

func TestWriteAtomicOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0644))

	require.NoError(t, WriteAtomic(path, 0644, writeString("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteAtomicWriterError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "rules.hcl")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0644))

	boom := errors.New("encode failed")
	err := WriteAtomic(path, 0644, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWriteAtomicMissingDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "rules.hcl")
	err := WriteAtomic(path, 0644, writeString("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create temp file")
}
