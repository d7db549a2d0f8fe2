package filewalker

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested"), 0755))
	for _, name := range []string{"a.txt", "nested/b.MORSE", "c.lua", "nested/d.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("sos\n"), 0644))
	}

	entries, err := NewWalker().Walk(root)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		rel, err := filepath.Rel(root, e.Path)
		require.NoError(t, err)
		names = append(names, filepath.ToSlash(rel))
		assert.NotNil(t, e.Parser)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"a.txt", "nested/b.MORSE"}, names)
}

func TestWalk_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := NewWalker().Walk(file)
	assert.Error(t, err)
}

func TestWalk_Missing(t *testing.T) {
	_, err := NewWalker().Walk(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
