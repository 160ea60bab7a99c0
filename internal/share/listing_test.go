package share

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDirectory_OrderAndFields(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.Mkdir(filepath.Join(dir, "zeta"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "alpha"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.TXT"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF-"), 0o644))

	items := ListDirectory(dir)
	require.Len(t, items, 4)

	// directories first, each group ascending by name
	assert.Equal(t, "alpha", items[0].Name)
	assert.Equal(t, "zeta", items[1].Name)
	assert.Equal(t, "a.pdf", items[2].Name)
	assert.Equal(t, "b.TXT", items[3].Name)

	assert.Equal(t, "directory", items[0].Type)
	assert.Zero(t, items[0].Size)
	assert.Empty(t, items[0].Extension)

	assert.Equal(t, "file", items[2].Type)
	assert.Equal(t, int64(5), items[2].Size)
	assert.Equal(t, ".pdf", items[2].Extension)
	assert.Equal(t, ".txt", items[3].Extension, "extension is lower-cased")
	assert.False(t, items[2].ModifiedAt.IsZero())
}

func TestListDirectory_CaseSensitiveOrdinalOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "B.txt", "a.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	items := ListDirectory(dir)
	require.Len(t, items, 3)

	// byte-wise compare: uppercase sorts before lowercase
	assert.Equal(t, "B.txt", items[0].Name)
	assert.Equal(t, "a.txt", items[1].Name)
	assert.Equal(t, "b.txt", items[2].Name)
}

func TestListDirectory_ReadFailureDegradesToEmpty(t *testing.T) {
	items := ListDirectory(filepath.Join(t.TempDir(), "no-such-dir"))
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
