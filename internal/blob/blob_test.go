package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSPut(t *testing.T) {
	root := t.TempDir()
	st := NewFS(root)

	info, err := st.Put(context.Background(), "nested/dir/a.tsv", strings.NewReader("STUDY\tPRJEB1\n"), PutOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(13), info.Size)
	assert.Equal(t, filepath.Join(root, "nested", "dir", "a.tsv"), info.Location)

	got, err := os.ReadFile(info.Location)
	require.NoError(t, err)
	assert.Equal(t, "STUDY\tPRJEB1\n", string(got))

	fi, err := os.Stat(info.Location)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerms), fi.Mode().Perm())
}

func TestFSPutReplaces(t *testing.T) {
	st := NewFS(t.TempDir())
	_, err := st.Put(context.Background(), "x", strings.NewReader("old"), PutOptions{})
	require.NoError(t, err)
	info, err := st.Put(context.Background(), "x", strings.NewReader("new"), PutOptions{})
	require.NoError(t, err)

	got, _ := os.ReadFile(info.Location)
	assert.Equal(t, "new", string(got))
}

func TestFSRejectsEscapingKeys(t *testing.T) {
	st := NewFS(t.TempDir())
	for _, k := range []string{"", "../x", "/etc/passwd"} {
		_, err := st.Put(context.Background(), k, strings.NewReader(""), PutOptions{})
		assert.Error(t, err, k)
	}
}

func TestMemory(t *testing.T) {
	st := NewMemory()
	_, err := st.Put(context.Background(), "b", strings.NewReader("2"), PutOptions{})
	require.NoError(t, err)
	_, err = st.Put(context.Background(), "a", strings.NewReader("1"), PutOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, st.Keys())
	b, ok := st.Bytes("a")
	assert.True(t, ok)
	assert.Equal(t, "1", string(b))
	assert.Equal(t, DriverMemory, st.Driver())
}
