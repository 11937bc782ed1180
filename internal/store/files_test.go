package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFilesSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	files, err := NewLocalFiles(dir)
	require.NoError(t, err)

	path, err := files.Save("CV Photo.PNG", strings.NewReader("not really a png"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, PublicPrefix+"/"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
	require.NoError(t, err)
	assert.Equal(t, "not really a png", string(data))
}

func TestLocalFilesSaveUniqueNames(t *testing.T) {
	files, err := NewLocalFiles(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	a, err := files.Save("same.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := files.Save("same.jpg", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestLocalFilesRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	files, err := NewLocalFiles(dir)
	require.NoError(t, err)

	path, err := files.Save("x.png", strings.NewReader("x"))
	require.NoError(t, err)
	require.NoError(t, files.Remove(path))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(path)))
	assert.True(t, os.IsNotExist(err))

	// removing an unknown path is not an error
	assert.NoError(t, files.Remove("/uploads/never-existed.png"))
}
