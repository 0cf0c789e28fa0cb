package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisk_SaveAndRead(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	path, err := disk.Save([]byte("hello"))
	require.NoError(t, err)
	assert.True(t, disk.Exists(path))

	data, err := disk.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestDisk_SaveUniqueNames(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	p1, err := disk.Save([]byte("a"))
	require.NoError(t, err)
	p2, err := disk.Save([]byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
}

func TestDisk_WriteOverwrites(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	path := filepath.Join(disk.Root(), "blob")
	require.NoError(t, disk.Write(path, []byte("first")))
	require.NoError(t, disk.Write(path, []byte("second")))

	data, err := disk.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestDisk_ExistsMissing(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	assert.False(t, disk.Exists(filepath.Join(disk.Root(), "nope")))
}

func TestDisk_EnsureDirIdempotent(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	dir := filepath.Join(disk.Root(), "thumbnails")
	require.NoError(t, disk.EnsureDir(dir))
	require.NoError(t, disk.EnsureDir(dir))
}

func TestNewDisk_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "files")

	disk, err := NewDisk(root)

	require.NoError(t, err)
	_, err = disk.Save([]byte("x"))
	assert.NoError(t, err)
}
