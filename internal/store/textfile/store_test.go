package textfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/dolist/internal/core/todo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Load(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tasks")
	content := "TODO: a\nNOTE: skip me\nDONE: b\n\nTODO: c\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	snap, err := New(path).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "c"}, snap.Pending)
	assert.Equal(t, []string{"b"}, snap.Completed)
}

func TestStore_Load_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "nope")).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore_SaveOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "TODO")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the new one\n"), 0o644))

	s := New(path)
	err := s.Save(todo.Snapshot{Pending: []string{"a"}, Completed: []string{"b"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "TODO: a\nDONE: b\n", string(data))

	_, err = os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore_SaveCreatesParentDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "TODO")

	require.NoError(t, New(path).Save(todo.Snapshot{Pending: []string{"x"}}))

	snap, err := New(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, snap.Pending)
}

func TestStore_SaveThenLoadRegroups(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	out := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(in, []byte("TODO: a\nDONE: b\nTODO: c\n"), 0o644))

	snap, err := New(in).Load()
	require.NoError(t, err)
	require.NoError(t, New(out).Save(snap))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "TODO: a\nTODO: c\nDONE: b\n", string(data))
}

func TestStore_SaveToDirectoryFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := New(dir).Save(todo.Snapshot{Pending: []string{"a"}})
	require.Error(t, err)
}

func TestStore_SaveKeepsPermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "TODO")
	require.NoError(t, os.WriteFile(path, []byte("TODO: a\n"), 0o600))
	require.NoError(t, os.Chmod(path, 0o600))

	require.NoError(t, New(path).Save(todo.Snapshot{Pending: []string{"b"}}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_SaveThroughSymlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(target, []byte("TODO: a\n"), 0o644))
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, New(link).Save(todo.Snapshot{Completed: []string{"a"}}))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "link should remain a symlink")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "DONE: a\n", string(data))
}
