package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harness/github-deploy/util/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = ReadFile(dir)
	var verr *errors.ValidationError
	assert.True(t, errors.As(err, &verr))

	_, err = ReadFile(filepath.Join(dir, "missing.txt"))
	var ferr *errors.FileError
	assert.True(t, errors.As(err, &ferr))

	_, err = ReadFile("")
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/octocat")

	assert.Equal(t, filepath.Join("/home/octocat", ".github-deploy/credentials"), ExpandHome("~/.github-deploy/credentials"))
	assert.Equal(t, "/etc/creds", ExpandHome("/etc/creds"))
	assert.Equal(t, "~other/x", ExpandHome("~other/x"))
}

func TestIsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.jar")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	assert.True(t, IsFile(path))
	assert.False(t, IsFile(dir))
	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(path))
	assert.True(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "nope")))
}
