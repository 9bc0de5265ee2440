package vcs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGitConfig(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "config"), []byte(content), 0o644))
}

func TestGetSCMConnection(t *testing.T) {
	root := t.TempDir()
	writeGitConfig(t, root, `[core]
	bare = false
[remote "origin"]
	url = git@github.com:acme/widget.git
	fetch = +refs/heads/*:refs/remotes/origin/*
`)

	repo := NewGitRepository(root)
	require.NotNil(t, repo)

	scm, err := repo.GetSCMConnection()
	require.NoError(t, err)
	assert.Equal(t, "scm:git:git@github.com:acme/widget.git", scm)
}

func TestGetRemoteURL_NoOrigin(t *testing.T) {
	root := t.TempDir()
	writeGitConfig(t, root, "[core]\n\tbare = false\n")

	_, err := NewGitRepository(root).GetRemoteURL()
	assert.Error(t, err)
}

func TestFindGitRepository_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeGitConfig(t, root, "[core]\n")
	nested := filepath.Join(root, "target", "classes")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	repo := FindGitRepository(nested)
	require.NotNil(t, repo)
	want, _ := filepath.Abs(root)
	assert.Equal(t, want, repo.Path())
}

func TestNewGitRepository_NotARepo(t *testing.T) {
	assert.Nil(t, NewGitRepository(t.TempDir()))
	assert.Nil(t, NewGitRepository(""))
}

func TestGlobalConfigValue(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"),
		[]byte("[github]\n\tuser = octocat\n\ttoken = abc123\n"), 0o644))

	user, err := GlobalConfigValue("github", "user")
	require.NoError(t, err)
	assert.Equal(t, "octocat", user)

	missing, err := GlobalConfigValue("github", "password")
	require.NoError(t, err)
	assert.Empty(t, missing)
}
