package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	deployerrors "github.com/harness/github-deploy/util/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	username, secret string
	found            bool
	calls            int
}

func (f *fakeStore) Lookup(string) (string, string, bool, error) {
	f.calls++
	return f.username, f.secret, f.found, nil
}

type fakeVCS struct {
	values map[string]string
	calls  int
}

func (f *fakeVCS) lookup(section, key string) (string, error) {
	f.calls++
	return f.values[section+"."+key], nil
}

func TestResolve_ExplicitValuesSkipFallback(t *testing.T) {
	store := &fakeStore{username: "store-user", secret: "store-token", found: true}
	vcs := &fakeVCS{values: map[string]string{"github.user": "git-user", "github.token": "git-token"}}
	r := &Resolver{Store: store, VCS: vcs.lookup}

	got, err := r.Resolve("  octocat ", "\tabc123\n")
	require.NoError(t, err)
	assert.Equal(t, Credentials{Login: "octocat", Token: "abc123"}, got)
	assert.Zero(t, store.calls)
	assert.Zero(t, vcs.calls)
}

func TestResolve_StoreBeforeVCS(t *testing.T) {
	store := &fakeStore{username: "store-user", secret: "store-token", found: true}
	vcs := &fakeVCS{values: map[string]string{"github.user": "git-user", "github.token": "git-token"}}
	r := &Resolver{Store: store, VCS: vcs.lookup}

	got, err := r.Resolve("octocat", "")
	require.NoError(t, err)
	assert.Equal(t, Credentials{Login: "store-user", Token: "store-token"}, got)
	assert.Equal(t, 1, store.calls)
	assert.Zero(t, vcs.calls)
}

func TestResolve_VCSWhenStoreMisses(t *testing.T) {
	store := &fakeStore{}
	vcs := &fakeVCS{values: map[string]string{"github.user": "git-user\n", "github.token": "git-token\n"}}
	r := &Resolver{Store: store, VCS: vcs.lookup}

	got, err := r.Resolve("", "")
	require.NoError(t, err)
	assert.Equal(t, Credentials{Login: "git-user", Token: "git-token"}, got)
}

func TestResolve_Missing(t *testing.T) {
	tests := []struct {
		name  string
		store Store
		vcs   ConfigLookup
	}{
		{name: "no sources", store: nil, vcs: nil},
		{name: "blank store entry", store: &fakeStore{username: " ", secret: "tok", found: true}},
		{
			name: "vcs lookup fails",
			vcs: func(string, string) (string, error) {
				return "", errors.New("git not installed")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{Store: tt.store, VCS: tt.vcs}
			_, err := r.Resolve("", "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, deployerrors.ErrMissingCredentials))
		})
	}
}

func TestFileStore_Lookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")
	require.NoError(t, os.WriteFile(path, []byte(`
[github-deploy]
username = octocat
secret = abc123

[other]
username = someone
secret = else
`), 0o600))

	store := NewFileStore(path)

	user, secret, found, err := store.Lookup(DefaultServerID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "octocat", user)
	assert.Equal(t, "abc123", secret)

	_, _, found, err = store.Lookup("missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope"))
	_, _, found, err := store.Lookup(DefaultServerID)
	require.NoError(t, err)
	assert.False(t, found)
}
