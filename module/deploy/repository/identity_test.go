package repository

import (
	"errors"
	"testing"

	deployerrors "github.com/harness/github-deploy/util/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSCM(t *testing.T) {
	tests := []struct {
		name      string
		scm       string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{name: "simple", scm: "scm:git:git@github.com:acme/widget.git", wantOwner: "acme", wantName: "widget"},
		{name: "dotted name", scm: "scm:git:git@github.com:JakeWharton/maven.github.deploy.git", wantOwner: "JakeWharton", wantName: "maven.github.deploy"},
		{name: "dashes", scm: "scm:git:git@github.com:my-org/my-repo.git", wantOwner: "my-org", wantName: "my-repo"},
		{name: "https remote", scm: "scm:git:https://github.com/acme/widget.git", wantErr: true},
		{name: "other host", scm: "scm:git:git@gitlab.com:acme/widget.git", wantErr: true},
		{name: "missing suffix", scm: "scm:git:git@github.com:acme/widget", wantErr: true},
		{name: "missing prefix", scm: "git@github.com:acme/widget.git", wantErr: true},
		{name: "trailing text", scm: "scm:git:git@github.com:acme/widget.git ", wantErr: true},
		{name: "empty", scm: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSCM(tt.scm)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, deployerrors.ErrInvalidRepositorySource))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, got.Owner())
			assert.Equal(t, tt.wantName, got.Name())
			assert.Equal(t, tt.wantOwner+"/"+tt.wantName, got.String())
		})
	}
}

func TestResolve_ExplicitWins(t *testing.T) {
	got, err := Resolve("acme", "widget", "not an scm url")
	require.NoError(t, err)
	assert.Equal(t, "acme/widget", got.String())
}

func TestResolve_BlankExplicitFallsBack(t *testing.T) {
	got, err := Resolve("acme", "  ", "scm:git:git@github.com:other/thing.git")
	require.NoError(t, err)
	assert.Equal(t, "other/thing", got.String())
}

func TestResolve_Idempotent(t *testing.T) {
	scm := "scm:git:git@github.com:acme/widget.git"
	first, err := Resolve("", "", scm)
	require.NoError(t, err)
	second, err := Resolve("", "", scm)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
