package main

import (
	"bytes"
	"testing"

	"github.com/harness/github-deploy/cmd/cmdutils"
	"github.com/harness/github-deploy/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	saved := config.Global
	t.Cleanup(func() { config.Global = saved })

	root := newRootCmd(cmdutils.NewFactory())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "github-deploy version "+cmdutils.Version)
}

func TestEnvOverridesDefaults(t *testing.T) {
	saved := config.Global
	t.Cleanup(func() { config.Global = saved })
	t.Setenv("GITHUB_DEPLOY_LOGIN", "env-user")
	t.Setenv("GITHUB_DEPLOY_BASE_URL", "https://ghe.example.com")

	root := newRootCmd(cmdutils.NewFactory())
	root.SetArgs([]string{"version", "--login", "flag-user"})
	root.SetOut(&bytes.Buffer{})
	require.NoError(t, root.Execute())

	assert.Equal(t, "flag-user", config.Global.Login)
	assert.Equal(t, "https://ghe.example.com", config.Global.BaseURL)
}

func TestSubcommands(t *testing.T) {
	root := newRootCmd(cmdutils.NewFactory())

	cmd, _, err := root.Find([]string{"downloads", "deploy"})
	require.NoError(t, err)
	assert.Equal(t, "deploy", cmd.Name())

	cmd, _, err = root.Find([]string{"dl", "list"})
	require.NoError(t, err)
	assert.Equal(t, "list", cmd.Name())
}
