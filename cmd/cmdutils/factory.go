package cmdutils

import (
	"os"

	"github.com/harness/github-deploy/config"
	internalconfig "github.com/harness/github-deploy/internal/config"
	"github.com/harness/github-deploy/module/deploy"
	"github.com/harness/github-deploy/module/deploy/credentials"
	"github.com/harness/github-deploy/module/deploy/github"
	"github.com/harness/github-deploy/module/deploy/listing"
	"github.com/harness/github-deploy/util/common/vcs"

	"github.com/rs/zerolog/log"
)

// Version is set via ldflags during build
var Version = "dev"

type Factory struct {
	// DownloadsClient returns the client shared by every request of a run.
	DownloadsClient func() *github.Client
	// CredentialStore returns the secondary credential store at path.
	CredentialStore func(path string) credentials.Store
	// GitConfig reads the global git configuration.
	GitConfig credentials.ConfigLookup
	// WorkDir is searched for a git repository when no SCM URL is configured.
	WorkDir func() (string, error)

	// ShowProgress enables the upload progress bar.
	ShowProgress bool
}

func NewFactory() *Factory {
	f := &Factory{
		CredentialStore: func(path string) credentials.Store {
			return credentials.NewFileStore(path)
		},
		GitConfig: vcs.GlobalConfigValue,
		WorkDir:   os.Getwd,
	}
	f.DownloadsClient = func() *github.Client {
		c := github.NewClient(nil, config.Global.BaseURL, config.Global.StorageURL,
			github.UserAgent("github-deploy/"+Version))
		c.Progress = f.ShowProgress
		return c
	}
	return f
}

// LoadConfig loads the project file named by --config.
func (f *Factory) LoadConfig() (*internalconfig.Config, error) {
	path := config.Global.ConfigPath
	if path == "" {
		path = internalconfig.DefaultPath
	}
	return internalconfig.LoadOrDefault(path)
}

// Options merges the project file with global flags and environment.
// Flags win over the project file.
func (f *Factory) Options(cfg *internalconfig.Config) deploy.Options {
	opts := cfg.Options()
	opts.Offline = config.Global.Offline

	if config.Global.Login != "" {
		opts.Login = config.Global.Login
	}
	if config.Global.Token != "" {
		opts.Token = config.Global.Token
	}
	if config.Global.Deploy.ReplaceExisting {
		opts.ReplaceExisting = true
	}
	if config.Global.Deploy.Skip {
		opts.Skip = true
	}

	if (opts.Owner == "" || opts.Name == "") && opts.SCM == "" {
		opts.SCM = f.scmFromWorkDir()
	}
	return opts
}

func (f *Factory) scmFromWorkDir() string {
	if f.WorkDir == nil {
		return ""
	}
	dir, err := f.WorkDir()
	if err != nil {
		return ""
	}
	repo := vcs.FindGitRepository(dir)
	if repo == nil {
		log.Debug().Str("dir", dir).Msg("No git repository found")
		return ""
	}
	scm, err := repo.GetSCMConnection()
	if err != nil {
		log.Debug().Err(err).Msg("Could not read origin remote")
		return ""
	}
	log.Debug().Str("scm", scm).Msg("Inferred SCM URL from git remote")
	return scm
}

// Deployer builds the pipeline for cfg.
func (f *Factory) Deployer(cfg *internalconfig.Config) (*deploy.Deployer, error) {
	parserName := cfg.Deploy.Parser
	if config.Global.Deploy.Parser != "" {
		parserName = config.Global.Deploy.Parser
	}
	parser, err := listing.NewParser(parserName)
	if err != nil {
		return nil, err
	}

	resolver := &credentials.Resolver{
		ServerID: cfg.Deploy.Credentials.ServerID,
		VCS:      f.GitConfig,
	}
	if f.CredentialStore != nil {
		resolver.Store = f.CredentialStore(cfg.Deploy.Credentials.File)
	}

	return &deploy.Deployer{
		Service:     f.DownloadsClient(),
		Parser:      parser,
		Credentials: resolver,
	}, nil
}
