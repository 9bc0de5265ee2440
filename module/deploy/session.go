package deploy

import (
	"os"

	"github.com/harness/github-deploy/module/deploy/credentials"
	"github.com/harness/github-deploy/module/deploy/repository"
	"github.com/harness/github-deploy/util/common/errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Session is the resolved, read-only context of one run. It is built once
// and passed to every stage.
type Session struct {
	Repo  repository.Identity
	Creds credentials.Credentials
	RunID string
	Log   zerolog.Logger
}

func (d *Deployer) newSession(opts Options) (Session, error) {
	if opts.Offline {
		return Session{}, errors.NewDeployError(errors.ErrOfflineMode,
			"cannot deploy while offline; GitHub must be reachable")
	}

	log.Debug().Msg("Loading repository information")
	repo, err := repository.Resolve(opts.Owner, opts.Name, opts.SCM)
	if err != nil {
		return Session{}, err
	}

	log.Debug().Msg("Loading repository credentials")
	resolver := d.Credentials
	if resolver == nil {
		resolver = &credentials.Resolver{}
	}
	creds, err := resolver.Resolve(opts.Login, opts.Token)
	if err != nil {
		return Session{}, err
	}

	runID := uuid.NewString()
	return Session{
		Repo:  repo,
		Creds: creds,
		RunID: runID,
		Log: log.With().
			Str("runId", runID).
			Str("repository", repo.String()).
			Logger(),
	}, nil
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, errors.WrapDeployError(errors.ErrArtifactNotFound, err, "could not stat artifact %q", path)
	}
	return info.Size(), nil
}
