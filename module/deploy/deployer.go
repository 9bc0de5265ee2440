// Package deploy publishes build artifacts to a repository's downloads page.
package deploy

import (
	"context"

	"github.com/harness/github-deploy/module/deploy/credentials"
	"github.com/harness/github-deploy/module/deploy/github"
	"github.com/harness/github-deploy/module/deploy/listing"
	"github.com/harness/github-deploy/module/deploy/repository"
	"github.com/harness/github-deploy/util/common"
	"github.com/harness/github-deploy/util/common/errors"

	"github.com/rs/zerolog/log"
)

// Service is the remote downloads service.
type Service interface {
	ListDownloads(ctx context.Context, repo repository.Identity, creds credentials.Credentials,
		parser listing.Parser) (*listing.Listing, error)
	DeleteAsset(ctx context.Context, asset listing.Asset, creds credentials.Credentials, authToken string) error
	Negotiate(ctx context.Context, repo repository.Identity, creds credentials.Credentials,
		file github.File) (*github.Descriptor, error)
	Upload(ctx context.Context, d *github.Descriptor, file github.File) error
}

// Options configure one run.
type Options struct {
	Skip    bool
	Offline bool

	Owner string
	Name  string
	SCM   string

	Login string
	Token string

	ReplaceExisting bool
	IgnoreTypes     []string
	Artifact        Artifact
	Attached        []Artifact
}

// Result reports what a run did.
type Result struct {
	Skipped  bool
	Deleted  []string
	Deployed []string
}

// Deployer runs the deployment pipeline.
type Deployer struct {
	Service     Service
	Parser      listing.Parser
	Credentials *credentials.Resolver
}

// Run discovers existing downloads, deletes those that collide with the
// candidates when ReplaceExisting is set, then negotiates and uploads each
// candidate in order. The first failure aborts the run.
func (d *Deployer) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Skip {
		log.Info().Msg("Skipping artifact deployment")
		return &Result{Skipped: true}, nil
	}

	s, err := d.newSession(opts)
	if err != nil {
		return nil, err
	}

	candidates, err := SelectCandidates(opts.Artifact, opts.Attached, opts.IgnoreTypes)
	if err != nil {
		return nil, err
	}

	existing, err := d.discover(ctx, s)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	deleted, err := d.resolveConflicts(ctx, s, existing, candidates, opts.ReplaceExisting)
	if err != nil {
		return nil, err
	}
	result.Deleted = deleted

	for _, c := range candidates {
		if err := d.deploy(ctx, s, c); err != nil {
			return result, err
		}
		result.Deployed = append(result.Deployed, c.Name)
	}

	s.Log.Info().Msgf("Successfully deployed %s.", common.Plural(len(result.Deployed), "artifact"))
	return result, nil
}

// List returns the downloads currently on the listing page.
func (d *Deployer) List(ctx context.Context, opts Options) (*listing.Listing, error) {
	s, err := d.newSession(opts)
	if err != nil {
		return nil, err
	}
	return d.discover(ctx, s)
}

// Delete removes the download named fileName.
func (d *Deployer) Delete(ctx context.Context, opts Options, fileName string) error {
	s, err := d.newSession(opts)
	if err != nil {
		return err
	}
	existing, err := d.discover(ctx, s)
	if err != nil {
		return err
	}
	asset, ok := existing.Lookup(fileName)
	if !ok {
		return errors.NewDeployError(errors.ErrAssetNotFound, "no download named %q in %s", fileName, s.Repo)
	}
	return d.delete(ctx, s, existing, asset)
}

func (d *Deployer) discover(ctx context.Context, s Session) (*listing.Listing, error) {
	s.Log.Info().Msg("Checking for existing downloads")
	parser := d.Parser
	if parser == nil {
		parser = listing.RegexParser{}
	}
	existing, err := d.Service.ListDownloads(ctx, s.Repo, s.Creds, parser)
	if err != nil {
		return nil, err
	}
	s.Log.Debug().Int("count", existing.Len()).Msg("Found existing downloads")
	return existing, nil
}

// resolveConflicts checks every candidate against the listing before touching
// anything, then deletes all matches.
func (d *Deployer) resolveConflicts(ctx context.Context, s Session, existing *listing.Listing,
	candidates []Candidate, replace bool) ([]string, error) {
	var matches []listing.Asset
	for _, c := range candidates {
		asset, ok := existing.Lookup(c.Name)
		if !ok {
			continue
		}
		if !replace {
			return nil, errors.NewDeployError(errors.ErrAssetAlreadyExists,
				"a download named %q already exists; delete it or enable replaceExisting", c.Name)
		}
		matches = append(matches, asset)
	}

	var deleted []string
	for _, asset := range matches {
		if err := d.delete(ctx, s, existing, asset); err != nil {
			return deleted, err
		}
		deleted = append(deleted, asset.FileName)
	}
	return deleted, nil
}

func (d *Deployer) delete(ctx context.Context, s Session, existing *listing.Listing, asset listing.Asset) error {
	s.Log.Info().Str("download", asset.FileName).Int64("id", asset.ID).Msg("Deleting existing download")
	return d.Service.DeleteAsset(ctx, asset, s.Creds, existing.AuthToken)
}

func (d *Deployer) deploy(ctx context.Context, s Session, c Candidate) error {
	s.Log.Info().Str("artifact", c.Name).Str("size", common.GetSize(c.Size)).Msg("Sending deploy information")
	descriptor, err := d.Service.Negotiate(ctx, s.Repo, s.Creds, c.File)
	if err != nil {
		return err
	}

	s.Log.Info().Str("artifact", c.Name).Msg("Deploying artifact")
	if err := d.Service.Upload(ctx, descriptor, c.File); err != nil {
		return err
	}
	s.Log.Debug().Str("artifact", c.Name).Str("key", descriptor.Key(c.Name)).Msg("Successfully deployed")
	return nil
}
