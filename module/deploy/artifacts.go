package deploy

import (
	"path/filepath"

	"github.com/harness/github-deploy/module/deploy/github"
	"github.com/harness/github-deploy/util/common/errors"
	"github.com/harness/github-deploy/util/common/fileutil"

	"github.com/gobwas/glob"
	"github.com/rs/zerolog/log"
)

// Artifact is a packaged build output offered for deployment.
type Artifact struct {
	Path string `yaml:"path" json:"path"`
	Type string `yaml:"type" json:"type"`
}

// Candidate is an artifact selected for upload.
type Candidate struct {
	github.File
	Type string
}

// SelectCandidates returns the artifacts to upload: the primary artifact first,
// then attached artifacts in order. Artifacts whose type matches an ignore
// pattern are dropped, as are repeated file names and attached artifacts that
// are not on disk. A missing primary artifact is an error.
func SelectCandidates(primary Artifact, attached []Artifact, ignoreTypes []string) ([]Candidate, error) {
	ignore, err := compileIgnore(ignoreTypes)
	if err != nil {
		return nil, err
	}

	var (
		candidates []Candidate
		seen       = map[string]bool{}
	)
	add := func(a Artifact, required bool) error {
		if a.Path == "" || !fileutil.IsFile(a.Path) {
			if required {
				return errors.NewDeployError(errors.ErrArtifactNotFound, "artifact %q does not exist; did you package the project first?", a.Path)
			}
			log.Debug().Str("path", a.Path).Msg("Skipping attached artifact that is not a file")
			return nil
		}
		name := filepath.Base(a.Path)
		if matchesAny(ignore, a.Type) {
			log.Info().Str("artifact", name).Str("type", a.Type).Msg("Ignoring artifact")
			return nil
		}
		if seen[name] {
			log.Debug().Str("artifact", name).Msg("Artifact already marked for deployment")
			return nil
		}
		size, err := fileSize(a.Path)
		if err != nil {
			return err
		}
		seen[name] = true
		candidates = append(candidates, Candidate{
			File: github.File{Path: a.Path, Name: name, Size: size},
			Type: a.Type,
		})
		return nil
	}

	if err := add(primary, true); err != nil {
		return nil, err
	}
	for _, a := range attached {
		if err := add(a, false); err != nil {
			return nil, err
		}
	}

	if len(candidates) == 0 {
		return nil, errors.NewDeployError(errors.ErrArtifactNotFound, "no deployable artifacts found")
	}
	log.Debug().Int("count", len(candidates)).Msg("Found valid deployable artifacts")
	return candidates, nil
}

func compileIgnore(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.NewValidationError("ignoreTypes", "invalid pattern "+p+": "+err.Error())
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func matchesAny(globs []glob.Glob, s string) bool {
	for _, g := range globs {
		if g.Match(s) {
			return true
		}
	}
	return false
}
