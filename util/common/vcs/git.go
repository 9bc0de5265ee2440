package vcs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/harness/github-deploy/util/common/errors"
	"github.com/harness/github-deploy/util/common/fileutil"

	gitconfig "github.com/go-git/go-git/v5/config"
	"gopkg.in/ini.v1"
)

// scmPrefix is prepended to a raw remote URL to form an SCM connection string.
const scmPrefix = "scm:git:"

// validateGitPath checks if a path is valid and points to a Git repository.
func validateGitPath(path string) error {
	if path == "" {
		return errors.NewValidationError("path", "path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.NewFileError(path, "access", err)
	}
	if !info.IsDir() {
		return errors.NewValidationError("path", "path is not a directory")
	}

	if !fileutil.IsDir(filepath.Join(path, ".git")) {
		return errors.NewVCSError("validate", path, errors.ErrInvalidOperation)
	}

	return nil
}

// GitRepository represents a Git repository
type GitRepository struct {
	path string
}

// NewGitRepository creates a new GitRepository instance.
// Returns nil if path is not a Git working tree.
func NewGitRepository(path string) *GitRepository {
	if err := validateGitPath(path); err != nil {
		return nil
	}
	return &GitRepository{
		path: path,
	}
}

// FindGitRepository walks up from start until it finds a directory
// containing a .git directory. Returns nil if none is found.
func FindGitRepository(start string) *GitRepository {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil
	}
	for {
		if repo := NewGitRepository(dir); repo != nil {
			return repo
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

// Path returns the working tree root.
func (g *GitRepository) Path() string {
	return g.path
}

// GetRemoteURL returns the URL of the 'origin' remote, read from the
// repository's config file.
func (g *GitRepository) GetRemoteURL() (string, error) {
	if g == nil || g.path == "" {
		return "", errors.NewVCSError("validate", "<nil>", errors.ErrInvalidOperation)
	}

	configPath := filepath.Join(g.path, ".git", "config")
	if !fileutil.IsFile(configPath) {
		return "", errors.NewVCSError("read_config", g.path, errors.ErrNotFound)
	}

	cfg, err := ini.Load(configPath)
	if err != nil {
		return "", errors.NewVCSError("read_config", g.path, err)
	}

	if !cfg.HasSection(`remote "origin"`) {
		return "", errors.NewVCSError("validate_remote", g.path, errors.ErrNotFound)
	}

	url := strings.TrimSpace(cfg.Section(`remote "origin"`).Key("url").String())
	if url == "" {
		return "", errors.NewVCSError("validate_remote", g.path, errors.ErrNotFound)
	}
	return url, nil
}

// GetSCMConnection returns the origin remote as an SCM connection string,
// e.g. "scm:git:git@github.com:owner/name.git".
func (g *GitRepository) GetSCMConnection() (string, error) {
	url, err := g.GetRemoteURL()
	if err != nil {
		return "", err
	}
	return scmPrefix + url, nil
}

// GlobalConfigValue reads "section.key" from the user's global git
// configuration. A missing key yields an empty string.
func GlobalConfigValue(section, key string) (string, error) {
	cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope)
	if err != nil {
		return "", errors.NewVCSError("read_global_config", section+"."+key, err)
	}
	return cfg.Raw.Section(section).Option(key), nil
}
