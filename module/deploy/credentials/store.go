package credentials

import (
	"github.com/harness/github-deploy/util/common/errors"
	"github.com/harness/github-deploy/util/common/fileutil"

	"gopkg.in/ini.v1"
)

// FileStore reads credentials from an INI file in which each section is a
// server id holding "username" and "secret" keys:
//
//	[github-deploy]
//	username = octocat
//	secret   = 0123456789abcdef
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by path; "~/" is expanded.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: fileutil.ExpandHome(path)}
}

// Lookup implements Store. A missing file is treated as an empty store.
func (s *FileStore) Lookup(serverID string) (string, string, bool, error) {
	if s.Path == "" || !fileutil.IsFile(s.Path) {
		return "", "", false, nil
	}

	cfg, err := ini.Load(s.Path)
	if err != nil {
		return "", "", false, errors.NewFileError(s.Path, "parse", err)
	}
	if !cfg.HasSection(serverID) {
		return "", "", false, nil
	}

	section := cfg.Section(serverID)
	return section.Key("username").String(), section.Key("secret").String(), true, nil
}
