// Package repository resolves which remote repository a deployment targets.
package repository

import (
	"regexp"
	"strings"

	"github.com/harness/github-deploy/util/common/errors"
)

// scmPattern accepts only the SSH developer-connection form for github.com.
var scmPattern = regexp.MustCompile(`^scm:git:git@github\.com:(.+?)/(.+?)\.git$`)

// Identity names a remote repository. It is immutable once resolved.
type Identity struct {
	owner string
	name  string
}

// NewIdentity builds an Identity from explicit values.
func NewIdentity(owner, name string) Identity {
	return Identity{owner: owner, name: name}
}

func (i Identity) Owner() string { return i.owner }
func (i Identity) Name() string  { return i.name }

// String returns "owner/name", the form used in every endpoint.
func (i Identity) String() string {
	return i.owner + "/" + i.name
}

// Resolve returns the explicit owner and name when both are non-blank,
// otherwise it parses scm, e.g. "scm:git:git@github.com:OWNER/NAME.git".
func Resolve(owner, name, scm string) (Identity, error) {
	if strings.TrimSpace(owner) != "" && strings.TrimSpace(name) != "" {
		return NewIdentity(owner, name), nil
	}
	return ParseSCM(scm)
}

// ParseSCM extracts owner and name from an SCM connection string.
func ParseSCM(scm string) (Identity, error) {
	match := scmPattern.FindStringSubmatch(scm)
	if match == nil {
		return Identity{}, errors.NewDeployError(errors.ErrInvalidRepositorySource,
			"SCM URL %q is not of the form scm:git:git@github.com:OWNER/NAME.git", scm)
	}
	return NewIdentity(match[1], match[2]), nil
}
