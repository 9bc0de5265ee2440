// Package credentials resolves the login and token used against the
// downloads service.
package credentials

import (
	"strings"

	"github.com/harness/github-deploy/util/common/errors"

	"github.com/rs/zerolog/log"
)

// DefaultServerID is the store entry consulted when none is configured.
const DefaultServerID = "github-deploy"

// Credentials are the trimmed login and token of one run.
type Credentials struct {
	Login string
	Token string
}

// Store looks up a named entry in a secondary credential store.
// found is false when the store has no such entry.
type Store interface {
	Lookup(serverID string) (username, secret string, found bool, err error)
}

// ConfigLookup reads a global version-control configuration value.
type ConfigLookup func(section, key string) (string, error)

// Resolver resolves credentials from, in order, explicit values, the
// secondary store and the global version-control configuration.
type Resolver struct {
	ServerID string
	Store    Store
	VCS      ConfigLookup
}

// Resolve returns trimmed credentials or ErrMissingCredentials when either
// value is still blank after every source has been tried.
func (r *Resolver) Resolve(login, token string) (Credentials, error) {
	if isBlank(login) || isBlank(token) {
		log.Debug().Msg("No credentials supplied in configuration")
		login, token = r.fallback()
	}

	creds := Credentials{
		Login: strings.TrimSpace(login),
		Token: strings.TrimSpace(token),
	}
	if creds.Login == "" || creds.Token == "" {
		return Credentials{}, errors.NewDeployError(errors.ErrMissingCredentials,
			"no GitHub credentials found: set login and token, add a %q entry to the credential store, "+
				"or set github.user and github.token in your global git configuration", r.serverID())
	}
	return creds, nil
}

func (r *Resolver) fallback() (string, string) {
	if r.Store != nil {
		log.Debug().Str("serverId", r.serverID()).Msg("Checking credential store")
		username, secret, found, err := r.Store.Lookup(r.serverID())
		if err != nil {
			log.Debug().Err(err).Msg("Credential store lookup failed")
		}
		if found {
			return username, secret
		}
	}

	log.Debug().Msg("No credentials in credential store, checking git configuration")
	if r.VCS == nil {
		return "", ""
	}
	// Lookup failures are not fatal here; blank values are reported by Resolve.
	login, _ := r.VCS("github", "user")
	token, _ := r.VCS("github", "token")
	return login, token
}

func (r *Resolver) serverID() string {
	if r.ServerID == "" {
		return DefaultServerID
	}
	return r.ServerID
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
