package listing

import (
	"fmt"
	"regexp"

	"github.com/harness/github-deploy/module/deploy/repository"
)

// Parser names accepted in configuration.
const (
	ParserRegex = "regex"
	ParserHTML  = "html"
)

// authTokenPattern locates the page-global authenticity token.
var authTokenPattern = regexp.MustCompile(`<script>window\._auth_token = "([0-9a-f]+)"</script>`)

// Parser turns a listing page into a Listing. baseURL is prepended to the
// relative paths found on the page.
type Parser interface {
	Parse(page string, repo repository.Identity, baseURL string) (*Listing, error)
}

// NewParser returns the parser registered under name.
func NewParser(name string) (Parser, error) {
	switch name {
	case "", ParserRegex:
		return RegexParser{}, nil
	case ParserHTML:
		return TokenizerParser{}, nil
	default:
		return nil, fmt.Errorf("unknown listing parser %q, must be %q or %q", name, ParserRegex, ParserHTML)
	}
}
