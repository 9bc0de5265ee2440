package listing

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/harness/github-deploy/module/deploy/repository"
	"github.com/harness/github-deploy/util/common/errors"

	"github.com/rs/zerolog/log"
)

// downloadsPattern matches one entry: the delete link followed, after any
// markup, by the file link and its display name. %[1]s is the quoted repo.
const downloadsPattern = `(?s)<a href="(/%[1]s/downloads/([0-9]+))"(?:.*?)<a href="(/downloads/%[1]s/(.*?))">(.*?)</a>`

// RegexParser matches the listing page with a single multi-group pattern.
type RegexParser struct{}

func (RegexParser) Parse(page string, repo repository.Identity, baseURL string) (*Listing, error) {
	token := authTokenPattern.FindStringSubmatch(page)
	if token == nil {
		return nil, errors.NewDeployError(errors.ErrAuthTokenNotFound,
			"could not find the authenticity token on the downloads page of %s", repo)
	}
	listing := NewListing(token[1])

	pattern := regexp.MustCompile(fmt.Sprintf(downloadsPattern, regexp.QuoteMeta(repo.String())))
	for _, m := range pattern.FindAllStringSubmatch(page, -1) {
		id, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			log.Debug().Str("id", m[2]).Msg("Skipping download with unparseable id")
			continue
		}
		asset := Asset{
			ID:        id,
			FileName:  m[4],
			Name:      m[5],
			URL:       baseURL + m[3],
			DeleteURL: baseURL + m[1],
		}
		log.Debug().Str("fileName", asset.FileName).Int64("id", asset.ID).Msg("Found download")
		listing.Add(asset)
	}
	return listing, nil
}
