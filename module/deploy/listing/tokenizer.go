package listing

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/harness/github-deploy/module/deploy/repository"
	"github.com/harness/github-deploy/util/common/errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

var deleteIDPattern = regexp.MustCompile(`^[0-9]+$`)

// TokenizerParser walks the page with an HTML tokenizer. An entry is a delete
// anchor (/OWNER/NAME/downloads/ID) followed by a file anchor
// (/downloads/OWNER/NAME/FILE) whose text is the display name.
type TokenizerParser struct{}

func (TokenizerParser) Parse(page string, repo repository.Identity, baseURL string) (*Listing, error) {
	deletePrefix := "/" + repo.String() + "/downloads/"
	filePrefix := "/downloads/" + repo.String() + "/"

	var (
		authToken  string
		assets     []Asset
		pending    *Asset
		inFileLink bool
		inScript   bool
		text       strings.Builder
	)

	z := html.NewTokenizer(strings.NewReader(page))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				log.Debug().Err(err).Msg("Stopped tokenizing downloads page")
			}
			return finishListing(authToken, assets, repo)

		case html.StartTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "script":
				inScript = true
				text.Reset()
			case "a":
				if !hasAttr {
					continue
				}
				href := hrefOf(z)
				if id, ok := strings.CutPrefix(href, deletePrefix); ok && deleteIDPattern.MatchString(id) {
					n, err := strconv.ParseInt(id, 10, 64)
					if err != nil {
						pending = nil
						continue
					}
					pending = &Asset{ID: n, DeleteURL: baseURL + href}
					continue
				}
				if file, ok := strings.CutPrefix(href, filePrefix); ok && pending != nil {
					pending.FileName = file
					pending.URL = baseURL + href
					inFileLink = true
					text.Reset()
				}
			}

		case html.TextToken:
			if inFileLink || inScript {
				text.Write(z.Text())
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script":
				if authToken == "" {
					if m := authTokenPattern.FindStringSubmatch("<script>" + text.String() + "</script>"); m != nil {
						authToken = m[1]
					}
				}
				inScript = false
			case "a":
				if inFileLink && pending != nil {
					pending.Name = text.String()
					log.Debug().Str("fileName", pending.FileName).Int64("id", pending.ID).Msg("Found download")
					assets = append(assets, *pending)
					pending = nil
				}
				inFileLink = false
			}
		}
	}
}

func finishListing(authToken string, assets []Asset, repo repository.Identity) (*Listing, error) {
	if authToken == "" {
		return nil, errors.NewDeployError(errors.ErrAuthTokenNotFound,
			"could not find the authenticity token on the downloads page of %s", repo)
	}
	listing := NewListing(authToken)
	for _, a := range assets {
		listing.Add(a)
	}
	return listing, nil
}

func hrefOf(z *html.Tokenizer) string {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "href" {
			return string(val)
		}
		if !more {
			return ""
		}
	}
}
