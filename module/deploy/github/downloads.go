package github

import (
	"context"
	"net/http"
	"net/url"

	"github.com/harness/github-deploy/module/deploy/credentials"
	"github.com/harness/github-deploy/module/deploy/listing"
	"github.com/harness/github-deploy/module/deploy/repository"
	"github.com/harness/github-deploy/util/common/errors"
)

// DownloadsURL returns the listing endpoint of repo.
func (c *Client) DownloadsURL(repo repository.Identity) string {
	return c.BaseURL + "/" + repo.String() + "/downloads"
}

// FetchListing fetches the downloads page of repo, authenticated through
// query parameters, and returns its body.
func (c *Client) FetchListing(ctx context.Context, repo repository.Identity, creds credentials.Credentials) (string, error) {
	query := url.Values{}
	query.Set("login", creds.Login)
	query.Set("token", creds.Token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.DownloadsURL(repo)+"?"+query.Encode(), nil)
	if err != nil {
		return "", errors.WrapDeployError(errors.ErrListingFetchFailed, err, "could not check existing downloads")
	}

	body, err := c.Execute(req, http.StatusOK, errors.ErrListingFetchFailed, "could not check existing downloads")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ListDownloads fetches the listing page and parses it with parser.
func (c *Client) ListDownloads(ctx context.Context, repo repository.Identity, creds credentials.Credentials,
	parser listing.Parser) (*listing.Listing, error) {
	page, err := c.FetchListing(ctx, repo, creds)
	if err != nil {
		return nil, err
	}
	return parser.Parse(page, repo, c.BaseURL)
}

// DeleteAsset deletes asset. The service acknowledges with 302 Found.
func (c *Client) DeleteAsset(ctx context.Context, asset listing.Asset, creds credentials.Credentials, authToken string) error {
	var body form
	body.add("login", creds.Login).
		add("token", creds.Token).
		add("_method", "delete").
		add("authenticity_token", authToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, asset.DeleteURL, body.reader())
	if err != nil {
		return errors.WrapDeployError(errors.ErrAssetDeleteFailed, err, "could not delete existing download %q", asset.FileName)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err = c.Execute(req, http.StatusFound, errors.ErrAssetDeleteFailed,
		"could not delete existing download \""+asset.FileName+"\"")
	return err
}
