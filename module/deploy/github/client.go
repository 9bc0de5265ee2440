// Package github talks to the repository downloads service: the listing page,
// asset deletion, upload negotiation and the direct-to-storage upload.
package github

import (
	"fmt"
	"io"
	"net/http"

	"github.com/harness/github-deploy/util/common/errors"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL hosts the listing, deletion and negotiation endpoints.
	DefaultBaseURL = "https://github.com"
	// DefaultStorageURL receives the signed multipart upload.
	DefaultStorageURL = "https://github.s3.amazonaws.com/"

	mimeType = "application/octet-stream"
)

// Modifier modifies a request before it is sent.
type Modifier interface {
	Modify(*http.Request) error
}

// UserAgent sets the User-Agent header on every request.
type UserAgent string

func (u UserAgent) Modify(req *http.Request) error {
	req.Header.Set("User-Agent", string(u))
	return nil
}

// Client performs every request of a deployment run through one shared
// *http.Client. It is not safe for concurrent use.
type Client struct {
	BaseURL    string
	StorageURL string
	// Progress shows a progress bar while uploading.
	Progress bool

	modifiers []Modifier
	client    *http.Client
}

// NewHTTPClient returns an *http.Client that does not follow redirects, so
// that redirect statuses are visible to the status check.
func NewHTTPClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// NewClient creates a Client. A nil c defaults to NewHTTPClient().
func NewClient(c *http.Client, baseURL, storageURL string, modifiers ...Modifier) *Client {
	if c == nil {
		c = NewHTTPClient()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if storageURL == "" {
		storageURL = DefaultStorageURL
	}
	return &Client{
		BaseURL:    baseURL,
		StorageURL: storageURL,
		modifiers:  modifiers,
		client:     c,
	}
}

// Execute sends req and returns the response body if the status equals
// expected. Any other status, and any transport failure, is reported as a
// DeployError of the given kind. Nothing is retried.
func (c *Client) Execute(req *http.Request, expected int, kind error, action string) ([]byte, error) {
	for _, m := range c.modifiers {
		if err := m.Modify(req); err != nil {
			return nil, errors.WrapDeployError(kind, err, "%s", action)
		}
	}

	log.Debug().Str("method", req.Method).Str("url", redact(req)).Msg("Performing request")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.WrapDeployError(kind, err, "%s", action)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapDeployError(kind, err, "%s", action)
	}

	if resp.StatusCode != expected {
		return nil, errors.NewDeployError(kind, "%s: expected HTTP %d, got %s", action, expected, statusText(resp))
	}
	return data, nil
}

// redact drops the query string, which carries credentials on listing fetches.
func redact(req *http.Request) string {
	u := *req.URL
	if u.RawQuery != "" {
		u.RawQuery = "<redacted>"
	}
	return u.String()
}

func statusText(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
