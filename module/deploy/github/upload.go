package github

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"

	"github.com/harness/github-deploy/module/deploy/credentials"
	"github.com/harness/github-deploy/module/deploy/repository"
	"github.com/harness/github-deploy/util/common/errors"
	"github.com/harness/github-deploy/util/common/progress"

	"github.com/rs/zerolog/log"
)

// File is a local file to upload.
type File struct {
	Path string
	Name string
	Size int64
}

// Descriptor holds the signed storage fields returned by negotiation.
type Descriptor struct {
	Prefix      string
	Policy      string
	AccessKeyID string
	Signature   string
	ACL         string
}

// Key returns the storage key of fileName.
func (d *Descriptor) Key(fileName string) string {
	return d.Prefix + fileName
}

// descriptor fields in the negotiation response, in extraction order.
var descriptorFields = []string{"prefix", "policy", "accesskeyid", "signature", "acl"}

// Negotiate announces file to the service and returns the storage fields
// needed to upload it.
func (c *Client) Negotiate(ctx context.Context, repo repository.Identity, creds credentials.Credentials, file File) (*Descriptor, error) {
	var body form
	body.add("login", creds.Login).
		add("token", creds.Token).
		add("file_length", strconv.FormatInt(file.Size, 10)).
		add("content_type", mimeType).
		add("file_name", file.Name).
		add("description", "")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.DownloadsURL(repo), body.reader())
	if err != nil {
		return nil, errors.WrapDeployError(errors.ErrNegotiationFailed, err, "could not send deploy information")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	data, err := c.Execute(req, http.StatusOK, errors.ErrNegotiationFailed, "could not send deploy information")
	if err != nil {
		return nil, err
	}
	return ParseDescriptor(data)
}

// ParseDescriptor decodes a negotiation response. Every field must be present
// and be a string.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapDeployError(errors.ErrMalformedDescriptor, err, "could not parse deploy information response")
	}
	if raw == nil {
		return nil, errors.NewDeployError(errors.ErrMalformedDescriptor, "deploy information response is not a JSON object")
	}

	values := make(map[string]string, len(descriptorFields))
	for _, name := range descriptorFields {
		v, ok := raw[name].(string)
		if !ok {
			return nil, errors.NewDeployError(errors.ErrIncompleteDescriptor,
				"deploy information response has no string property %q", name)
		}
		values[name] = v
	}

	return &Descriptor{
		Prefix:      values["prefix"],
		Policy:      values["policy"],
		AccessKeyID: values["accesskeyid"],
		Signature:   values["signature"],
		ACL:         values["acl"],
	}, nil
}

// switchWriter lets the multipart writer's output be split into the parts
// before and after the file content.
type switchWriter struct {
	w io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Upload posts file to the storage backend as a multipart form signed by d.
// The backend is asked to answer 201 Created; anything else is a failure.
func (c *Client) Upload(ctx context.Context, d *Descriptor, file File) error {
	var head, tail bytes.Buffer
	out := &switchWriter{w: &head}
	mw := multipart.NewWriter(out)

	fields := [][2]string{
		{"key", d.Key(file.Name)},
		{"acl", d.ACL},
		{"Filename", file.Name},
		{"policy", d.Policy},
		{"AWSAccessKeyId", d.AccessKeyID},
		{"signature", d.Signature},
		{"success_action_status", strconv.Itoa(http.StatusCreated)},
		{"Content-Type", mimeType},
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return errors.WrapDeployError(errors.ErrPartEncodingFailed, err, "could not encode upload field %q", f[0])
		}
	}
	if _, err := mw.CreateFormFile("file", file.Name); err != nil {
		return errors.WrapDeployError(errors.ErrPartEncodingFailed, err, "could not encode upload field %q", "file")
	}
	out.w = &tail
	if err := mw.Close(); err != nil {
		return errors.WrapDeployError(errors.ErrPartEncodingFailed, err, "could not finish multipart body")
	}

	f, err := os.Open(file.Path)
	if err != nil {
		return errors.WrapDeployError(errors.ErrArtifactNotFound, err, "could not read artifact %q", file.Path)
	}
	defer f.Close()

	var content io.Reader = f
	if c.Progress {
		var stop func()
		content, stop = progress.Reader(file.Size, f, file.Name)
		defer stop()
	}

	body := io.MultiReader(bytes.NewReader(head.Bytes()), content, bytes.NewReader(tail.Bytes()))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.StorageURL, body)
	if err != nil {
		return errors.WrapDeployError(errors.ErrUploadFailed, err, "could not deploy %q", file.Name)
	}
	req.ContentLength = int64(head.Len()) + file.Size + int64(tail.Len())
	req.Header.Set("Content-Type", mw.FormDataContentType())

	log.Debug().Str("key", d.Key(file.Name)).Int64("contentLength", req.ContentLength).Msg("Uploading multipart body")
	_, err = c.Execute(req, http.StatusCreated, errors.ErrUploadFailed, "could not deploy \""+file.Name+"\"")
	return err
}
