package github

import (
	"net/url"
	"strings"
)

// form is an url-encoded body that keeps fields in insertion order.
type form struct {
	b strings.Builder
}

func (f *form) add(key, value string) *form {
	if f.b.Len() > 0 {
		f.b.WriteByte('&')
	}
	f.b.WriteString(url.QueryEscape(key))
	f.b.WriteByte('=')
	f.b.WriteString(url.QueryEscape(value))
	return f
}

func (f *form) reader() *strings.Reader {
	return strings.NewReader(f.b.String())
}
