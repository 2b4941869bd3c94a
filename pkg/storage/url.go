package storage

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const (
	DefaultLocalURLTemplate = `{{ .BaseURL | trimSuffix "/" }}/uploads/{{ .Key }}`
	DefaultS3URLTemplate    = `{{ .BaseURL | trimSuffix "/" }}/{{ .Bucket }}/{{ .Key }}`
)

// URLBuilder merender URL publik dari template sprig, mis. untuk CDN:
// {{ .BaseURL }}/{{ .Key | replace "/" "_" }}.
type URLBuilder struct {
	tmpl    *template.Template
	baseURL string
	bucket  string
	prefix  string
}

type urlData struct {
	BaseURL string
	Bucket  string
	Key     string
}

func NewURLBuilder(tmpl, baseURL, bucket string) (*URLBuilder, error) {
	t, err := template.New("storage-url").Funcs(sprig.TxtFuncMap()).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parse storage url template: %w", err)
	}

	b := &URLBuilder{tmpl: t, baseURL: baseURL, bucket: bucket}

	// prefix = URL untuk key kosong; dipakai untuk IsManaged dan KeyFromURL
	prefix, err := b.render("")
	if err != nil {
		return nil, err
	}
	b.prefix = prefix
	return b, nil
}

func (b *URLBuilder) render(key string) (string, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, urlData{BaseURL: b.baseURL, Bucket: b.bucket, Key: key}); err != nil {
		return "", fmt.Errorf("render storage url: %w", err)
	}
	return buf.String(), nil
}

// URL mengembalikan URL publik untuk key.
func (b *URLBuilder) URL(key string) (string, error) {
	return b.render(key)
}

// KeyFromURL kebalikan URL. false bila URL bukan milik storage ini.
func (b *URLBuilder) KeyFromURL(fileURL string) (string, bool) {
	if b.prefix == "" || !strings.HasPrefix(fileURL, b.prefix) {
		return "", false
	}
	key := strings.TrimPrefix(fileURL, b.prefix)
	if key == "" {
		return "", false
	}
	return key, true
}
