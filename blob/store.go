// Package blob stores file bytes and metadata snapshots in an afs addressable
// object store (file://, mem://, gs://, s3://).
package blob

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	_ "github.com/viant/afs/mem"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	_ "github.com/viant/afsc/gs"
	_ "github.com/viant/afsc/s3"
)

// DefaultTimeout bounds every store call
const DefaultTimeout = 30 * time.Second

// Object represents a stored object
type Object struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// Store implements put/list/get over afs
type Store struct {
	fs      afs.Service
	baseURL string
	timeout time.Duration
}

// Option configures a Store
type Option func(*Store)

// WithTimeout sets per call timeout
func WithTimeout(timeout time.Duration) Option {
	return func(s *Store) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithFS sets afs service
func WithFS(fs afs.Service) Option {
	return func(s *Store) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// PutOption configures a put call
type PutOption func(*putOptions)

type putOptions struct {
	stableName bool
}

// WithStableName keeps the exact path and overwrites an existing object
func WithStableName() PutOption {
	return func(o *putOptions) { o.stableName = true }
}

// BaseURL returns store base URL
func (s *Store) BaseURL() string {
	return s.baseURL
}

// URL returns the absolute URL for a store relative path
func (s *Store) URL(location string) string {
	if url.Scheme(location, "") != "" {
		return location
	}
	location = strings.TrimLeft(location, "/")
	if location == "" {
		return s.baseURL
	}
	return url.Join(s.baseURL, location)
}

// Put uploads data; unless WithStableName is used a random suffix keeps repeated names distinct
func (s *Store) Put(ctx context.Context, location string, data []byte, opts ...PutOption) (*Object, error) {
	options := &putOptions{}
	for _, opt := range opts {
		opt(options)
	}
	location = strings.TrimLeft(strings.TrimSpace(location), "/")
	if location == "" || strings.HasSuffix(location, "/") {
		return nil, fmt.Errorf("invalid object path: %q", location)
	}
	if !options.stableName {
		location = withSuffix(location, uuid.New().String()[:8])
	}
	URL := s.URL(location)
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to upload %v: %w", location, err)
	}
	return &Object{Path: location, URL: URL}, nil
}

// List returns objects under prefix, a missing prefix yields no objects
func (s *Store) List(ctx context.Context, prefix string) ([]Object, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	URL := s.URL(prefix)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check %v: %w", prefix, err)
	}
	if !exists {
		return nil, nil
	}
	objects, err := s.fs.List(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to list %v: %w", prefix, err)
	}
	base := strings.TrimRight(url.Path(s.baseURL), "/") + "/"
	var ret []Object
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		ret = append(ret, Object{
			Path: strings.TrimPrefix(url.Path(object.URL()), base),
			URL:  object.URL(),
		})
	}
	return ret, nil
}

// Get downloads an object by URL or store relative path
func (s *Store) Get(ctx context.Context, location string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	data, err := s.fs.DownloadWithURL(ctx, s.URL(location))
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", location, err)
	}
	return data, nil
}

// Replace writes data to location through a per call staging object so readers never see a partial
// write and concurrent writers never share a temporary object
func (s *Store) Replace(ctx context.Context, location string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	final := s.URL(location)
	parent, name := url.Split(final, file.Scheme)
	staging := url.Join(parent, ".staging-"+uuid.New().String())
	defer func() { _ = s.fs.Delete(ctx, staging) }()
	tmp := url.Join(staging, name)
	if err := s.fs.Upload(ctx, tmp, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload staging object: %w", err)
	}
	type mover interface {
		Move(ctx context.Context, sourceURL, destURL string, options ...storage.Option) error
	}
	// staging and final share a base name so the destination is taken as the object itself, not a folder
	if mv, ok := any(s.fs).(mover); ok {
		if err := mv.Move(ctx, tmp, final); err == nil {
			return nil
		}
	}
	if err := s.fs.Upload(ctx, final, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload %v: %w", location, err)
	}
	return nil
}

func withSuffix(location, suffix string) string {
	ext := path.Ext(location)
	return strings.TrimSuffix(location, ext) + "-" + suffix + ext
}

// New creates a store rooted at baseURL
func New(baseURL string, opts ...Option) *Store {
	ret := &Store{
		fs:      afs.New(),
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
