// Package metadata persists the bin catalog as a single JSON snapshot in an object store.
//
// Every write path goes through Update: load the latest snapshot, apply a mutation
// to the in-memory copy, then replace the snapshot. There is no lock; with guarded
// writes the version stamp is re-read right before the write and a changed snapshot
// causes the mutation to be reapplied on the fresh copy.
package metadata

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"github.com/gowebpki/jcs"
	"github.com/kaptinlin/jsonschema"
	"github.com/viant/policybin/blob"
	"github.com/viant/policybin/cache"
	"github.com/viant/policybin/indicator"
	"github.com/viant/policybin/schema"
)

// DefaultPath is the snapshot location relative to the store base URL
const DefaultPath = "metadata/policy-bins.json"

// DefaultGuardRetries is the number of reapply attempts after a detected concurrent write
const DefaultGuardRetries = 3

var (
	// ErrNotFound reports that no snapshot has been written yet
	ErrNotFound = errors.New("metadata snapshot not found")
	// ErrUnreadable reports a snapshot that could not be fetched, parsed or validated
	ErrUnreadable = errors.New("metadata snapshot unreadable")
	// ErrConflict reports that the snapshot kept changing while an update was applied
	ErrConflict = errors.New("metadata snapshot changed concurrently")
	// ErrInvalidCatalog reports a catalog breaking bin/document invariants
	ErrInvalidCatalog = schema.ErrInvalidCatalog

	errFetch = errors.New("fetch failed")
)

//go:embed snapshot.schema.json
var snapshotSchema []byte

// Objects represents the object store operations used by the metadata store
type Objects interface {
	List(ctx context.Context, prefix string) ([]blob.Object, error)
	Get(ctx context.Context, location string) ([]byte, error)
	Replace(ctx context.Context, location string, data []byte) error
}

// Store loads and saves the catalog snapshot
type Store struct {
	objects Objects
	path    string
	retries int
	logger  *slog.Logger
	schema  *jsonschema.Schema
}

// Path returns snapshot path
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored catalog reconciled with the indicator catalog
func (s *Store) Load(ctx context.Context) (schema.Catalog, error) {
	catalog, _, err := s.load(ctx)
	return catalog, err
}

// LoadOrDefault returns the stored catalog, or the default bins when the snapshot is missing or unreadable
func (s *Store) LoadOrDefault(ctx context.Context) schema.Catalog {
	catalog, err := s.Load(ctx)
	if err != nil {
		s.logger.Warn("metadata_load_failed", "path", s.path, "error", err.Error())
		return indicator.Bins()
	}
	return catalog
}

// Version returns a stamp of the stored snapshot bytes, 0 when no snapshot exists
func (s *Store) Version(ctx context.Context) (uint64, error) {
	data, err := s.read(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return cache.Hash(data)
}

// Save validates and writes the catalog as canonical JSON
func (s *Store) Save(ctx context.Context, catalog schema.Catalog) error {
	data, err := s.encode(catalog)
	if err != nil {
		return err
	}
	if err = s.objects.Replace(ctx, s.path, data); err != nil {
		s.logger.Error("metadata_save_failed", "path", s.path, "error", err.Error())
		return fmt.Errorf("failed to save metadata: %w", err)
	}
	s.logger.Info("metadata_saved", "path", s.path, "bins", len(catalog), "documents", catalog.DocumentCount())
	return nil
}

// Update loads the latest catalog, applies mutate and saves the result.
// A missing or unparsable snapshot starts from the default bins, a snapshot that
// exists but cannot be fetched aborts the update. When mutate returns an error
// nothing is saved.
func (s *Store) Update(ctx context.Context, mutate func(catalog schema.Catalog) error) (schema.Catalog, error) {
	for attempt := 0; ; attempt++ {
		catalog, version, err := s.load(ctx)
		if err != nil {
			if errors.Is(err, errFetch) || (!errors.Is(err, ErrNotFound) && !errors.Is(err, ErrUnreadable)) {
				return nil, err
			}
			if errors.Is(err, ErrUnreadable) {
				s.logger.Warn("metadata_load_failed", "path", s.path, "error", err.Error())
			}
			catalog = indicator.Bins()
		}
		if err = mutate(catalog); err != nil {
			return nil, err
		}
		if s.retries > 0 {
			current, err := s.Version(ctx)
			if err != nil {
				return nil, err
			}
			if current != version {
				if attempt >= s.retries {
					s.logger.Warn("metadata_update_conflict", "path", s.path, "attempts", attempt+1)
					return nil, ErrConflict
				}
				s.logger.Debug("metadata_update_retry", "path", s.path, "attempt", attempt+1)
				continue
			}
		}
		if err = s.Save(ctx, catalog); err != nil {
			return nil, err
		}
		return catalog, nil
	}
}

func (s *Store) load(ctx context.Context) (schema.Catalog, uint64, error) {
	data, err := s.read(ctx)
	if err != nil {
		return nil, 0, err
	}
	version, err := cache.Hash(data)
	if err != nil {
		return nil, 0, err
	}
	catalog, err := s.decode(data)
	if err != nil {
		return nil, version, err
	}
	catalog, unknown := indicator.Reconcile(catalog)
	if len(unknown) > 0 {
		s.logger.Warn("metadata_unknown_bins", "path", s.path, "indicators", unknown)
	}
	return catalog, version, nil
}

// read locates the snapshot by listing its folder, then downloads it
func (s *Store) read(ctx context.Context) ([]byte, error) {
	folder := path.Dir(s.path)
	if folder == "." {
		folder = ""
	}
	objects, err := s.objects.List(ctx, folder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrUnreadable, errFetch, err)
	}
	found := false
	for _, object := range objects {
		if object.Path == s.path {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}
	data, err := s.objects.Get(ctx, s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrUnreadable, errFetch, err)
	}
	return data, nil
}

func (s *Store) decode(data []byte) (catalog schema.Catalog, err error) {
	defer func() {
		if r := recover(); r != nil {
			catalog, err = nil, fmt.Errorf("%w: %v", ErrUnreadable, r)
		}
	}()
	if result := s.schema.ValidateJSON(data); !result.IsValid() {
		return nil, fmt.Errorf("%w: schema validation failed: %v", ErrUnreadable, result.Errors)
	}
	if err = json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	var ret schema.Catalog
	for _, bin := range catalog {
		if bin != nil {
			ret = append(ret, bin)
		}
	}
	ret.Normalize()
	return ret, nil
}

func (s *Store) encode(catalog schema.Catalog) ([]byte, error) {
	if catalog == nil {
		catalog = schema.Catalog{}
	}
	catalog.Normalize()
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to encode metadata: %w", err)
	}
	if data, err = jcs.Transform(data); err != nil {
		return nil, fmt.Errorf("failed to canonicalize metadata: %w", err)
	}
	return data, nil
}

// New creates a metadata store over objects
func New(objects Objects, opts ...Option) (*Store, error) {
	compiled, err := jsonschema.NewCompiler().Compile(snapshotSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile snapshot schema: %w", err)
	}
	ret := &Store{
		objects: objects,
		path:    DefaultPath,
		retries: DefaultGuardRetries,
		logger:  slog.Default(),
		schema:  compiled,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret, nil
}
