package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/viant/policybin/blob"
	"github.com/viant/policybin/classifier"
	"github.com/viant/policybin/extract"
	"github.com/viant/policybin/matching"
	"github.com/viant/policybin/matching/option"
	"github.com/viant/policybin/metadata"
	"github.com/viant/policybin/reindex"
	"github.com/viant/policybin/schema"
)

var (
	// ErrUnknownIndicator reports an indicator that is not in the catalog
	ErrUnknownIndicator = errors.New("unknown evidence indicator")
	// ErrDocumentNotFound reports a document missing from the addressed bin
	ErrDocumentNotFound = errors.New("document not found")
	// ErrInvalidDocument reports incomplete or malformed document input
	ErrInvalidDocument = errors.New("invalid document")
	// ErrRejected reports a file refused by upload rules
	ErrRejected = errors.New("file rejected")
)

// Objects stores uploaded file bytes
type Objects interface {
	Put(ctx context.Context, location string, data []byte, opts ...blob.PutOption) (*blob.Object, error)
}

// Catalog represents metadata snapshot operations
type Catalog interface {
	Load(ctx context.Context) (schema.Catalog, error)
	LoadOrDefault(ctx context.Context) schema.Catalog
	Update(ctx context.Context, mutate func(catalog schema.Catalog) error) (schema.Catalog, error)
}

// Reindexer refreshes document content
type Reindexer interface {
	Run(ctx context.Context) (*reindex.Result, error)
}

// Option configures the Service.
type Option func(*Service)

// WithClassifier sets the filename classifier.
func WithClassifier(c *classifier.Classifier) Option {
	return func(s *Service) {
		if c != nil {
			s.classifier = c
		}
	}
}

// WithRules sets upload acceptance rules.
func WithRules(rules *matching.Manager) Option {
	return func(s *Service) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// WithReindexer sets the content reindexer.
func WithReindexer(r Reindexer) Option {
	return func(s *Service) { s.reindexer = r }
}

// WithLogger sets logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the time source used for upload timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service exposes bin operations over the object store and metadata snapshot.
type Service struct {
	objects    Objects
	catalog    Catalog
	classifier *classifier.Classifier
	rules      *matching.Manager
	reindexer  Reindexer
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new Service.
func NewService(objects Objects, catalog Catalog, opts ...Option) *Service {
	s := &Service{
		objects:    objects,
		catalog:    catalog,
		classifier: classifier.Default(),
		rules:      matching.New(),
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Components groups collaborators built from a Config.
type Components struct {
	Objects   *blob.Store
	Metadata  *metadata.Store
	Reindexer *reindex.Reindexer
	Service   *Service
}

// New builds the object store, metadata store, reindexer and service from cfg.
func New(cfg *Config, logger *slog.Logger) (*Components, error) {
	if logger == nil {
		logger = slog.Default()
	}
	objects := blob.New(cfg.Store.BaseURL, blob.WithTimeout(time.Duration(cfg.Store.TimeoutSeconds)*time.Second))
	var metaOptions = []metadata.Option{metadata.WithPath(cfg.Store.MetadataPath), metadata.WithLogger(logger)}
	if cfg.Store.GuardRetries != nil {
		metaOptions = append(metaOptions, metadata.WithGuardedWrites(*cfg.Store.GuardRetries))
	}
	store, err := metadata.New(objects, metaOptions...)
	if err != nil {
		return nil, err
	}
	extractor, err := extract.NewCached(extract.NewFactory(extract.WithLogger(logger)), extract.DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	reindexer := reindex.New(store, objects, extractor,
		reindex.WithWorkers(cfg.Reindex.Workers),
		reindex.WithDocumentTimeout(time.Duration(cfg.Reindex.DocumentTimeoutSeconds)*time.Second),
		reindex.WithFetchRate(cfg.Reindex.FetchRate),
		reindex.WithLogger(logger),
	)
	var ruleOptions = []option.Option{option.WithExtensions(cfg.Upload.Extensions...)}
	if cfg.Upload.MaxSizeBytes != nil {
		ruleOptions = append(ruleOptions, option.WithMaxFileSize(*cfg.Upload.MaxSizeBytes))
	}
	srv := NewService(objects, store,
		WithRules(matching.New(ruleOptions...)),
		WithReindexer(reindexer),
		WithLogger(logger),
	)
	return &Components{Objects: objects, Metadata: store, Reindexer: reindexer, Service: srv}, nil
}

func (s *Service) newDocument(fileName, url string, status schema.Status) *schema.Document {
	return &schema.Document{
		ID:         uuid.New().String(),
		FileName:   fileName,
		UploadedAt: s.now().UTC(),
		Status:     status,
		URL:        url,
	}
}

// appendDocuments files docs into their bins, regenerating IDs that collide with stored ones
func appendDocuments(catalog schema.Catalog, docs ...*schema.Document) error {
	for _, doc := range docs {
		bin := catalog.Bin(doc.EvidenceIndicator)
		if bin == nil {
			return fmt.Errorf("%w: %v", ErrUnknownIndicator, doc.EvidenceIndicator)
		}
		for catalog.HasID(doc.ID) {
			doc.ID = uuid.New().String()
		}
		bin.Append(doc)
	}
	return nil
}
