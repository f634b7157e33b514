// Package reindex refreshes extracted document content stored in the metadata snapshot.
package reindex

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/viant/policybin/extract"
	"github.com/viant/policybin/metadata"
	"github.com/viant/policybin/schema"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	// DefaultWorkers is the number of documents processed concurrently
	DefaultWorkers = 4
	// DefaultDocumentTimeout bounds fetch and extraction of a single document
	DefaultDocumentTimeout = 60 * time.Second
	// NoMetadataReason is reported when no snapshot could be loaded
	NoMetadataReason = "No metadata available"
)

// ErrNoMetadata reports a reindex attempted without a readable snapshot
var ErrNoMetadata = errors.New("no metadata available")

// Store represents the metadata operations used by the reindexer
type Store interface {
	Load(ctx context.Context) (schema.Catalog, error)
	Update(ctx context.Context, mutate func(catalog schema.Catalog) error) (schema.Catalog, error)
}

// Fetcher downloads stored document bytes
type Fetcher interface {
	Get(ctx context.Context, location string) ([]byte, error)
}

// Result represents a reindex pass outcome
type Result struct {
	Success         bool   `json:"success"`
	DocumentsParsed int    `json:"documentsParsed"`
	Reason          string `json:"reason,omitempty"`
}

// Reindexer extracts text for every stored document and merges it into the snapshot
type Reindexer struct {
	store           Store
	fetcher         Fetcher
	extractor       extract.Extractor
	workers         int
	documentTimeout time.Duration
	limiter         *rate.Limiter
	logger          *slog.Logger
}

type job struct {
	id       string
	fileName string
	url      string
}

// Run performs one reindex pass. Content is only overwritten for documents whose
// extraction produced text; every other field comes from the latest snapshot.
func (r *Reindexer) Run(ctx context.Context) (*Result, error) {
	started := time.Now()
	catalog, err := r.store.Load(ctx)
	if err != nil {
		if errors.Is(err, metadata.ErrNotFound) || errors.Is(err, metadata.ErrUnreadable) {
			r.logger.Warn("reindex_no_metadata", "error", err.Error())
			return &Result{Reason: NoMetadataReason}, ErrNoMetadata
		}
		return nil, err
	}

	var jobs []job
	for _, bin := range catalog {
		for _, doc := range bin.Documents {
			if !doc.HasFile() {
				continue
			}
			jobs = append(jobs, job{id: doc.ID, fileName: doc.FileName, url: doc.URL})
		}
	}

	contents := make([]string, len(jobs))
	group := &errgroup.Group{}
	group.SetLimit(r.workers)
	for i, item := range jobs {
		if ctx.Err() != nil {
			break
		}
		group.Go(func() error {
			contents[i] = r.extract(ctx, item)
			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	parsed := make(map[string]string, len(jobs))
	for i, item := range jobs {
		if contents[i] != "" {
			parsed[item.id] = contents[i]
		}
	}
	if _, err = r.store.Update(ctx, func(latest schema.Catalog) error {
		for _, doc := range latest.Documents() {
			if text, ok := parsed[doc.ID]; ok {
				doc.Content = text
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}
	r.logger.Info("reindex_completed", "documents", len(jobs), "parsed", len(parsed), "elapsed", time.Since(started).String())
	return &Result{Success: true, DocumentsParsed: len(parsed)}, nil
}

func (r *Reindexer) extract(ctx context.Context, item job) string {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return ""
		}
	}
	ctx, cancel := context.WithTimeout(ctx, r.documentTimeout)
	defer cancel()
	data, err := r.fetcher.Get(ctx, item.url)
	if err != nil {
		r.logger.Debug("reindex_document_failed", "id", item.id, "url", item.url, "error", err.Error())
		return ""
	}
	text, err := extract.ExtractContext(ctx, r.extractor, item.fileName, data)
	if err != nil {
		r.logger.Debug("reindex_document_failed", "id", item.id, "url", item.url, "error", err.Error())
		return ""
	}
	if text == "" {
		r.logger.Debug("reindex_document_empty", "id", item.id, "url", item.url)
		return ""
	}
	r.logger.Debug("reindex_document_parsed", "id", item.id, "chars", len(text))
	return text
}

// New creates a reindexer
func New(store Store, fetcher Fetcher, extractor extract.Extractor, opts ...Option) *Reindexer {
	ret := &Reindexer{
		store:           store,
		fetcher:         fetcher,
		extractor:       extractor,
		workers:         DefaultWorkers,
		documentTimeout: DefaultDocumentTimeout,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
