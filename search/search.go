// Package search runs full-text queries over document content and metadata.
//
// Every query builds a throwaway in-memory index from the supplied catalog, so
// results always reflect the snapshot the caller loaded.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/viant/policybin/schema"
)

// DefaultLimit is the number of hits returned when limit is not positive
const DefaultLimit = 10

// Hit represents a matching document
type Hit struct {
	DocumentID string  `json:"id"`
	Indicator  string  `json:"evidenceIndicator"`
	FileName   string  `json:"fileName"`
	Title      string  `json:"title,omitempty"`
	Status     string  `json:"status,omitempty"`
	URL        string  `json:"url,omitempty"`
	Score      float64 `json:"score"`
}

type record struct {
	FileName string `json:"fileName"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

var fields = []string{"fileName", "title", "content"}

// Search returns documents matching text ordered by descending score
func Search(ctx context.Context, catalog schema.Catalog, text string, limit int) ([]Hit, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []Hit{}, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}
	defer func() { _ = index.Close() }()

	type owned struct {
		bin *schema.Bin
		doc *schema.Document
	}
	byID := map[string]owned{}
	batch := index.NewBatch()
	for _, bin := range catalog {
		for _, doc := range bin.Documents {
			byID[doc.ID] = owned{bin: bin, doc: doc}
			if err := batch.Index(doc.ID, record{FileName: doc.FileName, Title: bin.Title, Content: doc.Content}); err != nil {
				return nil, fmt.Errorf("failed to index document %s: %w", doc.ID, err)
			}
		}
	}
	if len(byID) == 0 {
		return []Hit{}, nil
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to execute batch: %w", err)
	}

	var queries []query.Query
	for _, field := range fields {
		matchQuery := bleve.NewMatchQuery(text)
		matchQuery.SetField(field)
		queries = append(queries, matchQuery)
	}
	request := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(queries...))
	request.Size = limit
	result, err := index.SearchInContext(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	hits := make([]Hit, 0, len(result.Hits))
	for _, match := range result.Hits {
		entry, ok := byID[match.ID]
		if !ok {
			continue
		}
		hits = append(hits, Hit{
			DocumentID: entry.doc.ID,
			Indicator:  entry.bin.Indicator,
			FileName:   entry.doc.FileName,
			Title:      entry.bin.Title,
			Status:     string(entry.doc.Status),
			URL:        entry.doc.URL,
			Score:      match.Score,
		})
	}
	return hits, nil
}
