package service

import (
	"context"
	"errors"
	"strings"

	"github.com/viant/policybin/indicator"
	"github.com/viant/policybin/reindex"
	"github.com/viant/policybin/schema"
	"github.com/viant/policybin/search"
)

// Categories returns bin categories in display order
func (s *Service) Categories() []indicator.Category {
	return indicator.Categories()
}

// Bins returns bins matching filter in catalog order
func (s *Service) Bins(ctx context.Context, filter Filter) []*schema.Bin {
	catalog := s.catalog.LoadOrDefault(ctx)
	category := strings.TrimSpace(filter.Category)
	if resolved, ok := indicator.ResolveCategory(category); ok {
		category = resolved.Name
	}
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	ret := make([]*schema.Bin, 0, len(catalog))
	for _, bin := range catalog {
		if category != "" && !strings.EqualFold(category, "all") && !strings.EqualFold(bin.Category, category) {
			continue
		}
		if query != "" && !matchesQuery(bin, query) {
			continue
		}
		ret = append(ret, bin)
	}
	return ret
}

func matchesQuery(bin *schema.Bin, query string) bool {
	for _, candidate := range []string{bin.Indicator, bin.Title, bin.Description} {
		if strings.Contains(strings.ToLower(candidate), query) {
			return true
		}
	}
	for _, doc := range bin.Documents {
		if strings.Contains(strings.ToLower(doc.FileName), query) {
			return true
		}
	}
	return false
}

// Search runs a full-text query over stored document content
func (s *Service) Search(ctx context.Context, query string, limit int) ([]search.Hit, error) {
	return search.Search(ctx, s.catalog.LoadOrDefault(ctx), query, limit)
}

// Reindex refreshes document content from stored files
func (s *Service) Reindex(ctx context.Context) (*reindex.Result, error) {
	if s.reindexer == nil {
		return nil, errors.New("reindexer is not configured")
	}
	return s.reindexer.Run(ctx)
}
