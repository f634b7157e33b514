package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/policybin/schema"
)

// DeleteDocument removes a document from the addressed bin only
func (s *Service) DeleteDocument(ctx context.Context, indicatorID, id string) error {
	_, err := s.catalog.Update(ctx, func(catalog schema.Catalog) error {
		bin := catalog.Bin(indicatorID)
		if bin == nil {
			return fmt.Errorf("%w: %v", ErrUnknownIndicator, indicatorID)
		}
		if !bin.Remove(id) {
			return fmt.Errorf("%w: %v in bin %v", ErrDocumentNotFound, id, indicatorID)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("document_deleted", "id", id, "evidenceIndicator", indicatorID)
	return nil
}

// SetStatus changes review status of a document
func (s *Service) SetStatus(ctx context.Context, id string, status string) (*schema.Document, error) {
	parsed, err := schema.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	var ret *schema.Document
	_, err = s.catalog.Update(ctx, func(catalog schema.Catalog) error {
		_, doc := catalog.Find(id)
		if doc == nil {
			return fmt.Errorf("%w: %v", ErrDocumentNotFound, id)
		}
		doc.Status = parsed
		ret = doc.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("document_status_changed", "id", id, "status", string(parsed))
	return ret, nil
}

// Duplicates returns, per bin, groups of documents sharing a case-insensitive file name
func (s *Service) Duplicates(ctx context.Context) []DuplicateGroup {
	var ret []DuplicateGroup
	for _, bin := range s.catalog.LoadOrDefault(ctx) {
		var order []string
		groups := map[string][]*schema.Document{}
		for _, doc := range bin.Documents {
			key := strings.ToLower(doc.FileName)
			if _, ok := groups[key]; !ok {
				order = append(order, key)
			}
			groups[key] = append(groups[key], doc)
		}
		for _, key := range order {
			if docs := groups[key]; len(docs) > 1 {
				ret = append(ret, DuplicateGroup{Indicator: bin.Indicator, Title: bin.Title, FileName: key, Documents: docs})
			}
		}
	}
	if ret == nil {
		ret = []DuplicateGroup{}
	}
	return ret
}

// Stats returns catalog counters
func (s *Service) Stats(ctx context.Context) Stats {
	catalog := s.catalog.LoadOrDefault(ctx)
	ret := Stats{Bins: len(catalog)}
	for _, bin := range catalog {
		if len(bin.Documents) > 0 {
			ret.Filled++
		}
		for _, doc := range bin.Documents {
			ret.Documents++
			switch doc.Status {
			case schema.StatusApproved:
				ret.Approved++
			case schema.StatusRejected:
				ret.Rejected++
			default:
				ret.Pending++
			}
		}
	}
	return ret
}
