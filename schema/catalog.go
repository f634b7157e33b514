package schema

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog reports a catalog that breaks bin/document invariants
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog represents the ordered set of bins, the unit persisted as a snapshot
type Catalog []*Bin

// Clone returns a deep copy of the catalog
func (c Catalog) Clone() Catalog {
	ret := make(Catalog, 0, len(c))
	for _, bin := range c {
		ret = append(ret, bin.Clone())
	}
	return ret
}

// Bin returns a bin by indicator
func (c Catalog) Bin(indicator string) *Bin {
	for _, bin := range c {
		if bin.Indicator == indicator {
			return bin
		}
	}
	return nil
}

// Find returns the document with the supplied ID and its owning bin
func (c Catalog) Find(id string) (*Bin, *Document) {
	for _, bin := range c {
		if doc, _ := bin.Document(id); doc != nil {
			return bin, doc
		}
	}
	return nil, nil
}

// HasID returns true if any bin holds a document with the supplied ID
func (c Catalog) HasID(id string) bool {
	_, doc := c.Find(id)
	return doc != nil
}

// Documents returns all documents in bin then document order
func (c Catalog) Documents() []*Document {
	var ret []*Document
	for _, bin := range c {
		ret = append(ret, bin.Documents...)
	}
	return ret
}

// DocumentCount returns total number of documents
func (c Catalog) DocumentCount() int {
	count := 0
	for _, bin := range c {
		count += len(bin.Documents)
	}
	return count
}

// Normalize syncs denormalized document fields with the owning bin and defaults empty status
func (c Catalog) Normalize() {
	for _, bin := range c {
		if bin.Documents == nil {
			bin.Documents = []*Document{}
		}
		for _, doc := range bin.Documents {
			doc.EvidenceIndicator = bin.Indicator
			doc.Category = bin.Category
			if doc.Status == "" {
				doc.Status = StatusPending
			}
		}
	}
}

// Validate checks indicator and ID uniqueness and document ownership
func (c Catalog) Validate() error {
	indicators := make(map[string]bool, len(c))
	ids := map[string]string{}
	for _, bin := range c {
		if bin == nil {
			return fmt.Errorf("%w: nil bin", ErrInvalidCatalog)
		}
		if bin.Indicator == "" {
			return fmt.Errorf("%w: bin without indicator", ErrInvalidCatalog)
		}
		if indicators[bin.Indicator] {
			return fmt.Errorf("%w: duplicate bin %v", ErrInvalidCatalog, bin.Indicator)
		}
		indicators[bin.Indicator] = true
		for _, doc := range bin.Documents {
			if doc == nil || doc.ID == "" {
				return fmt.Errorf("%w: document without id in bin %v", ErrInvalidCatalog, bin.Indicator)
			}
			if doc.EvidenceIndicator != bin.Indicator {
				return fmt.Errorf("%w: document %v indicator %v does not match bin %v", ErrInvalidCatalog, doc.ID, doc.EvidenceIndicator, bin.Indicator)
			}
			if owner, ok := ids[doc.ID]; ok {
				return fmt.Errorf("%w: document id %v used in bins %v and %v", ErrInvalidCatalog, doc.ID, owner, bin.Indicator)
			}
			if !doc.Status.Valid() {
				return fmt.Errorf("%w: document %v has status %q", ErrInvalidCatalog, doc.ID, doc.Status)
			}
			ids[doc.ID] = bin.Indicator
		}
	}
	return nil
}
