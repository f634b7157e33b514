package schema

// Bin represents an evidence indicator slot holding zero or more documents.
type Bin struct {
	Indicator   string      `json:"evidenceIndicator"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Documents   []*Document `json:"documents"`
}

// Clone returns a deep copy of the bin
func (b *Bin) Clone() *Bin {
	if b == nil {
		return nil
	}
	ret := *b
	ret.Documents = make([]*Document, 0, len(b.Documents))
	for _, doc := range b.Documents {
		ret.Documents = append(ret.Documents, doc.Clone())
	}
	return &ret
}

// Document returns a document by ID
func (b *Bin) Document(id string) (*Document, int) {
	for i, doc := range b.Documents {
		if doc.ID == id {
			return doc, i
		}
	}
	return nil, -1
}

// Append adds documents, syncing their indicator and category with the bin
func (b *Bin) Append(docs ...*Document) {
	for _, doc := range docs {
		doc.EvidenceIndicator = b.Indicator
		doc.Category = b.Category
		b.Documents = append(b.Documents, doc)
	}
}

// Remove removes a document by ID, it returns false when the bin does not hold it
func (b *Bin) Remove(id string) bool {
	_, idx := b.Document(id)
	if idx == -1 {
		return false
	}
	b.Documents = append(b.Documents[:idx], b.Documents[idx+1:]...)
	return true
}
