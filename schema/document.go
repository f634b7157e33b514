package schema

import "time"

// Document represents a policy document filed into an evidence indicator bin.
type Document struct {
	ID                string    `json:"id"`
	FileName          string    `json:"fileName"`
	EvidenceIndicator string    `json:"evidenceIndicator"`
	Category          string    `json:"category"`
	UploadedAt        time.Time `json:"uploadedAt"`
	Status            Status    `json:"status"`
	// URL references the stored file bytes, empty when the document was entered without a file.
	URL string `json:"url,omitempty"`
	// Content holds extracted text, empty until a successful extraction.
	Content string `json:"content"`
}

// Clone returns a copy of the document
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	ret := *d
	return &ret
}

// HasFile returns true if the document references stored file bytes
func (d *Document) HasFile() bool {
	return d.URL != ""
}
